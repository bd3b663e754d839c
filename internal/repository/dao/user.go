package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Role      string `gorm:"not null;index"` // "student", "club_manager" or "admin"
	Program   string
	Year      int
	AvatarURL string
	IsBlocked bool   `gorm:"not null;default:false"`
	Language  string `gorm:"not null;default:fr"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserQuery struct {
	Query  string
	Status string // "active", "blocked" or anything else for all
	Role   string
}

type UserCounts struct {
	Total   int64
	Active  int64
	Blocked int64
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	user.Email = strings.ToLower(user.Email)

	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) List(ctx context.Context, q UserQuery) ([]User, error) {
	var users []User

	tx := d.db.WithContext(ctx).Model(&User{})
	if q.Query != "" {
		pattern := containsPattern(q.Query)
		tx = tx.Where(
			`(LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}
	switch q.Status {
	case "active":
		tx = tx.Where("is_blocked = ?", false)
	case "blocked":
		tx = tx.Where("is_blocked = ?", true)
	}
	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}

	if err := tx.Order("last_name, first_name, id").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (d *UserDAO) Counts(ctx context.Context) (UserCounts, error) {
	var counts UserCounts

	err := d.db.WithContext(ctx).Model(&User{}).
		Select("COUNT(*) AS total, " +
			"COUNT(CASE WHEN is_blocked THEN NULL ELSE 1 END) AS active, " +
			"COUNT(CASE WHEN is_blocked THEN 1 END) AS blocked").
		Scan(&counts).Error
	if err != nil {
		return UserCounts{}, err
	}

	return counts, nil
}

func (d *UserDAO) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&User{}).Where("role = ?", role).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

func (d *UserDAO) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&User{}).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

// Update writes the given columns of user id and returns the fresh row.
func (d *UserDAO) Update(ctx context.Context, id uint, columns map[string]any) (User, error) {
	result := d.db.WithContext(ctx).Model(&User{ID: id}).Updates(columns)
	if result.Error != nil {
		return User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return User{}, ErrUserNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *UserDAO) ClubIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := d.db.WithContext(ctx).Model(&ClubMember{}).
		Where("user_id = ?", userID).
		Order("club_id").
		Pluck("club_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (d *UserDAO) ActivityIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := d.db.WithContext(ctx).Model(&ActivityParticipant{}).
		Where("user_id = ?", userID).
		Order("activity_id").
		Pluck("activity_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
