package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrClubNotFound   = errors.New("club not found")
	ErrClubNameExists = errors.New("club name already taken")
	ErrAlreadyMember  = errors.New("user is already a member of the club")
	ErrNotMember      = errors.New("user is not a member of the club")
)

type Club struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"unique;not null"`
	Description string
	Category    string `gorm:"not null;index"`
	ImageURL    string
	ManagerID   uint `gorm:"not null;index"`
	IsValidated bool `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ClubMember struct {
	ClubID   uint      `gorm:"primaryKey"`
	UserID   uint      `gorm:"primaryKey;index"`
	Role     string    `gorm:"not null;default:member"` // "member" or "manager"
	JoinedAt time.Time `gorm:"not null"`
}

// ClubRow is a club joined with its manager's name and its derived counters.
// Counters are never stored, so they always agree with the membership tables.
type ClubRow struct {
	Club
	ManagerName   string
	MemberCount   int
	ActivityCount int
}

type MemberRow struct {
	UserID    uint
	Email     string
	FirstName string
	LastName  string
	Program   string
	AvatarURL string
	Role      string
	JoinedAt  time.Time
}

type CategoryCount struct {
	Name  string
	Count int64
}

type ClubQuery struct {
	Query      string
	Status     string // "validated", "pending" or anything else for all
	Category   string
	ManagerID  uint
	ViewerID   uint
	IncludeAll bool
	ByMembers  bool
	Limit      int
}

const clubColumns = `clubs.*, ` +
	`COALESCE(users.first_name || ' ' || users.last_name, '') AS manager_name, ` +
	`(SELECT COUNT(*) FROM club_members WHERE club_members.club_id = clubs.id) AS member_count, ` +
	`(SELECT COUNT(*) FROM activities WHERE activities.club_id = clubs.id) AS activity_count`

type ClubDAO struct {
	db *gorm.DB
}

func NewClubDAO(db *gorm.DB) *ClubDAO {
	return &ClubDAO{
		db: db,
	}
}

func (d *ClubDAO) rows(tx *gorm.DB) *gorm.DB {
	return tx.Table("clubs").
		Select(clubColumns).
		Joins("LEFT JOIN users ON users.id = clubs.manager_id")
}

// Insert stores the club and makes its manager the first member.
func (d *ClubDAO) Insert(ctx context.Context, club Club) (ClubRow, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&club).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrClubNameExists
			}

			return err
		}

		return tx.Create(&ClubMember{
			ClubID:   club.ID,
			UserID:   club.ManagerID,
			Role:     "manager",
			JoinedAt: club.CreatedAt,
		}).Error
	})
	if err != nil {
		return ClubRow{}, err
	}

	return d.FindByID(ctx, club.ID)
}

func (d *ClubDAO) FindByID(ctx context.Context, id uint) (ClubRow, error) {
	var rows []ClubRow

	if err := d.rows(d.db.WithContext(ctx)).Where("clubs.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return ClubRow{}, err
	}
	if len(rows) == 0 {
		return ClubRow{}, ErrClubNotFound
	}

	return rows[0], nil
}

// NameTaken reports whether another club already uses name, ignoring case.
func (d *ClubDAO) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	var n int64

	err := d.db.WithContext(ctx).Model(&Club{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, exceptID).
		Count(&n).Error
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (d *ClubDAO) List(ctx context.Context, q ClubQuery) ([]ClubRow, error) {
	rows := []ClubRow{}

	tx := d.rows(d.db.WithContext(ctx))
	if q.Query != "" {
		tx = tx.Where(`LOWER(clubs.name) LIKE ? ESCAPE '\'`, containsPattern(q.Query))
	}
	switch q.Status {
	case "validated":
		tx = tx.Where("clubs.is_validated = ?", true)
	case "pending":
		tx = tx.Where("clubs.is_validated = ?", false)
	}
	if q.Category != "" {
		tx = tx.Where("clubs.category = ?", q.Category)
	}
	if q.ManagerID != 0 {
		tx = tx.Where("clubs.manager_id = ?", q.ManagerID)
	}
	if !q.IncludeAll {
		tx = tx.Where("(clubs.is_validated = ? OR clubs.manager_id = ?)", true, q.ViewerID)
	}
	if q.ByMembers {
		tx = tx.Order("member_count DESC").Order("clubs.name")
	} else {
		tx = tx.Order("clubs.name")
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Update writes the given columns of club id and returns the fresh row.
func (d *ClubDAO) Update(ctx context.Context, id uint, columns map[string]any) (ClubRow, error) {
	result := d.db.WithContext(ctx).Model(&Club{ID: id}).Updates(columns)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ClubRow{}, ErrClubNameExists
		}

		return ClubRow{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ClubRow{}, ErrClubNotFound
	}

	return d.FindByID(ctx, id)
}

// Delete removes the club along with its memberships, its activities and
// their registrations. It returns the ids of the removed activities.
func (d *ClubDAO) Delete(ctx context.Context, id uint) ([]uint, error) {
	activityIDs := []uint{}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Activity{}).Where("club_id = ?", id).Order("id").Pluck("id", &activityIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id IN (?)", activityIDs).Delete(&ActivityParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&ClubMember{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Club{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrClubNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return activityIDs, nil
}

func (d *ClubDAO) Members(ctx context.Context, clubID uint) ([]MemberRow, error) {
	rows := []MemberRow{}

	err := d.db.WithContext(ctx).Table("club_members").
		Select("users.id AS user_id, users.email, users.first_name, users.last_name, users.program, users.avatar_url, " +
			"club_members.role, club_members.joined_at").
		Joins("JOIN users ON users.id = club_members.user_id").
		Where("club_members.club_id = ?", clubID).
		Order("CASE WHEN club_members.role = 'manager' THEN 0 ELSE 1 END").
		Order("club_members.joined_at").
		Order("users.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ClubDAO) IsMember(ctx context.Context, clubID, userID uint) (bool, error) {
	var n int64

	err := d.db.WithContext(ctx).Model(&ClubMember{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Count(&n).Error
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (d *ClubDAO) AddMember(ctx context.Context, member ClubMember) error {
	isMember, err := d.IsMember(ctx, member.ClubID, member.UserID)
	if err != nil {
		return err
	}
	if isMember {
		return ErrAlreadyMember
	}

	if err = d.db.WithContext(ctx).Create(&member).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyMember
		}

		return err
	}

	return nil
}

func (d *ClubDAO) RemoveMember(ctx context.Context, clubID, userID uint) error {
	result := d.db.WithContext(ctx).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Delete(&ClubMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotMember
	}

	return nil
}

func (d *ClubDAO) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&Club{}).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

func (d *ClubDAO) CountPending(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&Club{}).Where("is_validated = ?", false).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

func (d *ClubDAO) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	counts := []CategoryCount{}

	err := d.db.WithContext(ctx).Model(&Club{}).
		Select("category AS name, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Order("category").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}
