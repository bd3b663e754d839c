package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrActivityNotFound          = errors.New("activity not found")
	ErrAlreadyRegistered         = errors.New("user is already registered for the activity")
	ErrNotRegistered             = errors.New("user is not registered for the activity")
	ErrActivityFull              = errors.New("activity is full")
	ErrCapacityBelowParticipants = errors.New("max participants is below the current participant count")
)

type Activity struct {
	ID              uint   `gorm:"primaryKey"`
	ClubID          uint   `gorm:"not null;index"`
	Name            string `gorm:"not null"`
	Description     string
	Category        string    `gorm:"not null;index"`
	StartsAt        time.Time `gorm:"not null;index"`
	Location        string    `gorm:"not null"`
	MaxParticipants int       `gorm:"not null"`
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ActivityParticipant struct {
	ActivityID   uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"primaryKey;index"`
	RegisteredAt time.Time `gorm:"not null;index"`
}

// ActivityRow is an activity joined with the fields of its club that the
// access rules need and its derived participant count.
type ActivityRow struct {
	Activity
	ClubName            string
	ClubManagerID       uint
	ClubValidated       bool
	CurrentParticipants int
}

type ParticipantRow struct {
	UserID       uint
	Email        string
	FirstName    string
	LastName     string
	Program      string
	AvatarURL    string
	RegisteredAt time.Time
}

type ActivityQuery struct {
	Query    string
	Status   string // "upcoming", "past" or anything else for all
	Category string
	ClubID   uint
	// DayStart is the first instant of the current day; activities starting
	// at or after it are upcoming.
	DayStart   time.Time
	ViewerID   uint
	IncludeAll bool
	Limit      int
}

const activityColumns = `activities.*, ` +
	`clubs.name AS club_name, clubs.manager_id AS club_manager_id, clubs.is_validated AS club_validated, ` +
	`(SELECT COUNT(*) FROM activity_participants WHERE activity_participants.activity_id = activities.id) AS current_participants`

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) rows(tx *gorm.DB) *gorm.DB {
	return tx.Table("activities").
		Select(activityColumns).
		Joins("JOIN clubs ON clubs.id = activities.club_id")
}

func (d *ActivityDAO) Insert(ctx context.Context, activity Activity) (ActivityRow, error) {
	activity.StartsAt = activity.StartsAt.UTC()

	if err := d.db.WithContext(ctx).Create(&activity).Error; err != nil {
		return ActivityRow{}, err
	}

	return d.FindByID(ctx, activity.ID)
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uint) (ActivityRow, error) {
	var rows []ActivityRow

	if err := d.rows(d.db.WithContext(ctx)).Where("activities.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return ActivityRow{}, err
	}
	if len(rows) == 0 {
		return ActivityRow{}, ErrActivityNotFound
	}

	return rows[0], nil
}

func (d *ActivityDAO) List(ctx context.Context, q ActivityQuery) ([]ActivityRow, error) {
	rows := []ActivityRow{}

	tx := d.rows(d.db.WithContext(ctx))
	if q.Query != "" {
		tx = tx.Where(`LOWER(activities.name) LIKE ? ESCAPE '\'`, containsPattern(q.Query))
	}
	switch q.Status {
	case "upcoming":
		tx = tx.Where("activities.starts_at >= ?", q.DayStart.UTC()).Order("activities.starts_at")
	case "past":
		tx = tx.Where("activities.starts_at < ?", q.DayStart.UTC()).Order("activities.starts_at DESC")
	default:
		tx = tx.Order("activities.starts_at")
	}
	if q.Category != "" {
		tx = tx.Where("activities.category = ?", q.Category)
	}
	if q.ClubID != 0 {
		tx = tx.Where("activities.club_id = ?", q.ClubID)
	}
	if !q.IncludeAll {
		tx = tx.Where("(clubs.is_validated = ? OR clubs.manager_id = ?)", true, q.ViewerID)
	}
	tx = tx.Order("activities.id")
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Update writes the given columns of activity id. A new max_participants
// may not drop below the number of registered participants.
func (d *ActivityDAO) Update(ctx context.Context, id uint, columns map[string]any) (ActivityRow, error) {
	if startsAt, ok := columns["starts_at"].(time.Time); ok {
		columns["starts_at"] = startsAt.UTC()
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity Activity
		if err := forUpdate(tx).First(&activity, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityNotFound
			}

			return err
		}

		if maxParticipants, ok := columns["max_participants"].(int); ok {
			current, err := countParticipants(tx, id)
			if err != nil {
				return err
			}
			if int64(maxParticipants) < current {
				return ErrCapacityBelowParticipants
			}
		}

		return tx.Model(&activity).Updates(columns).Error
	})
	if err != nil {
		return ActivityRow{}, err
	}

	return d.FindByID(ctx, id)
}

func (d *ActivityDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).Delete(&ActivityParticipant{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Activity{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrActivityNotFound
		}

		return nil
	})
}

// Register adds userID to the participants of activityID. The activity row
// stays locked while the capacity is checked, so concurrent registrations
// cannot overbook it.
func (d *ActivityDAO) Register(ctx context.Context, activityID, userID uint, at time.Time) (ActivityRow, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity Activity
		if err := forUpdate(tx).First(&activity, activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityNotFound
			}

			return err
		}

		registered, err := isRegistered(tx, activityID, userID)
		if err != nil {
			return err
		}
		if registered {
			return ErrAlreadyRegistered
		}

		current, err := countParticipants(tx, activityID)
		if err != nil {
			return err
		}
		if current >= int64(activity.MaxParticipants) {
			return ErrActivityFull
		}

		err = tx.Create(&ActivityParticipant{
			ActivityID:   activityID,
			UserID:       userID,
			RegisteredAt: at.UTC(),
		}).Error
		if isUniqueViolation(err) {
			return ErrAlreadyRegistered
		}

		return err
	})
	if err != nil {
		return ActivityRow{}, err
	}

	return d.FindByID(ctx, activityID)
}

func (d *ActivityDAO) Unregister(ctx context.Context, activityID, userID uint) (ActivityRow, error) {
	result := d.db.WithContext(ctx).
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		Delete(&ActivityParticipant{})
	if result.Error != nil {
		return ActivityRow{}, result.Error
	}

	row, err := d.FindByID(ctx, activityID)
	if err != nil {
		return ActivityRow{}, err
	}
	if result.RowsAffected == 0 {
		return ActivityRow{}, ErrNotRegistered
	}

	return row, nil
}

func (d *ActivityDAO) IsRegistered(ctx context.Context, activityID, userID uint) (bool, error) {
	return isRegistered(d.db.WithContext(ctx), activityID, userID)
}

func (d *ActivityDAO) Participants(ctx context.Context, activityID uint) ([]ParticipantRow, error) {
	rows := []ParticipantRow{}

	err := d.db.WithContext(ctx).Table("activity_participants").
		Select("users.id AS user_id, users.email, users.first_name, users.last_name, users.program, users.avatar_url, " +
			"activity_participants.registered_at").
		Joins("JOIN users ON users.id = activity_participants.user_id").
		Where("activity_participants.activity_id = ?", activityID).
		Order("activity_participants.registered_at").
		Order("users.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ActivityDAO) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&Activity{}).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

func (d *ActivityDAO) CountRegistrations(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&ActivityParticipant{}).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

func (d *ActivityDAO) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	counts := []CategoryCount{}

	err := d.db.WithContext(ctx).Model(&Activity{}).
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

// RegistrationTimes returns when each registration made since the given
// instant happened. Bucketing is left to the caller so that no
// dialect-specific date function is needed.
func (d *ActivityDAO) RegistrationTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	times := []time.Time{}

	err := d.db.WithContext(ctx).Model(&ActivityParticipant{}).
		Where("registered_at >= ?", since.UTC()).
		Order("registered_at").
		Pluck("registered_at", &times).Error
	if err != nil {
		return nil, err
	}

	return times, nil
}

func isRegistered(tx *gorm.DB, activityID, userID uint) (bool, error) {
	var n int64

	err := tx.Model(&ActivityParticipant{}).
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		Count(&n).Error
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func countParticipants(tx *gorm.DB, activityID uint) (int64, error) {
	var n int64

	err := tx.Model(&ActivityParticipant{}).Where("activity_id = ?", activityID).Count(&n).Error
	if err != nil {
		return 0, err
	}

	return n, nil
}
