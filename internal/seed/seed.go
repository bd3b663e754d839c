// Package seed loads the demo accounts, clubs and activities into an empty
// database.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campuslife/campus-api/internal/repository/dao"
)

//go:embed fixtures.toml
var defaultFixtures []byte

type Fixtures struct {
	Users      []UserFixture     `toml:"users"`
	Clubs      []ClubFixture     `toml:"clubs"`
	Activities []ActivityFixture `toml:"activities"`
}

type UserFixture struct {
	Email     string `toml:"email"`
	Password  string `toml:"password"`
	FirstName string `toml:"first_name"`
	LastName  string `toml:"last_name"`
	Role      string `toml:"role"`
	Program   string `toml:"program"`
	Year      int    `toml:"year"`
	Blocked   bool   `toml:"blocked"`
}

type ClubFixture struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Category    string   `toml:"category"`
	Manager     string   `toml:"manager"`
	Validated   bool     `toml:"validated"`
	Members     []string `toml:"members"`
}

type ActivityFixture struct {
	Club            string   `toml:"club"`
	Name            string   `toml:"name"`
	Description     string   `toml:"description"`
	Category        string   `toml:"category"`
	InDays          int      `toml:"in_days"`
	Time            string   `toml:"time"`
	Location        string   `toml:"location"`
	MaxParticipants int      `toml:"max_participants"`
	Participants    []string `toml:"participants"`
}

// Load decodes the fixture file at path, or the embedded fixtures when
// path is empty.
func Load(path string) (Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return Fixtures{}, fmt.Errorf("os.ReadFile -> %w", err)
		}
	}

	var f Fixtures
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		return Fixtures{}, fmt.Errorf("toml.Decode -> %w", err)
	}

	return f, nil
}

type Seeder struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:  db,
		now: time.Now,
	}
}

// Run inserts f unless the database already holds users, and reports
// whether anything was written. Either all of f is written or nothing.
func (s *Seeder) Run(ctx context.Context, f Fixtures) (bool, error) {
	count, err := dao.NewUserDAO(s.db).Count(ctx)
	if err != nil {
		return false, fmt.Errorf("dao.Count -> %w", err)
	}
	if count > 0 {
		zap.L().Debug("database already populated, skipping seed", zap.Int64("users", count))
		return false, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.insert(ctx, tx, f)
	})
	if err != nil {
		return false, err
	}

	zap.L().Info("database seeded",
		zap.Int("users", len(f.Users)),
		zap.Int("clubs", len(f.Clubs)),
		zap.Int("activities", len(f.Activities)),
	)

	return true, nil
}

func (s *Seeder) insert(ctx context.Context, tx *gorm.DB, f Fixtures) error {
	var (
		users      = dao.NewUserDAO(tx)
		clubs      = dao.NewClubDAO(tx)
		activities = dao.NewActivityDAO(tx)
	)

	now := s.now()
	userIDs := make(map[string]uint, len(f.Users))
	for _, u := range f.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
		}

		user, err := users.Insert(ctx, dao.User{
			Email:     u.Email,
			Password:  string(hash),
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
			Program:   u.Program,
			Year:      u.Year,
			IsBlocked: u.Blocked,
			Language:  "fr",
		})
		if err != nil {
			return fmt.Errorf("users.Insert %s -> %w", u.Email, err)
		}
		userIDs[user.Email] = user.ID
	}

	lookup := func(email string) (uint, error) {
		id, ok := userIDs[email]
		if !ok {
			return 0, fmt.Errorf("unknown user %q in fixtures", email)
		}

		return id, nil
	}

	clubIDs := make(map[string]uint, len(f.Clubs))
	for _, c := range f.Clubs {
		managerID, err := lookup(c.Manager)
		if err != nil {
			return err
		}

		club, err := clubs.Insert(ctx, dao.Club{
			Name:        c.Name,
			Description: c.Description,
			Category:    c.Category,
			ManagerID:   managerID,
			IsValidated: c.Validated,
		})
		if err != nil {
			return fmt.Errorf("clubs.Insert %s -> %w", c.Name, err)
		}
		clubIDs[c.Name] = club.ID

		for _, email := range c.Members {
			userID, err := lookup(email)
			if err != nil {
				return err
			}

			err = clubs.AddMember(ctx, dao.ClubMember{
				ClubID:   club.ID,
				UserID:   userID,
				Role:     "member",
				JoinedAt: now.UTC(),
			})
			if err != nil {
				return fmt.Errorf("clubs.AddMember -> %w", err)
			}
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, a := range f.Activities {
		clubID, ok := clubIDs[a.Club]
		if !ok {
			return fmt.Errorf("unknown club %q in fixtures", a.Club)
		}

		clock, err := time.Parse("15:04", a.Time)
		if err != nil {
			return fmt.Errorf("activity %s: time.Parse -> %w", a.Name, err)
		}
		startsAt := today.AddDate(0, 0, a.InDays).Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)

		activity, err := activities.Insert(ctx, dao.Activity{
			ClubID:          clubID,
			Name:            a.Name,
			Description:     a.Description,
			Category:        a.Category,
			StartsAt:        startsAt,
			Location:        a.Location,
			MaxParticipants: a.MaxParticipants,
		})
		if err != nil {
			return fmt.Errorf("activities.Insert %s -> %w", a.Name, err)
		}

		for _, email := range a.Participants {
			userID, err := lookup(email)
			if err != nil {
				return err
			}

			if _, err = activities.Register(ctx, activity.ID, userID, now); err != nil {
				return fmt.Errorf("activities.Register -> %w", err)
			}
		}
	}

	return nil
}
