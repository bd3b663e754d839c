package dao

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// setupTestDB opens a private in-memory SQLite database with every table migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:dao_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, InitTables(db))

	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) User {
	t.Helper()

	user, err := NewUserDAO(db).Insert(context.Background(), User{
		Email:     email,
		Password:  "hash",
		FirstName: "First " + email,
		LastName:  "Last",
		Role:      role,
		Program:   "Informatique",
		Language:  "fr",
	})
	require.NoError(t, err)

	return user
}

func createClub(t *testing.T, db *gorm.DB, name string, managerID uint, validated bool) ClubRow {
	t.Helper()

	club, err := NewClubDAO(db).Insert(context.Background(), Club{
		Name:        name,
		Description: "A club for testing purposes",
		Category:    "Sport",
		ManagerID:   managerID,
		IsValidated: validated,
	})
	require.NoError(t, err)

	return club
}

func createActivity(t *testing.T, db *gorm.DB, clubID uint, name string, startsAt time.Time, capacity int) ActivityRow {
	t.Helper()

	activity, err := NewActivityDAO(db).Insert(context.Background(), Activity{
		ClubID:          clubID,
		Name:            name,
		Description:     "An activity for testing purposes",
		Category:        "Atelier",
		StartsAt:        startsAt,
		Location:        "Amphi A",
		MaxParticipants: capacity,
	})
	require.NoError(t, err)

	return activity
}

func tomorrow() time.Time {
	return time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
}
