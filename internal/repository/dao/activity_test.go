package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityDAO_InsertAndFind(t *testing.T) {
	db := setupTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	manager := createUser(t, db, "manager@campus.edu", "club_manager")
	club := createClub(t, db, "Chess", manager.ID, true)

	paris := time.FixedZone("CET", 3600)
	startsAt := time.Date(2030, 3, 14, 18, 30, 0, 0, paris)
	activity := createActivity(t, db, club.ID, "Tournoi", startsAt, 20)

	found, err := d.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tournoi", found.Name)
	assert.Equal(t, "Chess", found.ClubName)
	assert.Equal(t, manager.ID, found.ClubManagerID)
	assert.True(t, found.ClubValidated)
	assert.Equal(t, 0, found.CurrentParticipants)
	assert.True(t, startsAt.Equal(found.StartsAt))

	_, err = d.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestActivityDAO_List(t *testing.T) {
	db := setupTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	manager := createUser(t, db, "manager@campus.edu", "club_manager")
	student := createUser(t, db, "student@campus.edu", "student")
	validated := createClub(t, db, "Chess", manager.ID, true)
	pending := createClub(t, db, "Chorale", manager.ID, false)

	dayStart := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	createActivity(t, db, validated.ID, "Yesterday", dayStart.Add(-12*time.Hour), 10)
	createActivity(t, db, validated.ID, "Earlier today", dayStart.Add(2*time.Hour), 10)
	createActivity(t, db, validated.ID, "Next week", dayStart.Add(7*24*time.Hour), 10)
	createActivity(t, db, validated.ID, "Last month", dayStart.Add(-30*24*time.Hour), 10)
	createActivity(t, db, pending.ID, "Rehearsal", dayStart.Add(24*time.Hour), 10)

	tests := []struct {
		name  string
		query ActivityQuery
		want  []string
	}{
		{
			name:  "upcoming includes today in date order",
			query: ActivityQuery{Status: "upcoming", DayStart: dayStart, IncludeAll: true},
			want:  []string{"Earlier today", "Rehearsal", "Next week"},
		},
		{
			name:  "past most recent first",
			query: ActivityQuery{Status: "past", DayStart: dayStart, IncludeAll: true},
			want:  []string{"Yesterday", "Last month"},
		},
		{
			name:  "students do not see activities of pending clubs",
			query: ActivityQuery{Status: "upcoming", DayStart: dayStart, ViewerID: student.ID},
			want:  []string{"Earlier today", "Next week"},
		},
		{
			name:  "manager sees own pending club",
			query: ActivityQuery{ClubID: pending.ID, ViewerID: manager.ID},
			want:  []string{"Rehearsal"},
		},
		{
			name:  "search by name",
			query: ActivityQuery{Query: "WEEK", IncludeAll: true},
			want:  []string{"Next week"},
		},
		{
			name:  "limit",
			query: ActivityQuery{Status: "upcoming", DayStart: dayStart, IncludeAll: true, Limit: 1},
			want:  []string{"Earlier today"},
		},
		{
			name:  "category filter",
			query: ActivityQuery{Category: "Concert", IncludeAll: true},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := d.List(ctx, tt.query)
			require.NoError(t, err)

			names := []string{}
			for _, row := range rows {
				names = append(names, row.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestActivityDAO_Register(t *testing.T) {
	db := setupTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	manager := createUser(t, db, "manager@campus.edu", "club_manager")
	club := createClub(t, db, "Chess", manager.ID, true)
	activity := createActivity(t, db, club.ID, "Blitz", tomorrow(), 2)

	first := createUser(t, db, "first@campus.edu", "student")
	second := createUser(t, db, "second@campus.edu", "student")
	third := createUser(t, db, "third@campus.edu", "student")

	row, err := d.Register(ctx, activity.ID, first.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, row.CurrentParticipants)

	_, err = d.Register(ctx, activity.ID, first.ID, time.Now())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	row, err = d.Register(ctx, activity.ID, second.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, row.CurrentParticipants)

	_, err = d.Register(ctx, activity.ID, third.ID, time.Now())
	assert.ErrorIs(t, err, ErrActivityFull)

	_, err = d.Register(ctx, 999, third.ID, time.Now())
	assert.ErrorIs(t, err, ErrActivityNotFound)

	registered, err := d.IsRegistered(ctx, activity.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, registered)

	row, err = d.Unregister(ctx, activity.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.CurrentParticipants)

	_, err = d.Unregister(ctx, activity.ID, second.ID)
	assert.ErrorIs(t, err, ErrNotRegistered)

	_, err = d.Unregister(ctx, 999, second.ID)
	assert.ErrorIs(t, err, ErrActivityNotFound)

	row, err = d.Register(ctx, activity.ID, third.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, row.CurrentParticipants)
}

func TestActivityDAO_RegisterNeverOverbooks(t *testing.T) {
	db := setupTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	manager := createUser(t, db, "manager@campus.edu", "club_manager")
	club := createClub(t, db, "Chess", manager.ID, true)
	activity := createActivity(t, db, club.ID, "Simul", tomorrow(), 3)

	students := make([]User, 8)
	for i := range students {
		students[i] = createUser(t, db, fmt.Sprintf("student%d@campus.edu", i), "student")
	}

	errs := make(chan error, len(students))
	for _, student := range students {
		go func(userID uint) {
			_, err := d.Register(ctx, activity.ID, userID, time.Now())
			errs <- err
		}(student.ID)
	}

	var ok, full int
	for range students {
		err := <-errs
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrActivityFull):
			full++
		}
	}
	assert.Equal(t, 3, ok)
	assert.Equal(t, 5, full)

	row, err := d.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, row.CurrentParticipants)
}

func TestActivityDAO_Update(t *testing.T) {
	db := setupTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	manager := createUser(t, db, "manager@campus.edu", "club_manager")
	club := createClub(t, db, "Chess", manager.ID, true)
	activity := createActivity(t, db, club.ID, "Blitz", tomorrow(), 3)

	for i := 0; i < 2; i++ {
		student := createUser(t, db, fmt.Sprintf("s%d@campus.edu", i), "student")
		_, err := d.Register(ctx, activity.ID, student.ID, time.Now())
		require.NoError(t, err)
	}

	_, err := d.Update(ctx, activity.ID, map[string]any{"max_participants": 1})
	assert.ErrorIs(t, err, ErrCapacityBelowParticipants)

	newStart := tomorrow().Add(48 * time.Hour)
	row, err := d.Update(ctx, activity.ID, map[string]any{
		"name":             "Blitz géant",
		"max_participants": 2,
		"starts_at":        newStart,
	})
	require.NoError(t, err)
	assert.Equal(t, "Blitz géant", row.Name)
	assert.Equal(t, 2, row.MaxParticipants)
	assert.True(t, newStart.Equal(row.StartsAt))

	_, err = d.Update(ctx, 999, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestActivityDAO_Delete(t *testing.T) {
	db := setupTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	manager := createUser(t, db, "manager@campus.edu", "club_manager")
	student := createUser(t, db, "student@campus.edu", "student")
	club := createClub(t, db, "Chess", manager.ID, true)
	activity := createActivity(t, db, club.ID, "Blitz", tomorrow(), 3)

	_, err := d.Register(ctx, activity.ID, student.ID, time.Now())
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, activity.ID))
	assert.ErrorIs(t, d.Delete(ctx, activity.ID), ErrActivityNotFound)

	registrations, err := d.CountRegistrations(ctx)
	require.NoError(t, err)
	assert.Zero(t, registrations)
}

func TestActivityDAO_ParticipantsAndStats(t *testing.T) {
	db := setupTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	manager := createUser(t, db, "manager@campus.edu", "club_manager")
	club := createClub(t, db, "Chess", manager.ID, true)
	blitz := createActivity(t, db, club.ID, "Blitz", tomorrow(), 5)
	createActivity(t, db, club.ID, "Rapid", tomorrow(), 5)

	late := createUser(t, db, "late@campus.edu", "student")
	early := createUser(t, db, "early@campus.edu", "student")

	now := time.Now().UTC().Truncate(time.Second)
	_, err := d.Register(ctx, blitz.ID, late.ID, now)
	require.NoError(t, err)
	_, err = d.Register(ctx, blitz.ID, early.ID, now.Add(-90*24*time.Hour))
	require.NoError(t, err)

	participants, err := d.Participants(ctx, blitz.ID)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.Equal(t, early.ID, participants[0].UserID)
	assert.Equal(t, "early@campus.edu", participants[0].Email)
	assert.Equal(t, "Informatique", participants[0].Program)
	assert.Equal(t, late.ID, participants[1].UserID)

	recent, err := d.RegistrationTimes(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, now.Equal(recent[0]))

	total, err := d.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	registrations, err := d.CountRegistrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), registrations)

	byCategory, err := d.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{{Name: "Atelier", Count: 2}}, byCategory)
}
