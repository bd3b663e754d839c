package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivity_Seats(t *testing.T) {
	a := Activity{ID: 7, MaxParticipants: 3, CurrentParticipants: 1}
	assert.Equal(t, 2, a.PlacesLeft())
	assert.False(t, a.IsFull())
	assert.Equal(t, SeatUpdate{ActivityID: 7, CurrentParticipants: 1, MaxParticipants: 3, PlacesLeft: 2}, NewSeatUpdate(a))

	a.CurrentParticipants = 3
	assert.Zero(t, a.PlacesLeft())
	assert.True(t, a.IsFull())

	// capacity lowered below the count by an older row never goes negative
	a.MaxParticipants = 2
	assert.Zero(t, a.PlacesLeft())
}

func TestActivity_IsUpcoming(t *testing.T) {
	now := time.Date(2030, 5, 10, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		startsAt time.Time
		want     bool
	}{
		{name: "earlier today", startsAt: time.Date(2030, 5, 10, 8, 0, 0, 0, time.UTC), want: true},
		{name: "midnight today", startsAt: time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC), want: true},
		{name: "tomorrow", startsAt: time.Date(2030, 5, 11, 9, 0, 0, 0, time.UTC), want: true},
		{name: "yesterday evening", startsAt: time.Date(2030, 5, 9, 23, 59, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Activity{StartsAt: tt.startsAt}.IsUpcoming(now))
		})
	}
}

func TestVisibility(t *testing.T) {
	admin := User{ID: 1, Role: RoleAdmin}
	manager := User{ID: 2, Role: RoleClubManager}
	otherManager := User{ID: 3, Role: RoleClubManager}
	student := User{ID: 4, Role: RoleStudent}

	pending := Club{ManagerID: manager.ID}
	assert.True(t, pending.VisibleTo(admin))
	assert.True(t, pending.VisibleTo(manager))
	assert.False(t, pending.VisibleTo(otherManager))
	assert.False(t, pending.VisibleTo(student))

	validated := Club{ManagerID: manager.ID, IsValidated: true}
	assert.True(t, validated.VisibleTo(student))
	assert.False(t, validated.ManageableBy(otherManager))
	assert.True(t, validated.ManageableBy(admin))

	activity := Activity{ClubManagerID: manager.ID}
	assert.False(t, activity.VisibleTo(student))
	assert.True(t, activity.ManageableBy(manager))
	assert.False(t, activity.ManageableBy(student))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleClubManager.Valid())
	assert.False(t, Role("professor").Valid())
	assert.Equal(t, "Sophie Bernard", User{FirstName: "Sophie", LastName: "Bernard"}.FullName())
}
