package domain

import "time"

var ActivityCategories = []string{
	"Autre", "Sport", "Arts", "Technologie", "Environnement", "Social",
	"Compétition", "Atelier", "Concert", "Spectacle",
}

const (
	ActivityStatusAll      = "all"
	ActivityStatusUpcoming = "upcoming"
	ActivityStatusPast     = "past"
)

type Activity struct {
	ID                  uint      `json:"id"`
	ClubID              uint      `json:"club_id"`
	ClubName            string    `json:"club_name"`
	ClubManagerID       uint      `json:"-"`
	ClubValidated       bool      `json:"-"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	StartsAt            time.Time `json:"starts_at"`
	Location            string    `json:"location"`
	MaxParticipants     int       `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	ImageURL            string    `json:"image_url,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (a Activity) PlacesLeft() int {
	if left := a.MaxParticipants - a.CurrentParticipants; left > 0 {
		return left
	}

	return 0
}

func (a Activity) IsFull() bool {
	return a.CurrentParticipants >= a.MaxParticipants
}

// IsUpcoming compares calendar days in now's location: an activity taking
// place today is still upcoming, whatever its start time.
func (a Activity) IsUpcoming(now time.Time) bool {
	return !a.StartsAt.Before(StartOfDay(now))
}

func (a Activity) VisibleTo(user User) bool {
	return a.ClubValidated || user.IsAdmin() || a.ClubManagerID == user.ID
}

func (a Activity) ManageableBy(user User) bool {
	return user.IsAdmin() || a.ClubManagerID == user.ID
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type Participant struct {
	UserID       uint      `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Program      string    `json:"program,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

type ActivityFilter struct {
	Query    string
	Status   string
	Category string
	ClubID   uint
	// Now splits upcoming from past activities.
	Now        time.Time
	ViewerID   uint
	IncludeAll bool
	Limit      int
}

// SeatUpdate is pushed to live subscribers whenever the participant count
// of an activity changes.
type SeatUpdate struct {
	ActivityID          uint `json:"activity_id"`
	CurrentParticipants int  `json:"current_participants"`
	MaxParticipants     int  `json:"max_participants"`
	PlacesLeft          int  `json:"places_left"`
}

func NewSeatUpdate(a Activity) SeatUpdate {
	return SeatUpdate{
		ActivityID:          a.ID,
		CurrentParticipants: a.CurrentParticipants,
		MaxParticipants:     a.MaxParticipants,
		PlacesLeft:          a.PlacesLeft(),
	}
}
