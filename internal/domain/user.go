package domain

import "time"

type Role string

const (
	RoleStudent     Role = "student"
	RoleClubManager Role = "club_manager"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleClubManager, RoleAdmin:
		return true
	}

	return false
}

const (
	LanguageFrench  = "fr"
	LanguageEnglish = "en"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	Program   string    `json:"program,omitempty"`
	Year      int       `json:"year,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	IsBlocked bool      `json:"is_blocked"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile is a user together with the ids of the clubs they belong to and
// the activities they registered for.
type Profile struct {
	User
	Clubs      []uint `json:"clubs"`
	Activities []uint `json:"activities"`
}

// ProfileUpdate carries the fields a user may change on their own account.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Program   *string
	Year      *int
	AvatarURL *string
	Language  *string
}

const (
	UserStatusAll     = "all"
	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)

type UserFilter struct {
	Query  string
	Status string
	Role   Role
}

type UserStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Blocked int64 `json:"blocked"`
}
