package domain

import "time"

var ClubCategories = []string{"Autre", "Sport", "Arts", "Technologie", "Environnement", "Social"}

const (
	ClubStatusAll       = "all"
	ClubStatusValidated = "validated"
	ClubStatusPending   = "pending"
)

const (
	MemberRoleMember  = "member"
	MemberRoleManager = "manager"
)

type Club struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url,omitempty"`
	ManagerID     uint      `json:"manager_id"`
	ManagerName   string    `json:"manager_name"`
	MemberCount   int       `json:"member_count"`
	ActivityCount int       `json:"activity_count"`
	IsValidated   bool      `json:"is_validated"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// VisibleTo reports whether user may see the club: validated clubs are
// public, pending ones only to their manager and admins.
func (c Club) VisibleTo(user User) bool {
	return c.IsValidated || user.IsAdmin() || c.ManagerID == user.ID
}

// ManageableBy reports whether user may edit the club and its activities.
func (c Club) ManageableBy(user User) bool {
	return user.IsAdmin() || c.ManagerID == user.ID
}

type ClubMember struct {
	UserID    uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Program   string    `json:"program,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

type ClubFilter struct {
	Query    string
	Status   string
	Category string
	// ViewerID sees their own pending clubs when IncludeAll is false.
	ViewerID   uint
	IncludeAll bool
	// ByMembers orders the most joined clubs first instead of by name.
	ByMembers bool
	Limit     int
}
