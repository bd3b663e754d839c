package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/campuslife/campus-api/internal/domain"
)

var roles = []interface{}{
	string(domain.RoleStudent),
	string(domain.RoleClubManager),
	string(domain.RoleAdmin),
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Program   *string `json:"program"`
	Year      *int    `json:"year"`
	AvatarURL *string `json:"avatar_url"`
	Language  *string `json:"language"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.Program, validation.Length(0, 100)),
		validation.Field(&req.Year, validation.Min(1), validation.Max(10)),
		validation.Field(&req.AvatarURL, is.URL),
		validation.Field(&req.Language, validation.NilOrNotEmpty, validation.In(domain.LanguageFrench, domain.LanguageEnglish)),
	)
}

func (req *UpdateProfileRequest) ToDomain() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Program:   req.Program,
		Year:      req.Year,
		AvatarURL: req.AvatarURL,
		Language:  req.Language,
	}
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func (req *UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.Required, validation.In(roles...)),
	)
}

type UserListQuery struct {
	Query  string `form:"q"`
	Status string `form:"status"`
	Role   string `form:"role"`
}

func (q *UserListQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Status, validation.In(domain.UserStatusAll, domain.UserStatusActive, domain.UserStatusBlocked)),
		validation.Field(&q.Role, validation.In(roles...)),
	)
}

func (q *UserListQuery) ToDomain() domain.UserFilter {
	return domain.UserFilter{
		Query:  strings.TrimSpace(q.Query),
		Status: q.Status,
		Role:   domain.Role(q.Role),
	}
}
