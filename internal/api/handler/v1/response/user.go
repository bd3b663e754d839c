package response

import "github.com/campuslife/campus-api/internal/domain"

type UserList struct {
	Users []domain.User    `json:"users"`
	Stats domain.UserStats `json:"stats"`
}
