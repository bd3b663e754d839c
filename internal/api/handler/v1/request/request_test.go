package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/campus-api/internal/domain"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := func() SignupRequest {
		return SignupRequest{
			Email:           "sophie@campus.edu",
			Password:        "student123",
			ConfirmPassword: "student123",
			FirstName:       "Sophie",
			LastName:        "Bernard",
			Year:            3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*SignupRequest)
		wantErr error
		invalid bool
	}{
		{name: "valid", mutate: func(*SignupRequest) {}},
		{name: "bad email", mutate: func(r *SignupRequest) { r.Email = "sophie" }, invalid: true},
		{name: "no digit", mutate: func(r *SignupRequest) { r.Password, r.ConfirmPassword = "password", "password" }, wantErr: errInvalidPassword},
		{name: "too short", mutate: func(r *SignupRequest) { r.Password, r.ConfirmPassword = "abc12", "abc12" }, wantErr: errInvalidPassword},
		{name: "mismatch", mutate: func(r *SignupRequest) { r.ConfirmPassword = "student124" }, wantErr: errConfirmPasswordMismatch},
		{name: "year out of range", mutate: func(r *SignupRequest) { r.Year = 11 }, invalid: true},
		{name: "missing last name", mutate: func(r *SignupRequest) { r.LastName = "" }, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := req.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.invalid:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	lang := "en"
	req := UpdateProfileRequest{Language: &lang}
	require.NoError(t, req.Validate())
	assert.Equal(t, &lang, req.ToDomain().Language)
	assert.Nil(t, req.ToDomain().Program)

	lang = "de"
	assert.Error(t, req.Validate())

	empty := ""
	assert.Error(t, (&UpdateProfileRequest{FirstName: &empty}).Validate())
}

func TestUpdateRoleRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateRoleRequest{Role: "club_manager"}).Validate())
	assert.Error(t, (&UpdateRoleRequest{Role: "root"}).Validate())
	assert.Error(t, (&UpdateRoleRequest{}).Validate())
}

func TestClubRequest_Validate(t *testing.T) {
	req := ClubRequest{Name: "  Club Jazz  ", Description: "Jam sessions every Friday", Category: "Arts"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Club Jazz", req.ToDomain().Name)

	req.Category = "Cuisine"
	assert.Error(t, req.Validate())

	req.Category = "Arts"
	req.ImageURL = "not a url"
	assert.Error(t, req.Validate())

	req.ImageURL = ""
	req.Name = "  J "
	assert.Error(t, req.Validate())
}

func TestListQueries_Validate(t *testing.T) {
	assert.NoError(t, (&ClubListQuery{Status: "pending", Category: "Sport"}).Validate())
	assert.Error(t, (&ClubListQuery{Status: "archived"}).Validate())
	assert.Error(t, (&ActivityListQuery{Status: "tomorrow"}).Validate())
	assert.Error(t, (&ActivityListQuery{Category: "Cuisine"}).Validate())
	assert.NoError(t, (&UserListQuery{Status: "blocked", Role: "admin"}).Validate())
	assert.Error(t, (&UserListQuery{Role: "professor"}).Validate())

	filter := (&ActivityListQuery{Query: " hack ", Status: "upcoming", ClubID: 4}).ToDomain()
	assert.Equal(t, "hack", filter.Query)
	assert.Equal(t, uint(4), filter.ClubID)

	users := (&UserListQuery{Query: "  bernard ", Role: "student"}).ToDomain()
	assert.Equal(t, "bernard", users.Query)
	assert.Equal(t, domain.RoleStudent, users.Role)
}

func TestActivityRequest(t *testing.T) {
	valid := func() ActivityRequest {
		return ActivityRequest{
			Name:            "Tournoi de blitz",
			Description:     "Cadences rapides au foyer",
			Category:        "Compétition",
			Date:            "2030-03-14",
			Time:            "18:30",
			Location:        "Foyer",
			MaxParticipants: 16,
		}
	}

	req := valid()
	require.NoError(t, req.Validate())

	casablanca := time.FixedZone("+01", 3600)
	activity := req.ToDomain(casablanca)
	assert.True(t, time.Date(2030, 3, 14, 17, 30, 0, 0, time.UTC).Equal(activity.StartsAt))
	assert.Equal(t, 16, activity.MaxParticipants)

	tests := []struct {
		name   string
		mutate func(*ActivityRequest)
	}{
		{name: "bad date", mutate: func(r *ActivityRequest) { r.Date = "14/03/2030" }},
		{name: "bad time", mutate: func(r *ActivityRequest) { r.Time = "25:00" }},
		{name: "no capacity", mutate: func(r *ActivityRequest) { r.MaxParticipants = 0 }},
		{name: "negative capacity", mutate: func(r *ActivityRequest) { r.MaxParticipants = -3 }},
		{name: "unknown category", mutate: func(r *ActivityRequest) { r.Category = "Cuisine" }},
		{name: "blank location", mutate: func(r *ActivityRequest) { r.Location = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}
