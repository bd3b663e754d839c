package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/repository"
)

func TestUserService_GetUserFor(t *testing.T) {
	repo := new(mockUserRepository)
	s := NewUserService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctxAny, student.ID).Return(student, nil)

	got, err := s.GetUserFor(ctx, student, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.Email, got.Email)

	got, err = s.GetUserFor(ctx, admin, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, got.ID)

	_, err = s.GetUserFor(ctx, manager, student.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUserService_GetProfile(t *testing.T) {
	repo := new(mockUserRepository)
	s := NewUserService(repo)

	repo.On("FindByID", ctxAny, student.ID).Return(student, nil)
	repo.On("Memberships", ctxAny, student.ID).Return([]uint{1, 4}, []uint{2}, nil)

	profile, err := s.GetProfile(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, student, profile.User)
	assert.Equal(t, []uint{1, 4}, profile.Clubs)
	assert.Equal(t, []uint{2}, profile.Activities)
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := new(mockUserRepository)
	s := NewUserService(repo)

	lang := domain.LanguageEnglish
	update := domain.ProfileUpdate{Language: &lang}
	updated := student
	updated.Language = lang

	repo.On("UpdateProfile", ctxAny, student.ID, update).Return(updated, nil)
	repo.On("FindByID", ctxAny, student.ID).Return(updated, nil)
	repo.On("Memberships", ctxAny, student.ID).Return([]uint{}, []uint{}, nil)

	profile, err := s.UpdateProfile(context.Background(), student.ID, update)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageEnglish, profile.Language)
	repo.AssertExpectations(t)
}

func TestUserService_ListUsers(t *testing.T) {
	repo := new(mockUserRepository)
	s := NewUserService(repo)

	filter := domain.UserFilter{Query: "mar", Status: domain.UserStatusActive}
	repo.On("List", ctxAny, filter).Return([]domain.User{manager, student}, nil)
	repo.On("Stats", ctxAny).Return(domain.UserStats{Total: 3, Active: 3}, nil)

	users, stats, err := s.ListUsers(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(3), stats.Total)
}

func TestUserService_SetBlocked(t *testing.T) {
	repo := new(mockUserRepository)
	s := NewUserService(repo)
	ctx := context.Background()

	blocked := student
	blocked.IsBlocked = true
	repo.On("SetBlocked", ctxAny, student.ID, true).Return(blocked, nil)
	repo.On("SetBlocked", ctxAny, uint(99), true).Return(domain.User{}, repository.ErrUserNotFound)

	got, err := s.SetBlocked(ctx, admin, student.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsBlocked)

	_, err = s.SetBlocked(ctx, admin, admin.ID, true)
	assert.ErrorIs(t, err, ErrCannotBlockSelf)

	_, err = s.SetBlocked(ctx, admin, 99, true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_SetRole(t *testing.T) {
	repo := new(mockUserRepository)
	s := NewUserService(repo)
	ctx := context.Background()

	promoted := student
	promoted.Role = domain.RoleClubManager
	repo.On("SetRole", ctxAny, student.ID, domain.RoleClubManager).Return(promoted, nil)

	got, err := s.SetRole(ctx, admin, student.ID, domain.RoleClubManager)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClubManager, got.Role)

	_, err = s.SetRole(ctx, admin, student.ID, domain.Role("professor"))
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = s.SetRole(ctx, admin, admin.ID, domain.RoleStudent)
	assert.ErrorIs(t, err, ErrCannotChangeOwnRole)

	repo.AssertNumberOfCalls(t, "SetRole", 1)
	repo.AssertNotCalled(t, "SetRole", mock.Anything, admin.ID, mock.Anything)
}
