package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/repository"
)

func TestAuthService_Signup(t *testing.T) {
	repo := new(mockUserRepository)
	s := NewAuthService(repo)

	repo.On("FindByEmail", ctxAny, "new@campus.edu").Return(domain.User{}, repository.ErrUserNotFound)
	repo.On("Create", ctxAny, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@campus.edu" &&
			u.Role == domain.RoleStudent &&
			u.Language == domain.LanguageFrench &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
	})).Return(domain.User{ID: 7, Email: "new@campus.edu", Role: domain.RoleStudent}, nil)

	created, err := s.Signup(context.Background(), domain.User{
		Email:    " New@Campus.edu ",
		Password: "secret123",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
	repo.AssertExpectations(t)
}

func TestAuthService_SignupEmailTaken(t *testing.T) {
	repo := new(mockUserRepository)
	s := NewAuthService(repo)

	repo.On("FindByEmail", ctxAny, "taken@campus.edu").Return(domain.User{ID: 1}, nil)

	_, err := s.Signup(context.Background(), domain.User{Email: "taken@campus.edu", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.MinCost)
	require.NoError(t, err)

	active := domain.User{ID: 3, Email: "student@campus.edu", Password: string(hash), Role: domain.RoleStudent}
	blocked := active
	blocked.IsBlocked = true
	dbErr := errors.New("connection refused")

	tests := []struct {
		name     string
		found    domain.User
		findErr  error
		password string
		wantErr  error
	}{
		{name: "success", found: active, password: "student123"},
		{name: "unknown email", findErr: repository.ErrUserNotFound, password: "student123", wantErr: ErrUserNotFound},
		{name: "wrong password", found: active, password: "nope", wantErr: ErrWrongPassword},
		{name: "blocked", found: blocked, password: "student123", wantErr: ErrUserBlocked},
		{name: "blocked with wrong password", found: blocked, password: "nope", wantErr: ErrWrongPassword},
		{name: "database error", findErr: dbErr, password: "student123", wantErr: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			repo.On("FindByEmail", ctxAny, "student@campus.edu").Return(tt.found, tt.findErr)

			user, err := NewAuthService(repo).Login(context.Background(), "student@campus.edu", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, active.ID, user.ID)
		})
	}
}

func TestAuthService_LoginUnknownEmailStillHashes(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("FindByEmail", ctxAny, "ghost@campus.edu").Return(domain.User{}, repository.ErrUserNotFound)

	s := NewAuthService(repo)
	var compared [][]byte
	s.compare = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	_, err := s.Login(context.Background(), "ghost@campus.edu", "student123")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.Len(t, compared, 1)
	cost, err := bcrypt.Cost(compared[0])
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
