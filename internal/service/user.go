package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/repository"
)

var (
	ErrUserNotFound        = repository.ErrUserNotFound
	ErrPermissionDenied    = errors.New("permission denied")
	ErrCannotBlockSelf     = errors.New("an administrator cannot block themselves")
	ErrCannotChangeOwnRole = errors.New("an administrator cannot change their own role")
	ErrInvalidRole         = errors.New("invalid role")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Stats(ctx context.Context) (domain.UserStats, error)
	UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (domain.User, error)
	SetBlocked(ctx context.Context, id uint, blocked bool) (domain.User, error)
	SetRole(ctx context.Context, id uint, role domain.Role) (domain.User, error)
	Memberships(ctx context.Context, userID uint) ([]uint, []uint, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// GetUserFor returns user id as seen by actor: admins see everyone, other
// users only themselves.
func (s *UserService) GetUserFor(ctx context.Context, actor domain.User, id uint) (domain.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return domain.User{}, ErrPermissionDenied
	}

	return s.GetUser(ctx, id)
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (domain.Profile, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}

	clubs, activities, err := s.repo.Memberships(ctx, id)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.Memberships -> %w", err)
	}

	return domain.Profile{
		User:       user,
		Clubs:      clubs,
		Activities: activities,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (domain.Profile, error) {
	if _, err := s.repo.UpdateProfile(ctx, id, update); err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return s.GetProfile(ctx, id)
}

// ListUsers returns the users matching filter along with counters computed
// over every user.
func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, domain.UserStats, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.UserStats{}, fmt.Errorf("s.repo.List -> %w", err)
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, domain.UserStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return users, stats, nil
}

func (s *UserService) SetBlocked(ctx context.Context, actor domain.User, id uint, blocked bool) (domain.User, error) {
	if blocked && actor.ID == id {
		return domain.User{}, ErrCannotBlockSelf
	}

	user, err := s.repo.SetBlocked(ctx, id, blocked)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.SetBlocked -> %w", err)
	}

	return user, nil
}

func (s *UserService) SetRole(ctx context.Context, actor domain.User, id uint, role domain.Role) (domain.User, error) {
	if !role.Valid() {
		return domain.User{}, ErrInvalidRole
	}
	if actor.ID == id {
		return domain.User{}, ErrCannotChangeOwnRole
	}

	user, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.SetRole -> %w", err)
	}

	return user, nil
}
