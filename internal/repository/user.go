package repository

import (
	"context"
	"fmt"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	List(ctx context.Context, q dao.UserQuery) ([]dao.User, error)
	Counts(ctx context.Context) (dao.UserCounts, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	Update(ctx context.Context, id uint, columns map[string]any) (dao.User, error)
	ClubIDs(ctx context.Context, userID uint) ([]uint, error)
	ActivityIDs(ctx context.Context, userID uint) ([]uint, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	found, err := r.dao.List(ctx, dao.UserQuery{
		Query:  filter.Query,
		Status: filter.Status,
		Role:   string(filter.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, u := range found {
		users = append(users, r.daoToDomain(u))
	}

	return users, nil
}

func (r *UserRepository) Stats(ctx context.Context) (domain.UserStats, error) {
	counts, err := r.dao.Counts(ctx)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("r.dao.Counts -> %w", err)
	}

	return domain.UserStats{
		Total:   counts.Total,
		Active:  counts.Active,
		Blocked: counts.Blocked,
	}, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	n, err := r.dao.CountByRole(ctx, string(role))
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByRole -> %w", err)
	}

	return n, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (domain.User, error) {
	columns := map[string]any{}
	if update.FirstName != nil {
		columns["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		columns["last_name"] = *update.LastName
	}
	if update.Program != nil {
		columns["program"] = *update.Program
	}
	if update.Year != nil {
		columns["year"] = *update.Year
	}
	if update.AvatarURL != nil {
		columns["avatar_url"] = *update.AvatarURL
	}
	if update.Language != nil {
		columns["language"] = *update.Language
	}
	if len(columns) == 0 {
		return r.FindByID(ctx, id)
	}

	return r.update(ctx, id, columns)
}

func (r *UserRepository) SetBlocked(ctx context.Context, id uint, blocked bool) (domain.User, error) {
	return r.update(ctx, id, map[string]any{"is_blocked": blocked})
}

func (r *UserRepository) SetRole(ctx context.Context, id uint, role domain.Role) (domain.User, error) {
	return r.update(ctx, id, map[string]any{"role": string(role)})
}

func (r *UserRepository) update(ctx context.Context, id uint, columns map[string]any) (domain.User, error) {
	updated, err := r.dao.Update(ctx, id, columns)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

// Memberships returns the ids of the clubs userID belongs to and of the
// activities they registered for.
func (r *UserRepository) Memberships(ctx context.Context, userID uint) ([]uint, []uint, error) {
	clubIDs, err := r.dao.ClubIDs(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("r.dao.ClubIDs -> %w", err)
	}

	activityIDs, err := r.dao.ActivityIDs(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("r.dao.ActivityIDs -> %w", err)
	}

	return clubIDs, activityIDs, nil
}

func (r *UserRepository) domainToDao(u domain.User) dao.User {
	return dao.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		Program:   u.Program,
		Year:      u.Year,
		AvatarURL: u.AvatarURL,
		IsBlocked: u.IsBlocked,
		Language:  u.Language,
	}
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      domain.Role(u.Role),
		Program:   u.Program,
		Year:      u.Year,
		AvatarURL: u.AvatarURL,
		IsBlocked: u.IsBlocked,
		Language:  u.Language,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
