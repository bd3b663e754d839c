package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/repository/dao"
)

var (
	ErrClubNotFound   = dao.ErrClubNotFound
	ErrClubNameExists = dao.ErrClubNameExists
	ErrAlreadyMember  = dao.ErrAlreadyMember
	ErrNotMember      = dao.ErrNotMember
)

type ClubDAO interface {
	Insert(ctx context.Context, club dao.Club) (dao.ClubRow, error)
	FindByID(ctx context.Context, id uint) (dao.ClubRow, error)
	NameTaken(ctx context.Context, name string, exceptID uint) (bool, error)
	List(ctx context.Context, q dao.ClubQuery) ([]dao.ClubRow, error)
	Update(ctx context.Context, id uint, columns map[string]any) (dao.ClubRow, error)
	Delete(ctx context.Context, id uint) ([]uint, error)
	Members(ctx context.Context, clubID uint) ([]dao.MemberRow, error)
	AddMember(ctx context.Context, member dao.ClubMember) error
	RemoveMember(ctx context.Context, clubID, userID uint) error
	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]dao.CategoryCount, error)
}

type ClubRepository struct {
	dao ClubDAO
}

func NewClubRepository(dao ClubDAO) *ClubRepository {
	return &ClubRepository{
		dao: dao,
	}
}

func (r *ClubRepository) Create(ctx context.Context, club domain.Club) (domain.Club, error) {
	created, err := r.dao.Insert(ctx, dao.Club{
		Name:        club.Name,
		Description: club.Description,
		Category:    club.Category,
		ImageURL:    club.ImageURL,
		ManagerID:   club.ManagerID,
		IsValidated: club.IsValidated,
	})
	if err != nil {
		return domain.Club{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ClubRepository) FindByID(ctx context.Context, id uint) (domain.Club, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Club{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ClubRepository) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	taken, err := r.dao.NameTaken(ctx, name, exceptID)
	if err != nil {
		return false, fmt.Errorf("r.dao.NameTaken -> %w", err)
	}

	return taken, nil
}

func (r *ClubRepository) List(ctx context.Context, filter domain.ClubFilter) ([]domain.Club, error) {
	return r.list(ctx, dao.ClubQuery{
		Query:      filter.Query,
		Status:     filter.Status,
		Category:   filter.Category,
		ViewerID:   filter.ViewerID,
		IncludeAll: filter.IncludeAll,
		ByMembers:  filter.ByMembers,
		Limit:      filter.Limit,
	})
}

// ListManagedBy returns every club managerID runs, pending ones included.
func (r *ClubRepository) ListManagedBy(ctx context.Context, managerID uint) ([]domain.Club, error) {
	return r.list(ctx, dao.ClubQuery{ManagerID: managerID, IncludeAll: true})
}

func (r *ClubRepository) list(ctx context.Context, q dao.ClubQuery) ([]domain.Club, error) {
	found, err := r.dao.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	clubs := make([]domain.Club, 0, len(found))
	for _, c := range found {
		clubs = append(clubs, r.daoToDomain(c))
	}

	return clubs, nil
}

// Update overwrites the editable fields of the club.
func (r *ClubRepository) Update(ctx context.Context, club domain.Club) (domain.Club, error) {
	updated, err := r.dao.Update(ctx, club.ID, map[string]any{
		"name":        club.Name,
		"description": club.Description,
		"category":    club.Category,
		"image_url":   club.ImageURL,
	})
	if err != nil {
		return domain.Club{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ClubRepository) Validate(ctx context.Context, id uint) (domain.Club, error) {
	updated, err := r.dao.Update(ctx, id, map[string]any{"is_validated": true})
	if err != nil {
		return domain.Club{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ClubRepository) Delete(ctx context.Context, id uint) ([]uint, error) {
	activityIDs, err := r.dao.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return activityIDs, nil
}

func (r *ClubRepository) Members(ctx context.Context, clubID uint) ([]domain.ClubMember, error) {
	found, err := r.dao.Members(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Members -> %w", err)
	}

	members := make([]domain.ClubMember, 0, len(found))
	for _, m := range found {
		members = append(members, domain.ClubMember{
			UserID:    m.UserID,
			Email:     m.Email,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Program:   m.Program,
			AvatarURL: m.AvatarURL,
			Role:      m.Role,
			JoinedAt:  m.JoinedAt,
		})
	}

	return members, nil
}

func (r *ClubRepository) AddMember(ctx context.Context, clubID, userID uint, joinedAt time.Time) error {
	err := r.dao.AddMember(ctx, dao.ClubMember{
		ClubID:   clubID,
		UserID:   userID,
		Role:     domain.MemberRoleMember,
		JoinedAt: joinedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("r.dao.AddMember -> %w", err)
	}

	return nil
}

func (r *ClubRepository) RemoveMember(ctx context.Context, clubID, userID uint) error {
	if err := r.dao.RemoveMember(ctx, clubID, userID); err != nil {
		return fmt.Errorf("r.dao.RemoveMember -> %w", err)
	}

	return nil
}

func (r *ClubRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return n, nil
}

func (r *ClubRepository) CountPending(ctx context.Context) (int64, error) {
	n, err := r.dao.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountPending -> %w", err)
	}

	return n, nil
}

func (r *ClubRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	found, err := r.dao.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByCategory -> %w", err)
	}

	return categoryCountsToDomain(found), nil
}

func (r *ClubRepository) daoToDomain(c dao.ClubRow) domain.Club {
	return domain.Club{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Category:      c.Category,
		ImageURL:      c.ImageURL,
		ManagerID:     c.ManagerID,
		ManagerName:   c.ManagerName,
		MemberCount:   c.MemberCount,
		ActivityCount: c.ActivityCount,
		IsValidated:   c.IsValidated,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func categoryCountsToDomain(counts []dao.CategoryCount) []domain.CategoryCount {
	out := make([]domain.CategoryCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, domain.CategoryCount{Name: c.Name, Count: c.Count})
	}

	return out
}
