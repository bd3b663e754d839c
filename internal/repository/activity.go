package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/repository/dao"
)

var (
	ErrActivityNotFound          = dao.ErrActivityNotFound
	ErrAlreadyRegistered         = dao.ErrAlreadyRegistered
	ErrNotRegistered             = dao.ErrNotRegistered
	ErrActivityFull              = dao.ErrActivityFull
	ErrCapacityBelowParticipants = dao.ErrCapacityBelowParticipants
)

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity) (dao.ActivityRow, error)
	FindByID(ctx context.Context, id uint) (dao.ActivityRow, error)
	List(ctx context.Context, q dao.ActivityQuery) ([]dao.ActivityRow, error)
	Update(ctx context.Context, id uint, columns map[string]any) (dao.ActivityRow, error)
	Delete(ctx context.Context, id uint) error
	Register(ctx context.Context, activityID, userID uint, at time.Time) (dao.ActivityRow, error)
	Unregister(ctx context.Context, activityID, userID uint) (dao.ActivityRow, error)
	IsRegistered(ctx context.Context, activityID, userID uint) (bool, error)
	Participants(ctx context.Context, activityID uint) ([]dao.ParticipantRow, error)
	Count(ctx context.Context) (int64, error)
	CountRegistrations(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]dao.CategoryCount, error)
	RegistrationTimes(ctx context.Context, since time.Time) ([]time.Time, error)
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, dao.Activity{
		ClubID:          activity.ClubID,
		Name:            activity.Name,
		Description:     activity.Description,
		Category:        activity.Category,
		StartsAt:        activity.StartsAt,
		Location:        activity.Location,
		MaxParticipants: activity.MaxParticipants,
		ImageURL:        activity.ImageURL,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	found, err := r.dao.List(ctx, dao.ActivityQuery{
		Query:      filter.Query,
		Status:     filter.Status,
		Category:   filter.Category,
		ClubID:     filter.ClubID,
		DayStart:   domain.StartOfDay(filter.Now),
		ViewerID:   filter.ViewerID,
		IncludeAll: filter.IncludeAll,
		Limit:      filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.rowsToDomain(found), nil
}

// Update overwrites the editable fields of the activity.
func (r *ActivityRepository) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	updated, err := r.dao.Update(ctx, activity.ID, map[string]any{
		"name":             activity.Name,
		"description":      activity.Description,
		"category":         activity.Category,
		"starts_at":        activity.StartsAt,
		"location":         activity.Location,
		"max_participants": activity.MaxParticipants,
		"image_url":        activity.ImageURL,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) Register(ctx context.Context, activityID, userID uint, at time.Time) (domain.Activity, error) {
	updated, err := r.dao.Register(ctx, activityID, userID, at)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Register -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ActivityRepository) Unregister(ctx context.Context, activityID, userID uint) (domain.Activity, error) {
	updated, err := r.dao.Unregister(ctx, activityID, userID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Unregister -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ActivityRepository) IsRegistered(ctx context.Context, activityID, userID uint) (bool, error) {
	registered, err := r.dao.IsRegistered(ctx, activityID, userID)
	if err != nil {
		return false, fmt.Errorf("r.dao.IsRegistered -> %w", err)
	}

	return registered, nil
}

func (r *ActivityRepository) Participants(ctx context.Context, activityID uint) ([]domain.Participant, error) {
	found, err := r.dao.Participants(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Participants -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, domain.Participant{
			UserID:       p.UserID,
			Email:        p.Email,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Program:      p.Program,
			AvatarURL:    p.AvatarURL,
			RegisteredAt: p.RegisteredAt,
		})
	}

	return participants, nil
}

func (r *ActivityRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return n, nil
}

func (r *ActivityRepository) CountRegistrations(ctx context.Context) (int64, error) {
	n, err := r.dao.CountRegistrations(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountRegistrations -> %w", err)
	}

	return n, nil
}

func (r *ActivityRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	found, err := r.dao.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByCategory -> %w", err)
	}

	return categoryCountsToDomain(found), nil
}

func (r *ActivityRepository) RegistrationTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	times, err := r.dao.RegistrationTimes(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RegistrationTimes -> %w", err)
	}

	return times, nil
}

func (r *ActivityRepository) rowsToDomain(rows []dao.ActivityRow) []domain.Activity {
	activities := make([]domain.Activity, 0, len(rows))
	for _, a := range rows {
		activities = append(activities, r.daoToDomain(a))
	}

	return activities
}

func (r *ActivityRepository) daoToDomain(a dao.ActivityRow) domain.Activity {
	return domain.Activity{
		ID:                  a.ID,
		ClubID:              a.ClubID,
		ClubName:            a.ClubName,
		ClubManagerID:       a.ClubManagerID,
		ClubValidated:       a.ClubValidated,
		Name:                a.Name,
		Description:         a.Description,
		Category:            a.Category,
		StartsAt:            a.StartsAt,
		Location:            a.Location,
		MaxParticipants:     a.MaxParticipants,
		CurrentParticipants: a.CurrentParticipants,
		ImageURL:            a.ImageURL,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}
