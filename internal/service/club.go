package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/repository"
)

var (
	ErrClubNotFound       = repository.ErrClubNotFound
	ErrClubNameExists     = repository.ErrClubNameExists
	ErrAlreadyMember      = repository.ErrAlreadyMember
	ErrNotMember          = repository.ErrNotMember
	ErrClubNotValidated   = errors.New("club is not validated")
	ErrManagerCannotLeave = errors.New("the manager cannot leave their own club")
)

type ClubRepository interface {
	Create(ctx context.Context, club domain.Club) (domain.Club, error)
	FindByID(ctx context.Context, id uint) (domain.Club, error)
	NameTaken(ctx context.Context, name string, exceptID uint) (bool, error)
	List(ctx context.Context, filter domain.ClubFilter) ([]domain.Club, error)
	Update(ctx context.Context, club domain.Club) (domain.Club, error)
	Validate(ctx context.Context, id uint) (domain.Club, error)
	Delete(ctx context.Context, id uint) ([]uint, error)
	Members(ctx context.Context, clubID uint) ([]domain.ClubMember, error)
	AddMember(ctx context.Context, clubID, userID uint, joinedAt time.Time) error
	RemoveMember(ctx context.Context, clubID, userID uint) error
}

// FeedCloser ends the live seat feeds of removed activities.
type FeedCloser interface {
	CloseFeed(activityID uint)
}

type ClubService struct {
	repo  ClubRepository
	feeds FeedCloser
	now   func() time.Time
}

func NewClubService(repo ClubRepository, feeds FeedCloser) *ClubService {
	return &ClubService{
		repo:  repo,
		feeds: feeds,
		now:   time.Now,
	}
}

// List returns the clubs matching filter that viewer is allowed to see.
func (s *ClubService) List(ctx context.Context, viewer domain.User, filter domain.ClubFilter) ([]domain.Club, error) {
	filter.ViewerID = viewer.ID
	filter.IncludeAll = viewer.IsAdmin()

	clubs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return clubs, nil
}

func (s *ClubService) Pending(ctx context.Context) ([]domain.Club, error) {
	clubs, err := s.repo.List(ctx, domain.ClubFilter{Status: domain.ClubStatusPending, IncludeAll: true})
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return clubs, nil
}

// Get returns club id, or ErrClubNotFound when viewer may not see it.
func (s *ClubService) Get(ctx context.Context, viewer domain.User, id uint) (domain.Club, error) {
	club, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !club.VisibleTo(viewer) {
		return domain.Club{}, ErrClubNotFound
	}

	return club, nil
}

// Create stores a club managed by actor. Clubs created by an administrator
// are validated straight away, the others wait for validation.
func (s *ClubService) Create(ctx context.Context, actor domain.User, club domain.Club) (domain.Club, error) {
	if actor.Role != domain.RoleClubManager && !actor.IsAdmin() {
		return domain.Club{}, ErrPermissionDenied
	}

	if err := s.checkNameAvailable(ctx, club.Name, 0); err != nil {
		return domain.Club{}, err
	}

	club.ManagerID = actor.ID
	club.IsValidated = actor.IsAdmin()

	created, err := s.repo.Create(ctx, club)
	if err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ClubService) Update(ctx context.Context, actor domain.User, club domain.Club) (domain.Club, error) {
	existing, err := s.Get(ctx, actor, club.ID)
	if err != nil {
		return domain.Club{}, err
	}
	if !existing.ManageableBy(actor) {
		return domain.Club{}, ErrPermissionDenied
	}

	if err = s.checkNameAvailable(ctx, club.Name, club.ID); err != nil {
		return domain.Club{}, err
	}

	updated, err := s.repo.Update(ctx, club)
	if err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ClubService) Validate(ctx context.Context, id uint) (domain.Club, error) {
	club, err := s.repo.Validate(ctx, id)
	if err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.Validate -> %w", err)
	}

	return club, nil
}

// Delete removes the club and disconnects the live feeds of its activities.
func (s *ClubService) Delete(ctx context.Context, id uint) error {
	activityIDs, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	for _, activityID := range activityIDs {
		s.feeds.CloseFeed(activityID)
	}

	return nil
}

func (s *ClubService) Members(ctx context.Context, viewer domain.User, id uint) ([]domain.ClubMember, error) {
	if _, err := s.Get(ctx, viewer, id); err != nil {
		return nil, err
	}

	members, err := s.repo.Members(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Members -> %w", err)
	}

	return members, nil
}

// Join adds the student user to a validated club and returns the club with
// its refreshed member count.
func (s *ClubService) Join(ctx context.Context, user domain.User, id uint) (domain.Club, error) {
	if user.Role != domain.RoleStudent {
		return domain.Club{}, ErrPermissionDenied
	}

	club, err := s.Get(ctx, user, id)
	if err != nil {
		return domain.Club{}, err
	}
	if !club.IsValidated {
		return domain.Club{}, ErrClubNotValidated
	}

	if err = s.repo.AddMember(ctx, id, user.ID, s.now()); err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.AddMember -> %w", err)
	}

	return s.refresh(ctx, id)
}

func (s *ClubService) Leave(ctx context.Context, user domain.User, id uint) (domain.Club, error) {
	club, err := s.Get(ctx, user, id)
	if err != nil {
		return domain.Club{}, err
	}
	if club.ManagerID == user.ID {
		return domain.Club{}, ErrManagerCannotLeave
	}

	if err = s.repo.RemoveMember(ctx, id, user.ID); err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.RemoveMember -> %w", err)
	}

	return s.refresh(ctx, id)
}

func (s *ClubService) refresh(ctx context.Context, id uint) (domain.Club, error) {
	club, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return club, nil
}

func (s *ClubService) checkNameAvailable(ctx context.Context, name string, exceptID uint) error {
	taken, err := s.repo.NameTaken(ctx, name, exceptID)
	if err != nil {
		return fmt.Errorf("s.repo.NameTaken -> %w", err)
	}
	if taken {
		return ErrClubNameExists
	}

	return nil
}
