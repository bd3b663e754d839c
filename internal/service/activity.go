package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/pkg/ticket"
	"github.com/campuslife/campus-api/internal/repository"
)

var (
	ErrActivityNotFound          = repository.ErrActivityNotFound
	ErrAlreadyRegistered         = repository.ErrAlreadyRegistered
	ErrNotRegistered             = repository.ErrNotRegistered
	ErrActivityFull              = repository.ErrActivityFull
	ErrCapacityBelowParticipants = repository.ErrCapacityBelowParticipants
	ErrActivityPast              = errors.New("activity already took place")
)

// ParticipantsCSVHeader is the first row of a participant export.
var ParticipantsCSVHeader = []string{"Prénom", "Nom", "Email", "Filière"}

type ActivityRepository interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, id uint) error
	Register(ctx context.Context, activityID, userID uint, at time.Time) (domain.Activity, error)
	Unregister(ctx context.Context, activityID, userID uint) (domain.Activity, error)
	IsRegistered(ctx context.Context, activityID, userID uint) (bool, error)
	Participants(ctx context.Context, activityID uint) ([]domain.Participant, error)
}

type ActivityClubRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Club, error)
}

// SeatPublisher fans seat count changes out to live subscribers.
type SeatPublisher interface {
	FeedCloser
	Publish(update domain.SeatUpdate)
}

type ActivityService struct {
	repo      ActivityRepository
	clubs     ActivityClubRepository
	seats     SeatPublisher
	publicURL string
	now       func() time.Time
}

func NewActivityService(repo ActivityRepository, clubs ActivityClubRepository, seats SeatPublisher, publicURL string) *ActivityService {
	return &ActivityService{
		repo:      repo,
		clubs:     clubs,
		seats:     seats,
		publicURL: publicURL,
		now:       time.Now,
	}
}

// List returns the activities matching filter among those viewer may see.
func (s *ActivityService) List(ctx context.Context, viewer domain.User, filter domain.ActivityFilter) ([]domain.Activity, error) {
	filter.Now = s.now()
	filter.ViewerID = viewer.ID
	filter.IncludeAll = viewer.IsAdmin()

	activities, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return activities, nil
}

// ListByClub returns the activities of club clubID, soonest first.
func (s *ActivityService) ListByClub(ctx context.Context, viewer domain.User, clubID uint) ([]domain.Activity, error) {
	if _, err := s.visibleClub(ctx, viewer, clubID); err != nil {
		return nil, err
	}

	return s.List(ctx, viewer, domain.ActivityFilter{ClubID: clubID})
}

// Get returns activity id and whether viewer is registered for it.
func (s *ActivityService) Get(ctx context.Context, viewer domain.User, id uint) (domain.Activity, bool, error) {
	activity, err := s.visibleActivity(ctx, viewer, id)
	if err != nil {
		return domain.Activity{}, false, err
	}

	registered, err := s.repo.IsRegistered(ctx, id, viewer.ID)
	if err != nil {
		return domain.Activity{}, false, fmt.Errorf("s.repo.IsRegistered -> %w", err)
	}

	return activity, registered, nil
}

func (s *ActivityService) Create(ctx context.Context, actor domain.User, activity domain.Activity) (domain.Activity, error) {
	club, err := s.visibleClub(ctx, actor, activity.ClubID)
	if err != nil {
		return domain.Activity{}, err
	}
	if !club.ManageableBy(actor) {
		return domain.Activity{}, ErrPermissionDenied
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ActivityService) Update(ctx context.Context, actor domain.User, activity domain.Activity) (domain.Activity, error) {
	existing, err := s.manageableActivity(ctx, actor, activity.ID)
	if err != nil {
		return domain.Activity{}, err
	}
	activity.ClubID = existing.ClubID

	updated, err := s.repo.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Update -> %w", err)
	}
	if updated.MaxParticipants != existing.MaxParticipants {
		s.seats.Publish(domain.NewSeatUpdate(updated))
	}

	return updated, nil
}

func (s *ActivityService) Delete(ctx context.Context, actor domain.User, id uint) error {
	if _, err := s.manageableActivity(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}
	s.seats.CloseFeed(id)

	return nil
}

// Register books a seat for the student user. The capacity check itself
// happens atomically in the repository.
func (s *ActivityService) Register(ctx context.Context, user domain.User, id uint) (domain.Activity, error) {
	if user.Role != domain.RoleStudent {
		return domain.Activity{}, ErrPermissionDenied
	}

	activity, err := s.visibleActivity(ctx, user, id)
	if err != nil {
		return domain.Activity{}, err
	}
	if !activity.ClubValidated {
		return domain.Activity{}, ErrClubNotValidated
	}

	now := s.now()
	if !activity.IsUpcoming(now) {
		return domain.Activity{}, ErrActivityPast
	}

	updated, err := s.repo.Register(ctx, id, user.ID, now)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Register -> %w", err)
	}
	s.seats.Publish(domain.NewSeatUpdate(updated))

	return updated, nil
}

func (s *ActivityService) Unregister(ctx context.Context, user domain.User, id uint) (domain.Activity, error) {
	if _, err := s.visibleActivity(ctx, user, id); err != nil {
		return domain.Activity{}, err
	}

	updated, err := s.repo.Unregister(ctx, id, user.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Unregister -> %w", err)
	}
	s.seats.Publish(domain.NewSeatUpdate(updated))

	return updated, nil
}

func (s *ActivityService) Participants(ctx context.Context, actor domain.User, id uint) (domain.Activity, []domain.Participant, error) {
	activity, err := s.manageableActivity(ctx, actor, id)
	if err != nil {
		return domain.Activity{}, nil, err
	}

	participants, err := s.repo.Participants(ctx, id)
	if err != nil {
		return domain.Activity{}, nil, fmt.Errorf("s.repo.Participants -> %w", err)
	}

	return activity, participants, nil
}

// ExportParticipants writes the participant list of activity id to w as
// CSV and returns the activity.
func (s *ActivityService) ExportParticipants(ctx context.Context, actor domain.User, id uint, w io.Writer) (domain.Activity, error) {
	activity, participants, err := s.Participants(ctx, actor, id)
	if err != nil {
		return domain.Activity{}, err
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(ParticipantsCSVHeader); err != nil {
		return domain.Activity{}, fmt.Errorf("cw.Write -> %w", err)
	}
	for _, p := range participants {
		if err = cw.Write([]string{p.FirstName, p.LastName, p.Email, p.Program}); err != nil {
			return domain.Activity{}, fmt.Errorf("cw.Write -> %w", err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return domain.Activity{}, fmt.Errorf("cw.Flush -> %w", err)
	}

	return activity, nil
}

// Ticket returns the PNG QR code user presents at the check-in of activity id.
func (s *ActivityService) Ticket(ctx context.Context, user domain.User, id uint) ([]byte, error) {
	activity, registered, err := s.Get(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, ErrNotRegistered
	}

	png, err := ticket.PNG(ticket.CheckInURL(s.publicURL, activity.ID, user.ID))
	if err != nil {
		return nil, fmt.Errorf("ticket.PNG -> %w", err)
	}

	return png, nil
}

func (s *ActivityService) visibleClub(ctx context.Context, viewer domain.User, id uint) (domain.Club, error) {
	club, err := s.clubs.FindByID(ctx, id)
	if err != nil {
		return domain.Club{}, fmt.Errorf("s.clubs.FindByID -> %w", err)
	}
	if !club.VisibleTo(viewer) {
		return domain.Club{}, ErrClubNotFound
	}

	return club, nil
}

func (s *ActivityService) visibleActivity(ctx context.Context, viewer domain.User, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !activity.VisibleTo(viewer) {
		return domain.Activity{}, ErrActivityNotFound
	}

	return activity, nil
}

func (s *ActivityService) manageableActivity(ctx context.Context, actor domain.User, id uint) (domain.Activity, error) {
	activity, err := s.visibleActivity(ctx, actor, id)
	if err != nil {
		return domain.Activity{}, err
	}
	if !activity.ManageableBy(actor) {
		return domain.Activity{}, ErrPermissionDenied
	}

	return activity, nil
}
