package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/repository"
)

var (
	chessClub   = domain.Club{ID: 10, Name: "Chess", Category: "Sport", ManagerID: manager.ID, IsValidated: true, MemberCount: 1}
	pendingClub = domain.Club{ID: 11, Name: "Chorale", Category: "Arts", ManagerID: manager.ID}
)

func newTestClubService(repo *mockClubRepository) *ClubService {
	s := NewClubService(repo, &recordingPublisher{})
	s.now = func() time.Time { return time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC) }

	return s
}

func TestClubService_List(t *testing.T) {
	repo := new(mockClubRepository)
	s := newTestClubService(repo)
	ctx := context.Background()

	repo.On("List", ctxAny, domain.ClubFilter{Query: "ch", ViewerID: student.ID}).Return([]domain.Club{chessClub}, nil)
	repo.On("List", ctxAny, domain.ClubFilter{Query: "ch", ViewerID: admin.ID, IncludeAll: true}).Return([]domain.Club{chessClub, pendingClub}, nil)

	clubs, err := s.List(ctx, student, domain.ClubFilter{Query: "ch", IncludeAll: true})
	require.NoError(t, err)
	assert.Len(t, clubs, 1)

	clubs, err = s.List(ctx, admin, domain.ClubFilter{Query: "ch"})
	require.NoError(t, err)
	assert.Len(t, clubs, 2)
}

func TestClubService_Get(t *testing.T) {
	repo := new(mockClubRepository)
	s := newTestClubService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctxAny, pendingClub.ID).Return(pendingClub, nil)
	repo.On("FindByID", ctxAny, uint(404)).Return(domain.Club{}, repository.ErrClubNotFound)

	_, err := s.Get(ctx, student, pendingClub.ID)
	assert.ErrorIs(t, err, ErrClubNotFound)

	got, err := s.Get(ctx, manager, pendingClub.ID)
	require.NoError(t, err)
	assert.Equal(t, pendingClub, got)

	_, err = s.Get(ctx, admin, pendingClub.ID)
	require.NoError(t, err)

	_, err = s.Get(ctx, admin, 404)
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestClubService_Create(t *testing.T) {
	tests := []struct {
		name          string
		actor         domain.User
		taken         bool
		wantErr       error
		wantValidated bool
	}{
		{name: "manager creates pending club", actor: manager},
		{name: "admin creates validated club", actor: admin, wantValidated: true},
		{name: "student is denied", actor: student, wantErr: ErrPermissionDenied},
		{name: "duplicate name", actor: manager, taken: true, wantErr: ErrClubNameExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockClubRepository)
			s := newTestClubService(repo)

			input := domain.Club{Name: "Astronomie", Description: "Observer le ciel", Category: "Technologie"}
			stored := input
			stored.ManagerID = tt.actor.ID
			stored.IsValidated = tt.wantValidated
			withID := stored
			withID.ID = 12

			repo.On("NameTaken", ctxAny, "Astronomie", uint(0)).Return(tt.taken, nil)
			repo.On("Create", ctxAny, stored).Return(withID, nil).Maybe()

			created, err := s.Create(context.Background(), tt.actor, input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(12), created.ID)
			assert.Equal(t, tt.actor.ID, created.ManagerID)
			assert.Equal(t, tt.wantValidated, created.IsValidated)
		})
	}
}

func TestClubService_Update(t *testing.T) {
	repo := new(mockClubRepository)
	s := newTestClubService(repo)
	ctx := context.Background()

	changes := chessClub
	changes.Description = "Échecs pour tous les niveaux"

	repo.On("FindByID", ctxAny, chessClub.ID).Return(chessClub, nil)
	repo.On("NameTaken", ctxAny, chessClub.Name, chessClub.ID).Return(false, nil)
	repo.On("Update", ctxAny, changes).Return(changes, nil)

	_, err := s.Update(ctx, student, changes)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	updated, err := s.Update(ctx, manager, changes)
	require.NoError(t, err)
	assert.Equal(t, changes.Description, updated.Description)

	_, err = s.Update(ctx, admin, changes)
	require.NoError(t, err)
}

func TestClubService_Join(t *testing.T) {
	repo := new(mockClubRepository)
	s := newTestClubService(repo)
	ctx := context.Background()

	joined := chessClub
	joined.MemberCount = 2
	other := student
	other.ID = 30

	repo.On("FindByID", ctxAny, chessClub.ID).Return(chessClub, nil).Once()
	repo.On("AddMember", ctxAny, chessClub.ID, student.ID, s.now()).Return(nil).Once()
	repo.On("FindByID", ctxAny, chessClub.ID).Return(joined, nil).Once()

	club, err := s.Join(ctx, student, chessClub.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, club.MemberCount)

	repo.On("FindByID", ctxAny, chessClub.ID).Return(joined, nil)
	repo.On("AddMember", ctxAny, chessClub.ID, student.ID, s.now()).Return(repository.ErrAlreadyMember)

	_, err = s.Join(ctx, student, chessClub.ID)
	assert.ErrorIs(t, err, ErrAlreadyMember)

	_, err = s.Join(ctx, manager, chessClub.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	ownPending := pendingClub
	ownPending.ManagerID = other.ID
	repo.On("FindByID", ctxAny, pendingClub.ID).Return(ownPending, nil)

	_, err = s.Join(ctx, other, pendingClub.ID)
	assert.ErrorIs(t, err, ErrClubNotValidated)

	_, err = s.Join(ctx, student, pendingClub.ID)
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestClubService_Leave(t *testing.T) {
	repo := new(mockClubRepository)
	s := newTestClubService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctxAny, chessClub.ID).Return(chessClub, nil)
	repo.On("RemoveMember", ctxAny, chessClub.ID, student.ID).Return(nil).Once()
	repo.On("RemoveMember", ctxAny, chessClub.ID, student.ID).Return(repository.ErrNotMember)

	_, err := s.Leave(ctx, student, chessClub.ID)
	require.NoError(t, err)

	_, err = s.Leave(ctx, student, chessClub.ID)
	assert.ErrorIs(t, err, ErrNotMember)

	_, err = s.Leave(ctx, manager, chessClub.ID)
	assert.ErrorIs(t, err, ErrManagerCannotLeave)
}

func TestClubService_AdminOperations(t *testing.T) {
	repo := new(mockClubRepository)
	s := newTestClubService(repo)
	ctx := context.Background()

	validated := pendingClub
	validated.IsValidated = true

	repo.On("List", ctxAny, domain.ClubFilter{Status: domain.ClubStatusPending, IncludeAll: true}).Return([]domain.Club{pendingClub}, nil)
	repo.On("Validate", ctxAny, pendingClub.ID).Return(validated, nil)
	repo.On("Delete", ctxAny, chessClub.ID).Return([]uint{20, 21}, nil)
	repo.On("Delete", ctxAny, uint(404)).Return([]uint(nil), repository.ErrClubNotFound)

	feeds := &recordingPublisher{}
	s.feeds = feeds

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Club{pendingClub}, pending)

	club, err := s.Validate(ctx, pendingClub.ID)
	require.NoError(t, err)
	assert.True(t, club.IsValidated)

	require.NoError(t, s.Delete(ctx, chessClub.ID))
	assert.ErrorIs(t, s.Delete(ctx, 404), ErrClubNotFound)
	assert.Equal(t, []uint{20, 21}, feeds.closed)
}

func TestClubService_Members(t *testing.T) {
	repo := new(mockClubRepository)
	s := newTestClubService(repo)

	members := []domain.ClubMember{{UserID: manager.ID, Role: domain.MemberRoleManager}}
	repo.On("FindByID", ctxAny, chessClub.ID).Return(chessClub, nil)
	repo.On("Members", ctxAny, chessClub.ID).Return(members, nil)

	got, err := s.Members(context.Background(), student, chessClub.ID)
	require.NoError(t, err)
	assert.Equal(t, members, got)
}
