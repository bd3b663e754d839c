package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/campuslife/campus-api/internal/domain"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepository) Stats(ctx context.Context) (domain.UserStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UserStats), args.Error(1)
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (domain.User, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) SetBlocked(ctx context.Context, id uint, blocked bool) (domain.User, error) {
	args := m.Called(ctx, id, blocked)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) SetRole(ctx context.Context, id uint, role domain.Role) (domain.User, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) Memberships(ctx context.Context, userID uint) ([]uint, []uint, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]uint), args.Get(1).([]uint), args.Error(2)
}

type mockClubRepository struct {
	mock.Mock
}

func (m *mockClubRepository) Create(ctx context.Context, club domain.Club) (domain.Club, error) {
	args := m.Called(ctx, club)
	return args.Get(0).(domain.Club), args.Error(1)
}

func (m *mockClubRepository) FindByID(ctx context.Context, id uint) (domain.Club, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Club), args.Error(1)
}

func (m *mockClubRepository) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	args := m.Called(ctx, name, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *mockClubRepository) List(ctx context.Context, filter domain.ClubFilter) ([]domain.Club, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Club), args.Error(1)
}

func (m *mockClubRepository) ListManagedBy(ctx context.Context, managerID uint) ([]domain.Club, error) {
	args := m.Called(ctx, managerID)
	return args.Get(0).([]domain.Club), args.Error(1)
}

func (m *mockClubRepository) Update(ctx context.Context, club domain.Club) (domain.Club, error) {
	args := m.Called(ctx, club)
	return args.Get(0).(domain.Club), args.Error(1)
}

func (m *mockClubRepository) Validate(ctx context.Context, id uint) (domain.Club, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Club), args.Error(1)
}

func (m *mockClubRepository) Delete(ctx context.Context, id uint) ([]uint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *mockClubRepository) Members(ctx context.Context, clubID uint) ([]domain.ClubMember, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.ClubMember), args.Error(1)
}

func (m *mockClubRepository) AddMember(ctx context.Context, clubID, userID uint, joinedAt time.Time) error {
	return m.Called(ctx, clubID, userID, joinedAt).Error(0)
}

func (m *mockClubRepository) RemoveMember(ctx context.Context, clubID, userID uint) error {
	return m.Called(ctx, clubID, userID).Error(0)
}

func (m *mockClubRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClubRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClubRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

type mockActivityRepository struct {
	mock.Mock
}

func (m *mockActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	args := m.Called(ctx, activity)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *mockActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *mockActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *mockActivityRepository) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	args := m.Called(ctx, activity)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *mockActivityRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockActivityRepository) Register(ctx context.Context, activityID, userID uint, at time.Time) (domain.Activity, error) {
	args := m.Called(ctx, activityID, userID, at)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *mockActivityRepository) Unregister(ctx context.Context, activityID, userID uint) (domain.Activity, error) {
	args := m.Called(ctx, activityID, userID)
	return args.Get(0).(domain.Activity), args.Error(1)
}

func (m *mockActivityRepository) IsRegistered(ctx context.Context, activityID, userID uint) (bool, error) {
	args := m.Called(ctx, activityID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockActivityRepository) Participants(ctx context.Context, activityID uint) ([]domain.Participant, error) {
	args := m.Called(ctx, activityID)
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *mockActivityRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockActivityRepository) CountRegistrations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockActivityRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

func (m *mockActivityRepository) RegistrationTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]time.Time), args.Error(1)
}

type recordingPublisher struct {
	updates []domain.SeatUpdate
	closed  []uint
}

func (p *recordingPublisher) Publish(update domain.SeatUpdate) {
	p.updates = append(p.updates, update)
}

func (p *recordingPublisher) CloseFeed(activityID uint) {
	p.closed = append(p.closed, activityID)
}

var (
	ctxAny = mock.Anything

	admin   = domain.User{ID: 1, Email: "admin@campus.edu", FirstName: "Ada", LastName: "Admin", Role: domain.RoleAdmin}
	manager = domain.User{ID: 2, Email: "manager@campus.edu", FirstName: "Marc", LastName: "Manager", Role: domain.RoleClubManager}
	student = domain.User{ID: 3, Email: "student@campus.edu", FirstName: "Sophie", LastName: "Martin", Role: domain.RoleStudent}
)
