package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campuslife/campus-api/internal/domain"
)

const (
	dashboardListSize   = 4
	registrationsMonths = 6
	monthLayout         = "2006-01"
)

type DashboardUserRepository interface {
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	Memberships(ctx context.Context, userID uint) ([]uint, []uint, error)
}

type DashboardClubRepository interface {
	List(ctx context.Context, filter domain.ClubFilter) ([]domain.Club, error)
	ListManagedBy(ctx context.Context, managerID uint) ([]domain.Club, error)
	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
}

type DashboardActivityRepository interface {
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
	Count(ctx context.Context) (int64, error)
	CountRegistrations(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	RegistrationTimes(ctx context.Context, since time.Time) ([]time.Time, error)
}

type DashboardService struct {
	users      DashboardUserRepository
	clubs      DashboardClubRepository
	activities DashboardActivityRepository
	now        func() time.Time
}

func NewDashboardService(users DashboardUserRepository, clubs DashboardClubRepository, activities DashboardActivityRepository) *DashboardService {
	return &DashboardService{
		users:      users,
		clubs:      clubs,
		activities: activities,
		now:        time.Now,
	}
}

// Get builds the dashboard of user: the statistics block matching their
// role plus the upcoming activities and popular clubs everyone sees.
func (s *DashboardService) Get(ctx context.Context, user domain.User) (domain.Dashboard, error) {
	now := s.now()
	dashboard := domain.Dashboard{Role: user.Role}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		upcoming, err := s.activities.List(egCtx, domain.ActivityFilter{
			Status:     domain.ActivityStatusUpcoming,
			Now:        now,
			ViewerID:   user.ID,
			IncludeAll: user.IsAdmin(),
			Limit:      dashboardListSize,
		})
		if err != nil {
			return fmt.Errorf("s.activities.List -> %w", err)
		}
		dashboard.UpcomingActivities = upcoming

		return nil
	})
	eg.Go(func() error {
		popular, err := s.clubs.List(egCtx, domain.ClubFilter{
			Status:     domain.ClubStatusValidated,
			IncludeAll: true,
			ByMembers:  true,
			Limit:      dashboardListSize,
		})
		if err != nil {
			return fmt.Errorf("s.clubs.List -> %w", err)
		}
		dashboard.PopularClubs = popular

		return nil
	})
	eg.Go(func() error {
		switch user.Role {
		case domain.RoleAdmin:
			stats, err := s.adminStats(egCtx, now)
			if err != nil {
				return err
			}
			dashboard.Admin = &stats
		case domain.RoleClubManager:
			stats, err := s.managerStats(egCtx, user.ID)
			if err != nil {
				return err
			}
			dashboard.Manager = &stats
		default:
			stats, err := s.studentStats(egCtx, user.ID)
			if err != nil {
				return err
			}
			dashboard.Student = &stats
		}

		return nil
	})
	if err := eg.Wait(); err != nil {
		return domain.Dashboard{}, err
	}

	return dashboard, nil
}

func (s *DashboardService) adminStats(ctx context.Context, now time.Time) (domain.AdminStats, error) {
	var stats domain.AdminStats
	since := monthStart(now, registrationsMonths-1)

	var registrationTimes []time.Time
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		stats.TotalStudents, err = s.users.CountByRole(egCtx, domain.RoleStudent)
		return wrap("s.users.CountByRole", err)
	})
	eg.Go(func() (err error) {
		stats.TotalClubs, err = s.clubs.Count(egCtx)
		return wrap("s.clubs.Count", err)
	})
	eg.Go(func() (err error) {
		stats.PendingClubs, err = s.clubs.CountPending(egCtx)
		return wrap("s.clubs.CountPending", err)
	})
	eg.Go(func() (err error) {
		stats.ClubsByCategory, err = s.clubs.CountByCategory(egCtx)
		return wrap("s.clubs.CountByCategory", err)
	})
	eg.Go(func() (err error) {
		stats.TotalActivities, err = s.activities.Count(egCtx)
		return wrap("s.activities.Count", err)
	})
	eg.Go(func() (err error) {
		stats.TotalRegistrations, err = s.activities.CountRegistrations(egCtx)
		return wrap("s.activities.CountRegistrations", err)
	})
	eg.Go(func() (err error) {
		stats.ActivitiesByCategory, err = s.activities.CountByCategory(egCtx)
		return wrap("s.activities.CountByCategory", err)
	})
	eg.Go(func() (err error) {
		registrationTimes, err = s.activities.RegistrationTimes(egCtx, since)
		return wrap("s.activities.RegistrationTimes", err)
	})
	if err := eg.Wait(); err != nil {
		return domain.AdminStats{}, err
	}

	stats.RegistrationsByMonth = registrationsByMonth(since, registrationTimes)

	return stats, nil
}

func (s *DashboardService) managerStats(ctx context.Context, managerID uint) (domain.ManagerStats, error) {
	clubs, err := s.clubs.ListManagedBy(ctx, managerID)
	if err != nil {
		return domain.ManagerStats{}, fmt.Errorf("s.clubs.ListManagedBy -> %w", err)
	}

	stats := domain.ManagerStats{
		Clubs:      clubs,
		ClubsCount: len(clubs),
	}
	for _, club := range clubs {
		stats.TotalMembers += club.MemberCount
		stats.TotalActivities += club.ActivityCount
	}

	return stats, nil
}

func (s *DashboardService) studentStats(ctx context.Context, userID uint) (domain.StudentStats, error) {
	clubs, activities, err := s.users.Memberships(ctx, userID)
	if err != nil {
		return domain.StudentStats{}, fmt.Errorf("s.users.Memberships -> %w", err)
	}

	return domain.StudentStats{
		ClubsJoined:      len(clubs),
		ActivitiesJoined: len(activities),
	}, nil
}

// monthStart returns the first instant of the month monthsAgo months before
// the one containing t.
func monthStart(t time.Time, monthsAgo int) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m-time.Month(monthsAgo), 1, 0, 0, 0, 0, t.Location())
}

// registrationsByMonth counts times per calendar month over the
// registrationsMonths months starting at since, empty months included.
func registrationsByMonth(since time.Time, times []time.Time) []domain.MonthCount {
	months := make([]domain.MonthCount, registrationsMonths)
	index := make(map[string]int, registrationsMonths)
	for i := range months {
		key := since.AddDate(0, i, 0).Format(monthLayout)
		months[i].Month = key
		index[key] = i
	}

	for _, t := range times {
		if i, ok := index[t.In(since.Location()).Format(monthLayout)]; ok {
			months[i].Count++
		}
	}

	return months
}

func wrap(caller string, err error) error {
	if err != nil {
		return fmt.Errorf("%s -> %w", caller, err)
	}

	return nil
}
