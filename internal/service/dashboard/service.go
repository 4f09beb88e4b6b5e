package dashboard

import (
	"context"
	"time"

	"github.com/attendly/hr-console-go/internal/domain/auth"
	"github.com/attendly/hr-console-go/internal/domain/dashboard"
	"github.com/attendly/hr-console-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	tz *time.Location
}

func NewDashboardService(repo dashboard.DashboardRepository, tz *time.Location) dashboard.DashboardService {
	if tz == nil {
		tz = time.Local
	}
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		tz:                  tz,
	}
}

// getSessionHRID extracts the tenant from session claims
func (s *DashboardServiceImpl) getSessionHRID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrNoSession
	}

	hrID, ok := claims["hr_id"].(string)
	if !ok || hrID == "" {
		return "", auth.ErrNoSession
	}
	return hrID, nil
}

// resolveDate parses YYYY-MM-DD, defaulting to today's civil date in the
// configured zone. Evaluated at call time so the stats roll over at local
// midnight, not at process start.
func (s *DashboardServiceImpl) resolveDate(date string) time.Time {
	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			return parsed
		}
	}
	now := time.Now().In(s.tz)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GetDashboard implements dashboard.DashboardService. Roster and attendance
// aggregates run concurrently, then pending is derived with a zero floor.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, date string) (dashboard.DashboardStatsResponse, error) {
	hrID, err := s.getSessionHRID(ctx)
	if err != nil {
		return dashboard.DashboardStatsResponse{}, err
	}

	if date != "" {
		if _, ok := validator.IsValidDate(date); !ok {
			return dashboard.DashboardStatsResponse{}, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
	}

	day := s.resolveDate(date)

	var (
		summary  dashboard.EmployeeSummaryStats
		dayStats dashboard.AttendanceDayStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary, err = s.GetEmployeeSummary(gCtx, hrID)
		return err
	})

	g.Go(func() error {
		var err error
		dayStats, err = s.GetAttendanceStatsByDate(gCtx, hrID, day)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardStatsResponse{}, err
	}

	// Present and absent are counted independently. The floor keeps pending
	// at zero when marked rows outnumber the roster (e.g. after the roster
	// shrank), rather than going negative.
	pending := summary.Total - (dayStats.Present + dayStats.Absent)
	if pending < 0 {
		pending = 0
	}

	return dashboard.DashboardStatsResponse{
		TotalEmployees:  summary.Total,
		PresentToday:    dayStats.Present,
		AbsentToday:     dayStats.Absent,
		PendingToday:    pending,
		DepartmentCount: summary.Departments,
		Date:            day.Format("2006-01-02"),
	}, nil
}
