package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/hr-console-go/internal/domain/auth"
	"github.com/attendly/hr-console-go/internal/domain/dashboard"
	"github.com/attendly/hr-console-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDashboardRepo serves canned aggregates keyed by tenant and date
type fakeDashboardRepo struct {
	summaries map[string]dashboard.EmployeeSummaryStats
	dayStats  map[string]dashboard.AttendanceDayStats
}

func (f *fakeDashboardRepo) GetEmployeeSummary(_ context.Context, ownerID string) (dashboard.EmployeeSummaryStats, error) {
	return f.summaries[ownerID], nil
}

func (f *fakeDashboardRepo) GetAttendanceStatsByDate(_ context.Context, ownerID string, date time.Time) (dashboard.AttendanceDayStats, error) {
	return f.dayStats[ownerID+"|"+date.Format("2006-01-02")], nil
}

func sessionContext(t *testing.T, hrID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"hr_id": hrID,
		"type":  "session",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGetDashboardEmptyTenant(t *testing.T) {
	repo := &fakeDashboardRepo{
		summaries: map[string]dashboard.EmployeeSummaryStats{},
		dayStats:  map[string]dashboard.AttendanceDayStats{},
	}
	svc := NewDashboardService(repo, time.UTC)

	result, err := svc.GetDashboard(sessionContext(t, "hr-1"), "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalEmployees)
	assert.Equal(t, int64(0), result.PresentToday)
	assert.Equal(t, int64(0), result.AbsentToday)
	assert.Equal(t, int64(0), result.PendingToday)
	assert.Equal(t, int64(0), result.DepartmentCount)
	assert.Equal(t, "2026-08-28", result.Date)
}

func TestGetDashboardStats(t *testing.T) {
	repo := &fakeDashboardRepo{
		summaries: map[string]dashboard.EmployeeSummaryStats{
			"hr-1": {Total: 2, Departments: 2},
		},
		dayStats: map[string]dashboard.AttendanceDayStats{
			"hr-1|2026-08-28": {Present: 1, Absent: 0},
		},
	}
	svc := NewDashboardService(repo, time.UTC)

	result, err := svc.GetDashboard(sessionContext(t, "hr-1"), "2026-08-28")
	require.NoError(t, err)

	// Two employees, one marked present: the other is still pending
	assert.Equal(t, int64(2), result.TotalEmployees)
	assert.Equal(t, int64(1), result.PresentToday)
	assert.Equal(t, int64(0), result.AbsentToday)
	assert.Equal(t, int64(1), result.PendingToday)
	assert.Equal(t, int64(2), result.DepartmentCount)
}

func TestGetDashboardPendingFloor(t *testing.T) {
	// More marked rows than roster entries, e.g. after the roster shrank
	repo := &fakeDashboardRepo{
		summaries: map[string]dashboard.EmployeeSummaryStats{
			"hr-1": {Total: 1, Departments: 1},
		},
		dayStats: map[string]dashboard.AttendanceDayStats{
			"hr-1|2026-08-28": {Present: 1, Absent: 1},
		},
	}
	svc := NewDashboardService(repo, time.UTC)

	result, err := svc.GetDashboard(sessionContext(t, "hr-1"), "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.PendingToday)
}

func TestGetDashboardDefaultsToToday(t *testing.T) {
	tz, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	repo := &fakeDashboardRepo{
		summaries: map[string]dashboard.EmployeeSummaryStats{},
		dayStats:  map[string]dashboard.AttendanceDayStats{},
	}
	svc := NewDashboardService(repo, tz)

	result, err := svc.GetDashboard(sessionContext(t, "hr-1"), "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().In(tz).Format("2006-01-02"), result.Date)
}

func TestGetDashboardInvalidDate(t *testing.T) {
	repo := &fakeDashboardRepo{
		summaries: map[string]dashboard.EmployeeSummaryStats{},
		dayStats:  map[string]dashboard.AttendanceDayStats{},
	}
	svc := NewDashboardService(repo, time.UTC)

	// A malformed date is rejected, not silently replaced by today
	_, err := svc.GetDashboard(sessionContext(t, "hr-1"), "not-a-date")
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "date", validationErrs[0].Field)
}

func TestGetDashboardNoSession(t *testing.T) {
	repo := &fakeDashboardRepo{
		summaries: map[string]dashboard.EmployeeSummaryStats{},
		dayStats:  map[string]dashboard.AttendanceDayStats{},
	}
	svc := NewDashboardService(repo, time.UTC)

	_, err := svc.GetDashboard(context.Background(), "2026-08-28")
	assert.ErrorIs(t, err, auth.ErrNoSession)
}
