package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	// GetEmployeeSummary returns roster size and distinct department count
	GetEmployeeSummary(ctx context.Context, ownerID string) (EmployeeSummaryStats, error)

	// GetAttendanceStatsByDate counts Present and Absent records for the date
	GetAttendanceStatsByDate(ctx context.Context, ownerID string, date time.Time) (AttendanceDayStats, error)
}
