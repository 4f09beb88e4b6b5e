package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/hr-console-go/internal/domain/dashboard"
	"github.com/attendly/hr-console-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeSummary returns roster size and distinct departments in a single query
func (r *dashboardRepositoryImpl) GetEmployeeSummary(ctx context.Context, ownerID string) (dashboard.EmployeeSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) AS total, COUNT(DISTINCT department) AS departments
		FROM employees
		WHERE owner_id = $1
	`

	var stats dashboard.EmployeeSummaryStats
	err := q.QueryRow(ctx, query, ownerID).Scan(&stats.Total, &stats.Departments)
	if err != nil {
		return dashboard.EmployeeSummaryStats{}, fmt.Errorf("failed to get employee summary: %w", err)
	}
	return stats, nil
}

// GetAttendanceStatsByDate counts Present/Absent independently for one date
func (r *dashboardRepositoryImpl) GetAttendanceStatsByDate(ctx context.Context, ownerID string, date time.Time) (dashboard.AttendanceDayStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance_records
		WHERE owner_id = $1 AND date = $2
	`

	var stats dashboard.AttendanceDayStats
	err := q.QueryRow(ctx, query, ownerID, date).Scan(&stats.Present, &stats.Absent)
	if err != nil {
		return dashboard.AttendanceDayStats{}, fmt.Errorf("failed to get attendance stats by date: %w", err)
	}
	return stats, nil
}
