package dashboard

import "context"

type DashboardService interface {
	// GetDashboard computes stats for the given YYYY-MM-DD date, or for
	// today's local civil date when date is empty
	GetDashboard(ctx context.Context, date string) (DashboardStatsResponse, error)
}
