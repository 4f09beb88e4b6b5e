package attendance

import "context"

type AttendanceService interface {
	// Mark records an employee's status for a date. Idempotent: marking the
	// same day twice leaves exactly one record, last status wins.
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance returns the tenant's history, newest date first
	ListAttendance(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error)

	// GetSummary returns present/absent day totals for one employee
	GetSummary(ctx context.Context, employeeID string) (SummaryResponse, error)
}
