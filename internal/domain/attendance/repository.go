package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. All
// methods take the owning tenant's HR ID to keep tenants isolated.
type AttendanceRepository interface {
	// Upsert writes the status for (employeeID, date) as a single atomic
	// statement keyed on the unique pair. An existing record keeps its id;
	// a new record gets the id carried on rec.
	Upsert(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)

	// List returns the tenant's records matching the filter, newest date first
	List(ctx context.Context, ownerID string, filter ListAttendanceFilter) ([]AttendanceRecord, error)

	// CountByStatus returns present/absent day totals for one employee
	CountByStatus(ctx context.Context, ownerID string, employeeID string) (present int64, absent int64, err error)

	// DeleteByEmployeeID removes every record for the employee; used by the
	// cascade delete inside the employee service's transaction
	DeleteByEmployeeID(ctx context.Context, employeeID string, ownerID string) error

	// GetByEmployeeAndDate returns ErrAttendanceNotFound when no record exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, ownerID string) (AttendanceRecord, error)
}
