package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceRecord marks one employee's status on one civil date. The
// (EmployeeID, Date) pair is unique; marking the same day again overwrites
// the status and keeps the record's identity.
type AttendanceRecord struct {
	ID         string
	OwnerID    string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
