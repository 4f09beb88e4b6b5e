package employee

import "time"

// Employee is a roster entry. ID is the storage key "{ownerID}_{rawID}" and,
// together with OwnerID, is immutable after creation.
type Employee struct {
	ID         string
	OwnerID    string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
