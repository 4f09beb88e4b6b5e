package employee

import "context"

// EmployeeRepository defines data access for roster entries. Every method
// takes the owning tenant's HR ID; rows from other tenants are invisible.
type EmployeeRepository interface {
	// ListByOwner returns all employees for the tenant, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]Employee, error)

	// GetByID returns ErrEmployeeNotFound when the id is absent or owned by
	// another tenant
	GetByID(ctx context.Context, id string, ownerID string) (Employee, error)

	// Create inserts a new employee; ErrEmployeeIDExists on key collision
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Update overwrites the mutable fields of an existing employee
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete removes the employee row only; attendance cleanup is handled by
	// the service inside the same transaction
	Delete(ctx context.Context, id string, ownerID string) error
}
