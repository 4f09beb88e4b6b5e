package employee

import "context"

type EmployeeService interface {
	// ListEmployees returns the authenticated tenant's roster
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee returns a single roster entry by storage id
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee namespaces the raw id under the tenant and inserts
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee overwrites mutable fields; id and owner are preserved
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee and all of its attendance records
	// in one transaction
	DeleteEmployee(ctx context.Context, id string) error
}
