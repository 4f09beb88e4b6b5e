package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/hr-console-go/internal/domain/employee"
	"github.com/attendly/hr-console-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// ListByOwner implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, owner_id, full_name, email, department, created_at, updated_at
		FROM employees
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.OwnerID, &emp.FullName, &emp.Email,
			&emp.Department, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, ownerID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, owner_id, full_name, email, department, created_at, updated_at
		FROM employees
		WHERE id = $1 AND owner_id = $2
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id, ownerID).Scan(
		&found.ID, &found.OwnerID, &found.FullName, &found.Email,
		&found.Department, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// Create implements employee.EmployeeRepository. The primary key collision is
// the duplicate-id check: ids are namespaced per tenant, so one INSERT is the
// whole existence test.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, owner_id, full_name, email, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, full_name, email, department, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.OwnerID, newEmployee.FullName,
		newEmployee.Email, newEmployee.Department,
	).Scan(
		&created.ID, &created.OwnerID, &created.FullName, &created.Email,
		&created.Department, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, department = $3, updated_at = NOW()
		WHERE id = $4 AND owner_id = $5
		RETURNING id, owner_id, full_name, email, department, created_at, updated_at
	`

	var updated employee.Employee
	err := q.QueryRow(ctx, query,
		emp.FullName, emp.Email, emp.Department, emp.ID, emp.OwnerID,
	).Scan(
		&updated.ID, &updated.OwnerID, &updated.FullName, &updated.Email,
		&updated.Department, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string, ownerID string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		DELETE FROM employees
		WHERE id = $1 AND owner_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, ownerID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
