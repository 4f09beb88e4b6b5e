package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/attendly/hr-console-go/internal/domain/attendance"
	"github.com/attendly/hr-console-go/internal/domain/auth"
	"github.com/attendly/hr-console-go/internal/domain/employee"
	"github.com/attendly/hr-console-go/internal/pkg/database"
	"github.com/attendly/hr-console-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Helper function to extract the tenant from session claims
func getSessionHRID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrNoSession
	}

	hrID, ok := claims["hr_id"].(string)
	if !ok || hrID == "" {
		return "", auth.ErrNoSession
	}

	return hrID, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		OwnerID:    emp.OwnerID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
		CreatedAt:  emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	hrID, err := getSessionHRID(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByOwner(ctx, hrID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	hrID, err := getSessionHRID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, hrID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService. The raw id is
// namespaced under the tenant, so the same raw id can exist in two
// organizations without colliding.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	hrID, err := getSessionHRID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	namespacedID := fmt.Sprintf("%s_%s", hrID, strings.TrimSpace(req.ID))

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:         namespacedID,
		OwnerID:    hrID,
		FullName:   strings.TrimSpace(req.FullName),
		Email:      strings.TrimSpace(req.Email),
		Department: strings.TrimSpace(req.Department),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService. Full overwrite of the
// mutable fields; the storage id and owner never move.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	hrID, err := getSessionHRID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, employee.Employee{
		ID:         req.ID,
		OwnerID:    hrID,
		FullName:   strings.TrimSpace(req.FullName),
		Email:      strings.TrimSpace(req.Email),
		Department: strings.TrimSpace(req.Department),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService. The employee and its
// attendance records go in one transaction; there is no window where the
// employee is gone but orphaned attendance rows remain.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	hrID, err := getSessionHRID(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.attendanceRepo.DeleteByEmployeeID(txCtx, id, hrID); err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}
		if err := s.employeeRepo.Delete(txCtx, id, hrID); err != nil {
			return err
		}
		return nil
	})
}
