package employee

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/hr-console-go/internal/domain/attendance"
	"github.com/attendly/hr-console-go/internal/domain/auth"
	"github.com/attendly/hr-console-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) ListByOwner(_ context.Context, ownerID string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		if emp.OwnerID == ownerID {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, ownerID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.OwnerID != ownerID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if _, ok := f.employees[newEmployee.ID]; ok {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	newEmployee.CreatedAt = time.Now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	stored, ok := f.employees[emp.ID]
	if !ok || stored.OwnerID != emp.OwnerID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	stored.FullName = emp.FullName
	stored.Email = emp.Email
	stored.Department = emp.Department
	stored.UpdatedAt = time.Now()
	f.employees[emp.ID] = stored
	return stored, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string, ownerID string) error {
	stored, ok := f.employees[id]
	if !ok || stored.OwnerID != ownerID {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func sessionContext(t *testing.T, hrID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"hr_id": hrID,
		"type":  "session",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo employee.EmployeeRepository) employee.EmployeeService {
	return NewEmployeeService(nil, repo, (attendance.AttendanceRepository)(nil))
}

func TestCreateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	result, err := svc.CreateEmployee(sessionContext(t, "hr-1"), employee.CreateEmployeeRequest{
		ID:         "emp-1",
		FullName:   "John Smith",
		Email:      "john@acme.test",
		Department: "Engineering",
	})
	require.NoError(t, err)

	// The storage key is namespaced under the tenant
	assert.Equal(t, "hr-1_emp-1", result.ID)
	assert.Equal(t, "hr-1", result.OwnerID)
	assert.Equal(t, "John Smith", result.FullName)
}

func TestCreateEmployeeDuplicate(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	req := employee.CreateEmployeeRequest{
		ID:         "emp-1",
		FullName:   "John Smith",
		Email:      "john@acme.test",
		Department: "Engineering",
	}

	_, err := svc.CreateEmployee(sessionContext(t, "hr-1"), req)
	require.NoError(t, err)

	// Same raw id under the same tenant collides
	_, err = svc.CreateEmployee(sessionContext(t, "hr-1"), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	// Same raw id under another tenant does not
	result, err := svc.CreateEmployee(sessionContext(t, "hr-2"), req)
	require.NoError(t, err)
	assert.Equal(t, "hr-2_emp-1", result.ID)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo())

	_, err := svc.CreateEmployee(sessionContext(t, "hr-1"), employee.CreateEmployeeRequest{
		ID:         "emp-1",
		FullName:   "John Smith",
		Email:      "not-an-email",
		Department: "Engineering",
	})
	assert.Error(t, err)
}

func TestGetEmployeeTenantIsolation(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.CreateEmployee(sessionContext(t, "hr-1"), employee.CreateEmployeeRequest{
		ID:         "emp-1",
		FullName:   "John Smith",
		Email:      "john@acme.test",
		Department: "Engineering",
	})
	require.NoError(t, err)

	// Owner sees it
	got, err := svc.GetEmployee(sessionContext(t, "hr-1"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Another tenant does not, even with the full storage key
	_, err = svc.GetEmployee(sessionContext(t, "hr-2"), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployeesScopedToOwner(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	seed := []struct {
		tenant string
		id     string
	}{
		{"hr-1", "emp-1"},
		{"hr-1", "emp-2"},
		{"hr-2", "emp-1"},
	}
	for _, s := range seed {
		_, err := svc.CreateEmployee(sessionContext(t, s.tenant), employee.CreateEmployeeRequest{
			ID:         s.id,
			FullName:   "Someone",
			Email:      "someone@acme.test",
			Department: "Ops",
		})
		require.NoError(t, err)
	}

	result, err := svc.ListEmployees(sessionContext(t, "hr-1"))
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestUpdateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.CreateEmployee(sessionContext(t, "hr-1"), employee.CreateEmployeeRequest{
		ID:         "emp-1",
		FullName:   "John Smith",
		Email:      "john@acme.test",
		Department: "Engineering",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(sessionContext(t, "hr-1"), employee.UpdateEmployeeRequest{
		ID:         created.ID,
		FullName:   "John A. Smith",
		Email:      "john.smith@acme.test",
		Department: "Platform",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "John A. Smith", updated.FullName)
	assert.Equal(t, "Platform", updated.Department)

	// Cross-tenant update is invisible
	_, err = svc.UpdateEmployee(sessionContext(t, "hr-2"), employee.UpdateEmployeeRequest{
		ID:         created.ID,
		FullName:   "Hijack",
		Email:      "x@x.test",
		Department: "X",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestNoSession(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo())

	_, err := svc.ListEmployees(context.Background())
	assert.ErrorIs(t, err, auth.ErrNoSession)
}
