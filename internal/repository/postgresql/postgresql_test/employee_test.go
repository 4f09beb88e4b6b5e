package postgresql_test

import (
	"context"
	"testing"

	"github.com/attendly/hr-console-go/internal/domain/employee"
	"github.com/attendly/hr-console-go/internal/domain/profile"
	"github.com/attendly/hr-console-go/internal/pkg/database"
	"github.com/attendly/hr-console-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfile(t *testing.T, db *database.DB, hrID string) {
	t.Helper()
	repo := postgresql.NewProfileRepository(db)
	_, err := repo.Create(context.Background(), profile.AdminProfile{
		HRID:             hrID,
		AdminName:        "Admin " + hrID,
		OrganizationName: "Org " + hrID,
	})
	require.NoError(t, err)
}

func TestEmployeeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	createTestProfile(t, db, "hr-1")
	createTestProfile(t, db, "hr-2")

	t.Run("create and get", func(t *testing.T) {
		created, err := repo.Create(ctx, employee.Employee{
			ID:         "hr-1_emp-1",
			OwnerID:    "hr-1",
			FullName:   "John Smith",
			Email:      "john@acme.test",
			Department: "Engineering",
		})
		require.NoError(t, err)
		assert.Equal(t, "hr-1_emp-1", created.ID)

		got, err := repo.GetByID(ctx, "hr-1_emp-1", "hr-1")
		require.NoError(t, err)
		assert.Equal(t, "John Smith", got.FullName)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := repo.Create(ctx, employee.Employee{
			ID:         "hr-1_emp-1",
			OwnerID:    "hr-1",
			FullName:   "Copy",
			Email:      "copy@acme.test",
			Department: "Engineering",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
	})

	t.Run("cross tenant invisibility", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "hr-1_emp-1", "hr-2")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

		list, err := repo.ListByOwner(ctx, "hr-2")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("update", func(t *testing.T) {
		updated, err := repo.Update(ctx, employee.Employee{
			ID:         "hr-1_emp-1",
			OwnerID:    "hr-1",
			FullName:   "John A. Smith",
			Email:      "john.smith@acme.test",
			Department: "Platform",
		})
		require.NoError(t, err)
		assert.Equal(t, "Platform", updated.Department)

		_, err = repo.Update(ctx, employee.Employee{
			ID:         "hr-1_emp-1",
			OwnerID:    "hr-2",
			FullName:   "Hijack",
			Email:      "x@x.test",
			Department: "X",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "hr-1_emp-1", "hr-1"))

		_, err := repo.GetByID(ctx, "hr-1_emp-1", "hr-1")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

		err = repo.Delete(ctx, "hr-1_emp-1", "hr-1")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}
