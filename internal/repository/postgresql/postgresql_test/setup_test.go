package postgresql_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/attendly/hr-console-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL and runs
// the migrations. Tests are skipped when the variable is unset so the suite
// stays runnable without a database.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	migrateURL := strings.Replace(dsn, "postgres://", "pgx5://", 1)
	require.NoError(t, database.Migrate(migrateURL))

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	truncateAll(t, db)
	return db
}

func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"attendance_records",
		"employees",
		"admin_profiles",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}
