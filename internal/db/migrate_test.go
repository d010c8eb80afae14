package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running all migrations must be a no-op.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_BackfillPromotesLegacyStatus(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO projects (id, name, user_id, created_at)
		VALUES ('p1', 'Proj', 'u1', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO lists (id, project_id, name, type, created_at)
		VALUES ('l1', 'p1', 'List', 'lista', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	// Legacy row: owned by a list, no project_id yet.
	_, err = database.Exec(`INSERT INTO statuses (id, project_id, list_id, name, created_at)
		VALUES ('s1', '', 'l1', 'To Do', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	var projectID string
	var listID any
	require.NoError(t, database.QueryRow(
		`SELECT project_id, list_id FROM statuses WHERE id = 's1'`).Scan(&projectID, &listID))
	assert.Equal(t, "p1", projectID)
	assert.Nil(t, listID, "legacy ownership column should be cleared")
}

func TestMigrate_BackfillDeduplicatesAgainstProjectScopedRow(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO projects (id, name, user_id, created_at)
		VALUES ('p1', 'Proj', 'u1', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO lists (id, project_id, name, type, created_at)
		VALUES ('l1', 'p1', 'List', 'lista', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	// Project-scoped survivor and a legacy duplicate of the same name.
	_, err = database.Exec(`INSERT INTO statuses (id, project_id, name, created_at)
		VALUES ('keep', 'p1', 'Done', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO statuses (id, project_id, list_id, name, created_at)
		VALUES ('dupe', '', 'l1', 'Done', '2024-01-02T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO tasks (id, list_id, status_id, name, created_at)
		VALUES ('t1', 'l1', 'dupe', 'Task', '2024-01-02T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	var count int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM statuses WHERE name = 'Done'`).Scan(&count))
	assert.Equal(t, 1, count, "duplicate legacy row should be dropped")

	var statusID string
	require.NoError(t, database.QueryRow(
		`SELECT status_id FROM tasks WHERE id = 't1'`).Scan(&statusID))
	assert.Equal(t, "keep", statusID, "tasks should be repointed at the survivor")
}
