package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillStatusProjects(db); err != nil {
		return fmt.Errorf("backfilling status project ownership: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id       TEXT PRIMARY KEY,
		full_name     TEXT NOT NULL DEFAULT '',
		plan          TEXT NOT NULL DEFAULT 'FREE'
		              CHECK(plan IN ('FREE','TRIAL','PREMIUM')),
		trial_ends_at TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		user_id    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id)`,

	// Folders, lists and sprints share one table with a type tag and a
	// nullable self-reference. No FK on folder_id or project_id: the node
	// service owns referential cleanup and must stay retryable after a
	// partial cascade.
	`CREATE TABLE IF NOT EXISTS lists (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL,
		folder_id     TEXT,
		name          TEXT NOT NULL,
		type          TEXT NOT NULL
		              CHECK(type IN ('pasta','lista','sprint')),
		color         TEXT NOT NULL DEFAULT '',
		color_name    TEXT NOT NULL DEFAULT '',
		start_date    TEXT,
		end_date      TEXT,
		effort_type   TEXT NOT NULL DEFAULT '',
		custom_effort INTEGER,
		start_day     TEXT,
		duration      INTEGER,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_lists_project ON lists(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lists_folder ON lists(folder_id)`,

	// list_id is the legacy per-list ownership model; rows carrying it are
	// folded into the project-scoped model by the backfill pass below.
	`CREATE TABLE IF NOT EXISTS statuses (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL DEFAULT '',
		list_id     TEXT,
		name        TEXT NOT NULL,
		color_hex   TEXT NOT NULL DEFAULT '#3B82F6',
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_statuses_project ON statuses(project_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_statuses_project_name
		ON statuses(project_id, name) WHERE project_id != ''`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		list_id     TEXT NOT NULL,
		status_id   TEXT NOT NULL,
		user_id     TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		assignee    TEXT NOT NULL DEFAULT '',
		priority    TEXT NOT NULL DEFAULT 'medium'
		            CHECK(priority IN ('low','medium','high')),
		due_date    TEXT,
		progress    INTEGER,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_list ON tasks(list_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status_id)`,

	// Checklist items are the one relation the store cascades itself.
	`CREATE TABLE IF NOT EXISTS checklist_items (
		id         TEXT PRIMARY KEY,
		task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		content    TEXT NOT NULL,
		checked    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_checklist_task ON checklist_items(task_id)`,
}

// migrateBackfillStatusProjects folds legacy per-list statuses into the
// project-scoped model: project_id is resolved through the owning list, and
// a legacy row whose (project, name) already exists project-scoped is
// deduplicated by repointing its tasks at the surviving status.
// Idempotent: skips rows that already carry a project_id.
func migrateBackfillStatusProjects(db *sql.DB) error {
	ctx := context.Background()

	rows, err := db.QueryContext(ctx, `SELECT id, list_id, name FROM statuses
		WHERE project_id = '' AND list_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("listing legacy statuses: %w", err)
	}
	type legacyStatus struct {
		id, listID, name string
	}
	var legacy []legacyStatus
	for rows.Next() {
		var s legacyStatus
		if err := rows.Scan(&s.id, &s.listID, &s.name); err != nil {
			rows.Close()
			return fmt.Errorf("scanning legacy status: %w", err)
		}
		legacy = append(legacy, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating legacy statuses: %w", err)
	}

	for _, s := range legacy {
		var projectID string
		err := db.QueryRowContext(ctx,
			`SELECT project_id FROM lists WHERE id = ?`, s.listID).Scan(&projectID)
		if err == sql.ErrNoRows {
			// Orphaned legacy row; nothing to resolve it against.
			continue
		}
		if err != nil {
			return fmt.Errorf("resolving project for legacy status %s: %w", s.id, err)
		}

		var existingID string
		err = db.QueryRowContext(ctx,
			`SELECT id FROM statuses WHERE project_id = ? AND name = ?`,
			projectID, s.name).Scan(&existingID)
		switch {
		case err == sql.ErrNoRows:
			if _, err := db.ExecContext(ctx,
				`UPDATE statuses SET project_id = ?, list_id = NULL WHERE id = ?`,
				projectID, s.id); err != nil {
				return fmt.Errorf("promoting legacy status %s: %w", s.id, err)
			}
		case err != nil:
			return fmt.Errorf("checking duplicate for legacy status %s: %w", s.id, err)
		default:
			if _, err := db.ExecContext(ctx,
				`UPDATE tasks SET status_id = ? WHERE status_id = ?`,
				existingID, s.id); err != nil {
				return fmt.Errorf("repointing tasks of legacy status %s: %w", s.id, err)
			}
			if _, err := db.ExecContext(ctx,
				`DELETE FROM statuses WHERE id = ?`, s.id); err != nil {
				return fmt.Errorf("dropping duplicate legacy status %s: %w", s.id, err)
			}
		}
	}
	return nil
}
