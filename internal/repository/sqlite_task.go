package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/db"
	"github.com/brunovale/prancheta/internal/domain"
)

const taskColumns = `id, list_id, status_id, user_id, name, description,
	assignee, priority, due_date, progress, created_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ListID,
		t.StatusID,
		t.UserID,
		t.Name,
		t.Description,
		t.Assignee,
		string(t.Priority),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableIntToValue(t.Progress),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) ListByNode(ctx context.Context, listID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE list_id = ? ORDER BY created_at DESC`, listID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) CountByStatus(ctx context.Context, statusID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE status_id = ?`, statusID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting tasks by status: %w", err)
	}
	return count, nil
}

func (r *SQLiteTaskRepo) ReassignStatus(ctx context.Context, fromStatus, toStatus string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status_id = ? WHERE status_id = ?`, toStatus, fromStatus)
	if err != nil {
		return fmt.Errorf("reassigning tasks: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET status_id = ?, name = ?, description = ?, assignee = ?,
		priority = ?, due_date = ?, progress = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.StatusID,
		t.Name,
		t.Description,
		t.Assignee,
		string(t.Priority),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableIntToValue(t.Progress),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) DeleteByNode(ctx context.Context, listID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE list_id = ?`, listID)
	if err != nil {
		return fmt.Errorf("deleting node tasks: %w", err)
	}
	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var priorityStr, createdAtStr string
	var dueDate sql.NullString
	var progress sql.NullInt64

	err := row.Scan(
		&t.ID, &t.ListID, &t.StatusID, &t.UserID, &t.Name, &t.Description,
		&t.Assignee, &priorityStr, &dueDate, &progress, &createdAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Priority = domain.Priority(priorityStr)
	t.DueDate = parseNullableTime(dueDate, dateLayout)
	t.Progress = nullableIntFromSQL(progress)

	t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &t, nil
}
