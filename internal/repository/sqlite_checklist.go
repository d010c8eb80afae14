package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/db"
	"github.com/brunovale/prancheta/internal/domain"
)

// SQLiteChecklistRepo implements ChecklistRepo using a SQLite database.
type SQLiteChecklistRepo struct {
	db db.DBTX
}

// NewSQLiteChecklistRepo creates a new SQLiteChecklistRepo.
func NewSQLiteChecklistRepo(db db.DBTX) *SQLiteChecklistRepo {
	return &SQLiteChecklistRepo{db: db}
}

func (r *SQLiteChecklistRepo) Create(ctx context.Context, item *domain.ChecklistItem) error {
	query := `INSERT INTO checklist_items (id, task_id, content, checked, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.TaskID,
		item.Content,
		boolToInt(item.Checked),
		item.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting checklist item: %w", err)
	}
	return nil
}

func (r *SQLiteChecklistRepo) GetByID(ctx context.Context, id string) (*domain.ChecklistItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, task_id, content, checked, created_at
			FROM checklist_items WHERE id = ?`, id)

	var item domain.ChecklistItem
	var checked int
	var createdAtStr string
	err := row.Scan(&item.ID, &item.TaskID, &item.Content, &checked, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("checklist item %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning checklist item: %w", err)
	}
	item.Checked = intToBool(checked)
	item.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &item, nil
}

func (r *SQLiteChecklistRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.ChecklistItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task_id, content, checked, created_at
			FROM checklist_items WHERE task_id = ? ORDER BY created_at ASC, rowid ASC`, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing checklist items: %w", err)
	}
	defer rows.Close()

	var items []*domain.ChecklistItem
	for rows.Next() {
		var item domain.ChecklistItem
		var checked int
		var createdAtStr string
		if err := rows.Scan(&item.ID, &item.TaskID, &item.Content, &checked, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning checklist row: %w", err)
		}
		item.Checked = intToBool(checked)
		item.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checklist items: %w", err)
	}
	return items, nil
}

func (r *SQLiteChecklistRepo) SetChecked(ctx context.Context, id string, checked bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE checklist_items SET checked = ? WHERE id = ?`, boolToInt(checked), id)
	if err != nil {
		return fmt.Errorf("updating checklist item: %w", err)
	}
	return nil
}

func (r *SQLiteChecklistRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM checklist_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting checklist item: %w", err)
	}
	return nil
}
