package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/db"
	"github.com/brunovale/prancheta/internal/domain"
)

const dateLayout = "2006-01-02"

const nodeColumns = `id, project_id, folder_id, name, type, color, color_name,
	start_date, end_date, effort_type, custom_effort, start_day, duration, created_at`

// SQLiteNodeRepo implements NodeRepo over the unified lists table.
type SQLiteNodeRepo struct {
	db db.DBTX
}

// NewSQLiteNodeRepo creates a new SQLiteNodeRepo.
func NewSQLiteNodeRepo(db db.DBTX) *SQLiteNodeRepo {
	return &SQLiteNodeRepo{db: db}
}

func (r *SQLiteNodeRepo) Create(ctx context.Context, n *domain.Node) error {
	query := `INSERT INTO lists (` + nodeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.ProjectID,
		nullableStrToValue(n.FolderID),
		n.Name,
		string(n.Type),
		n.Color,
		n.ColorName,
		nullableTimeToString(n.StartDate, dateLayout),
		nullableTimeToString(n.EndDate, dateLayout),
		n.EffortType,
		nullableIntToValue(n.CustomEffort),
		nullableTimeToString(n.StartDay, dateLayout),
		nullableIntToValue(n.Duration),
		n.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting node: %w", err)
	}
	return nil
}

func (r *SQLiteNodeRepo) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+nodeColumns+` FROM lists WHERE id = ?`, id)
	n, err := scanNode(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("node %s: %w", id, domain.ErrNotFound)
	}
	return n, err
}

func (r *SQLiteNodeRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Node, error) {
	return r.list(ctx,
		`SELECT `+nodeColumns+` FROM lists WHERE project_id = ? ORDER BY created_at DESC`,
		projectID)
}

func (r *SQLiteNodeRepo) ListChildren(ctx context.Context, folderID string) ([]*domain.Node, error) {
	return r.list(ctx,
		`SELECT `+nodeColumns+` FROM lists WHERE folder_id = ? ORDER BY created_at DESC`,
		folderID)
}

func (r *SQLiteNodeRepo) ListRoots(ctx context.Context, projectID string) ([]*domain.Node, error) {
	return r.list(ctx,
		`SELECT `+nodeColumns+` FROM lists WHERE project_id = ? AND folder_id IS NULL ORDER BY created_at DESC`,
		projectID)
}

func (r *SQLiteNodeRepo) Update(ctx context.Context, n *domain.Node) error {
	query := `UPDATE lists SET folder_id = ?, name = ?, type = ?, color = ?, color_name = ?,
		start_date = ?, end_date = ?, effort_type = ?, custom_effort = ?, start_day = ?, duration = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableStrToValue(n.FolderID),
		n.Name,
		string(n.Type),
		n.Color,
		n.ColorName,
		nullableTimeToString(n.StartDate, dateLayout),
		nullableTimeToString(n.EndDate, dateLayout),
		n.EffortType,
		nullableIntToValue(n.CustomEffort),
		nullableTimeToString(n.StartDay, dateLayout),
		nullableIntToValue(n.Duration),
		n.ID,
	)
	if err != nil {
		return fmt.Errorf("updating node: %w", err)
	}
	return nil
}

func (r *SQLiteNodeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting node: %w", err)
	}
	return nil
}

func (r *SQLiteNodeRepo) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lists WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("deleting project nodes: %w", err)
	}
	return nil
}

func (r *SQLiteNodeRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Node, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}
	defer rows.Close()

	var nodes []*domain.Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}
	return nodes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner) (*domain.Node, error) {
	var n domain.Node
	var typeStr, createdAtStr string
	var folderID, startDate, endDate, startDay sql.NullString
	var customEffort, duration sql.NullInt64

	err := row.Scan(
		&n.ID, &n.ProjectID, &folderID, &n.Name, &typeStr,
		&n.Color, &n.ColorName,
		&startDate, &endDate, &n.EffortType,
		&customEffort, &startDay, &duration,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning node: %w", err)
	}

	n.Type = domain.NodeType(typeStr)
	if folderID.Valid {
		n.FolderID = &folderID.String
	}
	n.StartDate = parseNullableTime(startDate, dateLayout)
	n.EndDate = parseNullableTime(endDate, dateLayout)
	n.StartDay = parseNullableTime(startDay, dateLayout)
	n.CustomEffort = nullableIntFromSQL(customEffort)
	n.Duration = nullableIntFromSQL(duration)

	n.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &n, nil
}
