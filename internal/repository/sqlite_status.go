package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/db"
	"github.com/brunovale/prancheta/internal/domain"
)

// SQLiteStatusRepo implements StatusRepo using a SQLite database.
type SQLiteStatusRepo struct {
	db db.DBTX
}

// NewSQLiteStatusRepo creates a new SQLiteStatusRepo.
func NewSQLiteStatusRepo(db db.DBTX) *SQLiteStatusRepo {
	return &SQLiteStatusRepo{db: db}
}

func (r *SQLiteStatusRepo) Create(ctx context.Context, s *domain.Status) error {
	query := `INSERT INTO statuses (id, project_id, name, color_hex, order_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.Name,
		s.ColorHex,
		s.OrderIndex,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting status: %w", err)
	}
	return nil
}

func (r *SQLiteStatusRepo) GetByID(ctx context.Context, id string) (*domain.Status, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, color_hex, order_index, created_at
			FROM statuses WHERE id = ?`, id)
	s, err := scanStatus(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("status %s: %w", id, domain.ErrNotFound)
	}
	return s, err
}

func (r *SQLiteStatusRepo) GetByName(ctx context.Context, projectID, name string) (*domain.Status, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, color_hex, order_index, created_at
			FROM statuses WHERE project_id = ? AND name = ?`, projectID, name)
	s, err := scanStatus(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("status %q in project %s: %w", name, projectID, domain.ErrNotFound)
	}
	return s, err
}

func (r *SQLiteStatusRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Status, error) {
	// created_at as tie-break keeps insertion order among equal indices.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, name, color_hex, order_index, created_at
			FROM statuses WHERE project_id = ?
			ORDER BY order_index ASC, created_at ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing statuses: %w", err)
	}
	defer rows.Close()

	var statuses []*domain.Status
	for rows.Next() {
		s, err := scanStatus(rows)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating statuses: %w", err)
	}
	return statuses, nil
}

func (r *SQLiteStatusRepo) Update(ctx context.Context, s *domain.Status) error {
	query := `UPDATE statuses SET name = ?, color_hex = ?, order_index = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.ColorHex, s.OrderIndex, s.ID)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	return nil
}

func (r *SQLiteStatusRepo) UpsertMany(ctx context.Context, statuses []*domain.Status) error {
	query := `INSERT INTO statuses (id, project_id, name, color_hex, order_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			project_id = excluded.project_id,
			name = excluded.name,
			color_hex = excluded.color_hex,
			order_index = excluded.order_index`
	for _, s := range statuses {
		createdAt := s.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		if _, err := r.db.ExecContext(ctx, query,
			s.ID, s.ProjectID, s.Name, s.ColorHex, s.OrderIndex,
			createdAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("upserting status %s: %w", s.ID, err)
		}
	}
	return nil
}

func (r *SQLiteStatusRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM statuses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting status: %w", err)
	}
	return nil
}

func (r *SQLiteStatusRepo) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM statuses WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("deleting project statuses: %w", err)
	}
	return nil
}

func scanStatus(row rowScanner) (*domain.Status, error) {
	var s domain.Status
	var createdAtStr string
	err := row.Scan(&s.ID, &s.ProjectID, &s.Name, &s.ColorHex, &s.OrderIndex, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning status: %w", err)
	}
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}
