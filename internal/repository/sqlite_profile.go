package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/db"
	"github.com/brunovale/prancheta/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(db db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, full_name, plan, trial_ends_at FROM profiles WHERE user_id = ?`,
		userID)

	var p domain.Profile
	var planStr string
	var trialEndsAt sql.NullString
	err := row.Scan(&p.UserID, &p.FullName, &planStr, &trialEndsAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile %s: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.Plan = domain.Plan(planStr)
	p.TrialEndsAt = parseNullableTime(trialEndsAt, time.RFC3339)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, full_name, plan, trial_ends_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			full_name = excluded.full_name,
			plan = excluded.plan,
			trial_ends_at = excluded.trial_ends_at`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.FullName,
		string(p.Plan),
		nullableTimeToString(p.TrialEndsAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
