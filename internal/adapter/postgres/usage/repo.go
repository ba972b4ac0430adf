// Package usage implements the per-period submission counters using
// PostgreSQL.
package usage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/akinloluwami/formdrop/internal/adapter/postgres"
	"github.com/akinloluwami/formdrop/internal/domain"
)

// Repo provides usage counters backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new usage repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// incrementSQL creates the period row with count 1 or bumps it, but only
// while the count is below the limit. The conflicting row is locked for the
// duration of the statement, so concurrent callers at the boundary are
// serialized and at most `limit` increments ever succeed.
const incrementSQL = `
INSERT INTO usage (user_id, period, count, updated_at)
SELECT $1, $2, 1, now()
 WHERE $3::int > 0
ON CONFLICT (user_id, period) DO UPDATE
   SET count = usage.count + 1, updated_at = now()
 WHERE usage.count < $3::int
RETURNING count`

// Increment admits one submission for (userID, period) against limit and
// returns the new count. Returns ErrQuotaExceeded without changing the
// count when the limit is already reached.
func (r *Repo) Increment(ctx context.Context, userID uuid.UUID, period string, limit int) (int, error) {
	var count int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, incrementSQL, userID, period, limit).
		Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("usage %s/%s: %w", userID, period, domain.ErrQuotaExceeded)
	}
	if err != nil {
		return 0, postgres.MapError(err, "usage", userID.String()+"/"+period)
	}
	return count, nil
}

// Get returns the count for (userID, period), zero when no submission was
// admitted yet.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, period string) (int, error) {
	var count int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT count FROM usage WHERE user_id = $1 AND period = $2`, userID, period).
		Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "usage", userID.String()+"/"+period)
	}
	return count, nil
}
