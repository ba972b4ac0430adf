// Package delivery stores per-target dispatch outcomes in PostgreSQL.
package delivery

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/akinloluwami/formdrop/internal/adapter/postgres"
	"github.com/akinloluwami/formdrop/internal/domain"
)

var columns = []string{"id", "submission_id", "channel", "target_key", "status", "error", "duration_ms", "attempted_at"}

// Repo provides delivery record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new delivery repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// CreateBatch stores the outcomes of one dispatch in a single round trip.
func (r *Repo) CreateBatch(ctx context.Context, deliveries []domain.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	b := postgres.Builder().
		Insert("deliveries").
		Columns("submission_id", "channel", "target_key", "status", "error", "duration_ms", "attempted_at")
	for _, d := range deliveries {
		b = b.Values(d.SubmissionID, string(d.Channel), d.TargetKey, string(d.Status), d.Error,
			d.Duration.Milliseconds(), d.AttemptedAt)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "delivery", deliveries[0].SubmissionID)
	}
	return nil
}

// ListBySubmission returns the recorded outcomes of a submission.
func (r *Repo) ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]domain.Delivery, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("deliveries").
		Where(sq.Eq{"submission_id": submissionID}).
		OrderBy("attempted_at", "target_key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "delivery", submissionID)
	}
	defer rows.Close()

	var out []domain.Delivery
	for rows.Next() {
		var (
			d               domain.Delivery
			channel, status string
			durationMS      int64
		)
		if err := rows.Scan(&d.ID, &d.SubmissionID, &channel, &d.TargetKey, &status, &d.Error, &durationMS, &d.AttemptedAt); err != nil {
			return nil, postgres.MapError(err, "delivery", submissionID)
		}
		d.Channel = domain.ChannelKind(channel)
		d.Status = domain.DeliveryStatus(status)
		d.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "delivery", submissionID)
	}
	return out, nil
}
