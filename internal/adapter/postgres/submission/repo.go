// Package submission implements the submission repository using PostgreSQL.
// Submissions are insert-only; the only mutation is soft deletion.
package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/akinloluwami/formdrop/internal/adapter/postgres"
	"github.com/akinloluwami/formdrop/internal/domain"
)

var columns = []string{"id", "form_id", "payload", "created_at", "deleted_at"}

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new submission repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create stores a new submission and returns it with its ID and timestamp.
func (r *Repo) Create(ctx context.Context, formID uuid.UUID, payload map[string]any) (*domain.Submission, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO submissions (form_id, payload) VALUES ($1, $2) RETURNING id, created_at`,
		formID, raw,
	)

	s := domain.Submission{FormID: formID, Payload: payload}
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "submission", formID)
	}
	return &s, nil
}

// Get returns a live submission of formID.
func (r *Repo) Get(ctx context.Context, formID, id uuid.UUID) (*domain.Submission, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("submissions").
		Where(sq.Eq{"id": id, "form_id": formID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	s, err := scanSubmission(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}
	return s, nil
}

// ListByForm returns a page of a form's live submissions, newest first.
func (r *Repo) ListByForm(ctx context.Context, formID uuid.UUID, limit, offset int) ([]domain.Submission, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("submissions").
		Where(sq.Eq{"form_id": formID, "deleted_at": nil}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "submission", formID)
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, postgres.MapError(err, "submission", formID)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "submission", formID)
	}
	return out, nil
}

// SoftDelete marks a form's submission deleted. Usage counters are not
// affected.
func (r *Repo) SoftDelete(ctx context.Context, formID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE submissions SET deleted_at = now() WHERE id = $1 AND form_id = $2 AND deleted_at IS NULL`,
		id, formID,
	)
	if err != nil {
		return postgres.MapError(err, "submission", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "submission", id)
	}
	return nil
}

// Purge hard-deletes submissions created before createdBefore and
// submissions soft-deleted before deletedBefore. Deliveries cascade.
// Returns the number of removed submissions.
func (r *Repo) Purge(ctx context.Context, createdBefore, deletedBefore time.Time) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM submissions WHERE created_at < $1 OR deleted_at < $2`,
		createdBefore, deletedBefore,
	)
	if err != nil {
		return 0, postgres.MapError(err, "submission", "purge")
	}
	return int(tag.RowsAffected()), nil
}

// ListRedeliverable returns live submissions created in [since, before)
// whose fan-out needs another attempt: either no delivery was ever
// recorded, or some target has only failures and fewer than maxAttempts
// of them. Oldest first.
func (r *Repo) ListRedeliverable(ctx context.Context, since, before time.Time, maxAttempts, limit int) ([]domain.Submission, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx,
		`SELECT s.id, s.form_id, s.payload, s.created_at, s.deleted_at
		   FROM submissions s
		  WHERE s.deleted_at IS NULL
		    AND s.created_at >= $1 AND s.created_at < $2
		    AND (
		      NOT EXISTS (SELECT 1 FROM deliveries d WHERE d.submission_id = s.id)
		      OR EXISTS (
		        SELECT 1 FROM deliveries d
		         WHERE d.submission_id = s.id
		         GROUP BY d.target_key
		        HAVING bool_and(d.status = 'failure') AND count(*) < $3
		      )
		    )
		  ORDER BY s.created_at, s.id
		  LIMIT $4`,
		since, before, maxAttempts, limit,
	)
	if err != nil {
		return nil, postgres.MapError(err, "submission", "redeliverable")
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, postgres.MapError(err, "submission", "redeliverable")
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "submission", "redeliverable")
	}
	return out, nil
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var (
		s   domain.Submission
		raw []byte
	)
	if err := row.Scan(&s.ID, &s.FormID, &raw, &s.CreatedAt, &s.DeletedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.Payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &s, nil
}
