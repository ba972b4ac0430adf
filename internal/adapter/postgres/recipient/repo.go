// Package recipient implements the email recipient repository using
// PostgreSQL, including the atomic verification token transitions.
package recipient

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/akinloluwami/formdrop/internal/adapter/postgres"
	"github.com/akinloluwami/formdrop/internal/domain"
)

const table = "recipients"

var columns = []string{
	"id", "form_id", "email", "enabled", "verified_at",
	"token_hash", "token_expires_at", "created_at", "deleted_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides recipient persistence backed by PostgreSQL. Soft-deleted
// recipients are invisible to every read and mutation.
type Repo struct {
	db postgres.DB
}

// New creates a new recipient repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create adds an unverified, enabled recipient to a form.
// A live duplicate address on the same form returns ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, formID uuid.UUID, email string) (*domain.Recipient, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("form_id", "email").
		Values(formID, email).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rec, err := scanRecipient(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipient", email)
	}
	return rec, nil
}

// GetByID returns a live recipient.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rec, err := scanRecipient(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipient", id)
	}
	return rec, nil
}

// ListByForm returns all live recipients of a form in creation order.
func (r *Repo) ListByForm(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error) {
	return r.list(ctx, formID, sq.Eq{"form_id": formID, "deleted_at": nil})
}

// ListDeliverable returns the recipients of a form that may receive
// notifications: enabled and verified.
func (r *Repo) ListDeliverable(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error) {
	return r.list(ctx, formID, sq.And{
		sq.Eq{"form_id": formID, "deleted_at": nil, "enabled": true},
		sq.NotEq{"verified_at": nil},
	})
}

// SetEnabled toggles a live recipient.
func (r *Repo) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.Recipient, error) {
	return r.updateOne(ctx, id, postgres.Builder().Update(table).
		Set("enabled", enabled).
		Where(sq.Eq{"id": id, "deleted_at": nil}))
}

// SoftDelete removes a live recipient and drops any pending token.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE recipients SET deleted_at = now(), token_hash = NULL, token_expires_at = NULL
		 WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return postgres.MapError(err, "recipient", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "recipient", id)
	}
	return nil
}

// SetToken stores a pending token hash, overwriting any earlier one.
// Only live, unverified recipients match; otherwise ErrNotFound.
func (r *Repo) SetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Recipient, error) {
	return r.updateOne(ctx, id, postgres.Builder().Update(table).
		Set("token_hash", tokenHash).
		Set("token_expires_at", expiresAt).
		Where(sq.Eq{"id": id, "deleted_at": nil, "verified_at": nil}))
}

// ConsumeToken verifies the recipient holding tokenHash if the token has
// not expired at now. Sets verified_at and clears the token in one
// statement, so a token can succeed at most once. No match returns
// ErrNotFound.
func (r *Repo) ConsumeToken(ctx context.Context, tokenHash string, now time.Time) (*domain.Recipient, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`UPDATE recipients
		    SET verified_at = $2, token_hash = NULL, token_expires_at = NULL
		  WHERE token_hash = $1 AND token_expires_at > $2 AND deleted_at IS NULL
		 `+returning,
		tokenHash, now,
	)

	rec, err := scanRecipient(row)
	if err != nil {
		return nil, postgres.MapError(err, "recipient", "token")
	}
	return rec, nil
}

// ClearExpiredToken drops tokenHash if it has expired at now, returning the
// recipient to the unverified state. Reports whether a token was cleared.
func (r *Repo) ClearExpiredToken(ctx context.Context, tokenHash string, now time.Time) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE recipients SET token_hash = NULL, token_expires_at = NULL
		  WHERE token_hash = $1 AND token_expires_at <= $2`,
		tokenHash, now,
	)
	if err != nil {
		return false, postgres.MapError(err, "recipient", "token")
	}
	return tag.RowsAffected() > 0, nil
}

// ClearAllExpiredTokens drops every token expired at now. Returns the
// number of recipients moved back to unverified.
func (r *Repo) ClearAllExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE recipients SET token_hash = NULL, token_expires_at = NULL
		  WHERE token_expires_at <= $1`,
		now,
	)
	if err != nil {
		return 0, postgres.MapError(err, "recipient", "expired tokens")
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) list(ctx context.Context, formID uuid.UUID, where sq.Sqlizer) ([]domain.Recipient, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "recipient", formID)
	}
	defer rows.Close()

	var out []domain.Recipient
	for rows.Next() {
		rec, err := scanRecipient(rows)
		if err != nil {
			return nil, postgres.MapError(err, "recipient", formID)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "recipient", formID)
	}
	return out, nil
}

func (r *Repo) updateOne(ctx context.Context, id uuid.UUID, b sq.UpdateBuilder) (*domain.Recipient, error) {
	query, args, err := b.Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rec, err := scanRecipient(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipient", id)
	}
	return rec, nil
}

func scanRecipient(row pgx.Row) (*domain.Recipient, error) {
	var rec domain.Recipient
	err := row.Scan(&rec.ID, &rec.FormID, &rec.Email, &rec.Enabled, &rec.VerifiedAt,
		&rec.TokenHash, &rec.TokenExpiresAt, &rec.CreatedAt, &rec.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
