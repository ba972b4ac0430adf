// Package form implements the form (bucket) repository using PostgreSQL.
package form

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/akinloluwami/formdrop/internal/adapter/postgres"
	"github.com/akinloluwami/formdrop/internal/domain"
)

const table = "forms"

var columns = []string{
	"id", "user_id", "name", "email_enabled", "allowed_origins",
	"created_at", "updated_at", "deleted_at",
}

// Repo provides form persistence backed by PostgreSQL. Soft-deleted forms
// are invisible to every read.
type Repo struct {
	db postgres.DB
}

// New creates a new form repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns an active form.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	return r.getOne(ctx, id, sq.Eq{"id": id, "deleted_at": nil})
}

// GetOwned returns an active form only if ownerID owns it. Forms owned by
// someone else are reported as not found.
func (r *Repo) GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*domain.Form, error) {
	return r.getOne(ctx, id, sq.Eq{"id": id, "user_id": ownerID, "deleted_at": nil})
}

// ListByOwner returns the owner's active forms, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Form, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": ownerID, "deleted_at": nil}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "form", ownerID)
	}
	defer rows.Close()

	var forms []domain.Form
	for rows.Next() {
		f, err := scanForm(rows)
		if err != nil {
			return nil, postgres.MapError(err, "form", ownerID)
		}
		forms = append(forms, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "form", ownerID)
	}
	return forms, nil
}

// Create inserts a form.
func (r *Repo) Create(ctx context.Context, f *domain.Form) (*domain.Form, error) {
	origins := f.AllowedOrigins
	if origins == nil {
		origins = []string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "name", "email_enabled", "allowed_origins").
		Values(f.UserID, f.Name, f.EmailEnabled, origins).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanForm(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "form", f.UserID)
	}
	return created, nil
}

// SetEmailEnabled toggles the email channel for an active form.
func (r *Repo) SetEmailEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.Form, error) {
	return r.update(ctx, id, postgres.Builder().Update(table).Set("email_enabled", enabled))
}

// SetAllowedOrigins replaces the origin allow-list of an active form.
func (r *Repo) SetAllowedOrigins(ctx context.Context, id uuid.UUID, origins []string) (*domain.Form, error) {
	if origins == nil {
		origins = []string{}
	}
	return r.update(ctx, id, postgres.Builder().Update(table).Set("allowed_origins", origins))
}

// SoftDelete marks an active form deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE forms SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return postgres.MapError(err, "form", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "form", id)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, where sq.Eq) (*domain.Form, error) {
	query, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	f, err := scanForm(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "form", id)
	}
	return f, nil
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, b sq.UpdateBuilder) (*domain.Form, error) {
	query, args, err := b.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	f, err := scanForm(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "form", id)
	}
	return f, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func scanForm(row pgx.Row) (*domain.Form, error) {
	var f domain.Form
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.EmailEnabled, &f.AllowedOrigins,
		&f.CreatedAt, &f.UpdatedAt, &f.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
