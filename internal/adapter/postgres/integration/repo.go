// Package integration implements the channel integration repository using
// PostgreSQL. Credentials arrive already sealed; this package never sees
// plaintext secrets.
package integration

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

const table = "channel_integrations"

var columns = []string{"id", "form_id", "kind", "enabled", "credentials", "connected_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides channel integration persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new integration repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Connect stores sealed credentials for (formID, kind) and enables the
// channel. Reconnecting replaces the previous credentials.
func (r *Repo) Connect(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, sealed []byte) (*domain.ChannelIntegration, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("form_id", "kind", "enabled", "credentials", "connected_at").
		Values(formID, string(kind), true, sealed, sq.Expr("now()")).
		Suffix(`ON CONFLICT (form_id, kind) DO UPDATE
			SET credentials = EXCLUDED.credentials, enabled = true,
			    connected_at = now(), updated_at = now() ` + returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	ci, err := scanIntegration(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "channel_integration", kind)
	}
	return ci, nil
}

// Get returns the integration of kind for a form.
func (r *Repo) Get(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) (*domain.ChannelIntegration, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"form_id": formID, "kind": string(kind)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	ci, err := scanIntegration(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "channel_integration", kind)
	}
	return ci, nil
}

// ListByForm returns every integration row of a form, connected or not.
func (r *Repo) ListByForm(ctx context.Context, formID uuid.UUID) ([]domain.ChannelIntegration, error) {
	return r.list(ctx, formID, sq.Eq{"form_id": formID})
}

// ListActive returns the integrations of a form that are enabled and hold
// credentials.
func (r *Repo) ListActive(ctx context.Context, formID uuid.UUID) ([]domain.ChannelIntegration, error) {
	return r.list(ctx, formID, sq.And{
		sq.Eq{"form_id": formID, "enabled": true},
		sq.NotEq{"credentials": nil},
	})
}

// SetEnabled toggles an integration. Enabling one without credentials
// violates a table constraint and returns ErrValidation.
func (r *Repo) SetEnabled(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, enabled bool) (*domain.ChannelIntegration, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("enabled", enabled).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"form_id": formID, "kind": string(kind)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	ci, err := scanIntegration(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "channel_integration", kind)
	}
	return ci, nil
}

// Disconnect clears the credentials and the enabled flag in a single
// statement. No state with enabled=true and no credentials is ever visible.
func (r *Repo) Disconnect(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE channel_integrations
		    SET credentials = NULL, enabled = false, connected_at = NULL, updated_at = now()
		  WHERE form_id = $1 AND kind = $2`,
		formID, string(kind),
	)
	if err != nil {
		return postgres.MapError(err, "channel_integration", kind)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "channel_integration", kind)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, formID uuid.UUID, where sq.Sqlizer) ([]domain.ChannelIntegration, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("kind").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "channel_integration", formID)
	}
	defer rows.Close()

	var out []domain.ChannelIntegration
	for rows.Next() {
		ci, err := scanIntegration(rows)
		if err != nil {
			return nil, postgres.MapError(err, "channel_integration", formID)
		}
		out = append(out, *ci)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "channel_integration", formID)
	}
	return out, nil
}

func scanIntegration(row pgx.Row) (*domain.ChannelIntegration, error) {
	var (
		ci   domain.ChannelIntegration
		kind string
	)
	err := row.Scan(&ci.ID, &ci.FormID, &kind, &ci.Enabled, &ci.SealedCredentials, &ci.ConnectedAt, &ci.UpdatedAt)
	if err != nil {
		return nil, err
	}
	ci.Kind = domain.ChannelKind(kind)
	return &ci, nil
}
