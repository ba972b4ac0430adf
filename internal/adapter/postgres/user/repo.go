// Package user reads form owners from PostgreSQL. Users are provisioned by
// the billing service; this package only reads them, plus Create for
// provisioning hooks and tests.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/akinloluwami/formdrop/internal/adapter/postgres"
	"github.com/akinloluwami/formdrop/internal/domain"
)

const columns = "id, email, plan, created_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+columns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// Create inserts a user and returns the stored row.
func (r *Repo) Create(ctx context.Context, email string, plan domain.Plan) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO users (email, plan) VALUES ($1, $2) RETURNING `+columns,
		email, string(plan),
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		plan string
	)
	if err := row.Scan(&u.ID, &u.Email, &plan, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Plan = domain.Plan(plan)
	return &u, nil
}
