package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akinloluwami/formdrop/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user on the given plan.
func SeedUser(t *testing.T, pool *pgxpool.Pool, plan domain.Plan) domain.User {
	t.Helper()

	user := domain.User{
		ID:        uuid.New(),
		Email:     "owner-" + uniqueSuffix() + "@example.com",
		Plan:      plan,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, plan, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, string(user.Plan), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedForm creates a form owned by userID with email notifications enabled
// and no origin restrictions.
func SeedForm(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Form {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	form := domain.Form{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "Contact " + uniqueSuffix(),
		EmailEnabled:   true,
		AllowedOrigins: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO forms (id, user_id, name, email_enabled, allowed_origins, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		form.ID, form.UserID, form.Name, form.EmailEnabled, form.AllowedOrigins, form.CreatedAt, form.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedForm: %v", err)
	}
	return form
}

// SeedRecipient creates an enabled recipient. When verified is true the
// recipient already has a verified-at timestamp.
func SeedRecipient(t *testing.T, pool *pgxpool.Pool, formID uuid.UUID, verified bool) domain.Recipient {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.Recipient{
		ID:        uuid.New(),
		FormID:    formID,
		Email:     "notify-" + uniqueSuffix() + "@example.com",
		Enabled:   true,
		CreatedAt: now,
	}
	if verified {
		rec.VerifiedAt = &now
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO recipients (id, form_id, email, enabled, verified_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.FormID, rec.Email, rec.Enabled, rec.VerifiedAt, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipient: %v", err)
	}
	return rec
}

// SeedSubmission stores a submission with a small payload.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, formID uuid.UUID) domain.Submission {
	t.Helper()

	sub := domain.Submission{
		ID:        uuid.New(),
		FormID:    formID,
		Payload:   map[string]any{"email": "lead@example.com", "message": "hello"},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO submissions (id, form_id, payload, created_at) VALUES ($1, $2, $3, $4)`,
		sub.ID, sub.FormID, sub.Payload, sub.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission: %v", err)
	}
	return sub
}
