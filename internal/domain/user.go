package domain

import (
	"time"

	"github.com/google/uuid"
)

// Plan identifies a billing plan. Plans are provisioned by billing; the
// intake engine only reads them to pick a quota limit.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

func (p Plan) String() string { return string(p) }

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro:
		return true
	}
	return false
}

// User is a form owner as seen by the intake engine.
type User struct {
	ID        uuid.UUID
	Email     string
	Plan      Plan
	CreatedAt time.Time
}

// Usage is the submission count of one user in one billing period.
type Usage struct {
	UserID    uuid.UUID
	Period    string
	Count     int
	Limit     int
	UpdatedAt time.Time
}

// Remaining returns how many submissions are left in the period.
func (u Usage) Remaining() int {
	if u.Count >= u.Limit {
		return 0
	}
	return u.Limit - u.Count
}
