package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerificationState is derived from a recipient's verification fields.
type VerificationState string

const (
	VerificationUnverified VerificationState = "UNVERIFIED"
	VerificationPending    VerificationState = "PENDING"
	VerificationVerified   VerificationState = "VERIFIED"
)

func (s VerificationState) String() string { return string(s) }

// Recipient is an email address that receives notifications for a form.
// TokenHash and TokenExpiresAt are set only while verification is pending.
type Recipient struct {
	ID             uuid.UUID
	FormID         uuid.UUID
	Email          string
	Enabled        bool
	VerifiedAt     *time.Time
	TokenHash      *string
	TokenExpiresAt *time.Time
	CreatedAt      time.Time
	DeletedAt      *time.Time
}

// IsVerified reports whether the recipient confirmed ownership of the address.
func (r *Recipient) IsVerified() bool {
	return r.VerifiedAt != nil
}

// State returns the verification state at the given instant. An expired
// pending token counts as unverified even before it is cleared in storage.
func (r *Recipient) State(now time.Time) VerificationState {
	switch {
	case r.VerifiedAt != nil:
		return VerificationVerified
	case r.TokenHash != nil && r.TokenExpiresAt != nil && r.TokenExpiresAt.After(now):
		return VerificationPending
	default:
		return VerificationUnverified
	}
}

// CanReceive reports whether notifications may be sent to this recipient.
func (r *Recipient) CanReceive() bool {
	return r.Enabled && r.DeletedAt == nil && r.VerifiedAt != nil
}
