package domain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Form is a bucket that collects submissions. It owns the email channel flag
// and the origin allow-list; other channels live in ChannelIntegration rows.
type Form struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	EmailEnabled   bool
	AllowedOrigins []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsDeleted reports whether the form has been soft-deleted.
func (f *Form) IsDeleted() bool {
	return f.DeletedAt != nil
}

// AllowsOrigin reports whether a submission coming from origin may be
// accepted. An empty allow-list accepts every origin. Entries match the
// request host exactly or as a parent domain ("example.com" accepts
// "www.example.com"). origin may be a full URL or a bare host.
func (f *Form) AllowsOrigin(origin string) bool {
	if len(f.AllowedOrigins) == 0 {
		return true
	}

	host := OriginHost(origin)
	if host == "" {
		return false
	}

	for _, allowed := range f.AllowedOrigins {
		allowed = OriginHost(allowed)
		if allowed == "" {
			continue
		}
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}

// OriginHost extracts a lowercase host without port from a URL or host string.
func OriginHost(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Submission is an immutable payload collected by a form.
type Submission struct {
	ID        uuid.UUID
	FormID    uuid.UUID
	Payload   map[string]any
	CreatedAt time.Time
	DeletedAt *time.Time
}
