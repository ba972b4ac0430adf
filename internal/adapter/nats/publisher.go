// Package nats publishes submission lifecycle events to NATS.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// SubmissionAccepted is published after a submission is persisted.
type SubmissionAccepted struct {
	Type         string    `json:"type"`
	SubmissionID uuid.UUID `json:"submission_id"`
	FormID       uuid.UUID `json:"form_id"`
	UserID       uuid.UUID `json:"user_id"`
	AcceptedAt   time.Time `json:"accepted_at"`
}

// EventSubmissionAccepted is the Type of SubmissionAccepted events.
const EventSubmissionAccepted = "submission.accepted"

// Publisher sends events on one subject.
type Publisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewPublisher connects to NATS at url.
func NewPublisher(url, subject string, logger *slog.Logger) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("formdrop"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	logger.Info("NATS publisher initialized", slog.String("subject", subject))

	return &Publisher{conn: nc, subject: subject, logger: logger.With("component", "nats")}, nil
}

// PublishAccepted publishes a submission.accepted event. Subjects are
// <subject>.<form id> so consumers can filter per form.
func (p *Publisher) PublishAccepted(ctx context.Context, ev SubmissionAccepted) error {
	ev.Type = EventSubmissionAccepted

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	subject := p.subject + "." + ev.FormID.String()
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("subject", subject),
		slog.String("submission_id", ev.SubmissionID.String()),
	)
	return nil
}

// Ping reports whether the connection is currently established.
func (p *Publisher) Ping(_ context.Context) error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats: %s", p.conn.Status())
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return fmt.Errorf("nats drain: %w", err)
	}
	return nil
}
