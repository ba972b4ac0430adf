// Package dispatch delivers one submission to its resolved targets in
// parallel. Each target gets a single attempt under its own timeout; a
// slow or failing channel never affects the others.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akinloluwami/formdrop/internal/adapter/notify"
	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/internal/metrics"
)

type mailer interface {
	Send(ctx context.Context, msg notify.Message) error
}

type webhookPoster interface {
	Post(ctx context.Context, service, url string, payload any) error
}

type sheetsAppender interface {
	AppendRecord(ctx context.Context, tok notify.SheetsToken, spreadsheetID, sheetName string, cols []notify.SheetColumn) error
}

type recordCreator interface {
	CreateRecord(ctx context.Context, apiKey, baseID, table string, fields map[string]any) error
}

type claimer interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type deliveryRepo interface {
	CreateBatch(ctx context.Context, deliveries []domain.Delivery) error
}

// Config holds dispatch settings.
type Config struct {
	Timeout     time.Duration
	MaxParallel int
	DedupeTTL   time.Duration
}

// Senders groups the channel clients.
type Senders struct {
	Mail     mailer
	Webhook  webhookPoster
	Sheets   sheetsAppender
	Airtable recordCreator
}

// Outcome is the result of delivering to one target.
type Outcome struct {
	Kind      domain.ChannelKind
	TargetKey string
	Status    domain.DeliveryStatus
	Err       error
	Duration  time.Duration
}

// Report collects the outcomes of one dispatch, in target order.
type Report struct {
	SubmissionID string
	Outcomes     []Outcome
}

// Count returns how many outcomes have status.
func (r Report) Count(status domain.DeliveryStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Dispatcher fans a submission out to its targets.
type Dispatcher struct {
	senders    Senders
	dedupe     claimer
	deliveries deliveryRepo
	metrics    *metrics.Metrics
	cfg        Config
	log        *slog.Logger
	now        func() time.Time
}

// NewDispatcher creates a Dispatcher. dedupe may be nil to disable
// duplicate suppression.
func NewDispatcher(
	log *slog.Logger,
	senders Senders,
	dedupe claimer,
	deliveries deliveryRepo,
	m *metrics.Metrics,
	cfg Config,
) *Dispatcher {
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = 8
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	return &Dispatcher{
		senders:    senders,
		dedupe:     dedupe,
		deliveries: deliveries,
		metrics:    m,
		cfg:        cfg,
		log:        log.With("service", "dispatch"),
		now:        time.Now,
	}
}

// Dispatch delivers sub to every target concurrently and waits for all
// attempts. Outcomes are recorded best-effort; recording failures are only
// logged.
func (d *Dispatcher) Dispatch(ctx context.Context, sub *domain.Submission, form *domain.Form, targets []domain.DispatchTarget) Report {
	report := Report{SubmissionID: sub.ID.String(), Outcomes: make([]Outcome, len(targets))}
	if len(targets) == 0 {
		return report
	}

	var g errgroup.Group
	g.SetLimit(d.cfg.MaxParallel)

	for i, target := range targets {
		g.Go(func() error {
			report.Outcomes[i] = d.deliverOne(ctx, sub, form, target)
			return nil
		})
	}
	_ = g.Wait()

	d.record(ctx, sub, report)

	d.log.InfoContext(ctx, "submission dispatched",
		slog.String("submission_id", sub.ID.String()),
		slog.Int("targets", len(targets)),
		slog.Int("success", report.Count(domain.DeliverySuccess)),
		slog.Int("failure", report.Count(domain.DeliveryFailure)),
		slog.Int("skipped", report.Count(domain.DeliverySkipped)),
	)
	return report
}

func (d *Dispatcher) deliverOne(ctx context.Context, sub *domain.Submission, form *domain.Form, target domain.DispatchTarget) Outcome {
	out := Outcome{Kind: target.Kind, TargetKey: target.Key()}

	claimKey := "delivery:" + sub.ID.String() + ":" + target.Key()
	claimed := false
	if d.dedupe != nil {
		ok, err := d.dedupe.Claim(ctx, claimKey, d.cfg.DedupeTTL)
		switch {
		case err != nil:
			// Deliver anyway: a duplicate beats a lost notification.
			d.log.WarnContext(ctx, "dedupe unavailable",
				slog.String("target", out.TargetKey),
				slog.String("error", err.Error()),
			)
		case !ok:
			out.Status = domain.DeliverySkipped
			d.metrics.RecordDelivery(ctx, target.Kind.String(), out.Status.String(), 0)
			return out
		default:
			claimed = true
		}
	}

	tctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	start := d.now()
	err := d.send(tctx, sub, form, target)
	out.Duration = d.now().Sub(start)

	if err != nil {
		if errors.Is(tctx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
		out.Status = domain.DeliveryFailure
		out.Err = err

		d.log.WarnContext(ctx, "delivery failed",
			slog.String("submission_id", sub.ID.String()),
			slog.String("target", out.TargetKey),
			slog.Duration("duration", out.Duration),
			slog.String("error", err.Error()),
		)

		if claimed {
			if rerr := d.dedupe.Release(ctx, claimKey); rerr != nil {
				d.log.WarnContext(ctx, "release dedupe claim failed", slog.String("error", rerr.Error()))
			}
		}
	} else {
		out.Status = domain.DeliverySuccess
	}

	d.metrics.RecordDelivery(ctx, target.Kind.String(), out.Status.String(), out.Duration)
	return out
}

func (d *Dispatcher) send(ctx context.Context, sub *domain.Submission, form *domain.Form, target domain.DispatchTarget) error {
	creds := target.Credentials
	if target.Kind != domain.ChannelEmail && !creds.Complete(target.Kind) {
		return fmt.Errorf("%s: incomplete credentials", target.Kind)
	}

	switch target.Kind {
	case domain.ChannelEmail:
		msg, err := emailMessage(form, sub, target.Email)
		if err != nil {
			return err
		}
		return d.senders.Mail.Send(ctx, msg)

	case domain.ChannelSlack:
		return d.senders.Webhook.Post(ctx, "slack", creds.WebhookURL, slackPayload(form, sub))

	case domain.ChannelDiscord:
		return d.senders.Webhook.Post(ctx, "discord", creds.WebhookURL, discordPayload(form, sub))

	case domain.ChannelSheets:
		tok := notify.SheetsToken{
			AccessToken:  creds.AccessToken,
			RefreshToken: creds.RefreshToken,
			Expiry:       creds.TokenExpiry,
		}
		return d.senders.Sheets.AppendRecord(ctx, tok, creds.SpreadsheetID, creds.SheetName, sheetsColumns(sub))

	case domain.ChannelAirtable:
		return d.senders.Airtable.CreateRecord(ctx, creds.APIKey, creds.BaseID, creds.TableName, airtableFields(sub))
	}
	return fmt.Errorf("unknown channel %q", target.Kind)
}

func (d *Dispatcher) record(ctx context.Context, sub *domain.Submission, report Report) {
	if d.deliveries == nil {
		return
	}

	attemptedAt := d.now().UTC()
	rows := make([]domain.Delivery, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		row := domain.Delivery{
			SubmissionID: sub.ID,
			Channel:      o.Kind,
			TargetKey:    o.TargetKey,
			Status:       o.Status,
			Duration:     o.Duration,
			AttemptedAt:  attemptedAt,
		}
		if o.Err != nil {
			msg := truncate(o.Err.Error(), 1000)
			row.Error = &msg
		}
		rows = append(rows, row)
	}

	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := d.deliveries.CreateBatch(rctx, rows); err != nil {
		d.log.WarnContext(ctx, "record deliveries failed",
			slog.String("submission_id", sub.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
