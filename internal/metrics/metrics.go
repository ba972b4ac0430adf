// Package metrics records intake decisions and delivery outcomes with the
// OpenTelemetry metric API. Without a configured MeterProvider every
// instrument is a no-op.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metrics holds the formdrop instruments.
type Metrics struct {
	intakeDecisions  metric.Int64Counter
	deliveries       metric.Int64Counter
	deliveryDuration metric.Float64Histogram
	eventsPublished  metric.Int64Counter
}

// New creates instruments on the global meter named after the service.
func New(serviceName string) (*Metrics, error) {
	return NewWithMeter(otel.Meter(serviceName))
}

// NewWithMeter creates instruments on meter.
func NewWithMeter(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.intakeDecisions, err = meter.Int64Counter(
		"formdrop.intake.decisions",
		metric.WithDescription("Submissions received, by outcome"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, err
	}

	m.deliveries, err = meter.Int64Counter(
		"formdrop.dispatch.deliveries",
		metric.WithDescription("Delivery attempts, by channel and status"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return nil, err
	}

	// Buckets: 10ms, 50ms, 100ms, 250ms, 500ms, 1s, 2.5s, 5s, 10s, 30s
	m.deliveryDuration, err = meter.Float64Histogram(
		"formdrop.dispatch.duration",
		metric.WithDescription("Time spent delivering to one target"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return nil, err
	}

	m.eventsPublished, err = meter.Int64Counter(
		"formdrop.events.published",
		metric.WithDescription("Submission events published, by result"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// NewNoop returns Metrics backed by a no-op meter, for tests.
func NewNoop() *Metrics {
	m, _ := NewWithMeter(noop.NewMeterProvider().Meter("noop"))
	return m
}

// RecordIntake counts one intake decision. outcome is a short code such as
// "accepted", "quota_exceeded" or "validation_error".
func (m *Metrics) RecordIntake(ctx context.Context, outcome string) {
	m.intakeDecisions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordDelivery counts one delivery outcome and its duration.
func (m *Metrics) RecordDelivery(ctx context.Context, channel, status string, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("status", status),
	)
	m.deliveries.Add(ctx, 1, attrs)
	m.deliveryDuration.Record(ctx, d.Seconds(), attrs)
}

// RecordPublish counts one event publish attempt.
func (m *Metrics) RecordPublish(ctx context.Context, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.eventsPublished.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
