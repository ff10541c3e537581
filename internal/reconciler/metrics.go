package reconciler

import (
	"context"
	"filplus/pkg/metrics"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "filplus/internal/reconciler"

// Metrics holds the OpenTelemetry instruments of the reconciliation loop. A
// nil *Metrics records nothing.
type Metrics struct {
	items        metric.Int64Counter
	itemDuration metric.Float64Histogram
	ticks        metric.Int64Counter
	tickDuration metric.Float64Histogram
}

// NewMetrics creates the instruments on provider. It returns nil when provider is nil.
func NewMetrics(provider metric.MeterProvider) (*Metrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(meterName)

	items, err := meter.Int64Counter("filplus_reconciler_items_total",
		metric.WithDescription("Number of reconciled applications by outcome"),
		metric.WithUnit("{application}"))
	if err != nil {
		return nil, err
	}
	itemDuration, err := meter.Float64Histogram("filplus_reconciler_item_duration_seconds",
		metric.WithDescription("Duration of reconciling one application in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, err
	}
	ticks, err := meter.Int64Counter("filplus_reconciler_ticks_total",
		metric.WithDescription("Number of reconciliation ticks, including skipped ones"),
		metric.WithUnit("{tick}"))
	if err != nil {
		return nil, err
	}
	tickDuration, err := meter.Float64Histogram("filplus_reconciler_tick_duration_seconds",
		metric.WithDescription("Duration of reconciliation ticks in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.TaskBuckets...))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		items:        items,
		itemDuration: itemDuration,
		ticks:        ticks,
		tickDuration: tickDuration,
	}, nil
}

// RecordItem records the outcome and duration of one application.
func (m *Metrics) RecordItem(ctx context.Context, outcome Outcome, duration time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("outcome", string(outcome)))
	m.items.Add(ctx, 1, attrs)
	m.itemDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordTick records a tick. Skipped ticks have no duration.
func (m *Metrics) RecordTick(ctx context.Context, skipped bool, duration time.Duration) {
	if m == nil {
		return
	}

	m.ticks.Add(ctx, 1, metric.WithAttributes(attribute.Bool("skipped", skipped)))
	if !skipped {
		m.tickDuration.Record(ctx, duration.Seconds())
	}
}
