package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records classification outcomes.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; the call sites are hot paths.
// - Errors: recording is best-effort and must not panic.
type Metrics interface {
	// RecordCheck records one classification: the policy label, whether the
	// input was judged absolute, and whether the result came from the memo
	// store.
	RecordCheck(ctx context.Context, policy string, absolute, cached bool)

	// RecordEvictions adds n to the memo-store eviction counter.
	RecordEvictions(ctx context.Context, n int64)

	// RecordRun records the wall-clock duration of a bulk classification
	// run under the given policy label.
	RecordRun(ctx context.Context, policy string, duration time.Duration)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	checks      metric.Int64Counter
	absolute    metric.Int64Counter
	hits        metric.Int64Counter
	misses      metric.Int64Counter
	evictions   metric.Int64Counter
	runDuration metric.Float64Histogram
}

// NewMetrics creates a Metrics instance recording through the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	checks, err := meter.Int64Counter(
		"url.check.total",
		metric.WithDescription("Total number of URL classifications"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	absolute, err := meter.Int64Counter(
		"url.check.absolute",
		metric.WithDescription("Number of inputs classified as absolute"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	hits, err := meter.Int64Counter(
		"url.check.cache.hits",
		metric.WithDescription("Number of classifications served from the memo store"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		"url.check.cache.misses",
		metric.WithDescription("Number of classifications computed fresh"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	evictions, err := meter.Int64Counter(
		"url.check.cache.evictions",
		metric.WithDescription("Number of memo-store entries evicted"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"url.check.run.duration_ms",
		metric.WithDescription("Wall-clock duration of bulk classification runs"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		checks:      checks,
		absolute:    absolute,
		hits:        hits,
		misses:      misses,
		evictions:   evictions,
		runDuration: runDuration,
	}, nil
}

// RecordCheck records counters for one classification.
func (m *metricsImpl) RecordCheck(ctx context.Context, policy string, absolute, cached bool) {
	opt := metric.WithAttributes(attribute.String("policy", policy))

	m.checks.Add(ctx, 1, opt)
	if absolute {
		m.absolute.Add(ctx, 1, opt)
	}
	if cached {
		m.hits.Add(ctx, 1, opt)
	} else {
		m.misses.Add(ctx, 1, opt)
	}
}

// RecordEvictions adds n to the eviction counter.
func (m *metricsImpl) RecordEvictions(ctx context.Context, n int64) {
	if n <= 0 {
		return
	}
	m.evictions.Add(ctx, n)
}

// RecordRun records one bulk run's duration in milliseconds.
func (m *metricsImpl) RecordRun(ctx context.Context, policy string, duration time.Duration) {
	opt := metric.WithAttributes(attribute.String("policy", policy))
	m.runDuration.Record(ctx, float64(duration.Milliseconds()), opt)
}

// NoopMetrics is a Metrics implementation that records nothing.
type NoopMetrics struct{}

func (NoopMetrics) RecordCheck(ctx context.Context, policy string, absolute, cached bool) {}
func (NoopMetrics) RecordEvictions(ctx context.Context, n int64)                          {}
func (NoopMetrics) RecordRun(ctx context.Context, policy string, duration time.Duration)  {}

// Ensure implementations satisfy Metrics
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = NoopMetrics{}
)
