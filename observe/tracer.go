package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// RunMeta describes one classification run (a benchmark batch or any other
// bulk invocation of the classifier) for telemetry purposes.
type RunMeta struct {
	Policy     string // policy label ("http-only" or "any-scheme")
	Workers    int    // number of concurrent workers
	Iterations int    // checks per worker
	Cached     bool   // whether memoization was enabled
}

// SpanName returns the deterministic span name for this run.
// Format: url.check.run.<policy>
func (m RunMeta) SpanName() string {
	return "url.check.run." + m.Policy
}

// Tracer wraps OpenTelemetry tracing with run-scoped span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndRun must be best-effort and must not panic.
type Tracer interface {
	// StartRun starts a span covering one classification run.
	StartRun(ctx context.Context, meta RunMeta) (context.Context, trace.Span)

	// EndRun ends the span, recording any error.
	EndRun(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartRun starts a span with the run metadata as attributes.
func (t *tracerImpl) StartRun(ctx context.Context, meta RunMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("url.check.policy", meta.Policy),
		attribute.Int("url.check.workers", meta.Workers),
		attribute.Int("url.check.iterations", meta.Iterations),
		attribute.Bool("url.check.cached", meta.Cached),
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndRun ends the span and records the error status if present.
func (t *tracerImpl) EndRun(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// NewNoopTracer creates a no-op Tracer.
func NewNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartRun(ctx context.Context, meta RunMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndRun(span trace.Span, err error) {
	span.End()
}
