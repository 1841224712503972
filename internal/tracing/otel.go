// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package tracing

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	graph "github.com/attrgraph/attrgraph"
)

const instrumentationName = "github.com/attrgraph/attrgraph"

// Tracer returns the OpenTelemetry tracer this package instruments
// transactions with. Like the teacher's own internal/tracing package, it
// goes through the global TracerProvider (otel.Tracer), so it is a no-op
// until the host process configures one.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Metrics holds the counter instruments SpanningObserver records into.
type Metrics struct {
	recomputes    metric.Int64Counter
	shortCircuits metric.Int64Counter
}

// NewMetrics creates the counter instruments from meter. Pass
// otel.GetMeterProvider().Meter(instrumentationName) for a caller that
// hasn't configured its own MeterProvider; the instruments are then no-ops.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	recomputes, err := meter.Int64Counter(
		"attrgraph.rule.recomputes",
		metric.WithDescription("number of times a rule node's closure was invoked"),
	)
	if err != nil {
		return nil, err
	}
	shortCircuits, err := meter.Int64Counter(
		"attrgraph.rule.short_circuits",
		metric.WithDescription("number of reads that found a potentially dirty rule node with no pending incoming edge and skipped re-evaluation"),
	)
	if err != nil {
		return nil, err
	}
	return &Metrics{recomputes: recomputes, shortCircuits: shortCircuits}, nil
}

// SpanningObserver wraps another graph.Observer, opening one OpenTelemetry
// span per transaction (named after the transaction's note) and recording
// rule-recompute / short-circuit counts, before delegating to next. This
// keeps the engine's single-threaded contract (spec.md §5) intact: the span
// is started and ended synchronously within the same transaction exit the
// core already performs, never introducing a suspension point of its own.
type SpanningObserver struct {
	ctx     context.Context
	tracer  trace.Tracer
	metrics *Metrics
	next    graph.Observer
}

// NewSpanningObserver creates a SpanningObserver. next may be nil.
func NewSpanningObserver(ctx context.Context, metrics *Metrics, next graph.Observer) *SpanningObserver {
	return &SpanningObserver{ctx: ctx, tracer: Tracer(), metrics: metrics, next: next}
}

// Observer returns a graph.Observer bound to this SpanningObserver.
func (s *SpanningObserver) Observer() graph.Observer {
	return s.observe
}

func (s *SpanningObserver) observe(note string, g *graph.Graph) {
	_, span := s.tracer.Start(s.ctx, note)
	switch {
	case strings.HasSuffix(note, "rec: evaluate rule"):
		s.metrics.recomputes.Add(s.ctx, 1)
	case strings.HasSuffix(note, "rec: no-pending"):
		s.metrics.shortCircuits.Add(s.ctx, 1)
	}
	span.End()

	if s.next != nil {
		s.next(note, g)
	}
}
