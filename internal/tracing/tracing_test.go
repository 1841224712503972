// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package tracing_test

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	graph "github.com/attrgraph/attrgraph"
	"github.com/attrgraph/attrgraph/internal/tracing"
)

func TestRecorderCapturesScenarioETrace(t *testing.T) {
	rec := tracing.NewRecorder(hclog.NewNullLogger())
	g := graph.New(rec.Observer())

	x := graph.CreateInput(g, "x", 2)
	y := graph.CreateInput(g, "y", 3)
	sum := graph.CreateRule(g, "sum", func() int { return x.Value() + y.Value() })

	sum.Value()

	labels := rec.Labels()
	require.Contains(t, labels, "sum rec: push")
	require.Contains(t, labels, "sum rec: evaluate rule")
	require.Contains(t, labels, "sum rec: pop")
}

func TestSpanningObserverChainsToNext(t *testing.T) {
	meter := otel.GetMeterProvider().Meter("attrgraph-test")
	metrics, err := tracing.NewMetrics(meter)
	require.NoError(t, err)

	var delegated []string
	span := tracing.NewSpanningObserver(context.Background(), metrics, func(note string, _ *graph.Graph) {
		delegated = append(delegated, note)
	})

	g := graph.New(span.Observer())
	x := graph.CreateInput(g, "x", 1)
	rule := graph.CreateRule(g, "double", func() int { return x.Value() * 2 })
	require.Equal(t, 2, rule.Value())

	require.NotEmpty(t, delegated)
	require.Contains(t, delegated, "double rec: evaluate rule")
}
