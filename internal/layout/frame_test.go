// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	graph "github.com/attrgraph/attrgraph"
	"github.com/attrgraph/attrgraph/internal/layout"
)

// Scenario F from spec.md §8: the layout collaborator.
func TestScenarioFLayoutDemo(t *testing.T) {
	g := graph.New(nil)
	demo := layout.NewDemo(g, layout.Size{Width: 200, Height: 100})

	first := demo.Frame.Value()
	require.Equal(t, layout.Frame{X: 8, Y: 8, Width: 184, Height: 84}, first)

	size := demo.Size.Value()
	size.Width = 300
	require.NoError(t, demo.Size.Set(size))

	second := demo.Frame.Value()
	require.NotEqual(t, first, second)
	require.Equal(t, layout.Frame{X: 8, Y: 8, Width: 284, Height: 84}, second)

	snap := g.Snapshot()
	for _, n := range snap.Nodes {
		require.False(t, n.PotentiallyDirty, "node %s should be clean after second read", n.Name)
	}
	for _, e := range snap.Edges {
		require.False(t, e.Pending, "edge %d->%d should be non-pending after second read", e.From, e.To)
	}
}

func TestCenterAlignmentReadsAllThreeProducers(t *testing.T) {
	g := graph.New(nil)
	demo := layout.NewDemo(g, layout.Size{Width: 100, Height: 60})
	require.NoError(t, demo.Alignment.Set(layout.AlignCenter))

	frame := demo.Frame.Value()
	require.InDelta(t, 8, frame.X, 0.001)
	require.InDelta(t, 8, frame.Y, 0.001)
}

func TestPaddingLargerThanSizeClampsToZero(t *testing.T) {
	g := graph.New(nil)
	demo := layout.NewDemo(g, layout.Size{Width: 10, Height: 10})
	require.NoError(t, demo.Padding.Set(20))

	frame := demo.Frame.Value()
	require.Equal(t, 0.0, frame.Width)
	require.Equal(t, 0.0, frame.Height)
}
