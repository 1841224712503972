// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	graph "github.com/attrgraph/attrgraph"
)

func TestCreateInputEmitsOneNotification(t *testing.T) {
	var notes []string
	g := graph.New(func(note string, _ *graph.Graph) {
		notes = append(notes, note)
	})

	graph.CreateInput(g, "x", 2)

	require.Equal(t, []string{"create input"}, notes)
}

func TestCreateRuleEmitsOneNotification(t *testing.T) {
	var notes []string
	g := graph.New(func(note string, _ *graph.Graph) {
		notes = append(notes, note)
	})

	x := graph.CreateInput(g, "x", 2)
	graph.CreateRule(g, "double", func() int { return x.Value() * 2 })

	require.Equal(t, []string{"create input", "create rule"}, notes)
}

func TestTransactionNestingNotifiesOnEveryExit(t *testing.T) {
	var notes []string
	g := graph.New(func(note string, _ *graph.Graph) {
		notes = append(notes, note)
	})

	g.Transaction("outer", func() {
		g.Transaction("inner", func() {})
	})

	require.Equal(t, []string{"inner", "outer"}, notes)
}

func TestTransactionNotifiesEvenOnPanic(t *testing.T) {
	var notes []string
	g := graph.New(func(note string, _ *graph.Graph) {
		notes = append(notes, note)
	})

	require.Panics(t, func() {
		g.Transaction("doomed", func() {
			panic("boom")
		})
	})
	require.Equal(t, []string{"doomed"}, notes)
}

func TestSetOnRuleNodeIsUsageError(t *testing.T) {
	g := graph.New(nil)
	rule := graph.CreateRule(g, "constant", func() int { return 1 })

	err := rule.Set(5)
	require.Error(t, err)
	var usageErr *graph.UsageError
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, 1, rule.Value())
}

// Scenario A from spec.md §8: independent inputs.
func TestScenarioAIndependentInputs(t *testing.T) {
	g := graph.New(nil)
	x := graph.CreateInput(g, "x", 2)
	y := graph.CreateInput(g, "y", 3)
	sum := graph.CreateRule(g, "sum", func() int {
		return x.Value() + y.Value()
	})

	require.Equal(t, 5, sum.Value())

	snap := g.Snapshot()
	var sumNode *graph.NodeValue
	for i := range snap.Nodes {
		if snap.Nodes[i].Name == "sum" {
			sumNode = &snap.Nodes[i]
		}
	}
	require.NotNil(t, sumNode)
	require.True(t, sumNode.IsRule)
	require.False(t, sumNode.PotentiallyDirty)

	for _, e := range snap.Edges {
		if e.To == sum.ID() {
			require.False(t, e.Pending)
		}
	}
}

// Scenario B from spec.md §8: write propagates.
func TestScenarioBWritePropagates(t *testing.T) {
	g := graph.New(nil)
	x := graph.CreateInput(g, "x", 2)
	y := graph.CreateInput(g, "y", 3)
	sum := graph.CreateRule(g, "sum", func() int {
		return x.Value() + y.Value()
	})
	require.Equal(t, 5, sum.Value())

	require.NoError(t, x.Set(10))

	snapBeforeRead := g.Snapshot()
	var xToSumPending, sumDirty bool
	for _, n := range snapBeforeRead.Nodes {
		if n.Name == "sum" {
			sumDirty = n.PotentiallyDirty
			require.Equal(t, "5", n.Value)
		}
	}
	for _, e := range snapBeforeRead.Edges {
		if e.From == x.ID() && e.To == sum.ID() {
			xToSumPending = e.Pending
		}
	}
	require.True(t, xToSumPending)
	require.True(t, sumDirty)

	require.Equal(t, 13, sum.Value())

	snapAfterRead := g.Snapshot()
	for _, n := range snapAfterRead.Nodes {
		if n.Name == "sum" {
			require.False(t, n.PotentiallyDirty)
			require.Equal(t, "13", n.Value)
		}
	}
	for _, e := range snapAfterRead.Edges {
		if e.To == sum.ID() {
			require.False(t, e.Pending)
		}
	}
}

// Scenario C from spec.md §8: a chain of rules.
func TestScenarioCChain(t *testing.T) {
	g := graph.New(nil)
	a := graph.CreateInput(g, "a", 1)
	b := graph.CreateRule(g, "b", func() int { return a.Value() * 2 })
	c := graph.CreateRule(g, "c", func() int { return b.Value() + 1 })

	require.Equal(t, 3, c.Value())

	require.NoError(t, a.Set(5))
	require.Equal(t, 11, c.Value())

	snap := g.Snapshot()
	for _, n := range snap.Nodes {
		require.False(t, n.PotentiallyDirty, "node %s should be clean", n.Name)
	}
	for _, e := range snap.Edges {
		require.False(t, e.Pending, "edge %d->%d should be non-pending", e.From, e.To)
	}
}

// Scenario D from spec.md §8: a shared producer.
func TestScenarioDSharedProducer(t *testing.T) {
	g := graph.New(nil)
	a := graph.CreateInput(g, "a", 1)
	b := graph.CreateRule(g, "b", func() int { return a.Value() + 1 })
	c := graph.CreateRule(g, "c", func() int { return a.Value() + 2 })
	d := graph.CreateRule(g, "d", func() int { return b.Value() + c.Value() })

	require.Equal(t, 5, d.Value())

	require.NoError(t, a.Set(10))
	require.Equal(t, 23, d.Value())

	snap := g.Snapshot()
	require.Len(t, snap.Edges, 4)
}

// Scenario E from spec.md §8: observer trace ordering.
func TestScenarioEObserverTrace(t *testing.T) {
	var notes []string
	g := graph.New(func(note string, _ *graph.Graph) {
		notes = append(notes, note)
	})
	x := graph.CreateInput(g, "x", 2)
	y := graph.CreateInput(g, "y", 3)
	sum := graph.CreateRule(g, "sum", func() int {
		return x.Value() + y.Value()
	})

	sum.Value()

	pushIdx, evalIdx, popIdx := -1, -1, -1
	for i, note := range notes {
		switch note {
		case "sum rec: push":
			if pushIdx == -1 {
				pushIdx = i
			}
		case "sum rec: evaluate rule":
			if evalIdx == -1 {
				evalIdx = i
			}
		case "sum rec: pop":
			if popIdx == -1 {
				popIdx = i
			}
		}
	}

	require.NotEqual(t, -1, pushIdx, "expected a \"sum rec: push\" notification")
	require.NotEqual(t, -1, evalIdx, "expected a \"sum rec: evaluate rule\" notification")
	require.NotEqual(t, -1, popIdx, "expected a \"sum rec: pop\" notification")
	require.Less(t, pushIdx, evalIdx)
	require.Less(t, evalIdx, popIdx)
}
