// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graph

// Observer is invoked after every transaction (see (*Graph).Transaction)
// with a short diagnostic label and the graph itself. It is the sole
// mechanism by which a caller learns that the graph may have changed;
// clients typically capture Snapshot inside the callback to build a
// per-step trace (see spec.md §6.1 and the internal/tracing package for a
// ready-made hclog/OpenTelemetry-backed Observer).
type Observer func(note string, g *Graph)

// Graph owns a set of nodes and the evaluation stack used while recomputing
// them. A Graph is not safe for concurrent use: control flow is
// single-threaded and re-entrant only through recursive reads within one
// goroutine (spec.md §5).
type Graph struct {
	observer Observer

	// nodes is insertion order, preserved so Snapshot output is
	// deterministic.
	nodes []*nodeSlot

	// stack is the LIFO of nodes currently evaluating their rule. Its top,
	// when non-empty, is the consumer whose dependency on a read is being
	// captured (spec.md §4.4 step 1).
	stack []*nodeSlot
}

// New creates an empty graph. A nil observer is treated as a no-op.
func New(observer Observer) *Graph {
	if observer == nil {
		observer = func(string, *Graph) {}
	}
	return &Graph{observer: observer}
}

// Transaction runs block, then unconditionally notifies the graph's
// observer with note and the graph itself, on every exit path including a
// panic unwinding out of block. Transactions nest; each nesting produces its
// own notification on exit (spec.md §4.1).
func (g *Graph) Transaction(note string, block func()) {
	defer g.observer(note, g)
	block()
}

// CreateInput constructs an input node pre-populated with value, appends it
// to the graph, and emits one change notification. Input nodes never have a
// rule and never have incoming edges (spec.md §3 invariant 2).
func CreateInput[A any](g *Graph, name string, value A) Node[A] {
	slot := &nodeSlot{
		graph:         g,
		id:            NodeID(len(g.nodes)),
		name:          name,
		isRule:        false,
		cached:        value,
		cachedPresent: true,
	}
	g.Transaction("create input", func() {
		g.nodes = append(g.nodes, slot)
	})
	return Node[A]{slot: slot}
}

// CreateRule constructs a rule node bound to f, appends it to the graph, and
// emits one change notification. The node's cache starts empty; its
// dependencies are unknown until f is first invoked by a read (spec.md
// §4.1).
func CreateRule[A any](g *Graph, name string, f func() A) Node[A] {
	slot := &nodeSlot{
		graph:  g,
		id:     NodeID(len(g.nodes)),
		name:   name,
		isRule: true,
		ruleFn: func() any { return f() },
	}
	g.Transaction("create rule", func() {
		g.nodes = append(g.nodes, slot)
	})
	return Node[A]{slot: slot}
}

func (g *Graph) pushEval(slot *nodeSlot) {
	g.stack = append(g.stack, slot)
	slot.onStack = true
}

// popEval pops the evaluation stack and asserts that the node it removed was
// expected. A mismatch means the engine itself has a bug (spec.md §7): some
// earlier push/pop did not nest correctly.
func (g *Graph) popEval(expected *nodeSlot) {
	if len(g.stack) == 0 || g.stack[len(g.stack)-1] != expected {
		panic(&InvariantError{Msg: "evaluation stack top mismatch popping " + expected.name})
	}
	g.stack = g.stack[:len(g.stack)-1]
	expected.onStack = false
}
