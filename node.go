// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graph

// NodeID is a node's stable identity, unique within its owning graph for
// the graph's whole lifetime. Nodes are never deleted, so a NodeID is never
// reused and never goes stale.
//
// NodeID is just the node's insertion index into the graph's node list. It
// is the identity exposed to callers and snapshots; inside the engine, nodes
// and edges refer to each other by pointer (a nodeSlot holds *edgeRec
// values whose endpoints are *nodeSlot).
type NodeID int

// nodeSlot is the type-erased representation of one graph cell. The typed,
// generic Node[A] handle wraps a *nodeSlot and is the only way calling code
// can read or write a node's value; nodeSlot itself is iterated upon
// uniformly by the graph for dirty propagation and snapshotting, the same
// split the design notes in spec.md §9 describe ("a type-erased node
// interface exposing only the common operations... with the typed
// read/write API available only through a typed handle").
type nodeSlot struct {
	graph *Graph

	id   NodeID
	name string

	isRule bool
	// ruleFn is nil for input nodes. It is type-erased: CreateRule wraps the
	// caller's typed func() A in a closure that returns any, and Node[A]
	// performs the single, safe downcast back to A on read.
	ruleFn func() any

	cached        any
	cachedPresent bool

	potentiallyDirty bool

	// onStack mirrors whether this node is currently on the graph's
	// evaluation stack, i.e. its rule is presently executing somewhere on
	// the call stack (possibly several reads deep). Maintained by
	// (*Graph).pushEval / (*Graph).popEval rather than recomputed by
	// scanning the stack, since NodeValue.IsCurrent is read far more often
	// than the stack changes shape.
	onStack bool

	outgoing []*edgeRec
	incoming []*edgeRec
}

// Node is a typed handle onto one graph cell holding a value of type A. The
// handle itself is a thin, comparable value; the state it refers to lives in
// the graph's node arena.
type Node[A any] struct {
	slot *nodeSlot
}

// ID returns the node's stable identity.
func (n Node[A]) ID() NodeID { return n.slot.id }

// Name returns the node's diagnostic name. It plays no role in the engine's
// behavior beyond labelling observer notifications (spec.md §6.1) and
// snapshot output.
func (n Node[A]) Name() string { return n.slot.name }

// IsRule reports whether the node is rule-backed, as opposed to an input.
func (n Node[A]) IsRule() bool { return n.slot.isRule }

// Value ensures the node is up to date and returns its cached value. Value
// never fails: reading a node is always well-defined once it exists. See
// (*Graph).recompute for the algorithm that keeps the cache coherent.
func (n Node[A]) Value() A {
	g := n.slot.graph
	g.recompute(n.slot)
	// Safe: the only *nodeSlot ever wrapped in a Node[A] is one whose
	// cached values are all produced either by CreateInput's A-typed
	// argument or by a rule closure declared func() A, so the dynamic type
	// behind cached is always A once cachedPresent is true. recompute
	// guarantees cachedPresent by the time it returns for a node that has
	// ever been read.
	value, _ := n.slot.cached.(A)
	return value
}

// Set overwrites an input node's value. It is a usage error to call Set on a
// rule node; Set reports this as an *UsageError rather than modifying any
// state.
func (n Node[A]) Set(value A) error {
	slot := n.slot
	if slot.isRule {
		return &UsageError{Op: "write", Node: slot.name}
	}
	g := slot.graph
	g.Transaction(slot.name+" wrappedValue: set", func() {
		slot.cached = value
		slot.cachedPresent = true
		for _, e := range slot.outgoing {
			e.pending = true
			g.setPotentiallyDirty(e.to, true)
		}
	})
	return nil
}
