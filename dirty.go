// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graph

// setPotentiallyDirty is the single source of invalidation (spec.md §4.3).
// It is idempotent and cycle-free by construction: a node already marked
// dirty short-circuits, so the recursive walk over outgoing edges visits
// each reachable node at most once per write, bounded by the DAG's
// reachable set.
//
// The false→true transition happens inside its own transaction, labelled
// "<name> set dirty", and propagates to every node reachable via outgoing
// edges. The true→false transition is silent: it only ever happens from
// inside the recompute path (recompute.go), once a node has reconciled all
// of its upstream dependencies, and is not itself something an observer
// needs to be told about separately from the recompute step that caused it.
func (g *Graph) setPotentiallyDirty(slot *nodeSlot, value bool) {
	if slot.potentiallyDirty == value {
		return
	}
	if !value {
		slot.potentiallyDirty = false
		return
	}
	g.Transaction(slot.name+" set dirty", func() {
		slot.potentiallyDirty = true
	})
	for _, e := range slot.outgoing {
		g.setPotentiallyDirty(e.to, true)
	}
}
