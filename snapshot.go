// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// GraphValue is an immutable, point-in-time structural description of a
// graph, suitable for debugging or rendering (spec.md §4.5, §6.2). Nodes
// appear in insertion order; Edges is the flat concatenation of each node's
// outgoing edges, in that same order.
//
// ID distinguishes one snapshot from another (including two snapshots of
// the same graph taken at different times), which a debugger client can use
// to tell whether it is looking at stale data.
type GraphValue struct {
	ID    uuid.UUID
	Nodes []NodeValue
	Edges []EdgeValue
}

// NodeValue describes one node as of the moment its owning GraphValue was
// produced.
type NodeValue struct {
	ID               NodeID
	Name             string
	PotentiallyDirty bool
	// Value is a best-effort textual rendering of the node's cached value,
	// or the literal "<nil>" if the cache is empty.
	Value     string
	IsRule    bool
	IsCurrent bool
}

// EdgeValue describes one directed edge as of the moment its owning
// GraphValue was produced.
type EdgeValue struct {
	From    NodeID
	To      NodeID
	Pending bool
}

// Snapshot produces an immutable description of the graph's current
// structure. It is a pure read: it never triggers recomputation, so taking
// a snapshot cannot itself change what it reports (spec.md §4.1, §4.5).
func (g *Graph) Snapshot() *GraphValue {
	gv := &GraphValue{ID: uuid.New()}
	for _, slot := range g.nodes {
		gv.Nodes = append(gv.Nodes, NodeValue{
			ID:               slot.id,
			Name:             slot.name,
			PotentiallyDirty: slot.potentiallyDirty,
			Value:            renderCachedValue(slot),
			IsRule:           slot.isRule,
			IsCurrent:        slot.onStack,
		})
		for _, e := range slot.outgoing {
			gv.Edges = append(gv.Edges, EdgeValue{
				From:    e.from.id,
				To:      e.to.id,
				Pending: e.pending,
			})
		}
	}
	return gv
}

func renderCachedValue(slot *nodeSlot) string {
	if !slot.cachedPresent {
		return "<nil>"
	}
	return fmt.Sprintf("%v", slot.cached)
}
