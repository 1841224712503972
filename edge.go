// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graph

// edgeRec is the graph's internal representation of a directed dependency
// from a producer node to a consumer node. Edges are owned by the graph;
// both endpoints hold the same *edgeRec by reference, which is what
// mirroring invariant 1 (spec.md §3) amounts to in this representation:
// appending e to producer.outgoing and consumer.incoming in the same step
// makes the two lists agree by construction, rather than something that
// needs to be checked afterwards.
type edgeRec struct {
	from *nodeSlot
	to   *nodeSlot

	// pending means "from's value has changed since to last read it".
	pending bool
}
