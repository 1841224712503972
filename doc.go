// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

// Package graph implements an incremental attribute graph: nodes hold either
// an externally supplied input value or a value computed by a pure,
// zero-argument rule that reads other nodes. Reading a node's value always
// returns a value consistent with the current inputs; a rule re-runs only
// when a transitive input it actually read has changed since its last
// evaluation.
//
// Dependencies between nodes are never declared by the caller. They are
// captured automatically: while a rule's closure is executing, any node it
// reads records an edge from itself to the rule node currently on top of the
// graph's evaluation stack. Two flags keep this cheap to maintain and cheap
// to react to:
//
//   - potentiallyDirty, carried on nodes, means "a transitive producer may
//     have changed; re-check on next read". Writing an input sets this flag
//     on every transitively reachable node immediately, without recomputing
//     anything.
//   - pending, carried on edges, means "the producer's value has changed
//     since the consumer last read it". A node only re-runs its rule if at
//     least one of its incoming edges is pending (or its cache is empty).
//
// See CreateInput, CreateRule, and (*Node[A]).Value for the public surface,
// and (*Graph).Snapshot for a point-in-time structural view suitable for
// debugging or rendering (see the sibling internal/graph/graphviz package).
package graph
