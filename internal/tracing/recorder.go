// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package tracing

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	graph "github.com/attrgraph/attrgraph"
)

// Recorder turns graph.Observer notifications into structured log lines and
// keeps an in-memory history of the labels it has seen, for callers (tests
// among them) that want to assert on the notification sequence spec.md §6.1
// specifies — e.g. Scenario E's "push, then evaluate rule, then pop" trace.
type Recorder struct {
	logger hclog.Logger
	labels []string
}

// NewRecorder creates a Recorder that logs through logger. A nil logger
// logs nowhere, but the label history is still recorded.
func NewRecorder(logger hclog.Logger) *Recorder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Recorder{logger: logger}
}

// Observer returns a graph.Observer bound to this Recorder.
func (r *Recorder) Observer() graph.Observer {
	return r.observe
}

// Labels returns a copy of every notification label seen so far, in order.
func (r *Recorder) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

func (r *Recorder) observe(note string, g *graph.Graph) {
	r.labels = append(r.labels, note)
	r.logger.Trace(note, "graph", snapshotDigest(g))
}

// snapshotDigest is a compact, human-readable summary of a graph's current
// shape, cheap enough to compute on every transaction for trace-level
// logging without materializing a full GraphValue string.
func snapshotDigest(g *graph.Graph) string {
	snap := g.Snapshot()
	dirty := 0
	for _, n := range snap.Nodes {
		if n.PotentiallyDirty {
			dirty++
		}
	}
	return fmt.Sprintf("%d nodes, %d edges, %d dirty", len(snap.Nodes), len(snap.Edges), dirty)
}
