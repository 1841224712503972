// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graphviz

import (
	"bufio"
	"fmt"
	"io"

	graph "github.com/attrgraph/attrgraph"
)

// WriteDirectedGraph renders snap to the Graphviz language on w, following
// the contract in spec.md §6.3. Nodes and edges are emitted in the order
// they appear on snap (graph.Snapshot already hands them back in
// deterministic insertion order), so repeated renderings of an unchanged
// snapshot produce byte-identical output.
//
// If this function returns an error, an unspecified amount of partial data
// may already have been written to w.
func WriteDirectedGraph(snap *graph.GraphValue, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("digraph {\n"); err != nil {
		return err
	}

	for _, n := range snap.Nodes {
		if err := writeNode(bw, n); err != nil {
			return err
		}
	}
	for _, e := range snap.Edges {
		if err := writeEdge(bw, e); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString("}\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func writeNode(bw *bufio.Writer, n graph.NodeValue) error {
	style := "solid"
	if n.PotentiallyDirty {
		style = "dashed"
	}

	attrs := fmt.Sprintf(`label="%s (%s)", style=%s`,
		escapeLabel(n.Name), escapeLabel(n.Value), style)
	if n.IsRule {
		attrs += `, shape=rect`
	}
	if n.IsCurrent {
		attrs += `, color=red`
	}

	_, err := fmt.Fprintf(bw, "  %s [%s];\n", nodeID(int(n.ID)), attrs)
	return err
}

func writeEdge(bw *bufio.Writer, e graph.EdgeValue) error {
	style := "solid"
	if e.Pending {
		style = "dashed"
	}
	_, err := fmt.Fprintf(bw, "  %s -> %s [style=%s];\n",
		nodeID(int(e.From)), nodeID(int(e.To)), style)
	return err
}
