// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graphviz

import (
	"strconv"
	"strings"
)

// nodeID renders a graph.NodeID as a Graphviz identifier restricted to
// alphanumerics (spec.md §6.3), by prefixing the numeric, zero-based node
// index with a letter.
func nodeID(id int) string {
	return "n" + strconv.Itoa(id)
}

// escapeLabel escapes embedded quotation marks in a string destined for a
// Graphviz quoted label, per spec.md §6.3.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
