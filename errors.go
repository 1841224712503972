// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graph

import "fmt"

// UsageError reports a caller mistake the graph can detect and reject
// without corrupting its own state, such as writing to a rule node.
type UsageError struct {
	Op   string
	Node string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("graph: invalid %s on node %q: rule nodes cannot be written to", e.Op, e.Node)
}

// InvariantError reports a condition the engine itself is supposed to
// guarantee. Seeing one means the engine has a bug, not that the caller
// misused the API; callers should not attempt to recover from it.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "graph: invariant violation: " + e.Msg
}
