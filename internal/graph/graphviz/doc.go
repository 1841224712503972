// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

// Package graphviz renders a *graph.GraphValue snapshot to the Graphviz
// ("dot") language, following the rendering contract in spec.md §6.3:
//
//   - Each node emits a line of the form
//     `<id> [label="<name> (<value>)", style=<solid|dashed>, shape=<rect?>, color=<red?>]`
//     where dashed ⇔ PotentiallyDirty, shape=rect ⇔ IsRule, color=red ⇔
//     IsCurrent.
//   - Each edge emits `<from> -> <to> [style=<solid|dashed>]` where dashed
//     ⇔ Pending.
//   - Identifiers are restricted to alphanumerics; quotation marks embedded
//     in label strings are escaped.
//
// This is a close adaptation of the teacher's own dag-to-Graphviz renderer
// (internal/dag/graphviz in the OpenTofu tree this project started from):
// deterministic output (here by emitting in the snapshot's insertion order;
// nothing is sorted) and the same attribute quoting helper shape, retargeted from a generic dag.Graph to this
// engine's concrete GraphValue and narrowed to the exact attribute set
// spec.md §6.3 names.
package graphviz
