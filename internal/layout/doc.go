// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

// Package layout is the external layout/view demo collaborator spec.md §1
// and §6 describe: a small client built on top of the graph package's
// public API, used to exercise a realistic multi-level rule chain (spec.md
// §8 Scenario F) above the single-rule arithmetic chains the core's own
// tests use. It renders nothing and serializes nothing to a drawing
// language of its own — per spec.md §1, that is explicitly out of scope.
package layout
