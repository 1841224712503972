// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

// Package tracing wires graph.Observer notifications (spec.md §6.1) into
// the teacher's own diagnostic stack: structured logging via
// github.com/hashicorp/go-hclog, and distributed-tracing spans/metrics via
// go.opentelemetry.io/otel, following the same "Tracer().Start(ctx, name)"
// shape the teacher's own internal/tracing package uses around its own
// long-running operations.
package tracing
