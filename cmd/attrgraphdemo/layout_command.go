// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"
	"go.opentelemetry.io/otel"

	graph "github.com/attrgraph/attrgraph"
	"github.com/attrgraph/attrgraph/internal/layout"
	"github.com/attrgraph/attrgraph/internal/tracing"
)

// layoutCommand drives the internal/layout collaborator: spec.md §8
// Scenario F, an input size feeding a tree of rules that computes a padded
// frame. It reads the frame, resizes the input, and reads it again.
type layoutCommand struct {
	cfg *config
}

func (c *layoutCommand) Help() string {
	return strings.TrimSpace(`
Usage: attrgraphdemo layout [-width=<n>] [-height=<n>] [-center]

  Builds the size -> paddedSize -> frame rule tree, reads the frame, resizes
  the size input, then reads it again. Prints the observer trace and a
  Graphviz-language snapshot of the resulting graph.

Options:

  -width=<n>    New width to write to the size input before the second
                read. Defaults to 300.
  -height=<n>   New height to write to the size input before the second
                read. Defaults to 150.
  -center       Switch the alignment input to center before the second
                read. Defaults to leading.

The trace is logged through hclog at ATTRGRAPH_LOG_LEVEL (default trace),
to ATTRGRAPH_LOG_PATH if set (default stderr). The Graphviz snapshot is
written to ATTRGRAPH_GRAPHVIZ_OUTPUT_PATH if set, otherwise printed to
stdout.
`)
}

func (c *layoutCommand) Synopsis() string {
	return "Run the size -> frame layout demo and print its trace"
}

func (c *layoutCommand) Run(args []string) int {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	width := fs.Float64("width", 300, "new width for the size input")
	height := fs.Float64("height", 150, "new height for the size input")
	center := fs.Bool("center", false, "switch alignment to center before the second read")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	logger, closer, err := c.cfg.newLogger("attrgraphdemo.layout")
	if err != nil {
		Ui.Error(fmt.Sprintf("failed to open log output: %s", err))
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}
	rec := tracing.NewRecorder(logger)

	meter := otel.GetMeterProvider().Meter("attrgraphdemo")
	metrics, err := tracing.NewMetrics(meter)
	if err != nil {
		Ui.Error(fmt.Sprintf("failed to create metrics: %s", err))
		return 1
	}
	spans := tracing.NewSpanningObserver(context.Background(), metrics, rec.Observer())

	g := graph.New(spans.Observer())
	demo := layout.NewDemo(g, layout.Size{Width: 200, Height: 100})

	Ui.Output(fmt.Sprintf("frame = %+v", demo.Frame.Value()))

	if *center {
		if err := demo.Alignment.Set(layout.AlignCenter); err != nil {
			Ui.Error(err.Error())
			return 1
		}
	}
	if err := demo.Size.Set(layout.Size{Width: *width, Height: *height}); err != nil {
		Ui.Error(err.Error())
		return 1
	}
	Ui.Output(fmt.Sprintf("frame = %+v (after resize to %gx%g)", demo.Frame.Value(), *width, *height))

	Ui.Info(colorstring.Color("[bold]notification trace:[reset]"))
	for _, note := range rec.Labels() {
		Ui.Output("  " + note)
	}

	if err := renderGraphviz(c.cfg, g.Snapshot()); err != nil {
		Ui.Error(fmt.Sprintf("failed to render graph: %s", err))
		return 1
	}

	return 0
}
