// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/colorstring"

	graph "github.com/attrgraph/attrgraph"
	"github.com/attrgraph/attrgraph/internal/graph/graphviz"
)

// renderGraphviz writes snap's Graphviz-language rendering to
// cfg.GraphvizOutputPath when set, or to Ui otherwise. Shared by every
// command so the ATTRGRAPH_GRAPHVIZ_OUTPUT_PATH knob behaves identically
// everywhere.
func renderGraphviz(cfg *config, snap *graph.GraphValue) error {
	if cfg.GraphvizOutputPath != "" {
		f, err := os.Create(cfg.GraphvizOutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := graphviz.WriteDirectedGraph(snap, f); err != nil {
			return err
		}
		Ui.Info(colorstring.Color(fmt.Sprintf("[bold]graphviz snapshot written to[reset] %s", cfg.GraphvizOutputPath)))
		return nil
	}

	Ui.Info(colorstring.Color("[bold]graphviz snapshot:[reset]"))
	var dot strings.Builder
	if err := graphviz.WriteDirectedGraph(snap, &dot); err != nil {
		return err
	}
	Ui.Output(dot.String())
	return nil
}
