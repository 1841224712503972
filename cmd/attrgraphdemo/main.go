// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

// Command attrgraphdemo is the layout/view demo collaborator spec.md §1 and
// §6 describe as an external, out-of-core-scope client of the graph
// engine: it builds a small graph, drives the write/read sequence spec.md's
// scenarios describe, and prints the resulting trace and a Graphviz-language
// snapshot. It is scaffolding around the core engine, not part of it.
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

// Ui is used for all user-facing output, following the teacher's own
// cmd/tofu convention of a package-level cli.Ui rather than threading one
// through every command.
var Ui cli.Ui

func init() {
	Ui = &cli.ColoredUi{
		ErrorColor: cli.UiColorRed,
		WarnColor:  cli.UiColorYellow,
		InfoColor:  cli.UiColorNone,
		Ui: &cli.BasicUi{
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
			Reader:      os.Stdin,
		},
	}
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg, err := loadConfig()
	if err != nil {
		Ui.Error(fmt.Sprintf("failed to load configuration: %s", err))
		return 1
	}

	app := cli.NewCLI("attrgraphdemo", "0.1.0")
	app.Args = os.Args[1:]
	app.Commands = commands(cfg)
	app.HelpFunc = cli.BasicHelpFunc("attrgraphdemo")

	status, err := app.Run()
	if err != nil {
		Ui.Error(fmt.Sprintf("%s", err))
		return 1
	}
	return status
}
