// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/mitchellh/cli"
)

// commands is the mapping of every demo subcommand, mirroring the teacher's
// own cmd/tofu/commands.go structure (a package-level map of
// cli.CommandFactory, built fresh for each run so commands can close over
// run-specific configuration).
func commands(cfg *config) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"scenario": func() (cli.Command, error) {
			return &scenarioCommand{cfg: cfg}, nil
		},
		"layout": func() (cli.Command, error) {
			return &layoutCommand{cfg: cfg}, nil
		},
	}
}
