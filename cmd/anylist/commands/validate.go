// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/anylist/cmd/anylist/cli"
)

func validateCommand(options Options) *cli.Command {
	command := &cli.Command{
		Name:    "validate",
		Summary: "Check a name against a closed set",
		Description: `Check whether a value is exactly one of the recognized service,
intent, endpoint or event names. Matching is case-sensitive with no
trimming. Exits 0 for a recognized name and 1 otherwise.`,
		Examples: []cli.Example{
			{Description: "Check a service name", Command: "anylist validate service add_item"},
			{Description: "Case matters", Command: "anylist validate intent anylistadditem  # exits 1"},
		},
	}
	for _, set := range nameSets {
		command.Subcommands = append(command.Subcommands, validateNameCommand(options, set))
	}
	return command
}

func validateNameCommand(options Options, set nameSet) *cli.Command {
	return &cli.Command{
		Name:    set.kind,
		Summary: "Check " + set.summary,
		Usage:   fmt.Sprintf("anylist validate %s <value>", set.kind),
		Run: func(args []string) error {
			if err := requireArgs("validate "+set.kind, args, 1, 1); err != nil {
				return err
			}
			value := args[0]
			if set.valid(value) {
				_, err := fmt.Fprintf(options.Stdout, "%q is a valid %s\n", value, set.kind)
				return err
			}

			message := fmt.Sprintf("%q is not a valid %s", value, set.kind)
			if suggestion := cli.Closest(value, set.values()); suggestion != "" {
				message += fmt.Sprintf(" (did you mean %q?)", suggestion)
			}
			if _, err := fmt.Fprintln(options.Stdout, message); err != nil {
				return err
			}
			return &cli.ExitError{Code: 1}
		},
	}
}
