// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command anylist inspects the data contracts of the AnyList
// home-automation integration. Run "anylist --help" for the commands.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/anylist/cmd/anylist/cli"
	"github.com/bureau-foundation/anylist/cmd/anylist/commands"
)

// debugVariable turns on debug logging when set to any non-empty value.
const debugVariable = "ANYLIST_DEBUG"

func main() {
	if err := run(os.Args[1:]); err != nil {
		// Commands that print their own result (like validate) return
		// an ExitError. Don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	logger := cli.NewCommandLogger(os.Getenv(debugVariable) != "")
	return commands.Root(commands.Options{Logger: logger}).Execute(args)
}
