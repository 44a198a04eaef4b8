// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the anylist CLI command tree: inspection
// tools for the integration's data contracts (status codes, names,
// events, configuration and intent responses).
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/anylist/cmd/anylist/cli"
	"github.com/bureau-foundation/anylist/lib/clock"
	"github.com/bureau-foundation/anylist/lib/schema"
	"github.com/bureau-foundation/anylist/lib/version"
)

// Options supplies the streams, logger and clock the commands use.
// Zero fields fall back to the process streams, a discarding logger and
// the wall clock.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Clock  clock.Clock
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Clock == nil {
		o.Clock = clock.Real()
	}
	return o
}

// Root builds the complete anylist command tree.
func Root(options Options) *cli.Command {
	options = options.withDefaults()
	return &cli.Command{
		Name:       "anylist",
		HelpOutput: options.Stderr,
		Description: `anylist: contracts of the AnyList home-automation integration.

Classify list-service status codes, check service, intent and endpoint
names, build and inspect integration events, validate configuration
files and preview voice-intent responses.`,
		Subcommands: []*cli.Command{
			statusCommand(options),
			validateCommand(options),
			namesCommand(options),
			eventCommand(options),
			configCommand(options),
			intentCommand(options),
			versionCommand(options),
		},
		Examples: []cli.Example{
			{
				Description: "Classify status codes",
				Command:     "anylist status 200 404 503",
			},
			{
				Description: "Build an item:added event from a payload file",
				Command:     "anylist event create item:added --payload milk.json",
			},
			{
				Description: "Check a configuration file",
				Command:     "anylist config check --config anylist.yaml",
			},
			{
				Description: "Preview the spoken response to a voice command",
				Command:     "anylist intent speech AnylistAddItem --slot item=milk",
			},
		},
	}
}

type versionParams struct {
	Full bool `json:"full" flag:"full" desc:"include the Go version and platform"`
}

func versionCommand(options Options) *cli.Command {
	var params versionParams
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if err := requireArgs("version", args, 0, 0); err != nil {
				return err
			}
			info := version.Info()
			if params.Full {
				info = version.Full()
			}
			_, err := fmt.Fprintf(options.Stdout, "%s %s\n", schema.Domain, info)
			return err
		},
	}
}

// requireArgs returns an error unless args has between minimum and
// maximum entries. A negative maximum means no upper bound.
func requireArgs(command string, args []string, minimum, maximum int) error {
	switch {
	case len(args) < minimum:
		return fmt.Errorf("%s: expected at least %d argument(s), got %d", command, minimum, len(args))
	case maximum >= 0 && len(args) > maximum:
		return fmt.Errorf("%s: unexpected argument %q", command, args[maximum])
	}
	return nil
}
