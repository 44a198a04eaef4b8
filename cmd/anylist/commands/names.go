// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/anylist/cmd/anylist/cli"
	"github.com/bureau-foundation/anylist/lib/event"
	"github.com/bureau-foundation/anylist/lib/schema"
)

// nameSet is one closed set of names the integration recognizes.
type nameSet struct {
	kind    string
	summary string
	values  func() []string
	valid   func(string) bool
}

var nameSets = []nameSet{
	{
		kind:    "service",
		summary: "home-automation service names",
		values:  func() []string { return stringsOf(schema.Services()) },
		valid:   schema.IsValidService,
	},
	{
		kind:    "intent",
		summary: "voice-command intent types",
		values:  func() []string { return stringsOf(schema.Intents()) },
		valid:   schema.IsValidIntent,
	},
	{
		kind:    "endpoint",
		summary: "list-service API endpoints",
		values:  func() []string { return stringsOf(schema.Endpoints()) },
		valid:   schema.IsValidEndpoint,
	},
	{
		kind:    "event",
		summary: "integration event names",
		values:  func() []string { return stringsOf(event.Names()) },
		valid:   event.IsValidName,
	},
}

func stringsOf[T ~string](values []T) []string {
	converted := make([]string, len(values))
	for i, value := range values {
		converted[i] = string(value)
	}
	return converted
}

func findNameSet(kind string) (nameSet, error) {
	kinds := make([]string, len(nameSets))
	for i, set := range nameSets {
		if set.kind == kind {
			return set, nil
		}
		kinds[i] = set.kind
	}
	if suggestion := cli.Closest(kind, kinds); suggestion != "" {
		return nameSet{}, fmt.Errorf("unknown name kind %q (did you mean %q?)", kind, suggestion)
	}
	return nameSet{}, fmt.Errorf("unknown name kind %q (expected one of %s)", kind, strings.Join(kinds, ", "))
}

type namesParams struct {
	cli.JSONOutput
}

func namesCommand(options Options) *cli.Command {
	var params namesParams
	return &cli.Command{
		Name:    "names",
		Summary: "List service, intent, endpoint and event names",
		Description: `List the closed sets of names the integration recognizes. With a kind
argument, only that set is listed, one name per line. Without one,
every set is listed as "kind<TAB>name".`,
		Usage: "anylist names [service|intent|endpoint|event] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("names", &params)
		},
		Examples: []cli.Example{
			{Description: "List the voice intents", Command: "anylist names intent"},
			{Description: "Every set as a JSON object", Command: "anylist names --json"},
		},
		Run: func(args []string) error {
			if err := requireArgs("names", args, 0, 1); err != nil {
				return err
			}

			if len(args) == 1 {
				set, err := findNameSet(args[0])
				if err != nil {
					return err
				}
				values := set.values()
				if done, err := params.EmitJSON(options.Stdout, values); done {
					return err
				}
				_, err = fmt.Fprintln(options.Stdout, strings.Join(values, "\n"))
				return err
			}

			all := make(map[string][]string, len(nameSets))
			for _, set := range nameSets {
				all[set.kind] = set.values()
			}
			if done, err := params.EmitJSON(options.Stdout, all); done {
				return err
			}
			for _, set := range nameSets {
				for _, value := range all[set.kind] {
					if _, err := fmt.Fprintf(options.Stdout, "%s\t%s\n", set.kind, value); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
