// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/anylist/cmd/anylist/cli"
	"github.com/bureau-foundation/anylist/lib/event"
	"github.com/bureau-foundation/anylist/lib/intent"
	"github.com/bureau-foundation/anylist/lib/schema"
)

func intentCommand(options Options) *cli.Command {
	return &cli.Command{
		Name:    "intent",
		Summary: "Preview voice-intent handling",
		Description: `Preview how the integration answers voice commands. The intents are
AnylistAddItem and AnylistRemoveItem, which take the item from the
"item" slot, and AnylistGetItems, which reads back the list.`,
		Subcommands: []*cli.Command{
			intentSpeechCommand(options),
			intentRunCommand(options),
		},
	}
}

type intentParams struct {
	Slots []string `json:"slots" flag:"slot" desc:"intent slot as key=value (repeatable)"`
	Items []string `json:"items" flag:"item" desc:"item on the list (repeatable)"`
}

func intentSpeechCommand(options Options) *cli.Command {
	var params intentParams
	return &cli.Command{
		Name:    "speech",
		Summary: "Print the spoken response for an intent",
		Description: `Print the response spoken after an intent succeeds. --item supplies
the list contents read back by AnylistGetItems.`,
		Usage: "anylist intent speech <intent> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("speech", &params)
		},
		Examples: []cli.Example{
			{Command: "anylist intent speech AnylistAddItem --slot item=milk"},
			{Command: "anylist intent speech AnylistGetItems --item milk --item eggs --item bread"},
		},
		Run: func(args []string) error {
			if err := requireArgs("intent speech", args, 1, 1); err != nil {
				return err
			}
			slots, err := cli.ParseKeyValues("slot", params.Slots)
			if err != nil {
				return err
			}
			speech, err := intent.Speech(schema.Intent(args[0]), slots, params.Items)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(options.Stdout, speech)
			return err
		},
	}
}

type intentRunParams struct {
	Slots  []string `json:"slots"  flag:"slot"     desc:"intent slot as key=value (repeatable)"`
	Items  []string `json:"items"  flag:"item"     desc:"item on the list (repeatable)"`
	Source string   `json:"source" flag:"source,s" desc:"event source" default:"intent"`
}

func intentRunCommand(options Options) *cli.Command {
	var params intentRunParams
	return &cli.Command{
		Name:    "run",
		Summary: "Handle an intent against a list and print the intent event",
		Description: `Handle an intent against an in-memory list holding the --item values
and print the resulting intent event. A failed intent (unknown type,
missing slot, item not on the list) is reported in the event with
success false rather than as a command error.`,
		Usage: "anylist intent run <intent> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("run", &params)
		},
		Examples: []cli.Example{
			{Command: "anylist intent run AnylistRemoveItem --slot item=eggs --item milk --item eggs"},
		},
		Run: func(args []string) error {
			if err := requireArgs("intent run", args, 1, 1); err != nil {
				return err
			}
			slots, err := cli.ParseKeyValues("slot", params.Slots)
			if err != nil {
				return err
			}

			list := &memoryList{items: slices.Clone(params.Items)}
			outcome := intent.Handle(context.Background(), list, args[0], slots)
			options.Logger.Debug("handled intent",
				"intent", outcome.IntentType,
				"success", outcome.Success,
				"items", list.items,
			)

			handled, err := event.NewFactory(options.Clock).Create(event.Intent, outcome, params.Source, nil)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(handled, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(options.Stdout, "%s\n", data)
			return err
		},
	}
}

// memoryList is an [intent.List] over a slice of item names. All items
// are unchecked.
type memoryList struct {
	items []string
}

func (l *memoryList) AddItem(_ context.Context, name string) error {
	l.items = append(l.items, name)
	return nil
}

// RemoveItem removes the first item matching name, ignoring case.
func (l *memoryList) RemoveItem(_ context.Context, name string) error {
	index := slices.IndexFunc(l.items, func(item string) bool {
		return strings.EqualFold(item, name)
	})
	if index < 0 {
		return fmt.Errorf("%q is not on the list", name)
	}
	l.items = slices.Delete(l.items, index, index+1)
	return nil
}

func (l *memoryList) UncheckedItems(context.Context) ([]string, error) {
	return slices.Clone(l.items), nil
}
