// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/anylist/cmd/anylist/cli"
	"github.com/bureau-foundation/anylist/lib/clock"
	"github.com/bureau-foundation/anylist/lib/codec"
	"github.com/bureau-foundation/anylist/lib/event"
)

// Output formats for event encodings.
const (
	formatJSON = "json"
	formatCBOR = "cbor"
)

func eventCommand(options Options) *cli.Command {
	return &cli.Command{
		Name:    "event",
		Summary: "Build, decode and describe integration events",
		Description: `Work with integration events. An event is a flat object holding the
payload members plus the envelope: timestamp, source and, when set,
metadata. The event name is not part of the encoding; every
subcommand takes it as the first argument.`,
		Subcommands: []*cli.Command{
			eventCreateCommand(options),
			eventDecodeCommand(options),
			eventDescribeCommand(options),
		},
	}
}

type eventCreateParams struct {
	Payload   string   `json:"payload"   flag:"payload,p" desc:"payload file, JSON with comments allowed (default: stdin)"`
	Source    string   `json:"source"    flag:"source,s"  desc:"event source (default \"system\")"`
	Metadata  []string `json:"metadata"  flag:"metadata"  desc:"metadata entry as key=value (repeatable)"`
	Timestamp string   `json:"timestamp" flag:"timestamp" desc:"fixed RFC 3339 timestamp instead of the current time"`
	Format    string   `json:"format"    flag:"format,f"  desc:"encoding: json or cbor (diagnostic notation)" default:"json"`
	Output    string   `json:"output"    flag:"output,o"  desc:"also write the raw encoding to this file"`
	Digest    bool     `json:"digest"    flag:"digest"    desc:"print the event digest instead of the event"`
}

func eventCreateCommand(options Options) *cli.Command {
	var params eventCreateParams
	return &cli.Command{
		Name:    "create",
		Summary: "Build an event from a payload document",
		Description: `Read a payload document, check it against the schema registered for
the event name, stamp the envelope and print the encoded event.

The payload must carry every required member of the event (see
"anylist event describe") and pass the payload's own validation.
Envelope members in the document are ignored.

With --digest, the keyed BLAKE3 digest of the event is printed
instead. Two events share a digest exactly when their name, payload and
envelope are equal; pin --timestamp to get a reproducible digest.`,
		Usage: "anylist event create <name> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Build an item:added event",
				Command:     `echo '{"item": {"id": "1", "name": "Milk"}, "listName": "Groceries"}' | anylist event create item:added`,
			},
			{
				Description: "Show the CBOR encoding with a fixed timestamp",
				Command:     "anylist event create integration:shutdown --payload reason.json --timestamp 2026-01-02T03:04:05Z --format cbor",
			},
			{
				Description: "Attach metadata",
				Command:     "anylist event create item:removed -p removed.json --source user --metadata origin=voice",
			},
		},
		Run: func(args []string) error {
			if err := requireArgs("event create", args, 1, 1); err != nil {
				return err
			}
			name := event.Name(args[0])
			if params.Format != formatJSON && params.Format != formatCBOR {
				return fmt.Errorf("--format %q: expected %s or %s", params.Format, formatJSON, formatCBOR)
			}

			metadata, err := metadataFlag(params.Metadata)
			if err != nil {
				return err
			}
			factoryClock := options.Clock
			if params.Timestamp != "" {
				timestamp, err := time.Parse(time.RFC3339Nano, params.Timestamp)
				if err != nil {
					return fmt.Errorf("--timestamp: %w", err)
				}
				factoryClock = clock.Fake(timestamp)
			}

			data, err := readDocument(params.Payload, options.Stdin)
			if err != nil {
				return err
			}
			payload, err := event.DecodePayload(name, data)
			if err != nil {
				return err
			}
			created, err := event.NewFactory(factoryClock).Create(name, payload, params.Source, metadata)
			if err != nil {
				return err
			}
			options.Logger.Debug("created event",
				"event", created.Name,
				"source", created.Source,
				"timestamp", created.Timestamp,
			)

			if params.Output != "" {
				if err := writeEncoding(params.Output, created, params.Format); err != nil {
					return err
				}
			}
			if params.Digest {
				return printDigest(options.Stdout, created)
			}
			return printEvent(options.Stdout, created, params.Format)
		},
	}
}

type eventDecodeParams struct {
	Format string `json:"format" flag:"format,f" desc:"input encoding: json or cbor" default:"json"`
	Digest bool   `json:"digest" flag:"digest"   desc:"print the event digest instead of the event"`
}

func eventDecodeCommand(options Options) *cli.Command {
	var params eventDecodeParams
	return &cli.Command{
		Name:    "decode",
		Summary: "Check an encoded event and print it as JSON",
		Description: `Read an encoded event (JSON, or raw CBOR with --format cbor) from a
file or stdin, check that it carries the envelope and every required
payload member for the named event, and print it as JSON.`,
		Usage: "anylist event decode <name> [FILE] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &params)
		},
		Examples: []cli.Example{
			{Description: "Check a stored event", Command: "anylist event decode item:added event.json"},
			{Description: "Decode a CBOR event", Command: "anylist event decode intent --format cbor event.cbor"},
		},
		Run: func(args []string) error {
			if err := requireArgs("event decode", args, 1, 2); err != nil {
				return err
			}
			name := event.Name(args[0])
			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			data, err := readDocument(path, options.Stdin)
			if err != nil {
				return err
			}

			var decoded event.Event
			switch params.Format {
			case formatJSON:
				decoded, err = event.Decode(name, data)
			case formatCBOR:
				decoded, err = event.DecodeCBOR(name, data)
			default:
				return fmt.Errorf("--format %q: expected %s or %s", params.Format, formatJSON, formatCBOR)
			}
			if err != nil {
				return err
			}

			if params.Digest {
				return printDigest(options.Stdout, decoded)
			}
			return printEvent(options.Stdout, decoded, formatJSON)
		},
	}
}

// eventDescription is the registry entry for one event name.
type eventDescription struct {
	Name           string   `json:"name"`
	PayloadType    string   `json:"payloadType"`
	RequiredFields []string `json:"requiredFields"`
	Envelope       []string `json:"envelope"`
}

type eventDescribeParams struct {
	cli.JSONOutput
}

func eventDescribeCommand(options Options) *cli.Command {
	var params eventDescribeParams
	return &cli.Command{
		Name:    "describe",
		Summary: "Show the payload schema registered for an event",
		Usage:   "anylist event describe <name> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("describe", &params)
		},
		Run: func(args []string) error {
			if err := requireArgs("event describe", args, 1, 1); err != nil {
				return err
			}
			name := event.Name(args[0])
			required, err := event.RequiredFields(name)
			if err != nil {
				if suggestion := cli.Closest(args[0], stringsOf(event.Names())); suggestion != "" {
					return fmt.Errorf("%w (did you mean %q?)", err, suggestion)
				}
				return err
			}
			payloadType, err := event.PayloadType(name)
			if err != nil {
				return err
			}

			description := eventDescription{
				Name:           string(name),
				PayloadType:    payloadType.String(),
				RequiredFields: required,
				Envelope:       []string{"timestamp", "source", "metadata (optional)"},
			}
			if done, err := params.EmitJSON(options.Stdout, description); done {
				return err
			}
			fmt.Fprintf(options.Stdout, "event:    %s\n", description.Name)
			fmt.Fprintf(options.Stdout, "payload:  %s\n", description.PayloadType)
			fmt.Fprintf(options.Stdout, "required:\n")
			for _, field := range description.RequiredFields {
				fmt.Fprintf(options.Stdout, "  %s\n", field)
			}
			_, err = fmt.Fprintf(options.Stdout, "envelope: timestamp, source, metadata (optional)\n")
			return err
		},
	}
}

// metadataFlag converts repeated --metadata key=value entries to an
// event metadata map. No entries gives nil metadata, which is omitted
// from the encoding.
func metadataFlag(values []string) (map[string]any, error) {
	entries, err := cli.ParseKeyValues("metadata", values)
	if err != nil || entries == nil {
		return nil, err
	}
	metadata := make(map[string]any, len(entries))
	for key, value := range entries {
		metadata[key] = value
	}
	return metadata, nil
}

// readDocument reads path, or stdin when path is empty or "-".
func readDocument(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("empty input: expected a document on stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func encodeEvent(e event.Event, format string) ([]byte, error) {
	if format == formatCBOR {
		return e.MarshalCBOR()
	}
	return json.MarshalIndent(e, "", "  ")
}

// printEvent writes indented JSON, or CBOR diagnostic notation so the
// binary encoding stays readable in a terminal.
func printEvent(w io.Writer, e event.Event, format string) error {
	data, err := encodeEvent(e, format)
	if err != nil {
		return err
	}
	if format == formatCBOR {
		notation, err := codec.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnose CBOR: %w", err)
		}
		data = []byte(notation)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeEncoding(path string, e event.Event, format string) error {
	data, err := encodeEvent(e, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func printDigest(w io.Writer, e event.Event) error {
	digest, err := event.Digest(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, digest)
	return err
}
