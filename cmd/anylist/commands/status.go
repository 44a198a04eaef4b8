// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/anylist/cmd/anylist/cli"
	"github.com/bureau-foundation/anylist/lib/schema"
)

type statusParams struct {
	cli.JSONOutput
	All bool `json:"all" flag:"all" desc:"classify every named status code"`
}

// statusResult is the classification of one status code.
type statusResult struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Known   bool   `json:"known"`
	Success bool   `json:"success"`
	Error   bool   `json:"error"`
}

func classifyStatus(code schema.StatusCode) statusResult {
	return statusResult{
		Code:    int(code),
		Name:    code.String(),
		Known:   code.Known(),
		Success: schema.IsSuccessStatusCode(code),
		Error:   schema.IsErrorStatusCode(code),
	}
}

// class is the one-word classification shown in text output.
func (r statusResult) class() string {
	switch {
	case r.Success:
		return "success"
	case r.Error:
		return "error"
	default:
		return "neither"
	}
}

func statusCommand(options Options) *cli.Command {
	var params statusParams
	return &cli.Command{
		Name:    "status",
		Summary: "Classify list-service status codes",
		Description: `Classify status codes as success (200-299), error (400 and above)
or neither. Any integer is accepted; codes outside the named set are
classified by range and shown by number.`,
		Usage: "anylist status <code>... [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("status", &params)
		},
		Examples: []cli.Example{
			{Description: "Classify two codes", Command: "anylist status 204 409"},
			{Description: "Show every named code as JSON", Command: "anylist status --all --json"},
		},
		Run: func(args []string) error {
			var codes []schema.StatusCode
			if params.All {
				codes = schema.StatusCodes()
			} else if len(args) == 0 {
				return fmt.Errorf("status: expected at least one status code (or --all)")
			}
			for _, arg := range args {
				code, err := strconv.Atoi(strings.TrimSpace(arg))
				if err != nil {
					return fmt.Errorf("status: %q is not an integer status code", arg)
				}
				codes = append(codes, schema.StatusCode(code))
			}

			results := make([]statusResult, len(codes))
			for i, code := range codes {
				results[i] = classifyStatus(code)
			}
			if done, err := params.EmitJSON(options.Stdout, results); done {
				return err
			}

			writer := tabwriter.NewWriter(options.Stdout, 2, 0, 2, ' ', 0)
			for _, result := range results {
				fmt.Fprintf(writer, "%d\t%s\t%s\n", result.Code, result.Name, result.class())
			}
			return writer.Flush()
		},
	}
}
