// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/anylist/cmd/anylist/cli"
	"github.com/bureau-foundation/anylist/lib/binhash"
	"github.com/bureau-foundation/anylist/lib/config"
	"github.com/bureau-foundation/anylist/lib/event"
	"github.com/bureau-foundation/anylist/lib/schema"
)

func configCommand(options Options) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Summary: "Check and compare configuration files",
		Subcommands: []*cli.Command{
			configCheckCommand(options),
			configDiffCommand(options),
		},
	}
}

type configCheckParams struct {
	cli.JSONOutput
	Config string `json:"config" flag:"config,c" desc:"configuration file (default: $ANYLIST_CONFIG)"`
}

// configSummary is the result of a successful check.
type configSummary struct {
	Mode      string         `json:"mode"`
	ServerURL string         `json:"serverUrl"`
	Options   map[string]any `json:"options"`

	// ServerBinary and ServerBinaryDigest are set in binary mode when
	// the server binary resolves to a file.
	ServerBinary       string `json:"serverBinary,omitempty"`
	ServerBinaryDigest string `json:"serverBinaryDigest,omitempty"`
}

func configCheckCommand(options Options) *cli.Command {
	var params configCheckParams
	return &cli.Command{
		Name:    "check",
		Summary: "Validate a configuration file",
		Description: `Load a configuration file and validate it. Exactly one connection
mode must be configured: addon mode (server_addr) or binary mode
(server_binary with email and password). refresh_interval must be
between 15 and 120 minutes.

In binary mode the server binary is resolved (a bare name through PATH)
and its BLAKE3 digest is reported. A binary that cannot be found yet is
a warning, not an error.

Every problem is reported, not only the first. The password is
redacted in the output.`,
		Usage: "anylist config check [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("check", &params)
		},
		Examples: []cli.Example{
			{Description: "Check the file named by ANYLIST_CONFIG", Command: "anylist config check"},
			{Description: "Check a specific file", Command: "anylist config check --config anylist.yaml --json"},
		},
		Run: func(args []string) error {
			if err := requireArgs("config check", args, 0, 0); err != nil {
				return err
			}
			cfg, err := loadConfig(params.Config)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration:\n%w", err)
			}
			options.Logger.Debug("configuration valid", "mode", cfg.Mode(), "refresh", cfg.Refresh())

			summary := configSummary{
				Mode:      string(cfg.Mode()),
				ServerURL: cfg.ServerURL(),
				Options:   cfg.Map(),
			}
			if cfg.Mode() == schema.ModeBinary {
				describeServerBinary(cfg, &summary, options.Logger)
			}
			if done, err := params.EmitJSON(options.Stdout, summary); done {
				return err
			}
			_, err = fmt.Fprintf(options.Stdout, "configuration valid: %s mode, server %s, refresh every %s\n",
				summary.Mode, summary.ServerURL, cfg.Refresh())
			if err == nil && summary.ServerBinary != "" {
				_, err = fmt.Fprintf(options.Stdout, "server binary: %s (blake3 %s)\n",
					summary.ServerBinary, summary.ServerBinaryDigest)
			}
			return err
		},
	}
}

// describeServerBinary resolves and hashes the configured server
// binary into summary. Failures are logged and leave summary unchanged.
func describeServerBinary(cfg *config.Config, summary *configSummary, logger *slog.Logger) {
	path, err := cfg.ServerBinaryPath()
	if err != nil {
		logger.Warn("server binary not found", "error", err)
		return
	}
	digest, err := binhash.HashFile(path)
	if err != nil {
		logger.Warn("server binary not readable", "path", path, "error", err)
		return
	}
	summary.ServerBinary = path
	summary.ServerBinaryDigest = digest.String()
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

type configDiffParams struct {
	Source string `json:"source" flag:"source,s" desc:"event source" default:"config"`
}

func configDiffCommand(options Options) *cli.Command {
	var params configDiffParams
	return &cli.Command{
		Name:    "diff",
		Summary: "Print the config:updated event between two files",
		Description: `Load two configuration files and print the config:updated event that
reloading from OLD to NEW produces: both option maps (password
redacted) and the sorted names of the options that changed. A password
change is reported even though both maps show it redacted.`,
		Usage: "anylist config diff OLD NEW [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("diff", &params)
		},
		Run: func(args []string) error {
			if err := requireArgs("config diff", args, 2, 2); err != nil {
				return err
			}
			previous, err := config.LoadFile(args[0])
			if err != nil {
				return err
			}
			next, err := config.LoadFile(args[1])
			if err != nil {
				return err
			}

			changed := config.ChangedFields(previous, next)
			if len(changed) == 0 {
				options.Logger.Info("configurations are identical", "old", args[0], "new", args[1])
				changed = []string{}
			}
			payload := event.ConfigUpdatedPayload{
				NewConfig:      next.Map(),
				PreviousConfig: previous.Map(),
				ChangedFields:  changed,
			}
			updated, err := event.NewFactory(options.Clock).Create(event.ConfigUpdated, payload, params.Source, nil)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(updated, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(options.Stdout, "%s\n", data)
			return err
		},
	}
}
