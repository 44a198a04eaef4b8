// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the AnyList
// integration.
//
// Configuration is loaded from a single file specified by either the
// ANYLIST_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks and no automatic file
// search.
//
// The file holds the integration options: server_addr, email,
// password, server_binary, default_list and refresh_interval.
// ${VAR} and ${VAR:-default} patterns in string values are expanded
// after loading, which keeps credentials out of the file; "$${" is a
// literal "${". No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- the options, with [Config.Validate], [Config.Mode]
//     and [Config.ServerURL]
//   - [Default] -- a Config with the default refresh interval
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Map] and [ChangedFields] -- the configuration snapshots
//     and change lists carried by configuration events
//
// This package depends only on lib/schema for option names and limits.
package config
