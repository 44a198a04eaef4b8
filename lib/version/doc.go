// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the anylist
// binary.
//
// The version number is the integration version. Build details are
// injected at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/anylist/lib/version.GitCommit=$(git rev-parse --short HEAD)"
package version
