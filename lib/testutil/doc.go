// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for the AnyList
// packages.
//
// [WriteFile] writes a fixture file (a YAML configuration, a JSONC
// payload) into a per-test temporary directory and returns its path.
//
// [RequireReceive] encapsulates the timeout safety valve pattern
// (select with time.After fallback) so that tests dispatching events
// across goroutines do not need direct time.After calls.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation. Use it instead of time.Now() when tests need unique
// item IDs, list names or request IDs.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no dependencies on other packages in this module.
package testutil
