// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the module's standard CBOR encoding
// configuration.
//
// The integration contracts are JSON first: list items, recipes, API
// responses and events travel as JSON between the list service, the
// home-automation bridge and the CLI. CBOR is the compact binary form
// of the same values, used when events are digested (lib/event) or
// written to binary sinks. Every type in lib/schema and lib/event
// carries only `json` struct tags; fxamacker/cbor v2 reads `json` tags
// as fallback when `cbor` tags are absent, so one tag controls field
// naming and omitempty for both formats.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes, which is what
// makes event digests stable. Times are encoded as RFC 3339 text with
// nanosecond precision so the CBOR and JSON forms of an event carry
// the same instant.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
package codec
