// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package event defines the AnyList integration's event contract: the
// closed set of event names, the payload carried by each, the common
// envelope (timestamp, source, metadata), and the tools that build,
// encode and dispatch events.
//
// Every event is constructed through [Create] or [Factory.Create],
// which stamp the envelope onto a caller-supplied payload. A runtime
// registry maps each [Name] to its payload type and required JSON
// members; construction and decoding both check the payload against
// it and fail with an error wrapping [ErrSchemaMismatch] rather than
// produce a malformed event. Names outside the registry fail with
// [ErrUnknownEvent].
//
// On the wire an event is a single flat object: the payload members
// and the envelope members side by side. [Event.MarshalJSON] and
// [Decode] handle JSON, [Event.MarshalCBOR] and [DecodeCBOR] handle
// the deterministic CBOR form from lib/codec, and [DecodePayload]
// reads hand-authored payload files (JSONC). [Digest] derives a
// stable identifier from the CBOR form.
//
// [Emitter] dispatches events to listeners registered by name.
package event
