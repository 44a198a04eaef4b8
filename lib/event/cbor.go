// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bureau-foundation/anylist/lib/codec"
)

// MarshalCBOR encodes the event as a flat CBOR map with the same
// members as [Event.MarshalJSON], using Core Deterministic Encoding:
// equal events always produce identical bytes.
func (e Event) MarshalCBOR() ([]byte, error) {
	if e.Payload == nil {
		return nil, fmt.Errorf("encoding %s event: payload is nil", e.Name)
	}
	members, err := cborMembers(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", e.Name, err)
	}
	envelope, err := cborMembers(e.Envelope)
	if err != nil {
		return nil, fmt.Errorf("encoding %s envelope: %w", e.Name, err)
	}
	maps.Copy(members, envelope)
	return codec.Marshal(members)
}

func cborMembers(value any) (map[string]codec.RawMessage, error) {
	data, err := codec.Marshal(value)
	if err != nil {
		return nil, err
	}
	var members map[string]codec.RawMessage
	if err := codec.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// DecodeCBOR parses a CBOR event map produced by [Event.MarshalCBOR],
// with the same checks as [Decode].
func DecodeCBOR(name Name, data []byte) (Event, error) {
	entry, err := lookup(name)
	if err != nil {
		return Event{}, fmt.Errorf("decoding event: %w", err)
	}

	var members map[string]codec.RawMessage
	if err := codec.Unmarshal(data, &members); err != nil {
		return Event{}, fmt.Errorf("%w: decoding %s event: %w", ErrSchemaMismatch, name, err)
	}
	required := slices.Concat(entry.required, []string{fieldTimestamp, fieldSource})
	if missing := missingMembers(members, required); len(missing) > 0 {
		return Event{}, fmt.Errorf("%w: %s event is missing %v", ErrSchemaMismatch, name, missing)
	}

	payload, err := entry.decodeCBOR(data)
	if err != nil {
		return Event{}, fmt.Errorf("%w: decoding %s payload: %w", ErrSchemaMismatch, name, err)
	}
	payload, err = checkPayload(entry, payload)
	if err != nil {
		return Event{}, fmt.Errorf("decoding event: %w", err)
	}

	var envelope Envelope
	if err := codec.Unmarshal(data, &envelope); err != nil {
		return Event{}, fmt.Errorf("%w: decoding %s envelope: %w", ErrSchemaMismatch, name, err)
	}
	return Event{Name: name, Payload: payload, Envelope: envelope}, nil
}
