// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/tidwall/jsonc"
)

// MarshalJSON encodes the event as one flat object holding the payload
// members and the envelope members. The event name is not part of the
// object; consumers know it from the channel the event arrived on.
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Payload == nil {
		return nil, fmt.Errorf("encoding %s event: payload is nil", e.Name)
	}
	members, err := jsonMembers(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", e.Name, err)
	}
	envelope, err := jsonMembers(e.Envelope)
	if err != nil {
		return nil, fmt.Errorf("encoding %s envelope: %w", e.Name, err)
	}
	maps.Copy(members, envelope)
	return json.Marshal(members)
}

func jsonMembers(value any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Decode parses a flat JSON event object produced by
// [Event.MarshalJSON]. Every required payload member and the timestamp
// and source members must be present, and the payload must validate;
// otherwise the error wraps [ErrSchemaMismatch].
func Decode(name Name, data []byte) (Event, error) {
	entry, err := lookup(name)
	if err != nil {
		return Event{}, fmt.Errorf("decoding event: %w", err)
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return Event{}, fmt.Errorf("%w: decoding %s event: %w", ErrSchemaMismatch, name, err)
	}
	required := slices.Concat(entry.required, []string{fieldTimestamp, fieldSource})
	if missing := missingMembers(members, required); len(missing) > 0 {
		return Event{}, fmt.Errorf("%w: %s event is missing %v", ErrSchemaMismatch, name, missing)
	}

	payload, err := entry.decodeJSON(data)
	if err != nil {
		return Event{}, fmt.Errorf("%w: decoding %s payload: %w", ErrSchemaMismatch, name, err)
	}
	payload, err = checkPayload(entry, payload)
	if err != nil {
		return Event{}, fmt.Errorf("decoding event: %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Event{}, fmt.Errorf("%w: decoding %s envelope: %w", ErrSchemaMismatch, name, err)
	}
	return Event{Name: name, Payload: payload, Envelope: envelope}, nil
}

// DecodePayload parses a hand-authored payload document for the named
// event. The document is JSONC: comments and trailing commas are
// allowed. Envelope members in the document are ignored; the envelope
// is stamped by [Factory.Create].
func DecodePayload(name Name, data []byte) (Payload, error) {
	entry, err := lookup(name)
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	data = jsonc.ToJSON(data)
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("%w: decoding %s payload: %w", ErrSchemaMismatch, name, err)
	}
	if missing := missingMembers(members, entry.required); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s payload is missing %v", ErrSchemaMismatch, name, missing)
	}

	payload, err := entry.decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s payload: %w", ErrSchemaMismatch, name, err)
	}
	payload, err = checkPayload(entry, payload)
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return payload, nil
}
