// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"fmt"
	"time"

	"github.com/bureau-foundation/anylist/lib/clock"
)

// DefaultSource is the source stamped on events whose creator does not
// name one. An empty source argument counts as not naming one, so an
// event never carries an empty source.
const DefaultSource = "system"

// Envelope holds the members common to every event.
type Envelope struct {
	// Timestamp is when the event was created.
	Timestamp time.Time `json:"timestamp"`

	// Source names the originator (e.g., "api", "user", "system").
	Source string `json:"source"`

	// Metadata is optional free-form context. Nil when the creator
	// supplied none, and then absent from the encoded event.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Event is a fully formed event: its name, its payload and the
// envelope. The payload's dynamic type is always the one registered
// for Name.
type Event struct {
	Name    Name
	Payload Payload
	Envelope
}

// Factory creates events stamped with the time from its clock.
type Factory struct {
	clock clock.Clock
}

// NewFactory returns a Factory that reads time from c.
func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

var defaultFactory = NewFactory(clock.Real())

// Create builds an event using the wall clock. See [Factory.Create].
func Create(name Name, payload Payload, source string, metadata map[string]any) (Event, error) {
	return defaultFactory.Create(name, payload, source, metadata)
}

// Create builds the named event around payload. An empty source becomes
// [DefaultSource]; a nil metadata map stays nil. The clock is read once.
//
// The payload must be the type registered for name (or a pointer to
// it) and must pass its Validate method, otherwise the returned error
// wraps [ErrSchemaMismatch]. An unregistered name wraps
// [ErrUnknownEvent]. The caller's payload is never modified. A
// pointer payload is copied into the event by value, but the copy is
// shallow: slices and maps inside it, and the metadata map, are
// shared with the caller.
func (f *Factory) Create(name Name, payload Payload, source string, metadata map[string]any) (Event, error) {
	entry, err := lookup(name)
	if err != nil {
		return Event{}, fmt.Errorf("creating event: %w", err)
	}
	payload, err = checkPayload(entry, payload)
	if err != nil {
		return Event{}, fmt.Errorf("creating event: %w", err)
	}
	if source == "" {
		source = DefaultSource
	}
	return Event{
		Name:    name,
		Payload: payload,
		Envelope: Envelope{
			Timestamp: f.clock.Now(),
			Source:    source,
			Metadata:  metadata,
		},
	}, nil
}

// New builds an event from a typed payload, taking the name from the
// payload type itself.
func New[P Payload](f *Factory, payload P, source string, metadata map[string]any) (Event, error) {
	return f.Create(payload.EventName(), payload, source, metadata)
}

// PayloadAs returns the event's payload as P. The boolean is false
// when the payload has a different type.
func PayloadAs[P Payload](e Event) (P, bool) {
	payload, ok := e.Payload.(P)
	return payload, ok
}
