// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/bureau-foundation/anylist/lib/codec"
)

// ErrUnknownEvent is returned for an event name outside the registry.
var ErrUnknownEvent = errors.New("unknown event")

// ErrSchemaMismatch is returned when a payload does not have the shape
// registered for its event name: wrong payload type, missing required
// members, or a payload that fails its own validation.
var ErrSchemaMismatch = errors.New("payload does not match event schema")

// Envelope member names. Payload types never declare these members.
const (
	fieldTimestamp = "timestamp"
	fieldSource    = "source"
	fieldMetadata  = "metadata"
)

// registration binds an event name to its payload type.
type registration struct {
	name        Name
	payloadType reflect.Type

	// required lists the JSON members every encoded payload must
	// carry: the fields whose json tag lacks omitempty.
	required []string

	decodeJSON func([]byte) (Payload, error)
	decodeCBOR func([]byte) (Payload, error)
}

func register[P Payload]() registration {
	var zero P
	payloadType := reflect.TypeFor[P]()
	return registration{
		name:        zero.EventName(),
		payloadType: payloadType,
		required:    requiredFields(payloadType),
		decodeJSON: func(data []byte) (Payload, error) {
			var payload P
			err := json.Unmarshal(data, &payload)
			return payload, err
		},
		decodeCBOR: func(data []byte) (Payload, error) {
			var payload P
			err := codec.Unmarshal(data, &payload)
			return payload, err
		},
	}
}

// registrations is the ordered tag-to-schema table. Every Name constant
// appears exactly once.
var registrations = []registration{
	register[ItemAddedPayload](),
	register[ItemUpdatedPayload](),
	register[ItemRemovedPayload](),
	register[ItemCheckedPayload](),
	register[ListRefreshedPayload](),
	register[ListsUpdatedPayload](),
	register[RecipeCreatedPayload](),
	register[RecipeUpdatedPayload](),
	register[RecipeDeletedPayload](),
	register[CollectionCreatedPayload](),
	register[CollectionUpdatedPayload](),
	register[CollectionDeletedPayload](),
	register[ConnectionEstablishedPayload](),
	register[ConnectionLostPayload](),
	register[APIErrorPayload](),
	register[AuthFailedPayload](),
	register[ConfigUpdatedPayload](),
	register[IntegrationInitializedPayload](),
	register[IntegrationShutdownPayload](),
	register[IntentPayload](),
}

var registry = indexRegistrations(registrations)

func indexRegistrations(list []registration) map[Name]registration {
	index := make(map[Name]registration, len(list))
	for _, entry := range list {
		if _, duplicate := index[entry.name]; duplicate {
			panic("event: duplicate registration for " + string(entry.name))
		}
		index[entry.name] = entry
	}
	return index
}

// requiredFields returns the JSON names of the struct fields whose json
// tag does not carry omitempty, in declaration order.
func requiredFields(structType reflect.Type) []string {
	var required []string
	for i := range structType.NumField() {
		tag := structType.Field(i).Tag.Get("json")
		name, options, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		if hasOption(options, "omitempty") || hasOption(options, "omitzero") {
			continue
		}
		required = append(required, name)
	}
	return required
}

func hasOption(options, option string) bool {
	for options != "" {
		var current string
		current, options, _ = strings.Cut(options, ",")
		if current == option {
			return true
		}
	}
	return false
}

func lookup(name Name) (registration, error) {
	entry, ok := registry[name]
	if !ok {
		return registration{}, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
	}
	return entry, nil
}

// RequiredFields returns the JSON members a payload of the named event
// must carry.
func RequiredFields(name Name) ([]string, error) {
	entry, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), entry.required...), nil
}

// PayloadType returns the Go type registered for the named event.
func PayloadType(name Name) (reflect.Type, error) {
	entry, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return entry.payloadType, nil
}

// checkPayload verifies that payload is the registered type for name,
// dereferencing a pointer to it, and that it validates. It returns the
// payload as a value.
func checkPayload(entry registration, payload Payload) (Payload, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: %s: payload is nil", ErrSchemaMismatch, entry.name)
	}
	value := reflect.ValueOf(payload)
	if value.Kind() == reflect.Pointer && value.Type().Elem() == entry.payloadType {
		if value.IsNil() {
			return nil, fmt.Errorf("%w: %s: payload is nil", ErrSchemaMismatch, entry.name)
		}
		payload = value.Elem().Interface().(Payload)
	}
	if reflect.TypeOf(payload) != entry.payloadType {
		return nil, fmt.Errorf("%w: %s expects %s, got %T", ErrSchemaMismatch, entry.name, entry.payloadType, payload)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSchemaMismatch, entry.name, err)
	}
	return payload, nil
}

// missingMembers returns the names in required that are absent from
// members.
func missingMembers[V any](members map[string]V, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, present := members[name]; !present {
			missing = append(missing, name)
		}
	}
	return missing
}
