// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

// Name identifies an event type. The string values, including the colon
// separator, are part of the external contract.
type Name string

const (
	ItemAdded   Name = "item:added"
	ItemUpdated Name = "item:updated"
	ItemRemoved Name = "item:removed"
	ItemChecked Name = "item:checked"

	ListRefreshed Name = "list:refreshed"
	ListsUpdated  Name = "lists:updated"

	RecipeCreated Name = "recipe:created"
	RecipeUpdated Name = "recipe:updated"
	RecipeDeleted Name = "recipe:deleted"

	CollectionCreated Name = "collection:created"
	CollectionUpdated Name = "collection:updated"
	CollectionDeleted Name = "collection:deleted"

	ConnectionEstablished Name = "connection:established"
	ConnectionLost        Name = "connection:lost"
	APIError              Name = "api:error"
	AuthFailed            Name = "auth:failed"

	ConfigUpdated          Name = "config:updated"
	IntegrationInitialized Name = "integration:initialized"
	IntegrationShutdown    Name = "integration:shutdown"

	Intent Name = "intent"
)

// String returns the event name.
func (n Name) String() string { return string(n) }

// Names returns every event name in registry order. The slice is
// freshly allocated.
func Names() []Name {
	names := make([]Name, len(registrations))
	for i, registration := range registrations {
		names[i] = registration.name
	}
	return names
}

// IsValidName reports whether name is exactly one of the event names.
func IsValidName(name string) bool {
	_, ok := registry[Name(name)]
	return ok
}
