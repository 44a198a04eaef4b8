// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Service is the name of a home-automation service the integration
// registers under its domain (called as "anylist.add_item").
type Service string

const (
	ServiceAddItem     Service = "add_item"
	ServiceRemoveItem  Service = "remove_item"
	ServiceCheckItem   Service = "check_item"
	ServiceUncheckItem Service = "uncheck_item"
	ServiceGetItems    Service = "get_items"
	ServiceGetAllItems Service = "get_all_items"
)

// String returns the service name.
func (s Service) String() string { return string(s) }

// Intent is the type name of a voice-command intent handled by the
// integration.
type Intent string

const (
	IntentAddItem    Intent = "AnylistAddItem"
	IntentRemoveItem Intent = "AnylistRemoveItem"
	IntentGetItems   Intent = "AnylistGetItems"
)

// String returns the intent type name.
func (i Intent) String() string { return string(i) }

// Endpoint is a path segment of the list service API. Request URLs are
// "<server address>/<endpoint>".
type Endpoint string

const (
	EndpointAdd         Endpoint = "add"
	EndpointRemove      Endpoint = "remove"
	EndpointUpdate      Endpoint = "update"
	EndpointCheck       Endpoint = "check"
	EndpointItems       Endpoint = "items"
	EndpointLists       Endpoint = "lists"
	EndpointRecipes     Endpoint = "recipes"
	EndpointCollections Endpoint = "collections"
)

// String returns the endpoint path segment.
func (e Endpoint) String() string { return string(e) }

// Services returns the closed set of service names. The slice is
// freshly allocated; callers may modify it.
func Services() []Service {
	return []Service{
		ServiceAddItem, ServiceRemoveItem, ServiceCheckItem,
		ServiceUncheckItem, ServiceGetItems, ServiceGetAllItems,
	}
}

// Intents returns the closed set of intent type names.
func Intents() []Intent {
	return []Intent{IntentAddItem, IntentRemoveItem, IntentGetItems}
}

// Endpoints returns the closed set of endpoint names.
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointAdd, EndpointRemove, EndpointUpdate, EndpointCheck,
		EndpointItems, EndpointLists, EndpointRecipes, EndpointCollections,
	}
}

// IsValidService reports whether name is exactly one of the service
// names. Matching is case-sensitive and nothing is trimmed: "ADD_ITEM"
// and " add_item" are not services.
func IsValidService(name string) bool {
	return member(Services(), name)
}

// IsValidIntent reports whether name is exactly one of the intent type
// names.
func IsValidIntent(name string) bool {
	return member(Intents(), name)
}

// IsValidEndpoint reports whether name is exactly one of the endpoint
// names.
func IsValidEndpoint(name string) bool {
	return member(Endpoints(), name)
}

func member[T ~string](set []T, name string) bool {
	for _, value := range set {
		if string(value) == name {
			return true
		}
	}
	return false
}
