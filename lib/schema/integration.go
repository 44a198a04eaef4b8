// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Integration identity and defaults.
const (
	// Domain is the home-automation domain the integration registers
	// under. Services are called as "<Domain>.<service>".
	Domain = "anylist"

	// IntegrationName is the human-readable integration name.
	IntegrationName = "AnyList"

	// IntegrationVersion is the version of the data contract.
	IntegrationVersion = "1.5.9"

	// DefaultServerPort is the port the bundled list server binary
	// listens on in binary mode.
	DefaultServerPort = 28597

	// DefaultRefreshInterval, MinRefreshInterval and
	// MaxRefreshInterval bound how often list contents are polled, in
	// minutes.
	DefaultRefreshInterval = 30
	MinRefreshInterval     = 15
	MaxRefreshInterval     = 120
)

// Attribute names used in service call data and list item payloads.
const (
	AttributeID      = "id"
	AttributeName    = "name"
	AttributeList    = "list"
	AttributeChecked = "checked"
	AttributeNotes   = "notes"

	// AttributeIncludeChecked asks get_items to also return checked
	// items.
	AttributeIncludeChecked = "include_checked"
)

// Configuration keys of the integration's options.
const (
	ConfigServerAddr      = "server_addr"
	ConfigEmail           = "email"
	ConfigPassword        = "password"
	ConfigServerBinary    = "server_binary"
	ConfigDefaultList     = "default_list"
	ConfigRefreshInterval = "refresh_interval"
)

// ConnectionMode is how the integration reaches the list service.
type ConnectionMode string

const (
	// ModeAddon talks to an already-running server at a configured
	// address (typically an add-on container).
	ModeAddon ConnectionMode = "addon"

	// ModeBinary launches the bundled server binary locally with the
	// configured credentials.
	ModeBinary ConnectionMode = "binary"
)
