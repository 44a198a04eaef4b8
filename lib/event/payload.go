// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/anylist/lib/schema"
)

// Payload is the event-specific part of an event: everything except
// the envelope. Each payload type belongs to exactly one [Name].
type Payload interface {
	// EventName returns the name this payload type is registered under.
	EventName() Name

	// Validate checks that the payload is well formed for its event.
	Validate() error
}

// ItemAddedPayload is the payload of [ItemAdded].
type ItemAddedPayload struct {
	Item     schema.ListItem `json:"item"`
	ListName string          `json:"listName"`
}

func (ItemAddedPayload) EventName() Name { return ItemAdded }

func (p ItemAddedPayload) Validate() error {
	return validateListItem(p.Item, p.ListName)
}

// ItemUpdatedPayload is the payload of [ItemUpdated].
type ItemUpdatedPayload struct {
	Item         schema.ListItem `json:"item"`
	PreviousItem schema.ListItem `json:"previousItem"`
	ListName     string          `json:"listName"`

	// ChangedFields are the JSON names of the item fields that differ
	// (see schema.ChangedListItemFields).
	ChangedFields []string `json:"changedFields"`
}

func (ItemUpdatedPayload) EventName() Name { return ItemUpdated }

func (p ItemUpdatedPayload) Validate() error {
	if err := validateListItem(p.Item, p.ListName); err != nil {
		return err
	}
	if err := p.PreviousItem.Validate(); err != nil {
		return fmt.Errorf("previousItem: %w", err)
	}
	if p.PreviousItem.ID != p.Item.ID {
		return fmt.Errorf("previousItem id %q does not match item id %q", p.PreviousItem.ID, p.Item.ID)
	}
	return nil
}

// ItemRemovedPayload is the payload of [ItemRemoved].
type ItemRemovedPayload struct {
	Item     schema.ListItem `json:"item"`
	ListName string          `json:"listName"`
}

func (ItemRemovedPayload) EventName() Name { return ItemRemoved }

func (p ItemRemovedPayload) Validate() error {
	return validateListItem(p.Item, p.ListName)
}

// ItemCheckedPayload is the payload of [ItemChecked]. It is emitted for
// both checking and unchecking.
type ItemCheckedPayload struct {
	Item            schema.ListItem `json:"item"`
	PreviousChecked bool            `json:"previousChecked"`
	Checked         bool            `json:"checked"`
	ListName        string          `json:"listName"`
}

func (ItemCheckedPayload) EventName() Name { return ItemChecked }

func (p ItemCheckedPayload) Validate() error {
	return validateListItem(p.Item, p.ListName)
}

// ListRefreshedPayload is the payload of [ListRefreshed]. The counts are
// relative to the previous refresh of the same list.
type ListRefreshedPayload struct {
	ListName     string            `json:"listName"`
	Items        []schema.ListItem `json:"items"`
	ItemsAdded   int               `json:"itemsAdded"`
	ItemsUpdated int               `json:"itemsUpdated"`
	ItemsRemoved int               `json:"itemsRemoved"`
}

func (ListRefreshedPayload) EventName() Name { return ListRefreshed }

func (p ListRefreshedPayload) Validate() error {
	if p.ListName == "" {
		return errors.New("listName is required")
	}
	if p.ItemsAdded < 0 || p.ItemsUpdated < 0 || p.ItemsRemoved < 0 {
		return errors.New("item counts must be >= 0")
	}
	for i := range p.Items {
		if err := p.Items[i].Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}

// NewListRefreshedPayload builds a refresh payload from two snapshots of
// the list, counting the delta by item ID.
func NewListRefreshedPayload(listName string, previous, current []schema.ListItem) ListRefreshedPayload {
	delta := schema.CompareLists(previous, current)
	return ListRefreshedPayload{
		ListName:     listName,
		Items:        current,
		ItemsAdded:   len(delta.Added),
		ItemsUpdated: len(delta.Updated),
		ItemsRemoved: len(delta.Removed),
	}
}

// ListsUpdatedPayload is the payload of [ListsUpdated].
type ListsUpdatedPayload struct {
	Lists        []string `json:"lists"`
	NewLists     []string `json:"newLists"`
	RemovedLists []string `json:"removedLists"`
}

func (ListsUpdatedPayload) EventName() Name { return ListsUpdated }

func (p ListsUpdatedPayload) Validate() error {
	for _, name := range p.Lists {
		if name == "" {
			return errors.New("lists: list names must be non-empty")
		}
	}
	return nil
}

// NewListsUpdatedPayload builds a lists:updated payload from two list
// discoveries.
func NewListsUpdatedPayload(previous, current []string) ListsUpdatedPayload {
	added, removed := schema.CompareListNames(previous, current)
	if added == nil {
		added = []string{}
	}
	if removed == nil {
		removed = []string{}
	}
	return ListsUpdatedPayload{Lists: current, NewLists: added, RemovedLists: removed}
}

// RecipeCreatedPayload is the payload of [RecipeCreated].
type RecipeCreatedPayload struct {
	Recipe schema.Recipe `json:"recipe"`
}

func (RecipeCreatedPayload) EventName() Name { return RecipeCreated }

func (p RecipeCreatedPayload) Validate() error { return p.Recipe.Validate() }

// RecipeUpdatedPayload is the payload of [RecipeUpdated].
type RecipeUpdatedPayload struct {
	Recipe         schema.Recipe `json:"recipe"`
	PreviousRecipe schema.Recipe `json:"previousRecipe"`
	ChangedFields  []string      `json:"changedFields"`
}

func (RecipeUpdatedPayload) EventName() Name { return RecipeUpdated }

func (p RecipeUpdatedPayload) Validate() error {
	if err := p.Recipe.Validate(); err != nil {
		return err
	}
	if err := p.PreviousRecipe.Validate(); err != nil {
		return fmt.Errorf("previousRecipe: %w", err)
	}
	return nil
}

// RecipeDeletedPayload is the payload of [RecipeDeleted].
type RecipeDeletedPayload struct {
	Recipe schema.Recipe `json:"recipe"`
}

func (RecipeDeletedPayload) EventName() Name { return RecipeDeleted }

func (p RecipeDeletedPayload) Validate() error { return p.Recipe.Validate() }

// CollectionCreatedPayload is the payload of [CollectionCreated].
type CollectionCreatedPayload struct {
	Collection schema.RecipeCollection `json:"collection"`
}

func (CollectionCreatedPayload) EventName() Name { return CollectionCreated }

func (p CollectionCreatedPayload) Validate() error { return p.Collection.Validate() }

// CollectionUpdatedPayload is the payload of [CollectionUpdated].
type CollectionUpdatedPayload struct {
	Collection         schema.RecipeCollection `json:"collection"`
	PreviousCollection schema.RecipeCollection `json:"previousCollection"`
	ChangedFields      []string                `json:"changedFields"`
}

func (CollectionUpdatedPayload) EventName() Name { return CollectionUpdated }

func (p CollectionUpdatedPayload) Validate() error {
	if err := p.Collection.Validate(); err != nil {
		return err
	}
	if err := p.PreviousCollection.Validate(); err != nil {
		return fmt.Errorf("previousCollection: %w", err)
	}
	return nil
}

// CollectionDeletedPayload is the payload of [CollectionDeleted].
type CollectionDeletedPayload struct {
	Collection schema.RecipeCollection `json:"collection"`
}

func (CollectionDeletedPayload) EventName() Name { return CollectionDeleted }

func (p CollectionDeletedPayload) Validate() error { return p.Collection.Validate() }

// ConnectionEstablishedPayload is the payload of [ConnectionEstablished].
type ConnectionEstablishedPayload struct {
	ServerURL string                `json:"serverUrl"`
	Mode      schema.ConnectionMode `json:"mode"`
}

func (ConnectionEstablishedPayload) EventName() Name { return ConnectionEstablished }

func (p ConnectionEstablishedPayload) Validate() error {
	if p.ServerURL == "" {
		return errors.New("serverUrl is required")
	}
	switch p.Mode {
	case schema.ModeAddon, schema.ModeBinary:
		return nil
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", schema.ModeAddon, schema.ModeBinary, p.Mode)
	}
}

// ConnectionLostPayload is the payload of [ConnectionLost].
type ConnectionLostPayload struct {
	ServerURL     string `json:"serverUrl"`
	Reason        string `json:"reason"`
	WillReconnect bool   `json:"willReconnect"`
}

func (ConnectionLostPayload) EventName() Name { return ConnectionLost }

func (p ConnectionLostPayload) Validate() error {
	if p.ServerURL == "" {
		return errors.New("serverUrl is required")
	}
	if p.Reason == "" {
		return errors.New("reason is required")
	}
	return nil
}

// APIErrorPayload is the payload of [APIError]: a failed list service
// call.
type APIErrorPayload struct {
	Error      schema.APIError   `json:"error"`
	StatusCode schema.StatusCode `json:"statusCode"`

	// Endpoint is the path that failed. Usually one of the schema
	// endpoints, but not restricted to them.
	Endpoint string `json:"endpoint"`

	// Method is the HTTP method of the failed call.
	Method string `json:"method"`
}

func (APIErrorPayload) EventName() Name { return APIError }

func (p APIErrorPayload) Validate() error {
	if p.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	if p.Method == "" {
		return errors.New("method is required")
	}
	return nil
}

// AuthFailedPayload is the payload of [AuthFailed].
type AuthFailedPayload struct {
	Reason   string `json:"reason"`
	CanRetry bool   `json:"canRetry"`
}

func (AuthFailedPayload) EventName() Name { return AuthFailed }

func (p AuthFailedPayload) Validate() error {
	if p.Reason == "" {
		return errors.New("reason is required")
	}
	return nil
}

// ConfigUpdatedPayload is the payload of [ConfigUpdated]. The
// configuration snapshots come from config.Config.Map, which redacts
// secrets.
type ConfigUpdatedPayload struct {
	NewConfig      map[string]any `json:"newConfig"`
	PreviousConfig map[string]any `json:"previousConfig"`
	ChangedFields  []string       `json:"changedFields"`
}

func (ConfigUpdatedPayload) EventName() Name { return ConfigUpdated }

func (p ConfigUpdatedPayload) Validate() error {
	if p.NewConfig == nil {
		return errors.New("newConfig is required")
	}
	if p.PreviousConfig == nil {
		return errors.New("previousConfig is required")
	}
	return nil
}

// IntegrationInitializedPayload is the payload of
// [IntegrationInitialized].
type IntegrationInitializedPayload struct {
	Version string         `json:"version"`
	Config  map[string]any `json:"config"`
}

func (IntegrationInitializedPayload) EventName() Name { return IntegrationInitialized }

func (p IntegrationInitializedPayload) Validate() error {
	if p.Version == "" {
		return errors.New("version is required")
	}
	if p.Config == nil {
		return errors.New("config is required")
	}
	return nil
}

// IntegrationShutdownPayload is the payload of [IntegrationShutdown].
type IntegrationShutdownPayload struct {
	Reason string `json:"reason"`
}

func (IntegrationShutdownPayload) EventName() Name { return IntegrationShutdown }

func (p IntegrationShutdownPayload) Validate() error {
	if p.Reason == "" {
		return errors.New("reason is required")
	}
	return nil
}

// IntentPayload is the payload of [Intent]: the outcome of handling one
// voice command.
type IntentPayload struct {
	IntentType string            `json:"intentType"`
	Slots      map[string]string `json:"slots"`
	Success    bool              `json:"success"`

	// Response is the speech returned to the voice assistant.
	Response string `json:"response"`

	// Error describes the failure when Success is false.
	Error string `json:"error,omitempty"`
}

func (IntentPayload) EventName() Name { return Intent }

func (p IntentPayload) Validate() error {
	if p.IntentType == "" {
		return errors.New("intentType is required")
	}
	if p.Success && p.Error != "" {
		return errors.New("error must be empty when success is true")
	}
	return nil
}

func validateListItem(item schema.ListItem, listName string) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("item: %w", err)
	}
	if listName == "" {
		return errors.New("listName is required")
	}
	return nil
}
