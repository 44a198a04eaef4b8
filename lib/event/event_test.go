// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bureau-foundation/anylist/lib/clock"
	"github.com/bureau-foundation/anylist/lib/schema"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func milk() schema.ListItem {
	return schema.ListItem{ID: "item-1", Name: "Milk"}
}

func TestCreateItemAdded(t *testing.T) {
	fake := clock.Fake(epoch)
	factory := NewFactory(fake)

	payload := ItemAddedPayload{Item: milk(), ListName: "Groceries"}
	event, err := factory.Create(ItemAdded, payload, "integration", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if event.Name != ItemAdded {
		t.Errorf("Name = %q, want %q", event.Name, ItemAdded)
	}
	if event.Source != "integration" {
		t.Errorf("Source = %q, want integration", event.Source)
	}
	if event.Metadata != nil {
		t.Errorf("Metadata = %v, want nil", event.Metadata)
	}
	if !event.Timestamp.Equal(epoch) {
		t.Errorf("Timestamp = %v, want %v", event.Timestamp, epoch)
	}
	got, ok := PayloadAs[ItemAddedPayload](event)
	if !ok {
		t.Fatalf("payload has type %T", event.Payload)
	}
	if !reflect.DeepEqual(got, payload) {
		t.Errorf("payload = %+v, want %+v", got, payload)
	}
	if reads := fake.Reads(); reads != 1 {
		t.Errorf("clock read %d times, want exactly 1", reads)
	}
}

func TestCreateDefaultsSource(t *testing.T) {
	event, err := Create(IntegrationShutdown, IntegrationShutdownPayload{Reason: "stopping"}, "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if event.Source != DefaultSource {
		t.Errorf("Source = %q, want %q", event.Source, DefaultSource)
	}
	if DefaultSource != "system" {
		t.Errorf("DefaultSource = %q, want system", DefaultSource)
	}
}

func TestCreateKeepsMetadata(t *testing.T) {
	metadata := map[string]any{"requestId": "r-1", "attempt": 2}
	event, err := Create(AuthFailed, AuthFailedPayload{Reason: "bad password"}, "api", metadata)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !reflect.DeepEqual(event.Metadata, metadata) {
		t.Errorf("Metadata = %v, want %v", event.Metadata, metadata)
	}
}

func TestCreateTimestampsFollowClock(t *testing.T) {
	fake := clock.Fake(epoch)
	factory := NewFactory(fake)
	payload := ConnectionLostPayload{ServerURL: "http://127.0.0.1:28597", Reason: "timeout", WillReconnect: true}

	first, err := factory.Create(ConnectionLost, payload, "", nil)
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	fake.Advance(time.Millisecond)
	second, err := factory.Create(ConnectionLost, payload, "", nil)
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}

	if !second.Timestamp.After(first.Timestamp) {
		t.Errorf("second timestamp %v not after first %v", second.Timestamp, first.Timestamp)
	}
	if !reflect.DeepEqual(first.Payload, second.Payload) {
		t.Error("identical payloads produced different event payloads")
	}
}

func TestCreateDoesNotMutatePayload(t *testing.T) {
	payload := ItemUpdatedPayload{
		Item:          schema.ListItem{ID: "item-1", Name: "Oat Milk"},
		PreviousItem:  milk(),
		ListName:      "Groceries",
		ChangedFields: []string{"name"},
	}
	snapshot := ItemUpdatedPayload{
		Item:          payload.Item,
		PreviousItem:  payload.PreviousItem,
		ListName:      payload.ListName,
		ChangedFields: []string{"name"},
	}

	if _, err := Create(ItemUpdated, &payload, "user", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !reflect.DeepEqual(payload, snapshot) {
		t.Errorf("payload mutated: %+v", payload)
	}
}

func TestCreateAcceptsPointerPayload(t *testing.T) {
	payload := &RecipeDeletedPayload{Recipe: schema.Recipe{ID: "r1", Name: "Soup"}}
	event, err := Create(RecipeDeleted, payload, "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := event.Payload.(RecipeDeletedPayload); !ok {
		t.Errorf("payload stored as %T, want value type", event.Payload)
	}

	payload.Recipe.Name = "Stew"
	if stored := event.Payload.(RecipeDeletedPayload); stored.Recipe.Name != "Soup" {
		t.Error("event aliases the caller's payload")
	}
}

func TestCreateCopiesShallowly(t *testing.T) {
	payload := &ItemUpdatedPayload{
		Item:          schema.ListItem{ID: "item-1", Name: "Oat Milk"},
		PreviousItem:  milk(),
		ListName:      "Groceries",
		ChangedFields: []string{"name"},
	}
	metadata := map[string]any{"attempt": 1}
	event, err := Create(ItemUpdated, payload, "user", metadata)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	payload.ListName = "Costco"
	payload.ChangedFields[0] = "checked"
	metadata["attempt"] = 2

	stored := event.Payload.(ItemUpdatedPayload)
	if stored.ListName != "Groceries" {
		t.Errorf("ListName = %q: top-level fields should be copied", stored.ListName)
	}
	if stored.ChangedFields[0] != "checked" {
		t.Errorf("ChangedFields = %v: slices are shared with the caller", stored.ChangedFields)
	}
	if event.Metadata["attempt"] != 2 {
		t.Errorf("Metadata = %v: the metadata map is shared with the caller", event.Metadata)
	}
}

func TestCreateSchemaMismatch(t *testing.T) {
	tests := []struct {
		name    string
		event   Name
		payload Payload
	}{
		{"wrong payload type", ItemAdded, ItemRemovedPayload{Item: milk(), ListName: "Groceries"}},
		{"missing list name", ItemAdded, ItemAddedPayload{Item: milk()}},
		{"invalid item", ItemChecked, ItemCheckedPayload{Item: schema.ListItem{Name: "Milk"}, ListName: "Groceries"}},
		{"nil payload", RecipeCreated, nil},
		{"nil pointer payload", RecipeCreated, (*RecipeCreatedPayload)(nil)},
		{"bad mode", ConnectionEstablished, ConnectionEstablishedPayload{ServerURL: "http://x", Mode: "cloud"}},
		{"mismatched previous item", ItemUpdated, ItemUpdatedPayload{
			Item: milk(), PreviousItem: schema.ListItem{ID: "other", Name: "Milk"}, ListName: "Groceries",
		}},
		{"intent error on success", Intent, IntentPayload{IntentType: "AnylistAddItem", Success: true, Error: "x"}},
		{"negative counts", ListRefreshed, ListRefreshedPayload{ListName: "Groceries", ItemsAdded: -1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Create(test.event, test.payload, "", nil)
			if !errors.Is(err, ErrSchemaMismatch) {
				t.Errorf("Create error = %v, want ErrSchemaMismatch", err)
			}
		})
	}
}

func TestCreateUnknownEvent(t *testing.T) {
	_, err := Create("item:exploded", ItemAddedPayload{Item: milk(), ListName: "Groceries"}, "", nil)
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("Create error = %v, want ErrUnknownEvent", err)
	}
	if errors.Is(err, ErrSchemaMismatch) {
		t.Error("unknown event should not be reported as a schema mismatch")
	}
}

func TestNewTakesNameFromPayload(t *testing.T) {
	factory := NewFactory(clock.Fake(epoch))
	event, err := New(factory, APIErrorPayload{
		Error:      schema.APIError{Code: "NOT_FOUND", Message: "no list"},
		StatusCode: schema.StatusNotFound,
		Endpoint:   "items",
		Method:     "GET",
	}, "api", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if event.Name != APIError {
		t.Errorf("Name = %q, want %q", event.Name, APIError)
	}
}

func TestNewListRefreshedPayload(t *testing.T) {
	previous := []schema.ListItem{{ID: "1", Name: "Milk"}, {ID: "2", Name: "Eggs"}}
	current := []schema.ListItem{{ID: "2", Name: "Eggs", Checked: true}, {ID: "3", Name: "Jam"}}

	payload := NewListRefreshedPayload("Groceries", previous, current)
	if payload.ItemsAdded != 1 || payload.ItemsUpdated != 1 || payload.ItemsRemoved != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", payload.ItemsAdded, payload.ItemsUpdated, payload.ItemsRemoved)
	}
	if err := payload.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestNewListsUpdatedPayload(t *testing.T) {
	payload := NewListsUpdatedPayload([]string{"Groceries"}, []string{"Groceries"})
	if payload.NewLists == nil || payload.RemovedLists == nil {
		t.Error("unchanged discovery should yield empty, non-nil slices")
	}
	payload = NewListsUpdatedPayload([]string{"Groceries"}, []string{"Costco"})
	if !reflect.DeepEqual(payload.NewLists, []string{"Costco"}) || !reflect.DeepEqual(payload.RemovedLists, []string{"Groceries"}) {
		t.Errorf("payload = %+v", payload)
	}
}
