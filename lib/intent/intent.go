// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package intent turns voice-command intents into list operations and
// spoken responses.
//
// The three intents are [schema.IntentAddItem] and
// [schema.IntentRemoveItem], which take the item name from the "item"
// slot, and [schema.IntentGetItems], which reads back the unchecked
// items. [Handle] runs an intent against a [List] and reports the
// outcome as an [event.IntentPayload]; [Speech] builds the response
// text alone.
package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/anylist/lib/event"
	"github.com/bureau-foundation/anylist/lib/schema"
)

// SlotItem is the slot carrying the item name for add and remove.
const SlotItem = "item"

// FailureResponse is spoken when an intent cannot be completed.
const FailureResponse = "Sorry, I could not update your list."

var (
	// ErrUnknownIntent is returned for an intent type outside
	// schema.Intents.
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrMissingSlot is returned when a required slot is absent or
	// blank.
	ErrMissingSlot = errors.New("missing slot")
)

// List is the list operations the intents need.
type List interface {
	AddItem(ctx context.Context, name string) error
	RemoveItem(ctx context.Context, name string) error

	// UncheckedItems returns the names of the items still to buy.
	UncheckedItems(ctx context.Context) ([]string, error)
}

// FormatItems joins item names for speech: "milk", "milk and eggs",
// "milk, eggs, and bread". Returns "" for no items.
func FormatItems(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// Speech returns the response for a successfully handled intent. items
// is the list contents and is only consulted for get-items.
func Speech(intentType schema.Intent, slots map[string]string, items []string) (string, error) {
	switch intentType {
	case schema.IntentAddItem:
		item, err := itemSlot(slots)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("I have added %s to your list.", item), nil
	case schema.IntentRemoveItem:
		item, err := itemSlot(slots)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("I have removed %s from your list.", item), nil
	case schema.IntentGetItems:
		if len(items) == 0 {
			return "There are no items on your list.", nil
		}
		return fmt.Sprintf("You have: %s.", FormatItems(items)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownIntent, intentType)
	}
}

func itemSlot(slots map[string]string) (string, error) {
	item := strings.TrimSpace(slots[SlotItem])
	if item == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingSlot, SlotItem)
	}
	return item, nil
}

// Handle performs the intent against list and returns the outcome. It
// never fails: errors are reported in the payload with Success false
// and [FailureResponse] as the spoken response. The slots map is not
// modified.
func Handle(ctx context.Context, list List, intentType string, slots map[string]string) event.IntentPayload {
	speech, err := handle(ctx, list, schema.Intent(intentType), slots)
	return Outcome(intentType, slots, speech, err)
}

func handle(ctx context.Context, list List, intentType schema.Intent, slots map[string]string) (string, error) {
	if !schema.IsValidIntent(string(intentType)) {
		return "", fmt.Errorf("%w: %q", ErrUnknownIntent, intentType)
	}

	var items []string
	switch intentType {
	case schema.IntentAddItem, schema.IntentRemoveItem:
		item, err := itemSlot(slots)
		if err != nil {
			return "", err
		}
		operation := list.AddItem
		if intentType == schema.IntentRemoveItem {
			operation = list.RemoveItem
		}
		if err := operation(ctx, item); err != nil {
			return "", fmt.Errorf("%s %q: %w", intentType, item, err)
		}
	case schema.IntentGetItems:
		var err error
		items, err = list.UncheckedItems(ctx)
		if err != nil {
			return "", fmt.Errorf("%s: %w", intentType, err)
		}
	}
	return Speech(intentType, slots, items)
}

// Outcome builds the intent event payload for a handled intent. A nil
// err records success with speech as the response.
func Outcome(intentType string, slots map[string]string, speech string, err error) event.IntentPayload {
	copied := make(map[string]string, len(slots))
	for key, value := range slots {
		copied[key] = value
	}
	payload := event.IntentPayload{
		IntentType: intentType,
		Slots:      copied,
		Success:    err == nil,
		Response:   speech,
	}
	if err != nil {
		payload.Response = FailureResponse
		payload.Error = err.Error()
	}
	return payload
}
