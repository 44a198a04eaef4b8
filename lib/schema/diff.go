// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"reflect"
	"slices"
	"strings"
)

// ChangedListItemFields returns the JSON names of the fields that
// differ between previous and current, in declaration order. Feeds the
// changedFields member of item:updated events.
func ChangedListItemFields(previous, current ListItem) []string {
	return changedFields(previous, current)
}

// ChangedRecipeFields returns the JSON names of the recipe fields that
// differ between previous and current.
func ChangedRecipeFields(previous, current Recipe) []string {
	return changedFields(previous, current)
}

// ChangedCollectionFields returns the JSON names of the collection
// fields that differ between previous and current.
func ChangedCollectionFields(previous, current RecipeCollection) []string {
	return changedFields(previous, current)
}

// changedFields compares two values of the same struct type field by
// field with reflect.DeepEqual and returns the JSON names of the
// differing fields. A nil slice and an empty slice compare equal: both
// serialize to an absent or empty member and the list service does not
// distinguish them.
func changedFields[T any](previous, current T) []string {
	previousValue := reflect.ValueOf(previous)
	currentValue := reflect.ValueOf(current)
	structType := previousValue.Type()

	var changed []string
	for i := range structType.NumField() {
		field := structType.Field(i)
		name := jsonName(field)
		if name == "" {
			continue
		}
		a := previousValue.Field(i)
		b := currentValue.Field(i)
		if a.Kind() == reflect.Slice && a.Len() == 0 && b.Len() == 0 {
			continue
		}
		if !reflect.DeepEqual(a.Interface(), b.Interface()) {
			changed = append(changed, name)
		}
	}
	return changed
}

// jsonName returns the JSON member name of a struct field, or "" for
// fields excluded from JSON.
func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

// ListDelta summarizes how a list changed between two refreshes.
// Items are matched by ID.
type ListDelta struct {
	// Added are items present now that were absent before.
	Added []ListItem

	// Updated are items present in both snapshots whose content
	// changed. The current version is recorded.
	Updated []ListItem

	// Removed are items that were present before and are gone now. The
	// previous version is recorded.
	Removed []ListItem
}

// CompareLists computes the delta between two snapshots of one list.
// Added and Updated follow the order of current; Removed follows the
// order of previous.
func CompareLists(previous, current []ListItem) ListDelta {
	before := make(map[string]ListItem, len(previous))
	for _, item := range previous {
		before[item.ID] = item
	}
	after := make(map[string]struct{}, len(current))

	var delta ListDelta
	for _, item := range current {
		after[item.ID] = struct{}{}
		old, existed := before[item.ID]
		switch {
		case !existed:
			delta.Added = append(delta.Added, item)
		case old != item:
			delta.Updated = append(delta.Updated, item)
		}
	}
	for _, item := range previous {
		if _, stillThere := after[item.ID]; !stillThere {
			delta.Removed = append(delta.Removed, item)
		}
	}
	return delta
}

// CompareListNames returns the list names that appeared and
// disappeared between two discoveries, each in the order of the
// snapshot it was found in.
func CompareListNames(previous, current []string) (added, removed []string) {
	for _, name := range current {
		if !slices.Contains(previous, name) {
			added = append(added, name)
		}
	}
	for _, name := range previous {
		if !slices.Contains(current, name) {
			removed = append(removed, name)
		}
	}
	return added, removed
}

// SplitByChecked partitions items into the names of unchecked and
// checked items, preserving order. Both results are non-nil so they
// serialize as empty arrays.
func SplitByChecked(items []ListItem) (unchecked, checked []string) {
	unchecked = []string{}
	checked = []string{}
	for _, item := range items {
		if item.Checked {
			checked = append(checked, item.Name)
		} else {
			unchecked = append(unchecked, item.Name)
		}
	}
	return unchecked, checked
}
