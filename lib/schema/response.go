// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
)

// Response is the envelope of every list service response. T is the
// shape of the data payload for the endpoint that produced it.
//
// A success response carries Data; an error response carries Error and
// never Data. Both shapes share this one struct: the presence of Error
// is the discriminator (see [IsAPIErrorResponse]).
type Response[T any] struct {
	Code StatusCode `json:"code"`

	// Data is the endpoint-specific payload. Nil for error responses
	// and for endpoints that return no body.
	Data *T `json:"data,omitempty"`

	// Message is a human-readable summary.
	Message string `json:"message,omitempty"`

	// Meta is free-form response metadata.
	Meta map[string]any `json:"meta,omitempty"`

	// Timestamp is the server's ISO 8601 response time, passed through
	// verbatim.
	Timestamp string `json:"timestamp,omitempty"`

	// Error is set on error responses.
	Error *APIError `json:"error,omitempty"`
}

// IsAPIErrorResponse reports whether response is an error response,
// i.e. whether its Error field is set. The check is structural: an
// Error pointing at a zero APIError still classifies as an error
// response. A nil response is not an error response.
func IsAPIErrorResponse[T any](response *Response[T]) bool {
	return response != nil && response.Error != nil
}

// IsAPIErrorDocument performs the [IsAPIErrorResponse] check on a raw
// JSON response document without decoding its data payload: it reports
// whether the top-level object has an "error" member. Returns an error
// only when data is not a JSON object.
func IsAPIErrorDocument(data []byte) (bool, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return false, fmt.Errorf("parsing response document: %w", err)
	}
	_, present := members["error"]
	return present, nil
}

// APIError is the error body of a failed list service call.
type APIError struct {
	// Code is the error type (e.g., "ITEM_NOT_FOUND"). Not the status
	// code: that lives on the enclosing Response.
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`

	// FieldErrors maps request field names to validation messages.
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`

	// Stack is a server stack trace, only present in development
	// deployments.
	Stack string `json:"stack,omitempty"`

	// RequestID correlates the error with server logs.
	RequestID string `json:"requestId,omitempty"`
}

// Error implements the error interface so an APIError can be returned
// directly by clients.
func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return e.Code + ": " + e.Message
	case e.Message != "":
		return e.Message
	case e.Code != "":
		return e.Code
	default:
		return "list service error"
	}
}

// ListsData is the payload of the "lists" endpoint.
type ListsData struct {
	Lists []string `json:"lists"`
}

// ItemsData is the payload of the "items" endpoint.
type ItemsData struct {
	Items []ListItem `json:"items"`
}

// AllItemsData splits a list into unchecked and checked item names.
// Built by [NewAllItemsData].
type AllItemsData struct {
	UncheckedItems []string `json:"uncheckedItems"`
	CheckedItems   []string `json:"checkedItems"`
}

// NewAllItemsData builds the get_all_items payload from detailed items.
func NewAllItemsData(items []ListItem) AllItemsData {
	unchecked, checked := SplitByChecked(items)
	return AllItemsData{UncheckedItems: unchecked, CheckedItems: checked}
}

// ItemOperationData is the optional payload of add, remove, update and
// check calls.
type ItemOperationData struct {
	Item     *ListItem `json:"item,omitempty"`
	Affected *int      `json:"affected,omitempty"`
}

// RecipeData wraps a single recipe.
type RecipeData struct {
	Recipe Recipe `json:"recipe"`
}

// Pagination describes the slice of a paginated result that was
// returned. Embedded in the paginated payloads; every field is optional.
type Pagination struct {
	Total *int `json:"total,omitempty"`
	Page  *int `json:"page,omitempty"`
	Limit *int `json:"limit,omitempty"`
}

// RecipesData is a page of recipes.
type RecipesData struct {
	Recipes []Recipe `json:"recipes"`
	Pagination
}

// CollectionData wraps a single recipe collection.
type CollectionData struct {
	Collection RecipeCollection `json:"collection"`
}

// CollectionsData is a page of recipe collections.
type CollectionsData struct {
	Collections []RecipeCollection `json:"collections"`
	Pagination
}

// Endpoint response types.
type (
	GetListsResponse          = Response[ListsData]
	GetItemsResponse          = Response[ItemsData]
	GetAllItemsResponse       = Response[AllItemsData]
	ItemOperationResponse     = Response[ItemOperationData]
	RecipeResponse            = Response[RecipeData]
	RecipesResponse           = Response[RecipesData]
	RecipeCollectionResponse  = Response[CollectionData]
	RecipeCollectionsResponse = Response[CollectionsData]
	ErrorResponse             = Response[struct{}]
)
