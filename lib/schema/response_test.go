// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestIsAPIErrorResponse(t *testing.T) {
	success := &GetListsResponse{Code: StatusOK, Data: &ListsData{Lists: []string{"Groceries"}}}
	if IsAPIErrorResponse(success) {
		t.Error("success response classified as error")
	}

	failure := &ErrorResponse{Code: StatusNotFound, Error: &APIError{Code: "LIST_NOT_FOUND", Message: "no such list"}}
	if !IsAPIErrorResponse(failure) {
		t.Error("error response not classified as error")
	}

	empty := &ErrorResponse{Code: StatusBadRequest, Error: &APIError{}}
	if !IsAPIErrorResponse(empty) {
		t.Error("response with zero APIError should still classify as error")
	}

	var missing *GetItemsResponse
	if IsAPIErrorResponse(missing) {
		t.Error("nil response classified as error")
	}
}

func TestIsAPIErrorDocument(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     bool
		wantErr  bool
	}{
		{"success", `{"code":200,"data":{"lists":["Groceries"]}}`, false, false},
		{"error", `{"code":404,"error":{"code":"NOT_FOUND","message":"gone"}}`, true, false},
		{"null error member", `{"code":500,"error":null}`, true, false},
		{"nested error only", `{"code":200,"data":{"error":"x"}}`, false, false},
		{"not an object", `[1,2]`, false, true},
		{"malformed", `{"code":`, false, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := IsAPIErrorDocument([]byte(test.document))
			if test.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("IsAPIErrorDocument: %v", err)
			}
			if got != test.want {
				t.Errorf("IsAPIErrorDocument = %v, want %v", got, test.want)
			}
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		apiError APIError
		want     string
	}{
		{APIError{Code: "NOT_FOUND", Message: "list missing"}, "NOT_FOUND: list missing"},
		{APIError{Message: "list missing"}, "list missing"},
		{APIError{Code: "NOT_FOUND"}, "NOT_FOUND"},
		{APIError{}, "list service error"},
	}
	for _, test := range tests {
		if got := test.apiError.Error(); got != test.want {
			t.Errorf("Error() = %q, want %q", got, test.want)
		}
	}

	var err error = &APIError{Code: "X", Message: "y"}
	var target *APIError
	if !errors.As(err, &target) || target.Code != "X" {
		t.Error("errors.As did not recover the APIError")
	}
}

func TestResponseDecodeErrorDocument(t *testing.T) {
	document := `{
		"code": 400,
		"message": "validation failed",
		"timestamp": "2026-03-01T12:00:00.000Z",
		"error": {
			"code": "VALIDATION_ERROR",
			"message": "name is required",
			"fieldErrors": {"name": ["required"]},
			"requestId": "req-7"
		}
	}`
	var response ErrorResponse
	if err := json.Unmarshal([]byte(document), &response); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if response.Code != StatusBadRequest {
		t.Errorf("Code = %v, want BAD_REQUEST", response.Code)
	}
	if !IsAPIErrorResponse(&response) {
		t.Fatal("decoded document not classified as error")
	}
	want := &APIError{
		Code:        "VALIDATION_ERROR",
		Message:     "name is required",
		FieldErrors: map[string][]string{"name": {"required"}},
		RequestID:   "req-7",
	}
	if !reflect.DeepEqual(response.Error, want) {
		t.Errorf("Error = %+v, want %+v", response.Error, want)
	}
	if response.Timestamp != "2026-03-01T12:00:00.000Z" {
		t.Errorf("Timestamp = %q, want verbatim server value", response.Timestamp)
	}
}

func TestPaginatedPayloadFlattensPagination(t *testing.T) {
	data := RecipesData{
		Recipes:    []Recipe{},
		Pagination: Pagination{Total: intPointer(42), Page: intPointer(2)},
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(encoded, &raw); err != nil {
		t.Fatalf("Unmarshal to map: %v", err)
	}
	assertField(t, raw, "total", float64(42))
	assertField(t, raw, "page", float64(2))
	if _, exists := raw["limit"]; exists {
		t.Error("unset limit should be omitted")
	}
	if _, exists := raw["Pagination"]; exists {
		t.Error("embedded Pagination should be flattened")
	}
}

func TestNewAllItemsData(t *testing.T) {
	data := NewAllItemsData([]ListItem{
		{ID: "1", Name: "Milk"},
		{ID: "2", Name: "Eggs", Checked: true},
		{ID: "3", Name: "Bread"},
	})
	if !reflect.DeepEqual(data.UncheckedItems, []string{"Milk", "Bread"}) {
		t.Errorf("UncheckedItems = %v", data.UncheckedItems)
	}
	if !reflect.DeepEqual(data.CheckedItems, []string{"Eggs"}) {
		t.Errorf("CheckedItems = %v", data.CheckedItems)
	}

	encoded, err := json.Marshal(NewAllItemsData(nil))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(encoded) != `{"uncheckedItems":[],"checkedItems":[]}` {
		t.Errorf("empty list encoded as %s", encoded)
	}
}
