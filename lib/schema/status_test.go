// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "testing"

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		code        StatusCode
		wantSuccess bool
		wantError   bool
	}{
		{StatusOK, true, false},
		{StatusCreated, true, false},
		{StatusNoContent, true, false},
		{StatusNotModified, false, false},
		{StatusBadRequest, false, true},
		{StatusUnauthorized, false, true},
		{StatusNotFound, false, true},
		{StatusConflict, false, true},
		{StatusInternalServerError, false, true},
		{StatusGatewayTimeout, false, true},
		{199, false, false},
		{299, true, false},
		{300, false, false},
		{399, false, false},
		{999, false, true},
		{0, false, false},
		{-1, false, false},
	}
	for _, test := range tests {
		if got := IsSuccessStatusCode(test.code); got != test.wantSuccess {
			t.Errorf("IsSuccessStatusCode(%d) = %v, want %v", int(test.code), got, test.wantSuccess)
		}
		if got := IsErrorStatusCode(test.code); got != test.wantError {
			t.Errorf("IsErrorStatusCode(%d) = %v, want %v", int(test.code), got, test.wantError)
		}
	}
}

func TestStatusCodesNeverBothSuccessAndError(t *testing.T) {
	for code := StatusCode(-100); code < 1000; code++ {
		if IsSuccessStatusCode(code) && IsErrorStatusCode(code) {
			t.Fatalf("status %d classified as both success and error", int(code))
		}
	}
}

func TestStatusCodeString(t *testing.T) {
	if got := StatusNotFound.String(); got != "NOT_FOUND" {
		t.Errorf("StatusNotFound.String() = %q, want NOT_FOUND", got)
	}
	if got := StatusCode(418).String(); got != "418" {
		t.Errorf("StatusCode(418).String() = %q, want 418", got)
	}
}

func TestStatusCodesClosedSet(t *testing.T) {
	codes := StatusCodes()
	if len(codes) != 14 {
		t.Fatalf("StatusCodes() has %d entries, want 14", len(codes))
	}
	for i, code := range codes {
		if !code.Known() {
			t.Errorf("StatusCodes()[%d] = %d is not Known()", i, int(code))
		}
		if i > 0 && codes[i-1] >= code {
			t.Errorf("StatusCodes() not ascending at index %d", i)
		}
	}
	if StatusCode(418).Known() {
		t.Error("418 should not be Known()")
	}
}
