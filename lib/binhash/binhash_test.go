// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"testing"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/anylist/lib/testutil"
)

func TestHashFile(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"small", []byte("#!/bin/sh\nexec anylist-server\n")},
		{"empty", nil},
		{"larger than a chunk", largeContent()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := testutil.WriteFile(t, "anylist-server", string(test.content))
			got, err := HashFile(path)
			if err != nil {
				t.Fatalf("HashFile: %v", err)
			}
			if want := Digest(blake3.Sum256(test.content)); got != want {
				t.Errorf("HashFile = %s, want %s", got, want)
			}
		})
	}
}

// largeContent is 256 KiB with a non-repeating byte pattern.
func largeContent() []byte {
	content := make([]byte, 256*1024)
	for i := range content {
		content[i] = byte(i % 251)
	}
	return content
}

func TestHashFileDifferentContent(t *testing.T) {
	first, err := HashFile(testutil.WriteFile(t, "a", "server build A"))
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	second, err := HashFile(testutil.WriteFile(t, "b", "server build B"))
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if first == second {
		t.Error("different files produced the same digest")
	}
}

func TestHashFileNonexistent(t *testing.T) {
	if _, err := HashFile(t.TempDir() + "/does-not-exist"); err == nil {
		t.Fatal("HashFile succeeded for a nonexistent file")
	}
}

func TestParseDigestRoundTrip(t *testing.T) {
	original := Digest(blake3.Sum256([]byte("round-trip")))
	formatted := original.String()
	if len(formatted) != 64 {
		t.Errorf("String() length = %d, want 64", len(formatted))
	}
	parsed, err := ParseDigest(formatted)
	if err != nil {
		t.Fatalf("ParseDigest: %v", err)
	}
	if parsed != original {
		t.Errorf("round trip = %s, want %s", parsed, original)
	}
}

func TestParseDigestInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not hex", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"},
		{"too short", "abcd"},
		{"too long", "abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789aa"},
		{"empty", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseDigest(test.input); err == nil {
				t.Errorf("ParseDigest(%q) succeeded", test.input)
			}
		})
	}
}
