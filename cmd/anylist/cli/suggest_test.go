// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "ab", 1},
		{"ab", "abc", 1},
		{"abc", "bac", 2},
		{"kitten", "sitting", 3},
		{"status", "stauts", 2},
		{"intent", "intnet", 2},
		{"config", "confg", 1},
	}

	for _, test := range tests {
		t.Run(test.a+"/"+test.b, func(t *testing.T) {
			if got := levenshtein(test.a, test.b); got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
			if reverse := levenshtein(test.b, test.a); reverse != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, not symmetric", test.b, test.a, reverse)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "status"},
		{Name: "validate"},
		{Name: "names"},
		{Name: "event"},
		{Name: "config"},
		{Name: "intent"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"stauts", "status"},
		{"valdate", "validate"},
		{"nmes", "names"},
		{"evnt", "event"},
		{"confg", "config"},
		{"intnet", "intent"},
		{"zzzzzzzzz", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := suggestCommand(test.input, commands); got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.String("payload", "", "")
		flagSet.StringP("source", "s", "", "")
		flagSet.String("format", "json", "")
		flagSet.Bool("digest", false, "")
		flagSet.Bool("json", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"double dash typo", []string{"--paylaod"}, "--payload"},
		{"single dash typo", []string{"-paylaod"}, "--payload"},
		{"with value", []string{"--fromat=cbor"}, "--format"},
		{"after a known flag", []string{"--json", "--digset"}, "--digest"},
		{"known shorthand skipped", []string{"-s", "user", "--sorce"}, "--source"},
		{"nothing close", []string{"--zzzzzzzzz"}, ""},
		{"no flags", []string{"positional"}, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, makeFlagSet()); got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"add_item", "remove_item", "get_items"}
	if got := Closest("add_itme", candidates); got != "add_item" {
		t.Errorf("Closest(add_itme) = %q, want add_item", got)
	}
	if got := Closest("purge", candidates); got != "" {
		t.Errorf("Closest(purge) = %q, want empty", got)
	}
	if got := Closest("x", nil); got != "" {
		t.Errorf("Closest with no candidates = %q", got)
	}
}
