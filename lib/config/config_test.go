// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/anylist/lib/schema"
	"github.com/bureau-foundation/anylist/lib/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, "anylist.yaml", content)
}

func addonConfig() *Config {
	cfg := Default()
	cfg.ServerAddr = "http://homeassistant.local:28597"
	return cfg
}

func binaryConfig() *Config {
	cfg := Default()
	cfg.ServerBinary = "/usr/local/bin/anylist-server"
	cfg.Email = "cook@example.com"
	cfg.Password = "hunter2"
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.RefreshInterval != 30 {
		t.Errorf("expected refresh_interval=30, got %d", cfg.RefreshInterval)
	}
	if cfg.ServerAddr != "" || cfg.ServerBinary != "" {
		t.Error("expected no connection mode configured by default")
	}
	if cfg.Validate() == nil {
		t.Error("expected the default config to fail validation until a mode is configured")
	}
}

func TestLoad_RequiresAnylistConfig(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when ANYLIST_CONFIG not set, got nil")
	}

	expectedMsg := "ANYLIST_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithAnylistConfig(t *testing.T) {
	configPath := writeConfig(t, `
server_addr: http://addon:28597
default_list: Groceries
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ServerAddr != "http://addon:28597" {
		t.Errorf("expected server_addr=http://addon:28597, got %s", cfg.ServerAddr)
	}
	if cfg.DefaultList != "Groceries" {
		t.Errorf("expected default_list=Groceries, got %s", cfg.DefaultList)
	}
	if cfg.RefreshInterval != schema.DefaultRefreshInterval {
		t.Errorf("expected default refresh_interval to survive, got %d", cfg.RefreshInterval)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
server_binary: /opt/anylist/server
email: cook@example.com
password: hunter2
default_list: Costco
refresh_interval: 60
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	want := &Config{
		ServerBinary:    "/opt/anylist/server",
		Email:           "cook@example.com",
		Password:        "hunter2",
		DefaultList:     "Costco",
		RefreshInterval: 60,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("LoadFile = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFile_Empty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("empty file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	_, err := LoadFile(writeConfig(t, "server_adress: http://typo:28597\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "server_adress") {
		t.Errorf("error %q does not name the unknown key", err)
	}

	if _, err := LoadFile(writeConfig(t, "refresh_interval: soon\n")); err == nil {
		t.Error("expected error for non-integer refresh_interval")
	}
}

func TestLoadFile_ExpandsVariables(t *testing.T) {
	t.Setenv("ANYLIST_TEST_PASSWORD", "from-environment")
	t.Setenv("HOME", "/home/cook")
	configPath := writeConfig(t, `
server_binary: ${HOME}/bin/anylist-server
email: cook@example.com
password: ${ANYLIST_TEST_PASSWORD}
default_list: ${ANYLIST_TEST_UNSET_LIST:-Groceries}
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ServerBinary != "/home/cook/bin/anylist-server" {
		t.Errorf("server_binary = %q", cfg.ServerBinary)
	}
	if cfg.Password != "from-environment" {
		t.Errorf("password = %q", cfg.Password)
	}
	if cfg.DefaultList != "Groceries" {
		t.Errorf("default_list = %q", cfg.DefaultList)
	}
}

func TestLoadFile_EscapedReference(t *testing.T) {
	t.Setenv("ANYLIST_TEST_PASSWORD", "from-environment")
	configPath := writeConfig(t, `
server_binary: /usr/local/bin/anylist-server
email: cook@example.com
password: "pa$${ANYLIST_TEST_PASSWORD}word"
default_list: "$${HOME} and $$5"
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Password != "pa${ANYLIST_TEST_PASSWORD}word" {
		t.Errorf("password = %q, want the literal reference", cfg.Password)
	}
	if cfg.DefaultList != "${HOME} and $$5" {
		t.Errorf("default_list = %q", cfg.DefaultList)
	}
}

func TestEnvVarsDoNotOverride(t *testing.T) {
	// Only ${VAR} references expand; a variable named like an option
	// does not replace the file's value.
	t.Setenv("ANYLIST_SERVER_ADDR", "http://env:1")
	t.Setenv("ANYLIST_DEFAULT_LIST", "Env List")

	cfg, err := LoadFile(writeConfig(t, "server_addr: http://file:28597\ndefault_list: File List\n"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ServerAddr != "http://file:28597" {
		t.Errorf("expected server_addr from file, got %s (env vars should not override)", cfg.ServerAddr)
	}
	if cfg.DefaultList != "File List" {
		t.Errorf("expected default_list from file, got %s (env vars should not override)", cfg.DefaultList)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/anylist",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/anylist",
		},
		{
			input:    "${ANYLIST_TEST_MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "$${PRESENT}:${PRESENT}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "${PRESENT}:value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		base    func() *Config
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid addon config",
			base:   addonConfig,
			modify: func(c *Config) {},
		},
		{
			name:   "valid binary config",
			base:   binaryConfig,
			modify: func(c *Config) {},
		},
		{
			name:    "no mode",
			base:    Default,
			modify:  func(c *Config) {},
			wantErr: "one of server_addr or server_binary is required",
		},
		{
			name:    "both modes",
			base:    binaryConfig,
			modify:  func(c *Config) { c.ServerAddr = "http://addon:28597" },
			wantErr: "mutually exclusive",
		},
		{
			name:    "binary without email",
			base:    binaryConfig,
			modify:  func(c *Config) { c.Email = "" },
			wantErr: "email is required with server_binary",
		},
		{
			name:    "binary with malformed email",
			base:    binaryConfig,
			modify:  func(c *Config) { c.Email = "cook" },
			wantErr: "is not an email address",
		},
		{
			name:    "binary without password",
			base:    binaryConfig,
			modify:  func(c *Config) { c.Password = "" },
			wantErr: "password is required with server_binary",
		},
		{
			name:    "addon with non-http address",
			base:    addonConfig,
			modify:  func(c *Config) { c.ServerAddr = "ftp://addon" },
			wantErr: "must be an http or https URL",
		},
		{
			name:    "addon without host",
			base:    addonConfig,
			modify:  func(c *Config) { c.ServerAddr = "http://" },
			wantErr: "has no host",
		},
		{
			name:    "refresh too short",
			base:    addonConfig,
			modify:  func(c *Config) { c.RefreshInterval = 14 },
			wantErr: "refresh_interval must be between 15 and 120 minutes",
		},
		{
			name:    "refresh too long",
			base:    addonConfig,
			modify:  func(c *Config) { c.RefreshInterval = 121 },
			wantErr: "got 121",
		},
		{
			name:   "refresh at bounds",
			base:   addonConfig,
			modify: func(c *Config) { c.RefreshInterval = 120 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.base()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := binaryConfig()
	cfg.Email = ""
	cfg.Password = ""
	cfg.RefreshInterval = 5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"email is required", "password is required", "refresh_interval"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("joined error %q is missing %q", err, want)
		}
	}
}

func TestModeAndServerURL(t *testing.T) {
	addon := addonConfig()
	addon.ServerAddr = "http://homeassistant.local:28597/"
	if addon.Mode() != schema.ModeAddon {
		t.Errorf("addon Mode() = %q", addon.Mode())
	}
	if got := addon.ServerURL(); got != "http://homeassistant.local:28597" {
		t.Errorf("addon ServerURL() = %q", got)
	}

	binary := binaryConfig()
	if binary.Mode() != schema.ModeBinary {
		t.Errorf("binary Mode() = %q", binary.Mode())
	}
	if got := binary.ServerURL(); got != "http://127.0.0.1:28597" {
		t.Errorf("binary ServerURL() = %q", got)
	}

	if got := addon.Refresh(); got != 30*time.Minute {
		t.Errorf("Refresh() = %v, want 30m", got)
	}
}

func TestServerBinaryPath(t *testing.T) {
	directory := t.TempDir()
	binaryPath := filepath.Join(directory, "anylist-server")
	if err := os.WriteFile(binaryPath, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("failed to write binary: %v", err)
	}

	cfg := binaryConfig()
	cfg.ServerBinary = binaryPath
	if got, err := cfg.ServerBinaryPath(); err != nil || got != binaryPath {
		t.Errorf("ServerBinaryPath() = %q, %v; want %q", got, err, binaryPath)
	}

	t.Setenv("PATH", directory)
	cfg.ServerBinary = "anylist-server"
	if got, err := cfg.ServerBinaryPath(); err != nil || got != binaryPath {
		t.Errorf("ServerBinaryPath() via PATH = %q, %v; want %q", got, err, binaryPath)
	}

	cfg.ServerBinary = "anylist-server-missing"
	if _, err := cfg.ServerBinaryPath(); err == nil {
		t.Error("expected error for binary not in PATH")
	}

	cfg.ServerBinary = directory + string(filepath.Separator)
	if _, err := cfg.ServerBinaryPath(); err == nil {
		t.Error("expected error for a directory")
	}

	if _, err := addonConfig().ServerBinaryPath(); err == nil {
		t.Error("expected error when server_binary is not configured")
	}
}

func TestMap(t *testing.T) {
	got := binaryConfig().Map()
	want := map[string]any{
		"server_binary":    "/usr/local/bin/anylist-server",
		"email":            "cook@example.com",
		"password":         "********",
		"refresh_interval": 30,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
	for _, value := range got {
		if value == "hunter2" {
			t.Error("Map() leaks the password")
		}
	}
}

func TestChangedFields(t *testing.T) {
	previous := binaryConfig()
	next := binaryConfig()
	if got := ChangedFields(previous, next); got != nil {
		t.Errorf("identical configs reported changes: %v", got)
	}

	next.Password = "correct horse"
	next.RefreshInterval = 45
	next.DefaultList = "Costco"
	want := []string{"default_list", "password", "refresh_interval"}
	if got := ChangedFields(previous, next); !reflect.DeepEqual(got, want) {
		t.Errorf("ChangedFields = %v, want %v", got, want)
	}
}
