// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/anylist/lib/schema"
)

// EnvironmentVariable names the environment variable [Load] reads the
// configuration path from.
const EnvironmentVariable = "ANYLIST_CONFIG"

// redacted replaces secrets in [Config.Map].
const redacted = "********"

// Config holds the integration options.
type Config struct {
	// ServerAddr is the base URL of an already-running list server
	// (e.g., "http://homeassistant.local:28597"). Setting it selects
	// addon mode.
	ServerAddr string `yaml:"server_addr"`

	// Email and Password are the list service account credentials.
	// Required in binary mode, where they are passed to the server
	// binary.
	Email    string `yaml:"email"`
	Password string `yaml:"password"`

	// ServerBinary is the path (or PATH-resolved name) of the bundled
	// list server. Setting it selects binary mode.
	ServerBinary string `yaml:"server_binary"`

	// DefaultList is used by services and intents that name no list.
	DefaultList string `yaml:"default_list"`

	// RefreshInterval is how often list contents are polled, in
	// minutes.
	RefreshInterval int `yaml:"refresh_interval"`
}

// Default returns the default configuration. It is not valid on its
// own: a connection mode must be configured.
func Default() *Config {
	return &Config{
		RefreshInterval: schema.DefaultRefreshInterval,
	}
}

// Load loads configuration from the file named by ANYLIST_CONFIG.
// There is no fallback location: if the variable is unset, Load fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your anylist.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Values
// absent from the file keep their defaults. ${VAR} and
// ${VAR:-default} references in string values are expanded, so
// credentials can be kept out of the file itself. A value that must
// contain a literal "${" (a password, say) writes it as "$${".
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.expandVariables()
	return cfg, nil
}

// loadFile decodes one YAML file over the current values. Unknown keys
// are rejected so that a misspelled option does not silently keep its
// default.
func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: defaults only.
			return nil
		}
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// string options.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.ServerAddr = expandVars(c.ServerAddr, vars)
	c.Email = expandVars(c.Email, vars)
	c.Password = expandVars(c.Password, vars)
	c.ServerBinary = expandVars(c.ServerBinary, vars)
	c.DefaultList = expandVars(c.DefaultList, vars)
}

var varPattern = regexp.MustCompile(`\$\$\{|\$\{([^}:]+)(?::-([^}]*))?\}`)

// escapedReference is the escape for a literal "${".
const escapedReference = "$${"

// expandVars expands ${VAR} and ${VAR:-default} patterns. vars is
// consulted before the process environment. "$${" becomes a literal
// "${" and starts no reference.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		if match == escapedReference {
			return "${"
		}
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. Exactly one connection
// mode must be configured: addon (server_addr) or binary
// (server_binary with email and password).
func (c *Config) Validate() error {
	var errs []error

	addon := c.ServerAddr != ""
	binary := c.ServerBinary != ""
	switch {
	case addon && binary:
		errs = append(errs, fmt.Errorf("%s and %s are mutually exclusive", schema.ConfigServerAddr, schema.ConfigServerBinary))
	case !addon && !binary:
		errs = append(errs, fmt.Errorf("one of %s or %s is required", schema.ConfigServerAddr, schema.ConfigServerBinary))
	}

	if addon {
		if err := validateServerAddr(c.ServerAddr); err != nil {
			errs = append(errs, err)
		}
	}
	if binary {
		if c.Email == "" {
			errs = append(errs, fmt.Errorf("%s is required with %s", schema.ConfigEmail, schema.ConfigServerBinary))
		} else if !strings.Contains(c.Email, "@") {
			errs = append(errs, fmt.Errorf("%s %q is not an email address", schema.ConfigEmail, c.Email))
		}
		if c.Password == "" {
			errs = append(errs, fmt.Errorf("%s is required with %s", schema.ConfigPassword, schema.ConfigServerBinary))
		}
	}

	if c.RefreshInterval < schema.MinRefreshInterval || c.RefreshInterval > schema.MaxRefreshInterval {
		errs = append(errs, fmt.Errorf("%s must be between %d and %d minutes, got %d",
			schema.ConfigRefreshInterval, schema.MinRefreshInterval, schema.MaxRefreshInterval, c.RefreshInterval))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateServerAddr(address string) error {
	parsed, err := url.Parse(address)
	if err != nil {
		return fmt.Errorf("%s: %w", schema.ConfigServerAddr, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s %q must be an http or https URL", schema.ConfigServerAddr, address)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s %q has no host", schema.ConfigServerAddr, address)
	}
	return nil
}

// Mode returns the connection mode the configuration selects. A
// configuration with server_addr is in addon mode; anything else is
// binary mode.
func (c *Config) Mode() schema.ConnectionMode {
	if c.ServerAddr != "" {
		return schema.ModeAddon
	}
	return schema.ModeBinary
}

// ServerURL returns the base URL requests are sent to: server_addr in
// addon mode, the local port of the launched binary otherwise.
func (c *Config) ServerURL() string {
	if c.Mode() == schema.ModeAddon {
		return strings.TrimRight(c.ServerAddr, "/")
	}
	return fmt.Sprintf("http://127.0.0.1:%d", schema.DefaultServerPort)
}

// Refresh returns the refresh interval as a duration.
func (c *Config) Refresh() time.Duration {
	return time.Duration(c.RefreshInterval) * time.Minute
}

// ServerBinaryPath resolves server_binary to an executable path. A
// value containing a path separator is used as-is; a bare name is
// looked up in PATH.
func (c *Config) ServerBinaryPath() (string, error) {
	if c.ServerBinary == "" {
		return "", fmt.Errorf("%s is not configured", schema.ConfigServerBinary)
	}
	if strings.ContainsRune(c.ServerBinary, filepath.Separator) {
		info, err := os.Stat(c.ServerBinary)
		if err != nil {
			return "", fmt.Errorf("%s: %w", schema.ConfigServerBinary, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s %s is a directory", schema.ConfigServerBinary, c.ServerBinary)
		}
		return c.ServerBinary, nil
	}
	path, err := exec.LookPath(c.ServerBinary)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH", c.ServerBinary)
	}
	return path, nil
}

// Map returns the configuration keyed by option name, in the form
// carried by config:updated and integration:initialized events. Unset
// string options are omitted and the password is redacted.
func (c *Config) Map() map[string]any {
	values := make(map[string]any, 6)
	for _, option := range c.options() {
		if option.value == "" {
			continue
		}
		if option.secret {
			values[option.key] = redacted
		} else {
			values[option.key] = option.value
		}
	}
	values[schema.ConfigRefreshInterval] = c.RefreshInterval
	return values
}

// ChangedFields returns the sorted option names whose values differ
// between previous and next. Secrets are compared by value, so a
// password change is reported even though [Config.Map] redacts it.
func ChangedFields(previous, next *Config) []string {
	var changed []string
	before := previous.options()
	after := next.options()
	for i := range before {
		if before[i].value != after[i].value {
			changed = append(changed, before[i].key)
		}
	}
	if previous.RefreshInterval != next.RefreshInterval {
		changed = append(changed, schema.ConfigRefreshInterval)
	}
	slices.Sort(changed)
	return changed
}

type option struct {
	key    string
	value  string
	secret bool
}

func (c *Config) options() []option {
	return []option{
		{key: schema.ConfigServerAddr, value: c.ServerAddr},
		{key: schema.ConfigEmail, value: c.Email},
		{key: schema.ConfigPassword, value: c.Password, secret: true},
		{key: schema.ConfigServerBinary, value: c.ServerBinary},
		{key: schema.ConfigDefaultList, value: c.DefaultList},
	}
}
