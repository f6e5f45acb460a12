// Package config loads nested configuration documents and addresses them
// with dotted keys. Every read and write goes through an optics path, so
// "server.ports.0" reads slot 0 of the ports sequence and writing a missing
// key creates the intermediate levels.
package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/codec"
	"github.com/authcorp/optics/errors"
)

// Config holds a configuration document and its defaults. Chained loaders
// that cannot return an error record it for Err.
type Config struct {
	values   any
	defaults any
	errs     []error
}

// New creates a new empty Config.
func New() *Config {
	return &Config{
		values:   map[string]any{},
		defaults: map[string]any{},
	}
}

// PathOf splits a dotted key into an optics path. Segments that parse as
// non-negative integers address sequence slots.
func PathOf(key string) optics.View {
	if key == "" {
		return optics.Absent
	}
	segments := strings.Split(key, ".")
	keys := make([]any, len(segments))
	for i, s := range segments {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			keys[i] = n
			continue
		}
		keys[i] = s
	}
	return optics.Path(keys...)
}

// WithDefaults sets default values by dotted key.
func (c *Config) WithDefaults(defaults map[string]any) *Config {
	for _, k := range slices.Sorted(maps.Keys(defaults)) {
		next, err := optics.Set(c.defaults, PathOf(k), defaults[k])
		if err != nil {
			c.errs = append(c.errs, errors.Wrapf(err, "default %s", k))
			continue
		}
		c.defaults = next
	}
	return c
}

// LoadFile merges a JSON or YAML document into the configuration. Top-level
// keys of the file replace existing ones.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	return c.Load(data, codec.FormatOf(path))
}

// Load merges an encoded document into the configuration.
func (c *Config) Load(data []byte, format codec.Format) error {
	doc, err := codec.Decode(data, format)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	top, ok := doc.(map[string]any)
	if !ok {
		return errors.TypeMismatch("load", "mapping", doc)
	}
	for k, v := range top {
		next, err := optics.Set(c.values, optics.Key(k), v)
		if err != nil {
			return err
		}
		c.values = next
	}
	return nil
}

// LoadEnv loads configuration from environment variables with prefix.
// APP_LOG_LEVEL is stored under log.level for prefix APP. Variables are
// applied in sorted order.
func (c *Config) LoadEnv(prefix string) *Config {
	environ := os.Environ()
	slices.Sort(environ)
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" && !strings.HasPrefix(key, prefix+"_") {
			continue
		}
		configKey := strings.ToLower(strings.ReplaceAll(
			strings.TrimPrefix(key, prefix+"_"), "_", "."))
		if err := c.Set(configKey, value); err != nil {
			c.errs = append(c.errs, errors.Wrapf(err, "environment variable %s", key))
		}
	}
	return c
}

// Err reports every write WithDefaults or LoadEnv could not apply. The
// writes that succeeded are kept.
func (c *Config) Err() error {
	return errors.Join(c.errs...)
}

// Set writes a value under a dotted key, creating missing levels.
func (c *Config) Set(key string, value any) error {
	next, err := optics.Set(c.values, PathOf(key), value)
	if err != nil {
		return errors.Wrapf(err, "config key %s", key)
	}
	c.values = next
	return nil
}

// Unset removes a dotted key. Unsetting a key that is not set is a no-op.
func (c *Config) Unset(key string) error {
	view := PathOf(key)
	found, err := optics.Has(c.values, view)
	if err != nil {
		return errors.Wrapf(err, "config key %s", key)
	}
	if !found {
		return nil
	}
	next, err := optics.Remove(c.values, view)
	if err != nil {
		return errors.Wrapf(err, "config key %s", key)
	}
	c.values = next
	return nil
}

// Get returns a configuration value, falling back to defaults.
func (c *Config) Get(key string) (any, bool) {
	view := PathOf(key)
	for _, doc := range []any{c.values, c.defaults} {
		if found, err := optics.Has(doc, view); err != nil || !found {
			continue
		}
		if v, err := optics.Get(doc, view); err == nil {
			return v, true
		}
	}
	return nil, false
}

// Sub returns the subtree under key as its own Config.
func (c *Config) Sub(key string) *Config {
	sub := New()
	if v, err := optics.Get(c.values, PathOf(key)); err == nil && v != nil {
		sub.values = v
	}
	if v, err := optics.Get(c.defaults, PathOf(key)); err == nil && v != nil {
		sub.defaults = v
	}
	return sub
}

// GetString returns a string configuration value.
func (c *Config) GetString(key string) string {
	v, ok := c.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetInt returns an int configuration value.
func (c *Config) GetInt(key string) int {
	v, ok := c.Get(key)
	if !ok {
		return 0
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		i, _ := strconv.Atoi(val)
		return i
	}
	return 0
}

// GetBool returns a bool configuration value.
func (c *Config) GetBool(key string) bool {
	v, ok := c.Get(key)
	if !ok {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1" || val == "yes"
	}
	return false
}

// GetDuration returns a duration configuration value. Integers are seconds.
func (c *Config) GetDuration(key string) time.Duration {
	v, ok := c.Get(key)
	if !ok {
		return 0
	}
	switch val := v.(type) {
	case time.Duration:
		return val
	case int:
		return time.Duration(val) * time.Second
	case float64:
		return time.Duration(val * float64(time.Second))
	case string:
		d, _ := time.ParseDuration(val)
		return d
	}
	return 0
}

// GetStringSlice returns a string slice configuration value.
func (c *Config) GetStringSlice(key string) []string {
	v, ok := c.Get(key)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return strings.Split(val, ",")
	}
	return nil
}

// Validate checks that required keys are present.
func (c *Config) Validate(required ...string) error {
	var missing []string
	for _, key := range required {
		if _, ok := c.Get(key); !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingKeys: missing}
	}
	return nil
}

// ValidationError represents configuration validation errors.
type ValidationError struct {
	MissingKeys []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required config keys: %s", strings.Join(e.MissingKeys, ", "))
}

// Document returns the loaded document without defaults.
func (c *Config) Document() any {
	return c.values
}
