package config

import (
	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/paths"
)

// Defaults holds values used when a key is absent from ~/.treeshrc.
// Dynamic defaults are computed on use.
var Defaults = map[string]func() string{
	"bindings_db": paths.BindingsDBPath,
}

func init() {
	for _, key := range domain.ConfigKeys {
		if _, ok := Defaults[key.Name]; ok {
			continue
		}
		value := key.Default
		Defaults[key.Name] = func() string { return value }
	}
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	cfg, err := load()
	if err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
// A missing or unreadable file yields the defaults alone.
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := load()
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

// Validate reports a parse error in ~/.treeshrc, if any.
func Validate() error {
	_, err := load()
	return err
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
