package config

import (
	"fmt"
	"strings"
)

const byteOrderMark = "\uFEFF"

// Parse turns key=value lines into a map. Blank lines and lines starting
// with # are skipped. Values may be double quoted to keep surrounding
// spaces; unquoted values lose a trailing " # comment". Later keys win.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key=value, got %q", i+1, trimmed)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", i+1)
		}

		cfg[key] = parseValue(value)
	}

	return cfg, nil
}

func parseValue(raw string) string {
	value := strings.TrimSpace(raw)

	if len(value) >= 2 && strings.HasPrefix(value, `"`) {
		if end := strings.Index(value[1:], `"`); end >= 0 {
			return value[1 : end+1]
		}
	}

	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return value
}

// quoteValue quotes values that would not survive Parse unquoted.
func quoteValue(value string) string {
	if value != strings.TrimSpace(value) || strings.Contains(value, " #") {
		return `"` + value + `"`
	}
	return value
}
