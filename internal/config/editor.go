package config

import "strings"

// Set replaces the value of key in lines, preserving an inline comment, or
// appends key=value. The boolean reports whether an existing line changed.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		k, oldValue, ok := strings.Cut(trimmed, "=")
		if !ok || strings.TrimSpace(k) != key {
			continue
		}

		if commentIdx := strings.Index(oldValue, " #"); commentIdx >= 0 {
			comment := strings.TrimSpace(oldValue[commentIdx:])
			lines[i] = key + "=" + quoteValue(value) + " " + comment
		} else {
			lines[i] = key + "=" + quoteValue(value)
		}
		return lines, true
	}

	lines = append(lines, key+"="+quoteValue(value))
	return lines, false
}

// Unset drops every line assigning key.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		k, _, ok := strings.Cut(trimmed, "=")
		if ok && strings.TrimSpace(k) == key {
			removed = true
			continue
		}

		out = append(out, line)
	}

	return out, removed
}
