package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTempHome points HOME at a temporary directory for the test.
func setupTempHome(t *testing.T) string {
	t.Helper()
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	return tempHome
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name         string
		setupContent string
		wantLines    []string
	}{
		{
			name:         "single line",
			setupContent: "prompt=$ \n",
			wantLines:    []string{"prompt=$ "},
		},
		{
			name:         "multiple lines",
			setupContent: "theme=neon\nlog_level=debug\nenable_log=false\n",
			wantLines:    []string{"theme=neon", "log_level=debug", "enable_log=false"},
		},
		{
			name:         "lines with comments",
			setupContent: "# Shell\nprompt=>>\n",
			wantLines:    []string{"# Shell", "prompt=>>"},
		},
		{
			name:         "Windows CRLF line endings",
			setupContent: "theme=mono\r\nlog_level=warn\r\n",
			wantLines:    []string{"theme=mono", "log_level=warn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempHome := setupTempHome(t)
			configPath := filepath.Join(tempHome, ".treeshrc")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.setupContent), 0644))

			got, err := ReadLines()
			require.NoError(t, err)
			require.Equal(t, tt.wantLines, got)

			info, err := os.Stat(configPath)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestReadLines_CreatesFileWithDefaults(t *testing.T) {
	tempHome := setupTempHome(t)
	configPath := filepath.Join(tempHome, ".treeshrc")

	_, err := os.Stat(configPath)
	require.True(t, os.IsNotExist(err))

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Contains(t, lines, `prompt="> "`)
	require.Contains(t, lines, "theme=default")
	require.Contains(t, lines, "# commands_file=")
	require.Contains(t, lines, "# Logging")

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "enable_log=true\n")

	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Equal(t, "> ", cfg["prompt"])
	require.NotContains(t, cfg, "commands_file")
}

func TestReadLines_EmptyFileGetsDefaults(t *testing.T) {
	tempHome := setupTempHome(t)
	configPath := filepath.Join(tempHome, ".treeshrc")
	require.NoError(t, os.WriteFile(configPath, nil, 0600))

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Contains(t, lines, "log_level=info")
}

func TestWriteLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "empty lines", lines: []string{}},
		{name: "single line", lines: []string{"theme=neon"}},
		{name: "multiple lines", lines: []string{"theme=neon", "log_level=debug", "prompt=$"}},
		{name: "lines with comments", lines: []string{"# Display", "theme=mono", "# end"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempHome := setupTempHome(t)

			require.NoError(t, WriteLines(tt.lines))

			configPath := filepath.Join(tempHome, ".treeshrc")
			content, err := os.ReadFile(configPath)
			require.NoError(t, err)

			expected := ""
			for _, line := range tt.lines {
				expected += line + "\n"
			}
			require.Equal(t, expected, string(content))

			info, err := os.Stat(configPath)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())

			leftovers, err := filepath.Glob(filepath.Join(tempHome, ".treeshrc.tmp.*"))
			require.NoError(t, err)
			require.Empty(t, leftovers)
		})
	}
}

func TestWriteLines_Overwrites(t *testing.T) {
	tempHome := setupTempHome(t)
	configPath := filepath.Join(tempHome, ".treeshrc")

	require.NoError(t, WriteLines([]string{"theme=neon", "log_level=debug"}))
	require.NoError(t, WriteLines([]string{"theme=mono"}))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, "theme=mono\n", string(content))
}

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		value        string
		wantLines    []string
		wantUpdated  bool
	}{
		{
			name:         "add to empty",
			initialLines: []string{},
			key:          "theme",
			value:        "neon",
			wantLines:    []string{"theme=neon"},
		},
		{
			name:         "add new key",
			initialLines: []string{"theme=neon"},
			key:          "log_level",
			value:        "debug",
			wantLines:    []string{"theme=neon", "log_level=debug"},
		},
		{
			name:         "update existing key",
			initialLines: []string{"theme=neon", "log_level=info"},
			key:          "theme",
			value:        "mono",
			wantLines:    []string{"theme=mono", "log_level=info"},
			wantUpdated:  true,
		},
		{
			name:         "preserves comments and blank lines",
			initialLines: []string{"# Shell", "", "prompt=$"},
			key:          "theme",
			value:        "neon",
			wantLines:    []string{"# Shell", "", "prompt=$", "theme=neon"},
		},
		{
			name:         "handles whitespace in existing line",
			initialLines: []string{"  theme  =  neon  "},
			key:          "theme",
			value:        "mono",
			wantLines:    []string{"theme=mono"},
			wantUpdated:  true,
		},
		{
			name:         "keeps inline comment",
			initialLines: []string{"log_level=info # default"},
			key:          "log_level",
			value:        "debug",
			wantLines:    []string{"log_level=debug # default"},
			wantUpdated:  true,
		},
		{
			name:         "quotes value with trailing space",
			initialLines: []string{"prompt=$"},
			key:          "prompt",
			value:        "> ",
			wantLines:    []string{`prompt="> "`},
			wantUpdated:  true,
		},
		{
			name:         "commented key is not updated",
			initialLines: []string{"# commands_file="},
			key:          "commands_file",
			value:        "/tmp/extra.yaml",
			wantLines:    []string{"# commands_file=", "commands_file=/tmp/extra.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.initialLines, tt.key, tt.value)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		wantLines    []string
		wantRemoved  bool
	}{
		{
			name:         "remove from empty",
			initialLines: []string{},
			key:          "theme",
			wantLines:    nil,
		},
		{
			name:         "remove existing key",
			initialLines: []string{"theme=neon", "log_level=debug"},
			key:          "theme",
			wantLines:    []string{"log_level=debug"},
			wantRemoved:  true,
		},
		{
			name:         "remove non-existent key",
			initialLines: []string{"theme=neon"},
			key:          "prompt",
			wantLines:    []string{"theme=neon"},
		},
		{
			name:         "preserves comments and blank lines",
			initialLines: []string{"# Display", "", "theme=neon", "log_level=debug"},
			key:          "theme",
			wantLines:    []string{"# Display", "", "log_level=debug"},
			wantRemoved:  true,
		},
		{
			name:         "removes duplicates",
			initialLines: []string{"theme=neon", "  theme = mono "},
			key:          "theme",
			wantLines:    nil,
			wantRemoved:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := Unset(tt.initialLines, tt.key)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantRemoved, removed)
		})
	}
}

func TestProvider_SetAndUnset(t *testing.T) {
	tempHome := setupTempHome(t)
	p := NewProvider()

	require.NoError(t, p.Set("theme", "neon"))
	value, ok := p.Get("theme")
	require.True(t, ok)
	require.Equal(t, "neon", value)

	require.NoError(t, p.Set("prompt", "treesh> "))
	value, ok = p.Get("prompt")
	require.True(t, ok)
	require.Equal(t, "treesh> ", value)

	require.NoError(t, p.Unset("theme"))
	value, ok = p.Get("theme")
	require.True(t, ok)
	require.Equal(t, "default", value)

	_, err := os.Stat(filepath.Join(tempHome, ".treeshrc.lock"))
	require.True(t, os.IsNotExist(err), "lock file must be released")
}

func TestWithLock_TimesOutWhileHeld(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the lock timeout")
	}
	tempHome := setupTempHome(t)
	lockPath := filepath.Join(tempHome, ".treeshrc.lock")
	require.NoError(t, os.WriteFile(lockPath, []byte("1"), 0600))

	called := false
	err := WithLock(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrLockTimeout)
	require.False(t, called)
}
