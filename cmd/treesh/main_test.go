package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/log"
	"github.com/footprint-tools/treesh/internal/shell"
	"github.com/footprint-tools/treesh/internal/terminal"
)

func setupTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("NO_COLOR", "1")
	return dir
}

func runWith(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Flags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "help", args: []string{"--help"}, wantCode: 0, wantStdout: "Usage:"},
		{name: "short help", args: []string{"-h"}, wantCode: 0, wantStdout: "--browse"},
		{name: "version", args: []string{"--version"}, wantCode: 0, wantStdout: "treesh dev"},
		{name: "unknown flag", args: []string{"--bogus"}, wantCode: 2, wantStderr: "bogus"},
		{name: "positional argument", args: []string{"send"}, wantCode: 2, wantStderr: "unexpected argument 'send'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTempHome(t)

			code, stdout, stderr := runWith(t, "", tt.args...)
			require.Equal(t, tt.wantCode, code)
			require.Contains(t, stdout, tt.wantStdout)
			require.Contains(t, stderr, tt.wantStderr)
		})
	}
}

func TestRun_Session(t *testing.T) {
	setupTempHome(t)

	input := "show\t\nsend mobile binding update\nsend mobile binding ack\nshow table\nsend mobile\nnope\nexit\n"
	code, stdout, stderr := runWith(t, input, "--db", ":memory:")

	require.Equal(t, 0, code, stderr)
	require.Empty(t, stderr)
	require.Contains(t, stdout, "command")
	require.Contains(t, stdout, "binding update sent seq=1")
	require.Contains(t, stdout, "binding acknowledged seq=1 node=mn-1")
	require.Contains(t, stdout, "acknowledged")
	require.Contains(t, stdout, "'send mobile' has no action bound")
	require.Contains(t, stdout, "'nope' is not a command")
	require.True(t, strings.HasSuffix(stdout, "Goodbye!\n"), stdout)
}

func TestRun_EndOfInput(t *testing.T) {
	setupTempHome(t)

	code, stdout, _ := runWith(t, "show config\n", "--db", ":memory:")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "mobile_node")
	require.NotContains(t, stdout, "Goodbye!")
}

func TestRun_CommandFile(t *testing.T) {
	dir := setupTempHome(t)

	file := filepath.Join(dir, "commands.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`commands:
  - name: hello
    parent: root
    depth: 0
    description: Say hello
    action: echo
  - name: stray
    parent: missing
    depth: 0
`), 0600))

	code, stdout, stderr := runWith(t, "hello\nhello world\nquit\n", "--db", ":memory:", "--commands", file)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, `executing "hello"`)
	require.Contains(t, stdout, "'hello world' is not a command")
	require.NotContains(t, stdout, `executing "hello world"`)
	require.Contains(t, stderr, "stray")
}

func TestRun_CommandFileErrors(t *testing.T) {
	dir := setupTempHome(t)

	code, _, stderr := runWith(t, "", "--db", ":memory:", "--commands", filepath.Join(dir, "absent.yaml"))
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "absent.yaml")
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := setupTempHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".treeshrc"), []byte("not a pair\n"), 0600))

	code, _, stderr := runWith(t, "", "--db", ":memory:")
	require.Equal(t, 1, code)
	require.NotEmpty(t, stderr)
}

func TestRun_PromptFromConfig(t *testing.T) {
	dir := setupTempHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".treeshrc"), []byte("prompt=\"treesh$ \"\n"), 0600))

	code, stdout, _ := runWith(t, "exit\n", "--db", ":memory:")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "treesh$ exit")
}

func TestWaitShell(t *testing.T) {
	root := dispatchers.Build(nil).Root

	t.Run("loop ends", func(t *testing.T) {
		sh := shell.New(root, terminal.NewDecoder(strings.NewReader("exit\n")), &bytes.Buffer{}, shell.Options{})
		signals := make(chan os.Signal, 1)

		require.NoError(t, waitShell(shell.Start(sh), signals, log.NopLogger{}))
	})

	t.Run("signal arrives while the loop waits for input", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		sh := shell.New(root, terminal.NewDecoder(pr), &bytes.Buffer{}, shell.Options{})
		signals := make(chan os.Signal, 1)
		signals <- syscall.SIGTERM

		err := waitShell(shell.Start(sh), signals, log.NopLogger{})
		require.EqualError(t, err, "interrupted by signal: terminated")
	})
}

func TestRun_SetTheme(t *testing.T) {
	dir := setupTempHome(t)
	rc := filepath.Join(dir, ".treeshrc")

	code, stdout, _ := runWith(t, "set theme neon\nexit\n")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "theme set to neon")

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	require.Contains(t, string(data), "theme=neon")

	code, stdout, _ = runWith(t, "set theme default\nexit\n")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "theme set to default")

	data, err = os.ReadFile(rc)
	require.NoError(t, err)
	require.NotContains(t, string(data), "theme=")
}
