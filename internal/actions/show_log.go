package actions

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/footprint-tools/treesh/internal/dispatchers"
)

const logTailLines = 50

// logLineRegex matches lines like: [2026-01-29 10:30:45] INFO: message
var logLineRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s?(.*)$`)

// ShowLog prints the last lines of the treesh log file.
func ShowLog(deps Deps) dispatchers.Action {
	return bind("view log", deps, showLog)
}

func showLog(_ string, deps Deps) error {
	if deps.LogFilePath == nil || deps.ReadFile == nil {
		return errors.New("log file not available")
	}
	logPath := deps.LogFilePath()

	data, err := deps.ReadFile(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		_, _ = deps.Println(deps.Styler.Muted("No log file found at " + logPath))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		_, _ = deps.Println(deps.Styler.Muted("Log file is empty"))
		return nil
	}

	start := max(len(lines)-logTailLines, 0)
	for _, line := range lines[start:] {
		_, _ = deps.Println(colorizeLogLine(line, deps))
	}
	return nil
}

func colorizeLogLine(line string, deps Deps) string {
	m := logLineRegex.FindStringSubmatch(line)
	if m == nil {
		return line
	}

	level := m[2]
	switch level {
	case "ERROR":
		level = deps.Styler.Error(level)
	case "WARN":
		level = deps.Styler.Warning(level)
	case "INFO":
		level = deps.Styler.Info(level)
	default:
		level = deps.Styler.Muted(level)
	}
	return fmt.Sprintf("%s %s %s", deps.Styler.Muted(m[1]), level, m[3])
}
