package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/log"
	"github.com/footprint-tools/treesh/internal/paths"
)

// ReadLines returns the raw lines of ~/.treeshrc, creating the file with
// documented defaults when it does not exist or is empty.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

func initializeDefaults() []string {
	lines := []string{
		"# treesh configuration",
		"# Edit values below; changes apply the next time treesh starts.",
		"",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		if key.Section != section {
			if section != "" {
				lines = append(lines, "")
			}
			lines = append(lines, "# "+key.Section)
			section = key.Section
		}

		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}
		lines = append(lines, key.Name+"="+quoteValue(key.Default))
	}

	return lines
}
