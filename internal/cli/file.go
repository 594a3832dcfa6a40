package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/treesh/internal/actions"
	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/usage"
)

// commandFile is the YAML layout of an extra command table:
//
//	commands:
//	  - name: ping
//	    parent: root
//	    depth: 0
//	    description: Print the line back
//	    action: echo
type commandFile struct {
	Commands []commandEntry `yaml:"commands"`
}

type commandEntry struct {
	Name        string `yaml:"name"`
	Parent      string `yaml:"parent"`
	Depth       uint   `yaml:"depth"`
	Description string `yaml:"description"`
	Action      string `yaml:"action"`
}

// LoadCommandFile reads extra command declarations from path. Entries keep
// file order. An action name missing from reg is logged and the command is
// declared without an action.
func LoadCommandFile(path string, reg actions.Registry, logger domain.Logger) ([]dispatchers.CommandSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, usage.CommandFile(path, err)
	}

	specs, err := ParseCommandFile(data, reg, logger)
	if err != nil {
		return nil, usage.CommandFile(path, err)
	}

	logger.Info("cli: loaded %d commands from %s", len(specs), path)
	return specs, nil
}

// ParseCommandFile decodes a single YAML document. Unknown fields are
// rejected.
func ParseCommandFile(data []byte, reg actions.Registry, logger domain.Logger) ([]dispatchers.CommandSpec, error) {
	var file commandFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: expected a single document")
	}

	specs := make([]dispatchers.CommandSpec, 0, len(file.Commands))
	for i, entry := range file.Commands {
		spec, err := entry.toSpec(reg, logger)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func (e commandEntry) toSpec(reg actions.Registry, logger domain.Logger) (dispatchers.CommandSpec, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return dispatchers.CommandSpec{}, errors.New("name is required")
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return dispatchers.CommandSpec{}, fmt.Errorf("name %q contains whitespace", name)
	}

	parent := strings.TrimSpace(e.Parent)
	if parent == "" {
		parent = dispatchers.RootName
	}

	spec := dispatchers.CommandSpec{
		Name:        name,
		Parent:      parent,
		Depth:       e.Depth,
		Description: e.Description,
	}

	if e.Action != "" {
		action, ok := reg.Lookup(e.Action)
		if !ok {
			logger.Warn("cli: command %q names unknown action %q, known: %s",
				name, e.Action, strings.Join(reg.Names(), ", "))
		} else {
			spec.Action = action
		}
	}

	return spec, nil
}
