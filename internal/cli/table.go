package cli

import (
	"strings"

	"github.com/footprint-tools/treesh/internal/actions"
	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/ui/style"
)

// Table returns the built-in command declarations, parents first. Actions
// are looked up in reg; a missing name leaves the command without one.
func Table(reg actions.Registry) []dispatchers.CommandSpec {
	specs := []dispatchers.CommandSpec{
		{Name: "send", Parent: dispatchers.RootName, Depth: 0, Description: "Send a command"},
		{Name: "mobile", Parent: "send", Depth: 1, Description: "Mobile-related commands"},
		{Name: "binding", Parent: "mobile", Depth: 2, Description: "Binding commands"},
		{Name: "update", Parent: "binding", Depth: 3, Description: "Send binding update", Action: reg[actions.NameBindingUpdate]},
		{Name: "ack", Parent: "binding", Depth: 3, Description: "Send binding acknowledgment", Action: reg[actions.NameBindingAck]},

		{Name: "show", Parent: dispatchers.RootName, Depth: 0, Description: "Show information"},
		{Name: "table", Parent: "show", Depth: 1, Description: "Show the binding table", Action: reg[actions.NameShowTable]},
		{Name: "command", Parent: "show", Depth: 1, Description: "Show available commands", Action: reg[actions.NameShowCommand]},
		{Name: "config", Parent: "show", Depth: 1, Description: "Show the effective configuration", Action: reg[actions.NameShowConfig]},

		{Name: "view", Parent: dispatchers.RootName, Depth: 0, Description: "View local treesh state"},
		{Name: "log", Parent: "view", Depth: 1, Description: "Print the end of the log file", Action: reg[actions.NameShowLog]},
		{Name: "themes", Parent: "view", Depth: 1, Description: "List color themes", Action: reg[actions.NameShowTheme]},

		{Name: "set", Parent: dispatchers.RootName, Depth: 0, Description: "Change settings"},
		{Name: "theme", Parent: "set", Depth: 1, Description: "Select the color theme"},
	}

	for _, name := range style.ThemeNames() {
		specs = append(specs, dispatchers.CommandSpec{
			Name:        name,
			Parent:      "theme",
			Depth:       2,
			Description: themeDescription(name),
			Action:      reg[actions.ThemeActionName(name)],
		})
	}

	return specs
}

func themeDescription(name string) string {
	base, variant, ok := strings.Cut(name, "-")
	if !ok {
		return "Use " + name + " colors matched to the terminal background"
	}
	return "Use " + base + " colors for a " + variant + " background"
}

// BuildTree builds the built-in table followed by extra and logs every
// declaration that could not be attached.
func BuildTree(reg actions.Registry, extra []dispatchers.CommandSpec, logger domain.Logger) *dispatchers.Tree {
	specs := append(Table(reg), extra...)
	tree := dispatchers.Build(specs)

	for _, problem := range tree.Problems() {
		logger.Warn("cli: %v", problem)
	}
	logger.Debug("cli: built command tree from %d declarations, %d skipped", len(specs), len(tree.Orphans))

	return tree
}
