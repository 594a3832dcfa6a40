package actions

import (
	"maps"
	"slices"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/ui/style"
)

// Action names a command file may bind to.
const (
	NameBindingUpdate = "binding_update"
	NameBindingAck    = "binding_ack"
	NameShowTable     = "show_table"
	NameShowCommand   = "show_command"
	NameShowConfig    = "show_config"
	NameShowLog       = "show_log"
	NameShowTheme     = "show_theme"
	NameEcho          = "echo"
)

// Registry maps action names to actions.
type Registry map[string]dispatchers.Action

// NewRegistry builds every action over deps, including one theme_<name>
// action per theme.
func NewRegistry(deps Deps) Registry {
	r := Registry{
		NameBindingUpdate: SendBindingUpdate(deps),
		NameBindingAck:    SendBindingAck(deps),
		NameShowTable:     ShowTable(deps),
		NameShowCommand:   ShowCommand(deps),
		NameShowConfig:    ShowConfig(deps),
		NameShowLog:       ShowLog(deps),
		NameShowTheme:     ShowTheme(deps),
		NameEcho:          Echo(deps),
	}
	for _, name := range style.ThemeNames() {
		r[ThemeActionName(name)] = SetTheme(deps, name)
	}
	return r
}

// Lookup returns the action registered under name.
func (r Registry) Lookup(name string) (dispatchers.Action, bool) {
	a, ok := r[name]
	return a, ok
}

// Names returns the registered names in order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}
