package browse

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/treesh/internal/dispatchers"
)

// Run shows the browser on the alternate screen and returns the selected
// command, or nil when the user quit without choosing one.
func Run(root *dispatchers.CommandNode, opts ...tea.ProgramOption) (*dispatchers.CommandNode, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)

	final, err := tea.NewProgram(New(root), opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("browse: unexpected model %T", final)
	}
	return m.Selected(), nil
}
