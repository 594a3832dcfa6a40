package actions

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/format"
	"github.com/footprint-tools/treesh/internal/ui/style"
)

var bindingHeaders = []string{"SEQ", "MOBILE NODE", "STATUS", "UPDATED", "ID"}

// ShowTable prints the mobile binding cache, newest first.
func ShowTable(deps Deps) dispatchers.Action {
	return bind("show table", deps, showTable)
}

func showTable(_ string, deps Deps) error {
	if deps.Store == nil {
		return errors.New("no binding store")
	}

	bindings, err := deps.Store.List()
	if err != nil {
		return fmt.Errorf("list bindings: %w", err)
	}

	if len(bindings) == 0 {
		_, _ = deps.Println(deps.Styler.Muted("no bindings recorded"))
		return nil
	}

	deps.Block(renderBindings(bindings, deps.Layout))
	return nil
}

// renderBindings draws bindings as a bordered table. Colors follow the
// active theme and vanish when styling is disabled.
func renderBindings(bindings []domain.Binding, layout format.Layout) string {
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		rows = append(rows, []string{
			fmt.Sprintf("%d", b.Sequence),
			b.MobileNode,
			b.Status.String(),
			layout.DateTime(b.UpdatedAt.Local()),
			b.ID,
		})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.BorderStyle()).
		Headers(bindingHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return style.HeaderStyle().Inherit(cell)
			case col == len(bindingHeaders)-1:
				return style.MutedStyle().Inherit(cell)
			default:
				return cell
			}
		})

	return t.String()
}
