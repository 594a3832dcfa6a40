package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/ui/style"
)

const breadcrumbSep = " › "

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(style.Header(m.breadcrumb()))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, item := range m.items {
		nameWidth = max(nameWidth, lipgloss.Width(item.Name))
	}

	for i, item := range m.visibleRange() {
		pad := strings.Repeat(" ", nameWidth-lipgloss.Width(item.Name))

		switch {
		case i+m.offset() == m.cursor:
			b.WriteString(style.Accent("> " + item.Name))
		case item.HasAction:
			b.WriteString("  " + style.Info(item.Name))
		default:
			b.WriteString("  " + item.Name)
		}
		b.WriteString(pad)

		if item.Description != "" {
			b.WriteString("  " + style.Muted(item.Description))
		}
		b.WriteString("\n")
	}

	if len(m.items) == 0 {
		b.WriteString(style.Muted("  (empty)") + "\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(style.Warning(m.notice) + "\n")
	}
	b.WriteString(m.helpLine())

	return b.String()
}

func (m Model) breadcrumb() string {
	return strings.Join(append([]string{"treesh"}, m.path...), breadcrumbSep)
}

func (m Model) helpLine() string {
	parts := make([]string, 0, len(keys.ShortHelp()))
	for _, binding := range keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+style.Muted(h.Desc))
	}
	return strings.Join(parts, style.Muted(" • "))
}

// listHeight is the number of rows left for entries once the breadcrumb,
// blank lines, notice and help are drawn. Zero means unknown.
func (m Model) listHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(1, m.height-6)
}

// offset scrolls the list so that the cursor stays visible.
func (m Model) offset() int {
	h := m.listHeight()
	if h == 0 || m.cursor < h {
		return 0
	}
	return m.cursor - h + 1
}

func (m Model) visibleRange() []dispatchers.Suggestion {
	h := m.listHeight()
	if h == 0 {
		return m.items
	}
	start := m.offset()
	end := min(len(m.items), start+h)
	return m.items[start:end]
}
