package actions

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/ui/style"
)

// ShowTheme lists the built-in themes with a color sample of each and marks
// the one selected by the theme key.
func ShowTheme(deps Deps) dispatchers.Action {
	return bind("view themes", deps, showTheme)
}

func showTheme(_ string, deps Deps) error {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}

	_, _ = deps.Println(deps.Styler.Header("Available themes (* = current)"))

	for _, base := range style.BaseThemeNames {
		// The background is only probed when styling is on.
		resolved := base + "-dark"
		if base == current && deps.Styler.Enabled() {
			resolved = style.ResolveThemeName(base)
		}

		for _, name := range []string{base + "-dark", base + "-light"} {
			marker := "  "
			if name == current || (base == current && name == resolved) {
				marker = deps.Styler.Success("* ")
			}
			_, _ = deps.Printf("%s%-14s  %s\n", marker, name, colorPreview(style.Themes[name], deps.Styler.Enabled()))
		}
	}

	_, _ = deps.Println(deps.Styler.Muted("Use 'set theme <name>' to change"))
	return nil
}

// colorPreview renders one sample word per semantic color.
func colorPreview(cfg style.ColorConfig, enabled bool) string {
	colorize := func(text, color string) string {
		if !enabled {
			return text
		}
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted)
}
