// Package style provides semantic terminal styling using lipgloss.
//
// Styling is semantic (Success, Warning, Error, ...) rather than visual.
// When disabled, every helper returns its input unchanged with no ANSI codes,
// and the lipgloss styles handed to table and tree renderers carry no color.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	accentStyle  lipgloss.Style
	borderStyle  lipgloss.Style
)

func init() {
	resetStyles()
}

// Init sets whether output is styled and loads the theme from cfg (nil uses
// the default theme). NO_COLOR or TREESH_NO_COLOR set to any non-empty value
// disable styling regardless of enable.
//
// Call once from main, before the terminal is switched to raw mode: theme
// auto-detection queries the terminal background.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv(envPrefix+"NO_COLOR") != "" {
		enable = false
	}

	enabled = enable
	if !enabled {
		colors = ColorConfig{}
		resetStyles()
		return
	}

	colors = LoadColorConfig(cfg)
	initStyles(colors)
}

// GetColors returns the active color configuration, empty when disabled.
func GetColors() ColorConfig {
	return colors
}

func initStyles(c ColorConfig) {
	// ANSI256 covers both the 16 basic colors and the extended palette.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(c.Success)
	warningStyle = makeStyle(c.Warning)
	errorStyle = makeStyle(c.Error)
	infoStyle = makeStyle(c.Info)
	mutedStyle = makeStyle(c.Muted)
	headerStyle = makeStyle(c.Header)
	accentStyle = makeStyle(c.Accent).Bold(true)
	borderStyle = makeStyle(c.Border)
}

func resetStyles() {
	plain := lipgloss.NewStyle()
	successStyle, warningStyle, errorStyle, infoStyle = plain, plain, plain, plain
	mutedStyle, headerStyle, accentStyle, borderStyle = plain, plain, plain, plain
}

// makeStyle turns "bold" or an ANSI color number (0-255) into a style.
func makeStyle(value string) lipgloss.Style {
	switch value {
	case "":
		return lipgloss.NewStyle()
	case "bold":
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(successStyle, text) }

// Warning styles text for warnings, such as skipped command declarations.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(errorStyle, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(infoStyle, text) }

// Header styles section titles and table headers.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary text such as descriptions.
func Muted(text string) string { return render(mutedStyle, text) }

// Accent styles the selected row of the command browser.
func Accent(text string) string { return render(accentStyle, text) }

// HeaderStyle, MutedStyle, AccentStyle and BorderStyle expose the underlying
// lipgloss styles for renderers (lipgloss/table, lipgloss/tree) that take a
// style rather than a string.
func HeaderStyle() lipgloss.Style { return headerStyle }

func MutedStyle() lipgloss.Style { return mutedStyle }

func AccentStyle() lipgloss.Style { return accentStyle }

func BorderStyle() lipgloss.Style { return borderStyle }
