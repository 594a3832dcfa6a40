package style

import (
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// envPrefix is prepended to upper-cased config keys to form environment
// overrides, e.g. TREESH_COLOR_SUCCESS.
const envPrefix = "TREESH_"

// ColorConfig holds the configurable colors. Values are ANSI color numbers
// (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Accent  string
	Border  string
}

// BaseThemeNames lists the theme bases; the -dark or -light variant is
// picked from the terminal background.
var BaseThemeNames = []string{"default", "neon", "mono"}

// Themes contains the built-in themes. Dark variants use bright colors,
// light variants use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
		Accent:  "12",
		Border:  "240",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "243",
		Header:  "bold",
		Accent:  "26",
		Border:  "250",
	},
	"neon-dark": {
		Success: "48",
		Warning: "220",
		Error:   "197",
		Info:    "51",
		Muted:   "244",
		Header:  "bold",
		Accent:  "201",
		Border:  "93",
	},
	"neon-light": {
		Success: "29",
		Warning: "166",
		Error:   "161",
		Info:    "32",
		Muted:   "245",
		Header:  "bold",
		Accent:  "127",
		Border:  "97",
	},
	"mono-dark": {
		Success: "255",
		Warning: "252",
		Error:   "bold",
		Info:    "250",
		Muted:   "242",
		Header:  "bold",
		Accent:  "bold",
		Border:  "238",
	},
	"mono-light": {
		Success: "232",
		Warning: "236",
		Error:   "bold",
		Info:    "238",
		Muted:   "246",
		Header:  "bold",
		Accent:  "bold",
		Border:  "250",
	},
}

// colorOverrides lists the config keys that override a single theme color.
var colorOverrides = []struct {
	key string
	set func(*ColorConfig, string)
}{
	{"color_success", func(c *ColorConfig, v string) { c.Success = v }},
	{"color_warning", func(c *ColorConfig, v string) { c.Warning = v }},
	{"color_error", func(c *ColorConfig, v string) { c.Error = v }},
	{"color_info", func(c *ColorConfig, v string) { c.Info = v }},
	{"color_muted", func(c *ColorConfig, v string) { c.Muted = v }},
	{"color_header", func(c *ColorConfig, v string) { c.Header = v }},
}

// hasDarkBackground queries the terminal once; later calls reuse the answer
// so that no query is sent while the shell owns stdin. Replaced in tests.
var hasDarkBackground = sync.OnceValue(termenv.HasDarkBackground)

// ThemeNames returns every accepted value of the theme key: the base names
// followed by each explicit -dark and -light variant.
func ThemeNames() []string {
	names := slices.Clone(BaseThemeNames)
	for _, base := range BaseThemeNames {
		names = append(names, base+"-dark", base+"-light")
	}
	return names
}

// IsThemeName reports whether name is accepted by the theme key.
func IsThemeName(name string) bool {
	return slices.Contains(ThemeNames(), name)
}

// ResolveThemeName appends -dark or -light to a base theme name according
// to the terminal background. Names that already carry a suffix are kept.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if hasDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds the active colors. Priority, highest first:
// TREESH_COLOR_* environment variables, color_* config keys, the theme named
// by TREESH_THEME or the theme key, the default theme.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := "default"
	if env := os.Getenv(envPrefix + "THEME"); env != "" {
		name = env
	} else if v := cfg["theme"]; v != "" {
		name = v
	}

	result, ok := Themes[ResolveThemeName(name)]
	if !ok {
		result = Themes["default-dark"]
	}

	for _, o := range colorOverrides {
		if v := os.Getenv(envPrefix + strings.ToUpper(o.key)); v != "" {
			o.set(&result, v)
			continue
		}
		if v := cfg[o.key]; v != "" {
			o.set(&result, v)
		}
	}

	return result
}
