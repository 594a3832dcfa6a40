package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `show config`
	Hidden      bool   // Hidden keys are not written to a fresh config file
	HideIfEmpty bool   // Written commented out until explicitly set
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in `show config`.
var ConfigKeys = []ConfigKey{
	// Shell
	{
		Name:        "prompt",
		Default:     "> ",
		Description: "Prompt printed before each input line",
		Section:     "Shell",
	},
	{
		Name:        "commands_file",
		Description: "YAML file with extra commands to add to the tree",
		Section:     "Shell",
		HideIfEmpty: true,
	},
	// Bindings
	{
		Name:        "bindings_db",
		Description: "Path to the binding cache database",
		Section:     "Bindings",
		HideIfEmpty: true,
	},
	{
		Name:        "mobile_node",
		Default:     "mn-1",
		Description: "Mobile node identifier recorded by 'send mobile binding update'",
		Section:     "Bindings",
	},
	// Display
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, neon, mono",
		Section:     "Display",
	},
	{
		Name:        "display_date",
		Default:     "Jan 02",
		Description: "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd, or Go format",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 12h, 24h",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum level written to the log: debug, info, warn, error",
		Section:     "Logging",
	},
	// Color Overrides - override specific colors from the current theme (ANSI 0-255)
	{
		Name:        "color_success",
		Description: "Override success color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Override warning color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Override error color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Override info color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Description: "Override header style from current theme (ANSI 0-255 or 'bold')",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

// LookupConfigKey returns the key definition for name.
func LookupConfigKey(name string) (ConfigKey, bool) {
	for _, k := range ConfigKeys {
		if k.Name == name {
			return k, true
		}
	}
	return ConfigKey{}, false
}
