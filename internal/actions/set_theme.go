package actions

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/ui/style"
)

// themeKey is the config key SetTheme writes.
const themeKey = "theme"

// ThemeActionName is the registry name of the action selecting theme name.
func ThemeActionName(name string) string {
	return "theme_" + name
}

// SetTheme stores name as the theme and restyles the session. Choosing
// "default" removes the key so the default applies again.
func SetTheme(deps Deps, name string) dispatchers.Action {
	return bind("set theme "+name, deps, func(_ string, deps Deps) error {
		return setTheme(name, deps)
	})
}

func setTheme(name string, deps Deps) error {
	if !style.IsThemeName(name) {
		return fmt.Errorf("unknown theme %q", name)
	}
	if deps.Set == nil || deps.Unset == nil {
		return errors.New("configuration is read-only")
	}

	var err error
	if name == "default" {
		err = deps.Unset(themeKey)
	} else {
		err = deps.Set(themeKey, name)
	}
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	if deps.ApplyStyle != nil && deps.GetAll != nil {
		if cfg, err := deps.GetAll(); err == nil {
			deps.ApplyStyle(cfg)
		}
	}

	deps.Logger.Info("actions: theme set to %s", name)
	_, _ = deps.Printf("%s %s\n", deps.Styler.Success("theme set to"), name)
	return nil
}
