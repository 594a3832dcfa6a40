package actions

import (
	"fmt"
	"slices"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/domain"
)

// ShowConfig prints the effective configuration grouped by section, then
// any keys the file sets that treesh does not define.
func ShowConfig(deps Deps) dispatchers.Action {
	return bind("show config", deps, showConfig)
}

func showConfig(_ string, deps Deps) error {
	values, err := deps.GetAll()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	known := make(map[string]bool, len(domain.ConfigKeys))
	section := ""

	for _, key := range domain.ConfigKeys {
		known[key.Name] = true
		if key.Hidden {
			continue
		}

		if key.Section != section {
			if section != "" {
				_, _ = deps.Println()
			}
			_, _ = deps.Println(deps.Styler.Header(key.Section))
			section = key.Section
		}

		value := values[key.Name]
		if value == "" {
			_, _ = deps.Printf("  %s=%s\n", key.Name, deps.Styler.Muted("(unset)"))
			continue
		}
		_, _ = deps.Printf("  %s=%q\n", key.Name, value)
	}

	var extra []string
	for name := range values {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return nil
	}

	slices.Sort(extra)
	_, _ = deps.Println()
	_, _ = deps.Println(deps.Styler.Header("Unrecognized"))
	for _, name := range extra {
		_, _ = deps.Printf("  %s=%q\n", name, values[name])
	}
	return nil
}
