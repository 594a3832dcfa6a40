package actions

import "github.com/footprint-tools/treesh/internal/dispatchers"

// Echo prints the line it was invoked with. Command files use it for
// placeholder commands.
func Echo(deps Deps) dispatchers.Action {
	return bind("echo", deps, func(argument string, deps Deps) error {
		_, _ = deps.Printf("%s %q\n", deps.Styler.Info("executing"), argument)
		return nil
	})
}
