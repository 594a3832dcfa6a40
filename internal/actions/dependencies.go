// Package actions holds the concrete callbacks bound to the command tree.
// Each action takes the raw input line as its argument and reports its own
// failures; the tree never sees a result.
package actions

import (
	"os"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/format"
	"github.com/footprint-tools/treesh/internal/log"
	"github.com/footprint-tools/treesh/internal/paths"
	"github.com/footprint-tools/treesh/internal/ui/style"
)

type Deps struct {
	Store   domain.BindingStore
	GetAll  func() (map[string]string, error)
	Get     func(string) (string, bool)
	Set     func(key, value string) error
	Unset   func(key string) error
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Block   func(string)
	Styler  domain.Styler
	Logger  domain.Logger
	Layout  format.Layout

	LogFilePath func() string
	ReadFile    func(string) ([]byte, error)

	// ApplyStyle re-reads the colors after a theme change.
	ApplyStyle func(cfg map[string]string)

	// Tree returns the command tree once it is built. Actions are created
	// before the tree they are bound into, so the lookup is deferred.
	Tree func() *dispatchers.CommandNode
}

// DefaultDeps wires the actions to an application.
func DefaultDeps(a *domain.Application, tree func() *dispatchers.CommandNode) Deps {
	logger := a.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}

	var styler domain.Styler = style.NopStyler{}
	if a.Styler != nil {
		styler = a.Styler
	}

	return Deps{
		Store:   a.Store,
		GetAll:  a.Config.GetAll,
		Get:     a.Config.Get,
		Set:     a.Config.Set,
		Unset:   a.Config.Unset,
		Printf:  a.Output.Printf,
		Println: a.Output.Println,
		Block:   a.Output.Block,
		Styler:  styler,
		Logger:  logger,
		Layout:  format.NewLayout(a.Config.Get),
		Tree:    tree,

		LogFilePath: paths.LogFilePath,
		ReadFile:    os.ReadFile,
		ApplyStyle: func(cfg map[string]string) {
			style.Init(style.Enabled(), cfg)
		},
	}
}

// bind turns fn into a tree action that logs and prints its error.
func bind(name string, deps Deps, fn func(argument string, deps Deps) error) dispatchers.Action {
	return dispatchers.ActionFunc(func(argument string) {
		deps.Logger.Debug("actions: %s invoked with %q", name, argument)

		if err := fn(argument, deps); err != nil {
			deps.Logger.Error("actions: %s: %v", name, err)
			_, _ = deps.Printf("%s\n", deps.Styler.Error("treesh: "+name+": "+err.Error()))
		}
	})
}
