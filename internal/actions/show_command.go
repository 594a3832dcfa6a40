package actions

import (
	"errors"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/ui/style"
)

// ShowCommand prints the whole command tree. Without styling it prints one
// full command path per line instead.
func ShowCommand(deps Deps) dispatchers.Action {
	return bind("show command", deps, showCommand)
}

func showCommand(_ string, deps Deps) error {
	if deps.Tree == nil || deps.Tree() == nil {
		return errors.New("command tree not available")
	}

	if !deps.Styler.Enabled() {
		for _, name := range dispatchers.CollectAllCommands(deps.Tree()) {
			_, _ = deps.Println(name)
		}
		return nil
	}

	deps.Block(renderCommandTree(deps.Tree(), deps))
	return nil
}

func renderCommandTree(root *dispatchers.CommandNode, deps Deps) string {
	t := tree.Root(deps.Styler.Header("treesh")).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(style.BorderStyle())

	for _, child := range root.SortedChildren() {
		t.Child(commandBranch(child, deps))
	}
	return t.String()
}

// commandBranch returns a plain label for leaves and a subtree otherwise.
func commandBranch(node *dispatchers.CommandNode, deps Deps) any {
	label := node.Name
	if node.Description != "" {
		label += "  " + deps.Styler.Muted(node.Description)
	}
	if node.HasAction() && len(node.Children) > 0 {
		label += " " + deps.Styler.Info("*")
	}

	if len(node.Children) == 0 {
		return label
	}

	sub := tree.Root(label)
	for _, child := range node.SortedChildren() {
		sub.Child(commandBranch(child, deps))
	}
	return sub
}
