package dispatchers

import (
	"strings"

	"github.com/footprint-tools/treesh/internal/usage"
)

// Outcome describes what Dispatch did with a node.
type Outcome int

const (
	OutcomeExecuted Outcome = iota
	OutcomeNoAction
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExecuted:
		return "executed"
	case OutcomeNoAction:
		return "no action bound"
	default:
		return "unknown"
	}
}

// Resolve walks path down from root, one exact child key per token.
// An empty path resolves to root.
func Resolve(root *CommandNode, path []string) (*CommandNode, error) {
	current := root

	for i, tok := range path {
		child, ok := current.Children[tok]
		if !ok {
			return nil, usage.UnknownCommand(strings.Join(path[:i+1], " "))
		}
		current = child
	}

	return current, nil
}

// Dispatch invokes the node's action with argument. Nodes without an
// action are left alone and reported as OutcomeNoAction.
func Dispatch(node *CommandNode, argument string) Outcome {
	if !node.HasAction() {
		return OutcomeNoAction
	}
	node.Action.Invoke(argument)
	return OutcomeExecuted
}
