package dispatchers

import (
	"github.com/footprint-tools/treesh/internal/usage"
)

const (
	reasonParentNotFound = "parent not found at that depth"
	reasonAmbiguous      = "parent is ambiguous at that depth"
	reasonDuplicate      = "duplicate command under the same parent"
)

// Orphan is a spec the builder could not place in the tree.
type Orphan struct {
	Spec   CommandSpec
	Reason string
}

// Tree is the result of Build. Root is immutable once returned and may be
// shared between goroutines without locking.
type Tree struct {
	Root    *CommandNode
	Orphans []Orphan
}

// Problems renders every orphan as a usage error for logging.
func (t *Tree) Problems() []error {
	var errs []error
	for _, o := range t.Orphans {
		errs = append(errs, usage.OrphanSpec(o.Spec.Name, o.Spec.Parent, o.Spec.Depth, o.Reason))
	}
	return errs
}

func NewNode(name string, parent *CommandNode, description string, action Action) *CommandNode {
	node := &CommandNode{
		Name:        name,
		Description: description,
		Action:      action,
		Children:    make(map[string]*CommandNode),
	}

	if parent == nil {
		node.Path = []string{}
	} else {
		node.Path = make([]string, 0, len(parent.Path)+1)
		node.Path = append(node.Path, parent.Path...)
		node.Path = append(node.Path, name)
		parent.Children[name] = node
	}

	return node
}

// Build assembles the command tree from specs, in order. A spec attaches
// under the single node named spec.Parent whose distance from the root is
// spec.Depth. Specs that cannot be attached are skipped and reported in
// Tree.Orphans; building never fails.
//
// A name declared twice under the same parent keeps its first declaration;
// later ones are reported as orphans and never replace the node, so entries
// from a command file cannot override built-in commands.
func Build(specs []CommandSpec) *Tree {
	tree := &Tree{Root: NewNode(RootName, nil, "", nil)}

	for _, spec := range specs {
		matches := findAttachments(tree.Root, spec.Parent, spec.Depth)

		switch {
		case len(matches) == 0:
			tree.Orphans = append(tree.Orphans, Orphan{Spec: spec, Reason: reasonParentNotFound})
		case len(matches) > 1:
			tree.Orphans = append(tree.Orphans, Orphan{Spec: spec, Reason: reasonAmbiguous})
		default:
			parent := matches[0]
			if _, exists := parent.Children[spec.Name]; exists {
				tree.Orphans = append(tree.Orphans, Orphan{Spec: spec, Reason: reasonDuplicate})
				continue
			}
			NewNode(spec.Name, parent, spec.Description, spec.Action)
		}
	}

	return tree
}

type frame struct {
	node  *CommandNode
	depth uint
}

// findAttachments returns every node named name at distance depth from
// root. The root itself sits at distance 0. Subtrees deeper than depth are
// never entered.
func findAttachments(root *CommandNode, name string, depth uint) []*CommandNode {
	var matches []*CommandNode

	stack := []frame{{node: root, depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth == depth {
			if top.node.Name == name {
				matches = append(matches, top.node)
			}
			continue
		}

		for _, child := range top.node.Children {
			stack = append(stack, frame{node: child, depth: top.depth + 1})
		}
	}

	return matches
}
