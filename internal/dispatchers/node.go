package dispatchers

import (
	"sort"
	"strings"
)

// RootName is the name given to the synthesized root of every tree.
const RootName = "root"

// Action is the capability bound to an executable command.
// Invoke is fire-and-forget: the tree never observes its result.
type Action interface {
	Invoke(argument string)
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(argument string)

func (f ActionFunc) Invoke(argument string) {
	f(argument)
}

type CommandNode struct {
	Name        string
	Path        []string
	Description string
	Children    map[string]*CommandNode
	Action      Action
}

// HasAction reports whether dispatching the node does anything.
func (n *CommandNode) HasAction() bool {
	return n != nil && n.Action != nil
}

// FullName returns the space separated path a user types to reach the node.
func (n *CommandNode) FullName() string {
	return strings.Join(n.Path, " ")
}

// SortedChildren returns the children ordered by name.
func (n *CommandNode) SortedChildren() []*CommandNode {
	children := make([]*CommandNode, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})
	return children
}

// Walk calls fn for the node and every descendant, depth-first,
// visiting siblings in name order.
func (n *CommandNode) Walk(fn func(*CommandNode)) {
	fn(n)
	for _, child := range n.SortedChildren() {
		child.Walk(fn)
	}
}
