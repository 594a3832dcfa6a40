package dispatchers

// Suggestion is a child command offered for the next path segment.
type Suggestion struct {
	Name        string
	Description string
	HasAction   bool
}

// Suggest resolves path and returns the names of the resolved node's
// children, sorted. Order carries no meaning beyond stable display.
func Suggest(root *CommandNode, path []string) ([]string, error) {
	node, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(node.Children))
	for _, child := range node.SortedChildren() {
		names = append(names, child.Name)
	}
	return names, nil
}

// SuggestWithSummaries is Suggest with each child's description attached.
func SuggestWithSummaries(root *CommandNode, path []string) ([]Suggestion, error) {
	node, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}

	out := make([]Suggestion, 0, len(node.Children))
	for _, child := range node.SortedChildren() {
		out = append(out, Suggestion{
			Name:        child.Name,
			Description: child.Description,
			HasAction:   child.HasAction(),
		})
	}
	return out, nil
}

// CollectAllCommands recursively collects the full path of every command
// under node, e.g. "send mobile binding update".
func CollectAllCommands(node *CommandNode) []string {
	if node == nil {
		return nil
	}

	var commands []string
	node.Walk(func(n *CommandNode) {
		if n == node {
			return
		}
		commands = append(commands, n.FullName())
	})
	return commands
}
