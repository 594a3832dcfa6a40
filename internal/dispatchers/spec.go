package dispatchers

// CommandSpec is one row of a flat command table.
//
// Depth is the distance from the root: commands directly under the root
// have depth 0 and name RootName as their parent.
type CommandSpec struct {
	Name        string
	Parent      string
	Depth       uint
	Description string
	Action      Action
}
