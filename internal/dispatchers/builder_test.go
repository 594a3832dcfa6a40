package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/treesh/internal/usage"
)

// recorder is a test double that remembers every argument it receives.
type recorder struct {
	calls []string
}

func (r *recorder) Invoke(argument string) {
	r.calls = append(r.calls, argument)
}

// referenceSpecs mirrors the shipped command table shape.
func referenceSpecs(update, ack Action) []CommandSpec {
	return []CommandSpec{
		{Name: "send", Parent: RootName, Depth: 0, Description: "Send a command"},
		{Name: "mobile", Parent: "send", Depth: 1, Description: "Mobile commands"},
		{Name: "binding", Parent: "mobile", Depth: 2, Description: "Binding commands"},
		{Name: "update", Parent: "binding", Depth: 3, Description: "Send binding update", Action: update},
		{Name: "ack", Parent: "binding", Depth: 3, Description: "Send binding ack", Action: ack},
		{Name: "show", Parent: RootName, Depth: 0, Description: "Show information"},
		{Name: "table", Parent: "show", Depth: 1, Description: "Show the table", Action: ActionFunc(func(string) {})},
		{Name: "command", Parent: "show", Depth: 1, Description: "Show commands", Action: ActionFunc(func(string) {})},
	}
}

func TestBuild_RootLevelCommandsExist(t *testing.T) {
	specs := referenceSpecs(nil, nil)
	tree := Build(specs)

	require.Equal(t, RootName, tree.Root.Name)
	require.Empty(t, tree.Root.Description)
	require.Nil(t, tree.Root.Action)
	require.Empty(t, tree.Orphans)

	for _, spec := range specs {
		if spec.Parent == RootName && spec.Depth == 0 {
			require.Contains(t, tree.Root.Children, spec.Name)
		}
	}
}

func TestBuild_RoundTripDescriptions(t *testing.T) {
	specs := referenceSpecs(nil, nil)
	tree := Build(specs)

	paths := map[string][]string{
		"send":    {"send"},
		"mobile":  {"send", "mobile"},
		"binding": {"send", "mobile", "binding"},
		"update":  {"send", "mobile", "binding", "update"},
		"ack":     {"send", "mobile", "binding", "ack"},
		"show":    {"show"},
		"table":   {"show", "table"},
		"command": {"show", "command"},
	}

	for _, spec := range specs {
		node, err := Resolve(tree.Root, paths[spec.Name])
		require.NoError(t, err, spec.Name)
		require.Equal(t, spec.Description, node.Description)
		require.Equal(t, paths[spec.Name], node.Path)
	}
}

func TestBuild_OrphanParentNotFound(t *testing.T) {
	specs := []CommandSpec{
		{Name: "send", Parent: RootName, Depth: 0},
		{Name: "update", Parent: "binding", Depth: 3},
		{Name: "show", Parent: RootName, Depth: 0},
	}

	tree := Build(specs)

	require.Len(t, tree.Orphans, 1)
	require.Equal(t, "update", tree.Orphans[0].Spec.Name)
	require.Equal(t, reasonParentNotFound, tree.Orphans[0].Reason)
	require.Contains(t, tree.Root.Children, "show", "building continues after an orphan")
}

func TestBuild_DepthMustMatch(t *testing.T) {
	specs := []CommandSpec{
		{Name: "send", Parent: RootName, Depth: 0},
		{Name: "mobile", Parent: "send", Depth: 1},
		// "send" exists, but at depth 1, not 2.
		{Name: "late", Parent: "send", Depth: 2},
		// The root only matches at depth 0.
		{Name: "deep", Parent: RootName, Depth: 2},
	}

	tree := Build(specs)

	require.Len(t, tree.Orphans, 2)
	require.Equal(t, "late", tree.Orphans[0].Spec.Name)
	require.Equal(t, "deep", tree.Orphans[1].Spec.Name)
}

func TestBuild_ParentsMustPrecedeChildren(t *testing.T) {
	specs := []CommandSpec{
		{Name: "mobile", Parent: "send", Depth: 1},
		{Name: "send", Parent: RootName, Depth: 0},
	}

	tree := Build(specs)

	require.Len(t, tree.Orphans, 1)
	require.Equal(t, "mobile", tree.Orphans[0].Spec.Name)
	require.Empty(t, tree.Root.Children["send"].Children)
}

func TestBuild_SameNameDifferentDepths(t *testing.T) {
	specs := []CommandSpec{
		{Name: "show", Parent: RootName, Depth: 0},
		{Name: "table", Parent: "show", Depth: 1},
		{Name: "send", Parent: RootName, Depth: 0},
		{Name: "show", Parent: "send", Depth: 1},
		{Name: "status", Parent: "show", Depth: 2},
		{Name: "all", Parent: "show", Depth: 1},
	}

	tree := Build(specs)
	require.Empty(t, tree.Orphans)

	status, err := Resolve(tree.Root, []string{"send", "show", "status"})
	require.NoError(t, err)
	require.Equal(t, []string{"send", "show", "status"}, status.Path)

	all, err := Resolve(tree.Root, []string{"show", "all"})
	require.NoError(t, err)
	require.Equal(t, "all", all.Name)

	_, err = Resolve(tree.Root, []string{"show", "status"})
	require.Error(t, err)
}

func TestBuild_AmbiguousParent(t *testing.T) {
	specs := []CommandSpec{
		{Name: "send", Parent: RootName, Depth: 0},
		{Name: "show", Parent: RootName, Depth: 0},
		{Name: "binding", Parent: "send", Depth: 1},
		{Name: "binding", Parent: "show", Depth: 1},
		{Name: "update", Parent: "binding", Depth: 2},
	}

	tree := Build(specs)

	require.Len(t, tree.Orphans, 1)
	require.Equal(t, "update", tree.Orphans[0].Spec.Name)
	require.Equal(t, reasonAmbiguous, tree.Orphans[0].Reason)
}

func TestBuild_DuplicateKeepsFirst(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	specs := []CommandSpec{
		{Name: "show", Parent: RootName, Depth: 0, Description: "first", Action: first},
		{Name: "show", Parent: RootName, Depth: 0, Description: "second", Action: second},
	}

	tree := Build(specs)

	require.Len(t, tree.Orphans, 1)
	require.Equal(t, reasonDuplicate, tree.Orphans[0].Reason)
	require.Equal(t, "first", tree.Root.Children["show"].Description)
}

func TestTree_Problems(t *testing.T) {
	tree := Build([]CommandSpec{{Name: "update", Parent: "binding", Depth: 3}})

	problems := tree.Problems()
	require.Len(t, problems, 1)
	require.True(t, usage.IsKind(problems[0], usage.ErrOrphanSpec))
	require.Contains(t, problems[0].Error(), "update")
	require.Contains(t, problems[0].Error(), "binding")
}

func TestBuild_Empty(t *testing.T) {
	tree := Build(nil)

	require.NotNil(t, tree.Root)
	require.Empty(t, tree.Root.Children)
	require.Empty(t, tree.Orphans)
}
