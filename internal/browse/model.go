// Package browse is a full-screen command browser over the command tree.
// It only reads the tree; the command picked by the user is returned to
// the caller for dispatch.
package browse

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/treesh/internal/dispatchers"
)

// Model is the Bubble Tea model of the browser.
type Model struct {
	root *dispatchers.CommandNode

	path   []string
	items  []dispatchers.Suggestion
	cursor int

	selected *dispatchers.CommandNode
	notice   string

	width  int
	height int
}

// New opens the browser at the root of the tree.
func New(root *dispatchers.CommandNode) Model {
	m := Model{root: root}
	m.load()
	return m
}

// Selected returns the command chosen with Enter, nil if the user quit.
func (m Model) Selected() *dispatchers.CommandNode {
	return m.selected
}

// Path returns the current location, empty at the root.
func (m Model) Path() []string {
	return slices.Clone(m.path)
}

// Cursor returns the index of the highlighted entry.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Enter):
		return m.activate(true)

	case key.Matches(msg, keys.Open):
		return m.activate(false)

	case key.Matches(msg, keys.Back):
		m.back()
	}

	return m, nil
}

// activate acts on the highlighted entry. With preferRun an action-bearing
// node is selected even when it has children; otherwise a node with
// children is always entered and only leaves are selected.
func (m Model) activate(preferRun bool) (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}

	target := append(slices.Clone(m.path), m.items[m.cursor].Name)
	node, err := dispatchers.Resolve(m.root, target)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}

	switch {
	case preferRun && node.HasAction():
		m.selected = node
		return m, tea.Quit

	case len(node.Children) > 0:
		m.path = target
		m.cursor = 0
		m.load()
		return m, nil

	case node.HasAction():
		m.selected = node
		return m, tea.Quit
	}

	m.notice = "'" + node.FullName() + "' has no action bound"
	return m, nil
}

// back moves to the parent, keeping the cursor on the entry just left.
func (m *Model) back() {
	if len(m.path) == 0 {
		return
	}

	left := m.path[len(m.path)-1]
	m.path = m.path[:len(m.path)-1]
	m.load()

	m.cursor = max(0, slices.IndexFunc(m.items, func(s dispatchers.Suggestion) bool {
		return s.Name == left
	}))
}

func (m *Model) load() {
	items, err := dispatchers.SuggestWithSummaries(m.root, m.path)
	if err != nil {
		m.items = nil
		m.notice = err.Error()
		return
	}
	m.items = items
}
