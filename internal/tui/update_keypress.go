package tui

import (
	tea "charm.land/bubbletea/v2"
)

// handleKeyPress processes key events. Returns (model, cmd, true) if handled.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	switch msg.Keystroke() {
	case "ctrl+c":
		return *m, tea.Quit, true
	case "tab":
		if m.focus == focusTree {
			m.setFocus(focusInput)
		} else {
			m.setFocus(focusTree)
		}
		return *m, nil, true
	case "esc":
		m.setFocus(focusTree)
		return *m, nil, true
	}

	if m.focus == focusTree {
		return m.handleTreeKey(msg)
	}

	if msg.Keystroke() == "enter" {
		m.submitSnippet()
		return *m, nil, true
	}
	return Model{}, nil, false
}

// handleTreeKey navigates the tree pane. Cursor movement selects the node
// under the cursor, like a real tree widget.
func (m *Model) handleTreeKey(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	treeH := m.layout.tree.Dy()
	follow := true

	switch msg.Keystroke() {
	case "up", "k":
		m.tree.MoveUp()
	case "down", "j":
		m.tree.MoveDown()
	case "pgup":
		m.tree.moveCursor(-treeH)
	case "pgdown":
		m.tree.moveCursor(treeH)
	case "home":
		m.tree.moveCursor(-len(m.tree.items))
	case "end":
		m.tree.moveCursor(len(m.tree.items))
	case "left", "h":
		m.tree.Collapse()
	case "right", "l":
		m.tree.Expand()
		follow = false
	case "space":
		m.tree.Toggle()
		follow = false
	case "enter":
		m.tree.Expand()
	case "ctrl+d":
		m.codeScroll += m.layout.code.Dy() / 2
		m.clampCodeScroll()
		follow = false
	case "ctrl+u":
		m.codeScroll -= m.layout.code.Dy() / 2
		m.clampCodeScroll()
		follow = false
	default:
		return Model{}, nil, false
	}

	if n := m.tree.Current(); follow && n != nil && n.ID != m.selectedID {
		m.showNode(n)
	}
	m.tree.EnsureVisible(treeH)
	return *m, nil, true
}
