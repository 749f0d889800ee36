package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Mouse filter — throttle high-frequency events at program level.
// ---------------------------------------------------------------------------

var lastMouseEvent time.Time

// MouseEventFilter rate-limits wheel and motion events (15 ms).
// Pass to tea.WithFilter. Never drops clicks or releases.
func MouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.MouseMotionMsg:
		now := time.Now()
		if now.Sub(lastMouseEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseEvent = now
	}
	return msg
}

// ---------------------------------------------------------------------------
// Mouse handling — pane-based routing via layout rects.
// ---------------------------------------------------------------------------

// mouseXY extracts X, Y from any mouse message via the MouseMsg interface.
func mouseXY(msg tea.MouseMsg) (int, int) {
	ev := msg.Mouse()
	return ev.X, ev.Y
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := mouseXY(msg)

	switch {
	case inRect(x, y, m.layout.tree):
		m.handleTreeMouse(msg, y)
	case inRect(x, y, m.layout.code):
		m.handleCodeMouse(msg)
	case inRect(x, y, m.layout.log):
		m.handleLogMouse(msg)
	case inRect(x, y, m.layout.input):
		if click, ok := msg.(tea.MouseClickMsg); ok && click.Button == tea.MouseLeft {
			m.setFocus(focusInput)
		}
	}
	return m, nil
}

// handleTreeMouse scrolls the tree pane and selects rows on click.
func (m *Model) handleTreeMouse(msg tea.MouseMsg, y int) {
	treeH := m.layout.tree.Dy()

	switch ev := msg.(type) {
	case tea.MouseWheelMsg:
		switch ev.Button {
		case tea.MouseWheelUp:
			m.tree.Scroll(-3, treeH)
		case tea.MouseWheelDown:
			m.tree.Scroll(3, treeH)
		}
	case tea.MouseClickMsg:
		if ev.Button != tea.MouseLeft {
			return
		}
		m.setFocus(focusTree)
		row := m.tree.scroll + (y - m.layout.tree.Min.Y)
		if row < 0 || row >= len(m.tree.items) {
			return
		}
		m.tree.cursor = row
		n := m.tree.items[row].node
		m.tree.Expand()
		m.showNode(n)
	}
}

// handleCodeMouse scrolls the source pane.
func (m *Model) handleCodeMouse(msg tea.MouseMsg) {
	ev, ok := msg.(tea.MouseWheelMsg)
	if !ok {
		return
	}
	switch ev.Button {
	case tea.MouseWheelUp:
		m.codeScroll -= 3
	case tea.MouseWheelDown:
		m.codeScroll += 3
	}
	m.clampCodeScroll()
}

// handleLogMouse scrolls the transcript. logScroll counts lines up from the
// bottom, so wheel-up increases it.
func (m *Model) handleLogMouse(msg tea.MouseMsg) {
	ev, ok := msg.(tea.MouseWheelMsg)
	if !ok {
		return
	}
	switch ev.Button {
	case tea.MouseWheelUp:
		m.logScroll += 3
	case tea.MouseWheelDown:
		m.logScroll -= 3
	}
	m.clampLogScroll()
}
