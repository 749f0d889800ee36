package tui

import (
	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	// -- Paste (bracketed paste into the prompt) ------------------------------
	case tea.PasteMsg:
		if m.focus == focusInput {
			m.input.InsertText(msg.Content)
		}
		return m, nil

	// -- Mouse ---------------------------------------------------------------
	case tea.MouseMsg:
		return m.handleMouse(msg)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		if mdl, cmd, handled := m.handleKeyPress(msg); handled {
			return mdl, cmd
		}
	}

	// Forward non-mouse messages to the prompt for editing and blink state.
	var cmd tea.Cmd
	if _, isMouse := msg.(tea.MouseMsg); !isMouse {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// handleResize applies a window size change and re-derives layout.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height

	divX := m.width / 3
	if divX < minPaneWidth {
		divX = minPaneWidth
	}
	if divX > m.width-minPaneWidth {
		divX = m.width - minPaneWidth
	}
	m.layout = generateLayout(m.width, m.height, divX)
	m.input.SetWidth(m.layout.input.Dx() - promptWidth)
	m.tree.EnsureVisible(m.layout.tree.Dy())
	m.clampCodeScroll()
}

func (m *Model) clampCodeScroll() {
	m.codeScroll = clamp(m.codeScroll, 0, len(m.codeLines)-m.layout.code.Dy())
}

func (m *Model) clampLogScroll() {
	m.logScroll = clamp(m.logScroll, 0, len(m.transcript)-m.layout.log.Dy())
}
