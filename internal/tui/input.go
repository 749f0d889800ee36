package tui

import (
	"strings"

	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Input — a single-line snippet prompt. Pasted newlines are flattened to
// spaces; statement separators (;) still allow multi-statement snippets.
// ---------------------------------------------------------------------------

type inputModel struct {
	value  []rune
	pos    int
	width  int
	focus  bool
	cursor cursor.Model
}

func newInput() inputModel {
	c := cursor.New()
	c.SetMode(cursor.CursorBlink)
	return inputModel{cursor: c}
}

// inputBlink is the initial blink command. Call from Init().
func inputBlink() tea.Msg { return cursor.Blink() }

func (m *inputModel) Focus() {
	m.focus = true
	m.cursor.Focus()
}

func (m *inputModel) Blur() {
	m.focus = false
	m.cursor.Blur()
}

func (m inputModel) Focused() bool { return m.focus }

func (m inputModel) Value() string { return string(m.value) }

func (m *inputModel) Reset() {
	m.value = nil
	m.pos = 0
}

func (m *inputModel) SetWidth(w int) { m.width = w }

func (m *inputModel) InsertText(text string) {
	for _, r := range text {
		if r == '\n' {
			r = ' '
		}
		m.insertRune(r)
	}
}

func (m *inputModel) insertRune(r rune) {
	m.value = append(m.value[:m.pos], append([]rune{r}, m.value[m.pos:]...)...)
	m.pos++
}

func (m *inputModel) deleteBack() {
	if m.pos == 0 {
		return
	}
	m.value = append(m.value[:m.pos-1], m.value[m.pos:]...)
	m.pos--
}

func (m *inputModel) deleteForward() {
	if m.pos >= len(m.value) {
		return
	}
	m.value = append(m.value[:m.pos], m.value[m.pos+1:]...)
}

// Update handles key events for the focused input. Enter is not consumed
// here; the parent owns submission.
func (m inputModel) Update(msg tea.Msg) (inputModel, tea.Cmd) {
	var cmds []tea.Cmd

	if key, ok := msg.(tea.KeyPressMsg); ok && m.focus {
		edited := true
		switch key.Keystroke() {
		case "left":
			if m.pos > 0 {
				m.pos--
			}
		case "right":
			if m.pos < len(m.value) {
				m.pos++
			}
		case "home", "ctrl+a":
			m.pos = 0
		case "end", "ctrl+e":
			m.pos = len(m.value)
		case "backspace", "ctrl+h":
			m.deleteBack()
		case "delete", "ctrl+d":
			m.deleteForward()
		case "ctrl+u":
			m.value = m.value[m.pos:]
			m.pos = 0
		case "ctrl+k":
			m.value = m.value[:m.pos]
		case "ctrl+w":
			m.deleteWordBack()
		default:
			edited = false
			if key.Text != "" && !strings.ContainsRune(key.Text, '\n') {
				for _, r := range key.Text {
					m.insertRune(r)
				}
				edited = true
			}
		}
		if edited {
			cmds = append(cmds, m.cursor.Blink())
		}
	}

	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *inputModel) deleteWordBack() {
	for m.pos > 0 && m.value[m.pos-1] == ' ' {
		m.deleteBack()
	}
	for m.pos > 0 && m.value[m.pos-1] != ' ' {
		m.deleteBack()
	}
}

// View renders the visible slice of the value with the cursor overlaid.
func (m inputModel) View() string {
	if m.width <= 0 {
		return ""
	}

	// Keep the cursor inside the viewport.
	offset := 0
	if m.pos >= m.width {
		offset = m.pos - m.width + 1
	}

	end := offset + m.width
	if end > len(m.value) {
		end = len(m.value)
	}
	visible := m.value[offset:end]
	cursorAt := m.pos - offset

	if !m.focus {
		return string(visible)
	}

	var b strings.Builder
	b.WriteString(string(visible[:min(cursorAt, len(visible))]))
	cur := m.cursor
	if cursorAt < len(visible) {
		cur.SetChar(string(visible[cursorAt]))
		b.WriteString(cur.View())
		b.WriteString(string(visible[cursorAt+1:]))
	} else {
		cur.SetChar(" ")
		b.WriteString(cur.View())
	}
	return b.String()
}
