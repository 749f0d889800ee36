package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// promptWidth is the rendered width of the snippet prompt marker.
const promptWidth = 2

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderContent produces the string content for the view.
func (m Model) renderContent() string {
	if m.width == 0 {
		return ""
	}

	ly := m.layout
	contentH := m.height - statusRows
	bgFill := m.styles.BgFill
	treeW := ly.tree.Dx()
	rightW := m.width - treeW - 1
	var b strings.Builder

	for row := 0; row < contentH; row++ {
		m.renderTreeRow(&b, row, treeW, bgFill)
		b.WriteString(m.styles.Border.Render("│"))
		m.renderRightRow(&b, row, rightW, bgFill)
		b.WriteByte('\n')
	}

	m.renderStatusBar(&b, bgFill)
	return b.String()
}

// renderRightRow writes one row of the right column: source pane, transcript
// separator, transcript, or the prompt.
func (m Model) renderRightRow(b *strings.Builder, row, rw int, bgFill lipgloss.Style) {
	ly := m.layout
	switch {
	case row < ly.code.Dy():
		renderPaddedLine(b, m.codeLines, m.codeScroll+row, rw, bgFill)
	case row == ly.logSep.Min.Y:
		b.WriteString(m.styles.Border.Render(strings.Repeat("─", rw)))
	case row < ly.log.Max.Y:
		m.renderLogRow(b, row-ly.log.Min.Y, rw, bgFill)
	default:
		m.renderInputRow(b, rw, bgFill)
	}
}

// renderLogRow writes one transcript line. The window is anchored at the
// bottom; logScroll lifts it.
func (m Model) renderLogRow(b *strings.Builder, logRow, rw int, bgFill lipgloss.Style) {
	start := len(m.transcript) - m.layout.log.Dy() - m.logScroll
	renderPaddedLine(b, m.transcript, start+logRow, rw, bgFill)
}

// renderInputRow writes the prompt marker and the input component.
func (m Model) renderInputRow(b *strings.Builder, rw int, bgFill lipgloss.Style) {
	line := m.styles.Prompt.Render("> ") + m.styles.Text.Render(m.input.View())
	lw := lipgloss.Width(line)
	if lw > rw {
		line = ansi.Truncate(line, rw, "")
		lw = lipgloss.Width(line)
	}
	b.WriteString(line)
	if lw < rw {
		b.WriteString(bgFill.Render(strings.Repeat(" ", rw-lw)))
	}
}

// renderPaddedLine writes lines[idx] padded/truncated to width, or a blank
// fill if idx is out of range.
func renderPaddedLine(b *strings.Builder, lines []string, idx, width int, bgFill lipgloss.Style) {
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		lw := lipgloss.Width(line)
		if lw > width {
			line = ansi.Truncate(line, width, "")
			lw = lipgloss.Width(line)
		}
		b.WriteString(line)
		if lw < width {
			b.WriteString(bgFill.Render(strings.Repeat(" ", width-lw)))
		}
	} else {
		b.WriteString(bgFill.Render(strings.Repeat(" ", width)))
	}
}
