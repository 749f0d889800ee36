package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// renderStatusBar writes the status separator and bar.
func (m Model) renderStatusBar(b *strings.Builder, bgFill lipgloss.Style) {
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	// -- Left segments --
	leftParts := []string{
		m.styles.StatusText.Render(" " + m.explorer.Path),
		m.styles.Accent.Render(m.explorer.Language),
	}
	if n, ok := m.explorer.NodeByID(m.selectedID); ok && n.AST.Range.Known() {
		leftParts = append(leftParts, m.styles.StatusText.Render(n.AST.Range.String()))
	}
	left := strings.Join(leftParts, m.styles.StatusText.Render("  "))

	// -- Right segments --
	hints := "tab focus · ↑↓ select · space fold"
	if m.focus == focusInput {
		hints = "tab tree · enter run"
	}
	right := strings.Join([]string{
		m.styles.Dim.Render(hints),
		m.styles.StatusText.Render(fmt.Sprintf("rev %d", m.explorer.Revision())),
		m.styles.StatusText.Render(fmt.Sprintf("%d nodes", m.explorer.NodeCount())),
	}, m.styles.StatusText.Render("  "))

	// -- Compose: left + gap + right + trailing space --
	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - rightW - 1
	if gap < 0 {
		gap = 0
	}
	b.WriteString(left)
	b.WriteString(bgFill.Render(strings.Repeat(" ", gap)))
	b.WriteString(right)
	b.WriteString(bgFill.Render(" "))
}
