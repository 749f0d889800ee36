package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// renderTreeRow writes one row of the left (tree) pane to b.
func (m Model) renderTreeRow(b *strings.Builder, row, width int, bgFill lipgloss.Style) {
	idx := m.tree.scroll + row
	if idx < 0 || idx >= len(m.tree.items) {
		b.WriteString(bgFill.Render(strings.Repeat(" ", width)))
		return
	}

	it := m.tree.items[idx]
	marker := "  "
	if !it.node.IsLeaf {
		if m.tree.expanded[it.node.ID] {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}
	label := strings.Repeat("  ", it.depth) + marker + it.node.Label
	label = ansi.Truncate(label, width, "…")

	style := m.styles.Text
	switch {
	case idx == m.tree.cursor && m.focus == focusTree:
		style = m.styles.Cursor
	case it.node.ID == m.selectedID && m.selectedID != 0:
		style = m.styles.Selected
	case it.node.IsLeaf:
		style = m.styles.Muted
	}

	line := style.Render(label)
	b.WriteString(line)
	if lw := lipgloss.Width(line); lw < width {
		b.WriteString(bgFill.Render(strings.Repeat(" ", width-lw)))
	}
}
