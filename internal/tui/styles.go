package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/xonecas/astex/internal/highlight"
)

// styles holds the lipgloss styles for UI chrome, derived from the active
// syntax theme so the chrome matches the highlighted code.
type styles struct {
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Dim        lipgloss.Style
	Error      lipgloss.Style
	Accent     lipgloss.Style
	Border     lipgloss.Style
	Prompt     lipgloss.Style
	StatusText lipgloss.Style
	Cursor     lipgloss.Style // tree cursor row
	Selected   lipgloss.Style // selected node's tree label
	BgFill     lipgloss.Style
}

func newStyles(theme string) styles {
	p := highlight.ThemePalette(theme)
	bg := lipgloss.Color(p.Bg)

	base := lipgloss.NewStyle().Background(bg)
	return styles{
		Text:       base.Foreground(lipgloss.Color(p.Fg)),
		Muted:      base.Foreground(lipgloss.Color(p.Muted)),
		Dim:        base.Foreground(lipgloss.Color(p.Dim)),
		Error:      base.Foreground(lipgloss.Color(p.Error)),
		Accent:     base.Foreground(lipgloss.Color(p.Accent)),
		Border:     base.Foreground(lipgloss.Color(p.Border)),
		Prompt:     base.Foreground(lipgloss.Color(p.Accent)).Bold(true),
		StatusText: base.Foreground(lipgloss.Color(p.Muted)),
		Cursor:     lipgloss.NewStyle().Background(lipgloss.Color(p.Accent)).Foreground(bg),
		Selected:   base.Foreground(lipgloss.Color(p.Accent)).Bold(true),
		BgFill:     base,
	}
}
