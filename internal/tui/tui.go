// Package tui is the interactive parse-tree explorer: a tree pane mirroring
// the AST on the left, the highlighted source with the selected node
// underlined on the right, and a snippet prompt with its transcript below.
package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/astex/internal/explore"
	"github.com/xonecas/astex/internal/highlight"
	"github.com/xonecas/astex/internal/session"
)

// focusArea identifies which pane receives key events.
type focusArea int

const (
	focusTree focusArea = iota
	focusInput
)

// Model is the application model.
type Model struct {
	width  int
	height int
	layout layout
	styles styles
	theme  string

	explorer *explore.Explorer
	state    *session.State
	eval     *session.Evaluator

	tree  treeView
	input inputModel
	focus focusArea

	// selectedID is the AST node currently underlined; 0 when none.
	selectedID uint64
	codeLines  []string // rendered source, one ANSI string per line
	codeScroll int      // first visible source line

	transcript []string // styled transcript lines, oldest first
	logScroll  int      // lines scrolled up from the bottom
}

// New creates the explorer model for an already-loaded file.
func New(exp *explore.Explorer, theme string) Model {
	m := Model{
		explorer: exp,
		state:    session.NewState(),
		eval:     session.NewEvaluator(),
		theme:    theme,
		styles:   newStyles(theme),
		tree:     newTreeView(exp.Roots),
		input:    newInput(),
		focus:    focusTree,
	}
	m.renderFullDocument()
	return m
}

// Init starts cursor blinking.
func (m Model) Init() tea.Cmd {
	return inputBlink
}

// renderFullDocument shows the whole file with no underline.
func (m *Model) renderFullDocument() {
	rendered := highlight.RenderDocument(m.explorer.Doc, m.explorer.Language, m.theme)
	m.codeLines = strings.Split(rendered, "\n")
}

// appendLog adds one pre-styled line to the transcript.
func (m *Model) appendLog(line string) {
	m.transcript = append(m.transcript, line)
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
