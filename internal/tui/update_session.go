package tui

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/astex/internal/explore"
	"github.com/xonecas/astex/internal/highlight"
	"github.com/xonecas/astex/internal/session"
)

// scrollContext is how many lines of context to keep above the selected
// node's first line when jumping the code pane to it.
const scrollContext = 5

// submitSnippet runs the prompt's current text through the evaluator and
// writes the outcome to the transcript.
func (m *Model) submitSnippet() {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return
	}

	m.appendLog(m.styles.Prompt.Render("> ") + m.styles.Text.Render(text))

	hooks := session.Hooks{
		Print:   func(s string) { m.appendLog(m.styles.Text.Render(s)) },
		Select:  m.selectByID,
		Reparse: m.reparse,
	}

	val, ok, err := m.eval.Submit(text, m.state, hooks)
	switch {
	case err != nil:
		log.Debug().Err(err).Str("snippet", text).Msg("snippet failed")
		m.appendLog(m.styles.Error.Render("error: " + firstLine(err.Error())))
	case ok:
		name := fmt.Sprintf("_%d", len(m.state.History)-1)
		m.appendLog(m.styles.Muted.Render(name+" = ") + m.styles.Text.Render(val.String()))
	}

	m.logScroll = 0
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// showNode marks a tree node selected and re-renders the source with the
// node's exact character span underlined.
func (m *Model) showNode(n *explore.TreeNode) {
	m.selectedID = n.ID
	m.state.SelectNode(n.AST)

	rendered := highlight.RenderRange(m.explorer.Doc, n.AST.Range, m.explorer.Language, m.theme)
	m.codeLines = strings.Split(rendered, "\n")

	if n.AST.Range.Known() {
		m.codeScroll = n.AST.Range.StartLine - 1 - scrollContext
	} else {
		m.codeScroll = 0
	}
	m.clampCodeScroll()
}

// selectByID resolves a node id from the current revision's lookup table and
// selects it in the tree. Backs the select() snippet builtin.
func (m *Model) selectByID(id uint64) error {
	n, ok := m.explorer.NodeByID(id)
	if !ok {
		return fmt.Errorf("no node with id %d in the current tree", id)
	}
	m.tree.Reveal(n)
	m.tree.EnsureVisible(m.layout.tree.Dy())
	m.showNode(n)
	return nil
}

// reparse advances the source to its next revision and rebuilds the tree and
// document wholesale. Selection resets; session history and environment
// survive. Backs the reparse() snippet builtin.
func (m *Model) reparse() error {
	if err := m.explorer.Reparse(); err != nil {
		return err
	}

	m.tree = newTreeView(m.explorer.Roots)
	m.selectedID = 0
	m.state.ClearSelection()
	m.renderFullDocument()
	m.codeScroll = 0

	m.appendLog(m.styles.Muted.Render(fmt.Sprintf(
		"reparsed %s: revision %d, %d nodes",
		m.explorer.Path, m.explorer.Revision(), m.explorer.NodeCount(),
	)))
	return nil
}
