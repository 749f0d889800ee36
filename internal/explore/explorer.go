package explore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xonecas/astex/internal/highlight"
	"github.com/xonecas/astex/internal/parse"
	"github.com/xonecas/astex/internal/source"
)

// Explorer owns the per-revision state of the file under exploration: the
// parser context, the document snapshot, and the projected tree. Reparse
// replaces all three wholesale within one call, so a lookup either sees the
// fully-old or fully-new table, never a partial rebuild.
type Explorer struct {
	ctx      *parse.Context
	Path     string
	Language string // Chroma lexer id for the file

	Doc    *source.Document
	Roots  []*TreeNode
	Lookup map[uint64]*TreeNode
}

// New creates an Explorer for path and performs the initial parse.
func New(path string) (*Explorer, error) {
	ctx, err := parse.NewContext(path)
	if err != nil {
		return nil, err
	}
	e := &Explorer{
		ctx:      ctx,
		Path:     path,
		Language: highlight.DetectLanguage(path),
	}
	if err := e.load(); err != nil {
		return nil, err
	}
	return e, nil
}

// load parses the current revision and rebuilds document and projection.
func (e *Explorer) load() error {
	forest, err := e.ctx.Parse(context.Background())
	if err != nil {
		return err
	}
	if len(forest) == 0 {
		return fmt.Errorf("%s: parser produced no forest", e.Path)
	}
	text := e.ctx.FileText()
	if text == "" {
		return fmt.Errorf("%s: parser produced no text", e.Path)
	}

	e.Doc = source.NewDocument(text)
	e.Roots, e.Lookup = Project(forest)

	log.Info().
		Str("path", e.Path).
		Int("revision", e.ctx.Revision()).
		Int("nodes", len(e.Lookup)).
		Msg("loaded parse tree")
	return nil
}

// Reparse advances the parser to the next revision and rebuilds the
// document and projection from the new forest. Session history and
// environment are untouched; the caller resets selection.
func (e *Explorer) Reparse() error {
	e.ctx.AdvanceToNextRevision(false)
	return e.load()
}

// Revision returns the parser's current revision number.
func (e *Explorer) Revision() int { return e.ctx.Revision() }

// NodeByID returns the projected node for an AST id.
func (e *Explorer) NodeByID(id uint64) (*TreeNode, bool) {
	n, ok := e.Lookup[id]
	return n, ok
}

// NodeCount returns the number of projected nodes in the current revision.
func (e *Explorer) NodeCount() int { return len(e.Lookup) }
