// Package parse wraps the tree-sitter parser behind a revision-aware
// Context. Sitter nodes are projected eagerly into owned Node values so the
// underlying C trees can be closed as soon as parsing finishes, and so node
// identity survives independently of parser memory.
package parse

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
)

// langForExt returns the tree-sitter language for a file extension, or nil.
func langForExt(ext string) *sitter.Language {
	switch ext {
	case ".go":
		return golang.GetLanguage()
	case ".py":
		return python.GetLanguage()
	case ".js", ".mjs", ".jsx":
		return javascript.GetLanguage()
	default:
		return nil
	}
}

// Supported returns true if the file extension has a tree-sitter grammar.
func Supported(path string) bool {
	return langForExt(strings.ToLower(filepath.Ext(path))) != nil
}

// Context parses a single file and hands out the resulting forest. It is
// the revision boundary: AdvanceToNextRevision invalidates everything the
// previous Parse produced. Node IDs are allocated from a counter that is
// never reset, so an ID can never recur across revisions.
type Context struct {
	path     string
	lang     *sitter.Language
	revision int
	nextID   uint64

	text   string
	forest []*Node
}

// NewContext creates a Context for the given file path. The file is not
// read until Parse is called.
func NewContext(path string) (*Context, error) {
	lang := langForExt(strings.ToLower(filepath.Ext(path)))
	if lang == nil {
		return nil, fmt.Errorf("no grammar for %q", filepath.Ext(path))
	}
	return &Context{path: path, lang: lang, nextID: 1}, nil
}

// Path returns the file path this context parses.
func (c *Context) Path() string { return c.path }

// Revision returns the current revision number, starting at 0.
func (c *Context) Revision() int { return c.revision }

// Parse reads and parses the file, returning the forest of top-level nodes.
// The result is cached until AdvanceToNextRevision.
func (c *Context) Parse(ctx context.Context) ([]*Node, error) {
	if c.forest != nil {
		return c.forest, nil
	}

	src, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(c.lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}
	defer tree.Close()

	c.text = string(src)
	c.forest = c.wrapForest(tree.RootNode())
	return c.forest, nil
}

// FileText returns the text of the file as of the last Parse.
func (c *Context) FileText() string { return c.text }

// AdvanceToNextRevision invalidates the cached text and forest so the next
// Parse re-reads the file. The preserveUnrelated flag is accepted for
// interface parity with incremental parsers; this context always reparses
// from scratch.
func (c *Context) AdvanceToNextRevision(preserveUnrelated bool) {
	_ = preserveUnrelated
	c.revision++
	c.text = ""
	c.forest = nil
}

// wrapForest projects the sitter root's named children into owned Nodes.
// A file whose root has no named children yields the root itself, so the
// forest is never empty for a non-empty parse.
func (c *Context) wrapForest(root *sitter.Node) []*Node {
	count := int(root.NamedChildCount())
	if count == 0 {
		return []*Node{c.wrap(root)}
	}
	forest := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		forest = append(forest, c.wrap(root.NamedChild(i)))
	}
	return forest
}

// wrap converts one sitter node and its named descendants, assigning IDs
// in depth-first preorder.
func (c *Context) wrap(sn *sitter.Node) *Node {
	n := &Node{
		Tag:   sn.Type(),
		ID:    c.nextID,
		Range: rangeOf(sn),
	}
	c.nextID++

	count := int(sn.NamedChildCount())
	if count > 0 {
		n.Children = make([]*Node, 0, count)
		for i := 0; i < count; i++ {
			n.Children = append(n.Children, c.wrap(sn.NamedChild(i)))
		}
	}
	return n
}

// rangeOf converts sitter's 0-based points into a 1-indexed Range with an
// exclusive end column.
func rangeOf(sn *sitter.Node) Range {
	start := sn.StartPoint()
	end := sn.EndPoint()
	return Range{
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column) + 1,
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column) + 1,
	}
}
