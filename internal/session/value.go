package session

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/xonecas/astex/internal/parse"
)

// nodeValue exposes a parse.Node to snippets as a read-only Starlark value.
// Attribute access never mutates the underlying node.
type nodeValue struct {
	node *parse.Node
}

// NodeValue wraps an AST node for use inside the snippet environment.
func NodeValue(n *parse.Node) starlark.Value { return nodeValue{node: n} }

var nodeAttrNames = []string{
	"children", "end_col", "end_line", "id", "start_col", "start_line", "tag",
}

func (v nodeValue) String() string {
	if v.node.Range.Known() {
		return fmt.Sprintf("<node %s %s>", v.node.Tag, v.node.Range)
	}
	return fmt.Sprintf("<node %s>", v.node.Tag)
}

func (v nodeValue) Type() string          { return "node" }
func (v nodeValue) Freeze()               {}
func (v nodeValue) Truth() starlark.Bool  { return starlark.True }
func (v nodeValue) Hash() (uint32, error) { return uint32(v.node.ID) ^ uint32(v.node.ID>>32), nil }

func (v nodeValue) Attr(name string) (starlark.Value, error) {
	switch name {
	case "tag":
		return starlark.String(v.node.Tag), nil
	case "id":
		return starlark.MakeUint64(v.node.ID), nil
	case "start_line":
		return starlark.MakeInt(v.node.Range.StartLine), nil
	case "start_col":
		return starlark.MakeInt(v.node.Range.StartCol), nil
	case "end_line":
		return starlark.MakeInt(v.node.Range.EndLine), nil
	case "end_col":
		return starlark.MakeInt(v.node.Range.EndCol), nil
	case "children":
		kids := make([]starlark.Value, len(v.node.Children))
		for i, c := range v.node.Children {
			kids[i] = nodeValue{node: c}
		}
		return starlark.NewList(kids), nil
	}
	return nil, nil
}

func (v nodeValue) AttrNames() []string { return nodeAttrNames }
