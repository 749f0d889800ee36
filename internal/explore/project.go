// Package explore projects the parser's forest into the UI-facing tree and
// orchestrates rebuilds across parser revisions.
package explore

import "github.com/xonecas/astex/internal/parse"

// TreeNode is the UI-facing projection of one AST node. Label mirrors the
// node's tag and the payload is the AST node itself, addressed by its ID.
type TreeNode struct {
	Label    string
	ID       uint64
	AST      *parse.Node
	Parent   *TreeNode
	Children []*TreeNode
	IsLeaf   bool
}

// Project converts a forest into root TreeNodes plus an id→node lookup.
// Every AST node is projected, including ones with no source location.
// A node is registered in the lookup before its children are visited.
func Project(forest []*parse.Node) ([]*TreeNode, map[uint64]*TreeNode) {
	lookup := make(map[uint64]*TreeNode)
	roots := make([]*TreeNode, 0, len(forest))
	for _, ast := range forest {
		roots = append(roots, project(ast, nil, lookup))
	}
	return roots, lookup
}

func project(ast *parse.Node, parent *TreeNode, lookup map[uint64]*TreeNode) *TreeNode {
	n := &TreeNode{
		Label:  ast.Tag,
		ID:     ast.ID,
		AST:    ast,
		Parent: parent,
		IsLeaf: len(ast.Children) == 0,
	}
	lookup[n.ID] = n

	for _, child := range ast.Children {
		n.Children = append(n.Children, project(child, n, lookup))
	}
	return n
}
