package tui

import "github.com/xonecas/astex/internal/explore"

// ---------------------------------------------------------------------------
// Tree component — a flattened view over the projected AST with per-node
// expansion state. The cursor is the highlighted row; selection is a separate
// concept owned by the Model.
// ---------------------------------------------------------------------------

// treeItem is one visible row of the flattened tree.
type treeItem struct {
	node  *explore.TreeNode
	depth int
}

type treeView struct {
	roots    []*explore.TreeNode
	expanded map[uint64]bool
	items    []treeItem
	cursor   int
	scroll   int
}

// newTreeView builds a tree with the roots expanded one level.
func newTreeView(roots []*explore.TreeNode) treeView {
	t := treeView{roots: roots, expanded: make(map[uint64]bool)}
	for _, r := range roots {
		t.expanded[r.ID] = true
	}
	t.rebuild()
	return t
}

// rebuild re-flattens the visible rows after an expansion change.
func (t *treeView) rebuild() {
	t.items = t.items[:0]
	for _, r := range t.roots {
		t.flatten(r, 0)
	}
	if t.cursor >= len(t.items) {
		t.cursor = len(t.items) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *treeView) flatten(n *explore.TreeNode, depth int) {
	t.items = append(t.items, treeItem{node: n, depth: depth})
	if !t.expanded[n.ID] {
		return
	}
	for _, c := range n.Children {
		t.flatten(c, depth+1)
	}
}

// Current returns the node under the cursor, or nil for an empty tree.
func (t *treeView) Current() *explore.TreeNode {
	if t.cursor < 0 || t.cursor >= len(t.items) {
		return nil
	}
	return t.items[t.cursor].node
}

func (t *treeView) MoveUp()   { t.moveCursor(-1) }
func (t *treeView) MoveDown() { t.moveCursor(1) }

func (t *treeView) moveCursor(delta int) {
	t.cursor = clamp(t.cursor+delta, 0, len(t.items)-1)
}

// Expand opens the cursor node.
func (t *treeView) Expand() {
	n := t.Current()
	if n == nil || n.IsLeaf || t.expanded[n.ID] {
		return
	}
	t.expanded[n.ID] = true
	t.rebuild()
}

// Collapse closes the cursor node, or jumps to its parent when it is already
// closed or a leaf.
func (t *treeView) Collapse() {
	n := t.Current()
	if n == nil {
		return
	}
	if !n.IsLeaf && t.expanded[n.ID] {
		delete(t.expanded, n.ID)
		t.rebuild()
		return
	}
	if n.Parent != nil {
		t.CursorTo(n.Parent.ID)
	}
}

// Toggle flips the cursor node's expansion.
func (t *treeView) Toggle() {
	n := t.Current()
	if n == nil || n.IsLeaf {
		return
	}
	if t.expanded[n.ID] {
		delete(t.expanded, n.ID)
	} else {
		t.expanded[n.ID] = true
	}
	t.rebuild()
}

// Reveal expands every ancestor of the node so it becomes visible, then moves
// the cursor to it. Used by the select() snippet builtin.
func (t *treeView) Reveal(n *explore.TreeNode) {
	for p := n.Parent; p != nil; p = p.Parent {
		t.expanded[p.ID] = true
	}
	t.rebuild()
	t.CursorTo(n.ID)
}

// CursorTo places the cursor on the visible row for id, if any.
func (t *treeView) CursorTo(id uint64) {
	for i, it := range t.items {
		if it.node.ID == id {
			t.cursor = i
			return
		}
	}
}

// EnsureVisible scrolls so the cursor row is inside a viewport of the given
// height.
func (t *treeView) EnsureVisible(height int) {
	if height <= 0 {
		return
	}
	if t.cursor < t.scroll {
		t.scroll = t.cursor
	}
	if t.cursor >= t.scroll+height {
		t.scroll = t.cursor - height + 1
	}
	t.clampScroll(height)
}

// Scroll moves the viewport by delta rows without moving the cursor.
func (t *treeView) Scroll(delta, height int) {
	t.scroll += delta
	t.clampScroll(height)
}

func (t *treeView) clampScroll(height int) {
	t.scroll = clamp(t.scroll, 0, len(t.items)-height)
}
