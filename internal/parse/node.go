package parse

import "fmt"

// NoLine is the sentinel StartLine for a node with no known location.
const NoLine = -1

// Range is the source span a node covers. Lines and columns are 1-indexed;
// the end column is exclusive. StartLine == NoLine means no location.
type Range struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// NoRange returns the "no location" sentinel range.
func NoRange() Range { return Range{StartLine: NoLine} }

// Known reports whether the range carries a real location.
func (r Range) Known() bool { return r.StartLine != NoLine }

func (r Range) String() string {
	if !r.Known() {
		return "<no location>"
	}
	return fmt.Sprintf("%d:%d-%d:%d", r.StartLine, r.StartCol, r.EndLine, r.EndCol)
}

// Node is one node of the parsed syntax tree. Nodes are owned by the
// Context that produced them and are immutable after Parse returns.
type Node struct {
	Tag      string
	ID       uint64
	Range    Range
	Children []*Node
}

// Walk visits n and all its descendants depth-first, preorder.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) { total++ })
	return total
}
