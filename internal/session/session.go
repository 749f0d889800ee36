// Package session runs user-submitted snippets against a persistent Starlark
// environment. The environment and result history outlive reparses; only the
// node bindings are refreshed per submission.
package session

import (
	"go.starlark.net/starlark"

	"github.com/xonecas/astex/internal/parse"
)

// State is the session-lifetime snippet state. Created once at startup and
// threaded through every submission; reparse never touches it except to
// clear Selected.
type State struct {
	// History records, in order, every value a submission produced. Entries
	// are addressable from snippets as _0, _1, ...
	History []starlark.Value

	// Env is the mutable global scope snippets execute in. Bindings persist
	// across submissions.
	Env starlark.StringDict

	// Selected is the AST node currently highlighted in the tree, exposed to
	// snippets as current_node. Nil when nothing is selected.
	Selected *parse.Node
}

// NewState returns an empty session.
func NewState() *State {
	return &State{Env: make(starlark.StringDict)}
}

// SelectNode records a tree selection so the next submission sees it as
// current_node.
func (st *State) SelectNode(n *parse.Node) { st.Selected = n }

// ClearSelection drops the selected node, e.g. after a reparse invalidates
// every node of the previous revision.
func (st *State) ClearSelection() { st.Selected = nil }

// Hooks are the host callbacks a snippet can reach. Any nil hook is a no-op.
type Hooks struct {
	// Print receives the text of each print(...) call.
	Print func(text string)

	// Select is called by the select(node) builtin with the node's id.
	Select func(id uint64) error

	// Reparse is called by the reparse() builtin.
	Reparse func() error
}
