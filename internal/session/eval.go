package session

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Evaluator executes snippets one at a time against a State. Submissions are
// synchronous; the caller serializes them through the UI event loop.
type Evaluator struct {
	opts *syntax.FileOptions
}

// NewEvaluator returns an evaluator with a permissive dialect: set literals,
// while loops, top-level control flow, global reassignment and recursion are
// all allowed, since snippets are interactive scratch code.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		opts: &syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
			Recursion:       true,
		},
	}
}

// Submit parses and runs one snippet. The boolean reports whether the snippet
// produced a value; when it did, the value is appended to st.History and
// bound as _<index> for later submissions. Errors are returned, never
// panicked, and any environment mutation made before the failing point is
// retained.
func (e *Evaluator) Submit(snippet string, st *State, hooks Hooks) (starlark.Value, bool, error) {
	e.refreshBindings(st, hooks)

	f, err := e.opts.Parse("<input>", snippet, 0)
	if err != nil {
		return nil, false, err
	}

	// Classify the trailing statement. A bare expression is pulled out of
	// the chunk and evaluated separately after it runs; an assignment stays
	// in the chunk and its target is evaluated afterwards. Anything else
	// produces no value.
	var trailing syntax.Expr
	if n := len(f.Stmts); n > 0 {
		switch last := f.Stmts[n-1].(type) {
		case *syntax.ExprStmt:
			trailing = last.X
			f.Stmts = f.Stmts[:n-1]
		case *syntax.AssignStmt:
			trailing = last.LHS
		}
	}

	thread := &starlark.Thread{
		Name: "session",
		Print: func(_ *starlark.Thread, msg string) {
			if hooks.Print != nil {
				hooks.Print(msg)
			}
		},
	}

	if err := starlark.ExecREPLChunk(f, thread, st.Env); err != nil {
		return nil, false, err
	}
	if trailing == nil {
		return nil, false, nil
	}

	val, err := starlark.EvalExprOptions(e.opts, thread, trailing, st.Env)
	if err != nil {
		return nil, false, err
	}
	if val == starlark.None {
		return nil, false, nil
	}

	st.History = append(st.History, val)
	st.Env[historyName(len(st.History)-1)] = val
	return val, true, nil
}

// refreshBindings rebinds the per-submission names: current_node, the _<i>
// history entries, and the host builtins. History bindings are rewritten
// every time so they stay valid even if a snippet reassigned them.
func (e *Evaluator) refreshBindings(st *State, hooks Hooks) {
	if st.Selected != nil {
		st.Env["current_node"] = NodeValue(st.Selected)
	} else {
		st.Env["current_node"] = starlark.None
	}
	for i, v := range st.History {
		st.Env[historyName(i)] = v
	}
	st.Env["select"] = selectBuiltin(hooks)
	st.Env["reparse"] = reparseBuiltin(hooks)
}

func historyName(i int) string { return fmt.Sprintf("_%d", i) }

// selectBuiltin accepts a node value or a bare node id.
func selectBuiltin(hooks Hooks) *starlark.Builtin {
	return starlark.NewBuiltin("select", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var target starlark.Value
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &target); err != nil {
			return nil, err
		}
		var id uint64
		switch v := target.(type) {
		case nodeValue:
			id = v.node.ID
		case starlark.Int:
			u, ok := v.Uint64()
			if !ok {
				return nil, fmt.Errorf("select: invalid node id %v", v)
			}
			id = u
		default:
			return nil, fmt.Errorf("select: want node or int, got %s", target.Type())
		}
		if hooks.Select != nil {
			if err := hooks.Select(id); err != nil {
				return nil, err
			}
		}
		return starlark.None, nil
	})
}

func reparseBuiltin(hooks Hooks) *starlark.Builtin {
	return starlark.NewBuiltin("reparse", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		if hooks.Reparse != nil {
			if err := hooks.Reparse(); err != nil {
				return nil, err
			}
		}
		return starlark.None, nil
	})
}
