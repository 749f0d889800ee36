package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/astex/internal/explore"
)

const sampleSource = `package main

func add(a, b int) int {
	return a + b
}
`

func newTestModel(t *testing.T) *Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.go")
	if err := os.WriteFile(path, []byte(sampleSource), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	exp, err := explore.New(path)
	if err != nil {
		t.Fatalf("explore.New: %v", err)
	}
	m := New(exp, "github-dark")
	m.layout = generateLayout(100, 40, 33)
	m.input.SetWidth(40)
	return &m
}

func transcriptText(m *Model) string {
	var b strings.Builder
	for _, line := range m.transcript {
		b.WriteString(ansi.Strip(line))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestSubmitSnippet_EchoAndResult(t *testing.T) {
	m := newTestModel(t)

	m.input.InsertText("1 + 1")
	m.submitSnippet()

	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
	got := transcriptText(m)
	if !strings.Contains(got, "> 1 + 1") {
		t.Errorf("snippet not echoed:\n%s", got)
	}
	if !strings.Contains(got, "_0 = 2") {
		t.Errorf("result not logged:\n%s", got)
	}
	if len(m.state.History) != 1 {
		t.Errorf("history length %d, want 1", len(m.state.History))
	}
}

func TestSubmitSnippet_ErrorLoggedNotFatal(t *testing.T) {
	m := newTestModel(t)

	m.input.InsertText("bogus_name")
	m.submitSnippet()

	if got := transcriptText(m); !strings.Contains(got, "error:") {
		t.Errorf("error not logged:\n%s", got)
	}

	// Session continues.
	m.input.InsertText("2 + 2")
	m.submitSnippet()
	if got := transcriptText(m); !strings.Contains(got, "_0 = 4") {
		t.Errorf("session did not continue:\n%s", got)
	}
}

func TestSelectBuiltin_MovesSelection(t *testing.T) {
	m := newTestModel(t)

	var wantID uint64
	for id, n := range m.explorer.Lookup {
		if n.Label == "function_declaration" {
			wantID = id
			break
		}
	}
	if wantID == 0 {
		t.Fatal("no function_declaration in lookup")
	}

	m.input.InsertText(fmt.Sprintf("select(%d)", wantID))
	m.submitSnippet()

	if m.selectedID != wantID {
		t.Errorf("selectedID = %d, want %d", m.selectedID, wantID)
	}
	if m.state.Selected == nil || m.state.Selected.ID != wantID {
		t.Errorf("session selection = %v, want id %d", m.state.Selected, wantID)
	}
	if cur := m.tree.Current(); cur == nil || cur.ID != wantID {
		t.Errorf("tree cursor not on selected node")
	}
}

func TestReparseBuiltin_ResetsSelectionKeepsSession(t *testing.T) {
	m := newTestModel(t)

	// Select something and put a value in the environment first.
	m.input.InsertText("x = 5")
	m.submitSnippet()
	if n := m.tree.Current(); n != nil {
		m.showNode(n)
	}
	if m.selectedID == 0 {
		t.Fatal("selection not established")
	}

	m.input.InsertText("reparse()")
	m.submitSnippet()

	if m.selectedID != 0 {
		t.Errorf("selectedID = %d after reparse, want 0", m.selectedID)
	}
	if m.state.Selected != nil {
		t.Error("session selection survived reparse")
	}
	if m.explorer.Revision() != 1 {
		t.Errorf("revision = %d, want 1", m.explorer.Revision())
	}
	if !strings.Contains(transcriptText(m), "reparsed") {
		t.Error("reparse not logged")
	}

	// Environment and history survive.
	m.input.InsertText("x + 1")
	m.submitSnippet()
	if got := transcriptText(m); !strings.Contains(got, "= 6") {
		t.Errorf("environment lost across reparse:\n%s", got)
	}
}

func TestShowNode_ScrollsNearSelection(t *testing.T) {
	m := newTestModel(t)

	var fn *explore.TreeNode
	for _, n := range m.explorer.Lookup {
		if n.Label == "function_declaration" {
			fn = n
			break
		}
	}
	if fn == nil {
		t.Fatal("no function_declaration")
	}

	m.showNode(fn)
	want := clamp(fn.AST.Range.StartLine-1-scrollContext, 0, len(m.codeLines))
	if m.codeScroll != want {
		t.Errorf("codeScroll = %d, want %d", m.codeScroll, want)
	}

	// The rendered output must still cover the whole document.
	if len(m.codeLines) != m.explorer.Doc.LineCount() {
		t.Errorf("rendered %d lines, document has %d", len(m.codeLines), m.explorer.Doc.LineCount())
	}
}
