package parse

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const goSample = `package main

import "fmt"

func main() {
	fmt.Println("hello")
}
`

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"main.go", true},
		{"script.py", true},
		{"app.js", true},
		{"APP.JS", true},
		{"notes.txt", false},
		{"Makefile", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewContext_Unsupported(t *testing.T) {
	if _, err := NewContext("readme.txt"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestParse_Go(t *testing.T) {
	path := writeSample(t, "main.go", goSample)
	c, err := NewContext(path)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	forest, err := c.Parse(context.Background())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(forest) == 0 {
		t.Fatal("empty forest")
	}
	if c.FileText() != goSample {
		t.Errorf("FileText mismatch:\n%q", c.FileText())
	}

	tags := make(map[string]bool)
	for _, root := range forest {
		root.Walk(func(n *Node) { tags[n.Tag] = true })
	}
	for _, want := range []string{"package_clause", "import_declaration", "function_declaration"} {
		if !tags[want] {
			t.Errorf("missing top-level tag %q", want)
		}
	}
}

func TestParse_RangesAreOneIndexed(t *testing.T) {
	path := writeSample(t, "main.go", goSample)
	c, err := NewContext(path)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	forest, err := c.Parse(context.Background())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	first := forest[0]
	if first.Range.StartLine != 1 || first.Range.StartCol != 1 {
		t.Errorf("first node range = %v, want start 1:1", first.Range)
	}
	for _, root := range forest {
		root.Walk(func(n *Node) {
			r := n.Range
			if !r.Known() {
				return
			}
			if r.StartLine < 1 || r.StartCol < 1 || r.EndLine < r.StartLine {
				t.Errorf("node %s has malformed range %v", n.Tag, r)
			}
		})
	}
}

func TestParse_IDsUniqueAcrossRevisions(t *testing.T) {
	path := writeSample(t, "main.go", goSample)
	c, err := NewContext(path)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	collect := func(forest []*Node) map[uint64]bool {
		ids := make(map[uint64]bool)
		for _, root := range forest {
			root.Walk(func(n *Node) {
				if ids[n.ID] {
					t.Errorf("duplicate id %d within one revision", n.ID)
				}
				ids[n.ID] = true
			})
		}
		return ids
	}

	forest, err := c.Parse(context.Background())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	old := collect(forest)

	c.AdvanceToNextRevision(false)
	if c.Revision() != 1 {
		t.Errorf("Revision() = %d, want 1", c.Revision())
	}

	forest, err = c.Parse(context.Background())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	fresh := collect(forest)

	for id := range fresh {
		if old[id] {
			t.Errorf("id %d reused across revisions", id)
		}
	}
}

func TestRangeString(t *testing.T) {
	if got := NoRange().String(); got != "<no location>" {
		t.Errorf("NoRange().String() = %q", got)
	}
	r := Range{StartLine: 2, StartCol: 3, EndLine: 2, EndCol: 7}
	if got := r.String(); got != "2:3-2:7" {
		t.Errorf("Range.String() = %q", got)
	}
}
