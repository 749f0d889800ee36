package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/xonecas/astex/internal/parse"
	"github.com/xonecas/astex/internal/source"
)

const testTheme = "github-dark"

// charStyle is the resolved display state of one rendered rune.
type charStyle struct {
	r         rune
	bold      bool
	italic    bool
	underline bool
	fg        string
	bg        string
}

// sansUnderline returns the style with the underline attribute cleared, for
// comparing everything-but-underline.
func (c charStyle) sansUnderline() charStyle {
	c.underline = false
	return c
}

// scanStyled decodes an ANSI string into per-rune display states. It
// understands exactly the SGR forms Render emits: 0 (reset), 1, 3, 4, and
// 38/48;2;r;g;b.
func scanStyled(t *testing.T, s string) []charStyle {
	t.Helper()
	var out []charStyle
	var cur charStyle

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\x1b' {
			if runes[i] == '\n' {
				continue
			}
			cs := cur
			cs.r = runes[i]
			out = append(out, cs)
			continue
		}
		if i+1 >= len(runes) || runes[i+1] != '[' {
			t.Fatalf("stray ESC at %d", i)
		}
		j := i + 2
		for j < len(runes) && runes[j] != 'm' {
			j++
		}
		if j >= len(runes) {
			t.Fatalf("unterminated SGR at %d", i)
		}
		params := strings.Split(string(runes[i+2:j]), ";")
		for k := 0; k < len(params); k++ {
			switch params[k] {
			case "", "0":
				cur = charStyle{}
			case "1":
				cur.bold = true
			case "3":
				cur.italic = true
			case "4":
				cur.underline = true
			case "38", "48":
				if k+4 >= len(params) || params[k+1] != "2" {
					t.Fatalf("unexpected color SGR %v", params)
				}
				rgb := strings.Join(params[k+1:k+5], ";")
				if params[k] == "38" {
					cur.fg = rgb
				} else {
					cur.bg = rgb
				}
				k += 4
			default:
				t.Fatalf("unexpected SGR param %q in %q", params[k], string(runes[i:j+1]))
			}
		}
		i = j
	}
	return out
}

// underlineRuns maps each rendered line to a per-rune underline flag.
func underlineRuns(t *testing.T, rendered string) [][]bool {
	t.Helper()
	var lines [][]bool
	for _, line := range strings.Split(rendered, "\n") {
		styled := scanStyled(t, line)
		flags := make([]bool, len(styled))
		for i, cs := range styled {
			flags[i] = cs.underline
		}
		lines = append(lines, flags)
	}
	return lines
}

func plainText(t *testing.T, rendered string) string {
	t.Helper()
	var b strings.Builder
	for i, line := range strings.Split(rendered, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cs := range scanStyled(t, line) {
			b.WriteRune(cs.r)
		}
	}
	return b.String()
}

const goDoc = "package main\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n"

func testDoc() *source.Document { return source.NewDocument(goDoc) }

func TestTokenizeLines_Reassembles(t *testing.T) {
	for _, lang := range []string{"go", PlainLanguage} {
		lines := TokenizeLines(goDoc, lang, testTheme)
		want := strings.Split(strings.TrimSuffix(goDoc, "\n"), "\n")
		if len(lines) != len(want) {
			t.Fatalf("%s: got %d lines, want %d", lang, len(lines), len(want))
		}
		for i, segs := range lines {
			var b strings.Builder
			for _, s := range segs {
				b.WriteString(s.Text)
			}
			if b.String() != want[i] {
				t.Errorf("%s line %d: %q != %q", lang, i, b.String(), want[i])
			}
		}
	}
}

func TestRenderRange_SingleLine(t *testing.T) {
	doc := testDoc()
	// Underline "add" on line 3: cols 6..9 (1-based, exclusive end).
	rng := parse.Range{StartLine: 3, StartCol: 6, EndLine: 3, EndCol: 9}
	out := RenderRange(doc, rng, "go", testTheme)

	if got := plainText(t, out); got != strings.TrimSuffix(goDoc, "\n") {
		t.Fatalf("text altered by rendering:\n%q", got)
	}

	for lineIdx, flags := range underlineRuns(t, out) {
		for col, u := range flags {
			want := lineIdx == 2 && col >= 5 && col < 8
			if u != want {
				t.Errorf("line %d col %d: underline = %v, want %v", lineIdx+1, col, u, want)
			}
		}
	}
}

func TestRenderRange_MultiLine(t *testing.T) {
	doc := testDoc()
	// From line 3 col 6 through line 5 col 2 (exclusive): rest of line 3,
	// all of line 4, first char of line 5.
	rng := parse.Range{StartLine: 3, StartCol: 6, EndLine: 5, EndCol: 2}
	out := RenderRange(doc, rng, "go", testTheme)

	lines := underlineRuns(t, out)
	docLines := doc.Lines

	for lineIdx, flags := range lines {
		lineNo := lineIdx + 1
		if len(flags) != len([]rune(docLines[lineIdx])) {
			t.Fatalf("line %d: rendered %d runes, document has %d", lineNo, len(flags), len([]rune(docLines[lineIdx])))
		}
		for col, u := range flags {
			var want bool
			switch {
			case lineNo == 3:
				want = col >= 5 // to end of line
			case lineNo == 4:
				want = true // interior line fully underlined
			case lineNo == 5:
				want = col < 1
			}
			if u != want {
				t.Errorf("line %d col %d: underline = %v, want %v", lineNo, col, u, want)
			}
		}
	}
}

func TestRenderRange_StylesOutsideWindowUnchanged(t *testing.T) {
	doc := testDoc()
	rng := parse.Range{StartLine: 3, StartCol: 6, EndLine: 4, EndCol: 5}
	underlined := RenderRange(doc, rng, "go", testTheme)

	// Ordinary rendering of the selected slice, same language and theme.
	plainLines := TokenizeLines(doc.Slice(2, 4), "go", testTheme)
	wantSlice := make([]string, len(plainLines))
	for i, segs := range plainLines {
		wantSlice[i] = RenderLine(segs)
	}
	gotSlice := strings.Split(underlined, "\n")[2:4]

	for i := range wantSlice {
		got := scanStyled(t, gotSlice[i])
		want := scanStyled(t, wantSlice[i])
		if len(got) != len(want) {
			t.Fatalf("line %d: %d runes vs %d", i, len(got), len(want))
		}
		for c := range got {
			if got[c].sansUnderline() != want[c].sansUnderline() {
				t.Errorf("line %d col %d: style changed outside underline: %+v vs %+v",
					i, c, got[c], want[c])
			}
		}
	}
}

func TestRenderRange_SentinelFallsBackToWholeDocument(t *testing.T) {
	doc := testDoc()
	out := RenderRange(doc, parse.NoRange(), "go", testTheme)

	if out != RenderDocument(doc, "go", testTheme) {
		t.Error("sentinel range did not render the whole document")
	}
	for lineIdx, flags := range underlineRuns(t, out) {
		for col, u := range flags {
			if u {
				t.Errorf("line %d col %d underlined with sentinel range", lineIdx+1, col)
			}
		}
	}
}

func TestUnderlineSegments_SplitsAndCombines(t *testing.T) {
	red := chroma.StyleEntry{Colour: chroma.MustParseColour("#ff0000"), Bold: chroma.Yes}
	blue := chroma.StyleEntry{Colour: chroma.MustParseColour("#0000ff")}
	segs := []Segment{
		{Text: "abc", Style: red},
		{Text: "defg", Style: blue},
		{Text: "hi"},
	}

	// Window covers "cde": splits first and second segments.
	out := underlineSegments(segs, 2, 5)

	var got string
	col := 0
	for _, s := range out {
		for range s.Text {
			inWindow := col >= 2 && col < 5
			if (s.Style.Underline == chroma.Yes) != inWindow {
				t.Errorf("col %d: underline = %v, want %v", col, s.Style.Underline == chroma.Yes, inWindow)
			}
			col++
		}
		got += s.Text
	}
	if got != "abcdefghi" {
		t.Errorf("text mangled: %q", got)
	}

	// The middle piece keeps its original attributes.
	for _, s := range out {
		if s.Style.Underline != chroma.Yes {
			continue
		}
		if s.Text == "c" && s.Style.Bold != chroma.Yes {
			t.Error("underlined piece of bold segment lost bold")
		}
	}
}

func TestUnderlineSegments_FastPathPreservesSegments(t *testing.T) {
	red := chroma.StyleEntry{Colour: chroma.MustParseColour("#ff0000")}
	segs := []Segment{
		{Text: "aaa", Style: red},
		{Text: "bbb"},
		{Text: "ccc", Style: red},
	}

	// Window exactly covers the middle segment.
	out := underlineSegments(segs, 3, 6)
	if len(out) != 3 {
		t.Fatalf("got %d segments, want 3", len(out))
	}
	if out[0] != segs[0] || out[2] != segs[2] {
		t.Error("segments outside the window were rewritten")
	}
	if out[1].Style.Underline != chroma.Yes {
		t.Error("covered segment not underlined")
	}
}

func TestUnderlineSegments_EmptyWindow(t *testing.T) {
	segs := []Segment{{Text: "hello"}}
	out := underlineSegments(segs, 2, 2)

	var got string
	for _, s := range out {
		if s.Style.Underline == chroma.Yes {
			t.Errorf("empty window underlined %q", s.Text)
		}
		if s.Text == "" {
			t.Error("empty piece emitted")
		}
		got += s.Text
	}
	if got != "hello" {
		t.Errorf("text mangled: %q", got)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"script.py", "python"},
		{"Makefile", "make"},
		{"notes.unknown", PlainLanguage},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.path); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
