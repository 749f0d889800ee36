// Package highlight provides syntax highlighting via Chroma, decoupled from
// any specific TUI component. Unlike a plain formatter it exposes the styled
// token stream itself, so callers can rewrite segments (e.g. to overlay an
// underline) before rendering to ANSI.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Segment is a run of characters sharing one resolved style.
type Segment struct {
	Text  string
	Style chroma.StyleEntry
}

// Width returns the segment's length in runes.
func (s Segment) Width() int { return len([]rune(s.Text)) }

// TokenizeLines tokenizes text with the given Chroma language and theme and
// groups the styled segments by line. Newlines are never part of a segment.
// Unknown languages fall back to plain text; the result always has at least
// one line and concatenating a line's segments reproduces that input line.
func TokenizeLines(text, language, theme string) [][]Segment {
	lex := lexers.Get(language)
	if lex == nil {
		lex = lexers.Fallback
	}
	lex = chroma.Coalesce(lex)
	sty := styles.Get(theme)

	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return plainLines(text)
	}

	lines := [][]Segment{nil}
	for tok := it(); tok != chroma.EOF; tok = it() {
		entry := sty.Get(tok.Type)
		pieces := strings.Split(tok.Value, "\n")
		for i, piece := range pieces {
			if i > 0 {
				lines = append(lines, nil)
			}
			if piece == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], Segment{Text: piece, Style: entry})
		}
	}

	// Chroma lexers ensure a trailing newline; drop the phantom empty line
	// it produces when the input had none.
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 && !strings.HasSuffix(text, "\n") {
		lines = lines[:n-1]
	}
	return lines
}

// plainLines splits text into unstyled per-line segments.
func plainLines(text string) [][]Segment {
	raw := strings.Split(text, "\n")
	lines := make([][]Segment, len(raw))
	for i, l := range raw {
		if l != "" {
			lines[i] = []Segment{{Text: l}}
		}
	}
	return lines
}

// Render converts a segment to an ANSI-styled string. Unstyled segments are
// emitted verbatim; styled segments are self-contained (reset-terminated).
func Render(s Segment) string {
	params := sgrParams(s.Style)
	if params == "" {
		return s.Text
	}
	return "\x1b[" + params + "m" + s.Text + "\x1b[0m"
}

// RenderLine renders one line's segments to a single ANSI string.
func RenderLine(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(Render(s))
	}
	return b.String()
}

// sgrParams builds the SGR parameter list for a style entry. Returns "" for
// an entry with no renderable attributes.
func sgrParams(e chroma.StyleEntry) string {
	var parts []string
	if e.Bold == chroma.Yes {
		parts = append(parts, "1")
	}
	if e.Italic == chroma.Yes {
		parts = append(parts, "3")
	}
	if e.Underline == chroma.Yes {
		parts = append(parts, "4")
	}
	if e.Colour.IsSet() {
		parts = append(parts, fmt.Sprintf("38;2;%d;%d;%d", e.Colour.Red(), e.Colour.Green(), e.Colour.Blue()))
	}
	if e.Background.IsSet() {
		parts = append(parts, fmt.Sprintf("48;2;%d;%d;%d", e.Background.Red(), e.Background.Green(), e.Background.Blue()))
	}
	return strings.Join(parts, ";")
}
