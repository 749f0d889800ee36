package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/xonecas/astex/internal/parse"
	"github.com/xonecas/astex/internal/source"
)

// PlainLanguage is the Chroma lexer used for the unselected line slices
// around an underlined range.
const PlainLanguage = "plaintext"

// RenderDocument renders the whole document highlighted in the source
// language with no underline. Used for the initial view, after reparse, and
// as the fallback for a range with no location.
func RenderDocument(doc *source.Document, language, theme string) string {
	var b strings.Builder
	for i, segs := range TokenizeLines(doc.Text, language, theme) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(RenderLine(segs))
	}
	return b.String()
}

// RenderRange renders the document with rng's exact characters underlined.
// Lines before and after the range are tokenized as plain text; the selected
// lines are tokenized in the source language and every rendered byte outside
// the underline window is identical to an ordinary rendering.
func RenderRange(doc *source.Document, rng parse.Range, language, theme string) string {
	if !rng.Known() {
		return RenderDocument(doc, language, theme)
	}

	// Re-anchor to the selected slice: line 0 is rng.StartLine, columns are
	// 0-based with an exclusive end.
	startLine := 0
	startCol := rng.StartCol - 1
	endLine := rng.EndLine - rng.StartLine
	endCol := rng.EndCol - 1

	var parts []string
	if rng.StartLine > 1 {
		parts = append(parts, renderSlice(doc.Slice(0, rng.StartLine-1), theme))
	}
	parts = append(parts, renderUnderlined(
		doc.Slice(rng.StartLine-1, rng.EndLine),
		language, theme,
		startLine, startCol, endLine, endCol,
	))
	if rng.EndLine < doc.LineCount() {
		parts = append(parts, renderSlice(doc.Slice(rng.EndLine, doc.LineCount()), theme))
	}
	return strings.Join(parts, "\n")
}

// renderSlice renders a line slice in plain-text mode.
func renderSlice(text, theme string) string {
	var b strings.Builder
	for i, segs := range TokenizeLines(text, PlainLanguage, theme) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(RenderLine(segs))
	}
	return b.String()
}

// renderUnderlined renders the selected slice, adding the underline
// attribute to exactly the characters inside the relative range.
func renderUnderlined(text, language, theme string, startLine, startCol, endLine, endCol int) string {
	var b strings.Builder
	for l, segs := range TokenizeLines(text, language, theme) {
		if l > 0 {
			b.WriteByte('\n')
		}

		// Guard: slice bounds make this unreachable, but a line outside the
		// relative range must never be underlined.
		if l < startLine || l > endLine {
			b.WriteString(RenderLine(segs))
			continue
		}

		lo := 0
		if l == startLine {
			lo = startCol
		}
		hi := lineWidth(segs)
		if l == endLine {
			hi = endCol
		}
		b.WriteString(RenderLine(underlineSegments(segs, lo, hi)))
	}
	return b.String()
}

// lineWidth sums the rune widths of a line's segments.
func lineWidth(segs []Segment) int {
	w := 0
	for _, s := range segs {
		w += s.Width()
	}
	return w
}

// underlineSegments splits a line's segments so that the columns in [lo, hi)
// carry the underline attribute on top of their existing style. Segments
// entirely outside the window are passed through untouched — splitting must
// never alter the style of characters outside the window. Empty pieces are
// omitted.
func underlineSegments(segs []Segment, lo, hi int) []Segment {
	out := make([]Segment, 0, len(segs)+2)
	col := 0
	for _, seg := range segs {
		runes := []rune(seg.Text)
		segStart := col
		segEnd := col + len(runes)
		col = segEnd

		if segEnd <= lo || segStart >= hi {
			out = append(out, seg)
			continue
		}

		from := lo - segStart
		if from < 0 {
			from = 0
		}
		to := hi - segStart
		if to > len(runes) {
			to = len(runes)
		}

		if from > 0 {
			out = append(out, Segment{Text: string(runes[:from]), Style: seg.Style})
		}
		if to > from {
			mid := seg.Style
			mid.Underline = chroma.Yes
			out = append(out, Segment{Text: string(runes[from:to]), Style: mid})
		}
		if to < len(runes) {
			out = append(out, Segment{Text: string(runes[to:]), Style: seg.Style})
		}
	}
	return out
}
