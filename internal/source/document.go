// Package source holds the immutable snapshot of the file under exploration.
package source

import "strings"

// Document is an immutable snapshot of a file's text. It is replaced
// wholesale on reparse, never mutated.
type Document struct {
	Text         string
	Lines        []string
	MaxLineWidth int
}

// NewDocument builds a Document from raw file text. A trailing newline does
// not produce a phantom empty last line.
func NewDocument(text string) *Document {
	lines := splitLines(text)
	maxWidth := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxWidth {
			maxWidth = n
		}
	}
	return &Document{
		Text:         text,
		Lines:        lines,
		MaxLineWidth: maxWidth,
	}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int { return len(d.Lines) }

// Slice returns the lines in [from, to) clamped to the document, joined
// with newlines. Indices are 0-based.
func (d *Document) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(d.Lines) {
		to = len(d.Lines)
	}
	if from >= to {
		return ""
	}
	return strings.Join(d.Lines[from:to], "\n")
}

// splitLines splits on newline, dropping the empty element a trailing
// newline would otherwise produce.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
