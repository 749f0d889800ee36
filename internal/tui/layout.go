package tui

import "image"

// ---------------------------------------------------------------------------
// Layout — pane rectangles in screen cells.
// ---------------------------------------------------------------------------

const (
	statusRows   = 2 // separator + status bar
	logRows      = 8 // transcript pane height
	inputRows    = 1
	minPaneWidth = 20
)

// layout holds the screen rectangle of every pane. The divider column sits
// between the tree and the right-hand column.
type layout struct {
	tree   image.Rectangle
	div    image.Rectangle
	code   image.Rectangle
	logSep image.Rectangle
	log    image.Rectangle
	input  image.Rectangle
}

// generateLayout derives pane rectangles from the window size and the
// divider's x position.
func generateLayout(width, height, divX int) layout {
	contentH := height - statusRows
	if contentH < 1 {
		contentH = 1
	}

	rightX := divX + 1
	codeH := contentH - logRows - inputRows - 1 // one row for the log separator
	if codeH < 1 {
		codeH = 1
	}

	return layout{
		tree:   image.Rect(0, 0, divX, contentH),
		div:    image.Rect(divX, 0, divX+1, contentH),
		code:   image.Rect(rightX, 0, width, codeH),
		logSep: image.Rect(rightX, codeH, width, codeH+1),
		log:    image.Rect(rightX, codeH+1, width, codeH+1+logRows),
		input:  image.Rect(rightX, contentH-inputRows, width, contentH),
	}
}

// inRect reports whether cell (x, y) lies within r.
func inRect(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
