package ui

import (
	"strings"

	"github.com/flapboard/flapboard/internal/board"
	"github.com/flapboard/flapboard/internal/editor"
	"github.com/flapboard/flapboard/internal/markup"
)

// draftStatus is stamped into the last row of the edit preview while the
// document has unsaved changes.
const draftStatus = "DRAFT   "

// composeDocument renders the editor document onto the fixed grid,
// honoring per-line alignment. Alignment is an edit-time attribute: it is
// baked into cell positions here, not carried in the page markup.
func composeDocument(doc *editor.Document, dirty bool) board.Grid {
	lines := doc.Lines()
	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = strings.Repeat(" ", alignmentPad(line)) + line.Text()
	}
	text := strings.Join(padded, "\n")
	if dirty {
		return board.Compose(text, board.StatusOverlay(draftStatus))
	}
	return board.Compose(text)
}

// alignmentPad returns the number of blank cells to insert before a
// line's content for its alignment. Content wider than the row aligns
// left; the compositor truncates it.
func alignmentPad(line editor.Line) int {
	width := len(markup.ParseLine(line.Text()))
	if width >= board.Columns {
		return 0
	}
	switch line.Align {
	case editor.AlignCenter:
		return (board.Columns - width) / 2
	case editor.AlignRight:
		return board.Columns - width
	default:
		return 0
	}
}

// caretCell maps the caret's rune offset to a grid cell, accounting for
// alignment padding and for directives that occupy a single cell.
func caretCell(doc *editor.Document) (row, col int) {
	caret := doc.Caret()
	line := doc.LineAt(caret.Line)
	text := []rune(line.Text())
	offset := caret.Col
	if offset > len(text) {
		offset = len(text)
	}
	cells := len(markup.ParseLine(string(text[:offset])))
	col = alignmentPad(line) + cells
	if col >= board.Columns {
		col = board.Columns - 1
	}
	row = caret.Line
	if row >= board.Rows {
		row = board.Rows - 1
	}
	return row, col
}
