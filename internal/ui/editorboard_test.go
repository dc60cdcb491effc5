package ui

import (
	"strings"
	"testing"

	"github.com/flapboard/flapboard/internal/board"
	"github.com/flapboard/flapboard/internal/editor"
	"github.com/flapboard/flapboard/internal/markup"
)

func rowText(g board.Grid, r int) string {
	var b strings.Builder
	for _, tok := range g.Row(r) {
		if tok.Kind == markup.KindCharacter {
			b.WriteRune(tok.Rune)
		} else {
			b.WriteRune('#')
		}
	}
	return b.String()
}

func TestComposeDocumentCentersLine(t *testing.T) {
	doc := editor.FromMarkup("HI")
	doc.SetAlign(editor.AlignCenter)

	grid := composeDocument(doc, false)

	if grid[0][10] != markup.Character('H') || grid[0][11] != markup.Character('I') {
		t.Fatalf("expected centered content, got row %q", rowText(grid, 0))
	}
	if !grid[0][0].IsBlank() {
		t.Fatalf("expected leading blank cells")
	}
}

func TestComposeDocumentRightAlignsLine(t *testing.T) {
	doc := editor.FromMarkup("OK")
	doc.SetAlign(editor.AlignRight)

	grid := composeDocument(doc, false)

	if grid[0][20] != markup.Character('O') || grid[0][21] != markup.Character('K') {
		t.Fatalf("expected right-aligned content, got row %q", rowText(grid, 0))
	}
}

func TestComposeDocumentStampsDraftOverlay(t *testing.T) {
	doc := editor.FromMarkup("HELLO")

	grid := composeDocument(doc, true)

	last := rowText(grid, board.Rows-1)
	if !strings.Contains(last, "DRAFT") {
		t.Fatalf("expected draft marker on last row, got %q", last)
	}
	if grid[board.Rows-1][14] != markup.Character('D') {
		t.Fatalf("expected overlay anchored at the status column")
	}
}

func TestCaretCellCountsDirectivesAsOneCell(t *testing.T) {
	doc := editor.FromMarkup("{red}AB")
	for i := 0; i < len([]rune("{red}AB")); i++ {
		doc.MoveRight()
	}

	row, col := caretCell(doc)
	if row != 0 || col != 3 {
		t.Fatalf("expected caret at cell (0,3), got (%d,%d)", row, col)
	}
}

func TestCaretCellClampsToBoard(t *testing.T) {
	doc := editor.FromMarkup(strings.Repeat("X", 40))
	doc.MoveEnd()

	_, col := caretCell(doc)
	if col != board.Columns-1 {
		t.Fatalf("expected caret clamped to last column, got %d", col)
	}
}
