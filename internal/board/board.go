// Package board composes markup text into the fixed 6×22 cell grid a
// split-flap display expects. Composition is pure and total: any input
// string yields a fully populated grid, with short rows padded, long rows
// truncated, and missing rows synthesized as blanks.
package board

import (
	"strings"

	"github.com/flapboard/flapboard/internal/markup"
)

// Physical dimensions of the display.
const (
	Rows    = 6
	Columns = 22
)

// statusColumn is where the status overlay starts on the last row, leaving
// room for an eight-cell status word.
const statusColumn = 14

// Grid is one full display frame: exactly Rows×Columns tokens. The zero
// value is not a valid frame; use Compose.
type Grid [Rows][Columns]markup.Token

// Overlay is a short token run stamped into the last row at a fixed
// starting column, overwriting whatever occupied those cells.
type Overlay struct {
	Text   string
	Column int
}

// StatusOverlay places text at the status indicator position in the last
// row.
func StatusOverlay(text string) Overlay {
	return Overlay{Text: text, Column: statusColumn}
}

// Compose turns a multi-line markup string into a Grid. Lines beyond the
// sixth are dropped, rows wider than 22 cells are truncated, and overlays
// are applied last.
func Compose(text string, overlays ...Overlay) Grid {
	lines := strings.Split(text, "\n")
	var g Grid
	for r := 0; r < Rows; r++ {
		var source string
		if r < len(lines) {
			source = lines[r]
		}
		tokens := markup.ParseLine(source)
		for c := 0; c < Columns; c++ {
			if c < len(tokens) {
				g[r][c] = tokens[c]
			} else {
				g[r][c] = markup.Blank
			}
		}
	}
	for _, overlay := range overlays {
		overlay.apply(&g)
	}
	return g
}

func (o Overlay) apply(g *Grid) {
	tokens := markup.ParseLine(o.Text)
	for i, tok := range tokens {
		c := o.Column + i
		if c < 0 {
			continue
		}
		if c >= Columns {
			break
		}
		g[Rows-1][c] = tok
	}
}

// Row returns a copy of one row's tokens.
func (g Grid) Row(r int) []markup.Token {
	if r < 0 || r >= Rows {
		return nil
	}
	row := make([]markup.Token, Columns)
	copy(row, g[r][:])
	return row
}

// Markup serializes the grid back to markup text. Trailing blank cells and
// trailing blank rows are trimmed; Compose of the result reproduces the
// identical grid because padding is re-synthesized.
func (g Grid) Markup() string {
	rows := make([]string, 0, Rows)
	for r := 0; r < Rows; r++ {
		width := Columns
		for width > 0 && g[r][width-1].IsBlank() {
			width--
		}
		rows = append(rows, markup.Serialize(g[r][:width]))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return strings.Join(rows, "\n")
}

// IsBlank reports whether every cell in the grid is a blank character.
func (g Grid) IsBlank() bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if !g[r][c].IsBlank() {
				return false
			}
		}
	}
	return true
}
