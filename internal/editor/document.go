// Package editor models the content being edited for a split-flap display
// as a document of at most six lines, mirroring the board's row count at
// edit time. Mutating methods apply atomically and report whether anything
// changed; a rejected edit leaves the document untouched.
package editor

// MaxLines is the structural ceiling on document lines, matching the
// display's row count.
const MaxLines = 6

// Alignment positions a line's content within its row.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Line is one editable text span plus its per-line attributes.
type Line struct {
	text  []rune
	Align Alignment
	Wrap  bool
}

// NewLine builds a left-aligned line holding text.
func NewLine(text string) Line {
	return Line{text: []rune(text)}
}

// Text returns the line content.
func (l Line) Text() string { return string(l.text) }

// Len returns the content length in runes.
func (l Line) Len() int { return len(l.text) }

// Empty reports whether the line has no content.
func (l Line) Empty() bool { return len(l.text) == 0 }

// Caret is a position within the document: a line index and a rune offset
// within that line.
type Caret struct {
	Line int
	Col  int
}

// Document is an ordered sequence of 1..MaxLines lines plus a caret.
type Document struct {
	lines []Line
	caret Caret
}

// New returns a document holding a single empty line with the caret at its
// start.
func New() *Document {
	return &Document{lines: []Line{{}}}
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int { return len(d.lines) }

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []Line {
	dup := make([]Line, len(d.lines))
	copy(dup, d.lines)
	return dup
}

// LineAt returns the line at index, or a zero Line when out of range.
func (d *Document) LineAt(index int) Line {
	if index < 0 || index >= len(d.lines) {
		return Line{}
	}
	return d.lines[index]
}

// Caret returns the current caret position.
func (d *Document) Caret() Caret { return d.caret }

// SetAlign sets the alignment attribute of the caret's line.
func (d *Document) SetAlign(align Alignment) bool {
	line := &d.lines[d.caret.Line]
	if line.Align == align {
		return false
	}
	line.Align = align
	return true
}

// ToggleWrap flips the wrap attribute of the caret's line.
func (d *Document) ToggleWrap() bool {
	line := &d.lines[d.caret.Line]
	line.Wrap = !line.Wrap
	return true
}

// InsertText inserts text at the caret and advances it. Newlines are
// structural and rejected here; use BreakLine. Per-character width is not
// enforced — content past the display width is truncated at render time,
// not at edit time.
func (d *Document) InsertText(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	for _, r := range insert {
		if r == '\n' || r == '\r' {
			return false
		}
	}
	line := &d.lines[d.caret.Line]
	col := d.clampCol(d.caret.Col)
	updated := make([]rune, 0, len(line.text)+len(insert))
	updated = append(updated, line.text[:col]...)
	updated = append(updated, insert...)
	updated = append(updated, line.text[col:]...)
	line.text = updated
	d.caret.Col = col + len(insert)
	return true
}

// DeleteBackward removes the rune before the caret. At the start of a line
// it joins the line onto the previous one.
func (d *Document) DeleteBackward() bool {
	col := d.clampCol(d.caret.Col)
	if col > 0 {
		line := &d.lines[d.caret.Line]
		line.text = append(line.text[:col-1], line.text[col:]...)
		d.caret.Col = col - 1
		return true
	}
	if d.caret.Line == 0 {
		return false
	}
	prev := &d.lines[d.caret.Line-1]
	joinCol := len(prev.text)
	prev.text = append(prev.text, d.lines[d.caret.Line].text...)
	d.lines = append(d.lines[:d.caret.Line], d.lines[d.caret.Line+1:]...)
	d.caret = Caret{Line: d.caret.Line - 1, Col: joinCol}
	return true
}

// MoveLeft moves the caret one position left, crossing to the end of the
// previous line at a line start.
func (d *Document) MoveLeft() bool {
	col := d.clampCol(d.caret.Col)
	if col > 0 {
		d.caret.Col = col - 1
		return true
	}
	if d.caret.Line == 0 {
		return false
	}
	d.caret = Caret{Line: d.caret.Line - 1, Col: d.lines[d.caret.Line-1].Len()}
	return true
}

// MoveRight moves the caret one position right, crossing to the start of
// the next line at a line end.
func (d *Document) MoveRight() bool {
	col := d.clampCol(d.caret.Col)
	if col < d.lines[d.caret.Line].Len() {
		d.caret.Col = col + 1
		return true
	}
	if d.caret.Line+1 >= len(d.lines) {
		return false
	}
	d.caret = Caret{Line: d.caret.Line + 1, Col: 0}
	return true
}

// MoveUp moves the caret to the previous line, clamping the column.
func (d *Document) MoveUp() bool {
	if d.caret.Line == 0 {
		return false
	}
	d.caret.Line--
	d.caret.Col = d.clampCol(d.caret.Col)
	return true
}

// MoveDown moves the caret to the next line, clamping the column.
func (d *Document) MoveDown() bool {
	if d.caret.Line+1 >= len(d.lines) {
		return false
	}
	d.caret.Line++
	d.caret.Col = d.clampCol(d.caret.Col)
	return true
}

// MoveHome moves the caret to the start of its line.
func (d *Document) MoveHome() bool {
	if d.clampCol(d.caret.Col) == 0 {
		return false
	}
	d.caret.Col = 0
	return true
}

// MoveEnd moves the caret to the end of its line.
func (d *Document) MoveEnd() bool {
	end := d.lines[d.caret.Line].Len()
	if d.clampCol(d.caret.Col) == end {
		return false
	}
	d.caret.Col = end
	return true
}

func (d *Document) clampCol(col int) int {
	max := d.lines[d.caret.Line].Len()
	if col < 0 {
		return 0
	}
	if col > max {
		return max
	}
	return col
}

func (d *Document) clampCaret() {
	if d.caret.Line < 0 {
		d.caret.Line = 0
	}
	if d.caret.Line >= len(d.lines) {
		d.caret.Line = len(d.lines) - 1
	}
	d.caret.Col = d.clampCol(d.caret.Col)
}
