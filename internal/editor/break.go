package editor

// BreakLine applies a structural line-break request at the caret:
//
//   - Below the ceiling with a non-empty caret line, the line splits at the
//     caret and the caret moves to the start of the new line.
//   - Below the ceiling with an empty caret line, nothing splits; the caret
//     advances into the following line, or wraps to the first line when
//     already on the last.
//   - At the ceiling, an empty last line is first removed and the rules
//     re-applied; a non-empty last line means the request is rejected with
//     no state change.
//
// The return value reports whether document or caret state changed, so a
// wrap-around on a sole empty line reports false.
func (d *Document) BreakLine() bool {
	if len(d.lines) == MaxLines {
		if !d.lines[MaxLines-1].Empty() {
			return false
		}
		onDropped := d.caret.Line == MaxLines-1
		d.lines = d.lines[:MaxLines-1]
		if onDropped {
			// The caret's own (empty) line was removed; the empty-line
			// rule degenerates to wrapping to the first line.
			d.caret = Caret{}
			return true
		}
	}

	line := d.lines[d.caret.Line]
	if line.Empty() {
		before := d.caret
		if d.caret.Line+1 < len(d.lines) {
			d.caret = Caret{Line: d.caret.Line + 1}
		} else {
			d.caret = Caret{}
		}
		return d.caret != before
	}

	col := d.clampCol(d.caret.Col)
	trailing := make([]rune, len(line.text[col:]))
	copy(trailing, line.text[col:])
	d.lines[d.caret.Line].text = line.text[:col]
	next := Line{text: trailing, Align: line.Align, Wrap: line.Wrap}
	d.lines = append(d.lines, Line{})
	copy(d.lines[d.caret.Line+2:], d.lines[d.caret.Line+1:])
	d.lines[d.caret.Line+1] = next
	d.caret = Caret{Line: d.caret.Line + 1}
	return true
}

// SoftBreak rejects the request: line boundaries are structural, so a
// within-line break has no meaning on a fixed-row display.
func (d *Document) SoftBreak() bool {
	return false
}

// Normalize restores the line-count invariant after edits that bypass
// BreakLine (paste, undo, redo): lines beyond the ceiling are deleted and
// the caret clamped. It is idempotent and a no-op when the invariant holds.
func (d *Document) Normalize() bool {
	changed := false
	if len(d.lines) == 0 {
		d.lines = []Line{{}}
		changed = true
	}
	if len(d.lines) > MaxLines {
		d.lines = d.lines[:MaxLines]
		changed = true
	}
	before := d.caret
	d.clampCaret()
	return changed || d.caret != before
}

// Paste inserts possibly multi-line text at the caret. Segments after the
// first are applied through BreakLine, so pasting can never push the
// document past the ceiling; overflow segments are folded into the last
// line reached and Normalize runs as a final safety pass.
func (d *Document) Paste(text string) bool {
	if text == "" {
		return false
	}
	changed := false
	segment := make([]rune, 0, len(text))
	flush := func() {
		if len(segment) > 0 {
			if d.InsertText(string(segment)) {
				changed = true
			}
			segment = segment[:0]
		}
	}
	for _, r := range text {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			if d.BreakLine() {
				changed = true
			}
			continue
		}
		segment = append(segment, r)
	}
	flush()
	if d.Normalize() {
		changed = true
	}
	return changed
}
