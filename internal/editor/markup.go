package editor

import "strings"

// FromMarkup builds a document from newline-separated markup text. Lines
// beyond the ceiling are dropped, matching what the board would display.
// Alignment and wrap attributes are edit-time state and start at their
// defaults.
func FromMarkup(text string) *Document {
	d := &Document{}
	for _, line := range strings.Split(text, "\n") {
		if len(d.lines) == MaxLines {
			break
		}
		d.lines = append(d.lines, NewLine(line))
	}
	if len(d.lines) == 0 {
		d.lines = []Line{{}}
	}
	return d
}

// Markup serializes the document back to newline-separated markup text.
// Attributes are not part of the wire form; the device renders content
// only.
func (d *Document) Markup() string {
	parts := make([]string, len(d.lines))
	for i, line := range d.lines {
		parts[i] = line.Text()
	}
	return strings.Join(parts, "\n")
}
