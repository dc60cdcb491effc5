package markup

import "strings"

// Color identifies one of the eight tile colors a flap cell can show.
// Each color is addressable in markup either by name ({red}) or by its
// numeric device code ({63}).
type Color int

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Violet
	White
	Black
)

// Device codes occupy the closed range [63, 70], in declaration order.
const (
	minColorCode = 63
	maxColorCode = 70
)

var colorNames = [...]string{
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Violet: "violet",
	White:  "white",
	Black:  "black",
}

// Name returns the lowercase markup name for the color.
func (c Color) Name() string {
	if c < Red || c > Black {
		return ""
	}
	return colorNames[c]
}

// Code returns the numeric device code for the color.
func (c Color) Code() int {
	return minColorCode + int(c)
}

func (c Color) String() string {
	return c.Name()
}

// ColorFromName resolves a color by name, case-insensitively.
func ColorFromName(name string) (Color, bool) {
	for c, candidate := range colorNames {
		if strings.EqualFold(name, candidate) {
			return Color(c), true
		}
	}
	return 0, false
}

// ColorFromCode resolves a color by its numeric device code.
func ColorFromCode(code int) (Color, bool) {
	if code < minColorCode || code > maxColorCode {
		return 0, false
	}
	return Color(code - minColorCode), true
}

// Colors returns the full tile color vocabulary in device-code order.
func Colors() []Color {
	return []Color{Red, Orange, Yellow, Green, Blue, Violet, White, Black}
}
