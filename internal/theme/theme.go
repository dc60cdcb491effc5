package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/flapboard/flapboard/internal/markup"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading      *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Header       *lipgloss.Style
	Footer       *lipgloss.Style
	Filter       *lipgloss.Style
	FilterPrompt *lipgloss.Style
	Cursor       *lipgloss.Style
	PreviewTitle *lipgloss.Style
	PreviewError *lipgloss.Style
	BoardCell    *lipgloss.Style
	BoardCaret   *lipgloss.Style
	BoardFrame   *lipgloss.Style
	StatusWord   *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	PreviewTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PreviewError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	BoardCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235")),
	),
	BoardCaret: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("214")),
	),
	BoardFrame: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	StatusWord: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
	),
}

// tileStyles paints the eight flap tile colors: ANSI 256 approximations of
// the physical tile palette.
var tileStyles = map[markup.Color]*lipgloss.Style{
	markup.Red:    ptr(lipgloss.NewStyle().Background(lipgloss.Color("160"))),
	markup.Orange: ptr(lipgloss.NewStyle().Background(lipgloss.Color("208"))),
	markup.Yellow: ptr(lipgloss.NewStyle().Background(lipgloss.Color("220"))),
	markup.Green:  ptr(lipgloss.NewStyle().Background(lipgloss.Color("34"))),
	markup.Blue:   ptr(lipgloss.NewStyle().Background(lipgloss.Color("27"))),
	markup.Violet: ptr(lipgloss.NewStyle().Background(lipgloss.Color("93"))),
	markup.White:  ptr(lipgloss.NewStyle().Background(lipgloss.Color("255"))),
	markup.Black:  ptr(lipgloss.NewStyle().Background(lipgloss.Color("16"))),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Tile returns the style used to paint a color tile cell.
func Tile(c markup.Color) *lipgloss.Style {
	if style, ok := tileStyles[c]; ok {
		return style
	}
	return defaultStyles.BoardCell
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
