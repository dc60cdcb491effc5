// Package markup parses and serializes the inline markup language used to
// describe split-flap display content: plain characters plus brace-delimited
// color directives such as {red} or {63}. Parsing is total — any input
// degrades to literal characters rather than failing.
package markup

import (
	"strconv"
	"strings"
	"unicode"
)

// Kind discriminates token variants.
type Kind int

const (
	// KindCharacter is a single printable symbol occupying one cell.
	KindCharacter Kind = iota
	// KindColor is a solid color tile occupying one cell.
	KindColor
)

// Token is the atomic unit of rendered content: exactly one grid cell,
// either a character or a color tile.
type Token struct {
	Kind  Kind
	Rune  rune
	Color Color
}

// Character builds a character token. The device has no lowercase glyphs,
// so the rune is normalized to uppercase.
func Character(r rune) Token {
	return Token{Kind: KindCharacter, Rune: unicode.ToUpper(r)}
}

// Tile builds a color tile token.
func Tile(c Color) Token {
	return Token{Kind: KindColor, Color: c}
}

// Blank is the padding token used for empty cells.
var Blank = Character(' ')

// IsBlank reports whether the token is a blank character cell.
func (t Token) IsBlank() bool {
	return t.Kind == KindCharacter && t.Rune == ' '
}

// ParseLine tokenizes one line of markup text (no newlines). The scan is
// left to right and consumes the whole input:
//
//   - {name} or {code} for a known color emits a single tile token.
//   - {/} and {/name} are zero-width end markers and emit nothing.
//   - any other brace content does not form a directive; the opening brace
//     is emitted as a literal and scanning resumes at the next character,
//     so "{foo}" comes out as the five literals {, F, O, O, }.
//   - everything else is emitted as an uppercase character token.
func ParseLine(line string) []Token {
	runes := []rune(line)
	tokens := make([]Token, 0, len(runes))
	for i := 0; i < len(runes); {
		if runes[i] != '{' {
			tokens = append(tokens, Character(runes[i]))
			i++
			continue
		}
		end := indexRune(runes, i+1, '}')
		if end < 0 {
			tokens = append(tokens, Character('{'))
			i++
			continue
		}
		body := string(runes[i+1 : end])
		if strings.HasPrefix(body, "/") {
			// End markers occupy no cell.
			i = end + 1
			continue
		}
		if color, ok := parseColor(body); ok {
			tokens = append(tokens, Tile(color))
			i = end + 1
			continue
		}
		tokens = append(tokens, Character('{'))
		i++
	}
	return tokens
}

// Serialize renders tokens back to markup text, re-wrapping color tiles in
// brace syntax. It is the inverse of ParseLine for parseable inputs.
func Serialize(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case KindColor:
			b.WriteByte('{')
			b.WriteString(tok.Color.Name())
			b.WriteByte('}')
		default:
			b.WriteRune(tok.Rune)
		}
	}
	return b.String()
}

func parseColor(body string) (Color, bool) {
	if code, err := strconv.Atoi(body); err == nil {
		return ColorFromCode(code)
	}
	return ColorFromName(body)
}

func indexRune(runes []rune, from int, want rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == want {
			return i
		}
	}
	return -1
}
