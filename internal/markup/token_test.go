package markup

import (
	"fmt"
	"reflect"
	"testing"
)

func TestParseLinePlainText(t *testing.T) {
	got := ParseLine("ab C")
	want := []Token{Character('A'), Character('B'), Character(' '), Character('C')}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens %#v", got)
	}
}

func TestParseLineEmpty(t *testing.T) {
	if got := ParseLine(""); len(got) != 0 {
		t.Fatalf("expected no tokens for empty input, got %#v", got)
	}
}

func TestColorDirectiveRoundTrip(t *testing.T) {
	for _, color := range Colors() {
		for _, input := range []string{
			fmt.Sprintf("{%s}", color.Name()),
			fmt.Sprintf("{%d}", color.Code()),
		} {
			got := ParseLine(input)
			if len(got) != 1 || got[0].Kind != KindColor || got[0].Color != color {
				t.Fatalf("input %q: expected single %s tile, got %#v", input, color, got)
			}
			serialized := Serialize(got)
			expected := fmt.Sprintf("{%s}", color.Name())
			if serialized != expected {
				t.Fatalf("input %q: expected serialization %q, got %q", input, expected, serialized)
			}
		}
	}
}

func TestColorDirectiveCaseInsensitive(t *testing.T) {
	for _, input := range []string{"{RED}", "{Red}", "{rEd}"} {
		got := ParseLine(input)
		if len(got) != 1 || got[0] != Tile(Red) {
			t.Fatalf("input %q: expected red tile, got %#v", input, got)
		}
	}
}

func TestEndMarkersAreZeroWidth(t *testing.T) {
	for _, input := range []string{"{/}", "{/red}", "{/anything at all}"} {
		if got := ParseLine(input); len(got) != 0 {
			t.Fatalf("input %q: expected no tokens, got %#v", input, got)
		}
	}
	got := ParseLine("A{/}B")
	want := []Token{Character('A'), Character('B')}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected end marker to vanish between characters, got %#v", got)
	}
}

func TestUnknownDirectiveReemitsBrace(t *testing.T) {
	got := ParseLine("{foo}")
	want := []Token{
		Character('{'), Character('F'), Character('O'), Character('O'), Character('}'),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected literal rescan of {foo}, got %#v", got)
	}
}

func TestUnknownDirectiveRescanFindsLaterDirective(t *testing.T) {
	// The brace is consumed as a literal; the scan then picks up the
	// valid directive that starts immediately after.
	got := ParseLine("{x{red}")
	want := []Token{Character('{'), Character('X'), Tile(Red)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens %#v", got)
	}
}

func TestUnmatchedBraceIsLiteral(t *testing.T) {
	got := ParseLine("A{B")
	want := []Token{Character('A'), Character('{'), Character('B')}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens %#v", got)
	}
}

func TestParseLineTotality(t *testing.T) {
	// None of these may panic, and each must consume its whole input.
	inputs := []string{
		"", "{", "}", "{{", "}}", "{}", "{{}}", "{red", "red}", "{{red}}",
		"{63", "{999}", "{-1}", "{ red }", "{/", "{red}{/}{blue}", "\t{",
	}
	for _, input := range inputs {
		tokens := ParseLine(input)
		for _, tok := range tokens {
			if tok.Kind != KindCharacter && tok.Kind != KindColor {
				t.Fatalf("input %q: invalid token kind %v", input, tok.Kind)
			}
		}
	}
}

func TestColorCodes(t *testing.T) {
	if got := Red.Code(); got != 63 {
		t.Fatalf("expected red code 63, got %d", got)
	}
	if got := Black.Code(); got != 70 {
		t.Fatalf("expected black code 70, got %d", got)
	}
	if _, ok := ColorFromCode(62); ok {
		t.Fatal("expected 62 to be out of range")
	}
	if _, ok := ColorFromCode(71); ok {
		t.Fatal("expected 71 to be out of range")
	}
	for _, color := range Colors() {
		resolved, ok := ColorFromCode(color.Code())
		if !ok || resolved != color {
			t.Fatalf("code %d did not resolve back to %s", color.Code(), color)
		}
		byName, ok := ColorFromName(color.Name())
		if !ok || byName != color {
			t.Fatalf("name %q did not resolve back to %s", color.Name(), color)
		}
	}
}
