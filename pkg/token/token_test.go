package token_test

import (
	"testing"

	"github.com/Andres-QG/transpyler/pkg/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		lexeme string
		want   token.Kind
		isKW   bool
	}{
		{"if", token.IF, true},
		{"def", token.DEF, true},
		{"True", token.TRUE, true},
		{"true", token.ID, false}, // case-sensitive
		{"foo", token.ID, false},
		{"import", token.IMPORT, true},
	}
	for _, c := range cases {
		got, ok := token.LookupKeyword(c.lexeme)
		if got != c.want || ok != c.isKW {
			t.Errorf("LookupKeyword(%q) = (%v, %v), want (%v, %v)", c.lexeme, got, ok, c.want, c.isKW)
		}
	}
}

func TestTokenStringLayout(t *testing.T) {
	tok := token.Token{Kind: token.INDENT, Line: 2, Column: 5}
	if got, want := tok.String(), "INDENT"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTokenStringWithLexeme(t *testing.T) {
	tok := token.Token{Kind: token.STRING, Lexeme: `Quote\"mark`}
	if got, want := tok.String(), `STRING "Quote\"mark"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIsLayout(t *testing.T) {
	for _, k := range []token.Kind{token.INDENT, token.DEDENT, token.NEWLINE, token.EOF} {
		if !k.IsLayout() {
			t.Errorf("%v.IsLayout() = false, want true", k)
		}
	}
	if token.ID.IsLayout() {
		t.Errorf("ID.IsLayout() = true, want false")
	}
}
