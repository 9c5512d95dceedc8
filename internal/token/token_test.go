package token

import "testing"

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7, Offset: 42}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: IDENT, Literal: "x", Pos: Position{Line: 1, Column: 5}}
	if got, want := tok.String(), `IDENT("x")@1:5`; got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}

func TestLookupIdentRecognizesKeywords(t *testing.T) {
	cases := map[string]Type{
		"let": LET, "const": CONST, "fn": FN, "if": IF, "else": ELSE,
		"while": WHILE, "for": FOR, "return": RETURN, "true": TRUE,
		"false": FALSE, "null": NULL, "somethingElse": IDENT,
	}
	for ident, want := range cases {
		if got := LookupIdent(ident); got != want {
			t.Errorf("LookupIdent(%q) = %s, want %s", ident, got, want)
		}
	}
}

func TestLookupIdentIsCaseSensitive(t *testing.T) {
	if got := LookupIdent("LET"); got != IDENT {
		t.Errorf("LookupIdent(%q) = %s, want IDENT (keywords are case-sensitive)", "LET", got)
	}
}

func TestTypeStringUnknownFallback(t *testing.T) {
	var bogus Type = -1
	if got, want := bogus.String(), "UNKNOWN"; got != want {
		t.Errorf("Type.String() = %q, want %q", got, want)
	}
}
