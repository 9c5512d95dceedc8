package lexer

import (
	"testing"

	"github.com/Schneewolf-Labs/hemlock/internal/token"
)

func collect(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func TestNextTokenCoversOperatorsAndPunctuation(t *testing.T) {
	input := `let a = 1 + 2 * 3 / 4 % 5; a += 1; a++; a <= b; a ?? b; a => b;`
	toks := collect(input)

	want := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.PLUS, token.INT,
		token.STAR, token.INT, token.SLASH, token.INT, token.PERCENT, token.INT,
		token.SEMICOLON,
		token.IDENT, token.PLUS_EQ, token.INT, token.SEMICOLON,
		token.IDENT, token.INC, token.SEMICOLON,
		token.IDENT, token.LE, token.IDENT, token.SEMICOLON,
		token.IDENT, token.QQ, token.IDENT, token.SEMICOLON,
		token.IDENT, token.ARROW, token.IDENT, token.SEMICOLON,
		token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestNextTokenSkipsLineAndBlockComments(t *testing.T) {
	input := "let a = 1; // trailing comment\n/* block\ncomment */ let b = 2;"
	toks := collect(input)
	var kept []token.Type
	for _, tok := range toks {
		kept = append(kept, tok.Type)
	}
	want := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON,
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON,
		token.EOF,
	}
	if len(kept) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kept), len(want), kept)
	}
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	input := "let a = 1;\nlet b = 2;"
	toks := collect(input)
	// "let" on the second line should start at line 2, column 1.
	for _, tok := range toks {
		if tok.Type == token.LET && tok.Pos.Line == 2 {
			if tok.Pos.Column != 1 {
				t.Errorf("second 'let' column = %d, want 1", tok.Pos.Column)
			}
			return
		}
	}
	t.Fatal("did not find a LET token on line 2")
}

func TestNextTokenReadsStringAndRuneLiterals(t *testing.T) {
	toks := collect(`"hello"; 'x';`)
	if toks[0].Type != token.STRING || toks[0].Literal != "hello" {
		t.Errorf("got %v, want STRING \"hello\"", toks[0])
	}
	if toks[2].Type != token.RUNE || toks[2].Literal != "x" {
		t.Errorf("got %v, want RUNE \"x\"", toks[2])
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	toks := collect("@")
	if toks[0].Type != token.ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", toks[0].Type)
	}
}

func TestNextTokenUnicodeIdentifierColumnsCountRunes(t *testing.T) {
	// "café" is 4 runes but 5 bytes; the column after it must advance by
	// rune count, matching the teacher's scanner discipline.
	toks := collect(`café x`)
	if toks[0].Literal != "café" {
		t.Fatalf("got literal %q, want café", toks[0].Literal)
	}
	if toks[1].Pos.Column != 6 {
		t.Errorf("second token column = %d, want 6", toks[1].Pos.Column)
	}
}
