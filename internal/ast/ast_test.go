package ast

import (
	"testing"

	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/types"
)

func TestProgramStringJoinsStatements(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&LetStatement{Name: "a", Value: &NumberLiteral{IntValue: 1}},
			&LetStatement{Name: "b", Value: &NumberLiteral{IntValue: 2}},
		},
	}
	want := "let a = 1;\nlet b = 2;\n"
	if got := prog.String(); got != want {
		t.Errorf("Program.String() = %q, want %q", got, want)
	}
}

func TestProgramTokenLiteralEmptyWhenNoStatements(t *testing.T) {
	prog := &Program{}
	if got := prog.TokenLiteral(); got != "" {
		t.Errorf("TokenLiteral() = %q, want empty", got)
	}
	if got, want := prog.Pos(), (token.Position{Line: 1, Column: 1}); got != want {
		t.Errorf("Pos() = %v, want %v", got, want)
	}
}

func TestNumberLiteralStringFormatsIntAndFloat(t *testing.T) {
	i := &NumberLiteral{IntValue: 42}
	if got, want := i.String(), "42"; got != want {
		t.Errorf("int String() = %q, want %q", got, want)
	}
	f := &NumberLiteral{IsFloat: true, FloatValue: 3.5}
	if got, want := f.String(), "3.5"; got != want {
		t.Errorf("float String() = %q, want %q", got, want)
	}
}

func TestIdentifierStringIsItsName(t *testing.T) {
	id := &Identifier{Name: "x"}
	if got, want := id.String(), "x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestExpressionTypeRoundTrip(t *testing.T) {
	var e Expression = &Identifier{Name: "x"}
	if e.GetType() != nil {
		t.Fatal("fresh node should have a nil type")
	}
	e.SetType(types.I32Type)
	if got := e.GetType(); got != types.I32Type {
		t.Errorf("GetType() = %v, want %v", got, types.I32Type)
	}
}

func TestStringLiteralStringQuotesValue(t *testing.T) {
	s := &StringLiteral{Value: "hi"}
	if got, want := s.String(), `"hi"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBoolLiteralString(t *testing.T) {
	if got, want := (&BoolLiteral{Value: true}).String(), "true"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (&BoolLiteral{Value: false}).String(), "false"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
