package herrors

import (
	"testing"

	"github.com/Schneewolf-Labs/hemlock/internal/token"
)

func TestFaultErrorFormatsWithPosition(t *testing.T) {
	pos := token.Position{Line: 4, Column: 2}
	err := ConstWrite(pos, "k")
	want := "Runtime error at 4:2: Cannot assign to const variable 'k'"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFaultErrorFormatsWithoutPosition(t *testing.T) {
	err := MiscNoPos("internal error: %s", "boom")
	want := "Runtime error: internal error: boom"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRedeclarationIsResolveCategory(t *testing.T) {
	err := Redeclaration(token.Position{Line: 1, Column: 1}, "x")
	if err.Category != CategoryResolve {
		t.Errorf("Category = %s, want %s", err.Category, CategoryResolve)
	}
	if err.Kind != KindRedeclaration {
		t.Errorf("Kind = %s, want %s", err.Kind, KindRedeclaration)
	}
}

func TestTypeMismatchIsTypeCategory(t *testing.T) {
	err := TypeMismatch(token.Position{}, "expected Int, got String")
	if err.Category != CategoryType {
		t.Errorf("Category = %s, want %s", err.Category, CategoryType)
	}
}

func TestIndexOutOfBoundsMessage(t *testing.T) {
	err := IndexOutOfBounds(token.Position{Line: 1, Column: 1}, 5, 2)
	want := "Array index 5 out of bounds (length 2)"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if err.Kind != KindIndexOutOfBounds {
		t.Errorf("Kind = %s, want %s", err.Kind, KindIndexOutOfBounds)
	}
}

func TestArityMismatchMessage(t *testing.T) {
	err := ArityMismatch(token.Position{}, "foo")
	want := "wrong number of arguments: foo"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}
