package types

import "testing"

func TestSimpleTypeString(t *testing.T) {
	if got, want := I32Type.String(), "i32"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestArrayOfTypeString(t *testing.T) {
	ty := ArrayOf(StringType)
	if got, want := ty.String(), "array(string)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNilTypeStringIsAny(t *testing.T) {
	var ty *Type
	if got, want := ty.String(), "any"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEqualComparesKindAndElement(t *testing.T) {
	a := ArrayOf(I32Type)
	b := ArrayOf(I32Type)
	c := ArrayOf(StringType)
	if !a.Equal(b) {
		t.Error("array(i32) should equal array(i32)")
	}
	if a.Equal(c) {
		t.Error("array(i32) should not equal array(string)")
	}
}

func TestEqualTreatsNilAsDistinctFromNonNil(t *testing.T) {
	var n *Type
	if n.Equal(I32Type) {
		t.Error("nil type should not equal a concrete type")
	}
	if I32Type.Equal(n) {
		t.Error("concrete type should not equal a nil type")
	}
}

func TestKindIsIntegerIncludesAbstractCategory(t *testing.T) {
	if !INTEGER.IsInteger() {
		t.Error("INTEGER should report IsInteger() == true")
	}
	if !I64.IsInteger() {
		t.Error("I64 should report IsInteger() == true")
	}
	if F64.IsInteger() {
		t.Error("F64 should not report IsInteger() == true")
	}
}

func TestKindIsNumericCoversIntegerAndFloat(t *testing.T) {
	for _, k := range []Kind{I32, U8, F32, F64, NUMERIC} {
		if !k.IsNumeric() {
			t.Errorf("%s should report IsNumeric() == true", k)
		}
	}
	if BOOL.IsNumeric() {
		t.Error("BOOL should not report IsNumeric() == true")
	}
}

func TestKindStringUnknownFallback(t *testing.T) {
	var bogus Kind = 999
	if got, want := bogus.String(), "unknown"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
