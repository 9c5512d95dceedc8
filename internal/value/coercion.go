package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Coercion policy (spec §4.1): operators and builtins call into these
// central conversion functions rather than duplicating per-kind logic at
// every call site.

// ToBool converts v per spec's falsy rules: 0 is false for numerics, an
// empty string is false, null is false, and BOOL passes through.
func ToBool(v Value) bool {
	switch vv := v.(type) {
	case Bool:
		return bool(vv)
	case Number:
		if vv.T.IsFloat() {
			return vv.F != 0
		}
		return vv.I != 0
	case String:
		return vv.S.Data != ""
	case Null:
		return false
	case nil:
		return false
	default:
		return true
	}
}

// ToI64 converts v to an int64 per the central coercion table.
func ToI64(v Value) (int64, error) {
	switch vv := v.(type) {
	case Number:
		return vv.AsInt(), nil
	case Bool:
		if vv {
			return 1, nil
		}
		return 0, nil
	case Null:
		return 0, nil
	case String:
		s := strings.TrimSpace(vv.S.Data)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to integer", vv.S.Data)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %s to integer", v.Tag())
	}
}

// ToI32 is ToI64 truncated to 32 bits, matching the I32 widening default.
func ToI32(v Value) (int32, error) {
	n, err := ToI64(v)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// ToF64 converts v to a float64 per the central coercion table.
func ToF64(v Value) (float64, error) {
	switch vv := v.(type) {
	case Number:
		return vv.AsFloat(), nil
	case Bool:
		if vv {
			return 1, nil
		}
		return 0, nil
	case Null:
		return 0, nil
	case String:
		s := strings.TrimSpace(vv.S.Data)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to float", vv.S.Data)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %s to float", v.Tag())
	}
}

// ToHString stringifies v for display and for ADD-with-string
// concatenation (spec §4.1: "ADD with any string operand concatenates
// after stringifying the other side"). Named ToHString (not ToString) to
// avoid colliding with the fmt.Stringer method name on Value itself.
func ToHString(v Value) string {
	if v == nil {
		return "null"
	}
	switch vv := v.(type) {
	case String:
		return vv.S.Data
	case Null:
		return "null"
	case Bool:
		if vv {
			return "true"
		}
		return "false"
	default:
		return v.String()
	}
}

// Widen computes the result tag of ADD/SUB/MUL/MOD between two numeric
// operands per spec §4.1: float beats I64 beats I32.
func Widen(a, b Tag) Tag {
	if a == TagF64 || b == TagF64 || a == TagF32 || b == TagF32 {
		return TagF64
	}
	if a == TagI64 || b == TagI64 || a == TagU64 || b == TagU64 {
		return TagI64
	}
	return TagI32
}

// NumericEqual compares two Number values after widening to a common kind,
// per spec §4.1 ("Equality across distinct numeric kinds compares numeric
// values after widening").
func NumericEqual(a, b Number) bool {
	if a.T.IsFloat() || b.T.IsFloat() {
		return a.AsFloat() == b.AsFloat()
	}
	return a.AsInt() == b.AsInt()
}
