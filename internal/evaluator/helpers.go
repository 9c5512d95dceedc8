package evaluator

import (
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/types"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// coerceNumber returns v's Number representation per the central coercion
// table (spec §4.1): a Number passes through unchanged; BOOL/NULL/STRING
// coerce via the shared to_i64 conversion and are reported as I32 (the
// narrowest width), since nothing upstream of a non-numeric literal can
// justify a wider default.
func coerceNumber(pos token.Position, v value.Value) (value.Number, error) {
	if n, ok := v.(value.Number); ok {
		return n, nil
	}
	i, err := value.ToI64(v)
	if err != nil {
		return value.Number{}, herrors.RuntimeTypeMismatch(pos, err.Error())
	}
	return value.I32(i), nil
}

// tagMatchesType reports whether v is an acceptable element for a typed
// array annotated with t (spec §3.2's typed-array invariant).
func tagMatchesType(v value.Value, t *types.Type) bool {
	if t == nil || t.Kind == types.ANY {
		return true
	}
	switch t.Kind {
	case types.I8:
		return v.Tag() == value.TagI8
	case types.I16:
		return v.Tag() == value.TagI16
	case types.I32:
		return v.Tag() == value.TagI32
	case types.I64:
		return v.Tag() == value.TagI64
	case types.U8:
		return v.Tag() == value.TagU8
	case types.U16:
		return v.Tag() == value.TagU16
	case types.U32:
		return v.Tag() == value.TagU32
	case types.U64:
		return v.Tag() == value.TagU64
	case types.F32:
		return v.Tag() == value.TagF32
	case types.F64:
		return v.Tag() == value.TagF64
	case types.BOOL:
		return v.Tag() == value.TagBool
	case types.STRING:
		return v.Tag() == value.TagString
	case types.ARRAY:
		_, ok := v.(value.Array)
		return ok
	case types.OBJECT:
		_, ok := v.(value.Object)
		return ok
	case types.FUNCTION:
		switch v.(type) {
		case value.Func, value.Closure, value.BuiltinFnV:
			return true
		}
		return false
	default:
		return true
	}
}

// valuesEqual implements spec §4.1's equality rule: numeric kinds compare
// after widening, NULL == NULL, and otherwise differing tags are never
// equal.
func valuesEqual(a, b value.Value) bool {
	an, aok := a.(value.Number)
	bn, bok := b.(value.Number)
	if aok && bok {
		return value.NumericEqual(an, bn)
	}
	_, aNull := a.(value.Null)
	_, bNull := b.(value.Null)
	if aNull || bNull {
		return aNull && bNull
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch av := a.(type) {
	case value.Bool:
		return av == b.(value.Bool)
	case value.String:
		return av.S.Data == b.(value.String).S.Data
	case value.Array:
		return av.A == b.(value.Array).A
	case value.Object:
		return av.O == b.(value.Object).O
	default:
		return a == b
	}
}
