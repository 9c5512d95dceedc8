package builtins

import (
	"fmt"
	"strings"

	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/types"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// registerArray wires every ARRAY method named in spec §4.5's catalog (push
// pop shift unshift insert remove get set length first last clear find
// contains slice join concat reverse map filter reduce) plus the
// fixed-width typed-array constructors, grounded on the teacher's
// builtins_collections.go (Map/Filter/Reduce calling back through a single
// call-function entry point) and builtin_array_test.go's Add/Delete/Copy
// shape for the mutating/non-mutating split.
//
// Every method receives the receiver array as args[0] (evalMethodCall
// prepends it) and the call's remaining arguments after.
func registerArray(r *Registry) {
	m := func(name string, arity int, rest bool, impl value.NativeFn) {
		r.registerMethod(CategoryArray, value.TagArray, name, fn(name, arity, rest, impl))
	}

	m("push", -1, true, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("push", args)
		if err != nil {
			return nil, err
		}
		for _, v := range args[1:] {
			if arr.A.ElementType != nil && !elementTypeMatches(arr.A.ElementType, v) {
				return nil, herrors.TypeMismatch(token.Position{}, "expected element of type "+arr.A.ElementType.String())
			}
			arr.A.Elements = append(arr.A.Elements, value.Retain(v))
		}
		return value.I32(int64(len(arr.A.Elements))), nil
	})

	m("pop", 1, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("pop", args)
		if err != nil {
			return nil, err
		}
		n := len(arr.A.Elements)
		if n == 0 {
			return nil, herrors.IndexOutOfBounds(token.Position{}, 0, 0)
		}
		last := arr.A.Elements[n-1]
		arr.A.Elements = arr.A.Elements[:n-1]
		return last, nil
	})

	m("shift", 1, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("shift", args)
		if err != nil {
			return nil, err
		}
		if len(arr.A.Elements) == 0 {
			return nil, herrors.IndexOutOfBounds(token.Position{}, 0, 0)
		}
		first := arr.A.Elements[0]
		arr.A.Elements = arr.A.Elements[1:]
		return first, nil
	})

	m("unshift", -1, true, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("unshift", args)
		if err != nil {
			return nil, err
		}
		added := make([]value.Value, len(args[1:]))
		for i, v := range args[1:] {
			if arr.A.ElementType != nil && !elementTypeMatches(arr.A.ElementType, v) {
				return nil, herrors.TypeMismatch(token.Position{}, "expected element of type "+arr.A.ElementType.String())
			}
			added[i] = value.Retain(v)
		}
		arr.A.Elements = append(added, arr.A.Elements...)
		return value.I32(int64(len(arr.A.Elements))), nil
	})

	m("insert", 3, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("insert", args)
		if err != nil {
			return nil, err
		}
		idx, err := indexArg("insert", args[1])
		if err != nil {
			return nil, err
		}
		n := int64(len(arr.A.Elements))
		if idx < 0 || idx > n {
			return nil, herrors.IndexOutOfBounds(token.Position{}, idx, n)
		}
		v := args[2]
		if arr.A.ElementType != nil && !elementTypeMatches(arr.A.ElementType, v) {
			return nil, herrors.TypeMismatch(token.Position{}, "expected element of type "+arr.A.ElementType.String())
		}
		v = value.Retain(v)
		arr.A.Elements = append(arr.A.Elements, nil)
		copy(arr.A.Elements[idx+1:], arr.A.Elements[idx:])
		arr.A.Elements[idx] = v
		return value.NullValue, nil
	})

	m("remove", 2, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("remove", args)
		if err != nil {
			return nil, err
		}
		idx, err := indexArg("remove", args[1])
		if err != nil {
			return nil, err
		}
		n := int64(len(arr.A.Elements))
		if idx < 0 || idx >= n {
			return nil, herrors.IndexOutOfBounds(token.Position{}, idx, n)
		}
		removed := arr.A.Elements[idx]
		arr.A.Elements = append(arr.A.Elements[:idx], arr.A.Elements[idx+1:]...)
		return removed, nil
	})

	m("get", 2, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("get", args)
		if err != nil {
			return nil, err
		}
		idx, err := indexArg("get", args[1])
		if err != nil {
			return nil, err
		}
		n := int64(len(arr.A.Elements))
		if idx < 0 || idx >= n {
			return nil, herrors.IndexOutOfBounds(token.Position{}, idx, n)
		}
		return arr.A.Elements[idx], nil
	})

	m("set", 3, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("set", args)
		if err != nil {
			return nil, err
		}
		idx, err := indexArg("set", args[1])
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			return nil, herrors.IndexOutOfBounds(token.Position{}, idx, int64(len(arr.A.Elements)))
		}
		v := args[2]
		if arr.A.ElementType != nil && !elementTypeMatches(arr.A.ElementType, v) {
			return nil, herrors.TypeMismatch(token.Position{}, "expected element of type "+arr.A.ElementType.String())
		}
		v = value.Retain(v)
		for int64(len(arr.A.Elements)) <= idx {
			arr.A.Elements = append(arr.A.Elements, value.NullValue)
		}
		arr.A.Elements[idx] = v
		return v, nil
	})

	m("length", 1, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("length", args)
		if err != nil {
			return nil, err
		}
		return value.I32(int64(len(arr.A.Elements))), nil
	})

	m("first", 1, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("first", args)
		if err != nil {
			return nil, err
		}
		if len(arr.A.Elements) == 0 {
			return nil, herrors.IndexOutOfBounds(token.Position{}, 0, 0)
		}
		return arr.A.Elements[0], nil
	})

	m("last", 1, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("last", args)
		if err != nil {
			return nil, err
		}
		n := len(arr.A.Elements)
		if n == 0 {
			return nil, herrors.IndexOutOfBounds(token.Position{}, 0, 0)
		}
		return arr.A.Elements[n-1], nil
	})

	m("clear", 1, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("clear", args)
		if err != nil {
			return nil, err
		}
		arr.A.Elements = nil
		return value.NullValue, nil
	})

	m("find", 2, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("find", args)
		if err != nil {
			return nil, err
		}
		for _, el := range arr.A.Elements {
			ok, err := callPredicate(r, "find", args[1], el)
			if err != nil {
				return nil, err
			}
			if ok {
				return el, nil
			}
		}
		return value.NullValue, nil
	})

	m("contains", 2, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("contains", args)
		if err != nil {
			return nil, err
		}
		for _, el := range arr.A.Elements {
			if valueEqual(el, args[1]) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	})

	m("slice", -1, true, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("slice", args)
		if err != nil {
			return nil, err
		}
		n := int64(len(arr.A.Elements))
		start, end := int64(0), n
		if len(args) >= 2 {
			start, err = indexArg("slice", args[1])
			if err != nil {
				return nil, err
			}
		}
		if len(args) >= 3 {
			end, err = indexArg("slice", args[2])
			if err != nil {
				return nil, err
			}
		}
		if len(args) > 3 {
			return nil, fmt.Errorf("slice() expects 1-3 arguments, got %d", len(args)-1)
		}
		start = clampIndex(start, n)
		end = clampIndex(end, n)
		if end < start {
			end = start
		}
		out := make([]value.Value, end-start)
		for i, el := range arr.A.Elements[start:end] {
			out[i] = value.Retain(el)
		}
		// spec §9 open question: concat/slice reset element_type (untyped
		// result), matching the source's observed behavior rather than
		// preserving the typed-array constraint.
		return value.NewArray(out, nil), nil
	})

	m("join", 2, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("join", args)
		if err != nil {
			return nil, err
		}
		sep, ok := args[1].(value.String)
		if !ok {
			return nil, fmt.Errorf("join() separator must be a string")
		}
		parts := make([]string, len(arr.A.Elements))
		for i, el := range arr.A.Elements {
			parts[i] = value.ToHString(el)
		}
		return value.NewString(strings.Join(parts, sep.S.Data)), nil
	})

	m("concat", 2, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("concat", args)
		if err != nil {
			return nil, err
		}
		other, ok := args[1].(value.Array)
		if !ok {
			return nil, fmt.Errorf("concat() argument must be an array")
		}
		out := make([]value.Value, 0, len(arr.A.Elements)+len(other.A.Elements))
		for _, el := range arr.A.Elements {
			out = append(out, value.Retain(el))
		}
		for _, el := range other.A.Elements {
			out = append(out, value.Retain(el))
		}
		return value.NewArray(out, nil), nil
	})

	m("reverse", 1, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("reverse", args)
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, len(arr.A.Elements))
		for i, el := range arr.A.Elements {
			out[len(out)-1-i] = value.Retain(el)
		}
		return value.NewArray(out, arr.A.ElementType), nil
	})

	m("map", 2, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("map", args)
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, len(arr.A.Elements))
		for i, el := range arr.A.Elements {
			v, err := r.call(token.Position{}, args[1], []value.Value{el})
			if err != nil {
				return nil, err
			}
			out[i] = value.Retain(v)
		}
		return value.NewArray(out, nil), nil
	})

	m("filter", 2, false, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("filter", args)
		if err != nil {
			return nil, err
		}
		var out []value.Value
		for _, el := range arr.A.Elements {
			ok, err := callPredicate(r, "filter", args[1], el)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, value.Retain(el))
			}
		}
		return value.NewArray(out, arr.A.ElementType), nil
	})

	m("reduce", -1, true, func(args []value.Value) (value.Value, error) {
		arr, err := receiverArray("reduce", args)
		if err != nil {
			return nil, err
		}
		if len(args) < 2 || len(args) > 3 {
			return nil, fmt.Errorf("reduce() expects 1-2 arguments (fn, initial?), got %d", len(args)-1)
		}
		elems := arr.A.Elements
		var acc value.Value
		if len(args) == 3 {
			acc = args[2]
		} else {
			if len(elems) == 0 {
				return nil, fmt.Errorf("reduce() of empty array with no initial value")
			}
			acc = elems[0]
			elems = elems[1:]
		}
		for _, el := range elems {
			acc, err = r.call(token.Position{}, args[1], []value.Value{acc, el})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	registerTypedArrayConstructors(r)
}

func receiverArray(name string, args []value.Value) (value.Array, error) {
	if len(args) == 0 {
		return value.Array{}, fmt.Errorf("%s() requires an array receiver", name)
	}
	arr, ok := args[0].(value.Array)
	if !ok {
		return value.Array{}, fmt.Errorf("%s() requires an array receiver, got %s", name, args[0].Tag())
	}
	return arr, nil
}

func indexArg(name string, v value.Value) (int64, error) {
	i, err := value.ToI64(v)
	if err != nil {
		return 0, fmt.Errorf("%s() index must be numeric: %w", name, err)
	}
	return i, nil
}

func clampIndex(i, n int64) int64 {
	if i < 0 {
		i = n + i
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// callPredicate invokes fnVal(el) and requires a BOOL result, matching the
// teacher's builtinFilter's "predicate must return Boolean" check.
func callPredicate(r *Registry, name string, fnVal value.Value, el value.Value) (bool, error) {
	result, err := r.call(token.Position{}, fnVal, []value.Value{el})
	if err != nil {
		return false, err
	}
	b, ok := result.(value.Bool)
	if !ok {
		return false, fmt.Errorf("%s() callback must return a bool, got %s", name, result.Tag())
	}
	return bool(b), nil
}

// valueEqual mirrors the evaluator's equality rule (spec §4.1): numeric
// kinds compare after widening, NULL == NULL, otherwise differing tags are
// never equal. Kept as a local copy rather than exported from
// internal/evaluator to avoid this package importing it.
func valueEqual(a, b value.Value) bool {
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
	default:
		return a == b
	}
}

// elementTypeMatches reports whether v is an acceptable element for a typed
// array annotated with t (spec §3.2's typed-array invariant); a local copy
// of the evaluator's tagMatchesType so this package stays import-free of
// internal/evaluator.
func elementTypeMatches(t *types.Type, v value.Value) bool {
	if t == nil || t.Kind == types.ANY {
		return true
	}
	return tagToKind(v.Tag()) == t.Kind
}

// registerTypedArrayConstructors wires one constructor per fixed-width
// numeric kind (e.g. `i32_array(1, 2, 3)`), each validating every argument
// against the element kind before building a typed Array (spec §4.5:
// "typed-array constructors").
func registerTypedArrayConstructors(r *Registry) {
	ctors := []struct {
		name string
		t    *types.Type
	}{
		{"i8_array", types.I8Type}, {"i16_array", types.I16Type},
		{"i32_array", types.I32Type}, {"i64_array", types.I64Type},
		{"u8_array", types.U8Type}, {"u16_array", types.U16Type},
		{"u32_array", types.U32Type}, {"u64_array", types.U64Type},
		{"f32_array", types.F32Type}, {"f64_array", types.F64Type},
	}
	for _, c := range ctors {
		c := c
		r.register(CategoryArray, c.name, fn(c.name, -1, true, func(args []value.Value) (value.Value, error) {
			elems := make([]value.Value, len(args))
			for i, v := range args {
				if !elementTypeMatches(c.t, v) {
					return nil, herrors.TypeMismatch(token.Position{}, "expected element of type "+c.t.String())
				}
				elems[i] = value.Retain(v)
			}
			return value.NewArray(elems, c.t), nil
		}))
	}
}
