package builtins

import (
	"fmt"
	"strings"

	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// registerStrings wires the STRING method table (spec §4.5: "string ops"),
// grounded on the teacher's builtins_strings.go (UpperCase/LowerCase/Trim/
// Pos/StrSplit/StrJoin), adapted to Hemlock's method-call dispatch
// (`s.upper()` rather than a free function `UpperCase(s)`).
func registerStrings(r *Registry) {
	m := func(name string, arity int, rest bool, impl value.NativeFn) {
		r.registerMethod(CategoryString, value.TagString, name, fn(name, arity, rest, impl))
	}

	m("upper", 1, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("upper", args)
		if err != nil {
			return nil, err
		}
		return value.NewString(strings.ToUpper(s)), nil
	})

	m("lower", 1, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("lower", args)
		if err != nil {
			return nil, err
		}
		return value.NewString(strings.ToLower(s)), nil
	})

	m("trim", 1, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("trim", args)
		if err != nil {
			return nil, err
		}
		return value.NewString(strings.TrimSpace(s)), nil
	})

	m("split", 2, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("split", args)
		if err != nil {
			return nil, err
		}
		sep, ok := args[1].(value.String)
		if !ok {
			return nil, fmt.Errorf("split() separator must be a string")
		}
		parts := strings.Split(s, sep.S.Data)
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = value.NewString(p)
		}
		return value.NewArray(elems, nil), nil
	})

	m("replace", 3, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("replace", args)
		if err != nil {
			return nil, err
		}
		old, ok := args[1].(value.String)
		if !ok {
			return nil, fmt.Errorf("replace() search argument must be a string")
		}
		with, ok := args[2].(value.String)
		if !ok {
			return nil, fmt.Errorf("replace() replacement argument must be a string")
		}
		return value.NewString(strings.ReplaceAll(s, old.S.Data, with.S.Data)), nil
	})

	m("contains", 2, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("contains", args)
		if err != nil {
			return nil, err
		}
		sub, ok := args[1].(value.String)
		if !ok {
			return nil, fmt.Errorf("contains() argument must be a string")
		}
		return value.Bool(strings.Contains(s, sub.S.Data)), nil
	})

	m("index_of", 2, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("index_of", args)
		if err != nil {
			return nil, err
		}
		sub, ok := args[1].(value.String)
		if !ok {
			return nil, fmt.Errorf("index_of() argument must be a string")
		}
		byteIdx := strings.Index(s, sub.S.Data)
		if byteIdx < 0 {
			return value.I32(-1), nil
		}
		return value.I32(int64(len([]rune(s[:byteIdx])))), nil
	})

	m("starts_with", 2, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("starts_with", args)
		if err != nil {
			return nil, err
		}
		prefix, ok := args[1].(value.String)
		if !ok {
			return nil, fmt.Errorf("starts_with() argument must be a string")
		}
		return value.Bool(strings.HasPrefix(s, prefix.S.Data)), nil
	})

	m("ends_with", 2, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("ends_with", args)
		if err != nil {
			return nil, err
		}
		suffix, ok := args[1].(value.String)
		if !ok {
			return nil, fmt.Errorf("ends_with() argument must be a string")
		}
		return value.Bool(strings.HasSuffix(s, suffix.S.Data)), nil
	})

	m("repeat", 2, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("repeat", args)
		if err != nil {
			return nil, err
		}
		n, err := value.ToI64(args[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("repeat() count must be a non-negative integer")
		}
		return value.NewString(strings.Repeat(s, int(n))), nil
	})

	m("length", 1, false, func(args []value.Value) (value.Value, error) {
		s, err := receiverString("length", args)
		if err != nil {
			return nil, err
		}
		return value.I32(int64(len([]rune(s)))), nil
	})
}

func receiverString(name string, args []value.Value) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%s() requires a string receiver", name)
	}
	s, ok := args[0].(value.String)
	if !ok {
		return "", fmt.Errorf("%s() requires a string receiver, got %s", name, args[0].Tag())
	}
	return s.S.Data, nil
}
