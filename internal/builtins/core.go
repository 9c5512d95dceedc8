package builtins

import (
	"fmt"

	"github.com/Schneewolf-Labs/hemlock/internal/types"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// registerCore wires the handful of names every Hemlock program can reach
// without qualification (spec §4.5: "print, len, type_of"). Grounded on the
// teacher's builtinPrintLn/builtinPrint (argument concatenation, one
// fmt.Fprint per arg) and builtinTypeOf (RTTI), adapted to Hemlock's Value
// union instead of DWScript's class/enum-heavy one.
func registerCore(r *Registry) {
	r.register(CategoryCore, "print", fn("print", -1, true, func(args []value.Value) (value.Value, error) {
		for _, a := range args {
			fmt.Fprint(r.writer(), value.ToHString(a))
		}
		fmt.Fprintln(r.writer())
		return value.NullValue, nil
	}))

	r.register(CategoryCore, "len", fn("len", 1, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("len", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case value.Array:
			return value.I32(int64(len(v.A.Elements))), nil
		case value.String:
			return value.I32(int64(len([]rune(v.S.Data)))), nil
		case value.Buffer:
			return value.I32(int64(len(v.B.Bytes))), nil
		default:
			return nil, fmt.Errorf("len() is not defined for a value of kind %s", v.Tag())
		}
	}))

	r.register(CategoryCore, "type_of", fn("type_of", 1, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("type_of", args, 1); err != nil {
			return nil, err
		}
		return value.TypeValue{Kind: tagToKind(args[0].Tag())}, nil
	}))
}

// tagToKind maps a runtime Tag back to the static Kind type_of() reports
// (spec §4.5's RTTI surface). CLOSURE/FUNCTION/BUILTIN_FN all report
// FUNCTION, matching how the type inferer already collapses them (§4.3).
func tagToKind(t value.Tag) types.Kind {
	switch t {
	case value.TagI8:
		return types.I8
	case value.TagI16:
		return types.I16
	case value.TagI32:
		return types.I32
	case value.TagI64:
		return types.I64
	case value.TagU8:
		return types.U8
	case value.TagU16:
		return types.U16
	case value.TagU32:
		return types.U32
	case value.TagU64:
		return types.U64
	case value.TagF32:
		return types.F32
	case value.TagF64:
		return types.F64
	case value.TagBool:
		return types.BOOL
	case value.TagString:
		return types.STRING
	case value.TagArray:
		return types.ARRAY
	case value.TagObject:
		return types.OBJECT
	case value.TagFunction, value.TagClosure, value.TagBuiltinFn:
		return types.FUNCTION
	case value.TagPtr:
		return types.PTR
	case value.TagNull:
		return types.NULL
	default:
		return types.ANY
	}
}
