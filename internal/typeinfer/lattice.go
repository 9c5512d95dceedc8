// Package typeinfer implements Hemlock's flow-insensitive static type
// inference pass (spec §4.3): a forward walk over the whole program,
// repeated to a fixpoint, that decorates every expression with a
// best-effort type and builds a function-return-type registry for the
// CALL rule. It runs after the resolver and tolerates un-annotated
// identifiers exactly as the evaluator does: an unresolved reference is
// simply treated as UNKNOWN.
package typeinfer

import "github.com/Schneewolf-Labs/hemlock/internal/types"

// Meet computes the lattice meet of a and b (spec §4.3): same kind stays
// the same; UNKNOWN (⊤) combined with anything yields the other operand;
// two different-but-both-integer kinds widen to the abstract INTEGER
// category; two different-but-both-numeric kinds widen to NUMERIC;
// anything else collapses to UNKNOWN. A nil operand is treated as UNKNOWN.
func Meet(a, b *types.Type) *types.Type {
	if a == nil {
		a = types.UnknownType
	}
	if b == nil {
		b = types.UnknownType
	}
	if a.Kind == types.ANY {
		return b
	}
	if b.Kind == types.ANY {
		return a
	}
	if a.Equal(b) {
		return a
	}
	if a.Kind == types.ARRAY && b.Kind == types.ARRAY {
		return types.ArrayOf(Meet(a.Element, b.Element))
	}
	if a.Kind.IsInteger() && b.Kind.IsInteger() {
		return types.IntegerType
	}
	if a.Kind.IsNumeric() && b.Kind.IsNumeric() {
		return types.NumericType
	}
	return types.UnknownType
}

// widenArith implements the widening rule shared by ADD/SUB/MUL (spec
// §4.3): F64 dominates, then I64, then I32, then the abstract categories.
func widenArith(a, b *types.Type) *types.Type {
	if a == nil {
		a = types.UnknownType
	}
	if b == nil {
		b = types.UnknownType
	}
	switch {
	case a.Kind == types.F64 || b.Kind == types.F64:
		return types.F64Type
	case a.Kind == types.I64 || b.Kind == types.I64:
		return types.I64Type
	case a.Kind == types.I32 && b.Kind == types.I32:
		return types.I32Type
	case a.Kind.IsInteger() && b.Kind.IsInteger():
		return types.IntegerType
	case a.Kind.IsNumeric() && b.Kind.IsNumeric():
		return types.NumericType
	default:
		return types.UnknownType
	}
}
