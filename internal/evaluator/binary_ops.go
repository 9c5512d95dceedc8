package evaluator

import (
	"math"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// evalBinary implements spec §4.4's BINARY rule: left then right strictly,
// except AND/OR which short-circuit and yield the determining operand
// unchanged (the source's observed value-returning semantics, not a BOOL
// coercion — spec §9 open question, resolved in favor of source behavior).
func (ev *Evaluator) evalBinary(e *ast.BinaryExpression, env *environment.Environment) (value.Value, error) {
	switch e.Op {
	case ast.AND:
		left, err := ev.evalExpr(e.Left, env)
		if err != nil {
			return nil, err
		}
		if !value.ToBool(left) {
			return left, nil
		}
		return ev.evalExpr(e.Right, env)
	case ast.OR:
		left, err := ev.evalExpr(e.Left, env)
		if err != nil {
			return nil, err
		}
		if value.ToBool(left) {
			return left, nil
		}
		return ev.evalExpr(e.Right, env)
	}

	left, err := ev.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.ADD:
		if _, ok := left.(value.String); ok {
			return value.NewString(value.ToHString(left) + value.ToHString(right)), nil
		}
		if _, ok := right.(value.String); ok {
			return value.NewString(value.ToHString(left) + value.ToHString(right)), nil
		}
		return arith(e.Pos(), left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	case ast.SUB:
		return arith(e.Pos(), left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case ast.MUL:
		return arith(e.Pos(), left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case ast.DIV:
		lf, err := coerceFloat(e.Pos(), left)
		if err != nil {
			return nil, err
		}
		rf, err := coerceFloat(e.Pos(), right)
		if err != nil {
			return nil, err
		}
		if rf == 0 {
			return nil, herrors.Misc(e.Pos(), "division by zero")
		}
		return value.F64(lf / rf), nil
	case ast.MOD:
		ln, err := coerceNumber(e.Pos(), left)
		if err != nil {
			return nil, err
		}
		rn, err := coerceNumber(e.Pos(), right)
		if err != nil {
			return nil, err
		}
		tag := value.Widen(ln.T, rn.T)
		if tag.IsFloat() {
			if rn.AsFloat() == 0 {
				return nil, herrors.Misc(e.Pos(), "division by zero")
			}
			return value.F64(math.Mod(ln.AsFloat(), rn.AsFloat())), nil
		}
		if rn.AsInt() == 0 {
			return nil, herrors.Misc(e.Pos(), "division by zero")
		}
		return widenedInt(tag, ln.AsInt()%rn.AsInt()), nil
	case ast.EQ:
		return value.Bool(valuesEqual(left, right)), nil
	case ast.NE:
		return value.Bool(!valuesEqual(left, right)), nil
	case ast.LT, ast.LE, ast.GT, ast.GE:
		lf, err := coerceFloat(e.Pos(), left)
		if err != nil {
			return nil, err
		}
		rf, err := coerceFloat(e.Pos(), right)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case ast.LT:
			return value.Bool(lf < rf), nil
		case ast.LE:
			return value.Bool(lf <= rf), nil
		case ast.GT:
			return value.Bool(lf > rf), nil
		default:
			return value.Bool(lf >= rf), nil
		}
	case ast.BIT_AND, ast.BIT_OR, ast.BIT_XOR, ast.BIT_LSHIFT, ast.BIT_RSHIFT:
		return bitwise(e.Pos(), e.Op, left, right)
	default:
		return nil, herrors.MiscNoPos("internal error: unhandled binary operator %s", e.Op)
	}
}

// arith applies spec §4.1's ADD/SUB/MUL widening rule: either F64 -> F64;
// else either I64 -> I64; else I32.
func arith(pos token.Position, left, right value.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (value.Value, error) {
	ln, err := coerceNumber(pos, left)
	if err != nil {
		return nil, err
	}
	rn, err := coerceNumber(pos, right)
	if err != nil {
		return nil, err
	}
	tag := value.Widen(ln.T, rn.T)
	if tag.IsFloat() {
		return value.F64(floatOp(ln.AsFloat(), rn.AsFloat())), nil
	}
	return widenedInt(tag, intOp(ln.AsInt(), rn.AsInt())), nil
}

// widenedInt wraps an int64 result in the Number variant matching tag
// (only TagI64/TagI32 are ever passed in, per Widen's non-float branches).
func widenedInt(tag value.Tag, n int64) value.Number {
	if tag == value.TagI64 {
		return value.I64(n)
	}
	return value.I32(n)
}

// coerceFloat is the DIV/comparison-operator counterpart of coerceNumber:
// every comparison and DIV works in float64 regardless of operand width
// (spec §4.1: "DIV always yields F64").
func coerceFloat(pos token.Position, v value.Value) (float64, error) {
	n, err := coerceNumber(pos, v)
	if err != nil {
		return 0, err
	}
	return n.AsFloat(), nil
}

// bitwise implements spec §4.1's "bitwise ops require integer operands;
// widen as above" rule.
func bitwise(pos token.Position, op ast.BinaryOp, left, right value.Value) (value.Value, error) {
	ln, err := coerceNumber(pos, left)
	if err != nil {
		return nil, err
	}
	rn, err := coerceNumber(pos, right)
	if err != nil {
		return nil, err
	}
	if ln.T.IsFloat() || rn.T.IsFloat() {
		return nil, herrors.RuntimeTypeMismatch(pos, "bitwise operators require integer operands")
	}
	tag := value.Widen(ln.T, rn.T)
	a, b := ln.AsInt(), rn.AsInt()
	switch op {
	case ast.BIT_AND:
		return widenedInt(tag, a&b), nil
	case ast.BIT_OR:
		return widenedInt(tag, a|b), nil
	case ast.BIT_XOR:
		return widenedInt(tag, a^b), nil
	case ast.BIT_LSHIFT:
		return widenedInt(tag, a<<uint(b)), nil
	default: // BIT_RSHIFT
		return widenedInt(tag, a>>uint(b)), nil
	}
}
