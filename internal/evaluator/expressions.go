package evaluator

import (
	"strings"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

func (ev *Evaluator) evalExpr(expr ast.Expression, env *environment.Environment) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return numberLiteralValue(e), nil
	case *ast.BoolLiteral:
		return value.Bool(e.Value), nil
	case *ast.StringLiteral:
		return value.NewString(e.Value), nil
	case *ast.StringInterpolation:
		return ev.evalStringInterpolation(e, env)
	case *ast.NullLiteral:
		return value.NullValue, nil
	case *ast.RuneLiteral:
		return value.I32(int64(e.Value)), nil
	case *ast.Identifier:
		return ev.evalIdentifier(e, env)
	case *ast.GroupedExpression:
		return ev.evalExpr(e.Expression, env)
	case *ast.UnaryExpression:
		return ev.evalUnary(e, env)
	case *ast.BinaryExpression:
		return ev.evalBinary(e, env)
	case *ast.AssignExpression:
		return ev.evalAssign(e, env)
	case *ast.CallExpression:
		return ev.evalCall(e, env)
	case *ast.GetPropertyExpression:
		return ev.evalGetProperty(e, env)
	case *ast.IndexExpression:
		return ev.evalIndex(e, env)
	case *ast.IndexAssignExpression:
		return ev.evalIndexAssign(e, env)
	case *ast.ArrayLiteral:
		return ev.evalArrayLiteral(e, env)
	case *ast.ObjectLiteral:
		return ev.evalObjectLiteral(e, env)
	case *ast.FunctionLiteral:
		return value.Closure{Fn: value.NewFunction(e, env)}, nil
	case *ast.TernaryExpression:
		return ev.evalTernary(e, env)
	case *ast.NullCoalesceExpression:
		return ev.evalNullCoalesce(e, env)
	case *ast.PrefixIncDecExpression:
		return ev.evalPrefixIncDec(e, env)
	case *ast.PostfixIncDecExpression:
		return ev.evalPostfixIncDec(e, env)
	case *ast.AwaitExpression:
		// AWAIT is a transparent pass-through in the tree-walking core
		// (spec §5): the interpreter has no suspension points.
		return ev.evalExpr(e.Operand, env)
	default:
		return nil, herrors.MiscNoPos("internal error: unhandled expression kind %T", expr)
	}
}

func numberLiteralValue(n *ast.NumberLiteral) value.Value {
	if n.IsFloat {
		return value.F64(n.FloatValue)
	}
	if n.IntValue >= -2147483648 && n.IntValue <= 2147483647 {
		return value.I32(n.IntValue)
	}
	return value.I64(n.IntValue)
}

func (ev *Evaluator) evalStringInterpolation(e *ast.StringInterpolation, env *environment.Environment) (value.Value, error) {
	var sb strings.Builder
	for i, lit := range e.Literals {
		sb.WriteString(lit)
		if i < len(e.Parts) {
			v, err := ev.evalExpr(e.Parts[i], env)
			if err != nil {
				return nil, err
			}
			sb.WriteString(value.ToHString(v))
		}
	}
	return value.NewString(sb.String()), nil
}

// evalIdentifier implements spec §4.4's IDENT rule: slotted lookup if
// resolved, else a dynamic walk, else the builtin table, else
// UndefinedVariable.
func (ev *Evaluator) evalIdentifier(e *ast.Identifier, env *environment.Environment) (value.Value, error) {
	if e.IsResolved() {
		depth, slot := e.ResolvedDepthSlot()
		return env.GetSlotted(e.Pos(), depth, slot)
	}
	if v, ok := env.Lookup(e.Name); ok {
		return v, nil
	}
	if b, ok := ev.Builtins.Lookup(e.Name); ok {
		return value.BuiltinFnV{Fn: b}, nil
	}
	return nil, herrors.UndefinedVariable(e.Pos(), e.Name)
}

func (ev *Evaluator) evalAssign(e *ast.AssignExpression, env *environment.Environment) (value.Value, error) {
	v, err := ev.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	v = value.Retain(v)
	switch target := e.Target.(type) {
	case *ast.Identifier:
		if target.IsResolved() {
			depth, slot := target.ResolvedDepthSlot()
			if err := env.SetSlotted(e.Pos(), depth, slot, v); err != nil {
				return nil, err
			}
			return v, nil
		}
		if err := env.Set(e.Pos(), target.Name, v); err != nil {
			return nil, err
		}
		return v, nil
	case *ast.GetPropertyExpression:
		if err := ev.evalSetProperty(target, v, env); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, herrors.MiscNoPos("internal error: invalid assignment target %T", e.Target)
	}
}

func (ev *Evaluator) evalArrayLiteral(e *ast.ArrayLiteral, env *environment.Environment) (value.Value, error) {
	elems := make([]value.Value, len(e.Elements))
	for i, el := range e.Elements {
		v, err := ev.evalExpr(el, env)
		if err != nil {
			return nil, err
		}
		elems[i] = value.Retain(v)
	}
	return value.NewArray(elems, nil), nil
}

func (ev *Evaluator) evalObjectLiteral(e *ast.ObjectLiteral, env *environment.Environment) (value.Value, error) {
	obj := value.NewObject()
	for i, k := range e.Keys {
		v, err := ev.evalExpr(e.Values[i], env)
		if err != nil {
			return nil, err
		}
		obj.O.Set(k, value.Retain(v))
	}
	return obj, nil
}

func (ev *Evaluator) evalTernary(e *ast.TernaryExpression, env *environment.Environment) (value.Value, error) {
	cond, err := ev.evalExpr(e.Condition, env)
	if err != nil {
		return nil, err
	}
	if value.ToBool(cond) {
		return ev.evalExpr(e.Then, env)
	}
	return ev.evalExpr(e.Else, env)
}

func (ev *Evaluator) evalNullCoalesce(e *ast.NullCoalesceExpression, env *environment.Environment) (value.Value, error) {
	left, err := ev.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	if _, ok := left.(value.Null); ok {
		return ev.evalExpr(e.Right, env)
	}
	return left, nil
}
