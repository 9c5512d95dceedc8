package evaluator

import (
	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// evalPrefixIncDec implements spec §4.4's PREFIX_INC/DEC rule: load,
// compute, store, and yield the *new* value.
func (ev *Evaluator) evalPrefixIncDec(e *ast.PrefixIncDecExpression, env *environment.Environment) (value.Value, error) {
	_, newV, err := ev.incDec(e.Pos(), e.Operand, e.Op, env)
	return newV, err
}

// evalPostfixIncDec implements spec §4.4's POSTFIX_INC/DEC rule: load,
// compute, store, and yield the *old* value.
func (ev *Evaluator) evalPostfixIncDec(e *ast.PostfixIncDecExpression, env *environment.Environment) (value.Value, error) {
	oldV, _, err := ev.incDec(e.Pos(), e.Operand, e.Op, env)
	return oldV, err
}

func (ev *Evaluator) incDec(pos token.Position, operand ast.Expression, op ast.IncDecOp, env *environment.Environment) (oldV, newV value.Value, err error) {
	oldV, err = ev.loadLValue(operand, env)
	if err != nil {
		return nil, nil, err
	}
	n, ok := oldV.(value.Number)
	if !ok {
		return nil, nil, herrors.RuntimeTypeMismatch(pos, op.String()+" requires a numeric target")
	}
	delta := int64(1)
	if op == ast.DEC {
		delta = -1
	}
	var result value.Number
	if n.T.IsFloat() {
		result = value.Number{T: n.T, F: n.F + float64(delta)}
	} else {
		result = value.Number{T: n.T, I: n.I + delta}
	}
	if err := ev.storeLValue(operand, result, env); err != nil {
		return nil, nil, err
	}
	return oldV, result, nil
}

// loadLValue reads the current value of an assignable expression. Only
// Identifier/IndexExpression/GetPropertyExpression are valid inc/dec or
// compound-assignment targets; anything else is a parser-level bug.
func (ev *Evaluator) loadLValue(expr ast.Expression, env *environment.Environment) (value.Value, error) {
	switch t := expr.(type) {
	case *ast.Identifier:
		return ev.evalIdentifier(t, env)
	case *ast.IndexExpression:
		return ev.evalIndex(t, env)
	case *ast.GetPropertyExpression:
		return ev.evalGetProperty(t, env)
	default:
		return nil, herrors.MiscNoPos("internal error: invalid lvalue %T", expr)
	}
}

func (ev *Evaluator) storeLValue(expr ast.Expression, v value.Value, env *environment.Environment) error {
	switch t := expr.(type) {
	case *ast.Identifier:
		if t.IsResolved() {
			depth, slot := t.ResolvedDepthSlot()
			return env.SetSlotted(t.Pos(), depth, slot, v)
		}
		return env.Set(t.Pos(), t.Name, v)
	case *ast.IndexExpression:
		obj, err := ev.evalExpr(t.Object, env)
		if err != nil {
			return err
		}
		idxVal, err := ev.evalExpr(t.Index, env)
		if err != nil {
			return err
		}
		arr, ok := obj.(value.Array)
		if !ok {
			return herrors.RuntimeTypeMismatch(t.Pos(), "cannot index-assign into value of kind "+obj.Tag().String())
		}
		idx, err := value.ToI64(idxVal)
		if err != nil {
			return herrors.RuntimeTypeMismatch(t.Pos(), err.Error())
		}
		if idx < 0 || idx >= int64(len(arr.A.Elements)) {
			return herrors.IndexOutOfBounds(t.Pos(), idx, int64(len(arr.A.Elements)))
		}
		arr.A.Elements[idx] = v
		return nil
	case *ast.GetPropertyExpression:
		return ev.evalSetProperty(t, v, env)
	default:
		return herrors.MiscNoPos("internal error: invalid lvalue %T", expr)
	}
}
