package evaluator

import (
	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// evalUnary implements spec §4.3's unary rules, reused at runtime: NEGATE
// preserves the operand's numeric kind, NOT yields BOOL, BIT_NOT requires
// (and preserves) an integer kind.
func (ev *Evaluator) evalUnary(e *ast.UnaryExpression, env *environment.Environment) (value.Value, error) {
	operand, err := ev.evalExpr(e.Operand, env)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case ast.NOT:
		return value.Bool(!value.ToBool(operand)), nil
	case ast.BIT_NOT:
		n, err := coerceNumber(e.Pos(), operand)
		if err != nil {
			return nil, err
		}
		if n.T.IsFloat() {
			return nil, herrors.RuntimeTypeMismatch(e.Pos(), "~ requires an integer operand")
		}
		return value.Number{T: n.T, I: ^n.AsInt()}, nil
	default: // NEGATE
		n, err := coerceNumber(e.Pos(), operand)
		if err != nil {
			return nil, err
		}
		if n.T.IsFloat() {
			return value.Number{T: n.T, F: -n.F}, nil
		}
		return value.Number{T: n.T, I: -n.AsInt()}, nil
	}
}
