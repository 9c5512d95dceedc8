package resolver

import "github.com/Schneewolf-Labs/hemlock/internal/ast"

// resolveExpr recursively walks expr, annotating Identifier and
// AssignExpression nodes with (depth, slot) on a lookup hit. A miss is not
// an error here (spec §4.2): it is left unresolved for the evaluator's
// dynamic fallback.
func (r *Resolver) resolveExpr(expr ast.Expression) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		if depth, slot, ok := r.lookup(e.Name); ok {
			e.Resolve(depth, slot)
		}
	case *ast.NumberLiteral, *ast.BoolLiteral, *ast.StringLiteral, *ast.NullLiteral, *ast.RuneLiteral:
		// leaves, nothing to resolve
	case *ast.StringInterpolation:
		for _, part := range e.Parts {
			r.resolveExpr(part)
		}
	case *ast.BinaryExpression:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.UnaryExpression:
		r.resolveExpr(e.Operand)
	case *ast.GroupedExpression:
		r.resolveExpr(e.Expression)
	case *ast.CallExpression:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.AssignExpression:
		r.resolveExpr(e.Value)
		if ident, ok := e.Target.(*ast.Identifier); ok {
			if depth, slot, ok := r.lookup(ident.Name); ok {
				e.Resolve(depth, slot)
				ident.Resolve(depth, slot)
			}
		} else {
			r.resolveExpr(e.Target)
		}
	case *ast.GetPropertyExpression:
		r.resolveExpr(e.Object)
	case *ast.IndexExpression:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)
	case *ast.IndexAssignExpression:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)
		r.resolveExpr(e.Value)
	case *ast.ArrayLiteral:
		for _, el := range e.Elements {
			r.resolveExpr(el)
		}
	case *ast.ObjectLiteral:
		for _, v := range e.Values {
			r.resolveExpr(v)
		}
	case *ast.FunctionLiteral:
		r.resolveFunctionLiteral(e)
	case *ast.TernaryExpression:
		r.resolveExpr(e.Condition)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)
	case *ast.NullCoalesceExpression:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.PrefixIncDecExpression:
		r.resolveExpr(e.Operand)
	case *ast.PostfixIncDecExpression:
		r.resolveExpr(e.Operand)
	case *ast.AwaitExpression:
		r.resolveExpr(e.Operand)
	default:
		// Unknown expression kind: nothing to resolve.
	}
}
