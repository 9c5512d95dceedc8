package resolver

import "github.com/Schneewolf-Labs/hemlock/internal/ast"

func (r *Resolver) resolveStmt(stmt ast.Statement) {
	if stmt == nil {
		return
	}
	switch s := stmt.(type) {
	case *ast.LetStatement:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
		slot := r.define(s, s.Name)
		s.Slot = &slot
	case *ast.ConstStatement:
		r.resolveExpr(s.Value)
		slot := r.define(s, s.Name)
		s.Slot = &slot
	case *ast.ExpressionStatement:
		r.resolveExpr(s.Expression)
	case *ast.BlockStatement:
		r.enterScope()
		for _, inner := range s.Statements {
			r.resolveStmt(inner)
		}
		r.exitScope()
	case *ast.IfStatement:
		r.resolveExpr(s.Condition)
		r.enterScope()
		r.resolveStmt(s.Then)
		r.exitScope()
		if s.Else != nil {
			r.enterScope()
			r.resolveStmt(s.Else)
			r.exitScope()
		}
	case *ast.WhileStatement:
		r.resolveExpr(s.Condition)
		r.enterScope()
		r.resolveStmt(s.Body)
		r.exitScope()
	case *ast.ForStatement:
		r.enterScope()
		if s.Init != nil {
			r.resolveStmt(s.Init)
		}
		if s.Condition != nil {
			r.resolveExpr(s.Condition)
		}
		r.resolveStmt(s.Body)
		if s.Incr != nil {
			r.resolveStmt(s.Incr)
		}
		r.exitScope()
	case *ast.ReturnStatement:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *ast.BreakStatement, *ast.ContinueStatement:
		// no bindings to resolve
	case *ast.FunctionDeclStatement:
		slot := r.define(s, s.Function.Name)
		s.Slot = &slot
		r.resolveFunctionLiteral(s.Function)
	default:
		// Unknown statement kind: nothing to resolve.
	}
}

// resolveFunctionLiteral opens the function's own nested scope, seeds it
// with parameters in declaration order, resolves the body, and records the
// function's capture set before closing the scope (spec §4.2).
func (r *Resolver) resolveFunctionLiteral(fn *ast.FunctionLiteral) {
	boundary := len(r.scopes)
	r.funcBoundaries = append(r.funcBoundaries, boundary)
	r.captureSets = append(r.captureSets, map[string]bool{})

	r.enterScope()
	for _, p := range fn.Params {
		r.define(fn, p)
	}
	if fn.Body != nil {
		for _, inner := range fn.Body.Statements {
			r.resolveStmt(inner)
		}
	}
	if fn.ArrowBody != nil {
		r.resolveExpr(fn.ArrowBody)
	}
	r.exitScope()

	set := r.captureSets[len(r.captureSets)-1]
	r.captureSets = r.captureSets[:len(r.captureSets)-1]
	r.funcBoundaries = r.funcBoundaries[:len(r.funcBoundaries)-1]

	fn.CaptureSet = fn.CaptureSet[:0]
	for name := range set {
		fn.CaptureSet = append(fn.CaptureSet, name)
	}
}
