package typeinfer

import (
	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/types"
)

// maxPasses bounds the fixpoint work-list loop. The lattice has finite
// height (at most four steps from UNKNOWN down to a concrete leaf), so in
// practice the pass converges in 2-3 iterations; this is a generous
// backstop against a bookkeeping bug turning the loop infinite.
const maxPasses = 64

type pass struct {
	registry *Registry
	changed  bool

	// funcNames is the stack of enclosing function names, used so a
	// RETURN statement knows which registry entry to refine. An empty
	// element means an anonymous function literal (its return type is
	// still inferred on the node but has no registry home).
	funcNames []string
}

// Infer runs the type-inference pass over program to a fixpoint, mutating
// every expression node's annotated Type in place and returning the
// function-return-type registry. Program must already be resolved (or not
// — the inferer does not consult resolver annotations; it re-derives
// bindings from LET/CONST/FUNCTION structure on each pass).
func Infer(program *ast.Program) *Registry {
	p := &pass{registry: newRegistry()}

	for i := 0; i < maxPasses; i++ {
		p.changed = false
		env := newTypeEnv(nil)
		for _, stmt := range program.Statements {
			p.inferStmt(stmt, env)
		}
		if !p.changed {
			break
		}
	}
	return p.registry
}

func (p *pass) inferStmt(stmt ast.Statement, env *typeEnv) {
	if stmt == nil {
		return
	}
	switch s := stmt.(type) {
	case *ast.LetStatement:
		var t *types.Type
		if s.TypeAnnotation != nil {
			t = s.TypeAnnotation
		} else if s.Value != nil {
			t = p.inferExpr(s.Value, env)
		} else {
			t = types.UnknownType
		}
		env.define(s.Name, t)
	case *ast.ConstStatement:
		var t *types.Type
		if s.TypeAnnotation != nil {
			t = s.TypeAnnotation
		} else {
			t = p.inferExpr(s.Value, env)
		}
		env.define(s.Name, t)
	case *ast.ExpressionStatement:
		p.inferExpr(s.Expression, env)
	case *ast.BlockStatement:
		inner := newTypeEnv(env)
		for _, st := range s.Statements {
			p.inferStmt(st, inner)
		}
	case *ast.IfStatement:
		p.inferExpr(s.Condition, env)
		p.inferStmt(s.Then, newTypeEnv(env))
		if s.Else != nil {
			p.inferStmt(s.Else, newTypeEnv(env))
		}
	case *ast.WhileStatement:
		p.inferExpr(s.Condition, env)
		p.inferStmt(s.Body, newTypeEnv(env))
	case *ast.ForStatement:
		inner := newTypeEnv(env)
		p.inferStmt(s.Init, inner)
		if s.Condition != nil {
			p.inferExpr(s.Condition, inner)
		}
		p.inferStmt(s.Body, newTypeEnv(inner))
		p.inferStmt(s.Incr, inner)
	case *ast.ReturnStatement:
		var t *types.Type
		if s.Value != nil {
			t = p.inferExpr(s.Value, env)
		} else {
			t = types.VoidType
		}
		if len(p.funcNames) > 0 {
			name := p.funcNames[len(p.funcNames)-1]
			if name != "" && p.registry.refineReturn(name, t) {
				p.changed = true
			}
		}
	case *ast.BreakStatement, *ast.ContinueStatement:
		// no type information
	case *ast.FunctionDeclStatement:
		env.define(s.Function.Name, types.FuncType)
		p.inferFunctionLiteral(s.Function, env)
	default:
		// unknown statement kind: nothing to infer
	}
}

func (p *pass) inferFunctionLiteral(fn *ast.FunctionLiteral, env *typeEnv) *types.Type {
	inner := newTypeEnv(env)
	for i, param := range fn.Params {
		t := types.UnknownType
		if i < len(fn.ParamTypes) && fn.ParamTypes[i] != nil {
			t = fn.ParamTypes[i]
		}
		inner.define(param, t)
	}

	p.funcNames = append(p.funcNames, fn.Name)
	if fn.Body != nil {
		for _, st := range fn.Body.Statements {
			p.inferStmt(st, inner)
		}
	}
	var bodyType *types.Type
	if fn.ArrowBody != nil {
		bodyType = p.inferExpr(fn.ArrowBody, inner)
		if fn.Name != "" && p.registry.refineReturn(fn.Name, bodyType) {
			p.changed = true
		}
	}
	p.funcNames = p.funcNames[:len(p.funcNames)-1]

	if fn.ReturnType != nil {
		fn.SetType(fn.ReturnType)
		return fn.ReturnType
	}
	if fn.Name != "" {
		if rt, ok := p.registry.FuncReturns[fn.Name]; ok {
			fn.SetType(rt)
			return rt
		}
	}
	fn.SetType(types.FuncType)
	return types.FuncType
}

// inferExpr infers expr's type, annotates the node, and returns the type
// for the benefit of the caller (e.g. a LET initializer).
func (p *pass) inferExpr(expr ast.Expression, env *typeEnv) *types.Type {
	if expr == nil {
		return types.UnknownType
	}
	t := p.inferExprUncached(expr, env)
	if t == nil {
		t = types.UnknownType
	}
	expr.SetType(t)
	return t
}

func (p *pass) inferExprUncached(expr ast.Expression, env *typeEnv) *types.Type {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		if e.IsFloat {
			return types.F64Type
		}
		if e.IntValue >= -2147483648 && e.IntValue <= 2147483647 {
			return types.I32Type
		}
		return types.I64Type
	case *ast.BoolLiteral:
		return types.BoolType
	case *ast.StringLiteral:
		return types.StringType
	case *ast.StringInterpolation:
		for _, part := range e.Parts {
			p.inferExpr(part, env)
		}
		return types.StringType
	case *ast.NullLiteral:
		return types.NullType
	case *ast.RuneLiteral:
		return types.I32Type
	case *ast.Identifier:
		if t := env.get(e.Name); t != nil {
			return t
		}
		return types.UnknownType
	case *ast.GroupedExpression:
		return p.inferExpr(e.Expression, env)
	case *ast.UnaryExpression:
		operand := p.inferExpr(e.Operand, env)
		switch e.Op {
		case ast.NOT:
			return types.BoolType
		case ast.BIT_NOT:
			if operand.Kind.IsInteger() {
				return operand
			}
			return types.IntegerType
		default: // NEGATE
			return operand
		}
	case *ast.BinaryExpression:
		return p.inferBinary(e, env)
	case *ast.AssignExpression:
		rhs := p.inferExpr(e.Value, env)
		if ident, ok := e.Target.(*ast.Identifier); ok {
			if env.refine(ident.Name, rhs) {
				p.changed = true
			}
			if t := env.get(ident.Name); t != nil {
				ident.SetType(t)
				return t
			}
		} else {
			p.inferExpr(e.Target, env)
		}
		return rhs
	case *ast.CallExpression:
		p.inferExpr(e.Callee, env)
		for _, arg := range e.Args {
			p.inferExpr(arg, env)
		}
		if ident, ok := e.Callee.(*ast.Identifier); ok {
			if rt, ok := p.registry.FuncReturns[ident.Name]; ok {
				return rt
			}
		}
		return types.UnknownType
	case *ast.GetPropertyExpression:
		p.inferExpr(e.Object, env)
		if e.Name == "length" {
			return types.I32Type
		}
		return types.UnknownType
	case *ast.IndexExpression:
		obj := p.inferExpr(e.Object, env)
		p.inferExpr(e.Index, env)
		if obj != nil && obj.Kind == types.ARRAY && obj.Element != nil {
			return obj.Element
		}
		if obj != nil && obj.Kind == types.STRING {
			return types.StringType
		}
		return types.UnknownType
	case *ast.IndexAssignExpression:
		p.inferExpr(e.Object, env)
		p.inferExpr(e.Index, env)
		return p.inferExpr(e.Value, env)
	case *ast.ArrayLiteral:
		var elem *types.Type
		for _, el := range e.Elements {
			t := p.inferExpr(el, env)
			if elem == nil {
				elem = t
			} else {
				elem = Meet(elem, t)
			}
		}
		if elem == nil {
			elem = types.UnknownType
		}
		return types.ArrayOf(elem)
	case *ast.ObjectLiteral:
		for _, v := range e.Values {
			p.inferExpr(v, env)
		}
		return types.ObjectType
	case *ast.FunctionLiteral:
		return p.inferFunctionLiteral(e, env)
	case *ast.TernaryExpression:
		p.inferExpr(e.Condition, env)
		thenT := p.inferExpr(e.Then, env)
		elseT := p.inferExpr(e.Else, env)
		return Meet(thenT, elseT)
	case *ast.NullCoalesceExpression:
		left := p.inferExpr(e.Left, env)
		right := p.inferExpr(e.Right, env)
		if left != nil && left.Kind == types.NULL {
			return right
		}
		return Meet(left, right)
	case *ast.PrefixIncDecExpression:
		return p.inferExpr(e.Operand, env)
	case *ast.PostfixIncDecExpression:
		return p.inferExpr(e.Operand, env)
	case *ast.AwaitExpression:
		return p.inferExpr(e.Operand, env)
	default:
		return types.UnknownType
	}
}

func (p *pass) inferBinary(e *ast.BinaryExpression, env *typeEnv) *types.Type {
	left := p.inferExpr(e.Left, env)
	right := p.inferExpr(e.Right, env)

	switch e.Op {
	case ast.ADD:
		if left != nil && left.Kind == types.STRING || right != nil && right.Kind == types.STRING {
			return types.StringType
		}
		return widenArith(left, right)
	case ast.SUB, ast.MUL:
		return widenArith(left, right)
	case ast.DIV:
		return types.F64Type
	case ast.MOD:
		return widenArith(left, right)
	case ast.EQ, ast.NE, ast.LT, ast.LE, ast.GT, ast.GE, ast.AND, ast.OR:
		return types.BoolType
	case ast.BIT_AND, ast.BIT_OR, ast.BIT_XOR, ast.BIT_LSHIFT, ast.BIT_RSHIFT:
		return widenArith(left, right)
	default:
		return types.UnknownType
	}
}
