package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
)

var pos = token.Position{Line: 1, Column: 1}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Token: token.Token{Type: token.IDENT, Literal: name, Pos: pos}, Name: name}
}

func TestResolveAnnotatesLocalReference(t *testing.T) {
	// let x = 1; x;
	let := &ast.LetStatement{
		Token: token.Token{Type: token.LET, Literal: "let", Pos: pos},
		Name:  "x",
		Value: &ast.NumberLiteral{Token: token.Token{Type: token.INT, Literal: "1", Pos: pos}, IntValue: 1},
	}
	ref := ident("x")
	exprStmt := &ast.ExpressionStatement{Token: token.Token{Pos: pos}, Expression: ref}

	program := &ast.Program{Statements: []ast.Statement{let, exprStmt}}
	errs := Resolve(program)
	require.Empty(t, errs)

	require.NotNil(t, let.Slot)
	require.Equal(t, 0, *let.Slot)

	require.True(t, ref.IsResolved())
	depth, slot := ref.ResolvedDepthSlot()
	require.Equal(t, 0, depth)
	require.Equal(t, 0, slot)
}

func TestResolveLeavesUnknownReferenceUnresolved(t *testing.T) {
	ref := ident("undeclared")
	exprStmt := &ast.ExpressionStatement{Token: token.Token{Pos: pos}, Expression: ref}
	program := &ast.Program{Statements: []ast.Statement{exprStmt}}

	errs := Resolve(program)
	require.Empty(t, errs, "a miss is not a resolver error")
	require.False(t, ref.IsResolved())
}

func TestResolveDuplicateDeclarationInSameScopeIsError(t *testing.T) {
	letA := &ast.LetStatement{Token: token.Token{Pos: pos}, Name: "x", Value: &ast.NumberLiteral{IntValue: 1}}
	letB := &ast.LetStatement{Token: token.Token{Pos: pos}, Name: "x", Value: &ast.NumberLiteral{IntValue: 2}}
	program := &ast.Program{Statements: []ast.Statement{letA, letB}}

	errs := Resolve(program)
	require.Len(t, errs, 1)
}

func TestResolveBlockScopeShadowsOuter(t *testing.T) {
	// let x = 1; { let x = 2; x; } x;
	outerLet := &ast.LetStatement{Token: token.Token{Pos: pos}, Name: "x", Value: &ast.NumberLiteral{IntValue: 1}}
	innerLet := &ast.LetStatement{Token: token.Token{Pos: pos}, Name: "x", Value: &ast.NumberLiteral{IntValue: 2}}
	innerRef := ident("x")
	block := &ast.BlockStatement{
		Token: token.Token{Pos: pos},
		Statements: []ast.Statement{
			innerLet,
			&ast.ExpressionStatement{Expression: innerRef},
		},
	}
	outerRef := ident("x")
	program := &ast.Program{Statements: []ast.Statement{
		outerLet,
		block,
		&ast.ExpressionStatement{Expression: outerRef},
	}}

	errs := Resolve(program)
	require.Empty(t, errs)

	innerDepth, innerSlot := innerRef.ResolvedDepthSlot()
	require.Equal(t, 0, innerDepth)
	require.Equal(t, 0, innerSlot)

	outerDepth, outerSlot := outerRef.ResolvedDepthSlot()
	require.Equal(t, 0, outerDepth)
	require.Equal(t, 0, outerSlot)
}

func TestResolveFunctionParamsAndCaptureSet(t *testing.T) {
	// let y = 10;
	// fn add(n) { return n + y; }
	outerLet := &ast.LetStatement{Token: token.Token{Pos: pos}, Name: "y", Value: &ast.NumberLiteral{IntValue: 10}}

	nRef := ident("n")
	yRef := ident("y")
	body := &ast.BlockStatement{Statements: []ast.Statement{
		&ast.ReturnStatement{Value: &ast.BinaryExpression{Left: nRef, Op: ast.ADD, Right: yRef}},
	}}
	fn := &ast.FunctionLiteral{Token: token.Token{Pos: pos}, Name: "add", Params: []string{"n"}, Body: body}
	decl := &ast.FunctionDeclStatement{Token: token.Token{Pos: pos}, Function: fn}

	program := &ast.Program{Statements: []ast.Statement{outerLet, decl}}
	errs := Resolve(program)
	require.Empty(t, errs)

	require.NotNil(t, decl.Slot)
	require.Equal(t, 1, *decl.Slot) // y took slot 0 in the same global scope

	require.True(t, nRef.IsResolved())
	nDepth, nSlot := nRef.ResolvedDepthSlot()
	require.Equal(t, 0, nDepth)
	require.Equal(t, 0, nSlot)

	require.True(t, yRef.IsResolved())
	yDepth, _ := yRef.ResolvedDepthSlot()
	require.Equal(t, 1, yDepth)

	require.Contains(t, fn.CaptureSet, "y")
	require.NotContains(t, fn.CaptureSet, "n")
}

func TestResolveForLoopVariableScopedToLoop(t *testing.T) {
	// for (let i = 0; i; i) { i; }
	initLet := &ast.LetStatement{Token: token.Token{Pos: pos}, Name: "i", Value: &ast.NumberLiteral{IntValue: 0}}
	condRef := ident("i")
	bodyRef := ident("i")
	body := &ast.BlockStatement{Statements: []ast.Statement{
		&ast.ExpressionStatement{Expression: bodyRef},
	}}
	forStmt := &ast.ForStatement{
		Token:     token.Token{Pos: pos},
		Init:      initLet,
		Condition: condRef,
		Body:      body,
	}
	program := &ast.Program{Statements: []ast.Statement{forStmt}}

	errs := Resolve(program)
	require.Empty(t, errs)

	require.True(t, condRef.IsResolved())
	condDepth, _ := condRef.ResolvedDepthSlot()
	require.Equal(t, 0, condDepth)

	require.True(t, bodyRef.IsResolved())
	bodyDepth, _ := bodyRef.ResolvedDepthSlot()
	require.Equal(t, 1, bodyDepth) // one extra scope for the block body
}
