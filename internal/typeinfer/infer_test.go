package typeinfer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/types"
)

var pos = token.Position{Line: 1, Column: 1}

func numberLit(i int64) *ast.NumberLiteral {
	return &ast.NumberLiteral{Token: token.Token{Pos: pos}, IntValue: i}
}

func TestMeetSameKindIsIdentity(t *testing.T) {
	require.True(t, Meet(types.I32Type, types.I32Type).Equal(types.I32Type))
}

func TestMeetUnknownYieldsOther(t *testing.T) {
	require.True(t, Meet(types.UnknownType, types.I32Type).Equal(types.I32Type))
	require.True(t, Meet(types.I32Type, types.UnknownType).Equal(types.I32Type))
}

func TestMeetDisjointIntegerWidensToInteger(t *testing.T) {
	require.True(t, Meet(types.I32Type, types.I64Type).Equal(types.IntegerType))
}

func TestMeetDisjointNumericWidensToNumeric(t *testing.T) {
	require.True(t, Meet(types.I32Type, types.F64Type).Equal(types.NumericType))
}

func TestMeetIncompatibleCollapsesToUnknown(t *testing.T) {
	require.True(t, Meet(types.StringType, types.BoolType).Equal(types.UnknownType))
}

func TestInferNumberLiteralWidth(t *testing.T) {
	small := numberLit(5)
	large := numberLit(1 << 40)
	float := &ast.NumberLiteral{Token: token.Token{Pos: pos}, IsFloat: true, FloatValue: 1.5}

	program := &ast.Program{Statements: []ast.Statement{
		&ast.ExpressionStatement{Expression: small},
		&ast.ExpressionStatement{Expression: large},
		&ast.ExpressionStatement{Expression: float},
	}}
	Infer(program)

	require.True(t, small.GetType().Equal(types.I32Type))
	require.True(t, large.GetType().Equal(types.I64Type))
	require.True(t, float.GetType().Equal(types.F64Type))
}

func TestInferBinaryAddWidening(t *testing.T) {
	bin := &ast.BinaryExpression{Left: numberLit(1), Op: ast.ADD, Right: &ast.NumberLiteral{IsFloat: true, FloatValue: 2.5}}
	program := &ast.Program{Statements: []ast.Statement{&ast.ExpressionStatement{Expression: bin}}}
	Infer(program)

	require.True(t, bin.GetType().Equal(types.F64Type))
}

func TestInferBinaryAddStringConcat(t *testing.T) {
	bin := &ast.BinaryExpression{
		Left:  &ast.StringLiteral{Value: "x"},
		Op:    ast.ADD,
		Right: numberLit(42),
	}
	program := &ast.Program{Statements: []ast.Statement{&ast.ExpressionStatement{Expression: bin}}}
	Infer(program)

	require.True(t, bin.GetType().Equal(types.StringType))
}

func TestInferDivisionAlwaysF64(t *testing.T) {
	bin := &ast.BinaryExpression{Left: numberLit(1), Op: ast.DIV, Right: numberLit(2)}
	program := &ast.Program{Statements: []ast.Statement{&ast.ExpressionStatement{Expression: bin}}}
	Infer(program)

	require.True(t, bin.GetType().Equal(types.F64Type))
}

func TestInferComparisonIsBool(t *testing.T) {
	bin := &ast.BinaryExpression{Left: numberLit(1), Op: ast.LT, Right: numberLit(2)}
	program := &ast.Program{Statements: []ast.Statement{&ast.ExpressionStatement{Expression: bin}}}
	Infer(program)

	require.True(t, bin.GetType().Equal(types.BoolType))
}

func TestInferLetExplicitAnnotationOverridesInitializer(t *testing.T) {
	let := &ast.LetStatement{Name: "x", TypeAnnotation: types.F64Type, Value: numberLit(1)}
	ref := &ast.Identifier{Name: "x"}
	program := &ast.Program{Statements: []ast.Statement{
		let,
		&ast.ExpressionStatement{Expression: ref},
	}}
	Infer(program)

	require.True(t, ref.GetType().Equal(types.F64Type))
}

func TestInferFunctionReturnTypeRegistry(t *testing.T) {
	// fn double(n: i32) { return n * 2; }
	body := &ast.BlockStatement{Statements: []ast.Statement{
		&ast.ReturnStatement{Value: &ast.BinaryExpression{
			Left: &ast.Identifier{Name: "n"}, Op: ast.MUL, Right: numberLit(2),
		}},
	}}
	fn := &ast.FunctionLiteral{Name: "double", Params: []string{"n"}, ParamTypes: []*types.Type{types.I32Type}, Body: body}
	decl := &ast.FunctionDeclStatement{Function: fn}

	call := &ast.CallExpression{Callee: &ast.Identifier{Name: "double"}, Args: []ast.Expression{numberLit(3)}}
	program := &ast.Program{Statements: []ast.Statement{
		decl,
		&ast.ExpressionStatement{Expression: call},
	}}
	registry := Infer(program)

	rt, ok := registry.FuncReturns["double"]
	require.True(t, ok)
	require.True(t, rt.Equal(types.I32Type))
	require.True(t, call.GetType().Equal(types.I32Type))
}

func TestInferTernaryMeetsArmTypes(t *testing.T) {
	tern := &ast.TernaryExpression{
		Condition: &ast.BoolLiteral{Value: true},
		Then:      numberLit(1),
		Else:      &ast.NumberLiteral{Token: token.Token{Pos: pos}, IsFloat: true, FloatValue: 2.0},
	}
	program := &ast.Program{Statements: []ast.Statement{&ast.ExpressionStatement{Expression: tern}}}
	Infer(program)

	require.True(t, tern.GetType().Equal(types.NumericType))
}

func TestInferNullCoalesceShortCircuitsToRightArmTypeWhenLHSIsNull(t *testing.T) {
	nc := &ast.NullCoalesceExpression{Left: &ast.NullLiteral{}, Right: &ast.StringLiteral{Value: "d"}}
	program := &ast.Program{Statements: []ast.Statement{&ast.ExpressionStatement{Expression: nc}}}
	Infer(program)

	require.True(t, nc.GetType().Equal(types.StringType))
}
