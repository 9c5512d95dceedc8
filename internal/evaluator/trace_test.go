package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
)

func TestCallTraceEmitsOneLinePerCall(t *testing.T) {
	fn := &ast.FunctionLiteral{Name: "f", Params: []string{"a"}, ArrowBody: ident("a")}
	decl := &ast.FunctionDeclStatement{Function: fn}
	call := &ast.CallExpression{Callee: ident("f"), Args: []ast.Expression{numberLit(1)}}

	env := environment.New()
	ev := New(nil)
	var buf bytes.Buffer
	ev.Trace = &buf
	require.NoError(t, ev.EvalProgram(&ast.Program{Statements: []ast.Statement{decl}}, env))

	_, err := ev.evalExpr(call, env)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "call f [")
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestNoTraceByDefault(t *testing.T) {
	fn := &ast.FunctionLiteral{Name: "f", Params: []string{"a"}, ArrowBody: ident("a")}
	decl := &ast.FunctionDeclStatement{Function: fn}
	call := &ast.CallExpression{Callee: ident("f"), Args: []ast.Expression{numberLit(1)}}

	env := environment.New()
	ev := New(nil)
	require.NoError(t, ev.EvalProgram(&ast.Program{Statements: []ast.Statement{decl}}, env))
	_, err := ev.evalExpr(call, env)
	require.NoError(t, err)
}
