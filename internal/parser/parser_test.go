package parser

import (
	"testing"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/lexer"
)

func testParser(input string) *Parser {
	return New(lexer.New(input))
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	for _, e := range errs {
		t.Errorf("parser error: %s", e)
	}
	t.FailNow()
}

func TestLetStatement(t *testing.T) {
	p := testParser("let a = 1 + 2;")
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Statements))
	}
	let, ok := program.Statements[0].(*ast.LetStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.LetStatement", program.Statements[0])
	}
	if let.Name != "a" {
		t.Errorf("let.Name = %q, want %q", let.Name, "a")
	}
	bin, ok := let.Value.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("let.Value is %T, want *ast.BinaryExpression", let.Value)
	}
	if bin.Op != ast.ADD {
		t.Errorf("bin.Op = %v, want ADD", bin.Op)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3));"},
		{"(1 + 2) * 3;", "(((1 + 2)) * 3);"},
		{"1 < 2 == 3 > 2;", "((1 < 2) == (3 > 2));"},
		{"-a * b;", "((-a) * b);"},
		{"!true == false;", "((!true) == false);"},
		{"a + b + c;", "((a + b) + c);"},
	}

	for _, tt := range tests {
		p := testParser(tt.input)
		program := p.ParseProgram()
		checkParserErrors(t, p)
		got := program.Statements[0].String()
		if got != tt.want {
			t.Errorf("input %q: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIfElseStatement(t *testing.T) {
	p := testParser(`if (x < y) { return x; } else { return y; }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.IfStatement", program.Statements[0])
	}
	if stmt.Else == nil {
		t.Fatal("expected an else branch")
	}
}

func TestFunctionDeclArrowAndBlockBodies(t *testing.T) {
	p := testParser(`
		fn square(x) => x * x;
		fn fact(n) { if (n <= 1) return 1; return n * fact(n - 1); }
	`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}

	square, ok := program.Statements[0].(*ast.FunctionDeclStatement)
	if !ok {
		t.Fatalf("statement 0 is %T, want *ast.FunctionDeclStatement", program.Statements[0])
	}
	if square.Function.ArrowBody == nil {
		t.Error("expected square to have an arrow body")
	}

	fact, ok := program.Statements[1].(*ast.FunctionDeclStatement)
	if !ok {
		t.Fatalf("statement 1 is %T, want *ast.FunctionDeclStatement", program.Statements[1])
	}
	if fact.Function.Body == nil {
		t.Error("expected fact to have a block body")
	}
}

func TestCallExpressionArguments(t *testing.T) {
	p := testParser(`add(1, 2 * 3, four);`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.CallExpression", stmt.Expression)
	}
	if len(call.Args) != 3 {
		t.Fatalf("got %d args, want 3", len(call.Args))
	}
}

func TestMethodCallsWithArrowCallback(t *testing.T) {
	p := testParser(`xs.push(1); print(xs.map(fn(x) => x * x));`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}
}

func TestIndexAssignExpression(t *testing.T) {
	p := testParser(`xs[0] = 5;`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	if _, ok := stmt.Expression.(*ast.IndexAssignExpression); !ok {
		t.Fatalf("expression is %T, want *ast.IndexAssignExpression", stmt.Expression)
	}
}

func TestTernaryAndNullCoalesce(t *testing.T) {
	p := testParser(`let a = cond ? 1 : 2; let b = x ?? y;`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	let1 := program.Statements[0].(*ast.LetStatement)
	if _, ok := let1.Value.(*ast.TernaryExpression); !ok {
		t.Fatalf("let1.Value is %T, want *ast.TernaryExpression", let1.Value)
	}
	let2 := program.Statements[1].(*ast.LetStatement)
	if _, ok := let2.Value.(*ast.NullCoalesceExpression); !ok {
		t.Fatalf("let2.Value is %T, want *ast.NullCoalesceExpression", let2.Value)
	}
}

func TestStringInterpolation(t *testing.T) {
	p := testParser("\"total: ${a + b} items\";")
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	interp, ok := stmt.Expression.(*ast.StringInterpolation)
	if !ok {
		t.Fatalf("expression is %T, want *ast.StringInterpolation", stmt.Expression)
	}
	if len(interp.Parts) != 1 {
		t.Fatalf("got %d interpolated parts, want 1", len(interp.Parts))
	}
	if _, ok := interp.Parts[0].(*ast.BinaryExpression); !ok {
		t.Fatalf("interpolated part is %T, want *ast.BinaryExpression", interp.Parts[0])
	}
}

func TestForLoop(t *testing.T) {
	p := testParser(`for (let i = 0; i < 10; i = i + 1) { print(i); }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	forStmt, ok := program.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ForStatement", program.Statements[0])
	}
	if forStmt.Init == nil || forStmt.Condition == nil || forStmt.Incr == nil {
		t.Fatal("expected for-loop to have init, condition, and incr")
	}
}

func TestConstReassignmentParsesButIsRejectedLater(t *testing.T) {
	p := testParser(`const k = 7; k = 8;`)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}
}
