package evaluator

import (
	"fmt"
	"io"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// BuiltinTable is the lookup surface the evaluator needs from the builtin
// catalog (spec §4.5): a name table for unresolved top-level identifiers
// (print, len, type_of, ...) and a separate method table keyed by
// receiver tag for `object.method(...)` dispatch (array/string ops).
// internal/builtins.Registry satisfies this; declaring the interface here
// rather than importing that package keeps the evaluator free to run
// against a stub table in its own tests.
type BuiltinTable interface {
	Lookup(name string) (*value.BuiltinFn, bool)
	LookupMethod(receiver value.Tag, name string) (*value.BuiltinFn, bool)
}

// emptyBuiltins is used when no table is supplied; every lookup misses.
type emptyBuiltins struct{}

func (emptyBuiltins) Lookup(string) (*value.BuiltinFn, bool)                { return nil, false }
func (emptyBuiltins) LookupMethod(value.Tag, string) (*value.BuiltinFn, bool) { return nil, false }

// Evaluator holds the state threaded through a single program's tree-walk:
// the builtin catalog and an optional trace writer. Everything else (the active environment) is
// passed explicitly down the call chain, mirroring the Environment's own
// parent-pointer discipline instead of stashing it on the struct (spec
// §4.4 describes the evaluator as a pure switch over AST node kind).
type Evaluator struct {
	Builtins BuiltinTable

	// Trace, when non-nil, receives one line per user-function call (name
	// plus the closure's debug identity) for the driver's `--trace` flag.
	// Left nil otherwise (only trace_test.go sets it among this package's
	// tests), so the tracing path costs nothing when unused.
	Trace io.Writer
}

// New creates an Evaluator. A nil table is replaced with one that never
// resolves a name, so a caller exercising only user-defined functions
// doesn't need to construct a builtins.Registry.
func New(table BuiltinTable) *Evaluator {
	if table == nil {
		table = emptyBuiltins{}
	}
	return &Evaluator{Builtins: table}
}

// EvalProgram runs every top-level statement against env in order,
// returning the first FATAL fault encountered (spec §4.4, §6: "exit code
// 0 on normal completion, 1 on any FATAL"). A bare RETURN/BREAK/CONTINUE
// at top level is treated as NORMAL — the driver has no enclosing loop or
// call to propagate it to.
func (ev *Evaluator) EvalProgram(program *ast.Program, env *environment.Environment) error {
	for _, stmt := range program.Statements {
		if _, err := ev.evalStmt(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) evalStmt(stmt ast.Statement, env *environment.Environment) (Signal, error) {
	if stmt == nil {
		return Normal, nil
	}
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return Normal, ev.evalLet(s, env)
	case *ast.ConstStatement:
		return Normal, ev.evalConst(s, env)
	case *ast.ExpressionStatement:
		_, err := ev.evalExpr(s.Expression, env)
		return Normal, err
	case *ast.BlockStatement:
		return ev.evalBlock(s, env)
	case *ast.IfStatement:
		return ev.evalIf(s, env)
	case *ast.WhileStatement:
		return ev.evalWhile(s, env)
	case *ast.ForStatement:
		return ev.evalFor(s, env)
	case *ast.ReturnStatement:
		if s.Value == nil {
			return Return(value.NullValue), nil
		}
		v, err := ev.evalExpr(s.Value, env)
		if err != nil {
			return Signal{}, err
		}
		return Return(v), nil
	case *ast.BreakStatement:
		return Break, nil
	case *ast.ContinueStatement:
		return Continue, nil
	case *ast.FunctionDeclStatement:
		return Normal, ev.evalFunctionDecl(s, env)
	default:
		return Normal, herrors.MiscNoPos("internal error: unhandled statement kind %T", stmt)
	}
}

func (ev *Evaluator) evalLet(s *ast.LetStatement, env *environment.Environment) error {
	v, err := ev.evalInitializer(s.Value, env)
	if err != nil {
		return err
	}
	if s.Value != nil && s.TypeAnnotation != nil && !tagMatchesType(v, s.TypeAnnotation) {
		return herrors.TypeMismatch(s.Pos(), "let "+s.Name+": expected "+s.TypeAnnotation.String()+", got "+v.Tag().String())
	}
	return defineBinding(env, s.Pos(), s.Slot, s.Name, value.Retain(v), false)
}

func (ev *Evaluator) evalConst(s *ast.ConstStatement, env *environment.Environment) error {
	v, err := ev.evalInitializer(s.Value, env)
	if err != nil {
		return err
	}
	if s.TypeAnnotation != nil && !tagMatchesType(v, s.TypeAnnotation) {
		return herrors.TypeMismatch(s.Pos(), "const "+s.Name+": expected "+s.TypeAnnotation.String()+", got "+v.Tag().String())
	}
	return defineBinding(env, s.Pos(), s.Slot, s.Name, value.Retain(v), true)
}

func (ev *Evaluator) evalInitializer(expr ast.Expression, env *environment.Environment) (value.Value, error) {
	if expr == nil {
		return value.NullValue, nil
	}
	return ev.evalExpr(expr, env)
}

// defineBinding installs v under name at the position the resolver
// assigned (DefineSlotted) when a Slot is available, falling back to the
// dynamic-name Define otherwise (e.g. a tree built or mutated by hand
// rather than run through the resolver, as the evaluator's own unit
// tests do).
func defineBinding(env *environment.Environment, pos token.Position, slot *int, name string, v value.Value, isConst bool) error {
	if slot != nil {
		return env.DefineSlotted(pos, *slot, name, v, isConst)
	}
	_, err := env.Define(pos, name, v, isConst)
	return err
}

func (ev *Evaluator) evalBlock(b *ast.BlockStatement, env *environment.Environment) (Signal, error) {
	inner := environment.NewEnclosed(env)
	sig, err := ev.evalStatements(b.Statements, inner)
	inner.Release()
	return sig, err
}

// evalStatements runs stmts against env in sequence, stopping at the
// first non-NORMAL signal or error.
func (ev *Evaluator) evalStatements(stmts []ast.Statement, env *environment.Environment) (Signal, error) {
	for _, stmt := range stmts {
		sig, err := ev.evalStmt(stmt, env)
		if err != nil {
			return Signal{}, err
		}
		if !sig.IsNormal() {
			return sig, nil
		}
	}
	return Normal, nil
}

func (ev *Evaluator) evalIf(s *ast.IfStatement, env *environment.Environment) (Signal, error) {
	cond, err := ev.evalExpr(s.Condition, env)
	if err != nil {
		return Signal{}, err
	}
	if value.ToBool(cond) {
		return ev.evalStmt(s.Then, environment.NewEnclosed(env))
	}
	if s.Else != nil {
		return ev.evalStmt(s.Else, environment.NewEnclosed(env))
	}
	return Normal, nil
}

func (ev *Evaluator) evalWhile(s *ast.WhileStatement, env *environment.Environment) (Signal, error) {
	for {
		cond, err := ev.evalExpr(s.Condition, env)
		if err != nil {
			return Signal{}, err
		}
		if !value.ToBool(cond) {
			return Normal, nil
		}
		bodyEnv := environment.NewEnclosed(env)
		sig, err := ev.evalStmt(s.Body, bodyEnv)
		bodyEnv.Release()
		if err != nil {
			return Signal{}, err
		}
		switch sig.Kind {
		case KBreak:
			return Normal, nil
		case KReturn:
			return sig, nil
		}
		// KNormal and KContinue both fall through to re-check the condition.
	}
}

func (ev *Evaluator) evalFor(s *ast.ForStatement, env *environment.Environment) (Signal, error) {
	forEnv := environment.NewEnclosed(env)
	defer forEnv.Release()

	if s.Init != nil {
		if _, err := ev.evalStmt(s.Init, forEnv); err != nil {
			return Signal{}, err
		}
	}
	for {
		if s.Condition != nil {
			cond, err := ev.evalExpr(s.Condition, forEnv)
			if err != nil {
				return Signal{}, err
			}
			if !value.ToBool(cond) {
				return Normal, nil
			}
		}
		sig, err := ev.evalStmt(s.Body, forEnv)
		if err != nil {
			return Signal{}, err
		}
		if sig.Kind == KBreak {
			return Normal, nil
		}
		if sig.Kind == KReturn {
			return sig, nil
		}
		if s.Incr != nil {
			if _, err := ev.evalStmt(s.Incr, forEnv); err != nil {
				return Signal{}, err
			}
		}
	}
}

func (ev *Evaluator) evalFunctionDecl(s *ast.FunctionDeclStatement, env *environment.Environment) error {
	fn := value.Func{Fn: value.NewFunction(s.Function, env)}
	return defineBinding(env, s.Pos(), s.Slot, s.Function.Name, fn, false)
}
