package value

import (
	"github.com/google/uuid"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
)

// EnvHandle is an opaque handle to the lexical environment a function
// closed over. It is declared here (rather than as a *environment.Environment
// field) to avoid a circular import: the environment package stores Values,
// and Values (Function/Closure) need to refer back to an environment. The
// evaluator, which imports both packages, type-asserts this back to
// *environment.Environment when it calls the function. This mirrors the
// teacher's own circular-import workaround (Environment.NewEnclosed
// returning interface{}).
type EnvHandle interface{}

// Function is the heap representation shared by both the FUNCTION and
// CLOSURE value tags: a user-defined function's AST body plus the
// environment it closed over at definition time. The tag under which a
// given *Function is wrapped (Func vs Closure) only reflects how it was
// produced — a named `fn` declaration statement yields Func, an inline
// `fn(...) => ...`/`fn(...) {...}` expression yields Closure — the
// evaluator's call dispatch treats them identically (spec §4.4 CALL rule).
// DebugID identifies a closure across --trace call diagnostics; it carries
// no semantic weight and two closures are never compared by it.
type Function struct {
	refcounted
	Decl        *ast.FunctionLiteral
	CapturedEnv EnvHandle
	DebugID     string
}

// NewFunction creates a new, refcount-1 Function.
func NewFunction(decl *ast.FunctionLiteral, env EnvHandle) *Function {
	return &Function{refcounted: newRefcounted(), Decl: decl, CapturedEnv: env, DebugID: uuid.NewString()}
}

// Func is the FUNCTION(→Function) value variant.
type Func struct {
	Fn *Function
}

func (Func) Tag() Tag { return TagFunction }
func (f Func) String() string {
	return "<function " + f.Fn.Decl.Name + ">"
}

// Closure is the CLOSURE(→Closure) value variant.
type Closure struct {
	Fn *Function
}

func (Closure) Tag() Tag      { return TagClosure }
func (c Closure) String() string { return "<closure>" }

// NativeFn is the Go implementation of a builtin. args are already
// evaluated; call is Hemlock's single entry point into native code (spec
// §4.5's call_function, narrowed to the builtin side).
type NativeFn func(args []Value) (Value, error)

// BuiltinFn is the heap-free representation of a native builtin. Unlike
// the other callable kinds it is not refcounted: it has no evaluator-owned
// lifetime, living instead for the whole process as part of the builtin
// registry (spec §4.5; §3.2 lists only String/Array/Object/Buffer/
// FileHandle/Function/Closure as refcounted heap entities).
type BuiltinFn struct {
	Name       string
	Arity      int  // -1 if variadic
	AcceptsRest bool
	Impl       NativeFn
}

// BuiltinFnV is the BUILTIN_FN(→BuiltinFn) value variant.
type BuiltinFnV struct {
	Fn *BuiltinFn
}

func (BuiltinFnV) Tag() Tag         { return TagBuiltinFn }
func (b BuiltinFnV) String() string { return "<builtin " + b.Fn.Name + ">" }
