package evaluator

import (
	"fmt"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// traceFnName substitutes a placeholder for the anonymous closures produced
// by `fn(...) => ...` / `fn(...) {...}` expressions, which carry no name.
func traceFnName(name string) string {
	if name == "" {
		return "<anonymous>"
	}
	return name
}

// evalCall implements spec §4.4's CALL rule. A callee of the shape
// `object.method(...)` is special-cased: the receiver is evaluated once
// and prepended to the argument list for the method-table lookup, rather
// than first materializing GET_PROPERTY into a generic bound-method
// value (spec §4.4's GET_PROPERTY rule only promises OBJECT field lookup
// and a STRING/ARRAY "small fixed method table" — it does not require a
// first-class bound-method Value to exist).
func (ev *Evaluator) evalCall(e *ast.CallExpression, env *environment.Environment) (value.Value, error) {
	if gp, ok := e.Callee.(*ast.GetPropertyExpression); ok {
		return ev.evalMethodCall(e, gp, env)
	}

	callee, err := ev.evalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}
	args, err := ev.evalArgs(e.Args, env)
	if err != nil {
		return nil, err
	}
	return ev.CallValue(e.Pos(), callee, args)
}

func (ev *Evaluator) evalMethodCall(call *ast.CallExpression, gp *ast.GetPropertyExpression, env *environment.Environment) (value.Value, error) {
	receiver, err := ev.evalExpr(gp.Object, env)
	if err != nil {
		return nil, err
	}
	method, ok := ev.Builtins.LookupMethod(receiver.Tag(), gp.Name)
	if !ok {
		return nil, herrors.RuntimeTypeMismatch(call.Pos(), "value of kind "+receiver.Tag().String()+" has no method '"+gp.Name+"'")
	}
	args, err := ev.evalArgs(call.Args, env)
	if err != nil {
		return nil, err
	}
	full := make([]value.Value, 0, len(args)+1)
	full = append(full, receiver)
	full = append(full, args...)
	return ev.invokeBuiltin(call.Pos(), method, full)
}

func (ev *Evaluator) evalArgs(exprs []ast.Expression, env *environment.Environment) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for i, a := range exprs {
		v, err := ev.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// CallValue is the evaluator's single entry point for invoking any
// callable Value with already-evaluated arguments (spec §4.5's
// call_function). The builtins package's higher-order entries
// (map/filter/reduce) hold this method as a builtins.CallFunc so they can
// invoke Hemlock callbacks without importing the evaluator package.
func (ev *Evaluator) CallValue(pos token.Position, fn value.Value, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case value.BuiltinFnV:
		return ev.invokeBuiltin(pos, f.Fn, args)
	case value.Func:
		return ev.callUserFunction(pos, f.Fn, args)
	case value.Closure:
		return ev.callUserFunction(pos, f.Fn, args)
	default:
		return nil, herrors.RuntimeTypeMismatch(pos, "value of kind "+fn.Tag().String()+" is not callable")
	}
}

func (ev *Evaluator) invokeBuiltin(pos token.Position, b *value.BuiltinFn, args []value.Value) (value.Value, error) {
	if b.Arity >= 0 && !b.AcceptsRest && len(args) != b.Arity {
		return nil, herrors.ArityMismatch(pos, b.Name)
	}
	v, err := b.Impl(args)
	if err != nil {
		if _, ok := err.(*herrors.Fault); ok {
			return nil, err
		}
		return nil, herrors.Misc(pos, "%s", err.Error())
	}
	return v, nil
}

// callUserFunction implements the FUNCTION/CLOSURE half of CALL: push a
// new environment whose parent is the function's capture environment,
// bind parameters (missing args -> NULL; extras ignored unless the last
// parameter is declared rest), execute the body, and yield RETURN(v) or
// NULL on fall-through.
func (ev *Evaluator) callUserFunction(pos token.Position, fn *value.Function, args []value.Value) (value.Value, error) {
	decl := fn.Decl
	capturedEnv, ok := fn.CapturedEnv.(*environment.Environment)
	if !ok {
		return nil, herrors.MiscNoPos("internal error: function %q has no captured environment", decl.Name)
	}
	if ev.Trace != nil {
		fmt.Fprintf(ev.Trace, "trace: call %s [%s]\n", traceFnName(decl.Name), fn.DebugID)
	}
	callEnv := environment.NewEnclosed(capturedEnv)
	defer callEnv.Release()

	n := len(decl.Params)
	hasRest := n > 0 && len(decl.IsRest) == n && decl.IsRest[n-1]
	fixed := n
	if hasRest {
		fixed = n - 1
	}
	for i := 0; i < fixed; i++ {
		v := value.Value(value.NullValue)
		if i < len(args) {
			v = args[i]
		}
		if _, err := callEnv.Define(pos, decl.Params[i], value.Retain(v), false); err != nil {
			return nil, err
		}
	}
	if hasRest {
		var rest []value.Value
		if len(args) > fixed {
			rest = make([]value.Value, 0, len(args)-fixed)
			for _, v := range args[fixed:] {
				rest = append(rest, value.Retain(v))
			}
		}
		if _, err := callEnv.Define(pos, decl.Params[fixed], value.NewArray(rest, nil), false); err != nil {
			return nil, err
		}
	}

	if decl.ArrowBody != nil {
		return ev.evalExpr(decl.ArrowBody, callEnv)
	}
	if decl.Body == nil {
		return value.NullValue, nil
	}
	sig, err := ev.evalStatements(decl.Body.Statements, callEnv)
	if err != nil {
		return nil, err
	}
	if sig.Kind == KReturn {
		return sig.Value, nil
	}
	return value.NullValue, nil
}
