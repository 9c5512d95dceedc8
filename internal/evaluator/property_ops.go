package evaluator

import (
	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// evalGetProperty implements spec §4.4's GET_PROPERTY rule: OBJECT does a
// field lookup (missing -> NULL); STRING/ARRAY expose `.length` plus
// whatever method table entries exist (surfaced here, unbound, for a bare
// read — `xs.push(1)` itself is dispatched directly by evalCall without
// ever reaching this function, since that path already has the receiver
// in hand and avoids building an intermediate bound-method value).
func (ev *Evaluator) evalGetProperty(e *ast.GetPropertyExpression, env *environment.Environment) (value.Value, error) {
	obj, err := ev.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	switch o := obj.(type) {
	case value.Object:
		if v, ok := o.O.Get(e.Name); ok {
			return v, nil
		}
		return value.NullValue, nil
	case value.Array:
		if e.Name == "length" {
			return value.I32(int64(len(o.A.Elements))), nil
		}
	case value.String:
		if e.Name == "length" {
			return value.I32(int64(len([]rune(o.S.Data)))), nil
		}
	}
	if m, ok := ev.Builtins.LookupMethod(obj.Tag(), e.Name); ok {
		return value.BuiltinFnV{Fn: m}, nil
	}
	return nil, herrors.RuntimeTypeMismatch(e.Pos(), "value of kind "+obj.Tag().String()+" has no property '"+e.Name+"'")
}

// evalSetProperty implements assignment to a GET_PROPERTY target
// (`obj.field = value`); only OBJECT supports it.
func (ev *Evaluator) evalSetProperty(e *ast.GetPropertyExpression, v value.Value, env *environment.Environment) error {
	obj, err := ev.evalExpr(e.Object, env)
	if err != nil {
		return err
	}
	o, ok := obj.(value.Object)
	if !ok {
		return herrors.RuntimeTypeMismatch(e.Pos(), "cannot set property '"+e.Name+"' on value of kind "+obj.Tag().String())
	}
	o.O.Set(e.Name, v)
	return nil
}
