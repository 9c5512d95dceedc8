package evaluator

import (
	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// evalIndex implements spec §4.4's INDEX rule. String indexing chooses
// rune position over byte offset (spec §9 open question): a string's
// runtime representation already treats Len as a rune count (see
// value.StringObj), and a rune's own literal form (`'a'`) already
// evaluates to an I32 codepoint, so indexing a string returns that same
// I32 codepoint rather than inventing a one-character-string result.
func (ev *Evaluator) evalIndex(e *ast.IndexExpression, env *environment.Environment) (value.Value, error) {
	obj, err := ev.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	idxVal, err := ev.evalExpr(e.Index, env)
	if err != nil {
		return nil, err
	}
	switch o := obj.(type) {
	case value.Array:
		idx, err := value.ToI64(idxVal)
		if err != nil {
			return nil, herrors.RuntimeTypeMismatch(e.Pos(), err.Error())
		}
		n := int64(len(o.A.Elements))
		if idx < 0 || idx >= n {
			return nil, herrors.IndexOutOfBounds(e.Pos(), idx, n)
		}
		return o.A.Elements[idx], nil
	case value.String:
		idx, err := value.ToI64(idxVal)
		if err != nil {
			return nil, herrors.RuntimeTypeMismatch(e.Pos(), err.Error())
		}
		runes := []rune(o.S.Data)
		n := int64(len(runes))
		if idx < 0 || idx >= n {
			return nil, herrors.StringIndexOutOfBounds(e.Pos(), idx, n)
		}
		return value.I32(int64(runes[idx])), nil
	case value.Object:
		key, ok := idxVal.(value.String)
		if !ok {
			return nil, herrors.RuntimeTypeMismatch(e.Pos(), "object index must be a string")
		}
		if v, ok := o.O.Get(key.S.Data); ok {
			return v, nil
		}
		return value.NullValue, nil
	default:
		return nil, herrors.RuntimeTypeMismatch(e.Pos(), "value of kind "+obj.Tag().String()+" is not indexable")
	}
}

// evalIndexAssign implements spec §4.4's INDEX_ASSIGN rule: writing past
// the end extends the array with NULL padding, and a typed array enforces
// its element type.
func (ev *Evaluator) evalIndexAssign(e *ast.IndexAssignExpression, env *environment.Environment) (value.Value, error) {
	obj, err := ev.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	idxVal, err := ev.evalExpr(e.Index, env)
	if err != nil {
		return nil, err
	}
	v, err := ev.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}

	arr, ok := obj.(value.Array)
	if !ok {
		return nil, herrors.RuntimeTypeMismatch(e.Pos(), "cannot index-assign into value of kind "+obj.Tag().String())
	}
	idx, err := value.ToI64(idxVal)
	if err != nil {
		return nil, herrors.RuntimeTypeMismatch(e.Pos(), err.Error())
	}
	if idx < 0 {
		return nil, herrors.IndexOutOfBounds(e.Pos(), idx, int64(len(arr.A.Elements)))
	}
	if arr.A.ElementType != nil && !tagMatchesType(v, arr.A.ElementType) {
		return nil, herrors.TypeMismatch(e.Pos(), "expected element of type "+arr.A.ElementType.String())
	}
	v = value.Retain(v)
	for int64(len(arr.A.Elements)) <= idx {
		arr.A.Elements = append(arr.A.Elements, value.NullValue)
	}
	arr.A.Elements[idx] = v
	return v, nil
}
