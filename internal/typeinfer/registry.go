package typeinfer

import "github.com/Schneewolf-Labs/hemlock/internal/types"

// Registry holds the function-return-type table a C-emitting backend (or
// a diagnostic tool) would consume after inference completes. The
// tree-walking evaluator does not need it — it re-derives a function's
// return value at call time — but building it is part of this pass's
// contract (spec §4.3).
type Registry struct {
	FuncReturns map[string]*types.Type
}

func newRegistry() *Registry {
	return &Registry{FuncReturns: make(map[string]*types.Type)}
}

// refineReturn strengthens the registered return type for name by meet,
// reporting whether it changed (including the initial UNKNOWN -> concrete
// transition on a function's first observed `return`).
func (r *Registry) refineReturn(name string, t *types.Type) bool {
	old, ok := r.FuncReturns[name]
	if !ok {
		old = types.UnknownType
	}
	m := Meet(old, t)
	if ok && m.Equal(old) {
		return false
	}
	r.FuncReturns[name] = m
	return true
}
