package typeinfer

import "github.com/Schneewolf-Labs/hemlock/internal/types"

// typeEnv is a compile-time, type-level counterpart of the evaluator's
// Environment: an ordered chain of name -> inferred-type maps, rebuilt on
// every fixpoint pass since the pass is flow-insensitive (it does not
// track which branch of an IF executed).
type typeEnv struct {
	bindings map[string]*types.Type
	parent   *typeEnv
}

func newTypeEnv(parent *typeEnv) *typeEnv {
	return &typeEnv{bindings: make(map[string]*types.Type), parent: parent}
}

func (e *typeEnv) get(name string) *types.Type {
	for env := e; env != nil; env = env.parent {
		if t, ok := env.bindings[name]; ok {
			return t
		}
	}
	return nil
}

// define installs a fresh binding in the current scope, initialized to t
// (callers pass UNKNOWN when they have no type for it).
func (e *typeEnv) define(name string, t *types.Type) {
	e.bindings[name] = t
}

// refine strengthens an existing binding (in whichever scope holds it) by
// meet, reporting whether the binding's type changed. If name is not
// bound anywhere in the chain, it is defined in the current scope instead
// (mirrors the evaluator's implicit-declaration-on-set behavior).
func (e *typeEnv) refine(name string, t *types.Type) bool {
	for env := e; env != nil; env = env.parent {
		if old, ok := env.bindings[name]; ok {
			m := Meet(old, t)
			if !m.Equal(old) {
				env.bindings[name] = m
				return true
			}
			return false
		}
	}
	e.bindings[name] = t
	return true
}
