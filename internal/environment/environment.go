// Package environment implements Hemlock's lexically-scoped variable
// environment (spec §3.3, §4.1): an ordered sequence of (name, value,
// is_const) triples plus a parent pointer. Two resolution modes coexist:
// dynamic (walk the chain by name) and slotted (direct (depth, slot)
// indexing set up by the resolver pass). Ordering reflects insertion,
// which is what lets the slotted path address a binding by its dense
// position instead of probing a hash table.
package environment

import (
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

type binding struct {
	name    string
	value   value.Value
	isConst bool
}

// Environment is one lexical scope: a dense, ordered binding vector plus a
// parent pointer to the enclosing scope. The root environment (the
// program's global scope) has a nil parent.
type Environment struct {
	bindings []binding
	index    map[string]int // name -> position in bindings, this scope only
	parent   *Environment
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{index: make(map[string]int)}
}

// NewEnclosed creates a new scope whose parent is outer. Used for function
// calls, blocks, and every construct the resolver brackets with
// enter_scope/exit_scope (spec §4.2).
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{index: make(map[string]int), parent: outer}
}

// Parent returns the enclosing environment, or nil at the root.
func (e *Environment) Parent() *Environment { return e.parent }

// Define inserts a new binding in the *current* scope only. It fails with
// Redeclaration if the name already exists in this scope (spec §4.1). The
// returned slot is the binding's dense index, matching what the resolver
// would have assigned had it seen this same declaration.
func (e *Environment) Define(pos token.Position, name string, v value.Value, isConst bool) (int, error) {
	if _, exists := e.index[name]; exists {
		return 0, herrors.Redeclaration(pos, name)
	}
	slot := len(e.bindings)
	e.bindings = append(e.bindings, binding{name: name, value: v, isConst: isConst})
	e.index[name] = slot
	return slot, nil
}

// DefineSlotted inserts a binding at exactly the slot the resolver already
// assigned it. It is the evaluator's job to declare bindings in the same
// order the resolver walked them, so slot must equal the scope's current
// length; a mismatch indicates the resolver and evaluator have fallen out
// of sync and is reported as an internal Fatal.
func (e *Environment) DefineSlotted(pos token.Position, slot int, name string, v value.Value, isConst bool) error {
	if slot != len(e.bindings) {
		return herrors.Misc(pos, "internal error: slot %d does not match next binding index %d for %q", slot, len(e.bindings), name)
	}
	e.bindings = append(e.bindings, binding{name: name, value: v, isConst: isConst})
	e.index[name] = slot
	return nil
}

// Get walks the scope chain outward from e, returning the first binding
// named name. It fails with UndefinedVariable if no scope in the chain
// defines it (spec §4.1).
func (e *Environment) Get(pos token.Position, name string) (value.Value, error) {
	for env := e; env != nil; env = env.parent {
		if i, ok := env.index[name]; ok {
			return env.bindings[i].value, nil
		}
	}
	return nil, herrors.UndefinedVariable(pos, name)
}

// Lookup is Get without raising a fault; it is used by callers (e.g. IDENT
// evaluation) that want to fall through to the builtin table on a miss
// instead of failing immediately.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if i, ok := env.index[name]; ok {
			return env.bindings[i].value, true
		}
	}
	return nil, false
}

// Set searches the current scope then each enclosing scope, writing to the
// first match. It fails with ConstWrite if that binding is const. If no
// scope defines name, Set implicitly declares a new mutable binding in the
// *current* scope (spec §4.1 / §9: "Implicit variable creation in set" —
// essential for loop indices and lambdas' first assignment, kept exactly
// as the source behaves rather than silently hardened).
func (e *Environment) Set(pos token.Position, name string, v value.Value) error {
	for env := e; env != nil; env = env.parent {
		if i, ok := env.index[name]; ok {
			if env.bindings[i].isConst {
				return herrors.ConstWrite(pos, name)
			}
			env.bindings[i].value = v
			return nil
		}
	}
	_, err := e.Define(pos, name, v, false)
	return err
}

// GetSlotted walks depth parents outward from e and returns the value at
// slot within that scope. Both the resolver and the evaluator must agree
// on scope nesting for this to be safe; a mismatch is reported as Fatal
// rather than panicking, since the C-emitting backend and the tree-walker
// can disagree during incremental development of either.
func (e *Environment) GetSlotted(pos token.Position, depth, slot int) (value.Value, error) {
	env := e.ancestor(depth)
	if env == nil || slot < 0 || slot >= len(env.bindings) {
		return nil, herrors.Misc(pos, "internal error: invalid slot (depth=%d, slot=%d)", depth, slot)
	}
	return env.bindings[slot].value, nil
}

// SetSlotted writes to the binding at (depth, slot), failing with
// ConstWrite if it is const.
func (e *Environment) SetSlotted(pos token.Position, depth, slot int, v value.Value) error {
	env := e.ancestor(depth)
	if env == nil || slot < 0 || slot >= len(env.bindings) {
		return herrors.Misc(pos, "internal error: invalid slot (depth=%d, slot=%d)", depth, slot)
	}
	if env.bindings[slot].isConst {
		return herrors.ConstWrite(pos, env.bindings[slot].name)
	}
	env.bindings[slot].value = v
	return nil
}

func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		if env == nil {
			return nil
		}
		env = env.parent
	}
	return env
}

// NameAt returns the binding name stored at (depth, slot); used by the
// resolver-soundness test (spec §8 invariant 1).
func (e *Environment) NameAt(depth, slot int) (string, bool) {
	env := e.ancestor(depth)
	if env == nil || slot < 0 || slot >= len(env.bindings) {
		return "", false
	}
	return env.bindings[slot].name, true
}

// Release walks every binding in this scope (not outer scopes) and
// releases it, matching spec §5: "Environments release each stored Value
// on scope teardown." Call this when a BLOCK/function/loop-body scope
// goes out of scope.
func (e *Environment) Release() {
	for _, b := range e.bindings {
		value.Release(b.value)
	}
}

// Size returns the number of bindings in the current scope only.
func (e *Environment) Size() int { return len(e.bindings) }
