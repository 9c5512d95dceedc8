// Package resolver implements Hemlock's lexical-scope flattening pass
// (spec §4.2): a single AST walk that annotates every variable reference
// with (scope_depth, slot_index) so the evaluator can do O(1) lookup
// instead of a name-by-name walk up the environment chain. It mirrors the
// scope-stack discipline of original_source/include/resolver.h
// (resolver_enter_scope/resolver_exit_scope/resolver_define/
// resolver_lookup) one-for-one, adapted to Go idiom: a slice-backed scope
// stack instead of a manual linked list, and depth/slot returned as values
// instead of via out-parameters.
package resolver

import (
	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/herrors"
)

// Resolver walks an AST once, annotating it in place. It is safe to run
// again on an already-resolved tree (idempotent per spec §2): re-running
// simply recomputes the same depth/slot pairs, since scopes are rebuilt
// from scratch on each Resolve call.
type Resolver struct {
	scopes []*scope // stack; scopes[len-1] is innermost

	// funcBoundaries[i] is the scope-stack depth (index into scopes, as it
	// stood immediately before the i-th currently-open function's own
	// parameter scope was pushed). Used to classify a resolved identifier
	// as a capture of one or more enclosing functions.
	funcBoundaries []int
	captureSets    []map[string]bool

	errors []error
}

// New creates a Resolver with an empty global scope already open; callers
// run Resolve once over the whole program.
func New() *Resolver {
	r := &Resolver{}
	r.scopes = append(r.scopes, &scope{})
	return r
}

// Resolve annotates every statement in program. It returns all resolver
// errors encountered (e.g. duplicate declarations within one scope); an
// empty slice means the program resolved cleanly.
func Resolve(program *ast.Program) []error {
	r := New()
	for _, s := range program.Statements {
		r.resolveStmt(s)
	}
	return r.errors
}

func (r *Resolver) enterScope() {
	r.scopes = append(r.scopes, &scope{})
}

func (r *Resolver) exitScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) current() *scope { return r.scopes[len(r.scopes)-1] }

// define registers name in the current scope, returning its slot. A
// duplicate name in the same scope is a resolver error (spec §4.2); the
// method still returns a slot so callers can continue the walk.
func (r *Resolver) define(node ast.Node, name string) int {
	s := r.current()
	if _, exists := s.indexOf(name); exists {
		r.errors = append(r.errors, herrors.Redeclaration(node.Pos(), name))
	}
	return s.define(name)
}

// lookup searches scopes inside-out for name, returning (depth, slot, ok).
// depth counts scopes walked: 0 means the current (innermost) scope.
func (r *Resolver) lookup(name string) (depth, slot int, ok bool) {
	n := len(r.scopes)
	for i := n - 1; i >= 0; i-- {
		if idx, found := r.scopes[i].indexOf(name); found {
			absDepth := (n - 1) - i
			r.markCaptureIfFree(name, i)
			return absDepth, idx, true
		}
	}
	return 0, 0, false
}

// markCaptureIfFree records name as a capture of every currently-open
// function whose own scope boundary lies at or after scopeIndex (meaning
// the binding lives outside that function) — spec §4.2's "free variables
// seen during body resolution are recorded as the function's capture
// set".
func (r *Resolver) markCaptureIfFree(name string, scopeIndex int) {
	for i, boundary := range r.funcBoundaries {
		if scopeIndex < boundary {
			r.captureSets[i][name] = true
		}
	}
}
