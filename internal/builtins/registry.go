// Package builtins implements Hemlock's native function catalog (spec §4.5):
// print, len, type_of, the array/string method tables, typed-array
// constructors, time ops, file ops, and the opaque FFI bridges. Functions are
// grouped into categories and registered into a Registry the same way the
// teacher's internal/interp/builtins package organizes its 200+ DWScript
// built-ins — one file per domain, collected by a single RegisterAll pass.
//
// Unlike the teacher, Hemlock distinguishes two lookup surfaces rather than
// one flat name table: free-standing names (print, len, ...) resolved by
// Lookup, and per-receiver-tag methods (array.push, string.upper, ...)
// resolved by LookupMethod. Both share the same *value.BuiltinFn
// representation and the same Registry bookkeeping.
package builtins

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// Category groups related builtins for discoverability, mirroring the
// teacher's Registry.categories bookkeeping.
type Category string

const (
	CategoryCore  Category = "core"
	CategoryArray Category = "array"
	CategoryString Category = "string"
	CategoryTime  Category = "time"
	CategoryIO    Category = "io"
	CategoryFFI   Category = "ffi"
)

// CallFunc is the evaluator's call-back entry point (spec §4.5:
// "Higher-order entries call back into the evaluator via a single
// call_function(fn, args[]) entry point, which must handle both native and
// user-defined callees"). The evaluator supplies this as a bound method
// (Evaluator.CallValue) so this package never imports internal/evaluator.
type CallFunc func(pos token.Position, fn value.Value, args []value.Value) (value.Value, error)

// Registry is Hemlock's builtin catalog: a flat name table for top-level
// identifiers plus a per-tag method table for receiver-dispatched calls.
// Both tables are built once at construction and read far more often than
// written, hence the RWMutex (grounded on the teacher's Registry, which
// guards the same shape of map with sync.RWMutex for the same reason).
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]*value.BuiltinFn
	methods    map[value.Tag]map[string]*value.BuiltinFn
	categories map[Category][]string

	out   io.Writer
	call  CallFunc
	trace bool
}

// New builds a Registry with every builtin in the catalog registered,
// writing print output to os.Stdout. Use SetWriter to redirect output (the
// driver always redirects it to its Options.Stdout, and tests redirect it
// to a buffer).
func New(call CallFunc) *Registry {
	r := &Registry{
		functions:  make(map[string]*value.BuiltinFn),
		methods:    make(map[value.Tag]map[string]*value.BuiltinFn),
		categories: make(map[Category][]string),
		out:        os.Stdout,
		call:       call,
	}
	registerCore(r)
	registerArray(r)
	registerStrings(r)
	registerTime(r)
	registerIO(r)
	registerFFI(r)
	return r
}

// SetWriter redirects print output.
func (r *Registry) SetWriter(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
}

// SetTrace toggles the `--trace` diagnostics some time builtins emit to
// stderr (wired by the driver's --trace flag).
func (r *Registry) SetTrace(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trace = on
}

func (r *Registry) writer() io.Writer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.out
}

func (r *Registry) traceEnabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.trace
}

// register adds a top-level name (case-sensitive, unlike the teacher's
// DWScript-derived case-insensitive Register: Hemlock's surface syntax is
// JS-like and case-sensitive throughout the lexer/parser).
func (r *Registry) register(category Category, name string, fn *value.BuiltinFn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.functions[name]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.functions[name] = fn
}

// registerMethod adds a receiver-tag-scoped method, e.g. (TagArray, "push").
func (r *Registry) registerMethod(category Category, tag value.Tag, name string, fn *value.BuiltinFn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.methods[tag] == nil {
		r.methods[tag] = make(map[string]*value.BuiltinFn)
	}
	key := tag.String() + "." + name
	if _, exists := r.methods[tag][name]; !exists {
		r.categories[category] = append(r.categories[category], key)
	}
	r.methods[tag][name] = fn
}

// Lookup satisfies evaluator.BuiltinTable: resolve a bare top-level name.
func (r *Registry) Lookup(name string) (*value.BuiltinFn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.functions[name]
	return fn, ok
}

// LookupMethod satisfies evaluator.BuiltinTable: resolve `receiver.name(...)`.
func (r *Registry) LookupMethod(receiver value.Tag, name string) (*value.BuiltinFn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if tbl, ok := r.methods[receiver]; ok {
		if fn, ok := tbl[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Count returns the total number of registered names across both tables.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.functions)
	for _, tbl := range r.methods {
		n += len(tbl)
	}
	return n
}

// Names returns every registered name (top-level and "Tag.method" form),
// sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, r.Count())
	for name := range r.functions {
		names = append(names, name)
	}
	for tag, tbl := range r.methods {
		for name := range tbl {
			names = append(names, tag.String()+"."+name)
		}
	}
	sort.Strings(names)
	return names
}

func fn(name string, arity int, acceptsRest bool, impl value.NativeFn) *value.BuiltinFn {
	return &value.BuiltinFn{Name: name, Arity: arity, AcceptsRest: acceptsRest, Impl: impl}
}

// requireArgs returns an error unless args has exactly n elements; shared
// by every builtin below that doesn't accept a rest-style arg count.
func requireArgs(name string, args []value.Value, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s() expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}
