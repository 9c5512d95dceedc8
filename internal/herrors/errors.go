// Package herrors defines Hemlock's runtime error taxonomy (spec §7) and the
// FATAL signal the evaluator uses to unwind to the program driver.
//
// Unlike the teacher's InterpreterError (which supports local recovery via
// Go's normal error returns across many call sites), Hemlock's core has no
// user-level try/catch: every Kind below is always fatal. The taxonomy
// still carries a Category for the driver's three-way diagnostic prefix
// (Resolve error: / Type error: / Runtime error:).
package herrors

import (
	"fmt"

	"github.com/Schneewolf-Labs/hemlock/internal/token"
)

// Category selects the diagnostic prefix the driver prints to stderr.
type Category string

const (
	CategoryResolve Category = "Resolve"
	CategoryType    Category = "Type"
	CategoryRuntime Category = "Runtime"
)

// Kind identifies a specific fault within the taxonomy of spec §7.
type Kind string

const (
	KindUndefinedVariable Kind = "UndefinedVariable"
	KindRedeclaration     Kind = "Redeclaration"
	KindConstWrite        Kind = "ConstWrite"
	KindTypeMismatch      Kind = "TypeMismatch"
	KindIndexOutOfBounds  Kind = "IndexOutOfBounds"
	KindArityMismatch     Kind = "ArityMismatch"
	KindMisc              Kind = "Fatal"
)

// Fault is Hemlock's single error type. Every runtime fault (type mismatch,
// index OOB, undefined variable, const-write, division errors, bad
// coercion, I/O failure) is represented as a *Fault and is always fatal:
// there is no recoverable variant.
type Fault struct {
	Kind     Kind
	Category Category
	Message  string
	Pos      *token.Position
}

func (f *Fault) Error() string {
	if f.Pos != nil {
		return fmt.Sprintf("%s error at %s: %s", f.Category, f.Pos, f.Message)
	}
	return fmt.Sprintf("%s error: %s", f.Category, f.Message)
}

func newFault(cat Category, kind Kind, pos *token.Position, format string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Category: cat, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Resolve-pass faults.

func Redeclaration(pos token.Position, name string) *Fault {
	return newFault(CategoryResolve, KindRedeclaration, &pos, "Variable '%s' already defined in this scope", name)
}

// Type-pass faults. The type inferer itself never raises a fault (it is a
// best-effort pass that always terminates with UNKNOWN on ambiguity), but
// the driver needs a Type category for the evaluator's own type-mismatch
// faults raised while a typed array or explicit annotation is violated.
func TypeMismatch(pos token.Position, detail string) *Fault {
	return newFault(CategoryType, KindTypeMismatch, &pos, "%s", detail)
}

// Runtime faults, raised by the evaluator.

func UndefinedVariable(pos token.Position, name string) *Fault {
	return newFault(CategoryRuntime, KindUndefinedVariable, &pos, "Undefined variable '%s'", name)
}

func ConstWrite(pos token.Position, name string) *Fault {
	return newFault(CategoryRuntime, KindConstWrite, &pos, "Cannot assign to const variable '%s'", name)
}

func RuntimeTypeMismatch(pos token.Position, detail string) *Fault {
	return newFault(CategoryRuntime, KindTypeMismatch, &pos, "%s", detail)
}

func IndexOutOfBounds(pos token.Position, index, length int64) *Fault {
	return newFault(CategoryRuntime, KindIndexOutOfBounds, &pos, "Array index %d out of bounds (length %d)", index, length)
}

func StringIndexOutOfBounds(pos token.Position, index, length int64) *Fault {
	return newFault(CategoryRuntime, KindIndexOutOfBounds, &pos, "String index %d out of bounds (length %d)", index, length)
}

func ArityMismatch(pos token.Position, detail string) *Fault {
	return newFault(CategoryRuntime, KindArityMismatch, &pos, "wrong number of arguments: %s", detail)
}

func Misc(pos token.Position, format string, args ...interface{}) *Fault {
	return newFault(CategoryRuntime, KindMisc, &pos, format, args...)
}

func MiscNoPos(format string, args ...interface{}) *Fault {
	return newFault(CategoryRuntime, KindMisc, nil, format, args...)
}
