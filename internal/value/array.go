package value

import (
	"strings"

	"github.com/Schneewolf-Labs/hemlock/internal/types"
)

// ArrayObj is the heap representation of a Hemlock array. When ElementType
// is non-nil the array is "typed": every push/insert/set must match that
// tag or fail with a TypeMismatch fault (spec §3.2 invariant).
type ArrayObj struct {
	refcounted
	Elements    []Value
	ElementType *types.Type // nil for an untyped array
}

// NewArrayObj creates a new, refcount-1 empty ArrayObj. elementType may be
// nil for an untyped array.
func NewArrayObj(elementType *types.Type) *ArrayObj {
	return &ArrayObj{refcounted: newRefcounted(), ElementType: elementType}
}

// NewArrayObjFrom creates a new, refcount-1 ArrayObj from existing elements.
// Ownership of elems transfers to the new array (no additional retains are
// performed by this constructor; callers passing elements that are still
// referenced elsewhere must Retain them first).
func NewArrayObjFrom(elems []Value, elementType *types.Type) *ArrayObj {
	return &ArrayObj{refcounted: newRefcounted(), Elements: elems, ElementType: elementType}
}

// Array is the ARRAY(→Array) value variant.
type Array struct {
	A *ArrayObj
}

func (Array) Tag() Tag { return TagArray }

func (a Array) String() string {
	if len(a.A.Elements) == 0 {
		return "[]"
	}
	parts := make([]string, len(a.A.Elements))
	for i, e := range a.A.Elements {
		if e == nil {
			parts[i] = "null"
			continue
		}
		if s, ok := e.(String); ok {
			parts[i] = quoteForDisplay(s.S.Data)
			continue
		}
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func quoteForDisplay(s string) string { return "\"" + s + "\"" }

// NewArray is a convenience constructor wrapping a fresh ArrayObj.
func NewArray(elems []Value, elementType *types.Type) Array {
	return Array{A: NewArrayObjFrom(elems, elementType)}
}
