// Package types defines Hemlock's static Type descriptions, used for
// source-level annotations, the type inferer's output, and the FFI surface.
package types

import "fmt"

// Kind enumerates the static type tags a Type can carry.
type Kind int

const (
	I8 Kind = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	BOOL
	STRING
	ARRAY
	OBJECT
	FUNCTION
	PTR
	VOID
	ANY

	// NUMERIC and INTEGER are abstract lattice categories used only by the
	// type inferer (spec §4.3): they never appear in a source-level type
	// annotation, only as an intermediate or final inferred type when a
	// binary operation's operands don't agree on a concrete width.
	NUMERIC
	INTEGER

	// NULL is the inferer's flat lattice atom for the null literal; it has
	// no source-level annotation spelling (there is no `: null` syntax).
	NULL
)

var kindNames = map[Kind]string{
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
	F32: "f32", F64: "f64", BOOL: "bool", STRING: "string",
	ARRAY: "array", OBJECT: "object", FUNCTION: "function",
	PTR: "ptr", VOID: "void", ANY: "any",
	NUMERIC: "numeric", INTEGER: "integer", NULL: "null",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsInteger reports whether k is one of the fixed-width integer kinds, or
// the abstract INTEGER lattice category.
func (k Kind) IsInteger() bool {
	switch k {
	case I8, I16, I32, I64, U8, U16, U32, U64, INTEGER:
		return true
	}
	return false
}

// IsFloat reports whether k is one of the floating-point kinds.
func (k Kind) IsFloat() bool {
	return k == F32 || k == F64
}

// IsNumeric reports whether k is an integer or floating-point kind, or the
// abstract NUMERIC lattice category.
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat() || k == NUMERIC
}

// Type is a tagged description used for AST annotations and FFI. It is
// owned by the AST node that carries it, mirroring the source's
// ownership discipline for annotation data (see spec §3.1).
type Type struct {
	Kind    Kind
	Element *Type // non-nil only when Kind == ARRAY
}

// Simple constructs an unparameterized Type of the given kind.
func Simple(k Kind) *Type {
	return &Type{Kind: k}
}

// ArrayOf constructs an ARRAY type with the given element type.
func ArrayOf(elem *Type) *Type {
	return &Type{Kind: ARRAY, Element: elem}
}

func (t *Type) String() string {
	if t == nil {
		return "any"
	}
	if t.Kind == ARRAY {
		return fmt.Sprintf("array(%s)", t.Element.String())
	}
	return t.Kind.String()
}

// Equal reports whether t and other describe the same type.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == ARRAY {
		return t.Element.Equal(other.Element)
	}
	return true
}

var (
	I8Type     = Simple(I8)
	I16Type    = Simple(I16)
	I32Type    = Simple(I32)
	I64Type    = Simple(I64)
	U8Type     = Simple(U8)
	U16Type    = Simple(U16)
	U32Type    = Simple(U32)
	U64Type    = Simple(U64)
	F32Type    = Simple(F32)
	F64Type    = Simple(F64)
	BoolType   = Simple(BOOL)
	StringType = Simple(STRING)
	ObjectType = Simple(OBJECT)
	FuncType   = Simple(FUNCTION)
	PtrType    = Simple(PTR)
	VoidType    = Simple(VOID)
	AnyType     = Simple(ANY)
	NumericType = Simple(NUMERIC)
	IntegerType = Simple(INTEGER)
	NullType    = Simple(NULL)
)

// UnknownType is the lattice top (⊤) used by the type inferer before any
// refinement has narrowed a binding's type. It is represented by ANY
// rather than a distinct kind, since "no information yet" and "could be
// anything" are observationally the same to every downstream consumer.
var UnknownType = AnyType

// FromName resolves a source-level type annotation name (as written after a
// ':' in a `let`/`const`/parameter declaration) to its Type, or nil if name
// is not a recognized primitive spelling. Array annotations are handled by
// the parser directly (it builds ArrayOf around the element Type).
func FromName(name string) *Type {
	switch name {
	case "i8":
		return I8Type
	case "i16":
		return I16Type
	case "i32":
		return I32Type
	case "i64":
		return I64Type
	case "u8":
		return U8Type
	case "u16":
		return U16Type
	case "u32":
		return U32Type
	case "u64":
		return U64Type
	case "f32":
		return F32Type
	case "f64":
		return F64Type
	case "bool":
		return BoolType
	case "string":
		return StringType
	case "object":
		return ObjectType
	case "function":
		return FuncType
	case "ptr":
		return PtrType
	case "void":
		return VoidType
	case "any":
		return AnyType
	default:
		return nil
	}
}
