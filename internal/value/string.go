package value

// StringObj is the heap representation of a Hemlock string. Hemlock
// strings are conceptually length-prefixed and NUL-terminated (spec §3.2:
// "capacity ≥ length+1") to interoperate with the C runtime backing the
// transpiled form; the Go representation keeps the same observable
// length/content contract using a native Go string as backing storage; Len
// is kept alongside it rather than derived, so that the ported runtime has
// an explicit field matching the C struct's `length`.
type StringObj struct {
	refcounted
	Data string
	Len  int
}

// NewStringObj creates a new, refcount-1 StringObj from s.
func NewStringObj(s string) *StringObj {
	return &StringObj{refcounted: newRefcounted(), Data: s, Len: len([]rune(s))}
}

// String is the STRING(→String) value variant.
type String struct {
	S *StringObj
}

func (String) Tag() Tag         { return TagString }
func (s String) String() string { return s.S.Data }

// NewString is a convenience constructor wrapping a fresh StringObj.
func NewString(s string) String {
	return String{S: NewStringObj(s)}
}
