package value

import "strings"

// ObjectObj is the heap representation of a Hemlock object literal: an
// ordered set of string-keyed fields. Order is preserved for stable
// iteration/printing, mirroring the ordered-triple discipline used by
// Environment (spec §3.3).
type ObjectObj struct {
	refcounted
	keys   []string
	fields map[string]Value
}

// NewObjectObj creates a new, refcount-1 empty ObjectObj.
func NewObjectObj() *ObjectObj {
	return &ObjectObj{fields: make(map[string]Value), refcounted: newRefcounted()}
}

// Get returns the field value and whether it was present.
func (o *ObjectObj) Get(name string) (Value, bool) {
	v, ok := o.fields[name]
	return v, ok
}

// Set creates or overwrites a field, appending to the key order on first
// write.
func (o *ObjectObj) Set(name string, v Value) {
	if _, exists := o.fields[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.fields[name] = v
}

// Keys returns field names in insertion order.
func (o *ObjectObj) Keys() []string { return o.keys }

// Object is the OBJECT(→Object) value variant.
type Object struct {
	O *ObjectObj
}

func (Object) Tag() Tag { return TagObject }

func (ob Object) String() string {
	parts := make([]string, 0, len(ob.O.keys))
	for _, k := range ob.O.keys {
		v := ob.O.fields[k]
		var vs string
		if v == nil {
			vs = "null"
		} else if s, ok := v.(String); ok {
			vs = quoteForDisplay(s.S.Data)
		} else {
			vs = v.String()
		}
		parts = append(parts, k+": "+vs)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// NewObject is a convenience constructor wrapping a fresh ObjectObj.
func NewObject() Object {
	return Object{O: NewObjectObj()}
}
