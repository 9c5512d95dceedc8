package value

import "fmt"

// BufferObj is a raw byte region for FFI (spec §3.2: "raw byte region for
// FFI"). The evaluator never interprets its contents; native builtins read
// and write it directly.
type BufferObj struct {
	refcounted
	Bytes []byte
}

// NewBufferObj creates a new, refcount-1 BufferObj of the given size.
func NewBufferObj(size int) *BufferObj {
	return &BufferObj{refcounted: newRefcounted(), Bytes: make([]byte, size)}
}

// Buffer is the BUFFER(→Buffer) value variant.
type Buffer struct {
	B *BufferObj
}

func (Buffer) Tag() Tag         { return TagBuffer }
func (b Buffer) String() string { return fmt.Sprintf("<buffer:%d>", len(b.B.Bytes)) }
