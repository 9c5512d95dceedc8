package builtins

import (
	"fmt"

	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// registerFFI wires spec §4.5's "FFI bridges": the small set of builtins
// that construct and poke at PTR and BUFFER values. Per spec §3.2/§6, PTR
// and BUFFER are opaque to the evaluator — it never dereferences or
// interprets them, it only passes them through to native code verbatim.
// There is no teacher analogue (DWScript has no raw-pointer FFI surface);
// this is grounded directly on spec §6's "opaque to the evaluator" rule
// and written in the same receiver-argument convention as array.go/strings.go.
func registerFFI(r *Registry) {
	r.register(CategoryFFI, "buffer_new", fn("buffer_new", 1, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("buffer_new", args, 1); err != nil {
			return nil, err
		}
		n, err := value.ToI64(args[0])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("buffer_new() size must be a non-negative integer")
		}
		return value.Buffer{B: value.NewBufferObj(int(n))}, nil
	}))

	r.registerMethod(CategoryFFI, value.TagBuffer, "length", fn("length", 1, false, func(args []value.Value) (value.Value, error) {
		buf, err := receiverBuffer("length", args)
		if err != nil {
			return nil, err
		}
		return value.I32(int64(len(buf.Bytes))), nil
	}))

	r.registerMethod(CategoryFFI, value.TagBuffer, "get", fn("get", 2, false, func(args []value.Value) (value.Value, error) {
		buf, err := receiverBuffer("get", args)
		if err != nil {
			return nil, err
		}
		i, err := bufferIndex(buf, args[1], "get")
		if err != nil {
			return nil, err
		}
		return value.I32(int64(buf.Bytes[i])), nil
	}))

	r.registerMethod(CategoryFFI, value.TagBuffer, "set", fn("set", 3, false, func(args []value.Value) (value.Value, error) {
		buf, err := receiverBuffer("set", args)
		if err != nil {
			return nil, err
		}
		i, err := bufferIndex(buf, args[1], "set")
		if err != nil {
			return nil, err
		}
		n, err := value.ToI64(args[2])
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("set() value must be a byte (0-255)")
		}
		buf.Bytes[i] = byte(n)
		return value.NullValue, nil
	}))

	r.registerMethod(CategoryFFI, value.TagBuffer, "ptr", fn("ptr", 1, false, func(args []value.Value) (value.Value, error) {
		buf, err := receiverBuffer("ptr", args)
		if err != nil {
			return nil, err
		}
		return value.Ptr{Raw: buf}, nil
	}))

	r.register(CategoryFFI, "ptr_is_null", fn("ptr_is_null", 1, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("ptr_is_null", args, 1); err != nil {
			return nil, err
		}
		p, ok := args[0].(value.Ptr)
		if !ok {
			return nil, fmt.Errorf("ptr_is_null() argument must be a pointer")
		}
		return value.Bool(p.Raw == nil), nil
	}))

	r.register(CategoryFFI, "ptr_null", fn("ptr_null", 0, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("ptr_null", args, 0); err != nil {
			return nil, err
		}
		return value.Ptr{}, nil
	}))
}

func receiverBuffer(name string, args []value.Value) (*value.BufferObj, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s() requires a buffer receiver", name)
	}
	b, ok := args[0].(value.Buffer)
	if !ok {
		return nil, fmt.Errorf("%s() requires a buffer receiver, got %s", name, args[0].Tag())
	}
	return b.B, nil
}

func bufferIndex(buf *value.BufferObj, arg value.Value, name string) (int64, error) {
	i, err := value.ToI64(arg)
	if err != nil {
		return 0, fmt.Errorf("%s() index must be an integer", name)
	}
	if i < 0 || i >= int64(len(buf.Bytes)) {
		return 0, fmt.Errorf("%s() index %d out of bounds for buffer of length %d", name, i, len(buf.Bytes))
	}
	return i, nil
}
