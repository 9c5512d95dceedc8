package builtins

import (
	"fmt"
	"io"
	"os"

	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// registerIO wires spec §4.5's "file ops": open/read/write/close plus an
// existence check, grounded on the teacher's I/O builtins (builtins_io.go)
// for the "silently usable, errors surface as FATAL" calling convention,
// adapted from DWScript's PrintLn/Print pair to a small POSIX-shaped file
// API matching Hemlock's FileHandle value (spec §3.2).
func registerIO(r *Registry) {
	r.register(CategoryIO, "file_open", fn("file_open", 2, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("file_open", args, 2); err != nil {
			return nil, err
		}
		path, ok := args[0].(value.String)
		if !ok {
			return nil, fmt.Errorf("file_open() path must be a string")
		}
		mode, ok := args[1].(value.String)
		if !ok {
			return nil, fmt.Errorf("file_open() mode must be a string")
		}
		flag, err := fileOpenFlag(mode.S.Data)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path.S.Data, flag, 0o644)
		if err != nil {
			return nil, err
		}
		return value.File{F: value.NewFileHandleObj(path.S.Data, f)}, nil
	}))

	r.register(CategoryIO, "file_read", fn("file_read", 2, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("file_read", args, 2); err != nil {
			return nil, err
		}
		h, err := receiverFile("file_read", args[0])
		if err != nil {
			return nil, err
		}
		n, err := value.ToI64(args[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("file_read() byte count must be a non-negative integer")
		}
		buf := make([]byte, n)
		read, err := h.Handle.Read(buf)
		if err != nil && err != io.EOF {
			return nil, err
		}
		return value.NewString(string(buf[:read])), nil
	}))

	r.register(CategoryIO, "file_read_all", fn("file_read_all", 1, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("file_read_all", args, 1); err != nil {
			return nil, err
		}
		h, err := receiverFile("file_read_all", args[0])
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(h.Handle)
		if err != nil {
			return nil, err
		}
		return value.NewString(string(data)), nil
	}))

	r.register(CategoryIO, "file_write", fn("file_write", 2, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("file_write", args, 2); err != nil {
			return nil, err
		}
		h, err := receiverFile("file_write", args[0])
		if err != nil {
			return nil, err
		}
		s, ok := args[1].(value.String)
		if !ok {
			return nil, fmt.Errorf("file_write() data must be a string")
		}
		n, err := h.Handle.WriteString(s.S.Data)
		if err != nil {
			return nil, err
		}
		return value.I32(int64(n)), nil
	}))

	r.register(CategoryIO, "file_close", fn("file_close", 1, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("file_close", args, 1); err != nil {
			return nil, err
		}
		f, ok := args[0].(value.File)
		if !ok {
			return nil, fmt.Errorf("file_close() requires a file handle, got %s", args[0].Tag())
		}
		h := f.F
		if h.Closed {
			return value.NullValue, nil
		}
		h.Closed = true
		return value.NullValue, h.Handle.Close()
	}))

	r.register(CategoryIO, "file_exists", fn("file_exists", 1, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("file_exists", args, 1); err != nil {
			return nil, err
		}
		path, ok := args[0].(value.String)
		if !ok {
			return nil, fmt.Errorf("file_exists() path must be a string")
		}
		_, err := os.Stat(path.S.Data)
		return value.Bool(err == nil), nil
	}))
}

func fileOpenFlag(mode string) (int, error) {
	switch mode {
	case "r":
		return os.O_RDONLY, nil
	case "w":
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, nil
	case "a":
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND, nil
	case "r+":
		return os.O_RDWR, nil
	default:
		return 0, fmt.Errorf("file_open() mode must be one of \"r\", \"w\", \"a\", \"r+\", got %q", mode)
	}
}

func receiverFile(name string, v value.Value) (*value.FileHandleObj, error) {
	f, ok := v.(value.File)
	if !ok {
		return nil, fmt.Errorf("%s() requires a file handle, got %s", name, v.Tag())
	}
	if f.F.Closed {
		return nil, fmt.Errorf("%s() on a closed file handle", name)
	}
	return f.F, nil
}
