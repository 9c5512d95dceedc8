package value

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// FileHandleObj is the heap representation of an open OS file, exposed to
// Hemlock scripts through the `file ops` builtin catalog (spec §4.5).
// DebugID identifies this handle across --trace diagnostics; it has no
// semantic role and is never compared or serialized.
type FileHandleObj struct {
	refcounted
	Handle  *os.File
	Path    string
	Closed  bool
	DebugID string
}

// NewFileHandleObj wraps an already-opened *os.File, refcount 1.
func NewFileHandleObj(path string, f *os.File) *FileHandleObj {
	return &FileHandleObj{refcounted: newRefcounted(), Handle: f, Path: path, DebugID: uuid.NewString()}
}

// File is the FILE(→FileHandle) value variant.
type File struct {
	F *FileHandleObj
}

func (File) Tag() Tag         { return TagFile }
func (f File) String() string { return fmt.Sprintf("<file:%s>", f.F.Path) }
