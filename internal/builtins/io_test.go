package builtins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

func TestFileWriteReadRoundTrip(t *testing.T) {
	r := New(noCall)
	open, ok := r.Lookup("file_open")
	require.True(t, ok)
	write, ok := r.Lookup("file_write")
	require.True(t, ok)
	readAll, ok := r.Lookup("file_read_all")
	require.True(t, ok)
	closeFn, ok := r.Lookup("file_close")
	require.True(t, ok)

	path := filepath.Join(t.TempDir(), "hello.txt")

	wh, err := open.Impl([]value.Value{value.NewString(path), value.NewString("w")})
	require.NoError(t, err)
	n, err := write.Impl([]value.Value{wh, value.NewString("hello world")})
	require.NoError(t, err)
	require.Equal(t, value.I32(11), n)
	_, err = closeFn.Impl([]value.Value{wh})
	require.NoError(t, err)

	rh, err := open.Impl([]value.Value{value.NewString(path), value.NewString("r")})
	require.NoError(t, err)
	data, err := readAll.Impl([]value.Value{rh})
	require.NoError(t, err)
	require.Equal(t, value.NewString("hello world"), data)
	_, err = closeFn.Impl([]value.Value{rh})
	require.NoError(t, err)
}

func TestFileOpenUnknownModeErrors(t *testing.T) {
	r := New(noCall)
	open, ok := r.Lookup("file_open")
	require.True(t, ok)
	_, err := open.Impl([]value.Value{value.NewString("/tmp/x"), value.NewString("bogus")})
	require.Error(t, err)
}

func TestFileCloseIsIdempotent(t *testing.T) {
	r := New(noCall)
	open, _ := r.Lookup("file_open")
	closeFn, _ := r.Lookup("file_close")

	path := filepath.Join(t.TempDir(), "idempotent.txt")
	h, err := open.Impl([]value.Value{value.NewString(path), value.NewString("w")})
	require.NoError(t, err)

	_, err = closeFn.Impl([]value.Value{h})
	require.NoError(t, err)
	_, err = closeFn.Impl([]value.Value{h})
	require.NoError(t, err)
}

func TestOperationOnClosedFileErrors(t *testing.T) {
	r := New(noCall)
	open, _ := r.Lookup("file_open")
	closeFn, _ := r.Lookup("file_close")
	write, _ := r.Lookup("file_write")

	path := filepath.Join(t.TempDir(), "closed.txt")
	h, err := open.Impl([]value.Value{value.NewString(path), value.NewString("w")})
	require.NoError(t, err)
	_, err = closeFn.Impl([]value.Value{h})
	require.NoError(t, err)

	_, err = write.Impl([]value.Value{h, value.NewString("x")})
	require.Error(t, err)
}

func TestFileExists(t *testing.T) {
	r := New(noCall)
	exists, ok := r.Lookup("file_exists")
	require.True(t, ok)

	path := filepath.Join(t.TempDir(), "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	v, err := exists.Impl([]value.Value{value.NewString(path)})
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)

	v, err = exists.Impl([]value.Value{value.NewString(path + ".missing")})
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), v)
}
