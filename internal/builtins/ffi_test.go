package builtins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

func TestBufferNewGetSet(t *testing.T) {
	r := New(noCall)
	newBuf, _ := r.Lookup("buffer_new")
	get := mustMethod(t, r, value.TagBuffer, "get")
	set := mustMethod(t, r, value.TagBuffer, "set")

	buf, err := newBuf.Impl([]value.Value{value.I32(4)})
	require.NoError(t, err)

	_, err = set.Impl([]value.Value{buf, value.I32(0), value.I32(200)})
	require.NoError(t, err)
	v, err := get.Impl([]value.Value{buf, value.I32(0)})
	require.NoError(t, err)
	require.Equal(t, value.I32(200), v)
}

func TestBufferSetRejectsOutOfRangeByte(t *testing.T) {
	r := New(noCall)
	newBuf, _ := r.Lookup("buffer_new")
	set := mustMethod(t, r, value.TagBuffer, "set")

	buf, err := newBuf.Impl([]value.Value{value.I32(1)})
	require.NoError(t, err)
	_, err = set.Impl([]value.Value{buf, value.I32(0), value.I32(999)})
	require.Error(t, err)
}

func TestBufferIndexOutOfBounds(t *testing.T) {
	r := New(noCall)
	newBuf, _ := r.Lookup("buffer_new")
	get := mustMethod(t, r, value.TagBuffer, "get")

	buf, err := newBuf.Impl([]value.Value{value.I32(2)})
	require.NoError(t, err)
	_, err = get.Impl([]value.Value{buf, value.I32(5)})
	require.Error(t, err)
}

func TestBufferLength(t *testing.T) {
	r := New(noCall)
	newBuf, _ := r.Lookup("buffer_new")
	length := mustMethod(t, r, value.TagBuffer, "length")

	buf, err := newBuf.Impl([]value.Value{value.I32(7)})
	require.NoError(t, err)
	v, err := length.Impl([]value.Value{buf})
	require.NoError(t, err)
	require.Equal(t, value.I32(7), v)
}

func TestPtrNullIsNull(t *testing.T) {
	r := New(noCall)
	null, _ := r.Lookup("ptr_null")
	isNull, _ := r.Lookup("ptr_is_null")

	p, err := null.Impl(nil)
	require.NoError(t, err)
	v, err := isNull.Impl([]value.Value{p})
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)
}

func TestBufferPtrIsNotNull(t *testing.T) {
	r := New(noCall)
	newBuf, _ := r.Lookup("buffer_new")
	ptr := mustMethod(t, r, value.TagBuffer, "ptr")
	isNull, _ := r.Lookup("ptr_is_null")

	buf, err := newBuf.Impl([]value.Value{value.I32(1)})
	require.NoError(t, err)
	p, err := ptr.Impl([]value.Value{buf})
	require.NoError(t, err)
	v, err := isNull.Impl([]value.Value{p})
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), v)
}
