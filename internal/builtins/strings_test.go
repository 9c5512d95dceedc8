package builtins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

func TestStringUpperLower(t *testing.T) {
	r := New(noCall)
	upper := mustMethod(t, r, value.TagString, "upper")
	lower := mustMethod(t, r, value.TagString, "lower")

	v, err := upper.Impl([]value.Value{value.NewString("Hello")})
	require.NoError(t, err)
	require.Equal(t, value.NewString("HELLO"), v)

	v, err = lower.Impl([]value.Value{value.NewString("Hello")})
	require.NoError(t, err)
	require.Equal(t, value.NewString("hello"), v)
}

func TestStringSplitJoin(t *testing.T) {
	r := New(noCall)
	split := mustMethod(t, r, value.TagString, "split")
	result, err := split.Impl([]value.Value{value.NewString("a,b,c"), value.NewString(",")})
	require.NoError(t, err)
	arr := result.(value.Array)
	require.Len(t, arr.A.Elements, 3)
	require.Equal(t, value.NewString("b"), arr.A.Elements[1])
}

func TestStringIndexOfRuneAware(t *testing.T) {
	r := New(noCall)
	indexOf := mustMethod(t, r, value.TagString, "index_of")
	// "é" is a two-byte rune; "world" should be found at rune index 1, not byte index 2.
	v, err := indexOf.Impl([]value.Value{value.NewString("éworld"), value.NewString("world")})
	require.NoError(t, err)
	require.Equal(t, value.I32(1), v)
}

func TestStringIndexOfNotFound(t *testing.T) {
	r := New(noCall)
	indexOf := mustMethod(t, r, value.TagString, "index_of")
	v, err := indexOf.Impl([]value.Value{value.NewString("hello"), value.NewString("xyz")})
	require.NoError(t, err)
	require.Equal(t, value.I32(-1), v)
}

func TestStringStartsEndsWith(t *testing.T) {
	r := New(noCall)
	starts := mustMethod(t, r, value.TagString, "starts_with")
	ends := mustMethod(t, r, value.TagString, "ends_with")

	v, err := starts.Impl([]value.Value{value.NewString("hello"), value.NewString("he")})
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)

	v, err = ends.Impl([]value.Value{value.NewString("hello"), value.NewString("lo")})
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)
}

func TestStringRepeat(t *testing.T) {
	r := New(noCall)
	repeat := mustMethod(t, r, value.TagString, "repeat")
	v, err := repeat.Impl([]value.Value{value.NewString("ab"), value.I32(3)})
	require.NoError(t, err)
	require.Equal(t, value.NewString("ababab"), v)
}

func TestStringLengthIsRuneCount(t *testing.T) {
	r := New(noCall)
	length := mustMethod(t, r, value.TagString, "length")
	v, err := length.Impl([]value.Value{value.NewString("héllo")})
	require.NoError(t, err)
	require.Equal(t, value.I32(5), v)
}

func TestStringReceiverTypeMismatch(t *testing.T) {
	r := New(noCall)
	upper := mustMethod(t, r, value.TagString, "upper")
	_, err := upper.Impl([]value.Value{value.I32(1)})
	require.Error(t, err)
}
