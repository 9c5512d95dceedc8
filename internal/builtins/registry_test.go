package builtins

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

func noCall(pos token.Position, fnVal value.Value, args []value.Value) (value.Value, error) {
	fn, ok := fnVal.(value.BuiltinFnV)
	if !ok {
		return nil, nil
	}
	return fn.Fn.Impl(args)
}

func TestLookupFindsCoreBuiltins(t *testing.T) {
	r := New(noCall)
	fn, ok := r.Lookup("print")
	require.True(t, ok)
	require.Equal(t, "print", fn.Name)

	_, ok = r.Lookup("does_not_exist")
	require.False(t, ok)
}

func TestLookupMethodFindsArrayMethods(t *testing.T) {
	r := New(noCall)
	fn, ok := r.LookupMethod(value.TagArray, "push")
	require.True(t, ok)
	require.Equal(t, "push", fn.Name)

	_, ok = r.LookupMethod(value.TagString, "push")
	require.False(t, ok)
}

func TestSetWriterRedirectsPrint(t *testing.T) {
	r := New(noCall)
	var buf bytes.Buffer
	r.SetWriter(&buf)

	fn, ok := r.Lookup("print")
	require.True(t, ok)
	_, err := fn.Impl([]value.Value{value.NewString("hello")})
	require.NoError(t, err)
	require.Equal(t, "hello\n", buf.String())
}

func TestNamesAreSortedAndNonEmpty(t *testing.T) {
	r := New(noCall)
	names := r.Names()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		require.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestCountMatchesNames(t *testing.T) {
	r := New(noCall)
	require.Equal(t, len(r.Names()), r.Count())
}
