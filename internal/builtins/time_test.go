package builtins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

func TestLocaltimeMktimeRoundTrip(t *testing.T) {
	r := New(noCall)
	localtime, ok := r.Lookup("localtime")
	require.True(t, ok)
	mktime, ok := r.Lookup("mktime")
	require.True(t, ok)

	const epoch = int64(1700000000)
	obj, err := localtime.Impl([]value.Value{value.I64(epoch)})
	require.NoError(t, err)

	back, err := mktime.Impl([]value.Value{obj})
	require.NoError(t, err)
	require.Equal(t, value.I64(epoch), back)
}

func TestGmtimeFields(t *testing.T) {
	r := New(noCall)
	gmtime, ok := r.Lookup("gmtime")
	require.True(t, ok)

	// 2023-11-14T22:13:20Z
	obj, err := gmtime.Impl([]value.Value{value.I64(1700000000)})
	require.NoError(t, err)
	o := obj.(value.Object)
	year, _ := o.O.Get("year")
	require.Equal(t, value.I32(2023), year)
}

func TestStrftimeFormatsEpoch(t *testing.T) {
	r := New(noCall)
	strftime, ok := r.Lookup("strftime")
	require.True(t, ok)

	v, err := strftime.Impl([]value.Value{value.NewString("%Y-%m-%d"), value.I64(1700000000)})
	require.NoError(t, err)
	require.Equal(t, value.NewString("2023-11-14"), v)
}

func TestStrftimePassesThroughUnknownDirective(t *testing.T) {
	r := New(noCall)
	strftime, ok := r.Lookup("strftime")
	require.True(t, ok)

	v, err := strftime.Impl([]value.Value{value.NewString("%Q"), value.I64(0)})
	require.NoError(t, err)
	require.Equal(t, value.NewString("%Q"), v)
}

func TestSleepRejectsNegative(t *testing.T) {
	r := New(noCall)
	sleep, ok := r.Lookup("sleep")
	require.True(t, ok)
	_, err := sleep.Impl([]value.Value{value.F64(-1)})
	require.Error(t, err)
}

func TestClockIsNonNegativeAndMonotonicish(t *testing.T) {
	r := New(noCall)
	clock, ok := r.Lookup("clock")
	require.True(t, ok)
	v, err := clock.Impl(nil)
	require.NoError(t, err)
	n, ok := v.(value.Number)
	require.True(t, ok)
	require.GreaterOrEqual(t, n.AsFloat(), 0.0)
}
