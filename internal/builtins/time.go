package builtins

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/Schneewolf-Labs/hemlock/internal/value"
)

// registerTime wires spec §4.5's time ops (now time_ms clock sleep localtime
// gmtime mktime strftime). The teacher models time as a Delphi TDateTime
// float epoched at 1899-12-30 (builtins_datetime.go); Hemlock's
// original_source/ is a C runtime, so these follow C's time.h shape
// instead: Unix-epoch seconds, a struct-tm-shaped Object for
// localtime/gmtime/mktime, and a strftime format string.
func registerTime(r *Registry) {
	r.register(CategoryTime, "now", fn("now", 0, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("now", args, 0); err != nil {
			return nil, err
		}
		return value.I64(time.Now().Unix()), nil
	}))

	r.register(CategoryTime, "time_ms", fn("time_ms", 0, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("time_ms", args, 0); err != nil {
			return nil, err
		}
		ms := time.Now().UnixMilli()
		if r.traceEnabled() {
			fmt.Fprintf(os.Stderr, "trace: time_ms() = %s ms\n", humanize.Comma(ms))
		}
		return value.I64(ms), nil
	}))

	start := time.Now()
	r.register(CategoryTime, "clock", fn("clock", 0, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("clock", args, 0); err != nil {
			return nil, err
		}
		return value.F64(time.Since(start).Seconds()), nil
	}))

	r.register(CategoryTime, "sleep", fn("sleep", 1, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("sleep", args, 1); err != nil {
			return nil, err
		}
		secs, err := value.ToF64(args[0])
		if err != nil {
			return nil, fmt.Errorf("sleep() argument must be numeric")
		}
		if secs < 0 {
			return nil, fmt.Errorf("sleep() argument must be non-negative")
		}
		d := time.Duration(secs * float64(time.Second))
		if r.traceEnabled() {
			fmt.Fprintf(os.Stderr, "trace: sleep(%s)\n", humanize.RelTime(time.Now(), time.Now().Add(d), "", ""))
		}
		time.Sleep(d)
		return value.NullValue, nil
	}))

	r.register(CategoryTime, "localtime", fn("localtime", 1, false, func(args []value.Value) (value.Value, error) {
		return brokenDownTime(args, time.Local)
	}))

	r.register(CategoryTime, "gmtime", fn("gmtime", 1, false, func(args []value.Value) (value.Value, error) {
		return brokenDownTime(args, time.UTC)
	}))

	r.register(CategoryTime, "mktime", fn("mktime", 1, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("mktime", args, 1); err != nil {
			return nil, err
		}
		obj, ok := args[0].(value.Object)
		if !ok {
			return nil, fmt.Errorf("mktime() argument must be an object produced by localtime()/gmtime()")
		}
		t, err := timeFromFields(obj, time.Local)
		if err != nil {
			return nil, err
		}
		return value.I64(t.Unix()), nil
	}))

	r.register(CategoryTime, "strftime", fn("strftime", 2, false, func(args []value.Value) (value.Value, error) {
		if err := requireArgs("strftime", args, 2); err != nil {
			return nil, err
		}
		format, ok := args[0].(value.String)
		if !ok {
			return nil, fmt.Errorf("strftime() format argument must be a string")
		}
		var t time.Time
		switch v := args[1].(type) {
		case value.Object:
			var err error
			t, err = timeFromFields(v, time.UTC)
			if err != nil {
				return nil, err
			}
		case value.Number:
			t = time.Unix(v.AsInt(), 0).UTC()
		default:
			return nil, fmt.Errorf("strftime() second argument must be a localtime()/gmtime() object or an epoch integer")
		}
		return value.NewString(strftime(format.S.Data, t)), nil
	}))
}

// brokenDownTime implements localtime()/gmtime(): epoch seconds in, a
// struct-tm-shaped Object out (spec §4.5's "time ops").
func brokenDownTime(args []value.Value, loc *time.Location) (value.Value, error) {
	if err := requireArgs("localtime/gmtime", args, 1); err != nil {
		return nil, err
	}
	secs, err := value.ToI64(args[0])
	if err != nil {
		return nil, fmt.Errorf("localtime()/gmtime() argument must be an integer epoch")
	}
	t := time.Unix(secs, 0).In(loc)
	obj := value.NewObject()
	obj.O.Set("year", value.I32(int64(t.Year())))
	obj.O.Set("month", value.I32(int64(t.Month())))
	obj.O.Set("day", value.I32(int64(t.Day())))
	obj.O.Set("hour", value.I32(int64(t.Hour())))
	obj.O.Set("min", value.I32(int64(t.Minute())))
	obj.O.Set("sec", value.I32(int64(t.Second())))
	obj.O.Set("wday", value.I32(int64(t.Weekday())))
	obj.O.Set("yday", value.I32(int64(t.YearDay())))
	return obj, nil
}

// timeFromFields is mktime()'s inverse of brokenDownTime: reads the same
// field names back out of an Object.
func timeFromFields(obj value.Object, loc *time.Location) (time.Time, error) {
	field := func(name string, def int64) (int64, error) {
		v, ok := obj.O.Get(name)
		if !ok {
			return def, nil
		}
		return value.ToI64(v)
	}
	year, err := field("year", 1970)
	if err != nil {
		return time.Time{}, err
	}
	month, err := field("month", 1)
	if err != nil {
		return time.Time{}, err
	}
	day, err := field("day", 1)
	if err != nil {
		return time.Time{}, err
	}
	hour, err := field("hour", 0)
	if err != nil {
		return time.Time{}, err
	}
	min, err := field("min", 0)
	if err != nil {
		return time.Time{}, err
	}
	sec, err := field("sec", 0)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(int(year), time.Month(month), int(day), int(hour), int(min), int(sec), 0, loc), nil
}

// strftime translates the common C strftime directives to Go's reference-
// time layout and formats t. Unrecognized directives pass through
// unchanged, matching C's behavior of leaving unknown conversions verbatim.
func strftime(format string, t time.Time) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			b.WriteByte(c)
			continue
		}
		i++
		switch format[i] {
		case 'Y':
			b.WriteString(t.Format("2006"))
		case 'm':
			b.WriteString(t.Format("01"))
		case 'd':
			b.WriteString(t.Format("02"))
		case 'H':
			b.WriteString(t.Format("15"))
		case 'M':
			b.WriteString(t.Format("04"))
		case 'S':
			b.WriteString(t.Format("05"))
		case 'A':
			b.WriteString(t.Format("Monday"))
		case 'a':
			b.WriteString(t.Format("Mon"))
		case 'B':
			b.WriteString(t.Format("January"))
		case 'b':
			b.WriteString(t.Format("Jan"))
		case 'Z':
			b.WriteString(t.Format("MST"))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
	return b.String()
}
