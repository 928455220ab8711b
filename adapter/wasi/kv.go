//go:build !wasilog_nokv

package wasi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trickstertwo/wasilog"
)

// fmt reports a panicking String, Error or Format method inline.
const fmtPanic = "%!v(PANIC="

func hasKeyValues(r *wasilog.Record) bool {
	return r.KeyValues != nil && r.KeyValues.Count() > 0
}

func appendKeyValues(b *strings.Builder, r *wasilog.Record) {
	if !hasKeyValues(r) {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	// failing to visit the key-value pairs is a bug and we cannot continue
	if err := writeKeyValues(b, r.KeyValues); err != nil {
		panic("debug-formatting wasilog.Record key-values returned an error: " + err.Error())
	}
}

// writeKeyValues renders src as a map literal, {k1: v1, k2: v2}, in
// visitation order.
func writeKeyValues(b *strings.Builder, src wasilog.Source) error {
	b.WriteByte('{')
	n := 0
	err := src.Visit(wasilog.VisitorFunc(func(f wasilog.Field) error {
		if n > 0 {
			b.WriteString(", ")
		}
		n++
		b.WriteString(f.K)
		b.WriteString(": ")
		return appendValue(b, &f)
	}))
	if err != nil {
		return err
	}
	b.WriteByte('}')
	return nil
}

func appendValue(b *strings.Builder, f *wasilog.Field) error {
	var tmp [32]byte
	switch f.Kind {
	case wasilog.KindString:
		b.WriteString(f.Str)
	case wasilog.KindInt64:
		b.Write(strconv.AppendInt(tmp[:0], f.Int64, 10))
	case wasilog.KindUint64:
		b.Write(strconv.AppendUint(tmp[:0], f.Uint64, 10))
	case wasilog.KindFloat64:
		b.Write(strconv.AppendFloat(tmp[:0], f.Float64, 'g', -1, 64))
	case wasilog.KindBool:
		b.Write(strconv.AppendBool(tmp[:0], f.Bool))
	case wasilog.KindDuration:
		b.WriteString(f.Dur.String())
	case wasilog.KindTime:
		b.Write(f.Time.AppendFormat(tmp[:0], time.RFC3339Nano))
	case wasilog.KindError:
		if f.Err == nil {
			b.WriteString("<nil>")
			return nil
		}
		return appendPrinted(b, f.Err)
	case wasilog.KindBytes:
		fmt.Fprint(b, f.Bytes)
	case wasilog.KindAny:
		return appendPrinted(b, f.Any)
	default:
		b.WriteString("<nil>")
	}
	return nil
}

// appendPrinted writes v in its %v form. A method that panicked while
// printing v, at any depth, is returned as an error.
func appendPrinted(b *strings.Builder, v any) error {
	s := fmt.Sprint(v)
	if i := strings.Index(s, fmtPanic); i >= 0 {
		msg := s[i+len(fmtPanic):]
		if j := strings.LastIndexByte(msg, ')'); j >= 0 {
			msg = msg[:j]
		}
		return errors.New(msg)
	}
	b.WriteString(s)
	return nil
}
