package wasi

import (
	"strconv"
	"strings"

	"github.com/trickstertwo/wasilog"
)

// Format renders r into the single message string delivered to the sink.
//
// A record whose message is a plain string and that carries no module path,
// file, line or key-value pairs is passed through unchanged. Any other
// record goes through FormatSlow; both produce identical text.
func Format(r *wasilog.Record) string {
	if msg, ok := passThrough(r); ok {
		return msg
	}
	return FormatSlow(r)
}

func passThrough(r *wasilog.Record) (string, bool) {
	msg, ok := message(r).AsString()
	if !ok || r.ModulePath != "" || r.File != "" || r.Line != 0 || hasKeyValues(r) {
		return "", false
	}
	return msg, true
}

// FormatSlow always assembles the message:
//
//	[module_path][ in ][file][:][line][: ]message[ {k: v, ...}]
//
// The module path is left out when it equals the target. Each separator is
// only written when text precedes it.
func FormatSlow(r *wasilog.Record) string {
	var b strings.Builder

	if r.ModulePath != "" && r.ModulePath != r.Target {
		b.WriteString(r.ModulePath)
	}

	if r.File != "" {
		if b.Len() > 0 {
			b.WriteString(" in ")
		}
		b.WriteString(r.File)
	}

	if r.Line != 0 {
		if b.Len() > 0 {
			b.WriteByte(':')
		}
		var tmp [10]byte
		b.Write(strconv.AppendUint(tmp[:0], uint64(r.Line), 10))
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	// failing to render the message is a bug and we cannot continue
	if err := message(r).Render(&b); err != nil {
		panic("formatting wasilog.Record message returned an error: " + err.Error())
	}

	appendKeyValues(&b, r)

	return b.String()
}

func message(r *wasilog.Record) wasilog.Message {
	if r.Message == nil {
		return wasilog.Text("")
	}
	return r.Message
}
