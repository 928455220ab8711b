package wasilog

import (
	"context"
	"log/slog"
	"runtime"
)

// TargetKey is the slog attribute key that overrides the record target.
const TargetKey = "target"

// SlogOptions configures NewSlogHandler.
type SlogOptions struct {
	// Target is used when no "target" attribute is present. When both are
	// empty the package of the logging call site is used, if known.
	Target string
	// AddSource fills module path, file and line from slog.Record.PC.
	AddSource bool
	// Adapter overrides the installed Adapter.
	Adapter Adapter
}

// slogHandler is a slog.Handler that routes records to a wasilog Adapter.
type slogHandler struct {
	opts   SlogOptions
	attrs  []Field
	prefix string
}

// NewSlogHandler returns a slog.Handler backed by the installed Adapter.
// Filtering follows the global threshold set with SetMinLevel.
func NewSlogHandler(opts *SlogOptions) slog.Handler {
	h := &slogHandler{}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return Enabled(fromSlogLevel(level))
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	target := h.opts.Target
	fields := make([]Field, 0, len(h.attrs)+r.NumAttrs())
	fields = append(fields, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		if t, ok := targetAttr(h.prefix, a); ok {
			target = t
			return true
		}
		fields = appendAttr(fields, h.prefix, a)
		return true
	})

	rec := Record{
		Level:   fromSlogLevel(r.Level),
		Message: Text(r.Message),
	}
	var pkg string
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		pkg = packageOf(frame.Function)
		if h.opts.AddSource {
			rec.ModulePath = pkg
			rec.File = trimPath(frame.File)
			rec.Line = uint32(frame.Line)
		}
	}
	if target == "" {
		target = pkg
	}
	rec.Target = target
	if len(fields) > 0 {
		rec.KeyValues = Fields(fields)
	}

	a := h.opts.Adapter
	if a == nil {
		a = Installed()
	}
	if !a.Enabled(rec.Metadata()) {
		return nil
	}
	a.Log(&rec)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = copyFields(nil, h.attrs)
	for _, a := range attrs {
		if t, ok := targetAttr(h.prefix, a); ok {
			nh.opts.Target = t
			continue
		}
		nh.attrs = appendAttr(nh.attrs, h.prefix, a)
	}
	return &nh
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func targetAttr(prefix string, a slog.Attr) (string, bool) {
	if prefix != "" || a.Key != TargetKey {
		return "", false
	}
	v := a.Value.Resolve()
	if v.Kind() != slog.KindString {
		return "", false
	}
	return v.String(), true
}

func appendAttr(dst []Field, prefix string, a slog.Attr) []Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	k := prefix + a.Key
	v := a.Value
	switch v.Kind() {
	case slog.KindGroup:
		p := prefix
		if a.Key != "" {
			p = k + "."
		}
		for _, ga := range v.Group() {
			dst = appendAttr(dst, p, ga)
		}
		return dst
	case slog.KindString:
		return append(dst, Str(k, v.String()))
	case slog.KindInt64:
		return append(dst, Int64(k, v.Int64()))
	case slog.KindUint64:
		return append(dst, Uint64(k, v.Uint64()))
	case slog.KindFloat64:
		return append(dst, Float64(k, v.Float64()))
	case slog.KindBool:
		return append(dst, Bool(k, v.Bool()))
	case slog.KindDuration:
		return append(dst, Dur(k, v.Duration()))
	case slog.KindTime:
		return append(dst, Time(k, v.Time()))
	default:
		switch x := v.Any().(type) {
		case error:
			return append(dst, Err(k, x))
		case []byte:
			return append(dst, Bytes(k, x))
		default:
			return append(dst, Any(k, x))
		}
	}
}

// fromSlogLevel folds the open slog level range onto the five record levels.
func fromSlogLevel(l slog.Level) Level {
	switch {
	case l < slog.LevelDebug:
		return LevelTrace
	case l < slog.LevelInfo:
		return LevelDebug
	case l < slog.LevelWarn:
		return LevelInfo
	case l < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}
