package wasilog

import (
	"runtime"
	"strings"
)

// Logger is a facade handle bound to a target and optional fields.
// The zero target means "the calling package path".
type Logger struct {
	target     string
	adapter    Adapter // nil: the installed Adapter
	baseFields []Field
	noLocation bool
}

// New returns a Logger for target that dispatches to the installed Adapter.
func New(target string) *Logger {
	return &Logger{target: target}
}

// Target returns the target the Logger was built with.
func (l *Logger) Target() string { return l.target }

// With returns a child logger with bound fields.
func (l *Logger) With(fs ...Field) *Logger {
	child := *l
	child.baseFields = append(copyFields(nil, l.baseFields), fs...)
	return &child
}

// Named returns a child logger with a different target.
func (l *Logger) Named(target string) *Logger {
	child := *l
	child.target = target
	return &child
}

func (l *Logger) backend() Adapter {
	if l.adapter != nil {
		return l.adapter
	}
	return Installed()
}

// Enabled reports whether logs at level would pass the global threshold.
// Use to avoid building fields in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return Enabled(level)
}

// Level entry points returning fluent builders. They return nil when the
// level is below the global threshold; a nil *Event is safe to use.

func (l *Logger) Trace() *Event { return getEvent(l, LevelTrace) }
func (l *Logger) Debug() *Event { return getEvent(l, LevelDebug) }
func (l *Logger) Info() *Event  { return getEvent(l, LevelInfo) }
func (l *Logger) Warn() *Event  { return getEvent(l, LevelWarn) }
func (l *Logger) Error() *Event { return getEvent(l, LevelError) }

// Log emits msg at level without the builder.
func (l *Logger) Log(level Level, msg string, fs ...Field) {
	if !Enabled(level) {
		return
	}
	l.emit(level, "", Text(msg), fs, 2)
}

// Logf emits a fmt-interpolated message at level.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if !Enabled(level) {
		return
	}
	l.emit(level, "", Sprintf(format, args...), nil, 2)
}

// emit builds the Record and hands it to the Adapter. skip counts frames
// above emit up to the user's call site.
func (l *Logger) emit(level Level, target string, msg Message, evFields []Field, skip int) {
	if target == "" {
		target = l.target
	}

	var modulePath, file string
	var line uint32
	if !l.noLocation || target == "" {
		if pc, f, ln, ok := runtime.Caller(skip); ok {
			modulePath = packagePath(pc)
			if !l.noLocation {
				file, line = trimPath(f), uint32(ln)
			}
		}
	}
	if target == "" {
		target = modulePath
	}
	if l.noLocation {
		modulePath = ""
	}

	a := l.backend()
	rec := Record{
		Level:      level,
		Target:     target,
		ModulePath: modulePath,
		File:       file,
		Line:       line,
		Message:    msg,
	}
	if !a.Enabled(rec.Metadata()) {
		return
	}

	switch {
	case len(l.baseFields) == 0 && len(evFields) == 0:
	case len(l.baseFields) == 0:
		rec.KeyValues = Fields(evFields)
	case len(evFields) == 0:
		rec.KeyValues = Fields(l.baseFields)
	default:
		merged := make([]Field, 0, len(l.baseFields)+len(evFields))
		merged = append(merged, l.baseFields...)
		merged = append(merged, evFields...)
		rec.KeyValues = Fields(merged)
	}

	a.Log(&rec)
}

// packagePath extracts the import path from the function at pc,
// e.g. "github.com/acme/app/net" from "github.com/acme/app/net.(*Conn).Read".
func packagePath(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return packageOf(fn.Name())
}

// trimPath keeps the last directory and the file name, as zap's
// EntryCaller.TrimmedPath does: "/home/u/app/net/conn.go" -> "net/conn.go".
func trimPath(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if idx == -1 {
		return path
	}
	idx = strings.LastIndexByte(path[:idx], '/')
	if idx == -1 {
		return path
	}
	return path[idx+1:]
}

func packageOf(name string) string {
	slash := strings.LastIndexByte(name, '/')
	if dot := strings.IndexByte(name[slash+1:], '.'); dot >= 0 {
		return name[:slash+1+dot]
	}
	return name
}
