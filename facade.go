package wasilog

// Facade helpers using the installed Adapter. The target of each entry is the
// calling package path.
// Usage: wasilog.Info().Str("k","v").Msg("hello")

var std = &Logger{}

func Trace() *Event { return getEvent(std, LevelTrace) }
func Debug() *Event { return getEvent(std, LevelDebug) }
func Info() *Event  { return getEvent(std, LevelInfo) }
func Warn() *Event  { return getEvent(std, LevelWarn) }
func Error() *Event { return getEvent(std, LevelError) }

// Log emits msg at level under target through the installed Adapter.
func Log(level Level, target, msg string, fs ...Field) {
	if !Enabled(level) {
		return
	}
	std.emit(level, target, Text(msg), fs, 2)
}

// Logf is Log with a fmt-interpolated message.
func Logf(level Level, target, format string, args ...any) {
	if !Enabled(level) {
		return
	}
	std.emit(level, target, Sprintf(format, args...), nil, 2)
}
