package logging

// Level is the wasi:logging level enum. Values are the canonical ABI
// discriminants.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelStrings = [...]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// String implements fmt.Stringer.
func (l Level) String() string {
	if int(l) < len(levelStrings) {
		return levelStrings[l]
	}
	return ""
}
