package wasi

import (
	"strconv"

	"github.com/trickstertwo/wasilog"
	"github.com/trickstertwo/wasilog/wit/logging"
)

// MapLevel converts a record level to the wasi:logging level, one to one.
func MapLevel(l wasilog.Level) logging.Level {
	switch l {
	case wasilog.LevelError:
		return logging.LevelError
	case wasilog.LevelWarn:
		return logging.LevelWarn
	case wasilog.LevelInfo:
		return logging.LevelInfo
	case wasilog.LevelDebug:
		return logging.LevelDebug
	case wasilog.LevelTrace:
		return logging.LevelTrace
	}
	// Records only carry the five levels above.
	panic("wasi: record with invalid level " + strconv.Itoa(int(l)))
}
