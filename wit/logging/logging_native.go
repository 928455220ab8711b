//go:build !wasip1

package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// The native default prints like a runtime console would.
var console = sync.OnceValue(func() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339Nano}).
		Level(zerolog.TraceLevel).
		With().Timestamp().Logger()
})

func defaultLog(level Level, context, message string) {
	l := console()
	l.WithLevel(consoleLevel(level)).Str("context", context).Msg(message)
}

func consoleLevel(l Level) zerolog.Level {
	switch l {
	case LevelTrace:
		return zerolog.TraceLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
