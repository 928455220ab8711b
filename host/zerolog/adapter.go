package zerolog

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/wasilog/wit/logging"
)

// Host serves wasi:logging calls with rs/zerolog.
//
// The call's context is written as a "context" string field and the entry
// carries a "ts" string taken from xclock, RFC3339Nano unless set otherwise.
type Host struct {
	l        zerolog.Logger // always at trace level; min filters
	min      atomic.Int32   // zerolog.Level
	tsKey    string
	tsLayout string
}

func New(l zerolog.Logger) *Host {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l zerolog.Logger, tsKey string) *Host {
	if tsKey == "" {
		tsKey = "ts"
	}
	h := &Host{l: l.Level(zerolog.TraceLevel), tsKey: tsKey, tsLayout: time.RFC3339Nano}
	h.min.Store(int32(l.GetLevel()))
	return h
}

// Log implements logging.Host.
func (h *Host) Log(level logging.Level, context, message string) {
	zlvl := mapLevel(level)

	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < zerolog.Level(h.min.Load()) {
		return
	}

	h.l.WithLevel(zlvl).
		Str(h.tsKey, xclock.Now().UTC().Format(h.tsLayout)).
		Str("context", context).
		Msg(message)
}

// SetMinLevel changes the filter. It is safe to call while Log runs.
func (h *Host) SetMinLevel(l logging.Level) {
	h.min.Store(int32(mapLevel(l)))
}

func mapLevel(l logging.Level) zerolog.Level {
	switch l {
	case logging.LevelTrace:
		return zerolog.TraceLevel
	case logging.LevelDebug:
		return zerolog.DebugLevel
	case logging.LevelInfo:
		return zerolog.InfoLevel
	case logging.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
