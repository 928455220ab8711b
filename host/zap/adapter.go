package zap

import (
	"time"

	"github.com/trickstertwo/xclock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/wasilog/wit/logging"
)

// Host serves wasi:logging calls with go.uber.org/zap.
//
// The call's context becomes the zap logger name, and every entry carries an
// RFC3339Nano "ts" string taken from xclock so frozen or offset clocks show
// up in output.
type Host struct {
	l     *zap.Logger
	al    *zap.AtomicLevel // optional, enables SetMinLevel
	tsKey string           // timestamp field key; default "ts"
}

// New creates a host for the provided zap logger.
func New(l *zap.Logger) *Host {
	return NewWithTimestampKey(l, nil, "ts")
}

// NewWithTimestampKey lets callers wire an AtomicLevel and override the
// timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, al *zap.AtomicLevel, tsKey string) *Host {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Host{l: l, al: al, tsKey: tsKey}
}

// Log implements logging.Host.
func (h *Host) Log(level logging.Level, context, message string) {
	l := h.l
	if context != "" {
		l = l.Named(context)
	}

	// Fast path: skip if disabled.
	ce := l.Check(toZapLevel(level), message)
	if ce == nil {
		return
	}
	ce.Write(zap.String(h.tsKey, xclock.Now().UTC().Format(time.RFC3339Nano)))
}

// SetMinLevel updates the backend filter when an AtomicLevel was supplied.
// If not provided, this is a no-op.
func (h *Host) SetMinLevel(l logging.Level) {
	if h.al == nil {
		return
	}
	h.al.SetLevel(toZapLevel(l))
}

// toZapLevel maps wasi levels onto zap. zap has no trace; it folds into debug.
func toZapLevel(l logging.Level) zapcore.Level {
	switch l {
	case logging.LevelTrace, logging.LevelDebug:
		return zapcore.DebugLevel
	case logging.LevelInfo:
		return zapcore.InfoLevel
	case logging.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
