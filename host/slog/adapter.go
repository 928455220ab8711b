package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/wasilog/wit/logging"
)

// Host serves wasi:logging calls with a *slog.Logger.
// It builds slog.Attrs directly for low overhead and uses LogAttrs.
type Host struct {
	l     *slog.Logger
	lv    *slog.LevelVar // optional, enables SetMinLevel
	tsKey string
}

func toSlog(l logging.Level) slog.Level {
	switch l {
	case logging.LevelTrace:
		return slog.LevelDebug - 4
	case logging.LevelDebug:
		return slog.LevelDebug
	case logging.LevelInfo:
		return slog.LevelInfo
	case logging.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func New(l *slog.Logger) *Host {
	return NewWithTimestampKey(l, nil, "ts")
}

// NewWithTimestampKey wires an optional LevelVar and overrides the timestamp
// attribute key (default "ts").
func NewWithTimestampKey(l *slog.Logger, lv *slog.LevelVar, tsKey string) *Host {
	if l == nil {
		l = slog.Default()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Host{l: l, lv: lv, tsKey: tsKey}
}

// Log implements logging.Host.
func (h *Host) Log(level logging.Level, scope, msg string) {
	ctx := context.Background()
	lvl := toSlog(level)
	if !h.l.Enabled(ctx, lvl) {
		return
	}
	h.l.LogAttrs(ctx, lvl, msg,
		slog.String(h.tsKey, xclock.Now().UTC().Format(time.RFC3339Nano)),
		slog.String("context", scope),
	)
}

// SetMinLevel updates the LevelVar when one was supplied.
func (h *Host) SetMinLevel(l logging.Level) {
	if h.lv == nil {
		return
	}
	h.lv.Set(toSlog(l))
}
