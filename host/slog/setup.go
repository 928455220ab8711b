package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/wasilog/wit/logging"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for a slog-backed host.
type Config struct {
	Writer             io.Writer            // default: os.Stderr
	MinLevel           logging.Level        // slog filter, adjustable via Host.SetMinLevel
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is managed by Use via LevelVar
	TimestampFieldName string               // default "ts"
}

// Use builds a slog-backed Host from Config, installs it with
// logging.SetHost, and returns it.
func Use(cfg Config) *Host {
	h := Build(cfg)
	logging.SetHost(h)
	return h
}

// Build is Use without installing the Host.
func Build(cfg Config) *Host {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	var opts slog.HandlerOptions
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}

	// Use a LevelVar to allow dynamic SetMinLevel on the host.
	lv := new(slog.LevelVar)
	lv.Set(toSlog(cfg.MinLevel))
	opts.Level = lv

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}

	return NewWithTimestampKey(slog.New(h), lv, cfg.TimestampFieldName)
}
