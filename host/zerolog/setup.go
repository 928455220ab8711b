package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/wasilog/wit/logging"
)

// Config is an explicit, code-first configuration for a zerolog-backed host.
type Config struct {
	Writer             io.Writer // default: os.Stderr
	MinLevel           logging.Level
	Console            bool   // pretty console output instead of JSON
	ConsoleTimeFormat  string // only used if Console==true; default time.RFC3339Nano
	TimestampFieldName string // default "ts"
}

// Use builds a zerolog-backed Host from Config, installs it with
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
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}

	var zl zerolog.Logger
	layout := time.RFC3339Nano
	if cfg.Console {
		if cfg.ConsoleTimeFormat != "" {
			layout = cfg.ConsoleTimeFormat
		}
		// "ts" leads the line in place of zerolog's own timestamp part
		parts := []string{
			cfg.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		}
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:           w,
			PartsOrder:    parts,
			FieldsExclude: []string{cfg.TimestampFieldName},
		})
	} else {
		zl = zerolog.New(w)
	}

	h := NewWithTimestampKey(zl.Level(mapLevel(cfg.MinLevel)), cfg.TimestampFieldName)
	h.tsLayout = layout
	return h
}
