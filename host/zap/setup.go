package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/wasilog/wit/logging"
)

// Config is an explicit, code-first configuration for a zap-backed host.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer // default: os.Stderr
	MinLevel           logging.Level
	Console            bool                  // console-like output via zapcore.NewConsoleEncoder
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"
}

// Use builds a zap-backed Host from Config, installs it with
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

	// Encoder config defaults: do not let zap inject its own time (the host provides "ts")
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "",
			LevelKey:       "level",
			NameKey:        "context",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		}
	} else {
		encCfg.TimeKey = ""
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	// Use AtomicLevel so Host.SetMinLevel can adjust dynamically.
	al := zap.NewAtomicLevelAt(toZapLevel(cfg.MinLevel))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)

	return NewWithTimestampKey(zap.New(core), &al, cfg.TimestampFieldName)
}
