package wasi

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/trickstertwo/wasilog"
)

// Config is an explicit, code-first configuration for the wasi adapter.
// One call to Use installs it and returns a ready facade Logger.
type Config struct {
	MinLevel        wasilog.Level // global threshold; zero value is LevelInfo
	Target          string        // target of the returned Logger; empty means the calling package
	DisableLocation bool          // leave module path, file and line out of records
}

// Use installs the Logger, sets the global threshold from cfg and returns a
// facade Logger built from cfg.
func Use(cfg Config) (*wasilog.Logger, error) {
	if _, err := Install(); err != nil {
		return nil, err
	}
	wasilog.SetMinLevel(cfg.MinLevel)
	return wasilog.NewBuilder().
		WithTarget(cfg.Target).
		WithLocation(!cfg.DisableLocation).
		Build(), nil
}

// ConfigFromEnv reads Config from the environment. A nil getenv uses os.Getenv.
//
//	WASILOG_LEVEL:    trace|debug|info|warn|error|off (default info)
//	WASILOG_TARGET:   target of the returned Logger
//	WASILOG_LOCATION: 0|false to leave out module path, file and line
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Config{
		MinLevel: wasilog.LevelInfo,
		Target:   getenv("WASILOG_TARGET"),
	}
	if s := getenv("WASILOG_LEVEL"); s != "" {
		l, err := wasilog.ParseLevel(s)
		if err != nil {
			return Config{}, errors.Wrap(err, "WASILOG_LEVEL")
		}
		cfg.MinLevel = l
	}
	switch strings.ToLower(strings.TrimSpace(getenv("WASILOG_LOCATION"))) {
	case "", "1", "true", "on":
	case "0", "false", "off":
		cfg.DisableLocation = true
	default:
		return Config{}, errors.Errorf("WASILOG_LOCATION: invalid value %q", getenv("WASILOG_LOCATION"))
	}
	return cfg, nil
}
