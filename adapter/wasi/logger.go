package wasi

import (
	"github.com/trickstertwo/wasilog"
	"github.com/trickstertwo/wasilog/wit/logging"
)

// Logger is a wasilog.Adapter backed by wasi:logging/logging. There is
// exactly one, obtained from Install.
type Logger struct {
	_ struct{}
}

var logger Logger

// Install sets the process-wide wasilog Adapter to the Logger and returns it.
//
// Only the first Install (or wasilog.SetAdapter) in a process succeeds;
// later calls return wasilog.ErrAlreadyInstalled and change nothing. Records
// emitted before Install completes are dropped.
func Install() (*Logger, error) {
	if err := wasilog.SetAdapter(&logger); err != nil {
		return nil, err
	}
	return &logger, nil
}

// MustInstall is Install that panics on error.
func MustInstall() *Logger {
	l, err := Install()
	if err != nil {
		panic(err)
	}
	return l
}

// Enabled is always true. Filtering is the global threshold's job.
func (*Logger) Enabled(wasilog.Metadata) bool { return true }

// Log delivers r synchronously with a single wasi:logging call.
func (*Logger) Log(r *wasilog.Record) {
	logging.Log(MapLevel(r.Level), r.Target, Format(r))
}

// Flush is a no-op: nothing is buffered.
func (*Logger) Flush() {}
