package wasilog

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	// ErrAlreadyInstalled is returned by SetAdapter when an Adapter is
	// already installed. The installed Adapter is left untouched.
	ErrAlreadyInstalled = errors.New("wasilog: an adapter is already installed")

	// ErrNoAdapter is returned when a nil Adapter is passed where one is required.
	ErrNoAdapter = errors.New("wasilog: adapter is nil")
)

// registry holds the process-wide Adapter. It is set at most once.
type registry struct {
	p atomic.Pointer[installed]
}

type installed struct {
	a Adapter
}

func (r *registry) install(a Adapter) error {
	if a == nil {
		return ErrNoAdapter
	}
	if !r.p.CompareAndSwap(nil, &installed{a: a}) {
		return ErrAlreadyInstalled
	}
	return nil
}

func (r *registry) load() Adapter {
	if in := r.p.Load(); in != nil {
		return in.a
	}
	return nopAdapter{}
}

var global registry

// SetAdapter installs a as the process-wide Adapter. Only the first call
// succeeds; concurrent callers race safely and exactly one wins.
func SetAdapter(a Adapter) error { return global.install(a) }

// Installed returns the process-wide Adapter, or a no-op Adapter if none has
// been installed yet. Records logged before installation are dropped.
func Installed() Adapter { return global.load() }

// Flush flushes the installed Adapter.
func Flush() { Installed().Flush() }

type nopAdapter struct{}

func (nopAdapter) Enabled(Metadata) bool { return false }
func (nopAdapter) Log(*Record)           {}
func (nopAdapter) Flush()                {}

// Global threshold. Records below it never reach the Adapter.
var minLevel atomic.Int64

func init() {
	minLevel.Store(int64(LevelOff))
}

// SetMinLevel sets the process-wide threshold. The default is LevelOff.
func SetMinLevel(l Level) { minLevel.Store(int64(l)) }

// MinLevel returns the process-wide threshold.
func MinLevel() Level { return Level(minLevel.Load()) }

// Enabled reports whether records at level l pass the global threshold.
func Enabled(l Level) bool { return l >= MinLevel() }
