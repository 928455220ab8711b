package logging

import "sync/atomic"

//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks Host

// Host serves Log outside of a component runtime. Implementations must be
// safe for concurrent use.
type Host interface {
	Log(level Level, context, message string)
}

// HostFunc adapter.
type HostFunc func(level Level, context, message string)

func (f HostFunc) Log(level Level, context, message string) { f(level, context, message) }

type hostRef struct {
	h Host
}

var host atomic.Pointer[hostRef]

// SetHost replaces the Host and returns the previous one. A nil Host restores
// the build default.
func SetHost(h Host) Host {
	var next *hostRef
	if h != nil {
		next = &hostRef{h: h}
	}
	if prev := host.Swap(next); prev != nil {
		return prev.h
	}
	return nil
}

// CurrentHost returns the Host set with SetHost, or nil.
func CurrentHost() Host {
	if ref := host.Load(); ref != nil {
		return ref.h
	}
	return nil
}

// Log delivers one entry. It has no result: any failure belongs to the
// receiving side.
func Log(level Level, context, message string) {
	if ref := host.Load(); ref != nil {
		ref.h.Log(level, context, message)
		return
	}
	defaultLog(level, context, message)
}
