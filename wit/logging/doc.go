// Package logging binds the wasi:logging/logging interface.
//
// The interface has a single function:
//
//	log: func(level: level, context: string, message: string)
//
// Under GOOS=wasip1 Log calls the component import directly. In every other
// build, and whenever a Host is set with SetHost, Log is served by that Host.
// Native builds default to a console Host on os.Stderr.
package logging
