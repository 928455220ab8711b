// Package host groups native implementations of the wasi:logging/logging
// interface. Each subpackage plays the runtime side of the boundary: it
// receives (level, context, message) and writes the entry to a Go logging
// backend, so guests can run and be tested outside of a component runtime.
//
//	zap:     go.uber.org/zap
//	zerolog: github.com/rs/zerolog
//	slog:    log/slog
package host
