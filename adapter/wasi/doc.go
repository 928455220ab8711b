// Package wasi provides a wasilog Adapter backed by the wasi:logging/logging
// interface.
//
// Install it once in the top-level component, e.g. in main, and set the
// global threshold so entries are actually recorded:
//
//	func main() {
//		if _, err := wasi.Install(); err != nil {
//			panic(err)
//		}
//		wasilog.SetMinLevel(wasilog.LevelInfo)
//
//		wasilog.Error().Msg("something went really wrong")
//		wasilog.Info().Str("user", "ada").Msg("this is good to know")
//		wasilog.Debug().Msg("not recorded at info")
//	}
//
// Each record becomes one log(level, context, message) call, where context
// is the record target and message is plain text: the module path (when it
// differs from the target), file and line, then the message, then the
// key-value pairs as {k: v, ...}.
//
// Build with -tags wasilog_nokv to leave key-value pairs out of messages.
package wasi
