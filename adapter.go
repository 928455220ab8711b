package wasilog

// Adapter is the logging backend Strategy. Exactly one Adapter is installed
// per process via SetAdapter.
//
// Log is called synchronously on the caller's goroutine, and may be called
// concurrently. Implementations own any serialization they need.
type Adapter interface {
	Enabled(md Metadata) bool
	Log(r *Record)
	Flush()
}
