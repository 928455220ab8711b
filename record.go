package wasilog

// Metadata is the part of a Record an Adapter may filter on.
type Metadata struct {
	Level  Level
	Target string
}

// Record is a single log entry. It is borrowed for the duration of one
// Adapter.Log call and must not be retained.
//
// Optional fields use their zero value for "absent": an empty ModulePath or
// File, and a Line of 0. KeyValues is nil when no pairs are attached.
type Record struct {
	Level      Level
	Target     string
	ModulePath string
	File       string // trimmed to "dir/file.go" by the facade
	Line       uint32 // 0 is absent: a line 0 is never rendered as ":0"
	Message    Message
	KeyValues  Source
}

func (r *Record) Metadata() Metadata {
	return Metadata{Level: r.Level, Target: r.Target}
}
