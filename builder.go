package wasilog

// Builder separates construction of a Logger from its representation.
type Builder struct {
	l Logger
}

func NewBuilder() *Builder {
	return &Builder{}
}

// WithTarget sets the target; empty means the calling package path.
func (b *Builder) WithTarget(target string) *Builder {
	b.l.target = target
	return b
}

// WithAdapter binds the Logger to a instead of the installed Adapter.
func (b *Builder) WithAdapter(a Adapter) *Builder {
	b.l.adapter = a
	return b
}

// WithFields binds fields to every entry of the Logger.
func (b *Builder) WithFields(fs ...Field) *Builder {
	b.l.baseFields = append(b.l.baseFields, fs...)
	return b
}

// WithLocation toggles capture of module path, file and line. It is on by
// default; turning it off lets plain messages take the adapter's fast path.
func (b *Builder) WithLocation(on bool) *Builder {
	b.l.noLocation = !on
	return b
}

// Build constructs the Logger.
func (b *Builder) Build() *Logger {
	l := b.l
	l.baseFields = copyFields(nil, b.l.baseFields)
	return &l
}
