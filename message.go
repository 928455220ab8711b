package wasilog

import (
	"fmt"
	"io"
	"strings"
)

// Message is the lazily rendered body of a Record.
//
// AsString reports the body when it is already a plain string that needs no
// interpolation. Render writes the full body and may fail only for messages
// built with Lazy.
type Message interface {
	AsString() (string, bool)
	Render(b *strings.Builder) error
}

// Text is a message that is used verbatim.
type Text string

func (t Text) AsString() (string, bool) { return string(t), true }

func (t Text) Render(b *strings.Builder) error {
	b.WriteString(string(t))
	return nil
}

type formatted struct {
	format string
	args   []any
}

// Sprintf returns a message interpolated with fmt on Render. A format without
// arguments and without verbs is reported as a plain string.
func Sprintf(format string, args ...any) Message {
	return formatted{format: format, args: args}
}

func (f formatted) AsString() (string, bool) {
	if len(f.args) == 0 && strings.IndexByte(f.format, '%') < 0 {
		return f.format, true
	}
	return "", false
}

func (f formatted) Render(b *strings.Builder) error {
	if len(f.args) == 0 && strings.IndexByte(f.format, '%') < 0 {
		b.WriteString(f.format)
		return nil
	}
	_, err := fmt.Fprintf(b, f.format, f.args...)
	return err
}

// Lazy is a message rendered by a callback. It is never a plain string.
type Lazy func(w io.Writer) error

func (Lazy) AsString() (string, bool) { return "", false }

func (fn Lazy) Render(b *strings.Builder) error { return fn(b) }
