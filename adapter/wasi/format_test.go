package wasi

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trickstertwo/wasilog"
)

func TestFormat_Separators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  wasilog.Record
		want string
	}{
		{
			name: "module path equal to target is suppressed",
			rec:  wasilog.Record{Target: "app", ModulePath: "app", Message: wasilog.Text("hello")},
			want: "hello",
		},
		{
			name: "module path different from target",
			rec:  wasilog.Record{Target: "app", ModulePath: "app::net", Message: wasilog.Text("hello")},
			want: "app::net: hello",
		},
		{
			name: "file and line without module path",
			rec:  wasilog.Record{Target: "app", File: "main.rs", Line: 42, Message: wasilog.Text("boot")},
			want: "main.rs:42: boot",
		},
		{
			name: "module path, file and line",
			rec:  wasilog.Record{Target: "app", ModulePath: "m", File: "f.rs", Line: 7, Message: wasilog.Text("x")},
			want: "m in f.rs:7: x",
		},
		{
			name: "module path and file",
			rec:  wasilog.Record{Target: "app", ModulePath: "m", File: "f.rs", Message: wasilog.Text("x")},
			want: "m in f.rs: x",
		},
		{
			name: "module path and line",
			rec:  wasilog.Record{Target: "app", ModulePath: "m", Line: 7, Message: wasilog.Text("x")},
			want: "m:7: x",
		},
		{
			name: "line only",
			rec:  wasilog.Record{Target: "app", Line: 9, Message: wasilog.Text("x")},
			want: "9: x",
		},
		{
			name: "suppressed module path with file",
			rec:  wasilog.Record{Target: "app", ModulePath: "app", File: "f.go", Line: 3, Message: wasilog.Text("x")},
			want: "f.go:3: x",
		},
		{
			name: "interpolated message without metadata",
			rec:  wasilog.Record{Target: "app", Message: wasilog.Sprintf("n=%d", 3)},
			want: "n=3",
		},
		{
			name: "empty message with location",
			rec:  wasilog.Record{Target: "app", File: "f.go", Line: 1, Message: wasilog.Text("")},
			want: "f.go:1: ",
		},
		{
			name: "nil message",
			rec:  wasilog.Record{Target: "app"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := tt.rec
			assert.Equal(t, tt.want, Format(&rec))
			assert.Equal(t, tt.want, FormatSlow(&rec))
		})
	}
}

func TestFormat_FastPathMatchesSlowPath(t *testing.T) {
	t.Parallel()

	messages := []wasilog.Message{
		wasilog.Text("hello"),
		wasilog.Text(""),
		wasilog.Text("100%"),
		wasilog.Text("with: colon in text"),
		wasilog.Sprintf("no verbs here"),
	}
	for _, m := range messages {
		rec := wasilog.Record{Level: wasilog.LevelInfo, Target: "app", Message: m}
		_, ok := passThrough(&rec)
		assert.True(t, ok, "expected pass-through for %#v", m)
		assert.Equal(t, FormatSlow(&rec), Format(&rec))
	}
}

func TestFormat_FastPathEligibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  wasilog.Record
		want bool
	}{
		{"plain", wasilog.Record{Target: "t", Message: wasilog.Text("m")}, true},
		{"module path", wasilog.Record{Target: "t", ModulePath: "t", Message: wasilog.Text("m")}, false},
		{"file", wasilog.Record{Target: "t", File: "f", Message: wasilog.Text("m")}, false},
		{"line", wasilog.Record{Target: "t", Line: 1, Message: wasilog.Text("m")}, false},
		{"format args", wasilog.Record{Target: "t", Message: wasilog.Sprintf("%s", "m")}, false},
		{"escaped percent", wasilog.Record{Target: "t", Message: wasilog.Sprintf("100%%")}, false},
		{"lazy", wasilog.Record{Target: "t", Message: wasilog.Lazy(func(w io.Writer) error {
			_, err := io.WriteString(w, "m")
			return err
		})}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := tt.rec
			_, ok := passThrough(&rec)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestFormat_EscapedPercentRendered(t *testing.T) {
	t.Parallel()

	rec := wasilog.Record{Target: "t", Message: wasilog.Sprintf("100%%")}
	assert.Equal(t, "100%", Format(&rec))
}

func TestFormat_LazyMessage(t *testing.T) {
	t.Parallel()

	rec := wasilog.Record{
		Target:     "app",
		ModulePath: "app/db",
		Message: wasilog.Lazy(func(w io.Writer) error {
			_, err := io.WriteString(w, "rendered late")
			return err
		}),
	}
	assert.Equal(t, "app/db: rendered late", Format(&rec))
}

func TestFormat_RenderErrorPanics(t *testing.T) {
	t.Parallel()

	rec := wasilog.Record{
		Target: "app",
		Message: wasilog.Lazy(func(io.Writer) error {
			return errors.New("boom")
		}),
	}
	assert.PanicsWithValue(t, "formatting wasilog.Record message returned an error: boom", func() {
		Format(&rec)
	})
}
