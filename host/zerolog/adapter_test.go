package zerolog

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/wasilog/wit/logging"
)

func TestHost_JSON_EmitsTSAndContext(t *testing.T) {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	at := time.Date(2030, 2, 2, 3, 4, 5, 0, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(at))

	var buf bytes.Buffer
	h := New(zerolog.New(&buf))
	h.Log(logging.LevelInfo, "app", "main.go:42: boot")

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), "line=%s", buf.String())
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, "main.go:42: boot", m["message"])
	assert.Equal(t, "app", m["context"])
	assert.Equal(t, at.Format(time.RFC3339Nano), m["ts"])
}

func TestHost_LevelMapping(t *testing.T) {
	var buf bytes.Buffer
	h := New(zerolog.New(&buf).Level(zerolog.TraceLevel))

	h.Log(logging.LevelTrace, "c", "t")
	h.Log(logging.LevelDebug, "c", "d")
	h.Log(logging.LevelInfo, "c", "i")
	h.Log(logging.LevelWarn, "c", "w")
	h.Log(logging.LevelError, "c", "e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	want := []string{"trace", "debug", "info", "warn", "error"}
	for i, line := range lines {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		assert.Equal(t, want[i], m["level"], "line %d", i)
	}
}

func TestBuild_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	h := Build(Config{Writer: &buf, MinLevel: logging.LevelWarn})

	h.Log(logging.LevelInfo, "c", "dropped")
	assert.Empty(t, buf.String())

	h.SetMinLevel(logging.LevelTrace)
	h.Log(logging.LevelTrace, "c", "kept")
	assert.Contains(t, buf.String(), `"message":"kept"`)
}

func TestBuild_Console(t *testing.T) {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	xclock.SetDefault(xclock.NewFrozen(time.Date(2030, 2, 2, 15, 4, 0, 0, time.UTC)))

	globalTS := zerolog.TimestampFieldName

	var buf bytes.Buffer
	h := Build(Config{
		Writer:            &buf,
		MinLevel:          logging.LevelInfo,
		Console:           true,
		ConsoleTimeFormat: time.Kitchen,
	})

	h.Log(logging.LevelError, "guest", "went wrong")
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "3:04PM"), "line=%q", out)
	assert.Contains(t, out, "went wrong")
	assert.Contains(t, out, "guest")
	assert.Equal(t, 1, strings.Count(out, "3:04PM"), "ts printed once")
	assert.Equal(t, globalTS, zerolog.TimestampFieldName, "console mode leaves zerolog globals alone")
}

func TestHost_ConcurrentLogAndSetMinLevel(t *testing.T) {
	h := Build(Config{Writer: io.Discard, MinLevel: logging.LevelInfo})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				h.Log(logging.LevelDebug, "c", "m")
			}
		}()
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if (i+j)%2 == 0 {
					h.SetMinLevel(logging.LevelTrace)
				} else {
					h.SetMinLevel(logging.LevelError)
				}
			}
		}(i)
	}
	wg.Wait()

	var buf bytes.Buffer
	h = Build(Config{Writer: &buf, MinLevel: logging.LevelError})
	h.SetMinLevel(logging.LevelDebug)
	h.Log(logging.LevelDebug, "c", "after")
	assert.Contains(t, buf.String(), `"message":"after"`)
}
