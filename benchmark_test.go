package wasilog

import (
	"testing"
	"time"
)

type benchAdapter struct{}

func (benchAdapter) Enabled(Metadata) bool { return true }
func (benchAdapter) Flush()                {}
func (benchAdapter) Log(*Record)           {}

func newBenchLogger(b *testing.B, min Level, location bool) *Logger {
	b.Helper()
	old := MinLevel()
	SetMinLevel(min)
	b.Cleanup(func() { SetMinLevel(old) })
	return NewBuilder().
		WithTarget("bench").
		WithAdapter(benchAdapter{}).
		WithLocation(location).
		Build()
}

func BenchmarkInfo_NoFields(b *testing.B) {
	l := newBenchLogger(b, LevelDebug, false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().Msg("ok")
	}
}

func BenchmarkInfo_NoFields_Location(b *testing.B) {
	l := newBenchLogger(b, LevelDebug, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().Msg("ok")
	}
}

func BenchmarkInfo_5Fields(b *testing.B) {
	l := newBenchLogger(b, LevelDebug, false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().
			Str("a", "b").
			Int("i", i).
			Bool("ok", true).
			Dur("d", time.Millisecond*25).
			Float64("f", 1.23).
			Msg("five")
	}
}

func BenchmarkFiltered_10Fields(b *testing.B) {
	// Disabled events are nil; field builders are no-ops.
	l := newBenchLogger(b, LevelError, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().
			Str("a", "b").
			Str("c", "d").
			Str("e", "f").
			Str("g", "h").
			Str("i", "j").
			Int("k", i).
			Int64("l", int64(i)).
			Uint64("m", uint64(i)).
			Bool("n", i%2 == 0).
			Dur("o", time.Second).
			Msg("ten-filtered")
	}
}

func BenchmarkChild_Bound4_Event4(b *testing.B) {
	l := newBenchLogger(b, LevelDebug, false)
	child := l.With(
		Field{K: "svc", Kind: KindString, Str: "api"},
		Field{K: "ver", Kind: KindString, Str: "1.0.0"},
		Field{K: "region", Kind: KindString, Str: "eu-west-1"},
		Field{K: "debug", Kind: KindBool, Bool: true},
	)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		child.Info().
			Str("path", "/healthz").
			Int("code", 200).
			Dur("lat", 2*time.Millisecond).
			Bool("hit", true).
			Msg("ok")
	}
}

func BenchmarkParallel_10Fields(b *testing.B) {
	l := newBenchLogger(b, LevelDebug, true)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Debug().
				Str("k1", "v1").
				Str("k2", "v2").
				Str("k3", "v3").
				Str("k4", "v4").
				Int("i1", i).
				Int64("i2", int64(i)).
				Uint64("u1", uint64(i)).
				Bool("b1", i%2 == 0).
				Dur("d1", time.Millisecond).
				Float64("f1", 3.14).
				Msg("p")
			i++
		}
	})
}
