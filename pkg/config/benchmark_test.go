package config

import (
	"testing"

	"mercator-hq/modecfg/pkg/telemetry/logging"
)

func BenchmarkOpen_Existing(b *testing.B) {
	home := b.TempDir()
	opts := Options{Env: homeEnv(home), Logger: logging.Nop()}
	if _, err := Open("bench", ModeDev, opts); err != nil {
		b.Fatalf("Open() error = %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Open("bench", ModeDev, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStore_Lookup(b *testing.B) {
	home := b.TempDir()
	s, err := Open("bench", ModeDev, Options{Env: homeEnv(home), Logger: logging.Nop()})
	if err != nil {
		b.Fatalf("Open() error = %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Lookup("timeout"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeDocument(b *testing.B) {
	data, err := encodeDocument(DefaultConfigData())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decodeDocument("bench.yaml", data); err != nil {
			b.Fatal(err)
		}
	}
}
