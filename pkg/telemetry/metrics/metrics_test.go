package metrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"mercator-hq/modecfg/pkg/config"
	"mercator-hq/modecfg/pkg/telemetry/logging"
)

// Helper function to create test config
func testConfig() *Config {
	return &Config{
		Enabled:   true,
		Namespace: "test",
		Subsystem: "store",
	}
}

func TestCollector_NewCollector(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector == nil {
		t.Fatal("Expected non-nil collector")
	}
	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
	if cfg.MaxCardinality != 1000 {
		t.Errorf("MaxCardinality default = %d, want 1000", cfg.MaxCardinality)
	}
}

func TestCollector_Defaults(t *testing.T) {
	cfg := &Config{Enabled: true}
	collector := NewCollector(cfg, nil)

	if collector.Registry() == nil {
		t.Fatal("Expected a registry to be created")
	}
	if cfg.Namespace != "modecfg" || cfg.Subsystem != "store" {
		t.Errorf("Namespace, Subsystem = %q, %q", cfg.Namespace, cfg.Subsystem)
	}
}

func TestCollector_RecordOpen(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	sm := collector.storeMetrics

	collector.RecordOpen("app", "dev", true, 4, nil)
	collector.RecordOpen("app", "dev", false, 4, nil)
	collector.RecordOpen("app", "dev", false, 0, &config.ParseError{Path: "x", Err: errors.New("bad")})

	if got := testutil.ToFloat64(sm.opensTotal.WithLabelValues("app", "dev", ResultOK)); got != 2 {
		t.Errorf("opens ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(sm.opensTotal.WithLabelValues("app", "dev", ResultParseError)); got != 1 {
		t.Errorf("opens parse_error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(sm.filesCreatedTotal.WithLabelValues("app", "dev")); got != 1 {
		t.Errorf("files created = %v, want 1", got)
	}
	if got := testutil.ToFloat64(sm.properties.WithLabelValues("app", "dev")); got != 4 {
		t.Errorf("properties = %v, want 4", got)
	}
}

func TestCollector_RecordLookup(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	sm := collector.storeMetrics

	collector.RecordLookup("app", "prod", true)
	collector.RecordLookup("app", "prod", true)
	collector.RecordLookup("app", "prod", false)

	if got := testutil.ToFloat64(sm.lookupsTotal.WithLabelValues("app", "prod", ResultHit)); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(sm.lookupsTotal.WithLabelValues("app", "prod", ResultMiss)); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, nil)

	collector.RecordOpen("app", "dev", true, 4, nil)
	collector.RecordLookup("app", "dev", true)

	if n := testutil.CollectAndCount(collector.storeMetrics.opensTotal); n != 0 {
		t.Errorf("disabled collector recorded %d open series", n)
	}
	if n := testutil.CollectAndCount(collector.storeMetrics.lookupsTotal); n != 0 {
		t.Errorf("disabled collector recorded %d lookup series", n)
	}
}

func TestCollector_CardinalityLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxCardinality = 2
	collector := NewCollector(cfg, nil)

	for i := 0; i < 5; i++ {
		collector.RecordOpen("app", fmt.Sprintf("mode-%d", i), false, 1, nil)
	}

	sm := collector.storeMetrics
	if got := testutil.ToFloat64(sm.opensTotal.WithLabelValues("app", OtherLabel, ResultOK)); got != 3 {
		t.Errorf("opens aggregated into other = %v, want 3", got)
	}
	if got := testutil.ToFloat64(sm.opensTotal.WithLabelValues("app", "mode-1", ResultOK)); got != 1 {
		t.Errorf("opens for mode-1 = %v, want 1", got)
	}
}

func TestOpenResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ResultOK},
		{&config.EnvironmentError{Var: "HOME"}, ResultEnvironmentError},
		{&config.IOError{Op: "write", Path: "x", Err: os.ErrPermission}, ResultIOError},
		{&config.ParseError{Path: "x", Err: errors.New("bad")}, ResultParseError},
		{fmt.Errorf("wrapped: %w", &config.IOError{Op: "read", Err: os.ErrNotExist}), ResultIOError},
		{errors.New("other"), ResultError},
	}
	for _, tt := range tests {
		if got := OpenResult(tt.err); got != tt.want {
			t.Errorf("OpenResult(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestCollector_WithStore(t *testing.T) {
	home := t.TempDir()
	collector := NewCollector(testConfig(), nil)
	opts := config.Options{
		Env: func(key string) (string, bool) {
			if key == config.HomeEnvVar {
				return home, true
			}
			return "", false
		},
		Logger:   logging.Nop(),
		Recorder: collector,
	}

	s, err := config.Open("svc", config.ModeTest, opts)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	s.Get("url", config.NullValue())
	if _, err := s.Lookup("missing"); err == nil {
		t.Fatal("expected lookup error")
	}

	sm := collector.storeMetrics
	if got := testutil.ToFloat64(sm.filesCreatedTotal.WithLabelValues("svc", "test")); got != 1 {
		t.Errorf("files created = %v, want 1", got)
	}
	if got := testutil.ToFloat64(sm.lookupsTotal.WithLabelValues("svc", "test", ResultMiss)); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}

	path := filepath.Join(t.TempDir(), "modecfg.prom")
	if err := collector.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read textfile: %v", err)
	}
	if !strings.Contains(string(data), `test_store_opens_total{app="svc",mode="test",result="ok"} 1`) {
		t.Errorf("textfile missing opens_total series:\n%s", data)
	}
}

func TestCardinalityLimiter(t *testing.T) {
	cl := NewCardinalityLimiter(2)

	if !cl.Allow("a") || !cl.Allow("b") {
		t.Fatal("expected first two label sets to be allowed")
	}
	if cl.Allow("c") {
		t.Error("expected third label set to be rejected")
	}
	if !cl.Allow("a") {
		t.Error("expected existing label set to stay allowed")
	}
	if cl.Allow("d") {
		t.Error("expected limit to hold for new label sets")
	}
}
