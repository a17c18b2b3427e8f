package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/modecfg/pkg/config"
)

// Config controls metric naming and cardinality.
type Config struct {
	// Enabled turns recording on; a disabled collector ignores all events.
	Enabled bool

	// Namespace and Subsystem prefix every metric name.
	Namespace string
	Subsystem string

	// MaxCardinality bounds the number of distinct (app, mode) label pairs.
	// Further pairs are recorded with mode "other".
	MaxCardinality int
}

// Open results used as the "result" label of opens_total.
const (
	ResultOK               = "ok"
	ResultEnvironmentError = "environment_error"
	ResultIOError          = "io_error"
	ResultParseError       = "parse_error"
	ResultError            = "error"
)

// Lookup results used as the "result" label of lookups_total.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// OtherLabel replaces label values beyond the cardinality limit.
const OtherLabel = "other"

// Collector records configuration store events as Prometheus metrics. It
// implements config.Recorder.
type Collector struct {
	config   *Config
	registry *prometheus.Registry

	storeMetrics *StoreMetrics

	cardinalityLimiter *CardinalityLimiter
}

var _ config.Recorder = (*Collector)(nil)

// NewCollector creates a collector and registers its metrics with registry.
// A nil registry gets a fresh one.
//
//	collector := metrics.NewCollector(&metrics.Config{Enabled: true}, nil)
//	store, err := config.Open("myapp", config.ModeDev, config.Options{Recorder: collector})
func NewCollector(cfg *Config, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "modecfg"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "store"
	}
	if cfg.MaxCardinality <= 0 {
		cfg.MaxCardinality = 1000
	}

	return &Collector{
		config:             cfg,
		registry:           registry,
		storeMetrics:       NewStoreMetrics(cfg, registry),
		cardinalityLimiter: NewCardinalityLimiter(cfg.MaxCardinality),
	}
}

// RecordOpen records the outcome of config.Open.
func (c *Collector) RecordOpen(app, mode string, created bool, properties int, err error) {
	if !c.config.Enabled {
		return
	}

	mode = c.limitMode(app, mode)
	result := OpenResult(err)
	c.storeMetrics.RecordOpen(app, mode, result)
	if err != nil {
		return
	}
	if created {
		c.storeMetrics.RecordCreated(app, mode)
	}
	c.storeMetrics.SetProperties(app, mode, properties)
}

// RecordLookup records a Get or Lookup on a store.
func (c *Collector) RecordLookup(app, mode string, found bool) {
	if !c.config.Enabled {
		return
	}

	result := ResultMiss
	if found {
		result = ResultHit
	}
	c.storeMetrics.RecordLookup(app, c.limitMode(app, mode), result)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the current metrics in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

func (c *Collector) limitMode(app, mode string) string {
	if !c.cardinalityLimiter.Allow(app + ":" + mode) {
		return OtherLabel
	}
	return mode
}

// OpenResult classifies an Open error into a result label.
func OpenResult(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, config.ErrEnvironment):
		return ResultEnvironmentError
	case errors.Is(err, config.ErrIO):
		return ResultIOError
	case errors.Is(err, config.ErrParse):
		return ResultParseError
	default:
		return ResultError
	}
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label combinations.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow checks if a label set is allowed. Returns true if the label set
// already exists or if we haven't reached the cardinality limit yet.
func (cl *CardinalityLimiter) Allow(labelSet string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelSet]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	// Double-check after acquiring write lock
	if _, exists := cl.current[labelSet]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[labelSet] = struct{}{}
	return true
}
