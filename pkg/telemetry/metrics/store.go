package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics tracks configuration store activity.
//
// Metrics:
//   - modecfg_store_opens_total: Opens by app, mode and result
//   - modecfg_store_files_created_total: Files seeded with defaults
//   - modecfg_store_lookups_total: Get/Lookup calls by result (hit, miss)
//   - modecfg_store_properties: Top-level keys in the last loaded document
type StoreMetrics struct {
	opensTotal *prometheus.CounterVec

	filesCreatedTotal *prometheus.CounterVec

	lookupsTotal *prometheus.CounterVec

	properties *prometheus.GaugeVec
}

// NewStoreMetrics creates and registers store metrics with the provided registry.
func NewStoreMetrics(cfg *Config, registry *prometheus.Registry) *StoreMetrics {
	sm := &StoreMetrics{
		opensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "opens_total",
				Help:      "Total number of configuration store opens",
			},
			[]string{"app", "mode", "result"},
		),

		filesCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "files_created_total",
				Help:      "Total number of configuration files created with defaults",
			},
			[]string{"app", "mode"},
		),

		lookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "lookups_total",
				Help:      "Total number of configuration key lookups",
			},
			[]string{"app", "mode", "result"},
		),

		properties: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "properties",
				Help:      "Number of top-level properties in the last loaded document",
			},
			[]string{"app", "mode"},
		),
	}

	registry.MustRegister(
		sm.opensTotal,
		sm.filesCreatedTotal,
		sm.lookupsTotal,
		sm.properties,
	)

	return sm
}

// RecordOpen increments the open counter.
func (sm *StoreMetrics) RecordOpen(app, mode, result string) {
	sm.opensTotal.WithLabelValues(app, mode, result).Inc()
}

// RecordCreated increments the created-files counter.
func (sm *StoreMetrics) RecordCreated(app, mode string) {
	sm.filesCreatedTotal.WithLabelValues(app, mode).Inc()
}

// RecordLookup increments the lookup counter.
func (sm *StoreMetrics) RecordLookup(app, mode, result string) {
	sm.lookupsTotal.WithLabelValues(app, mode, result).Inc()
}

// SetProperties sets the property gauge.
func (sm *StoreMetrics) SetProperties(app, mode string, n int) {
	sm.properties.WithLabelValues(app, mode).Set(float64(n))
}
