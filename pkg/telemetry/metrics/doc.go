// Package metrics provides Prometheus metrics for configuration stores.
//
// # Overview
//
// A Collector implements config.Recorder. Pass it in config.Options to count
// opens, seeded files and key lookups:
//
//	collector := metrics.NewCollector(&metrics.Config{Enabled: true}, nil)
//	store, err := config.Open("myapp", config.ModeDev, config.Options{
//		Recorder: collector,
//	})
//
// # Metrics
//
//	modecfg_store_opens_total{app,mode,result}     result: ok, environment_error, io_error, parse_error, error
//	modecfg_store_files_created_total{app,mode}
//	modecfg_store_lookups_total{app,mode,result}   result: hit, miss
//	modecfg_store_properties{app,mode}
//
// # Exporting
//
// There is no HTTP endpoint. Short-lived processes write a textfile for the
// node_exporter textfile collector:
//
//	if err := collector.WriteTextfile("/var/lib/node_exporter/modecfg.prom"); err != nil {
//		return err
//	}
//
// # Cardinality Management
//
// Modes are free-form, so the collector caps distinct (app, mode) pairs at
// Config.MaxCardinality (default 1000). Pairs beyond the cap are recorded
// with mode "other".
package metrics
