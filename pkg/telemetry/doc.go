// Package telemetry groups the observability packages used by modecfg.
//
// # Components
//
//   - logging: Structured logging with secret redaction
//   - metrics: Prometheus metrics for configuration stores
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "debug", Format: "json"})
//	if err != nil {
//		return err
//	}
//	collector := metrics.NewCollector(&metrics.Config{Enabled: true}, nil)
//
//	store, err := config.Open("myapp", config.ModeProd, config.Options{
//		Logger:   logger,
//		Recorder: collector,
//	})
package telemetry
