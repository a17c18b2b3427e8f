package main

import (
	"github.com/spf13/cobra"

	"mercator-hq/modecfg/pkg/cli"
	"mercator-hq/modecfg/pkg/config"
	"mercator-hq/modecfg/pkg/telemetry/logging"
	"mercator-hq/modecfg/pkg/telemetry/metrics"
)

// session holds what a store-backed command needs: a logger on the
// command's stderr, the output format and an optional metrics collector.
type session struct {
	cmd       *cobra.Command
	app       string
	mode      config.Mode
	format    cli.OutputFormat
	logger    *logging.Logger
	collector *metrics.Collector
}

func newSession(cmd *cobra.Command) (*session, error) {
	app, err := requireApp()
	if err != nil {
		return nil, err
	}

	format, err := cli.ParseOutputFormat(rootFlags.output)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:         rootFlags.logLevel,
		Format:        rootFlags.logFormat,
		RedactSecrets: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, cli.NewConfigError("log", err.Error())
	}

	s := &session{
		cmd:    cmd,
		app:    app,
		mode:   config.Mode(rootFlags.mode),
		format: format,
		logger: logger,
	}
	if rootFlags.metricsTextfile != "" {
		s.collector = metrics.NewCollector(&metrics.Config{Enabled: true}, nil)
	}
	return s, nil
}

// open opens the store for the session's app and mode.
func (s *session) open() (*config.Store, error) {
	opts := config.Options{
		Env:    lookupEnv,
		Logger: s.logger,
	}
	if s.collector != nil {
		opts.Recorder = s.collector
	}
	return config.Open(s.app, s.mode, opts)
}

// render writes data to the command's stdout in the session's format.
func (s *session) render(data interface{}) error {
	return cli.NewFormatter(s.format).FormatTo(s.cmd.OutOrStdout(), data)
}

// close writes the metrics textfile when one was requested. Failures are
// logged, not returned, so they never mask the command's own result.
func (s *session) close() {
	if s.collector == nil {
		return
	}
	if err := s.collector.WriteTextfile(rootFlags.metricsTextfile); err != nil {
		s.logger.Warn("failed to write metrics textfile",
			"path", rootFlags.metricsTextfile,
			"error", err,
		)
	}
}

// properties converts a mapping into ordered output rows.
func properties(m *config.Mapping) []cli.Property {
	keys := m.Keys()
	rows := make([]cli.Property, 0, len(keys))
	for _, k := range keys {
		v, _ := m.Get(k)
		rows = append(rows, cli.Property{Key: k, Value: v})
	}
	return rows
}
