package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"mercator-hq/modecfg/pkg/telemetry/logging"
)

// File permissions used when seeding a configuration file.
const (
	dirPerm  = 0o755
	filePerm = 0o600
)

// Recorder receives store events. pkg/telemetry/metrics provides a
// Prometheus implementation.
type Recorder interface {
	// RecordOpen is called once per Open. created reports whether the
	// file was seeded with defaults; properties is the number of loaded keys.
	RecordOpen(app string, mode string, created bool, properties int, err error)

	// RecordLookup is called for every Get and Lookup.
	RecordLookup(app string, mode string, found bool)
}

// Options control how a Store is opened. The zero value reads HOME from the
// process environment, seeds DefaultConfigData and logs to stderr.
type Options struct {
	// Env resolves the home directory variable. Defaults to os.LookupEnv.
	Env LookupEnvFunc

	// Defaults seed a missing file. Defaults to DefaultConfigData().
	Defaults *Mapping

	// Logger receives the creation warning and load debug messages.
	// Defaults to logging.Default().
	Logger *logging.Logger

	// Recorder receives open and lookup events. Optional.
	Recorder Recorder
}

// Store is the read-only, in-memory view of one configuration document.
type Store struct {
	app     string
	mode    Mode
	path    string
	loadID  string
	created bool
	data    *Mapping
	rec     Recorder
}

// Open resolves the file for (app, mode), seeds it with defaults when it does
// not exist, and parses it. Errors are *EnvironmentError, *IOError or
// *ParseError; on error no Store is returned.
func Open(app string, mode Mode, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	defaults := opts.Defaults
	if defaults == nil {
		defaults = DefaultConfigData()
	}

	s, err := open(app, mode, opts.Env, defaults, logger)
	if opts.Recorder != nil {
		created, props := false, 0
		if s != nil {
			created, props = s.created, s.data.Len()
		}
		opts.Recorder.RecordOpen(app, mode.String(), created, props, err)
	}
	if err != nil {
		return nil, err
	}
	s.rec = opts.Recorder
	return s, nil
}

func open(app string, mode Mode, env LookupEnvFunc, defaults *Mapping, logger *logging.Logger) (*Store, error) {
	path, err := ConfigFilePath(env, app, mode)
	if err != nil {
		return nil, err
	}

	created, err := ensureFile(path, defaults)
	if err != nil {
		return nil, err
	}
	if created {
		logger.Warn("created default configuration file",
			"app", app,
			"mode", mode.String(),
			"path", path,
		)
	}

	loadID := uuid.NewString()
	logger.Debug("loading configuration",
		"app", app,
		"mode", mode.String(),
		"path", path,
		"load_id", loadID,
	)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	m, err := decodeDocument(path, data)
	if err != nil {
		return nil, err
	}

	return &Store{
		app:     app,
		mode:    mode,
		path:    path,
		loadID:  loadID,
		created: created,
		data:    m,
	}, nil
}

// ensureFile writes defaults to path unless a file already exists there.
// It reports whether the file was created.
func ensureFile(path string, defaults *Mapping) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, &IOError{Op: "stat", Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return false, &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	content, err := encodeDocument(defaults)
	if err != nil {
		return false, &IOError{Op: "encode", Path: path, Err: err}
	}
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return false, &IOError{Op: "write", Path: path, Err: err}
	}
	return true, nil
}

// Get returns a copy of the value for key, or def unchanged when key is
// absent.
func (s *Store) Get(key string, def Value) Value {
	v, ok := s.data.Get(key)
	s.recordLookup(ok)
	if !ok {
		return def
	}
	return v.clone()
}

// Lookup returns a copy of the value for key or a *KeyNotFoundError.
func (s *Store) Lookup(key string) (Value, error) {
	v, ok := s.data.Get(key)
	s.recordLookup(ok)
	if !ok {
		return Value{}, &KeyNotFoundError{Key: key, Path: s.path}
	}
	return v.clone(), nil
}

// PropertyNames returns the top-level keys in file order.
func (s *Store) PropertyNames() []string {
	return s.data.Keys()
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	return s.data.Has(key)
}

// Len returns the number of top-level keys.
func (s *Store) Len() int {
	return s.data.Len()
}

// Data returns a deep copy of the loaded document.
func (s *Store) Data() *Mapping {
	return s.data.Clone()
}

// App returns the application name the store was opened for.
func (s *Store) App() string { return s.app }

// Mode returns the mode the store was opened for.
func (s *Store) Mode() Mode { return s.mode }

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// LoadID identifies this load in log output.
func (s *Store) LoadID() string { return s.loadID }

// Created reports whether this Open seeded the file with defaults.
func (s *Store) Created() bool { return s.created }

func (s *Store) recordLookup(found bool) {
	if s.rec != nil {
		s.rec.RecordLookup(s.app, s.mode.String(), found)
	}
}
