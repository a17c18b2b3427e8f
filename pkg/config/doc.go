// Package config loads per-application, per-mode configuration documents.
//
// Each (application, mode) pair maps to one YAML file:
//
//	$HOME/.config/<app>/<mode>.yaml
//
// The file is created with default content the first time it is opened and
// is never written again by this package. Edit it by hand and Open a new
// Store to pick up the change.
//
// # Opening a Store
//
//	store, err := config.Open("myapp", config.ModeDev, config.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A missing file is seeded with DefaultConfigData, or Options.Defaults when
// set:
//
//	url: https://api.example.com
//	key: abc123
//	secret: def456
//	timeout: 10
//
// # Reading Values
//
//	url, err := store.Lookup("url")                            // *KeyNotFoundError if absent
//	timeout := store.Get("timeout", config.IntValue(30))       // default if absent
//	for _, name := range store.PropertyNames() { ... }
//
// Values are a closed variant (see Kind): null, string, int, float, bool,
// mapping or sequence. Get never converts between kinds.
//
// # Errors
//
// Open fails with *EnvironmentError when HOME is unset, *IOError when the
// directory or file cannot be created or read, and *ParseError when the file
// is not a YAML mapping. Each matches ErrEnvironment, ErrIO or ErrParse with
// errors.Is. Lookup fails with *KeyNotFoundError (ErrKeyNotFound).
//
// # Environment
//
// Options.Env and the path functions take a LookupEnvFunc so tests can supply
// a home directory without touching the process environment.
package config
