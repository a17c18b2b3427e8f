package config

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	// ErrEnvironment indicates a required environment variable is missing.
	ErrEnvironment = errors.New("environment error")

	// ErrIO indicates a filesystem operation on the configuration file failed.
	ErrIO = errors.New("configuration I/O error")

	// ErrParse indicates the configuration file is not a valid YAML mapping.
	ErrParse = errors.New("configuration parse error")

	// ErrKeyNotFound indicates a strict lookup on an absent key.
	ErrKeyNotFound = errors.New("key not found")
)

// EnvironmentError is returned when the home directory variable is unset.
type EnvironmentError struct {
	Var string
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Var)
}

// Is reports whether target is ErrEnvironment.
func (e *EnvironmentError) Is(target error) bool {
	return target == ErrEnvironment
}

// IOError wraps a failure to create, stat, read or write configuration files.
type IOError struct {
	// Op is the failed operation ("stat", "mkdir", "write", "read", "encode").
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("config %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ParseError is returned when a configuration file cannot be parsed into a
// top-level mapping.
type ParseError struct {
	Path string
	// Line is the 1-based line of the offending node, or 0 when unknown.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse configuration file %q (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to parse configuration file %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// KeyNotFoundError is returned by Store.Lookup for absent keys.
type KeyNotFoundError struct {
	Key  string
	Path string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found in %s", e.Key, e.Path)
}

// Is reports whether target is ErrKeyNotFound.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
