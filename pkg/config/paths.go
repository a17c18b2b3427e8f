package config

import (
	"os"
	"path/filepath"
)

// HomeEnvVar is the environment variable holding the user's home directory.
const HomeEnvVar = "HOME"

// FileExtension is appended to the mode to form the configuration file name.
const FileExtension = ".yaml"

// LookupEnvFunc reads an environment variable. It has the signature of
// os.LookupEnv so tests can inject a fixed environment.
type LookupEnvFunc func(key string) (string, bool)

// Mode names a configuration variant. Any value usable as a file name is
// accepted; the constants below are the conventional ones.
type Mode string

// Conventional modes.
const (
	ModeDev  Mode = "dev"
	ModeTest Mode = "test"
	ModeProd Mode = "prod"
)

// String returns the mode as used in file names.
func (m Mode) String() string {
	return string(m)
}

// ConfigBaseDir returns <home>/.config. HOME set to the empty string is
// treated as unset, since joining it would yield the relative path ".config".
func ConfigBaseDir(env LookupEnvFunc) (string, error) {
	if env == nil {
		env = os.LookupEnv
	}
	home, ok := env(HomeEnvVar)
	if !ok || home == "" {
		return "", &EnvironmentError{Var: HomeEnvVar}
	}
	return filepath.Join(home, ".config"), nil
}

// ConfigDir returns the configuration directory for app. The name is used
// as-is.
func ConfigDir(env LookupEnvFunc, app string) (string, error) {
	base, err := ConfigBaseDir(env)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, app), nil
}

// ConfigFilePath returns the path of the document for (app, mode).
func ConfigFilePath(env LookupEnvFunc, app string, mode Mode) (string, error) {
	dir, err := ConfigDir(env, app)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, mode.String()+FileExtension), nil
}
