package config

import (
	"errors"
	"path/filepath"
	"testing"
)

// fixedEnv returns a LookupEnvFunc backed by vars.
func fixedEnv(vars map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func homeEnv(home string) LookupEnvFunc {
	return fixedEnv(map[string]string{HomeEnvVar: home})
}

func TestConfigBaseDir(t *testing.T) {
	got, err := ConfigBaseDir(homeEnv("/home/alice"))
	if err != nil {
		t.Fatalf("ConfigBaseDir() error = %v", err)
	}
	want := filepath.Join("/home/alice", ".config")
	if got != want {
		t.Errorf("ConfigBaseDir() = %q, want %q", got, want)
	}
}

func TestConfigBaseDir_MissingHome(t *testing.T) {
	tests := []struct {
		name string
		env  LookupEnvFunc
	}{
		{name: "unset", env: fixedEnv(nil)},
		{name: "empty", env: homeEnv("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConfigBaseDir(tt.env)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrEnvironment) {
				t.Errorf("expected ErrEnvironment, got %v", err)
			}
			var envErr *EnvironmentError
			if !errors.As(err, &envErr) {
				t.Fatalf("expected *EnvironmentError, got %T", err)
			}
			if envErr.Var != HomeEnvVar {
				t.Errorf("Var = %q, want %q", envErr.Var, HomeEnvVar)
			}
		})
	}
}

func TestConfigDir_JoinsBaseDir(t *testing.T) {
	env := homeEnv("/home/alice")
	apps := []string{"myapp", "my app", "nested/app", "."}

	base, err := ConfigBaseDir(env)
	if err != nil {
		t.Fatalf("ConfigBaseDir() error = %v", err)
	}
	for _, app := range apps {
		got, err := ConfigDir(env, app)
		if err != nil {
			t.Fatalf("ConfigDir(%q) error = %v", app, err)
		}
		if want := filepath.Join(base, app); got != want {
			t.Errorf("ConfigDir(%q) = %q, want %q", app, got, want)
		}
	}
}

func TestConfigFilePath(t *testing.T) {
	env := homeEnv("/home/alice")
	modes := []Mode{ModeDev, ModeTest, ModeProd, Mode("staging-eu")}

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			dir, err := ConfigDir(env, "myapp")
			if err != nil {
				t.Fatalf("ConfigDir() error = %v", err)
			}
			got, err := ConfigFilePath(env, "myapp", mode)
			if err != nil {
				t.Fatalf("ConfigFilePath() error = %v", err)
			}
			if want := filepath.Join(dir, string(mode)+".yaml"); got != want {
				t.Errorf("ConfigFilePath() = %q, want %q", got, want)
			}
		})
	}
}

func TestConfigFilePath_MissingHome(t *testing.T) {
	_, err := ConfigFilePath(fixedEnv(nil), "myapp", ModeDev)
	if !errors.Is(err, ErrEnvironment) {
		t.Errorf("expected ErrEnvironment, got %v", err)
	}
}

func TestConfigBaseDir_ProcessEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnvVar, home)

	got, err := ConfigBaseDir(nil)
	if err != nil {
		t.Fatalf("ConfigBaseDir(nil) error = %v", err)
	}
	if want := filepath.Join(home, ".config"); got != want {
		t.Errorf("ConfigBaseDir(nil) = %q, want %q", got, want)
	}
}
