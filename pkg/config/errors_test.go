package config

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "environment",
			err:  &EnvironmentError{Var: "HOME"},
			want: "environment variable HOME is not set",
		},
		{
			name: "io",
			err:  &IOError{Op: "write", Path: "/tmp/x.yaml", Err: fs.ErrPermission},
			want: "config write /tmp/x.yaml: permission denied",
		},
		{
			name: "parse with line",
			err:  &ParseError{Path: "x.yaml", Line: 3, Err: errors.New(`duplicate key "a"`)},
			want: `failed to parse configuration file "x.yaml" (line 3): duplicate key "a"`,
		},
		{
			name: "parse without line",
			err:  &ParseError{Path: "x.yaml", Err: errors.New("boom")},
			want: `failed to parse configuration file "x.yaml": boom`,
		},
		{
			name: "key not found",
			err:  &KeyNotFoundError{Key: "url", Path: "x.yaml"},
			want: `key "url" not found in x.yaml`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorSentinels(t *testing.T) {
	ioErr := &IOError{Op: "read", Path: "x", Err: fs.ErrNotExist}
	if !errors.Is(ioErr, ErrIO) {
		t.Error("IOError should match ErrIO")
	}
	if !errors.Is(ioErr, fs.ErrNotExist) {
		t.Error("IOError should unwrap to its cause")
	}
	if errors.Is(ioErr, ErrParse) {
		t.Error("IOError should not match ErrParse")
	}

	cause := errors.New("yaml: line 1: did not find expected node content")
	parseErr := &ParseError{Path: "x", Err: cause}
	if !errors.Is(parseErr, ErrParse) || !errors.Is(parseErr, cause) {
		t.Error("ParseError should match ErrParse and its cause")
	}

	if !errors.Is(&EnvironmentError{Var: "HOME"}, ErrEnvironment) {
		t.Error("EnvironmentError should match ErrEnvironment")
	}
	if !errors.Is(&KeyNotFoundError{Key: "k"}, ErrKeyNotFound) {
		t.Error("KeyNotFoundError should match ErrKeyNotFound")
	}
}
