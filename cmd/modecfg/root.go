package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mercator-hq/modecfg/pkg/cli"
	"mercator-hq/modecfg/pkg/config"
)

// Environment variables consulted for flags left unset on the command line.
const (
	envApp       = "MODECFG_APP"
	envMode      = "MODECFG_MODE"
	envOutput    = "MODECFG_OUTPUT"
	envLogLevel  = "MODECFG_LOG_LEVEL"
	envLogFormat = "MODECFG_LOG_FORMAT"
)

var rootFlags struct {
	app             string
	mode            string
	output          string
	logLevel        string
	logFormat       string
	metricsTextfile string
}

// lookupEnv resolves HOME and the MODECFG_* fallbacks. Tests replace it.
var lookupEnv config.LookupEnvFunc = os.LookupEnv

var rootCmd = &cobra.Command{
	Use:   "modecfg",
	Short: "Per-application, per-mode YAML configuration",
	Long: `Modecfg reads the YAML configuration file of an application for one
runtime mode (dev, test, prod, ...).

Files live at $HOME/.config/<app>/<mode>.yaml. A missing file is created
with default content (url, key, secret, timeout) on first use.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepareRoot,
}

// Execute runs the root command.
func Execute() {
	ctx := cli.SetupSignalHandler()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootFlags.app, "app", "a", "", "application name (env "+envApp+")")
	flags.StringVarP(&rootFlags.mode, "mode", "m", string(config.ModeDev), "runtime mode (env "+envMode+")")
	flags.StringVarP(&rootFlags.output, "output", "o", string(cli.FormatText), "output format: text, json, yaml, csv (env "+envOutput+")")
	flags.StringVar(&rootFlags.logLevel, "log-level", "warn", "log level: debug, info, warn, error (env "+envLogLevel+")")
	flags.StringVar(&rootFlags.logFormat, "log-format", "text", "log format: text, json (env "+envLogFormat+")")
	flags.StringVar(&rootFlags.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file on exit")
}

func prepareRoot(cmd *cobra.Command, args []string) error {
	applyEnvOverrides(cmd.Flags())
	return validateRootFlags()
}

// applyEnvOverrides fills flags the user did not set from the environment.
func applyEnvOverrides(flags *pflag.FlagSet) {
	overrides := []struct {
		flag string
		env  string
		dst  *string
	}{
		{"app", envApp, &rootFlags.app},
		{"mode", envMode, &rootFlags.mode},
		{"output", envOutput, &rootFlags.output},
		{"log-level", envLogLevel, &rootFlags.logLevel},
		{"log-format", envLogFormat, &rootFlags.logFormat},
	}

	for _, o := range overrides {
		if flags.Changed(o.flag) {
			continue
		}
		if v, ok := lookupEnv(o.env); ok && v != "" {
			*o.dst = v
		}
	}
}

// validateRootFlags rejects names that would escape the configuration
// directory and unknown output formats.
func validateRootFlags() error {
	if err := validateName("mode", rootFlags.mode); err != nil {
		return err
	}
	if rootFlags.app != "" {
		if err := validateName("app", rootFlags.app); err != nil {
			return err
		}
	}
	if _, err := cli.ParseOutputFormat(rootFlags.output); err != nil {
		return err
	}
	return nil
}

func validateName(field, name string) error {
	switch {
	case name == "":
		return cli.NewConfigError(field, "must not be empty")
	case name == "." || name == "..":
		return cli.NewConfigError(field, fmt.Sprintf("%q is not a valid name", name))
	case strings.ContainsAny(name, `/\`):
		return cli.NewConfigError(field, fmt.Sprintf("%q must not contain a path separator", name))
	}
	return nil
}

// requireApp returns the application name or a ConfigError when unset.
func requireApp() (string, error) {
	if rootFlags.app == "" {
		return "", cli.NewConfigError("app", "application name is required (--app or "+envApp+")")
	}
	return rootFlags.app, nil
}

// exitCode maps command errors to process exit codes: 2 for invalid usage,
// 1 for everything else.
func exitCode(err error) int {
	var cfgErr *cli.ConfigError
	if errors.As(err, &cfgErr) {
		return 2
	}
	return 1
}
