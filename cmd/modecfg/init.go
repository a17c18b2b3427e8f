package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/modecfg/pkg/cli"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration file with defaults",
	Long: `Create the configuration file for --app and --mode with default content
if it does not exist. An existing file is left untouched.

Examples:
  modecfg init --app billing --mode prod`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// initResult is the structured output of init.
type initResult struct {
	Path    string `json:"path" yaml:"path"`
	Created bool   `json:"created" yaml:"created"`
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	store, err := s.open()
	if err != nil {
		return cli.NewCommandError("init", err)
	}

	res := initResult{Path: store.Path(), Created: store.Created()}
	s.logger.Info("configuration file ready",
		"app", s.app,
		"mode", s.mode.String(),
		"path", res.Path,
		"created", res.Created,
	)

	switch s.format {
	case cli.FormatJSON, cli.FormatYAML:
		return s.render(res)
	case cli.FormatCSV:
		return s.render([][]string{{res.Path, fmt.Sprint(res.Created)}})
	}

	state := "exists"
	if res.Created {
		state = "created"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, res.Path)
	return err
}
