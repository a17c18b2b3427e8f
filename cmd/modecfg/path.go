package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/modecfg/pkg/config"
)

var pathFlags struct {
	dir bool
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Long: `Print the path of the configuration file for --app and --mode.

The file is not created and need not exist.

Examples:
  # File of the dev mode
  modecfg path --app billing

  # Directory holding every mode of the application
  modecfg path --app billing --dir`,
	Args: cobra.NoArgs,
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.Flags().BoolVar(&pathFlags.dir, "dir", false, "print the application directory instead of the file")
}

func runPath(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	var p string
	if pathFlags.dir {
		p, err = config.ConfigDir(lookupEnv, app)
	} else {
		p, err = config.ConfigFilePath(lookupEnv, app, config.Mode(rootFlags.mode))
	}
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), p)
	return err
}
