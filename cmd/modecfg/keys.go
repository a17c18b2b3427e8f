package main

import (
	"sort"

	"github.com/spf13/cobra"

	"mercator-hq/modecfg/pkg/cli"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List top-level property names",
	Long: `List the top-level property names of the configuration, sorted.

Examples:
  modecfg keys --app billing
  modecfg keys --app billing --mode prod --output json`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	store, err := s.open()
	if err != nil {
		return cli.NewCommandError("keys", err)
	}

	names := store.PropertyNames()
	sort.Strings(names)
	return s.render(names)
}
