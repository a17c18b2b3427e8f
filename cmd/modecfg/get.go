package main

import (
	"github.com/spf13/cobra"

	"mercator-hq/modecfg/pkg/cli"
	"mercator-hq/modecfg/pkg/config"
)

var getFlags struct {
	def string
}

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one property",
	Long: `Print the value of a top-level property.

Without --default a missing key is an error. With --default the given
string is printed instead.

Examples:
  modecfg get url --app billing
  modecfg get retries --app billing --default 3`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVar(&getFlags.def, "default", "", "value to print when KEY is absent")
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	store, err := s.open()
	if err != nil {
		return cli.NewCommandError("get", err)
	}

	var v config.Value
	if cmd.Flags().Changed("default") {
		v = store.Get(key, config.StringValue(getFlags.def))
	} else {
		v, err = store.Lookup(key)
		if err != nil {
			return cli.NewCommandError("get", err)
		}
	}

	if s.format == cli.FormatCSV {
		return s.render([]cli.Property{{Key: key, Value: v}})
	}
	return s.render(v)
}
