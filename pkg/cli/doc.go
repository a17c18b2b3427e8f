/*
Package cli provides command-line helpers for the modecfg command.

Output Formatting:

Commands render results as text, JSON, YAML or CSV:

	format, err := cli.ParseOutputFormat(flagValue)
	if err != nil {
		return err
	}
	rows := []cli.Property{{Key: "url", Value: "https://api.example.com"}}
	if err := cli.NewFormatter(format).FormatTo(os.Stdout, rows); err != nil {
		return err
	}

Errors:

ConfigError reports an invalid flag or environment value; CommandError wraps
the failure of a subcommand.

Signal Handling:

	ctx := cli.SetupSignalHandler()
	// ctx is canceled on SIGINT or SIGTERM
*/
package cli
