package main

import (
	"github.com/spf13/cobra"

	"mercator-hq/modecfg/pkg/cli"
	"mercator-hq/modecfg/pkg/config"
	"mercator-hq/modecfg/pkg/telemetry/logging"
)

var showFlags struct {
	reveal bool
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the whole configuration",
	Long: `Print every property of the configuration in file order.

Values of sensitive properties (key, secret, password, token, ...) and
credentials embedded in URLs are masked unless --reveal is given.

Examples:
  modecfg show --app billing
  modecfg show --app billing --mode prod --output yaml --reveal`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showFlags.reveal, "reveal", false, "print sensitive values in clear text")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	store, err := s.open()
	if err != nil {
		return cli.NewCommandError("show", err)
	}

	data := store.Data()
	if !showFlags.reveal {
		data = redactMapping(logging.NewRedactor(nil), data)
	}

	switch s.format {
	case cli.FormatJSON, cli.FormatYAML:
		return s.render(data)
	default:
		return s.render(properties(data))
	}
}

func redactMapping(r *logging.Redactor, m *config.Mapping) *config.Mapping {
	out := config.NewMapping()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out.Set(k, redactValue(r, k, v))
	}
	return out
}

// redactValue masks v when key is sensitive. Nested mappings are checked
// per key; sequence items inherit the key of their sequence.
func redactValue(r *logging.Redactor, key string, v config.Value) config.Value {
	if v.IsNull() {
		return v
	}

	switch v.Kind() {
	case config.KindMapping:
		m, _ := v.AsMapping()
		return config.MappingValue(redactMapping(r, m))
	case config.KindSequence:
		items, _ := v.AsSequence()
		out := make([]config.Value, len(items))
		for i, item := range items {
			out[i] = redactValue(r, key, item)
		}
		return config.SequenceValue(out...)
	}

	s, isString := v.AsString()
	if logging.IsSensitiveKey(key) {
		if isString && s == "" {
			return v
		}
		return config.StringValue(logging.Masked)
	}
	if isString {
		return config.StringValue(r.RedactString(s))
	}
	return v
}
