// Modecfg inspects the per-application, per-mode YAML configuration files
// kept under $HOME/.config/<app>/<mode>.yaml.
//
// A missing file is created with default content the first time it is
// opened, so every command except path may write to disk.
//
// Usage:
//
//	# Print where the dev configuration of "billing" lives
//	modecfg path --app billing
//
//	# Create the prod file with defaults if it does not exist yet
//	modecfg init --app billing --mode prod
//
//	# List property names
//	modecfg keys --app billing
//
//	# Read one value, failing if it is absent
//	modecfg get url --app billing
//
//	# Dump the document as YAML with secrets masked
//	modecfg show --app billing --output yaml
//
// Flags fall back to MODECFG_APP, MODECFG_MODE, MODECFG_OUTPUT,
// MODECFG_LOG_LEVEL and MODECFG_LOG_FORMAT when not given.
package main

func main() {
	Execute()
}
