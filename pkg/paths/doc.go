// Package paths provides centralized path handling for gestures.
//
// This package implements the XDG Base Directory specification for the
// locations the CLI and the logger use:
//
//   - Data: $XDG_DATA_HOME/gestures (the default library file)
//   - Config: $XDG_CONFIG_HOME/gestures (config.toml)
//   - State: $XDG_STATE_HOME/gestures (log file)
//
// # Environment Variables
//
//   - GESTURES_DATA_DIR: Override the data directory
//   - GESTURES_CONFIG_DIR: Override the config directory
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lib := library.FromFile(p.LibraryPath())
package paths
