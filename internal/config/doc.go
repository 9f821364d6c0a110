// Package config provides user preferences for pwcheck.
//
// Preferences live in a YAML file that follows OS-specific conventions:
//   - Linux: $XDG_CONFIG_HOME/pwcheck/config.yaml or $HOME/.config/pwcheck/config.yaml
//   - macOS: $HOME/.config/pwcheck/config.yaml
//   - Windows: %LOCALAPPDATA%\pwcheck\config.yaml
//
// A missing file is not an error; defaults are used instead.
//
// # Security
//
// This package NEVER stores passwords, typed or generated. The file only
// holds connection and display preferences, plus the scoring services
// seen during discovery.
//
// # Precedence
//
// Command-line flags override environment variables, which override the
// file, which overrides the built-in defaults:
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	cfg.ApplyEnv(os.Getenv)
//	// flags are applied by the command layer
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Saving
//
// Save writes to a temporary file and renames it over the target so a
// crash never leaves a truncated file behind.
package config
