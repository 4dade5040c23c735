package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
// It is built once by the CLI layer and never mutated afterwards.
type Config struct {
	// OutputDir is the directory holding the counter file and receiving the
	// generated artifact. May come from the settings file when empty here.
	OutputDir string
	// RequestedType is the output dialect token ("C", "C++" or "C#").
	// Validated at resolution time, not at parse time.
	RequestedType string
	// ExplicitStart, when non-nil, replaces the persisted-counter resolution
	// for this invocation.
	ExplicitStart *uint64
	// SettingsPath is the optional HCL settings file.
	SettingsPath string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.OutputDir == "" && cfg.SettingsPath == "" {
		return nil, errors.New("an output path is required (use -p, or a settings file via -f)")
	}

	return &cfg, nil
}
