package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// BlueprintPath enables batch mode when non-empty: grids are generated
	// from .hcl blueprint files instead of the interactive prompt.
	BlueprintPath string
	// OutDir is the directory batch-mode grid files are written into.
	OutDir string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	return &cfg, nil
}
