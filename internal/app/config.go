package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Path is a single document file or a directory of documents.
	Path string
	// HeuristicsPath optionally points at an HCL overlay for the heuristic
	// tables. Empty means stock defaults.
	HeuristicsPath string

	LogFormat string
	LogLevel  string
	// Workers bounds the folder batch pool; 0 means one per CPU core.
	Workers int
	// Pretty enables indented JSON output.
	Pretty bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 0 {
		return nil, errors.New("Workers cannot be negative")
	}
	return &cfg, nil
}
