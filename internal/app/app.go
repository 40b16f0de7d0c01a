package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/kettlegraph/internal/heuristics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	tables *heuristics.Tables
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and heuristic
// tables. A failure to load the heuristics overlay is a fatal startup error.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	tables := heuristics.Defaults()
	if cfg.HeuristicsPath != "" {
		loaded, err := heuristics.Load(cfg.HeuristicsPath)
		if err != nil {
			panic(fmt.Errorf("failed to load heuristics configuration: %w", err))
		}
		tables = loaded
		logger.Debug("Heuristics overlay loaded.", "path", cfg.HeuristicsPath)
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		tables: tables,
	}
}

// Tables returns the application's heuristic tables. This is primarily for testing.
func (a *App) Tables() *heuristics.Tables {
	return a.tables
}
