// Package app encapsulates the application's dependencies, configuration and
// lifecycle: it configures an isolated logger, loads the heuristic tables,
// materializes file contents, and drives the parse pipeline, writing the
// resulting document or folder graph as JSON.
package app
