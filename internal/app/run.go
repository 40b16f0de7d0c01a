package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/kettlegraph/internal/assemble"
	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/folder"
	"github.com/vk/kettlegraph/internal/fsutil"
	"github.com/vk/kettlegraph/internal/kettle"
)

// Run executes the main application logic: a single file is parsed into a
// Document, a directory into a FolderGraph; either result is written as JSON.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.Path)

	info, err := os.Stat(a.config.Path)
	if err != nil {
		return fmt.Errorf("cannot access path: %w", err)
	}

	if info.IsDir() {
		return a.runFolder(ctx)
	}
	return a.runFile(ctx)
}

// runFile parses one document and writes it.
func (a *App) runFile(ctx context.Context) error {
	content, err := os.ReadFile(a.config.Path)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}

	doc, err := kettle.Parse(ctx, filepath.Base(a.config.Path), content, a.tables)
	if err != nil {
		return err
	}
	return a.writeJSON(doc)
}

// runFolder parses every document under the directory and writes the folder
// graph. Per-file failures ride inside the graph; only an inability to read
// the directory itself fails the run.
func (a *App) runFolder(ctx context.Context) error {
	paths, err := fsutil.FindDocuments(a.config.Path)
	if err != nil {
		return fmt.Errorf("cannot scan directory: %w", err)
	}

	files := make([]folder.File, 0, len(paths))
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			a.logger.Warn("Skipping unreadable file.", "file", p, "error", err)
			continue
		}
		files = append(files, folder.File{Name: filepath.Base(p), Content: content})
	}
	a.logger.Info("Folder scan complete.", "files_found", len(files))

	docs, failures := folder.ParseAll(ctx, files, a.tables, a.config.Workers)
	deps := folder.Resolve(ctx, docs)
	graph := assemble.Folder(ctx, filepath.Base(a.config.Path), docs, deps, failures)

	return a.writeJSON(graph)
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.outW)
	if a.config.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
