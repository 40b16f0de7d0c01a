package folder

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/heuristics"
	"github.com/vk/kettlegraph/internal/kettle"
	"github.com/vk/kettlegraph/internal/model"
)

// File is one batch member with its content already materialized; the engine
// performs no file-system or network I/O of its own.
type File struct {
	Name    string
	Content []byte
}

// ParseAll parses every file of a batch concurrently through a bounded pool.
// A file that fails to parse becomes a ParseFailure and never aborts the
// batch. Documents are returned sorted by file name regardless of completion
// order; failures likewise.
func ParseAll(ctx context.Context, files []File, tables *heuristics.Tables, workers int) ([]model.Document, []model.ParseFailure) {
	logger := ctxlog.FromContext(ctx)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sorted := make([]File, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	docs := make([]*model.Document, len(sorted))
	errs := make([]error, len(sorted))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, f := range sorted {
		i, f := i, f
		g.Go(func() error {
			docs[i], errs[i] = kettle.Parse(ctx, f.Name, f.Content, tables)
			return nil
		})
	}
	// Workers never return errors; per-file failures live in errs.
	_ = g.Wait()

	out := make([]model.Document, 0, len(sorted))
	var failures []model.ParseFailure
	for i, f := range sorted {
		if errs[i] != nil {
			logger.Warn("File failed to parse; continuing batch.", "file", f.Name, "error", errs[i])
			failures = append(failures, model.ParseFailure{FileName: f.Name, Reason: errs[i].Error()})
			continue
		}
		out = append(out, *docs[i])
	}

	logger.Debug("Batch parse complete.", "parsed", len(out), "failed", len(failures), "workers", workers)
	return out, failures
}
