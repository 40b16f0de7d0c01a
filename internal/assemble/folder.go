package assemble

import (
	"context"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/model"
)

// Folder merges the per-document graphs, the folder-level dependency list and
// the per-file failures into the final FolderGraph, attaching aggregate
// counts. The graph includes only the documents that parsed; failures ride
// alongside for the caller to surface.
func Folder(ctx context.Context, folderName string, docs []model.Document, deps []model.FileDependency, failures []model.ParseFailure) *model.FolderGraph {
	logger := ctxlog.FromContext(ctx)

	meta := model.FolderMetadata{
		TotalFiles:   len(docs) + len(failures),
		FailedFiles:  len(failures),
		Dependencies: len(deps),
	}
	for _, d := range docs {
		switch d.Kind {
		case model.KindJob:
			meta.Jobs++
		default:
			meta.Transformations++
		}
	}
	if len(deps) > 0 {
		meta.ByCategory = make(map[model.DependencyCategory]int)
		for _, dep := range deps {
			meta.ByCategory[dep.Category]++
		}
	}

	logger.Debug("Folder graph assembled.",
		"folder", folderName,
		"documents", len(docs),
		"dependencies", len(deps),
		"failures", len(failures),
	)

	return &model.FolderGraph{
		FolderName:   folderName,
		Documents:    docs,
		Dependencies: deps,
		Failures:     failures,
		Metadata:     meta,
	}
}
