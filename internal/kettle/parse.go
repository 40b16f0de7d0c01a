package kettle

import (
	"context"

	"github.com/vk/kettlegraph/internal/analyze"
	"github.com/vk/kettlegraph/internal/assemble"
	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/extract"
	"github.com/vk/kettlegraph/internal/heuristics"
	"github.com/vk/kettlegraph/internal/model"
)

// Parse runs the full single-document pipeline: read the tree, extract nodes
// and edges, infer dependencies, reconcile the two edge derivations, and
// attach structural statistics. The returned document is an immutable
// snapshot; the engine keeps no state between calls.
func Parse(ctx context.Context, fileName string, content []byte, tables *heuristics.Tables) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx).With("file", fileName)
	ctx = ctxlog.WithLogger(ctx, logger)

	if tables == nil {
		tables = heuristics.Defaults()
	}

	kind, root, err := ReadTree(ctx, fileName, content)
	if err != nil {
		return nil, err
	}

	nodes := extract.Nodes(ctx, root, kind)
	edges := extract.ValidEdges(ctx, nodes, extract.Edges(ctx, root, kind))

	deps := analyze.Dependencies(ctx, root, nodes, tables)
	// The broader re-derivation is subject to the same endpoint validation
	// before it can replace the extractor's result.
	deps.StepConnections = extract.ValidEdges(ctx, nodes, deps.StepConnections)
	edges = analyze.Reconcile(ctx, edges, deps.StepConnections)

	doc := &model.Document{
		FileName:     fileName,
		Kind:         kind,
		Name:         documentName(root),
		Description:  documentDescription(root),
		Nodes:        nodes,
		Edges:        edges,
		Connections:  connections(root),
		Parameters:   parameters(root),
		Dependencies: deps,
	}
	doc.Stats = assemble.Stats(doc)

	logger.Debug("Document parsed.",
		"kind", kind,
		"nodes", len(doc.Nodes),
		"edges", len(doc.Edges),
	)
	return doc, nil
}
