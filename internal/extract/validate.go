package extract

import (
	"context"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/model"
)

// ValidEdges drops edges whose endpoints do not resolve to a node ID present
// in the document. Dropping is tolerated, never fatal: a dangling hop is a
// source-document inconsistency, not a parse failure.
func ValidEdges(ctx context.Context, nodes []model.Node, edges []model.Edge) []model.Edge {
	logger := ctxlog.FromContext(ctx)

	ids := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		ids[n.ID] = struct{}{}
	}

	out := make([]model.Edge, 0, len(edges))
	for _, e := range edges {
		if _, ok := ids[e.From]; !ok {
			logger.Warn("Dropping edge with unknown source node.", "edge", e.ID, "from", e.From)
			continue
		}
		if _, ok := ids[e.To]; !ok {
			logger.Warn("Dropping edge with unknown target node.", "edge", e.ID, "to", e.To)
			continue
		}
		out = append(out, e)
	}
	return out
}
