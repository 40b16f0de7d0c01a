package assemble

import (
	"github.com/vk/kettlegraph/internal/dag"
	"github.com/vk/kettlegraph/internal/model"
)

// Stats computes a document's structural statistics: entry points (nodes with
// no incoming edge), end points (nodes with no outgoing edge), isolated nodes
// (no edges at all), per-sub-type counts, and cycle presence. Edges whose
// endpoints do not resolve have already been dropped by the extractor, so
// topology construction cannot fail; a self-referential hop is skipped here
// as well, since it carries no boundary information.
func Stats(doc *model.Document) model.DocumentStats {
	g := dag.New()
	for _, n := range doc.Nodes {
		g.AddNode(n.ID)
	}
	for _, e := range doc.Edges {
		_ = g.AddEdge(e.From, e.To)
	}

	byType := make(map[string]int)
	for _, n := range doc.Nodes {
		if n.Type != "" {
			byType[n.Type]++
		}
	}
	if len(byType) == 0 {
		byType = nil
	}

	return model.DocumentStats{
		NodeCount:   len(doc.Nodes),
		EdgeCount:   len(doc.Edges),
		NodesByType: byType,
		EntryPoints: g.EntryPoints(),
		EndPoints:   g.EndPoints(),
		Isolated:    g.Isolated(),
		HasCycles:   g.HasCycles(),
	}
}
