package extract

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/kgcty"
	"github.com/vk/kettlegraph/internal/model"
)

// disabledMarker is the only source value that flips a hop's enabled flag.
const disabledMarker = "N"

// hopStrategy is one structural pattern for locating a document's hop list.
// Strategies are tried in a fixed priority order; the first one yielding at
// least one candidate wins outright, the results are never merged. The
// fallback chain exists because the source grammar is not uniquely determined
// by its schema version: different authoring tools emit structurally
// different trees for the same logical hop list.
type hopStrategy struct {
	name    string
	collect func(root cty.Value) []cty.Value
}

// flatHops reads the collection under key as hop records directly.
func flatHops(key string) func(cty.Value) []cty.Value {
	return func(root cty.Value) []cty.Value {
		attr, ok := kgcty.Attr(root, key)
		if !ok {
			return nil
		}
		return candidateHops(kgcty.List(attr))
	}
}

// nestedHops reads the collection under key, then the "hop" collection of its
// first element.
func nestedHops(key string) func(cty.Value) []cty.Value {
	return func(root cty.Value) []cty.Value {
		attr, ok := kgcty.Attr(root, key)
		if !ok {
			return nil
		}
		wrapper := kgcty.List(attr)
		if len(wrapper) == 0 {
			return nil
		}
		hop, ok := kgcty.Attr(wrapper[0], "hop")
		if !ok {
			return nil
		}
		return candidateHops(kgcty.List(hop))
	}
}

// candidateHops keeps only records carrying both endpoints.
func candidateHops(vals []cty.Value) []cty.Value {
	var out []cty.Value
	for _, v := range vals {
		if _, ok := kgcty.AttrString(v, "from"); !ok {
			continue
		}
		if _, ok := kgcty.AttrString(v, "to"); !ok {
			continue
		}
		out = append(out, v)
	}
	return out
}

var transformationStrategies = []hopStrategy{
	{name: "order_flat", collect: flatHops("order")},
	{name: "order_nested_hop", collect: nestedHops("order")},
	{name: "hops_nested_hop", collect: nestedHops("hops")},
}

var jobStrategies = []hopStrategy{
	{name: "hops_nested_hop", collect: nestedHops("hops")},
	{name: "hops_flat", collect: flatHops("hops")},
	{name: "order_flat", collect: flatHops("order")},
}

// Edges extracts the document's hop list by trying each strategy in priority
// order and stopping at the first that yields edges. An empty result is a
// valid disconnected document, not an error.
func Edges(ctx context.Context, root cty.Value, kind model.DocumentKind) []model.Edge {
	logger := ctxlog.FromContext(ctx)

	strategies := transformationStrategies
	if kind == model.KindJob {
		strategies = jobStrategies
	}

	for _, s := range strategies {
		hops := s.collect(root)
		if len(hops) == 0 {
			continue
		}
		edges := make([]model.Edge, 0, len(hops))
		for i, hop := range hops {
			if edge, ok := EdgeFromHop(hop, i); ok {
				edges = append(edges, edge)
			}
		}
		if len(edges) > 0 {
			logger.Debug("Hop strategy matched.", "strategy", s.name, "edge_count", len(edges))
			return edges
		}
	}
	logger.Debug("No hop strategy matched; document is disconnected.")
	return nil
}

// EdgeFromHop builds one edge from a hop record. The enabled flag defaults to
// true and flips only on the literal disabled marker. The edge ID is
// synthesized from the index and is not stable across re-parses.
func EdgeFromHop(hop cty.Value, index int) (model.Edge, bool) {
	from, ok := kgcty.AttrString(hop, "from")
	if !ok || from == "" {
		return model.Edge{}, false
	}
	to, ok := kgcty.AttrString(hop, "to")
	if !ok || to == "" {
		return model.Edge{}, false
	}

	enabled := true
	if marker, ok := kgcty.AttrString(hop, "enabled"); ok && marker == disabledMarker {
		enabled = false
	}

	condition, _ := kgcty.AttrString(hop, "evaluation")
	if condition == "" {
		condition, _ = kgcty.AttrString(hop, "condition")
	}

	return model.Edge{
		ID:        fmt.Sprintf("hop_%d", index),
		From:      from,
		To:        to,
		Enabled:   enabled,
		Condition: condition,
	}, true
}
