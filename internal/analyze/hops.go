package analyze

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/kettlegraph/internal/extract"
	"github.com/vk/kettlegraph/internal/kgcty"
	"github.com/vk/kettlegraph/internal/model"
)

// rederiveHops re-derives the document's edge list with a broader pattern set
// than the extractor's priority chain: any "hop" collection at any depth, plus
// hop records sitting directly inside an "order" or "hops" collection. Some
// source documents place hops in nesting the priority chain does not cover;
// this pass exists so reconciliation can catch them.
//
// Records nested under a "hop" attribute are counted only there, never again
// through their enclosing "order"/"hops" wrapper, so the same structural
// record is not collected twice.
func rederiveHops(root cty.Value) []model.Edge {
	var edges []model.Edge
	add := func(records []cty.Value) {
		for _, rec := range records {
			if edge, ok := extract.EdgeFromHop(rec, len(edges)); ok {
				edges = append(edges, edge)
			}
		}
	}

	kgcty.WalkAttrs(root, func(name string, v cty.Value) {
		switch name {
		case "hop":
			add(directHops(v))
		case "order", "hops":
			// Only direct records; nested ones surface through their own
			// "hop" attribute visit.
			add(directHops(v))
		}
	})
	return edges
}

// directHops returns the elements of v that are themselves hop records.
func directHops(v cty.Value) []cty.Value {
	var out []cty.Value
	for _, el := range kgcty.List(v) {
		if _, ok := kgcty.AttrString(el, "from"); !ok {
			continue
		}
		if _, ok := kgcty.AttrString(el, "to"); !ok {
			continue
		}
		out = append(out, el)
	}
	return out
}
