package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/kgcty"
	"github.com/vk/kettlegraph/internal/model"
)

// defaultCoordinate is used when a position field is absent or non-numeric.
const defaultCoordinate = 100

// Nodes extracts the document's processing units. For a transformation the
// step collection is a flat list under "step"; for a job the entries are
// nested one level under an "entries" wrapper. The entire source sub-tree of
// each step/entry becomes the node's property bag verbatim.
func Nodes(ctx context.Context, root cty.Value, kind model.DocumentKind) []model.Node {
	logger := ctxlog.FromContext(ctx)

	var raws []cty.Value
	var fallbackPrefix string
	switch kind {
	case model.KindJob:
		fallbackPrefix = "entry"
		if entries, ok := kgcty.Attr(root, "entries"); ok {
			if wrapper := kgcty.List(entries); len(wrapper) > 0 {
				if entry, ok := kgcty.Attr(wrapper[0], "entry"); ok {
					raws = kgcty.List(entry)
				}
			}
		}
	default:
		fallbackPrefix = "step"
		if step, ok := kgcty.Attr(root, "step"); ok {
			raws = kgcty.List(step)
		}
	}

	nodes := make([]model.Node, 0, len(raws))
	for i, raw := range raws {
		node := nodeFromValue(raw, kind, fallbackPrefix, i)
		nodes = append(nodes, node)
	}
	logger.Debug("Node extraction complete.", "kind", kind, "node_count", len(nodes))
	return nodes
}

// nodeFromValue builds one node from its raw sub-tree.
func nodeFromValue(raw cty.Value, kind model.DocumentKind, fallbackPrefix string, index int) model.Node {
	name, _ := kgcty.AttrString(raw, "name")
	id := name
	if strings.TrimSpace(id) == "" {
		id = fmt.Sprintf("%s_%d", fallbackPrefix, index)
		name = id
	}

	subType, _ := kgcty.AttrString(raw, "type")

	bag := raw
	if bag == cty.NilVal {
		bag = cty.EmptyObjectVal
	}

	return model.Node{
		ID:         id,
		Name:       name,
		Kind:       classify(kind, subType, name),
		Type:       subType,
		Position:   position(raw),
		Properties: ctyjson.SimpleJSONValue{Value: bag},
	}
}

// classify derives the coarse node kind. Job entries of the SPECIAL sub-type
// are Kettle's START/DUMMY boundary markers.
func classify(kind model.DocumentKind, subType, name string) model.NodeKind {
	if kind != model.KindJob {
		return model.KindStep
	}
	if strings.EqualFold(subType, "SPECIAL") {
		if strings.EqualFold(strings.TrimSpace(name), "START") {
			return model.KindStart
		}
		return model.KindEnd
	}
	return model.KindJobEntry
}

// position reads the layout hint. Transformation steps nest it under a GUI
// element; job entries declare xloc/yloc directly.
func position(raw cty.Value) model.Position {
	container := raw
	if gui, ok := kgcty.Attr(raw, "GUI"); ok {
		container = gui
	}
	return model.Position{
		X: coordinate(container, "xloc"),
		Y: coordinate(container, "yloc"),
	}
}

func coordinate(v cty.Value, key string) float64 {
	attr, ok := kgcty.Attr(v, key)
	if !ok {
		return defaultCoordinate
	}
	n, ok := kgcty.Number(attr)
	if !ok {
		return defaultCoordinate
	}
	return n
}
