package analyze

import (
	"fmt"

	"github.com/vk/kettlegraph/internal/heuristics"
	"github.com/vk/kettlegraph/internal/kgcty"
	"github.com/vk/kettlegraph/internal/model"
)

// databaseDependencies probes database-touching nodes for a connection name.
// Unlike the file pass, only the first non-empty key hit is emitted: the
// probe keys are synonyms for the same single connection field.
func databaseDependencies(nodes []model.Node, tables *heuristics.Tables) []model.Dependency {
	var deps []model.Dependency

	for _, n := range nodes {
		if !typeContainsAny(n.Type, tables.DatabaseStepMarkers) {
			continue
		}
		key, val, ok := kgcty.FirstString(n.Props(), tables.DatabaseKeys...)
		if !ok {
			continue
		}
		deps = append(deps, model.Dependency{
			ID:       fmt.Sprintf("db_dep_%d", len(deps)),
			Origin:   n.ID,
			Target:   val,
			Category: model.CategoryDatabase,
			Detail:   fmt.Sprintf("key %q on %s", key, n.Type),
		})
	}
	return deps
}
