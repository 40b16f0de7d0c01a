package analyze

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/kettlegraph/internal/heuristics"
	"github.com/vk/kettlegraph/internal/kgcty"
	"github.com/vk/kettlegraph/internal/model"
)

// subWorkflowDependencies finds nodes that invoke another transformation or
// job and extracts the referenced workflow's name. The probe keys are tried
// in priority order and only the first hit is emitted; a "filename" hit is
// reduced to its base name without extension, since the reference is resolved
// against sibling base names later.
func subWorkflowDependencies(nodes []model.Node, tables *heuristics.Tables) []model.Dependency {
	var deps []model.Dependency

	for _, n := range nodes {
		category, ok := classifyCall(n.Type, tables)
		if !ok {
			continue
		}
		key, val, ok := kgcty.FirstString(n.Props(), tables.SubWorkflowKeys...)
		if !ok {
			continue
		}
		target := val
		if key == "filename" {
			base := filepath.Base(val)
			target = strings.TrimSuffix(base, filepath.Ext(base))
		}
		if target == "" {
			continue
		}
		deps = append(deps, model.Dependency{
			ID:       fmt.Sprintf("subwf_dep_%d", len(deps)),
			Origin:   n.ID,
			Target:   target,
			Category: category,
			Detail:   fmt.Sprintf("key %q on %s", key, n.Type),
		})
	}
	return deps
}

// classifyCall maps a node sub-type to a workflow-call category. Exact names
// are consulted before substring markers so that, for example, "SubTrans"
// classifies as a sub-transformation and not a transformation call.
func classifyCall(subType string, tables *heuristics.Tables) (model.DependencyCategory, bool) {
	switch {
	case typeEqualsAny(subType, tables.SubTransTypes):
		return model.CategorySubTransformation, true
	case typeEqualsAny(subType, tables.TransCallTypes):
		return model.CategoryTransformationCall, true
	case typeEqualsAny(subType, tables.JobCallTypes):
		return model.CategoryJobCall, true
	case typeContainsAny(subType, tables.SubTransMarkers):
		return model.CategorySubTransformation, true
	case typeContainsAny(subType, tables.TransCallMarkers):
		return model.CategoryTransformationCall, true
	case typeContainsAny(subType, tables.JobCallMarkers):
		return model.CategoryJobCall, true
	}
	return "", false
}
