package analyze

import (
	"fmt"
	"strings"

	"github.com/vk/kettlegraph/internal/heuristics"
	"github.com/vk/kettlegraph/internal/kgcty"
	"github.com/vk/kettlegraph/internal/model"
)

// fileDependencies probes file-handling nodes for file references. A node
// qualifies when its sub-type contains any file-step marker; its bag is then
// probed against the ordered general file keys (one dependency per non-empty
// hit) and the script keys (filtered to values carrying a known script
// extension).
func fileDependencies(nodes []model.Node, tables *heuristics.Tables) []model.Dependency {
	var deps []model.Dependency

	for _, n := range nodes {
		if !typeContainsAny(n.Type, tables.FileStepMarkers) {
			continue
		}
		bag := n.Props()

		for _, key := range tables.FileKeys {
			val, ok := kgcty.AttrString(bag, key)
			if !ok || strings.TrimSpace(val) == "" {
				continue
			}
			deps = append(deps, model.Dependency{
				ID:       fmt.Sprintf("file_dep_%d", len(deps)),
				Origin:   n.ID,
				Target:   strings.TrimSpace(val),
				Category: fileCategory(n.Type, key),
				Detail:   fmt.Sprintf("key %q on %s", key, n.Type),
			})
		}

		for _, key := range tables.ScriptKeys {
			val, ok := kgcty.AttrString(bag, key)
			if !ok || !hasScriptExtension(val, tables.ScriptExtensions) {
				continue
			}
			deps = append(deps, model.Dependency{
				ID:       fmt.Sprintf("file_dep_%d", len(deps)),
				Origin:   n.ID,
				Target:   strings.TrimSpace(val),
				Category: model.CategoryScriptFile,
				Detail:   fmt.Sprintf("key %q on %s", key, n.Type),
			})
		}
	}
	return deps
}

// fileCategory classifies a general file hit by the node sub-type first and
// the matched key second.
func fileCategory(subType, key string) model.DependencyCategory {
	lowerType := strings.ToLower(subType)
	lowerKey := strings.ToLower(key)
	switch {
	case strings.Contains(lowerType, "excel"):
		return model.CategoryExcelFile
	case strings.Contains(lowerType, "script"):
		return model.CategoryScriptFile
	case strings.Contains(lowerType, "output") || strings.Contains(lowerKey, "output"):
		return model.CategoryFileOutput
	default:
		return model.CategoryFileInput
	}
}

func hasScriptExtension(val string, extensions []string) bool {
	lower := strings.ToLower(strings.TrimSpace(val))
	if lower == "" {
		return false
	}
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
