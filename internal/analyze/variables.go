package analyze

import (
	"context"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/heuristics"
	"github.com/vk/kettlegraph/internal/kgcty"
	"github.com/vk/kettlegraph/internal/model"
)

// variableDependencies runs the two variable passes: setter extraction on
// variable/parameter nodes, then a full recursive scan of every node's bag
// for textual ${...} references. Distinct names found on one node are emitted
// once each, in sorted order, so the scan is idempotent and independent of
// key iteration order.
func variableDependencies(ctx context.Context, nodes []model.Node, tables *heuristics.Tables) []model.Dependency {
	var deps []model.Dependency

	re, err := tables.VariableRegexp()
	if err != nil {
		// A broken overlay pattern disables reference scanning but never
		// fails the parse.
		ctxlog.FromContext(ctx).Warn("Variable pattern does not compile; skipping reference scan.", "error", err)
	}

	for _, n := range nodes {
		bag := n.Props()

		if typeContainsAny(n.Type, tables.VariableStepMarkers) {
			for _, field := range setterFields(bag) {
				_, name, ok := kgcty.FirstString(field, tables.VariableFieldNameKeys...)
				if !ok {
					continue
				}
				_, value, _ := kgcty.FirstString(field, tables.VariableFieldValueKeys...)
				deps = append(deps, model.Dependency{
					ID:       fmt.Sprintf("var_dep_%d", len(deps)),
					Origin:   n.ID,
					Target:   name,
					Category: model.CategoryVariableSetter,
					Detail:   value,
				})
			}
		}

		if re == nil {
			continue
		}
		seen := make(map[string]struct{})
		kgcty.WalkStrings(bag, func(s string) {
			for _, m := range re.FindAllStringSubmatch(s, -1) {
				if len(m) > 1 && m[1] != "" {
					seen[m[1]] = struct{}{}
				}
			}
		})
		names := make([]string, 0, len(seen))
		for name := range seen {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			deps = append(deps, model.Dependency{
				ID:       fmt.Sprintf("var_dep_%d", len(deps)),
				Origin:   n.ID,
				Target:   name,
				Category: model.CategoryVariableUser,
				Detail:   fmt.Sprintf("referenced as ${%s}", name),
			})
		}
	}
	return deps
}

// setterFields locates a setter node's field records, which arrive either
// nested under a "fields" wrapper or as a bare repeated "field" element.
func setterFields(bag cty.Value) []cty.Value {
	if fields, ok := kgcty.Attr(bag, "fields"); ok {
		if field, ok := kgcty.Attr(fields, "field"); ok {
			return kgcty.List(field)
		}
	}
	if field, ok := kgcty.Attr(bag, "field"); ok {
		return kgcty.List(field)
	}
	return nil
}
