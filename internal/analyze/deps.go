// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file orchestrates the per-category dependency passes.
//
// Why scan property bags at all when hops are declared structurally?
//
// Hops only describe control/data flow *inside* one document. The
// relationships that matter across documents (which job calls which
// transformation, which step reads which file, which connection a table step
// uses) are buried in free-form configuration fields that no schema marks as
// references. Probing those fields with known key names is the only way to
// recover them.
package analyze

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/heuristics"
	"github.com/vk/kettlegraph/internal/model"
)

// Dependencies runs every inference category over the document's nodes and
// returns the structured result. The step-connection re-derivation consults
// the raw tree; all other categories consult only the node property bags.
func Dependencies(ctx context.Context, root cty.Value, nodes []model.Node, tables *heuristics.Tables) model.DependencySet {
	logger := ctxlog.FromContext(ctx)

	set := model.DependencySet{
		StepConnections: rederiveHops(root),
		Files:           fileDependencies(nodes, tables),
		Databases:       databaseDependencies(nodes, tables),
		SubWorkflows:    subWorkflowDependencies(nodes, tables),
		Variables:       variableDependencies(ctx, nodes, tables),
	}

	logger.Debug("Dependency analysis complete.",
		"step_connections", len(set.StepConnections),
		"files", len(set.Files),
		"databases", len(set.Databases),
		"sub_workflows", len(set.SubWorkflows),
		"variables", len(set.Variables),
	)
	return set
}
