package heuristics

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Load reads an HCL overlay file and merges it over the stock defaults.
// Every attribute is optional; a table present in the file replaces the
// default table wholesale rather than appending to it, so an overlay can
// both extend and restrict the stock vocabulary.
func Load(path string) (*Tables, error) {
	var overlay Tables
	if err := hclsimple.DecodeFile(path, nil, &overlay); err != nil {
		return nil, fmt.Errorf("failed to load heuristics file %s: %w", path, err)
	}

	merged := *Defaults()
	mergeList(&merged.FileStepMarkers, overlay.FileStepMarkers)
	mergeList(&merged.FileKeys, overlay.FileKeys)
	mergeList(&merged.ScriptKeys, overlay.ScriptKeys)
	mergeList(&merged.ScriptExtensions, overlay.ScriptExtensions)
	mergeList(&merged.DatabaseStepMarkers, overlay.DatabaseStepMarkers)
	mergeList(&merged.DatabaseKeys, overlay.DatabaseKeys)
	mergeList(&merged.SubWorkflowKeys, overlay.SubWorkflowKeys)
	mergeList(&merged.SubTransTypes, overlay.SubTransTypes)
	mergeList(&merged.SubTransMarkers, overlay.SubTransMarkers)
	mergeList(&merged.TransCallTypes, overlay.TransCallTypes)
	mergeList(&merged.TransCallMarkers, overlay.TransCallMarkers)
	mergeList(&merged.JobCallTypes, overlay.JobCallTypes)
	mergeList(&merged.JobCallMarkers, overlay.JobCallMarkers)
	mergeList(&merged.VariableStepMarkers, overlay.VariableStepMarkers)
	mergeList(&merged.VariableFieldNameKeys, overlay.VariableFieldNameKeys)
	mergeList(&merged.VariableFieldValueKeys, overlay.VariableFieldValueKeys)
	if overlay.VariablePattern != "" {
		merged.VariablePattern = overlay.VariablePattern
	}

	// Reject an unusable pattern at load time rather than deep in a parse.
	if _, err := merged.VariableRegexp(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func mergeList(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}
