// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the heuristic tables and their stock defaults.
//
// Why tables instead of hard-coded branches?
//
// Dependency discovery is best-effort string matching against human-authored
// free text. The set of property keys and type-name markers that signal a
// file, database or sub-workflow reference differs between authoring-tool
// versions and will keep growing. Keeping them as a swappable mapping lets a
// new variant be supported by configuration alone.
package heuristics

import (
	"fmt"
	"regexp"
)

// Tables is the complete set of key lists and patterns consulted by the
// dependency analyzer. Every field is an ordered probe list: earlier entries
// win.
type Tables struct {
	// FileStepMarkers are case-insensitive substrings of a node sub-type that
	// mark the node as file-handling.
	FileStepMarkers []string `hcl:"file_step_markers,optional"`
	// FileKeys are property keys probed for general file references.
	FileKeys []string `hcl:"file_keys,optional"`
	// ScriptKeys are property keys probed for script file references.
	ScriptKeys []string `hcl:"script_keys,optional"`
	// ScriptExtensions filters script key hits to plausible script files.
	ScriptExtensions []string `hcl:"script_extensions,optional"`

	// DatabaseStepMarkers mark a node sub-type as database-touching.
	DatabaseStepMarkers []string `hcl:"database_step_markers,optional"`
	// DatabaseKeys are property keys probed for a connection name.
	DatabaseKeys []string `hcl:"database_keys,optional"`

	// SubWorkflowKeys are property keys probed, in priority order, for the
	// name of a referenced transformation or job.
	SubWorkflowKeys []string `hcl:"sub_workflow_keys,optional"`
	// SubTransTypes / SubTransMarkers classify a node as a sub-transformation
	// call by exact sub-type or case-insensitive substring respectively.
	SubTransTypes   []string `hcl:"sub_trans_types,optional"`
	SubTransMarkers []string `hcl:"sub_trans_markers,optional"`
	// TransCallTypes / TransCallMarkers classify a transformation call.
	TransCallTypes   []string `hcl:"trans_call_types,optional"`
	TransCallMarkers []string `hcl:"trans_call_markers,optional"`
	// JobCallTypes / JobCallMarkers classify a job call.
	JobCallTypes   []string `hcl:"job_call_types,optional"`
	JobCallMarkers []string `hcl:"job_call_markers,optional"`

	// VariableStepMarkers mark a node sub-type as a variable/parameter setter.
	VariableStepMarkers []string `hcl:"variable_step_markers,optional"`
	// VariableFieldNameKeys / VariableFieldValueKeys are probed on each
	// field[] entry of a setter node.
	VariableFieldNameKeys  []string `hcl:"variable_field_name_keys,optional"`
	VariableFieldValueKeys []string `hcl:"variable_field_value_keys,optional"`
	// VariablePattern is the regular expression matching textual variable
	// references; its first capture group is the variable name.
	VariablePattern string `hcl:"variable_pattern,optional"`
}

// Defaults returns the stock Kettle tables.
func Defaults() *Tables {
	return &Tables{
		FileStepMarkers:  []string{"input", "output", "file", "excel", "script"},
		FileKeys:         []string{"filename", "file", "filepath", "inputfile", "outputfile", "file_name", "input_file", "output_file"},
		ScriptKeys:       []string{"script", "scriptfile", "script_file"},
		ScriptExtensions: []string{".js", ".sql", ".sh", ".bat", ".py", ".ktr"},

		DatabaseStepMarkers: []string{"table", "database", "sql"},
		DatabaseKeys:        []string{"connection", "database", "db_connection", "connection_name"},

		SubWorkflowKeys:  []string{"trans_name", "filename", "specification", "trans_object_id", "job_object_id", "jobname"},
		SubTransTypes:    []string{"Mapping", "SubTrans"},
		SubTransMarkers:  []string{"sub"},
		TransCallTypes:   []string{"TRANS", "TransExecutor"},
		TransCallMarkers: []string{"trans"},
		JobCallTypes:     []string{"JOB", "JobExecutor"},
		JobCallMarkers:   []string{"job"},

		VariableStepMarkers:    []string{"variable", "parameter"},
		VariableFieldNameKeys:  []string{"variable_name", "field_name", "name"},
		VariableFieldValueKeys: []string{"variable_value", "value"},
		VariablePattern:        `\$\{([^${}]+)\}`,
	}
}

// VariableRegexp compiles the variable reference pattern.
func (t *Tables) VariableRegexp() (*regexp.Regexp, error) {
	re, err := regexp.Compile(t.VariablePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid variable_pattern %q: %w", t.VariablePattern, err)
	}
	return re, nil
}
