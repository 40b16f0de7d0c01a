// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file models inferred dependencies.
//
// Why distinguish Dependency from Edge?
//
// Edges are declared structurally by the source document and are authoritative.
// Dependencies are discovered by scanning free-form property bags with string
// heuristics: they can miss real references and occasionally match
// incidentally. Callers must treat absence of a dependency as unknown, not as
// proof of absence.
package model

// DependencyCategory classifies an inferred dependency.
type DependencyCategory string

const (
	CategoryStepHop            DependencyCategory = "step_hop"
	CategoryFileInput          DependencyCategory = "file_input"
	CategoryFileOutput         DependencyCategory = "file_output"
	CategoryScriptFile         DependencyCategory = "script_file"
	CategoryExcelFile          DependencyCategory = "excel_file"
	CategoryDatabase           DependencyCategory = "database_connection"
	CategorySubTransformation  DependencyCategory = "sub_transformation"
	CategoryJobCall            DependencyCategory = "job_call"
	CategoryTransformationCall DependencyCategory = "transformation_call"
	CategoryVariableSetter     DependencyCategory = "variable_setter"
	CategoryVariableUser       DependencyCategory = "variable_user"
	// CategoryFileReference marks a folder-level edge resolved from a plain
	// file dependency rather than a workflow call.
	CategoryFileReference DependencyCategory = "file_reference"
)

// Dependency is a cross-entity reference discovered within one document.
type Dependency struct {
	// ID is synthesized per category and index, e.g. "file_dep_2".
	ID string `json:"id"`
	// Origin is the node ID the reference was found on.
	Origin string `json:"origin"`
	// Target is the referenced entity: a file name, a database connection
	// name, a variable name or a sub-workflow name.
	Target string `json:"target"`
	// Category classifies the reference.
	Category DependencyCategory `json:"category"`
	// Detail is free text describing how the reference was found.
	Detail string `json:"detail,omitempty"`
}

// DependencySet groups a document's inferred dependencies by concern.
type DependencySet struct {
	// StepConnections is the analyzer's independent re-derivation of the
	// document's hop list, used to reconcile against the extractor's result.
	StepConnections []Edge `json:"stepConnections"`
	// Files are file-level references (inputs, outputs, scripts, spreadsheets).
	Files []Dependency `json:"files"`
	// Databases are references to named database connections.
	Databases []Dependency `json:"databases"`
	// Variables are ${...} setters and users.
	Variables []Dependency `json:"variables"`
	// SubWorkflows are references to other transformations or jobs.
	SubWorkflows []Dependency `json:"subWorkflows"`
}

// FileDependency is a directed edge between two whole documents of one
// folder batch, established by heuristic name matching.
type FileDependency struct {
	// From is the referencing file's name.
	From string `json:"from"`
	// To is the resolved sibling file's name.
	To string `json:"to"`
	// Category is one of the workflow-call categories or CategoryFileReference.
	Category DependencyCategory `json:"category"`
	// Detail names the reference that resolved, for diagnostics.
	Detail string `json:"detail,omitempty"`
}
