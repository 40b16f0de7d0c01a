// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file models a single parsed document and its lifecycle metadata.
//
// Why carry the file name on the document?
//
// The folder-level resolver matches free-text references against sibling
// *file* names, not declared document names. A job frequently refers to
// "etl_orders.ktr" while the document inside declares itself "ETL Orders".
// Keeping both on the Document lets the resolver index by base file name
// while reports still show the human-readable declared name.
package model

// DocumentKind is the logical kind of a parsed source file.
type DocumentKind string

const (
	// KindTransformation is a data-flow document: nodes are steps, edges are hops.
	KindTransformation DocumentKind = "transformation"
	// KindJob is an orchestration document: nodes are entries, edges are hops.
	KindJob DocumentKind = "job"
)

// Document is one parsed source file.
type Document struct {
	// FileName is the name the document arrived under, extension included.
	FileName string `json:"fileName"`
	// Kind distinguishes transformations from jobs.
	Kind DocumentKind `json:"kind"`
	// Name is the document's declared name, which may differ from FileName.
	Name string `json:"name"`
	// Description is the optional declared description.
	Description string `json:"description,omitempty"`
	// Nodes holds the document's processing units in source order.
	Nodes []Node `json:"nodes"`
	// Edges holds the document's hops. Every endpoint references a Node ID
	// present in Nodes; edges failing that check are dropped during parsing.
	Edges []Edge `json:"edges"`
	// Connections lists the names of declared database connections.
	Connections []string `json:"connections,omitempty"`
	// Parameters lists the document's declared parameters.
	Parameters []Parameter `json:"parameters,omitempty"`
	// Dependencies is the set of references inferred from the property bags.
	Dependencies DependencySet `json:"dependencies"`
	// Stats holds the structural statistics computed over Nodes and Edges.
	Stats DocumentStats `json:"stats"`
}

// Parameter is one declared document parameter.
type Parameter struct {
	Name        string `json:"name"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// ParseFailure records one file of a batch that could not be parsed. The
// batch itself still succeeds; failures are surfaced to the caller alongside
// the documents that did parse.
type ParseFailure struct {
	FileName string `json:"fileName"`
	Reason   string `json:"reason"`
}
