// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// DocumentStats holds structural statistics over one document's graph. They
// are pure functions of the already-built graph and never fail.
type DocumentStats struct {
	NodeCount int `json:"nodeCount"`
	EdgeCount int `json:"edgeCount"`
	// NodesByType counts nodes by fine-grained declared sub-type.
	NodesByType map[string]int `json:"nodesByType,omitempty"`
	// EntryPoints are node IDs with no incoming edge (but at least one edge).
	EntryPoints []string `json:"entryPoints"`
	// EndPoints are node IDs with no outgoing edge (but at least one edge).
	EndPoints []string `json:"endPoints"`
	// Isolated are node IDs with no edges at all.
	Isolated []string `json:"isolated"`
	// HasCycles reports whether the hop graph contains a cycle. Cycles are
	// reported, never treated as a parse failure.
	HasCycles bool `json:"hasCycles"`
}

// FolderMetadata holds aggregate counts over one folder batch.
type FolderMetadata struct {
	TotalFiles      int                        `json:"totalFiles"`
	Transformations int                        `json:"transformations"`
	Jobs            int                        `json:"jobs"`
	FailedFiles     int                        `json:"failedFiles"`
	Dependencies    int                        `json:"dependencies"`
	ByCategory      map[DependencyCategory]int `json:"byCategory,omitempty"`
}

// FolderGraph is the immutable result of parsing one folder batch: the
// documents that parsed, the file-level dependencies connecting them, the
// per-file failures, and aggregate counts.
type FolderGraph struct {
	FolderName   string           `json:"folderName,omitempty"`
	Documents    []Document       `json:"documents"`
	Dependencies []FileDependency `json:"dependencies"`
	Failures     []ParseFailure   `json:"failures,omitempty"`
	Metadata     FolderMetadata   `json:"metadata"`
}
