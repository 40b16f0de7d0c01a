// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file models a single processing unit of a document.
//
// Why is the property bag a cty.Value?
//
// The source format is duck-typed: the same logical field can arrive as a
// string, a repeated element or an arbitrarily nested sub-tree depending on
// which authoring tool emitted the file. Representing the bag as a recursive
// cty value (string | number | bool | tuple | object) makes every probe and
// recursive scan total over arbitrary input shapes, instead of panic-prone
// type assertions on an untyped blob.
package model

import (
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// NodeKind is the coarse classification of a node.
type NodeKind string

const (
	// KindStep is a transformation step.
	KindStep NodeKind = "step"
	// KindJobEntry is a job entry that is neither a start nor an end marker.
	KindJobEntry NodeKind = "job-entry"
	// KindStart is a job's START entry.
	KindStart NodeKind = "start"
	// KindEnd is a job's terminal SPECIAL entry (success/dummy).
	KindEnd NodeKind = "end"
)

// Position is a 2D layout hint read from the source document.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one processing unit of a document.
type Node struct {
	// ID is derived from the declared name, or a positional fallback
	// ("step_<n>" / "entry_<n>") when the name is absent. Duplicates are
	// tolerated, preserving source fidelity.
	ID string `json:"id"`
	// Name is the display name as declared in the source.
	Name string `json:"name"`
	// Kind is the coarse classification.
	Kind NodeKind `json:"kind"`
	// Type is the fine-grained declared sub-type, e.g. "TableInput".
	Type string `json:"type"`
	// Position is the layout hint, defaulted to (100,100) when the source
	// omits it or declares it non-numerically.
	Position Position `json:"position"`
	// Properties is the node's complete source sub-tree, preserved verbatim.
	// It is immutable once constructed.
	Properties ctyjson.SimpleJSONValue `json:"properties"`
}

// Props returns the node's raw property bag. A node built without properties
// yields an empty object rather than a nil value, so probing is always safe.
func (n Node) Props() cty.Value {
	if n.Properties.Value == cty.NilVal {
		return cty.EmptyObjectVal
	}
	return n.Properties.Value
}
