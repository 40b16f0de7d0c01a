// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// Edge is one control/data-flow connection between two nodes of the same
// document. Multiple edges between the same pair are permitted and are not
// coalesced.
type Edge struct {
	// ID is synthesized as "hop_<index>" and is not stable across re-parses;
	// edges are never referenced by ID outside one graph instance.
	ID string `json:"id"`
	// From is the source node ID.
	From string `json:"from"`
	// To is the target node ID.
	To string `json:"to"`
	// Enabled is true unless the source carried the explicit disabled marker.
	Enabled bool `json:"enabled"`
	// Condition is the optional textual hop condition (job evaluation flags).
	Condition string `json:"condition,omitempty"`
}
