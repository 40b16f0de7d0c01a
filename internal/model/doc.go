// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of parsed Kettle ETL
// documents and the graphs derived from them. Its core purpose is to give the
// reader, extractors, analyzer and assembler a single, serialization-friendly
// vocabulary: every field is a primitive, string, number, ordered list or
// string-keyed map, so callers can persist or render the output without
// depending on any engine-internal type.
//
// # Core Concepts
//
//   - Document: one parsed source file (a transformation or a job), holding
//     its nodes, edges, declared connections and parameters, and the
//     dependency set inferred from its property bags.
//
//   - Node: one processing unit (a transformation step or a job entry). The
//     node's complete source sub-tree is preserved verbatim in its property
//     bag; the bag is the sole input to dependency inference.
//
//   - Edge: one directed hop between two nodes of the same document.
//
//   - Dependency / FileDependency: references discovered by heuristic
//     inference rather than declared structurally, within one document and
//     between sibling documents respectively.
//
//   - FolderGraph: the immutable result of parsing one batch of files,
//     including per-file failures and aggregate counts.
//
// All structures are produced in a single parse pass and never mutated after
// construction.
package model
