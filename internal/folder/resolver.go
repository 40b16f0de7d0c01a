// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file resolves free-text workflow references against sibling files.
//
// Why a deterministic substring tie-break?
//
// The substring fallback can match several sibling files at once (a reference
// "orders" against "orders.ktr" and "load_orders.ktr"). Picking "whichever a
// map yields first" makes batch output depend on construction order. The
// resolver instead prefers the candidate with the shortest base name, then
// the lexicographically smallest, which is both reproducible and the least
// speculative match.
package folder

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/model"
)

// Resolve matches each document's inferred workflow and file references
// against the batch's file-name index and emits one directed file-level
// dependency per successful resolution. Unresolved references are silently
// dropped: they point at files outside the batch, which is not an error.
func Resolve(ctx context.Context, docs []model.Document) []model.FileDependency {
	logger := ctxlog.FromContext(ctx)

	// Base name (extension stripped, lower-cased) -> full file name. On a
	// base-name collision the first file in sorted order keeps the slot.
	index := make(map[string]string, len(docs))
	var keys []string
	for _, d := range docs {
		base := normalizeRef(d.FileName)
		if _, exists := index[base]; !exists {
			index[base] = d.FileName
			keys = append(keys, base)
		}
	}
	sort.Strings(keys)

	var out []model.FileDependency
	for _, doc := range docs {
		for _, dep := range doc.Dependencies.SubWorkflows {
			if resolved, ok := resolveRef(index, keys, dep.Target, doc.FileName); ok {
				out = append(out, model.FileDependency{
					From:     doc.FileName,
					To:       resolved,
					Category: dep.Category,
					Detail:   dep.Target,
				})
			}
		}
		for _, dep := range doc.Dependencies.Files {
			if resolved, ok := resolveRef(index, keys, dep.Target, doc.FileName); ok {
				out = append(out, model.FileDependency{
					From:     doc.FileName,
					To:       resolved,
					Category: model.CategoryFileReference,
					Detail:   dep.Target,
				})
			}
		}
	}

	logger.Debug("Folder resolution complete.", "documents", len(docs), "dependencies", len(out))
	return out
}

// resolveRef resolves one reference: exact case-insensitive base-name match
// first, then substring containment in either direction over the remaining
// candidates. The referencing file itself is never a candidate.
func resolveRef(index map[string]string, keys []string, ref, selfFile string) (string, bool) {
	norm := normalizeRef(ref)
	if norm == "" {
		return "", false
	}

	if full, ok := index[norm]; ok {
		if full == selfFile {
			return "", false
		}
		return full, true
	}

	var candidates []string
	for _, key := range keys {
		if index[key] == selfFile {
			continue
		}
		if strings.Contains(key, norm) || strings.Contains(norm, key) {
			candidates = append(candidates, key)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
	return index[candidates[0]], true
}

// normalizeRef strips any path and extension and lower-cases the result.
func normalizeRef(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
