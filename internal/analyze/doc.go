// Package analyze infers a document's dependencies from its nodes' raw
// property bags: file references, database connections, sub-workflow calls
// and ${...} variable usage, plus an independent re-derivation of the hop
// list used to cross-check the extractor's result.
//
// Everything here is best-effort string matching against human-authored free
// text. A miss is simply absent from the result, never an error; an
// incidental match is an accepted false positive. The key and pattern tables
// live in the heuristics package and are swappable.
package analyze
