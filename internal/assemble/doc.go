// Package assemble composes parsed documents into their final graph forms:
// per-document structural statistics and the folder-level graph with its
// aggregate counts. Everything here is a pure function of already-built
// input; assembly never fails and never mutates what it is given.
package assemble
