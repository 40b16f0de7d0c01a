// Package extract walks a parsed document tree and produces the uniform node
// and edge lists, regardless of which of the known structural variants the
// source format used.
//
// Node extraction reads fixed well-known fields with defaults; a missing or
// non-numeric field never fails the parse. Edge extraction tries an ordered
// list of hop-placement strategies and returns the first one that yields at
// least one edge; a document with no recognizable hop structure is a valid,
// disconnected document, not an error.
package extract
