// Package dag provides the generic directed-graph topology used for
// structural statistics over parsed documents: boundary queries (entry
// points, end points, isolated nodes), dependency queries, and cycle
// detection. It never mutates the domain model; the assembler feeds it node
// IDs and edges and reads the answers back.
package dag
