// Package heuristics holds the key and pattern tables that drive dependency
// inference. The tables are data, not control flow: adding support for a new
// authoring-tool variant means extending a list, not touching the analyzer.
//
// Defaults cover the stock Kettle vocabulary. A caller may overlay individual
// tables from an HCL file, the project's native configuration format.
package heuristics
