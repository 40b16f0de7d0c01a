// Package kgcty provides small helpers for probing arbitrarily shaped cty
// values, as produced by the kettle document reader. All helpers are total:
// nil, null or unknown values simply yield "not found" instead of panicking,
// which keeps heuristic probing over hostile input shapes error-free.
package kgcty
