// Package folder processes one upload batch: it parses every file through a
// bounded worker pool (parsing is CPU-bound and embarrassingly parallel, so
// one worker per file up to the configured limit yields identical results to
// a sequential run) and then resolves free-text workflow references against
// the batch's own file-name index to produce file-level dependency edges.
//
// The batch is sorted by file name before resolution so that the substring
// fallback's tie-break is reproducible rather than an accident of map
// iteration order.
package folder
