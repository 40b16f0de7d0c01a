// Package kettle implements the document reader for Kettle ETL definition
// files: transformations (.ktr) and jobs (.kjb), both XML. The reader is a
// pure transform from already-materialized bytes to a duck-typed cty tree
// plus a document kind; it performs no I/O of its own.
//
// Kind detection runs in a fixed order: the file extension decides when it is
// unambiguous, and for a plain .xml extension the parsed root tag name is
// inspected instead. Anything else fails with ErrUnrecognizedFormat.
//
// A failure here is fatal only for the one document concerned. Folder batches
// collect the failure and continue with the remaining files.
package kettle
