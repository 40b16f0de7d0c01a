// Package testutil provides builders for Kettle document fixtures used
// across the engine's tests. The builders emit the stock structural variant
// of each format; tests exercising the fallback strategies write their
// variant XML inline instead.
package testutil
