// Package cli processes command-line arguments into a validated app.Config.
// It owns the usage text and the argument-level validation; everything
// semantic happens in the app package.
package cli
