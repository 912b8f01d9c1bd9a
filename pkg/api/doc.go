// Package api holds the versioned wire types for machine-readable output.
// Internal packages may change shape freely; these may not.
package api
