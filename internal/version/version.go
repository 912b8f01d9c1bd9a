// internal/version/version.go
package version

// Version is the toolkit release. Overridable at build time with
// -ldflags "-X pbxplore/internal/version.Version=...".
var Version = "1.0.0"
