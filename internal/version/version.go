// Package version holds the CLI version.
package version

// Version is set at build time via -ldflags.
var Version = "dev"
