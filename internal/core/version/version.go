// Package version holds the build version.
package version

// Version is overridden at build time via
// -ldflags "-X github.com/nurmister/ytsum/internal/core/version.Version=v1.2.3"
var Version = "dev"
