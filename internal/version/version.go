// Package version holds the application version, overridden at build time with
// -ldflags "-X github.com/ndewijer/Stock-Chart-Viewer/internal/version.Version=...".
package version

var Version = "dev"
