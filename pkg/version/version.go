// Package version holds the build version, set with
// -ldflags "-X github.com/Dicklesworthstone/responsive_viewer/pkg/version.Version=v1.2.3".
package version

// Version is the current release tag.
var Version = "v0.1.0"
