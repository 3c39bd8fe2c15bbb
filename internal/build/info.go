// Package build exposes build-time metadata injected via ldflags.
package build

// Version and Commit are set at build time by:
//
//	-ldflags "-X github.com/mwhitten/apiforge/internal/build.Version=... ..."
var (
	Version = "dev"
	Commit  = "unknown"
)
