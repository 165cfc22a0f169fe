// Package version exposes build-time version information for lasctl.
//
// Version, Commit, and Date default to development values and are
// overridden by -ldflags at release build time. When unset, the
// package falls back to module build info embedded by the toolchain.
package version
