// Package version exposes build metadata for jrdap-install.
//
// Version, Commit and BuildTime are injected via -ldflags "-X ..." and keep
// placeholder values for local builds.
package version
