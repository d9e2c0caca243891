// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version is set at link time via `-ldflags -X github.com/contabancaria/contabancaria/buildvars.Version=...`.
// It is empty for local or development builds.
var Version string

// Commit is the VCS revision, also set at link time.
var Commit string

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}

// DisplayVersion is the version shown in the window title and by the
// version command, e.g. "1.2.0 (3f2a9c1)" or "dev".
func DisplayVersion() string {
	v := VersionOrDefault("dev")
	if len(Commit) > 0 {
		v += " (" + Commit + ")"
	}
	return v
}
