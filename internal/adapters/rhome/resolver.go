// Package rhome locates the R executable inside an installation root.
package rhome

import (
	"path/filepath"
	"runtime"

	"go.trai.ch/rlink/internal/core/ports"
)

// Resolver computes the path to the R executable for an installation root.
type Resolver struct {
	verifier ports.PathVerifier
}

// NewResolver creates a new Resolver.
func NewResolver(verifier ports.PathVerifier) *Resolver {
	return &Resolver{
		verifier: verifier,
	}
}

// Locate returns the R executable path under rHome for the current operating
// system. The path is not required to exist: if R is absent the subsequent
// invocation fails and the run degrades to an empty configuration.
func (r *Resolver) Locate(rHome string) string {
	return locate(rHome, runtime.GOOS, r.verifier.Exists)
}

// locate keeps the probe order testable across operating systems.
//
// Windows installs R under a 64-bit-specific subdirectory; probe bin/x64
// first and fall back to the sibling path. Everywhere else the layout is
// fixed.
func locate(rHome, goos string, exists func(string) bool) string {
	if goos == "windows" {
		candidate := filepath.Join(rHome, "bin", "x64", "R.exe")
		if exists(candidate) {
			return candidate
		}
		return filepath.Join(rHome, "bin", "R.exe")
	}
	return filepath.Join(rHome, "bin", "R")
}
