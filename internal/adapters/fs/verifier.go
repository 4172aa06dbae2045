// Package fs provides filesystem adapters.
package fs

import "os"

// Verifier implements ports.PathVerifier using os.Stat.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Exists reports whether path exists on the filesystem. Any stat failure
// counts as nonexistent: a search path the linker cannot use is skipped, not
// diagnosed.
func (v *Verifier) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
