package ports

// PathVerifier answers filesystem existence checks.
//
// Candidate search paths come straight out of R's configuration and commonly
// reference optional, uninstalled backends; the emitter filters them through
// this predicate instead of statting the filesystem directly, keeping the
// extraction logic testable with literal strings.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type PathVerifier interface {
	// Exists reports whether path exists on the filesystem.
	Exists(path string) bool
}
