// Package ports defines the core interfaces for the application.
package ports

import "context"

// CommandRunner invokes an executable and captures its standard output.
//
// The R configuration fetch is injected through this interface so the
// pipeline can be tested against canned output without spawning processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// CaptureOutput runs the executable at path with args and returns its
	// standard output as text. Standard error is not part of the result;
	// implementations surface it as informational log output.
	//
	// It returns an error if the process fails to launch or exits non-zero.
	CaptureOutput(ctx context.Context, path string, args ...string) (string, error)
}
