// Package shell provides the subprocess runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/rlink/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// CaptureOutput runs the executable at path with args and returns its
// standard output as text.
//
// Anything the process writes to standard error is echoed line by line to the
// logger at info level, prefixed with "> ", whether or not the process
// succeeds. Diagnostics from `R CMD config` are informational, never fatal.
func (r *Runner) CaptureOutput(ctx context.Context, path string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // executable path derives from R_HOME

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	r.echoStderr(stderr.String())

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", zerr.With(zerr.Wrap(runErr, "command failed"), "exit_code", exitCode)
	}

	return stdout.String(), nil
}

// echoStderr surfaces subprocess diagnostics as informational log lines.
func (r *Runner) echoStderr(text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		r.logger.Info("> " + line)
	}
}
