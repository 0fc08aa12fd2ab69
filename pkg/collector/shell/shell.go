// Package shell runs external probe utilities with bounded execution time.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/nodescope/nodescope/pkg/defaults"
	nerrors "github.com/nodescope/nodescope/pkg/errors"
)

// DefaultTimeout bounds a single probe utility invocation.
const DefaultTimeout = defaults.ProbeTimeout

// Run executes a command and returns its trimmed stdout.
func Run(ctx context.Context, name string, args ...string) (string, error) {
	return RunTimeout(ctx, DefaultTimeout, name, args...)
}

// RunTimeout executes a command with an explicit timeout and returns its
// trimmed stdout. Stderr is folded into the error, and the error carries a
// code separating missing tools from failed and timed-out runs.
func RunTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", classify(ctx, name, err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

func classify(ctx context.Context, name string, err error, stderr string) error {
	code := nerrors.ErrCodeCommandFailed
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		code = nerrors.ErrCodeTimeout
	case errors.Is(err, exec.ErrNotFound):
		code = nerrors.ErrCodeToolMissing
	}

	fields := map[string]any{"command": name}
	if stderr != "" {
		fields["stderr"] = stderr
	}
	return nerrors.WrapWithContext(code, name+" failed", err, fields)
}
