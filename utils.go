package main

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Runner runs an external command to completion and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner runs commands on the host. A zero timeout waits forever.
type execRunner struct {
	timeout time.Duration
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		cmdline := strings.Join(append([]string{name}, args...), " ")
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.Wrapf(err, "%s: %s", cmdline, msg)
		}
		return "", errors.Wrap(err, cmdline)
	}

	return normalizeNewlines(string(out)), nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// fieldAfter returns the trimmed text following the n-th colon of line,
// or "N/A" when line holds fewer than n colons.
func fieldAfter(line string, n int) string {
	parts := strings.SplitN(line, ":", n+1)
	if len(parts) <= n {
		return notAvailable
	}
	return strings.TrimSpace(parts[n])
}
