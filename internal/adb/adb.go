// Package adb executes diagnostic commands against Android devices through
// the adb binary and returns their textual output. It is the transport
// layer: it knows nothing about metric semantics and bounds command
// execution time only through the caller's context.
package adb

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound is returned when the adb binary is missing or cannot be started.
var ErrNotFound = errors.New("adb binary not found")

// CommandError is returned when adb exits with a non-zero status.
type CommandError struct {
	Stderr string // Trimmed stderr output of the failed command.
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("adb command failed: %s", e.Stderr)
}

// Client runs adb commands against a resolved adb binary.
type Client struct {
	path string
}

// Opt configures a Client.
type Opt func(*Client)

// WithPath sets the adb binary path to the first non-empty candidate.
// Typical candidates, in priority order: a user-configured path, a bundled
// binary, and plain "adb" from PATH.
func WithPath(paths ...string) Opt {
	return func(c *Client) {
		for _, p := range paths {
			if strings.TrimSpace(p) != "" {
				c.path = strings.TrimSpace(p)
				break
			}
		}
	}
}

// New creates a Client. Without options the adb binary is looked up in PATH.
func New(opts ...Opt) *Client {
	c := &Client{path: "adb"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes a host-level adb command and returns its stdout.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.path, args...)

	var stderr strings.Builder
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{Stderr: strings.TrimSpace(stderr.String())}
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, c.path)
	}

	return string(out), nil
}

// RunDevice executes an adb command against the device with the given serial.
func (c *Client) RunDevice(ctx context.Context, deviceID string, args ...string) (string, error) {
	full := make([]string, 0, len(args)+2)
	full = append(full, "-s", deviceID)
	full = append(full, args...)
	return c.Run(ctx, full...)
}
