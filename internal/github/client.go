// Package github fetches issues and pull requests through the gh CLI.
package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hdcodedev/gh-context/internal/cmd"
)

// ErrCommand indicates a gh invocation that failed or timed out.
var ErrCommand = errors.New("gh command failed")

// DefaultTimeout bounds a single gh invocation.
const DefaultTimeout = 2 * time.Minute

// Client runs gh commands. The zero value uses "gh" from PATH and
// DefaultTimeout.
type Client struct {
	// Path is the gh binary, "gh" when empty.
	Path string
	// Timeout bounds each invocation, DefaultTimeout when zero.
	Timeout time.Duration
}

// New creates a Client for the given binary and per-command timeout.
func New(path string, timeout time.Duration) *Client {
	return &Client{Path: path, Timeout: timeout}
}

func (c *Client) bin() string {
	if c.Path == "" {
		return "gh"
	}
	return c.Path
}

func (c *Client) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// output runs gh with args under the client timeout. what names the
// operation in error messages.
func (c *Client) output(ctx context.Context, what string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	out, err := cmd.OutputContext(ctx, "", c.bin(), args...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s timed out after %s", ErrCommand, what, c.timeout())
		}
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrCommand, what, err)
	}
	return out, nil
}
