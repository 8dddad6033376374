package github

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hdcodedev/gh-context/internal/cmd"
)

// ErrGHNotFound indicates gh CLI is not installed or not in PATH
var ErrGHNotFound = errors.New("gh not found: please install GitHub CLI (https://cli.github.com)")

// ErrGHNotAuthenticated indicates gh CLI is installed but not authenticated
var ErrGHNotAuthenticated = errors.New("gh not authenticated: please run 'gh auth login'")

// Check verifies that the gh binary is available and authenticated.
func (c *Client) Check(ctx context.Context) error {
	if _, err := exec.LookPath(c.bin()); err != nil {
		return ErrGHNotFound
	}

	// gh auth status exits non-zero when not authenticated
	err := cmd.RunContext(ctx, "", c.bin(), "auth", "status")
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	msg := err.Error()
	if strings.Contains(msg, "not logged") || strings.Contains(msg, "no accounts") {
		return ErrGHNotAuthenticated
	}
	if msg != "" {
		return fmt.Errorf("gh auth check failed: %s", msg)
	}
	return ErrGHNotAuthenticated
}
