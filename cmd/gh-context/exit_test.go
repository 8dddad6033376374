package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hdcodedev/gh-context/internal/github"
	"github.com/hdcodedev/gh-context/internal/location"
	"github.com/hdcodedev/gh-context/internal/mode"
	"github.com/hdcodedev/gh-context/internal/record"
	"github.com/hdcodedev/gh-context/internal/ref"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"ambiguous", ref.ErrAmbiguousShorthand, exitUsage},
		{"wrapped format", fmt.Errorf("%w: bad", ref.ErrInvalidFormat), exitUsage},
		{"descending", fmt.Errorf("%w (got 3 > 1)", mode.ErrDescendingRange), exitUsage},
		{"range too large", fmt.Errorf("%w: --from 0 --to 5000", mode.ErrRangeTooLarge), exitUsage},
		{"not a directory", fmt.Errorf("%w: --out x", location.ErrNotADirectory), exitUsage},
		{"joined usage", errors.Join(errUsage, errors.New("accepts 1 arg(s)")), exitUsage},
		{"gh failure", fmt.Errorf("%w: gh issue view: not found", github.ErrCommand), exitFailure},
		{"parse failure", fmt.Errorf("%w: unexpected EOF", record.ErrParse), exitFailure},
		{"gh missing", github.ErrGHNotFound, exitFailure},
		{"interrupted", context.Canceled, exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
