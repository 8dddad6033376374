package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hdcodedev/gh-context/internal/location"
	"github.com/hdcodedev/gh-context/internal/mode"
	"github.com/hdcodedev/gh-context/internal/ref"
	"github.com/hdcodedev/gh-context/internal/render"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks command-line errors reported by cobra (unknown flags,
// bad values, wrong argument count).
var errUsage = errors.New("usage error")

// usageErrors are the kinds caused by how the command was invoked rather
// than by gh or the filesystem failing.
var usageErrors = []error{
	errUsage,
	ref.ErrInvalidFormat,
	ref.ErrAmbiguousShorthand,
	ref.ErrConflictingFlags,
	mode.ErrIllegalFlagCombination,
	mode.ErrBoundsMustBePaired,
	mode.ErrDescendingRange,
	mode.ErrRangeTooLarge,
	mode.ErrInvalidState,
	render.ErrInvalidFormat,
	location.ErrNotADirectory,
	location.ErrIsADirectory,
}

func isUsageError(err error) bool {
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case isUsageError(err):
		return exitUsage
	default:
		return exitFailure
	}
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return errors.Join(errUsage, err)
		}
		return nil
	}
}
