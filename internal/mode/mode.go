// Package mode selects and validates the run mode of an invocation.
//
// Exactly one of Single, Bulk or Range is produced by Select. Each mode
// carries only the parameters that are legal for it, so the output location
// is an OutFile for Single and an OutDir for Bulk and Range.
package mode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIllegalFlagCombination indicates a flag that the selected mode forbids.
	ErrIllegalFlagCombination = errors.New("illegal flag combination")

	// ErrBoundsMustBePaired indicates only one of --from and --to was given.
	ErrBoundsMustBePaired = errors.New("--from and --to must be provided together")

	// ErrDescendingRange indicates --from is greater than --to.
	ErrDescendingRange = errors.New("--from must be less than or equal to --to")

	// ErrInvalidState indicates an unknown --state value.
	ErrInvalidState = errors.New("invalid state")

	// ErrRangeTooLarge indicates a --from/--to interval longer than MaxRangeSize.
	ErrRangeTooLarge = errors.New("range too large")
)

// MaxPerPage is the largest page size the listing endpoint accepts.
const MaxPerPage = 100

// MaxRangeSize caps the number of pull requests one range run fetches.
const MaxRangeSize = 1000

// State filters issues by their open/closed state in bulk mode.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
	StateAll    State = "all"
)

// ValidStates lists accepted --state values in help order.
var ValidStates = []string{string(StateOpen), string(StateClosed), string(StateAll)}

// ParseState parses a --state value.
func ParseState(s string) (State, error) {
	switch st := State(strings.ToLower(s)); st {
	case StateOpen, StateClosed, StateAll:
		return st, nil
	}
	return "", fmt.Errorf("%w %q: must be one of %s", ErrInvalidState, s, strings.Join(ValidStates, ", "))
}

// Mode is one of Single, Bulk or Range.
type Mode interface {
	isMode()
}

// Single fetches one issue or pull request.
type Single struct {
	Input      string
	ForceIssue bool
	ForcePR    bool
	Clip       bool
	OutFile    string // empty = default location
}

// Bulk fetches every issue of a repository matching State.
type Bulk struct {
	Input   string
	State   State
	PerPage int
	Pages   int
	OutDir  string // empty = "<repo>-issues"
}

// Range fetches every pull request numbered From through To.
type Range struct {
	Input  string
	From   int
	To     int
	OutDir string // empty = "<repo>-prs"
}

func (Single) isMode() {}
func (Bulk) isMode()   {}
func (Range) isMode()  {}

// Size returns the length of the closed interval [From, To], zero when it
// is descending. Intervals longer than MaxRangeSize fail with
// ErrRangeTooLarge; the bounds may be any ints.
func (r Range) Size() (int, error) {
	if r.To < r.From {
		return 0, nil
	}
	// Modular subtraction yields the exact distance for any To >= From.
	if span := uint64(r.To) - uint64(r.From); span >= MaxRangeSize {
		return 0, fmt.Errorf("%w: --from %d --to %d covers more than %d pull requests", ErrRangeTooLarge, r.From, r.To, MaxRangeSize)
	}
	return r.To - r.From + 1, nil
}

// Numbers returns the closed interval [From, To].
func (r Range) Numbers() ([]int, error) {
	size, err := r.Size()
	if err != nil {
		return nil, err
	}
	nums := make([]int, size)
	for i := range nums {
		nums[i] = r.From + i
	}
	return nums, nil
}
