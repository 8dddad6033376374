package mode

import (
	"fmt"

	"github.com/hdcodedev/gh-context/internal/ref"
)

// Flags is the raw flag bag of one invocation.
type Flags struct {
	Input string
	Out   string
	Clip  bool
	Issue bool
	PR    bool

	Bulk    bool
	State   State
	PerPage int
	Pages   int

	// From and To are nil when the flag was not given.
	From *int
	To   *int
}

// Select validates f and returns the single mode it activates.
// Conflicting --issue/--pr is rejected first, whatever the mode.
func Select(f Flags) (Mode, error) {
	if f.Issue && f.PR {
		return nil, ref.ErrConflictingFlags
	}

	r, ok, err := ValidateRange(f)
	if err != nil {
		return nil, err
	}
	if ok {
		return r, nil
	}

	if f.Bulk {
		return ValidateBulk(f)
	}

	return Single{
		Input:      f.Input,
		ForceIssue: f.Issue,
		ForcePR:    f.PR,
		Clip:       f.Clip,
		OutFile:    f.Out,
	}, nil
}

// ValidateBulk checks the bulk flag group.
func ValidateBulk(f Flags) (Bulk, error) {
	if f.PR {
		return Bulk{}, fmt.Errorf("%w: --bulk supports issues only; remove --pr", ErrIllegalFlagCombination)
	}
	if f.Clip {
		return Bulk{}, fmt.Errorf("%w: --clip is not supported with --bulk", ErrIllegalFlagCombination)
	}
	if f.PerPage < 1 || f.PerPage > MaxPerPage {
		return Bulk{}, fmt.Errorf("%w: --per-page must be between 1 and %d, got %d", ErrIllegalFlagCombination, MaxPerPage, f.PerPage)
	}
	if f.Pages < 1 {
		return Bulk{}, fmt.Errorf("%w: --pages must be at least 1, got %d", ErrIllegalFlagCombination, f.Pages)
	}

	state := StateOpen
	if f.State != "" {
		var err error
		if state, err = ParseState(string(f.State)); err != nil {
			return Bulk{}, err
		}
	}

	return Bulk{
		Input:   f.Input,
		State:   state,
		PerPage: f.PerPage,
		Pages:   f.Pages,
		OutDir:  f.Out,
	}, nil
}

// ValidateRange checks the range flag group. ok is false, with a nil error,
// when neither bound was given: range mode was not requested.
func ValidateRange(f Flags) (r Range, ok bool, err error) {
	if f.From == nil && f.To == nil {
		return Range{}, false, nil
	}
	if f.Bulk {
		return Range{}, false, fmt.Errorf("%w: --from/--to cannot be combined with --bulk", ErrIllegalFlagCombination)
	}
	if f.Issue {
		return Range{}, false, fmt.Errorf("%w: --from/--to supports PRs only; remove --issue", ErrIllegalFlagCombination)
	}
	if f.Clip {
		return Range{}, false, fmt.Errorf("%w: --clip is not supported with --from/--to", ErrIllegalFlagCombination)
	}
	if f.From == nil || f.To == nil {
		return Range{}, false, ErrBoundsMustBePaired
	}
	if *f.From < 0 || *f.To < 0 {
		return Range{}, false, fmt.Errorf("%w: --from and --to must be non-negative", ErrIllegalFlagCombination)
	}
	if *f.From > *f.To {
		return Range{}, false, fmt.Errorf("%w (got %d > %d)", ErrDescendingRange, *f.From, *f.To)
	}

	r = Range{Input: f.Input, From: *f.From, To: *f.To, OutDir: f.Out}
	if _, err := r.Size(); err != nil {
		return Range{}, false, err
	}
	return r, true, nil
}
