package mode

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/hdcodedev/gh-context/internal/ref"
)

func intPtr(n int) *int { return &n }

func bulkFlags() Flags {
	return Flags{Input: "owner/repo", Bulk: true, State: StateOpen, PerPage: 30, Pages: 1}
}

func TestSelect_Single(t *testing.T) {
	t.Parallel()

	for _, f := range []Flags{
		{Input: "o/r#1", Issue: true},
		{Input: "o/r#1", PR: true, Clip: true},
		{Input: "https://github.com/o/r/pull/1", Clip: true, Out: "ctx.md"},
		{Input: "https://github.com/o/r/pull/1", PerPage: 0, Pages: 0},
	} {
		m, err := Select(f)
		if err != nil {
			t.Fatalf("Select(%+v) error = %v", f, err)
		}
		s, ok := m.(Single)
		if !ok {
			t.Fatalf("Select(%+v) = %T, want Single", f, m)
		}
		want := Single{Input: f.Input, ForceIssue: f.Issue, ForcePR: f.PR, Clip: f.Clip, OutFile: f.Out}
		if s != want {
			t.Errorf("Select(%+v) = %+v, want %+v", f, s, want)
		}
	}
}

func TestSelect_ConflictingFlagsFirst(t *testing.T) {
	t.Parallel()

	for _, f := range []Flags{
		{Input: "o/r#1", Issue: true, PR: true},
		{Input: "o/r", Bulk: true, Issue: true, PR: true},
		{Input: "o/r", Issue: true, PR: true, From: intPtr(3)},
	} {
		if _, err := Select(f); !errors.Is(err, ref.ErrConflictingFlags) {
			t.Errorf("Select(%+v) error = %v, want ErrConflictingFlags", f, err)
		}
	}
}

func TestValidateBulk(t *testing.T) {
	t.Parallel()

	b, err := ValidateBulk(bulkFlags())
	if err != nil {
		t.Fatalf("ValidateBulk(defaults) error = %v", err)
	}
	want := Bulk{Input: "owner/repo", State: StateOpen, PerPage: 30, Pages: 1}
	if b != want {
		t.Errorf("ValidateBulk = %+v, want %+v", b, want)
	}

	tests := []struct {
		name    string
		mutate  func(*Flags)
		wantMsg string
	}{
		{"pr flag", func(f *Flags) { f.PR = true }, "issues only"},
		{"clip flag", func(f *Flags) { f.Clip = true }, "not supported"},
		{"per-page zero", func(f *Flags) { f.PerPage = 0 }, "per-page"},
		{"per-page overflow", func(f *Flags) { f.PerPage = 101 }, "per-page"},
		{"zero pages", func(f *Flags) { f.Pages = 0 }, "pages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := bulkFlags()
			tt.mutate(&f)
			_, err := ValidateBulk(f)
			if !errors.Is(err, ErrIllegalFlagCombination) {
				t.Fatalf("ValidateBulk error = %v, want ErrIllegalFlagCombination", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("ValidateBulk error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateBulk_Boundaries(t *testing.T) {
	t.Parallel()

	for _, perPage := range []int{1, 100} {
		f := bulkFlags()
		f.PerPage = perPage
		if _, err := ValidateBulk(f); err != nil {
			t.Errorf("ValidateBulk(per-page=%d) error = %v", perPage, err)
		}
	}

	f := bulkFlags()
	f.State = ""
	b, err := ValidateBulk(f)
	if err != nil || b.State != StateOpen {
		t.Errorf("ValidateBulk(empty state) = %+v, %v; want open", b, err)
	}

	f.State = "merged"
	if _, err := ValidateBulk(f); !errors.Is(err, ErrInvalidState) {
		t.Errorf("ValidateBulk(state=merged) error = %v, want ErrInvalidState", err)
	}
}

func TestValidateRange(t *testing.T) {
	t.Parallel()

	r, ok, err := ValidateRange(Flags{Input: "o/r", From: intPtr(10), To: intPtr(12)})
	if err != nil || !ok {
		t.Fatalf("ValidateRange(10..12) = %v, %v", ok, err)
	}
	if r.From != 10 || r.To != 12 {
		t.Errorf("ValidateRange bounds = %d..%d, want 10..12", r.From, r.To)
	}

	_, ok, err = ValidateRange(Flags{Input: "o/r"})
	if ok || err != nil {
		t.Errorf("ValidateRange(no bounds) = %v, %v; want not requested", ok, err)
	}

	single, ok, err := ValidateRange(Flags{Input: "o/r", From: intPtr(5), To: intPtr(5)})
	if err != nil || !ok {
		t.Fatalf("ValidateRange(5..5) = %+v, %v, %v", single, ok, err)
	}
	if nums, err := single.Numbers(); err != nil || !reflect.DeepEqual(nums, []int{5}) {
		t.Errorf("Numbers(5..5) = %v, %v", nums, err)
	}

	widest, ok, err := ValidateRange(Flags{Input: "o/r", From: intPtr(1), To: intPtr(MaxRangeSize)})
	if err != nil || !ok {
		t.Fatalf("ValidateRange(1..%d) = %v, %v", MaxRangeSize, ok, err)
	}
	if nums, err := widest.Numbers(); err != nil || len(nums) != MaxRangeSize || nums[MaxRangeSize-1] != MaxRangeSize {
		t.Errorf("Numbers(1..%d) has %d entries, err %v", MaxRangeSize, len(nums), err)
	}
}

func TestRange_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       Range
		want    int
		wantErr bool
	}{
		{"single", Range{From: 7, To: 7}, 1, false},
		{"descending", Range{From: 9, To: 3}, 0, false},
		{"at cap", Range{From: 0, To: MaxRangeSize - 1}, MaxRangeSize, false},
		{"over cap", Range{From: 0, To: MaxRangeSize}, 0, true},
		{"whole int range", Range{From: 0, To: math.MaxInt}, 0, true},
		{"min to max", Range{From: math.MinInt, To: math.MaxInt}, 0, true},
		{"near max", Range{From: math.MaxInt - 2, To: math.MaxInt}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.r.Size()
			if tt.wantErr {
				if !errors.Is(err, ErrRangeTooLarge) {
					t.Fatalf("Size() error = %v, want ErrRangeTooLarge", err)
				}
				if nums, err := tt.r.Numbers(); nums != nil || !errors.Is(err, ErrRangeTooLarge) {
					t.Errorf("Numbers() = %d entries, %v; want ErrRangeTooLarge", len(nums), err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("Size() = %d, %v; want %d", got, err, tt.want)
			}
			nums, err := tt.r.Numbers()
			if err != nil || len(nums) != tt.want {
				t.Fatalf("Numbers() = %v, %v", nums, err)
			}
			if tt.want > 0 && nums[len(nums)-1] != tt.r.To {
				t.Errorf("Numbers() ends at %d, want %d", nums[len(nums)-1], tt.r.To)
			}
		})
	}
}

func TestValidateRange_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flags   Flags
		wantErr error
		wantMsg string
	}{
		{"descending", Flags{From: intPtr(12), To: intPtr(10)}, ErrDescendingRange, "less than or equal"},
		{"from only", Flags{From: intPtr(10)}, ErrBoundsMustBePaired, "provided together"},
		{"to only", Flags{To: intPtr(10)}, ErrBoundsMustBePaired, "provided together"},
		{"with bulk", Flags{Bulk: true, PerPage: 30, Pages: 1, From: intPtr(10), To: intPtr(12)}, ErrIllegalFlagCombination, "--bulk"},
		{"issue flag", Flags{Issue: true, From: intPtr(1), To: intPtr(2)}, ErrIllegalFlagCombination, "PRs only"},
		{"clip flag", Flags{Clip: true, From: intPtr(1), To: intPtr(2)}, ErrIllegalFlagCombination, "not supported"},
		{"negative", Flags{From: intPtr(-1), To: intPtr(2)}, ErrIllegalFlagCombination, "non-negative"},
		{"whole int range", Flags{From: intPtr(0), To: intPtr(math.MaxInt)}, ErrRangeTooLarge, "more than"},
		{"over cap", Flags{From: intPtr(10), To: intPtr(10 + MaxRangeSize)}, ErrRangeTooLarge, "more than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.flags.Input = "o/r"
			_, ok, err := ValidateRange(tt.flags)
			if ok {
				t.Fatal("ValidateRange ok = true, want rejection")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateRange error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("ValidateRange error = %q, want it to contain %q", err, tt.wantMsg)
			}

			// Select surfaces the same rejection.
			if _, err := Select(tt.flags); !errors.Is(err, tt.wantErr) {
				t.Errorf("Select error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSelect_Modes(t *testing.T) {
	t.Parallel()

	m, err := Select(Flags{Input: "o/r", From: intPtr(1), To: intPtr(3), Out: "prs"})
	if err != nil {
		t.Fatalf("Select(range) error = %v", err)
	}
	r, ok := m.(Range)
	if !ok || r.OutDir != "prs" {
		t.Fatalf("Select(range) = %#v", m)
	}
	if nums, err := r.Numbers(); err != nil || !reflect.DeepEqual(nums, []int{1, 2, 3}) {
		t.Errorf("Numbers() = %v, %v", nums, err)
	}

	f := bulkFlags()
	f.Out = "issues"
	m, err = Select(f)
	if err != nil {
		t.Fatalf("Select(bulk) error = %v", err)
	}
	if b, ok := m.(Bulk); !ok || b.OutDir != "issues" {
		t.Errorf("Select(bulk) = %#v", m)
	}
}

func TestParseState(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"open", "closed", "all", "OPEN"} {
		if _, err := ParseState(s); err != nil {
			t.Errorf("ParseState(%q) error = %v", s, err)
		}
	}
	if _, err := ParseState("draft"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("ParseState(draft) error = %v, want ErrInvalidState", err)
	}
}
