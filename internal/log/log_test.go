package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Printf("fetched %s #%d", "issue", 7)
		if got := buf.String(); got != "fetched issue #7" {
			t.Errorf("Printf output = %q, want %q", got, "fetched issue #7")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, true, true).Printf("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Printf wrote %q when quiet", buf.String())
		}
	})
}

func TestPrintln(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, false, false).Println("No issues found.")
	if got := buf.String(); got != "No issues found.\n" {
		t.Errorf("Println output = %q", got)
	}

	buf.Reset()
	New(&buf, false, true).Println("hidden")
	if buf.Len() != 0 {
		t.Errorf("Println wrote %q when quiet", buf.String())
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		dir     string
		want    string
	}{
		{"verbose without dir", true, false, "", "$ gh issue view 1 (25ms)\n"},
		{"verbose with dir", true, false, "/tmp", "[/tmp] $ gh issue view 1 (25ms)\n"},
		{"not verbose", false, false, "", ""},
		{"quiet overrides verbose", true, true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			done := New(&buf, tt.verbose, tt.quiet).Command(tt.dir, "gh", "issue", "view", "1")
			done(25 * time.Millisecond)
			if got := buf.String(); got != tt.want {
				t.Errorf("Command output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("key-val format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, true, false).Debug("timeline unavailable", "number", 12, "orphan")
		got := buf.String()
		if !strings.Contains(got, "timeline unavailable") || !strings.Contains(got, "number=12") {
			t.Errorf("Debug output = %q", got)
		}
		if strings.Contains(got, "orphan") {
			t.Errorf("Debug output = %q, should drop unpaired key", got)
		}
	})

	t.Run("silent when not verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Debug("nope", "k", "v")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when not verbose", buf.String())
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	l := New(io.Discard, true, false)
	if got := FromContext(WithLogger(context.Background(), l)); got != l {
		t.Error("FromContext did not return the stored logger")
	}

	fallback := FromContext(context.Background())
	if fallback.Writer() != io.Discard {
		t.Error("fallback logger should write to io.Discard")
	}
	if fallback.IsVerbose() {
		t.Error("fallback logger should not be verbose")
	}
}
