// Package render turns a unified record into JSON or Markdown.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hdcodedev/gh-context/internal/record"
)

// ErrInvalidFormat indicates an unknown --format value.
var ErrInvalidFormat = errors.New("invalid format")

// Format selects the output encoding.
type Format string

const (
	JSON     Format = "json"
	Markdown Format = "md"
)

// ValidFormats lists accepted --format values.
var ValidFormats = []string{string(Markdown), string(JSON)}

// ParseFormat parses a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, Markdown:
		return f, nil
	}
	return "", fmt.Errorf("%w %q: must be one of %s", ErrInvalidFormat, s, strings.Join(ValidFormats, ", "))
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Render encodes rec in format f.
func Render(rec *record.Record, f Format) ([]byte, error) {
	switch f {
	case JSON:
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize record to JSON: %w", err)
		}
		return out, nil
	case Markdown:
		return []byte(ToMarkdown(rec)), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidFormat, f)
	}
}

// ToMarkdown renders rec as a Markdown document: title, URL, body, numbered
// comments and a one-line-per-event timeline.
func ToMarkdown(rec *record.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", rec.Title)
	fmt.Fprintf(&b, "URL: %s\n\n", rec.Metadata.URL)

	b.WriteString("## Body\n\n")
	b.WriteString(rec.Body)
	b.WriteString("\n\n")

	b.WriteString("## Comments\n\n")
	for i, c := range rec.Comments {
		fmt.Fprintf(&b, "### Comment %d by %s\n", i+1, c.Author)
		if c.CreatedAt != "" {
			fmt.Fprintf(&b, "_%s_\n", c.CreatedAt)
		}
		b.WriteString("\n")
		b.WriteString(c.Body)
		b.WriteString("\n\n---\n\n")
	}

	b.WriteString("## Timeline Events\n\n")
	for _, ev := range rec.Events {
		kind, ok := ev.Kind()
		if !ok {
			continue
		}
		actor := ev.Actor()
		if actor == "" {
			actor = "unknown"
		}
		at := ev.CreatedAt()
		if at == "" {
			at = "-"
		}
		fmt.Fprintf(&b, "- **%s** by **%s** at %s\n", kind, actor, at)
	}

	return b.String()
}
