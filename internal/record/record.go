// Package record defines the unified representation shared by issues and
// pull requests after fetch.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hdcodedev/gh-context/internal/ref"
)

// ErrParse indicates a gateway response that is not well-formed.
var ErrParse = errors.New("malformed gh response")

const (
	ghostAuthor   = "ghost"
	unknownAuthor = "unknown"
)

// Metadata identifies the fetched item.
type Metadata struct {
	Repo   string `json:"repo"`
	Number int    `json:"number"`
	Type   string `json:"type"` // "issue" or "pr"
	URL    string `json:"url"`
	Author string `json:"author"`
}

// Comment is one conversation comment, in thread order.
type Comment struct {
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Record is the normalized item consumed by the renderers.
type Record struct {
	Metadata Metadata  `json:"metadata"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Comments []Comment `json:"comments"`
	Events   []Event   `json:"events"`
}

// Event is an opaque timeline entry. The original JSON is kept verbatim and
// re-emitted on marshal; only a few fields are read through accessors.
type Event struct {
	raw    json.RawMessage
	fields map[string]any
}

// UnmarshalJSON keeps the raw bytes and decodes object fields.
// Non-object entries are kept but expose no fields.
func (e *Event) UnmarshalJSON(b []byte) error {
	e.raw = append(json.RawMessage(nil), b...)
	e.fields = nil
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '{' {
		return json.Unmarshal(b, &e.fields)
	}
	return nil
}

// MarshalJSON re-emits the original entry.
func (e Event) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("{}"), nil
	}
	return e.raw, nil
}

// Get returns a top-level field.
func (e Event) Get(key string) (any, bool) {
	v, ok := e.fields[key]
	return v, ok
}

// Kind returns the "event" field, e.g. "labeled" or "closed".
func (e Event) Kind() (string, bool) {
	return e.str("event")
}

// Actor returns actor.login, or "" when absent.
func (e Event) Actor() string {
	actor, ok := e.fields["actor"].(map[string]any)
	if !ok {
		return ""
	}
	login, _ := actor["login"].(string)
	return login
}

// CreatedAt returns the "created_at" field, or "" when absent.
func (e Event) CreatedAt() string {
	s, _ := e.str("created_at")
	return s
}

func (e Event) str(key string) (string, bool) {
	s, ok := e.fields[key].(string)
	return s, ok
}

// viewAuthor, viewComment and viewResponse mirror the JSON written by
// "gh issue view" and "gh pr view" with --json title,body,url,author,comments,number.
type viewAuthor struct {
	Login string `json:"login"`
}

type viewComment struct {
	Author    *viewAuthor `json:"author"`
	Body      string      `json:"body"`
	CreatedAt string      `json:"createdAt"`
}

type viewResponse struct {
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	URL      string        `json:"url"`
	Number   int           `json:"number"`
	Comments []viewComment `json:"comments"`
	Author   *viewAuthor   `json:"author"`
}

// Build normalizes a raw view response for t into a Record.
// events is attached as-is and may be nil.
func Build(t ref.Target, view []byte, events []Event) (*Record, error) {
	var resp viewResponse
	if err := json.Unmarshal(view, &resp); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", ErrParse, t, err)
	}
	if resp.URL == "" {
		return nil, fmt.Errorf("%w for %s: missing url", ErrParse, t)
	}

	comments := make([]Comment, 0, len(resp.Comments))
	for _, c := range resp.Comments {
		author := ghostAuthor
		if c.Author != nil && c.Author.Login != "" {
			author = c.Author.Login
		}
		comments = append(comments, Comment{Author: author, Body: c.Body, CreatedAt: c.CreatedAt})
	}

	author := unknownAuthor
	if resp.Author != nil && resp.Author.Login != "" {
		author = resp.Author.Login
	}

	if events == nil {
		events = []Event{}
	}

	return &Record{
		Metadata: Metadata{
			Repo:   t.Slug(),
			Number: t.Number,
			Type:   t.Kind.String(),
			URL:    resp.URL,
			Author: author,
		},
		Title:    resp.Title,
		Body:     resp.Body,
		Comments: comments,
		Events:   events,
	}, nil
}

// ParseEvents decodes one or more concatenated JSON arrays of timeline
// entries, as printed by "gh api --paginate", into a single ordered slice.
func ParseEvents(data []byte) ([]Event, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	events := []Event{}
	for dec.More() {
		var page []Event
		if err := dec.Decode(&page); err != nil {
			return nil, fmt.Errorf("%w: timeline: %v", ErrParse, err)
		}
		events = append(events, page...)
	}
	return events, nil
}
