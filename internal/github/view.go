package github

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hdcodedev/gh-context/internal/log"
	"github.com/hdcodedev/gh-context/internal/record"
	"github.com/hdcodedev/gh-context/internal/ref"
)

// viewFields are the --json fields requested from gh issue/pr view.
const viewFields = "title,body,url,author,comments,number"

func viewArgs(t ref.Target) []string {
	sub := "issue"
	if t.Kind == ref.PR {
		sub = "pr"
	}
	return []string{sub, "view", strconv.Itoa(t.Number),
		"--repo", t.Slug(),
		"--comments",
		"--json", viewFields,
	}
}

func timelineArgs(t ref.Target) []string {
	return []string{"api",
		fmt.Sprintf("repos/%s/issues/%d/timeline", t.Slug(), t.Number),
		"--method", "GET",
		"--paginate",
	}
}

// FetchRecord fetches t and normalizes it into a unified record.
//
// The timeline is best-effort: if it cannot be fetched or parsed the record
// carries no events. Cancellation still aborts the fetch.
func (c *Client) FetchRecord(ctx context.Context, t ref.Target) (*record.Record, error) {
	view, err := c.output(ctx, fmt.Sprintf("gh %s view %d", t.Kind, t.Number), viewArgs(t)...)
	if err != nil {
		return nil, err
	}

	events, err := c.fetchTimeline(ctx, t)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		log.FromContext(ctx).Debug("timeline unavailable", "target", t, "error", err)
		events = nil
	}

	return record.Build(t, view, events)
}

func (c *Client) fetchTimeline(ctx context.Context, t ref.Target) ([]record.Event, error) {
	out, err := c.output(ctx, "gh api timeline", timelineArgs(t)...)
	if err != nil {
		return nil, err
	}
	return record.ParseEvents(out)
}
