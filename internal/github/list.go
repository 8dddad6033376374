package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hdcodedev/gh-context/internal/record"
	"github.com/hdcodedev/gh-context/internal/ref"
)

type listedIssue struct {
	Number      int             `json:"number"`
	PullRequest json.RawMessage `json:"pull_request"`
}

func listArgs(repo ref.RepoRef, state string, perPage, page int) []string {
	q := url.Values{}
	q.Set("state", state)
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	return []string{"api",
		fmt.Sprintf("repos/%s/issues?%s", repo.Slug(), q.Encode()),
		"--method", "GET",
	}
}

// ListIssueNumbers returns the numbers of issues in repo matching state,
// reading up to pages pages of perPage entries, in listing order.
//
// The issues endpoint also returns pull requests; those are skipped. Paging
// stops early at the first short page. Duplicates across pages are kept.
func (c *Client) ListIssueNumbers(ctx context.Context, repo ref.RepoRef, state string, perPage, pages int) ([]int, error) {
	var numbers []int
	for page := 1; page <= pages; page++ {
		out, err := c.output(ctx, fmt.Sprintf("gh api issues page %d", page), listArgs(repo, state, perPage, page)...)
		if err != nil {
			return nil, err
		}

		var issues []listedIssue
		if err := json.Unmarshal(out, &issues); err != nil {
			return nil, fmt.Errorf("%w: issue listing page %d: %v", record.ErrParse, page, err)
		}

		for _, is := range issues {
			if len(is.PullRequest) > 0 && string(is.PullRequest) != "null" {
				continue
			}
			numbers = append(numbers, is.Number)
		}

		if len(issues) < perPage {
			break
		}
	}
	return numbers, nil
}
