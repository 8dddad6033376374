// Package ref resolves user supplied references into fetch targets.
//
// Three input shapes are understood:
//
//	https://github.com/owner/repo/issues/123#issuecomment-456   full item URL
//	owner/repo#123                                              shorthand, needs --issue or --pr
//	owner/repo, https://github.com/owner/repo/issues            repository, for listing modes
package ref

import (
	"errors"
	"fmt"
)

// WebPrefix is the canonical web URL prefix of the hosting platform.
const WebPrefix = "https://github.com/"

var (
	// ErrInvalidFormat indicates a malformed reference string.
	ErrInvalidFormat = errors.New("invalid reference")

	// ErrAmbiguousShorthand indicates owner/repo#N was given without --issue or --pr.
	ErrAmbiguousShorthand = errors.New("ambiguous shorthand")

	// ErrConflictingFlags indicates both --issue and --pr were set.
	ErrConflictingFlags = errors.New("cannot specify both --issue and --pr")
)

// Kind distinguishes issues from pull requests.
type Kind int

const (
	Issue Kind = iota
	PR
)

// String returns "issue" or "pr", the form used in file names and records.
func (k Kind) String() string {
	if k == PR {
		return "pr"
	}
	return "issue"
}

// Plural returns "issues" or "prs", used for default output directories.
func (k Kind) Plural() string {
	return k.String() + "s"
}

// Noun returns a human readable name for messages.
func (k Kind) Noun() string {
	if k == PR {
		return "pull request"
	}
	return "issue"
}

// RepoRef identifies a repository without a numbered item.
type RepoRef struct {
	Owner string
	Repo  string
}

// Slug returns "owner/repo".
func (r RepoRef) Slug() string {
	return r.Owner + "/" + r.Repo
}

// Target builds the fetch target for number n of kind k in r.
func (r RepoRef) Target(n int, k Kind) Target {
	return Target{Owner: r.Owner, Repo: r.Repo, Number: n, Kind: k}
}

// Target is a fully resolved single item fetch request.
type Target struct {
	Owner  string
	Repo   string
	Number int
	Kind   Kind
}

// RepoRef returns the repository part of t.
func (t Target) RepoRef() RepoRef {
	return RepoRef{Owner: t.Owner, Repo: t.Repo}
}

// Slug returns "owner/repo".
func (t Target) Slug() string {
	return t.RepoRef().Slug()
}

// FileStem returns "<repo>-<kind>-<number>", the base name of output files.
func (t Target) FileStem() string {
	return fmt.Sprintf("%s-%s-%d", t.Repo, t.Kind, t.Number)
}

// String returns "owner/repo#N (kind)".
func (t Target) String() string {
	return fmt.Sprintf("%s#%d (%s)", t.Slug(), t.Number, t.Kind)
}
