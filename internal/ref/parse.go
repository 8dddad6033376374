package ref

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTarget resolves input into a Target.
//
// A full URL carries its own kind; forceIssue and forcePR only disambiguate
// shorthand. Setting both fails with ErrConflictingFlags before input is
// looked at.
func ParseTarget(input string, forceIssue, forcePR bool) (Target, error) {
	if forceIssue && forcePR {
		return Target{}, ErrConflictingFlags
	}

	if rest, ok := strings.CutPrefix(input, WebPrefix); ok {
		return parseItemURL(rest)
	}

	if repoPart, numberPart, ok := strings.Cut(input, "#"); ok {
		repo, err := parseSlug(repoPart)
		if err != nil {
			return Target{}, fmt.Errorf("%w: shorthand must be in format owner/repo#number", ErrInvalidFormat)
		}
		n, err := parseNumber(numberPart)
		if err != nil {
			return Target{}, fmt.Errorf("%w: shorthand number %q is not a non-negative integer", ErrInvalidFormat, numberPart)
		}

		switch {
		case forcePR:
			return repo.Target(n, PR), nil
		case forceIssue:
			return repo.Target(n, Issue), nil
		default:
			return Target{}, fmt.Errorf("%w %q: please specify --issue or --pr", ErrAmbiguousShorthand, input)
		}
	}

	return Target{}, fmt.Errorf("%w: must be a URL or owner/repo#number shorthand", ErrInvalidFormat)
}

func parseItemURL(rest string) (Target, error) {
	parts := strings.Split(rest, "/")
	if len(parts) < 4 {
		return Target{}, fmt.Errorf("%w: URL must look like %sowner/repo/issues/N or .../pull/N", ErrInvalidFormat, WebPrefix)
	}
	if parts[0] == "" || parts[1] == "" {
		return Target{}, fmt.Errorf("%w: URL is missing owner or repo", ErrInvalidFormat)
	}

	var kind Kind
	switch parts[2] {
	case "issues":
		kind = Issue
	case "pull":
		kind = PR
	default:
		return Target{}, fmt.Errorf("%w: URL must contain 'issues' or 'pull'", ErrInvalidFormat)
	}

	raw := parts[3]
	if i := strings.IndexAny(raw, "#?"); i >= 0 {
		raw = raw[:i]
	}
	n, err := parseNumber(raw)
	if err != nil {
		return Target{}, fmt.Errorf("%w: failed to parse %s number from URL: %q", ErrInvalidFormat, kind.Noun(), parts[3])
	}

	return Target{Owner: parts[0], Repo: parts[1], Number: n, Kind: kind}, nil
}

// ParseRepo resolves input for issue listing. It accepts owner/repo and
// https://github.com/owner/repo/issues (query string ignored); URLs that name
// a single issue or any other listing are rejected.
func ParseRepo(input string) (RepoRef, error) {
	return parseListing(input, Issue)
}

// ParsePRRepo is ParseRepo for pull request listings: it accepts owner/repo
// and https://github.com/owner/repo/pulls.
func ParsePRRepo(input string) (RepoRef, error) {
	return parseListing(input, PR)
}

func listingSegment(k Kind) string {
	if k == PR {
		return "pulls"
	}
	return "issues"
}

func parseListing(input string, kind Kind) (RepoRef, error) {
	rest, isURL := strings.CutPrefix(input, WebPrefix)
	if !isURL {
		repo, err := parseSlug(input)
		if err != nil {
			return RepoRef{}, fmt.Errorf("%w: repository must be owner/repo or %sowner/repo/%s", ErrInvalidFormat, WebPrefix, listingSegment(kind))
		}
		return repo, nil
	}

	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	rest = strings.TrimSuffix(rest, "/")
	parts := strings.Split(rest, "/")
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, fmt.Errorf("%w: listing URL must look like %sowner/repo/%s", ErrInvalidFormat, WebPrefix, listingSegment(kind))
	}
	if parts[2] != listingSegment(kind) {
		return RepoRef{}, fmt.Errorf("%w: listing URL must point at /%s (%s only)", ErrInvalidFormat, listingSegment(kind), kind.Plural())
	}
	if len(parts) > 3 {
		return RepoRef{}, fmt.Errorf("%w: listing URL must not include a specific %s number", ErrInvalidFormat, kind.Noun())
	}
	return RepoRef{Owner: parts[0], Repo: parts[1]}, nil
}

// parseSlug accepts exactly "owner/repo" with both segments non-empty.
func parseSlug(s string) (RepoRef, error) {
	owner, repo, ok := strings.Cut(s, "/")
	if !ok || owner == "" || repo == "" || strings.ContainsAny(repo, "/#") || strings.Contains(owner, "#") {
		return RepoRef{}, fmt.Errorf("%w: %q is not owner/repo", ErrInvalidFormat, s)
	}
	return RepoRef{Owner: owner, Repo: repo}, nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
