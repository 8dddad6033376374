// Package cmd executes external commands with context support.
//
// Every command is announced through the context logger (visible with
// --verbose) and a failing command's stderr is folded into the returned
// error, so callers can surface messages like gh's "Could not resolve to an
// issue or pull request" verbatim.
//
//	out, err := cmd.OutputContext(ctx, "", "gh", "issue", "view", "1", "--json", "title")
//	if err != nil {
//	    return fmt.Errorf("gh issue view: %w", err)
//	}
//
// gh-context always shells out to the gh CLI instead of talking to the
// GitHub API directly. Authentication, host selection and paging limits
// stay with gh.
package cmd
