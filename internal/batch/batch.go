// Package batch drives multi-item retrieval for bulk and range runs.
//
// A run enumerates item numbers, then for each one fetches the record,
// renders it and writes "<repo>-<kind>-<number>.<ext>" into the output
// directory. The directory is resolved once, before any item is written.
//
// Runs are fail-fast: the first failing item cancels outstanding work and
// its error is returned. Files written before the failure are kept and
// reported in the Result.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hdcodedev/gh-context/internal/location"
	"github.com/hdcodedev/gh-context/internal/log"
	"github.com/hdcodedev/gh-context/internal/mode"
	"github.com/hdcodedev/gh-context/internal/record"
	"github.com/hdcodedev/gh-context/internal/ref"
	"github.com/hdcodedev/gh-context/internal/render"
)

// MaxConcurrency caps the worker pool.
const MaxConcurrency = 16

// Lister enumerates issue numbers of a repository.
type Lister interface {
	ListIssueNumbers(ctx context.Context, repo ref.RepoRef, state string, perPage, pages int) ([]int, error)
}

// Fetcher fetches one item as a unified record.
type Fetcher interface {
	FetchRecord(ctx context.Context, t ref.Target) (*record.Record, error)
}

// Runner executes bulk and range runs.
type Runner struct {
	Lister  Lister
	Fetcher Fetcher
	Format  render.Format

	// Concurrency is the number of items fetched at once; values below 1
	// mean sequential.
	Concurrency int

	// OnStart, if set, is called once the item numbers are known and the
	// output directory exists, before the first fetch.
	OnStart func(total int)

	// OnProgress, if set, is called after each written item. It may be
	// called from several goroutines.
	OnProgress func(completed, total int)
}

// Outcome is one written item.
type Outcome struct {
	Target ref.Target
	Path   string
}

// Result summarizes a run.
type Result struct {
	// Empty is set when there was nothing to fetch; no directory was created.
	Empty bool
	// Dir is the resolved output directory.
	Dir string
	// Outcomes lists written items in enumeration order.
	Outcomes []Outcome
}

// RunBulk lists issues of repo per b and writes one file per issue.
// An empty listing is not an error: it returns a Result with Empty set.
func (r *Runner) RunBulk(ctx context.Context, repo ref.RepoRef, b mode.Bulk) (Result, error) {
	numbers, err := r.Lister.ListIssueNumbers(ctx, repo, string(b.State), b.PerPage, b.Pages)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list issues for %s: %w", repo.Slug(), err)
	}
	log.FromContext(ctx).Debug("listed issues", "repo", repo.Slug(), "count", len(numbers))

	if len(numbers) == 0 {
		return Result{Empty: true}, nil
	}
	return r.run(ctx, repo, ref.Issue, numbers, b.OutDir)
}

// RunRange writes one file per pull request numbered rg.From through rg.To.
// Numbers are not listed first; every number in the interval is fetched.
func (r *Runner) RunRange(ctx context.Context, repo ref.RepoRef, rg mode.Range) (Result, error) {
	numbers, err := rg.Numbers()
	if err != nil {
		return Result{}, err
	}
	if len(numbers) == 0 {
		return Result{Empty: true}, nil
	}
	return r.run(ctx, repo, ref.PR, numbers, rg.OutDir)
}

func (r *Runner) workers() int {
	switch {
	case r.Concurrency < 1:
		return 1
	case r.Concurrency > MaxConcurrency:
		return MaxConcurrency
	default:
		return r.Concurrency
	}
}

func (r *Runner) run(ctx context.Context, repo ref.RepoRef, kind ref.Kind, numbers []int, outDir string) (Result, error) {
	dir, err := location.ResolveDirectory(outDir, location.DefaultDirName(repo.Repo, kind))
	if err != nil {
		return Result{}, err
	}

	total := len(numbers)
	if r.OnStart != nil {
		r.OnStart(total)
	}
	written := make([]*Outcome, total)
	var completed int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for i, n := range numbers {
		if gctx.Err() != nil {
			break
		}
		target := repo.Target(n, kind)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := r.writeItem(gctx, dir, target)
			if err != nil {
				return fmt.Errorf("%s: %w", target, err)
			}
			written[i] = &Outcome{Target: target, Path: path}
			if r.OnProgress != nil {
				r.OnProgress(int(atomic.AddInt32(&completed, 1)), total)
			}
			return nil
		})
	}
	err = g.Wait()

	res := Result{Dir: dir}
	for _, o := range written {
		if o != nil {
			res.Outcomes = append(res.Outcomes, *o)
		}
	}
	return res, err
}

func (r *Runner) writeItem(ctx context.Context, dir string, t ref.Target) (string, error) {
	rec, err := r.Fetcher.FetchRecord(ctx, t)
	if err != nil {
		return "", err
	}

	data, err := render.Render(rec, r.Format)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, t.FileStem()+"."+r.Format.Extension())
	if err := location.WriteFile(path, data); err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("wrote item", "target", t, "path", path)
	return path, nil
}
