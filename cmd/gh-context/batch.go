package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hdcodedev/gh-context/internal/batch"
	"github.com/hdcodedev/gh-context/internal/config"
	"github.com/hdcodedev/gh-context/internal/log"
	"github.com/hdcodedev/gh-context/internal/mode"
	"github.com/hdcodedev/gh-context/internal/output"
	"github.com/hdcodedev/gh-context/internal/ref"
	"github.com/hdcodedev/gh-context/internal/render"
	"github.com/hdcodedev/gh-context/internal/ui/progress"
)

// stderrIsTerminal is replaced in tests.
var stderrIsTerminal = func() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newRunner(cfg *config.Config, gw gateway, format render.Format) *batch.Runner {
	return &batch.Runner{
		Lister:      gw,
		Fetcher:     gw,
		Format:      format,
		Concurrency: cfg.Batch.Concurrency,
	}
}

func runBulk(ctx context.Context, r *batch.Runner, repo ref.RepoRef, b mode.Bulk) error {
	p := newBatchProgress(ctx, ref.Issue)
	p.spin(fmt.Sprintf("Listing %s issues in %s", b.State, repo.Slug()))
	p.attach(r)
	defer p.stop()

	res, err := r.RunBulk(ctx, repo, b)
	p.stop()
	return report(ctx, res, err, "No issues found.")
}

func runRange(ctx context.Context, r *batch.Runner, repo ref.RepoRef, rg mode.Range) error {
	p := newBatchProgress(ctx, ref.PR)
	p.attach(r)
	defer p.stop()

	res, err := r.RunRange(ctx, repo, rg)
	p.stop()
	return report(ctx, res, err, "No pull requests in range.")
}

// report prints one line per written file, including files written before
// a failure, then returns the run error.
func report(ctx context.Context, res batch.Result, err error, emptyMsg string) error {
	out := output.FromContext(ctx)

	if res.Empty && err == nil {
		out.Println(emptyMsg)
		return nil
	}
	for _, o := range res.Outcomes {
		out.Generated(o.Path)
	}
	return err
}

// batchProgress shows a spinner while listing and a bar while fetching.
// A nil *batchProgress draws nothing.
type batchProgress struct {
	kind    ref.Kind
	spinner *progress.Spinner
	bar     *progress.Bar
}

func newBatchProgress(ctx context.Context, kind ref.Kind) *batchProgress {
	l := log.FromContext(ctx)
	if l.IsVerbose() || l.IsQuiet() || !stderrIsTerminal() {
		return nil
	}
	return &batchProgress{kind: kind}
}

func (p *batchProgress) spin(msg string) {
	if p == nil {
		return
	}
	p.spinner = progress.NewSpinner(os.Stderr, msg)
	p.spinner.Start()
}

func (p *batchProgress) attach(r *batch.Runner) {
	if p == nil {
		return
	}
	r.OnStart = func(total int) {
		if p.spinner != nil {
			p.spinner.Stop()
		}
		if total > 1 {
			p.bar = progress.NewBar(os.Stderr, total, p.kind.Plural())
			p.bar.Start()
		}
	}
	r.OnProgress = func(completed, _ int) {
		if p.bar != nil {
			p.bar.Set(completed)
		}
	}
}

func (p *batchProgress) stop() {
	if p == nil {
		return
	}
	if p.spinner != nil {
		p.spinner.Stop()
	}
	if p.bar != nil {
		p.bar.Stop()
	}
}
