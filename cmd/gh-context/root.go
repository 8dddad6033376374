package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/hdcodedev/gh-context/internal/batch"
	"github.com/hdcodedev/gh-context/internal/config"
	"github.com/hdcodedev/gh-context/internal/github"
	"github.com/hdcodedev/gh-context/internal/log"
	"github.com/hdcodedev/gh-context/internal/mode"
	"github.com/hdcodedev/gh-context/internal/output"
	"github.com/hdcodedev/gh-context/internal/ref"
	"github.com/hdcodedev/gh-context/internal/render"
	"github.com/hdcodedev/gh-context/internal/ui/styles"
)

// gateway is everything the commands need from gh.
type gateway interface {
	Check(ctx context.Context) error
	batch.Lister
	batch.Fetcher
}

// newGateway is replaced in tests.
var newGateway = func(cfg *config.Config) gateway {
	return github.New(cfg.GHPath, cfg.Timeout)
}

// options holds the raw flag values of the root command.
type options struct {
	verbose bool
	quiet   bool

	format string
	out    string
	clip   bool
	issue  bool
	pr     bool

	bulk    bool
	state   string
	perPage int
	pages   int

	from int
	to   int
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	styles.Init(cfg.Theme)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stderr := colorprofile.NewWriter(os.Stderr, os.Environ())

	ctx = output.WithPrinter(ctx, os.Stdout)

	root := newRootCmd(&cfg, stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, styles.Error(err.Error()))
		if isUsageError(err) {
			fmt.Fprintln(stderr)
			fmt.Fprintln(stderr, styles.Muted("Run 'gh-context -h' for help"))
		}
		return exitCode(err)
	}
	return 0
}

// newRootCmd builds the command tree. Flag defaults come from cfg;
// diagnostics are written to stderr.
func newRootCmd(cfg *config.Config, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "gh-context <url|owner/repo#number|owner/repo>",
		Short: "Export GitHub issues and pull requests as LLM-ready context",
		Long: `gh-context fetches an issue or pull request through the gh CLI, with its
comments and timeline events, and writes it as Markdown or JSON.

Single item:
  A full URL, or owner/repo#number shorthand with --issue or --pr.

Bulk (issues):
  --bulk with a repository (owner/repo or .../issues URL) writes one file per
  issue into <repo>-issues/ (or --out).

Range (pull requests):
  --from and --to with a repository write one file per PR number in the
  closed interval into <repo>-prs/ (or --out).`,
		Example: `  gh-context https://github.com/cli/cli/issues/123
  gh-context cli/cli#456 --pr --format json > pr.json
  gh-context cli/cli#123 --issue --clip
  gh-context cli/cli --bulk --state closed --per-page 50 --pages 2
  gh-context cli/cli --from 100 --to 120 --out prs/`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose && opts.quiet {
				return fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", errUsage)
			}
			logger := log.New(stderr, opts.verbose, opts.quiet)
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, &opts, args[0])
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show gh commands being executed")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output")

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", cfg.Format, "Output format: md or json")
	f.StringVarP(&opts.out, "out", "o", "", "Output file (single item) or directory (bulk/range)")
	f.BoolVar(&opts.clip, "clip", false, "Copy rendered output to the clipboard (single item only)")
	f.BoolVar(&opts.issue, "issue", false, "Treat owner/repo#number as an issue")
	f.BoolVar(&opts.pr, "pr", false, "Treat owner/repo#number as a pull request")
	f.BoolVar(&opts.bulk, "bulk", false, "Fetch every issue of a repository")
	f.StringVar(&opts.state, "state", cfg.Bulk.State, "Issue state for --bulk: open, closed or all")
	f.IntVar(&opts.perPage, "per-page", cfg.Bulk.PerPage, "Issues per page for --bulk (1-100)")
	f.IntVar(&opts.pages, "pages", cfg.Bulk.Pages, "Number of pages for --bulk")
	f.IntVar(&opts.from, "from", 0, "First PR number of a range")
	f.IntVar(&opts.to, "to", 0, "Last PR number of a range")

	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(render.ValidFormats, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("state", cobra.FixedCompletions(mode.ValidStates, cobra.ShellCompDirectiveNoFileComp))

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// modeFlags converts parsed flag values into the validator's flag bag.
// --from/--to are only set when given on the command line.
func (o *options) modeFlags(cmd *cobra.Command, input string) mode.Flags {
	f := mode.Flags{
		Input:   input,
		Out:     o.out,
		Clip:    o.clip,
		Issue:   o.issue,
		PR:      o.pr,
		Bulk:    o.bulk,
		State:   mode.State(o.state),
		PerPage: o.perPage,
		Pages:   o.pages,
	}
	if cmd.Flags().Changed("from") {
		from := o.from
		f.From = &from
	}
	if cmd.Flags().Changed("to") {
		to := o.to
		f.To = &to
	}
	return f
}

// run validates the invocation completely before touching gh, then
// dispatches on the selected mode.
func run(cmd *cobra.Command, cfg *config.Config, opts *options, input string) error {
	ctx := cmd.Context()

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	m, err := mode.Select(opts.modeFlags(cmd, input))
	if err != nil {
		return err
	}

	gw := newGateway(cfg)

	switch m := m.(type) {
	case mode.Single:
		t, err := ref.ParseTarget(m.Input, m.ForceIssue, m.ForcePR)
		if err != nil {
			return err
		}
		if err := gw.Check(ctx); err != nil {
			return err
		}
		return runSingle(ctx, gw, t, m, format)

	case mode.Bulk:
		repo, err := ref.ParseRepo(m.Input)
		if err != nil {
			return err
		}
		if err := gw.Check(ctx); err != nil {
			return err
		}
		return runBulk(ctx, newRunner(cfg, gw, format), repo, m)

	case mode.Range:
		repo, err := ref.ParsePRRepo(m.Input)
		if err != nil {
			return err
		}
		if err := gw.Check(ctx); err != nil {
			return err
		}
		return runRange(ctx, newRunner(cfg, gw, format), repo, m)
	}

	return fmt.Errorf("unhandled mode %T", m)
}
