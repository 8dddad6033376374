package main

import (
	"context"

	"github.com/hdcodedev/gh-context/internal/batch"
	"github.com/hdcodedev/gh-context/internal/clip"
	"github.com/hdcodedev/gh-context/internal/location"
	"github.com/hdcodedev/gh-context/internal/log"
	"github.com/hdcodedev/gh-context/internal/mode"
	"github.com/hdcodedev/gh-context/internal/output"
	"github.com/hdcodedev/gh-context/internal/ref"
	"github.com/hdcodedev/gh-context/internal/render"
	"github.com/hdcodedev/gh-context/internal/ui/styles"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clip.Copy

// runSingle fetches one item and writes it to --out, to stdout (json), or
// to "<stem>/<stem>.md" (md).
func runSingle(ctx context.Context, f batch.Fetcher, t ref.Target, s mode.Single, format render.Format) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	rec, err := f.FetchRecord(ctx, t)
	if err != nil {
		return err
	}

	data, err := render.Render(rec, format)
	if err != nil {
		return err
	}

	switch {
	case s.OutFile != "":
		path, err := location.ResolveFile(s.OutFile)
		if err != nil {
			return err
		}
		if err := location.WriteFile(path, data); err != nil {
			return err
		}
		out.Generated(path)

	case format == render.JSON:
		if err := out.Document(data); err != nil {
			return err
		}

	default:
		path, err := location.SingleItemPath(t, format.Extension())
		if err != nil {
			return err
		}
		if err := location.WriteFile(path, data); err != nil {
			return err
		}
		out.Generated(path)
	}

	if s.Clip {
		if err := copyToClipboard(data); err != nil {
			l.Println(styles.Warning(err.Error()))
		} else {
			l.Println(styles.Success("Copied to clipboard"))
		}
	}
	return nil
}
