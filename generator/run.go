package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
)

// Report summarizes a Run.
type Report struct {
	// Written lists the outputs that were created or updated.
	Written []string
	// Unchanged lists the outputs already up to date.
	Unchanged []string
	// Stale lists the outputs that are missing or out of date. Only filled in check mode.
	Stale []string
}

// Run transforms the source files at paths concurrently and writes their outputs.
//
// Sources are independent, so up to Options.Concurrency files are transformed at the same time.
// Outputs are only written once every source transformed without error, in sorted order, and
// only when their content changed. In check mode nothing is written: outputs that would change
// are reported as stale and Run fails with ErrStale.
func (g *Generator) Run(ctx context.Context, paths []string) (*Report, error) {
	paths = slices.Clone(paths)
	slices.Sort(paths)
	paths = slices.Compact(paths)

	outputs := xsync.NewMapOf[string, *Output]()
	failures := xsync.NewMapOf[string, error]()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.concurrency)
	for _, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			out, err := g.File(path)
			if err != nil {
				failures.Store(path, err)
				return nil
			}
			outputs.Store(path, out)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if failures.Size() > 0 {
		errs := make([]error, 0, failures.Size())
		for _, path := range paths {
			if err, ok := failures.Load(path); ok {
				errs = append(errs, err)
			}
		}

		return nil, errors.Join(errs...)
	}

	report := &Report{}
	for _, path := range paths {
		out, _ := outputs.Load(path)

		existing, err := os.ReadFile(out.Path)
		if err == nil && bytes.Equal(existing, out.Content) {
			report.Unchanged = append(report.Unchanged, out.Path)
			g.log.Debug("output is up to date", "output", out.Path)
			continue
		}

		if g.opts.check {
			report.Stale = append(report.Stale, out.Path)
			g.log.Warn("output is out of date", "source", out.Source, "output", out.Path)
			continue
		}

		if err := os.WriteFile(out.Path, out.Content, 0o644); err != nil { //nolint:gosec
			return report, err
		}
		report.Written = append(report.Written, out.Path)
		g.log.Info("generated", "source", out.Source, "output", out.Path, "functions", out.Functions)
	}

	if len(report.Stale) > 0 {
		return report, fmt.Errorf("%w: %s", ErrStale, strings.Join(report.Stale, ", "))
	}

	return report, nil
}
