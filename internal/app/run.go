package app

import (
	"context"
	"fmt"

	"github.com/vk/classnamecheck/internal/checker"
	"github.com/vk/classnamecheck/internal/ctxlog"
	"github.com/vk/classnamecheck/internal/fsutil"
)

// Summary counts the outcomes of a run.
type Summary struct {
	Files     int
	NoMatch   int
	Matched   int
	Mismatch  int
	Rewritten int
}

func (s *Summary) add(o checker.Outcome) {
	s.Files++
	switch o {
	case checker.NoMatch:
		s.NoMatch++
	case checker.Match:
		s.Matched++
	case checker.Mismatch:
		s.Mismatch++
	case checker.Rewritten:
		s.Rewritten++
	}
}

// Run walks the configured root and checks every matching file in order.
// The first I/O error aborts the run. Mismatches are not errors.
func (a *App) Run(ctx context.Context) (Summary, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "root", a.config.Root, "replace", a.config.Replace)

	var summary Summary

	files, err := fsutil.FindFilesByExtension(a.config.Root, a.config.Extension)
	if err != nil {
		return summary, fmt.Errorf("failed to scan %s: %w", a.config.Root, err)
	}
	a.logger.Debug("Source files discovered.", "count", len(files), "extension", a.config.Extension)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res, err := a.checker.Check(ctx, path)
		if err != nil {
			return summary, err
		}
		a.logger.Debug("File checked.", "path", path, "outcome", res.Outcome)
		summary.add(res.Outcome)
	}

	a.logger.Info("Check finished.",
		"files", summary.Files,
		"no_match", summary.NoMatch,
		"matched", summary.Matched,
		"mismatch", summary.Mismatch,
		"rewritten", summary.Rewritten,
	)
	return summary, nil
}
