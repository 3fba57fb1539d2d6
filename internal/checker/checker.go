package checker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/classnamecheck/internal/classname"
	"github.com/vk/classnamecheck/internal/ctxlog"
	"github.com/vk/classnamecheck/internal/fsutil"
)

// Reporter receives the diagnostics of a pass.
type Reporter interface {
	Mismatch(className, fileName, absPath string) error
	Replaced(className, fileName, absPath string) error
}

// Checker verifies and optionally fixes default class names.
type Checker struct {
	reporter Reporter
	replace  bool
}

// New returns a Checker. When replace is true mismatching files are rewritten.
func New(reporter Reporter, replace bool) *Checker {
	return &Checker{reporter: reporter, replace: replace}
}

// Check processes the file at path. Any I/O error is returned as is and
// leaves the file untouched.
func (c *Checker) Check(ctx context.Context, path string) (Result, error) {
	logger := ctxlog.FromContext(ctxlog.With(ctx, "path", path))
	res := Result{Path: path, BaseName: classname.BaseName(path)}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", path, err)
	}
	content := string(data)

	name, found := classname.Extract(content)
	if !found {
		res.Outcome = NoMatch
		logger.Debug("No default class declaration.")
		return res, nil
	}
	res.ClassName = name

	if name == res.BaseName {
		res.Outcome = Match
		logger.Debug("Class name matches file name.", "class", name)
		return res, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return res, fmt.Errorf("failed to resolve absolute path of %s: %w", path, err)
	}
	res.AbsPath = absPath
	res.Outcome = Mismatch

	if err := c.reporter.Mismatch(name, res.BaseName, absPath); err != nil {
		return res, fmt.Errorf("failed to report mismatch: %w", err)
	}
	logger.Debug("Class name mismatch.", "class", name, "expected", res.BaseName)

	if !c.replace {
		return res, nil
	}

	updated := classname.Replace(content, res.BaseName)
	if err := fsutil.WriteFileAtomic(path, []byte(updated), 0o644); err != nil {
		return res, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}
	res.Outcome = Rewritten

	if err := c.reporter.Replaced(name, res.BaseName, absPath); err != nil {
		return res, fmt.Errorf("failed to report replacement: %w", err)
	}
	logger.Info("Class name replaced.", "old", name, "new", res.BaseName)

	return res, nil
}
