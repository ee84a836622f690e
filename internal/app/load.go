package app

import (
	"fmt"

	"github.com/specialistvlad/buildgrid/internal/ctxlog"
	"github.com/specialistvlad/buildgrid/internal/fsutil"
	"github.com/specialistvlad/buildgrid/internal/parser"
	"github.com/specialistvlad/buildgrid/internal/project"
)

// LoadBuildFile resolves the configured build file and loads it, together
// with everything it imports, into a fresh project.
func (a *App) LoadBuildFile() error {
	logger := ctxlog.FromContext(a.ctx)
	logger.Debug("Resolving build file...", "path", a.config.BuildFile)

	path, err := fsutil.ResolveBuildFile(a.config.BuildFile)
	if err != nil {
		return err
	}
	logger.Debug("Build file resolved.", "file", path)

	p := project.New(logger, a.registry)
	if err := parser.Configure(a.ctx, p, path); err != nil {
		return fmt.Errorf("failed to load build file: %w", err)
	}

	a.project = p
	logger.Info("Build file loaded.", "file", path, "targets", len(p.TargetNames()))
	return nil
}
