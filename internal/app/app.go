package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/buildgrid/internal/ctxlog"
	"github.com/specialistvlad/buildgrid/internal/project"
	"github.com/specialistvlad/buildgrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx      context.Context
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	project  *project.Project
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// When no modules are given the core modules are registered.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All element modules registered.", "count", len(modules))

	return &App{
		ctx:      ctx,
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Project returns the project loaded by LoadBuildFile, nil before that.
func (a *App) Project() *project.Project {
	return a.project
}
