package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
	"github.com/mabruzzo/cholla-scaling/internal/ctxlog"
	"github.com/mabruzzo/cholla-scaling/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	runner   buildtool.Runner
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and problem
// registry. A failure to load user-supplied profiles is a fatal startup
// error, so it panics; the entrypoint recovers and reports it.
func NewApp(outW io.Writer, cfg *Config, runner buildtool.Runner) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.Builtin()
	if cfg.ProfilesPath != "" {
		if err := reg.LoadProfilesRecursively(ctx, cfg.ProfilesPath); err != nil {
			panic(fmt.Errorf("failed to load problem profiles: %w", err))
		}
	}
	logger.Debug("Problem registry populated.", "problems", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
		runner:   runner,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
