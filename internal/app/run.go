package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
	"github.com/mabruzzo/cholla-scaling/internal/ctxlog"
	"github.com/mabruzzo/cholla-scaling/internal/model"
	"github.com/mabruzzo/cholla-scaling/internal/scaffold"
	"github.com/mabruzzo/cholla-scaling/internal/scaling"
)

// Run executes the main application logic: resolve the requested problems,
// preflight every target directory, then set each problem up in turn. The
// per-problem pipeline is strictly sequential; one build runs at a time.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	info, err := os.Stat(a.config.ChollaDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("invalid cholla directory %q", a.config.ChollaDir)
	}

	// Resolve every name up front so an unknown problem fails before any
	// filesystem mutation.
	profiles, err := a.resolveProfiles()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.config.TestDir, 0o755); err != nil {
		return fmt.Errorf("cannot create test root: %w", err)
	}

	targets := make([]string, len(profiles))
	for i, profile := range profiles {
		targets[i] = filepath.Join(a.config.TestDir, profile.Name)
	}
	if err := scaffold.Preflight(targets); err != nil {
		return err
	}
	a.logger.Debug("Preflight passed.", "targets", targets)

	builder := buildtool.NewBuilder(a.config.ChollaDir, a.config.Host, a.runner)

	for i, profile := range profiles {
		cases, err := a.generateCases(profile)
		if err != nil {
			return err
		}

		params := scaffold.Params{
			TestDir:   targets[i],
			ChollaDir: a.config.ChollaDir,
			InputsDir: filepath.Join(a.config.InputsDir, profile.Name),
			Profile:   profile,
			Cases:     cases,
			Builder:   builder,
			Jobs:      a.config.MakeJobs,
			Launcher:  a.config.Launcher,
		}
		if err := scaffold.Setup(ctx, params); err != nil {
			return fmt.Errorf("setup for problem %q failed: %w", profile.Name, err)
		}
	}

	a.logger.Info("🏁 All test directories ready.", "count", len(profiles))
	return nil
}

// resolveProfiles deduplicates the requested names, sorts them so runs are
// deterministic, and looks each one up in the registry.
func (a *App) resolveProfiles() ([]*model.ProblemProfile, error) {
	seen := make(map[string]struct{}, len(a.config.Problems))
	names := make([]string, 0, len(a.config.Problems))
	for _, name := range a.config.Problems {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)

	profiles := make([]*model.ProblemProfile, 0, len(names))
	for _, name := range names {
		profile, err := a.registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// generateCases expands one profile's base case into its bounded sequence.
// An empty sequence means no case fits under the ceiling, which is a
// configuration error at this layer.
func (a *App) generateCases(profile *model.ProblemProfile) ([]model.ProblemCase, error) {
	seq, err := scaling.Generate(profile.Base, profile.Origin, profile.Rule, scaling.Options{
		MaxProcs:          a.config.MaxProcs,
		MinGeneratedProcs: a.config.MinProcs,
		IncludeBase:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot generate cases for %q: %w", profile.Name, err)
	}

	cases := seq.Collect()
	if err := seq.Err(); err != nil {
		return nil, fmt.Errorf("case generation for %q failed: %w", profile.Name, err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases for %q fit under the %d-process ceiling", profile.Name, a.config.MaxProcs)
	}

	a.logger.Debug("Case sequence generated.", "problem", profile.Name, "cases", len(cases))
	return cases, nil
}
