package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
	"github.com/mabruzzo/cholla-scaling/internal/ctxlog"
	"github.com/mabruzzo/cholla-scaling/internal/model"
)

// Params carries everything Setup needs for one problem.
type Params struct {
	// TestDir is the problem's test directory, created by Setup. It must
	// not exist yet.
	TestDir string
	// ChollaDir is the Cholla checkout the tests link against.
	ChollaDir string
	// InputsDir holds the problem's two artifact files.
	InputsDir string
	// Profile names the problem; its geometry has already been expanded
	// into Cases.
	Profile *model.ProblemProfile
	// Cases is the ordered, non-empty case sequence to script.
	Cases []model.ProblemCase
	// Builder compiles the problem's build variant.
	Builder *buildtool.Builder
	// Jobs is the parallel-build-job policy handed to the Builder.
	Jobs buildtool.Jobs
	// Launcher is the parallel-launcher template for the run script.
	Launcher string
}

// Setup materializes one problem's self-contained test directory: the
// directory itself, a symlink to the Cholla checkout, a symlink to the
// parameter file, a copy of the freshly compiled binary, and the run script.
// The first failure aborts immediately and leaves whatever was already
// created in place.
func Setup(ctx context.Context, p Params) error {
	ctx = ctxlog.With(ctx, "problem", p.Profile.Name)
	logger := ctxlog.FromContext(ctx)
	logger.Info("🚀 Setting up test directory.", "path", p.TestDir, "cases", len(p.Cases))

	arts, err := ResolveArtifacts(p.InputsDir)
	if err != nil {
		return err
	}

	if err := os.Mkdir(p.TestDir, 0o755); err != nil {
		return fmt.Errorf("cannot create test directory: %w", err)
	}

	absCholla, err := filepath.Abs(p.ChollaDir)
	if err != nil {
		return err
	}
	if err := os.Symlink(absCholla, filepath.Join(p.TestDir, "cholla")); err != nil {
		return fmt.Errorf("cannot link cholla checkout: %w", err)
	}

	absPar, err := filepath.Abs(arts.ParamPath)
	if err != nil {
		return err
	}
	parfile := filepath.Base(arts.ParamPath)
	if err := os.Symlink(absPar, filepath.Join(p.TestDir, parfile)); err != nil {
		return fmt.Errorf("cannot link parameter file: %w", err)
	}

	binary, err := p.Builder.Build(ctx, arts.DescriptorPath, p.Jobs)
	if err != nil {
		return err
	}

	src := filepath.Join(p.ChollaDir, "bin", binary)
	if err := copyFile(src, filepath.Join(p.TestDir, binary)); err != nil {
		return fmt.Errorf("cannot copy compiled binary: %w", err)
	}

	if err := WriteRunScript(p.TestDir, p.Launcher, binary, parfile, p.Profile.Name, p.Cases); err != nil {
		return fmt.Errorf("cannot write run script: %w", err)
	}

	logger.Info("🏁 Test directory ready.", "binary", binary)
	return nil
}

// copyFile copies src to dst with the executable bit set, since the payload
// is always the compiled simulation binary.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
