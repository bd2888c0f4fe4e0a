package buildtool

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mabruzzo/cholla-scaling/internal/ctxlog"
)

// MaketypePrefix is the filename prefix identifying a build-variant
// descriptor, e.g. make.type.hydro for the "hydro" variant.
const MaketypePrefix = "make.type."

// Command is one external invocation: an argv and the directory to run it in.
type Command struct {
	Args []string
	Dir  string
}

// Runner executes external commands. The production implementation streams
// the child's output to the terminal; tests substitute a recording fake.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// Builder compiles the simulation binary for one build variant at a time by
// driving make inside the Cholla checkout.
type Builder struct {
	chollaDir string
	host      string
	runner    Runner
}

// NewBuilder returns a Builder targeting the given Cholla checkout and
// machine name.
func NewBuilder(chollaDir, host string, runner Runner) *Builder {
	return &Builder{chollaDir: chollaDir, host: host, runner: runner}
}

// Build selects the build variant named by descriptorPath, recompiles the
// code with `make clean` followed by `make TYPE=<maketype> MACHINE=<host>`,
// and returns the name of the binary make drops under bin/. A non-zero exit
// from either command is an error; there is no retry and no timeout.
func (b *Builder) Build(ctx context.Context, descriptorPath string, jobs Jobs) (string, error) {
	name := filepath.Base(descriptorPath)
	maketype := strings.TrimPrefix(name, MaketypePrefix)
	if maketype == name || maketype == "" {
		return "", fmt.Errorf("%q is not a %s* build-variant descriptor", descriptorPath, MaketypePrefix)
	}

	if err := b.selectVariant(descriptorPath, name); err != nil {
		return "", err
	}

	logger := ctxlog.FromContext(ctx)
	logger.Info("🛠️ Compiling Cholla.", "maketype", maketype, "machine", b.host, "jobs", jobs)

	clean := Command{Args: []string{"make", "clean"}, Dir: b.chollaDir}
	if err := b.runner.Run(ctx, clean); err != nil {
		return "", fmt.Errorf("make clean failed: %w", err)
	}

	args := append([]string{"make"}, jobs.Args()...)
	args = append(args, "TYPE="+maketype, "MACHINE="+b.host)
	if err := b.runner.Run(ctx, Command{Args: args, Dir: b.chollaDir}); err != nil {
		return "", fmt.Errorf("build for TYPE=%s failed: %w", maketype, err)
	}

	return fmt.Sprintf("cholla.%s.%s", maketype, b.host), nil
}

// selectVariant symlinks the descriptor into the checkout's builds/
// directory, where make picks it up. A stale symlink of the same name is
// replaced; anything else already occupying the destination is left alone
// and reported as an error.
func (b *Builder) selectVariant(descriptorPath, name string) error {
	dst := filepath.Join(b.chollaDir, "builds", name)

	info, err := os.Lstat(dst)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink == 0 {
			return fmt.Errorf("refusing to replace %s: it is not a symlink", dst)
		}
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("cannot remove stale variant symlink %s: %w", dst, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("cannot inspect %s: %w", dst, err)
	}

	src, err := filepath.Abs(descriptorPath)
	if err != nil {
		return err
	}
	if err := os.Symlink(src, dst); err != nil {
		return fmt.Errorf("cannot select build variant: %w", err)
	}
	return nil
}
