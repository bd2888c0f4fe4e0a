package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Preflight verifies that none of the target test directories exist yet. It
// inspects every target before reporting, so a clash anywhere in the batch
// blocks the whole batch before the first directory is created, and the
// error names every conflict at once.
func Preflight(targets []string) error {
	var errs []string
	for _, target := range targets {
		_, err := os.Lstat(target)
		switch {
		case err == nil:
			errs = append(errs, fmt.Sprintf("the path %q already exists", target))
		case !errors.Is(err, fs.ErrNotExist):
			errs = append(errs, fmt.Sprintf("cannot check %q: %v", target, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("test directory preflight failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
