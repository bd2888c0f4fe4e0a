package registry

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/mabruzzo/cholla-scaling/internal/ctxlog"
	"github.com/mabruzzo/cholla-scaling/internal/fsutil"
	"github.com/mabruzzo/cholla-scaling/internal/model"
)

// LoadProfilesRecursively parses problem profiles from path — a single .hcl
// file or a directory searched recursively for .hcl files — and registers
// them alongside whatever the registry already holds. A name collision with
// an existing entry is an error.
func (r *Registry) LoadProfilesRecursively(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading problem profiles...", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read profiles path %s: %w", path, err)
	}

	filePaths := []string{path}
	if info.IsDir() {
		filePaths, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			logger.Error("Failed to walk profiles directory", "path", path, "error", err)
			return err
		}
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl profile files found in path", "path", path)
		return nil
	}

	logger.Debug("Found HCL files to load", "files", filePaths)

	parser := hclparse.NewParser()
	loaded := 0

	for _, filePath := range filePaths {
		profiles, err := model.ProfilesFromFile(parser, filePath)
		if err != nil {
			return err
		}
		for _, profile := range profiles {
			if err := r.Register(profile); err != nil {
				return fmt.Errorf("cannot register problem from %s: %w", filePath, err)
			}
		}
		loaded += len(profiles)
		logger.Debug("Successfully loaded profiles from HCL file", "file", filePath)
	}

	logger.Info("Profile registry loaded successfully.", "problems_loaded", loaded)
	return nil
}
