package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
	"github.com/mabruzzo/cholla-scaling/internal/fsutil"
)

// Artifacts are the two externally-supplied input files for one problem.
// Their contents are opaque payloads; only the filenames matter here.
type Artifacts struct {
	// DescriptorPath is the make.type.* build-variant descriptor.
	DescriptorPath string
	// ParamPath is the simulation parameter file.
	ParamPath string
}

// ResolveArtifacts locates a problem's input files. The inputs directory
// must contain exactly two files: one build-variant descriptor and one
// parameter file. Any other population is a configuration error.
func ResolveArtifacts(inputsDir string) (Artifacts, error) {
	files, err := fsutil.ListFiles(inputsDir)
	if err != nil {
		return Artifacts{}, fmt.Errorf("cannot read problem inputs: %w", err)
	}
	if len(files) != 2 {
		return Artifacts{}, fmt.Errorf("we expect %q to contain exactly 2 files, found %d", inputsDir, len(files))
	}

	var arts Artifacts
	for _, file := range files {
		if strings.HasPrefix(filepath.Base(file), buildtool.MaketypePrefix) {
			arts.DescriptorPath = file
		} else {
			arts.ParamPath = file
		}
	}

	if arts.DescriptorPath == "" {
		return Artifacts{}, fmt.Errorf("no file in %q looks like a %s file", inputsDir, buildtool.MaketypePrefix)
	}
	if arts.ParamPath == "" {
		return Artifacts{}, fmt.Errorf("all files in %q look like %s files", inputsDir, buildtool.MaketypePrefix)
	}
	return arts, nil
}
