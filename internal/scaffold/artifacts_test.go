package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInputs(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("# placeholder\n"), 0o644))
	}
	return dir
}

func TestResolveArtifacts(t *testing.T) {
	t.Parallel()

	t.Run("one descriptor and one parameter file", func(t *testing.T) {
		t.Parallel()

		dir := writeInputs(t, "make.type.hydro", "sound.txt")
		arts, err := ResolveArtifacts(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "make.type.hydro"), arts.DescriptorPath)
		assert.Equal(t, filepath.Join(dir, "sound.txt"), arts.ParamPath)
	})

	t.Run("subdirectories are ignored", func(t *testing.T) {
		t.Parallel()

		dir := writeInputs(t, "make.type.mhd", "params.txt")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "notes"), 0o755))

		arts, err := ResolveArtifacts(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "make.type.mhd"), arts.DescriptorPath)
	})

	errorCases := []struct {
		name    string
		files   []string
		errText string
	}{
		{name: "empty directory", files: nil, errText: "exactly 2 files, found 0"},
		{name: "one file", files: []string{"make.type.hydro"}, errText: "exactly 2 files, found 1"},
		{name: "three files", files: []string{"make.type.hydro", "sound.txt", "extra.txt"}, errText: "exactly 2 files, found 3"},
		{name: "two descriptors", files: []string{"make.type.hydro", "make.type.mhd"}, errText: "all files"},
		{name: "no descriptor", files: []string{"sound.txt", "other.txt"}, errText: "no file"},
	}

	for _, tc := range errorCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := writeInputs(t, tc.files...)
			_, err := ResolveArtifacts(dir)
			assert.ErrorContains(t, err, tc.errText)
		})
	}

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveArtifacts(filepath.Join(t.TempDir(), "missing"))
		assert.ErrorContains(t, err, "cannot read problem inputs")
	})
}
