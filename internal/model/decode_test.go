package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProfilesFromFile(t *testing.T) {
	t.Parallel()

	t.Run("full definition with base overrides", func(t *testing.T) {
		t.Parallel()

		path := writeProfileFile(t, `
problem "blast_wave" {
  origin     = "centered"
  scale_rule = "xy_plane"

  base {
    grid_left    = [-2, -2, -2]
    grid_width   = [4, 4, 4]
    grid_shape   = [256, 256, 256]
    process_grid = [1, 1, 1]
  }
}
`)
		profiles, err := ProfilesFromFile(hclparse.NewParser(), path)
		require.NoError(t, err)
		require.Len(t, profiles, 1)

		p := profiles[0]
		assert.Equal(t, "blast_wave", p.Name)
		assert.Equal(t, OriginCentered, p.Origin)
		assert.Equal(t, GrowXYPlane, p.Rule)
		assert.Equal(t, ProblemCase{
			GridLeft:  Vec3{-2, -2, -2},
			GridWidth: Vec3{4, 4, 4},
			GridShape: Shape3{256, 256, 256},
			ProcGrid:  Shape3{1, 1, 1},
		}, p.Base)
	})

	t.Run("omitted base falls back to the policy default", func(t *testing.T) {
		t.Parallel()

		path := writeProfileFile(t, `
problem "ripple" {
  origin     = "fixed_zero"
  scale_rule = "x_axis"
}
`)
		profiles, err := ProfilesFromFile(hclparse.NewParser(), path)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, DefaultBase(OriginFixedZero), profiles[0].Base)
	})

	t.Run("partial base keeps defaults for the rest", func(t *testing.T) {
		t.Parallel()

		path := writeProfileFile(t, `
problem "ripple" {
  origin     = "fixed_zero"
  scale_rule = "x_axis"

  base {
    grid_shape = [128, 128, 128]
  }
}
`)
		profiles, err := ProfilesFromFile(hclparse.NewParser(), path)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, Shape3{128, 128, 128}, profiles[0].Base.GridShape)
		assert.Equal(t, Vec3{2, 2, 2}, profiles[0].Base.GridWidth)
	})

	t.Run("multiple problems in one file", func(t *testing.T) {
		t.Parallel()

		path := writeProfileFile(t, `
problem "a" {
  origin     = "fixed_zero"
  scale_rule = "x_axis"
}

problem "b" {
  origin     = "centered"
  scale_rule = "z_axis"
}
`)
		profiles, err := ProfilesFromFile(hclparse.NewParser(), path)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
	})

	errorCases := []struct {
		name    string
		content string
		errText string
	}{
		{
			name: "bad origin",
			content: `
problem "x" {
  origin     = "left"
  scale_rule = "x_axis"
}
`,
			errText: "invalid origin policy",
		},
		{
			name: "bad scale rule",
			content: `
problem "x" {
  origin     = "fixed_zero"
  scale_rule = "spiral"
}
`,
			errText: "invalid scale rule",
		},
		{
			name: "wrong vector length",
			content: `
problem "x" {
  origin     = "fixed_zero"
  scale_rule = "x_axis"

  base {
    grid_width = [2, 2]
  }
}
`,
			errText: "exactly 3 elements",
		},
		{
			name: "non-numeric list",
			content: `
problem "x" {
  origin     = "fixed_zero"
  scale_rule = "x_axis"

  base {
    grid_shape = ["wide", "tall", "deep"]
  }
}
`,
			errText: "list of numbers",
		},
		{
			name: "non-positive width",
			content: `
problem "x" {
  origin     = "fixed_zero"
  scale_rule = "x_axis"

  base {
    grid_width = [0, 2, 2]
  }
}
`,
			errText: "grid width must be positive",
		},
		{
			name: "syntax error",
			content: `
problem "x" {
  origin =
`,
			errText: "failed to parse",
		},
	}

	for _, tc := range errorCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeProfileFile(t, tc.content)
			_, err := ProfilesFromFile(hclparse.NewParser(), path)
			assert.ErrorContains(t, err, tc.errText)
		})
	}
}
