package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabruzzo/cholla-scaling/internal/model"
)

// anisotropicBase has distinct values on every axis so a transform that
// reads the wrong source axis cannot produce the expected result.
var anisotropicBase = model.ProblemCase{
	GridLeft:  model.Vec3{0, 0, 0},
	GridWidth: model.Vec3{2, 4, 8},
	GridShape: model.Shape3{100, 200, 300},
	ProcGrid:  model.Shape3{1, 2, 3},
}

func TestAdvance(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		rule     model.ScaleRule
		expected model.ProblemCase
	}{
		{
			name: "grow x axis doubles axis 0 only",
			rule: model.GrowXAxis,
			expected: model.ProblemCase{
				GridLeft:  model.Vec3{0, 0, 0},
				GridWidth: model.Vec3{4, 4, 8},
				GridShape: model.Shape3{200, 200, 300},
				ProcGrid:  model.Shape3{2, 2, 3},
			},
		},
		{
			name: "grow z axis doubles axis 2 only",
			rule: model.GrowZAxis,
			expected: model.ProblemCase{
				GridLeft:  model.Vec3{0, 0, 0},
				GridWidth: model.Vec3{2, 4, 16},
				GridShape: model.Shape3{100, 200, 600},
				ProcGrid:  model.Shape3{1, 2, 6},
			},
		},
		{
			// The y component must double from its own value. With this
			// base, deriving y from the z axis instead would yield
			// width 16, shape 600, procs 6 — so that mistake cannot pass.
			name: "grow xy plane doubles each of x and y from its own value",
			rule: model.GrowXYPlane,
			expected: model.ProblemCase{
				GridLeft:  model.Vec3{0, 0, 0},
				GridWidth: model.Vec3{4, 8, 8},
				GridShape: model.Shape3{200, 400, 300},
				ProcGrid:  model.Shape3{2, 4, 3},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			next, err := Advance(anisotropicBase, model.OriginFixedZero, tc.rule)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, next)
		})
	}
}

func TestAdvance_DoubleApplicationQuadruplesOneAxis(t *testing.T) {
	t.Parallel()

	base := model.ProblemCase{
		GridWidth: model.Vec3{2, 2, 2},
		GridShape: model.Shape3{350, 350, 350},
		ProcGrid:  model.Shape3{1, 1, 1},
	}

	once, err := Advance(base, model.OriginFixedZero, model.GrowXAxis)
	require.NoError(t, err)
	twice, err := Advance(once, model.OriginFixedZero, model.GrowXAxis)
	require.NoError(t, err)

	assert.Equal(t, model.Vec3{8, 2, 2}, twice.GridWidth)
	assert.Equal(t, model.Shape3{1400, 350, 350}, twice.GridShape)
	assert.Equal(t, model.Shape3{4, 1, 1}, twice.ProcGrid)
}

func TestAdvance_OriginPolicies(t *testing.T) {
	t.Parallel()

	t.Run("fixed zero keeps a zero left edge", func(t *testing.T) {
		t.Parallel()

		next, err := Advance(anisotropicBase, model.OriginFixedZero, model.GrowXAxis)
		require.NoError(t, err)
		assert.Equal(t, model.Vec3{0, 0, 0}, next.GridLeft)
	})

	t.Run("fixed zero rejects a nonzero left edge", func(t *testing.T) {
		t.Parallel()

		c := anisotropicBase
		c.GridLeft = model.Vec3{0, -1, 0}
		_, err := Advance(c, model.OriginFixedZero, model.GrowXAxis)
		assert.ErrorContains(t, err, "requires a zero left edge")
	})

	t.Run("centered scales the left edge by the same factors as the width", func(t *testing.T) {
		t.Parallel()

		c := model.ProblemCase{
			GridLeft:  model.Vec3{-4, -4, -4},
			GridWidth: model.Vec3{8, 8, 8},
			GridShape: model.Shape3{350, 350, 350},
			ProcGrid:  model.Shape3{1, 1, 1},
		}
		next, err := Advance(c, model.OriginCentered, model.GrowZAxis)
		require.NoError(t, err)
		assert.Equal(t, model.Vec3{-4, -4, -8}, next.GridLeft)
		assert.Equal(t, model.Vec3{8, 8, 16}, next.GridWidth)
	})
}

func TestAdvance_InputNotMutated(t *testing.T) {
	t.Parallel()

	c := anisotropicBase
	_, err := Advance(c, model.OriginFixedZero, model.GrowXYPlane)
	require.NoError(t, err)
	assert.Equal(t, anisotropicBase, c)
}

func TestAdvance_UnrecognizedVariants(t *testing.T) {
	t.Parallel()

	_, err := Advance(anisotropicBase, model.OriginFixedZero, model.ScaleRule(99))
	assert.ErrorContains(t, err, "missing branch for scale rule")

	_, err = Advance(anisotropicBase, model.OriginPolicy(99), model.GrowXAxis)
	assert.ErrorContains(t, err, "missing branch for origin policy")
}
