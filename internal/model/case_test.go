package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape3_Product(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Shape3{1, 1, 1}.Product())
	assert.Equal(t, 24, Shape3{2, 3, 4}.Product())
}

func TestProblemCase_TotalProcs(t *testing.T) {
	t.Parallel()

	c := ProblemCase{ProcGrid: Shape3{4, 2, 1}}
	assert.Equal(t, 8, c.TotalProcs())
}

func TestParseOriginPolicy(t *testing.T) {
	t.Parallel()

	for _, policy := range []OriginPolicy{OriginFixedZero, OriginCentered} {
		parsed, err := ParseOriginPolicy(policy.String())
		assert.NoError(t, err)
		assert.Equal(t, policy, parsed)
	}

	_, err := ParseOriginPolicy("left")
	assert.ErrorContains(t, err, "invalid origin policy")
}

func TestParseScaleRule(t *testing.T) {
	t.Parallel()

	for _, rule := range []ScaleRule{GrowXAxis, GrowZAxis, GrowXYPlane} {
		parsed, err := ParseScaleRule(rule.String())
		assert.NoError(t, err)
		assert.Equal(t, rule, parsed)
	}

	_, err := ParseScaleRule("y_axis")
	assert.ErrorContains(t, err, "invalid scale rule")
}
