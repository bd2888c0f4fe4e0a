package scaling

import (
	"fmt"

	"github.com/mabruzzo/cholla-scaling/internal/model"
)

// factors returns the per-axis multiplier triple for one doubling step under
// the given rule. Every axis doubles from its own current value; growing the
// xy plane never derives one axis from another.
func factors(rule model.ScaleRule) ([3]int, error) {
	switch rule {
	case model.GrowXAxis:
		return [3]int{2, 1, 1}, nil
	case model.GrowZAxis:
		return [3]int{1, 1, 2}, nil
	case model.GrowXYPlane:
		return [3]int{2, 2, 1}, nil
	}
	return [3]int{}, fmt.Errorf("missing branch for scale rule %v", rule)
}

func scaleVec(v model.Vec3, f [3]int) model.Vec3 {
	return model.Vec3{v[0] * float64(f[0]), v[1] * float64(f[1]), v[2] * float64(f[2])}
}

func scaleShape(s model.Shape3, f [3]int) model.Shape3 {
	return model.Shape3{s[0] * f[0], s[1] * f[1], s[2] * f[2]}
}

// Advance derives the next case in a scaling sequence. The rule's multiplier
// triple applies independently to the grid width, the grid shape, and the
// process grid; the left edge follows the origin policy. The input case is
// never mutated.
//
// Advance fails when the rule or policy variant is unrecognized, or when a
// fixed-zero origin policy is asked to transform a case whose left edge is
// not zero on every axis.
func Advance(c model.ProblemCase, policy model.OriginPolicy, rule model.ScaleRule) (model.ProblemCase, error) {
	f, err := factors(rule)
	if err != nil {
		return model.ProblemCase{}, err
	}

	next := model.ProblemCase{
		GridWidth: scaleVec(c.GridWidth, f),
		GridShape: scaleShape(c.GridShape, f),
		ProcGrid:  scaleShape(c.ProcGrid, f),
	}

	switch policy {
	case model.OriginFixedZero:
		if c.GridLeft != (model.Vec3{}) {
			return model.ProblemCase{}, fmt.Errorf("origin policy %q requires a zero left edge, got %v", policy, c.GridLeft)
		}
		next.GridLeft = c.GridLeft
	case model.OriginCentered:
		next.GridLeft = scaleVec(c.GridLeft, f)
	default:
		return model.ProblemCase{}, fmt.Errorf("missing branch for origin policy %v", policy)
	}

	return next, nil
}
