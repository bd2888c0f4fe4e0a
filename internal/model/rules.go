package model

import "fmt"

// OriginPolicy governs how the grid's left edge evolves as the domain grows.
type OriginPolicy int

const (
	// OriginFixedZero pins the left edge at zero on every axis. A base case
	// with a nonzero left edge is incompatible with this policy.
	OriginFixedZero OriginPolicy = iota
	// OriginCentered scales the left edge by the same per-axis factors as
	// the rest of the geometry, so the domain stays centered on the origin
	// as it grows.
	OriginCentered
)

// String implements fmt.Stringer, returning the configuration-file spelling.
func (p OriginPolicy) String() string {
	switch p {
	case OriginFixedZero:
		return "fixed_zero"
	case OriginCentered:
		return "centered"
	}
	return fmt.Sprintf("OriginPolicy(%d)", int(p))
}

// ParseOriginPolicy converts a configuration-file spelling into an
// OriginPolicy.
func ParseOriginPolicy(s string) (OriginPolicy, error) {
	switch s {
	case "fixed_zero":
		return OriginFixedZero, nil
	case "centered":
		return OriginCentered, nil
	}
	return 0, fmt.Errorf("invalid origin policy %q: must be 'fixed_zero' or 'centered'", s)
}

// ScaleRule governs which axes double on each scaling step. The rule applies
// uniformly to the grid width, the grid shape, and the process grid, so each
// subgrid's per-cell workload stays constant as the problem grows.
type ScaleRule int

const (
	// GrowXAxis doubles the x axis while holding the other axes constant.
	GrowXAxis ScaleRule = iota
	// GrowZAxis doubles the z axis while holding the other axes constant.
	GrowZAxis
	// GrowXYPlane doubles the x and y axes together while holding the
	// z axis constant.
	GrowXYPlane
)

// String implements fmt.Stringer, returning the configuration-file spelling.
func (r ScaleRule) String() string {
	switch r {
	case GrowXAxis:
		return "x_axis"
	case GrowZAxis:
		return "z_axis"
	case GrowXYPlane:
		return "xy_plane"
	}
	return fmt.Sprintf("ScaleRule(%d)", int(r))
}

// ParseScaleRule converts a configuration-file spelling into a ScaleRule.
func ParseScaleRule(s string) (ScaleRule, error) {
	switch s {
	case "x_axis":
		return GrowXAxis, nil
	case "z_axis":
		return GrowZAxis, nil
	case "xy_plane":
		return GrowXYPlane, nil
	}
	return 0, fmt.Errorf("invalid scale rule %q: must be 'x_axis', 'z_axis', or 'xy_plane'", s)
}
