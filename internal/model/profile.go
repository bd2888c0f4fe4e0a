package model

import (
	"errors"
	"fmt"
)

// ProblemProfile binds a named test problem to its scaling behavior and the
// base geometry the case sequence starts from.
type ProblemProfile struct {
	Name   string
	Origin OriginPolicy
	Rule   ScaleRule
	Base   ProblemCase
}

// DefaultBase returns the stock starting geometry for the given origin
// policy: a 350^3 grid on a single process, spanning 2 code units from zero
// along each axis, or 8 code units centered on the origin.
func DefaultBase(origin OriginPolicy) ProblemCase {
	base := ProblemCase{
		GridShape: Shape3{350, 350, 350},
		ProcGrid:  Shape3{1, 1, 1},
	}
	if origin == OriginCentered {
		base.GridLeft = Vec3{-4, -4, -4}
		base.GridWidth = Vec3{8, 8, 8}
	} else {
		base.GridWidth = Vec3{2, 2, 2}
	}
	return base
}

// Validate checks the profile's internal consistency. Widths, cell counts,
// and process counts must be positive on every axis, and a fixed-zero origin
// requires a base left edge of exactly zero.
func (p *ProblemProfile) Validate() error {
	if p.Name == "" {
		return errors.New("problem profile has no name")
	}
	for i := range p.Base.GridWidth {
		if p.Base.GridWidth[i] <= 0 {
			return fmt.Errorf("problem %q: grid width must be positive on every axis, got %v", p.Name, p.Base.GridWidth)
		}
		if p.Base.GridShape[i] <= 0 {
			return fmt.Errorf("problem %q: grid shape must be positive on every axis, got %v", p.Name, p.Base.GridShape)
		}
		if p.Base.ProcGrid[i] <= 0 {
			return fmt.Errorf("problem %q: process grid must be positive on every axis, got %v", p.Name, p.Base.ProcGrid)
		}
	}
	if p.Origin == OriginFixedZero && p.Base.GridLeft != (Vec3{}) {
		return fmt.Errorf("problem %q uses a fixed-zero origin but its base left edge is %v", p.Name, p.Base.GridLeft)
	}
	return nil
}
