// This file decodes `problem` blocks from user-supplied .hcl profile files
// into ProblemProfile values.
//
// Why keep raw hcl.Expression fields in the decode structs?
//
// The geometry attributes are lists of numbers. Decoding them through
// cty's conversion machinery (rather than straight into Go slices) gives the
// user HCL's normal numeric flexibility — `[2, 2, 2]` and `[2.0, 2.0, 2.0]`
// both convert cleanly — while still letting us enforce the exactly-three-
// elements rule with a precise error message.
package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclProfileFile represents the top-level structure of a profiles file.
type hclProfileFile struct {
	Problems []*hclProblem `hcl:"problem,block"`
}

// hclProblem represents a single 'problem' block.
type hclProblem struct {
	Name   string   `hcl:"name,label"`
	Origin string   `hcl:"origin"`
	Rule   string   `hcl:"scale_rule"`
	Base   *hclBase `hcl:"base,block"`
}

// hclBase represents the optional 'base' block overriding the stock
// starting geometry.
type hclBase struct {
	GridLeft    hcl.Expression `hcl:"grid_left,optional"`
	GridWidth   hcl.Expression `hcl:"grid_width,optional"`
	GridShape   hcl.Expression `hcl:"grid_shape,optional"`
	ProcessGrid hcl.Expression `hcl:"process_grid,optional"`
}

// ProfilesFromFile parses a single HCL profiles file and returns the
// validated ProblemProfiles it defines.
func ProfilesFromFile(parser *hclparse.Parser, filePath string) ([]*ProblemProfile, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsedFile hclProfileFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsedFile)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	profiles := make([]*ProblemProfile, 0, len(parsedFile.Problems))
	for _, parsedProblem := range parsedFile.Problems {
		profile, err := newProfileFromHCL(parsedProblem)
		if err != nil {
			return nil, fmt.Errorf("error in problem definition in %s: %w", filePath, err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// newProfileFromHCL translates one decoded 'problem' block into a validated
// ProblemProfile, applying the per-policy default base geometry for any
// attribute the block leaves out.
func newProfileFromHCL(parsed *hclProblem) (*ProblemProfile, error) {
	origin, err := ParseOriginPolicy(parsed.Origin)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", parsed.Name, err)
	}
	rule, err := ParseScaleRule(parsed.Rule)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", parsed.Name, err)
	}

	profile := &ProblemProfile{
		Name:   parsed.Name,
		Origin: origin,
		Rule:   rule,
		Base:   DefaultBase(origin),
	}

	if parsed.Base != nil {
		if err := applyBaseOverrides(profile, parsed.Base); err != nil {
			return nil, fmt.Errorf("problem %q: %w", parsed.Name, err)
		}
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

func applyBaseOverrides(profile *ProblemProfile, base *hclBase) error {
	if err := decodeVec3(base.GridLeft, "grid_left", &profile.Base.GridLeft); err != nil {
		return err
	}
	if err := decodeVec3(base.GridWidth, "grid_width", &profile.Base.GridWidth); err != nil {
		return err
	}
	if err := decodeShape3(base.GridShape, "grid_shape", &profile.Base.GridShape); err != nil {
		return err
	}
	if err := decodeShape3(base.ProcessGrid, "process_grid", &profile.Base.ProcGrid); err != nil {
		return err
	}
	return nil
}

// decodeVec3 evaluates a list expression into exactly three reals. A nil or
// absent expression leaves the target untouched.
func decodeVec3(expr hcl.Expression, attrName string, target *Vec3) error {
	vals, err := decodeNumberList(expr, attrName)
	if err != nil || vals == nil {
		return err
	}
	var out Vec3
	for i, v := range vals {
		f, _ := v.AsBigFloat().Float64()
		out[i] = f
	}
	*target = out
	return nil
}

// decodeShape3 evaluates a list expression into exactly three integers. A
// nil or absent expression leaves the target untouched.
func decodeShape3(expr hcl.Expression, attrName string, target *Shape3) error {
	vals, err := decodeNumberList(expr, attrName)
	if err != nil || vals == nil {
		return err
	}
	var out Shape3
	for i, v := range vals {
		var n int
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return fmt.Errorf("attribute %q: element %d is not an integer: %w", attrName, i, err)
		}
		out[i] = n
	}
	*target = out
	return nil
}

// decodeNumberList evaluates an expression into a list of exactly three
// cty numbers. It returns (nil, nil) when the attribute was not set.
func decodeNumberList(expr hcl.Expression, attrName string) ([]cty.Value, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("attribute %q: %w", attrName, diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("attribute %q: cannot convert %s to a list of numbers: %w", attrName, val.Type().FriendlyName(), err)
	}

	vals := converted.AsValueSlice()
	if len(vals) != 3 {
		return nil, fmt.Errorf("attribute %q: expected exactly 3 elements, got %d", attrName, len(vals))
	}
	return vals, nil
}
