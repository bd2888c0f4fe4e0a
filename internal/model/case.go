package model

// Vec3 holds one real value per spatial axis, ordered x, y, z.
type Vec3 [3]float64

// Shape3 holds one integer count per spatial axis, ordered x, y, z.
type Shape3 [3]int

// Product returns the product of all three components.
func (s Shape3) Product() int {
	return s[0] * s[1] * s[2]
}

// ProblemCase is one concrete scaling instance of a test problem: the
// physical extent of the simulated domain, its cell resolution, and the
// process grid it is partitioned across. All fields are value types, so a
// ProblemCase copies as a self-contained snapshot; deriving the next case in
// a sequence never touches its predecessor.
type ProblemCase struct {
	// GridLeft is the left edge of the grid in code units.
	GridLeft Vec3
	// GridWidth is the total width of the grid in code units.
	GridWidth Vec3
	// GridShape is the full shape of the grid, excluding ghost zones.
	GridShape Shape3
	// ProcGrid is the number of blocks (subgrids) along each axis.
	ProcGrid Shape3
}

// TotalProcs returns the total number of processes the case runs on.
func (c ProblemCase) TotalProcs() int {
	return c.ProcGrid.Product()
}
