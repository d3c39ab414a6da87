package constraint

import "github.com/pancad/pancad/pkg/geometry"

// State constraints hold a geometric relationship between two references
// without an associated value.

// CoincidentConstraint holds two references to the same location.
type CoincidentConstraint struct{ *base }

// EqualConstraint holds the contextual size of two elements equal, such as
// two segment lengths or two circle radii.
type EqualConstraint struct{ *base }

// ParallelConstraint holds two edges or planes parallel.
type ParallelConstraint struct{ *base }

// PerpendicularConstraint holds two edges or planes at a right angle.
type PerpendicularConstraint struct{ *base }

// TangentConstraint holds an element touching a curve without crossing it.
type TangentConstraint struct{ *base }

var (
	_ Constraint = (*CoincidentConstraint)(nil)
	_ Constraint = (*EqualConstraint)(nil)
	_ Constraint = (*ParallelConstraint)(nil)
	_ Constraint = (*PerpendicularConstraint)(nil)
	_ Constraint = (*TangentConstraint)(nil)
)

func newPair(ctype Type,
	a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference) (*base, error) {
	return newBase(ctype,
		[]geometry.Geometry{a, b},
		[]geometry.ConstraintReference{refA, refB})
}

// NewCoincident creates a coincident constraint between two references.
func NewCoincident(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference) (*CoincidentConstraint, error) {
	base, err := newPair(TypeCoincident, a, refA, b, refB)
	if err != nil {
		return nil, err
	}
	return &CoincidentConstraint{base}, nil
}

// NewEqual creates an equal constraint between two references.
func NewEqual(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference) (*EqualConstraint, error) {
	base, err := newPair(TypeEqual, a, refA, b, refB)
	if err != nil {
		return nil, err
	}
	return &EqualConstraint{base}, nil
}

// NewParallel creates a parallel constraint between two references.
func NewParallel(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference) (*ParallelConstraint, error) {
	base, err := newPair(TypeParallel, a, refA, b, refB)
	if err != nil {
		return nil, err
	}
	return &ParallelConstraint{base}, nil
}

// NewPerpendicular creates a perpendicular constraint between two
// references.
func NewPerpendicular(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference) (*PerpendicularConstraint, error) {
	base, err := newPair(TypePerpendicular, a, refA, b, refB)
	if err != nil {
		return nil, err
	}
	return &PerpendicularConstraint{base}, nil
}

// NewTangent creates a tangent constraint between two references. Edge to
// edge tangency is rejected.
func NewTangent(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference) (*TangentConstraint, error) {
	base, err := newPair(TypeTangent, a, refA, b, refB)
	if err != nil {
		return nil, err
	}
	return &TangentConstraint{base}, nil
}
