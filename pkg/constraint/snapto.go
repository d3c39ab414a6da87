package constraint

import "github.com/pancad/pancad/pkg/geometry"

// Snap-to constraints align elements with the axes of a 2D sketch. They
// come in two forms: a single edge snapped to an axis, or two points
// aligned with each other along an axis.

// HorizontalConstraint holds an edge, or the line between two points,
// parallel to the sketch x-axis.
type HorizontalConstraint struct{ *base }

// VerticalConstraint holds an edge, or the line between two points,
// parallel to the sketch y-axis.
type VerticalConstraint struct{ *base }

var (
	_ Constraint = (*HorizontalConstraint)(nil)
	_ Constraint = (*VerticalConstraint)(nil)
)

// snap-to legality: the one-geometry form takes an edge, the two-geometry
// form takes two points.
var (
	snapToEdgeKinds  = kinds(geometry.KindLine, geometry.KindLineSegment)
	snapToPointKinds = kinds(geometry.KindPoint)
)

func newSnapTo(ctype Type,
	a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference) (*base, error) {
	parents := []geometry.Geometry{a}
	refs := []geometry.ConstraintReference{refA}
	if b != nil {
		parents = append(parents, b)
		refs = append(refs, refB)
	}
	base, err := newBase(ctype, parents, refs)
	if err != nil {
		return nil, err
	}

	for _, p := range parents {
		if p.Dim() != 2 {
			return nil, &geometry.DimensionError{Op: ctype.String(), Want: 2, Got: p.Dim()}
		}
	}

	if b == nil {
		if !snapToEdgeKinds[base.resolved[0].Kind()] {
			return nil, &KindError{
				Constraint: ctype, Kind: base.resolved[0].Kind(), Resolved: true,
			}
		}
		return base, nil
	}
	for _, g := range base.resolved {
		if !snapToPointKinds[g.Kind()] {
			return nil, &KindError{Constraint: ctype, Kind: g.Kind(), Resolved: true}
		}
	}
	if base.resolved[0] == base.resolved[1] {
		return nil, &SelfConstraintError{Constraint: ctype, UID: base.resolved[0].UID()}
	}
	return base, nil
}

// NewHorizontal creates the one-geometry horizontal form on an edge.
func NewHorizontal(a geometry.Geometry, refA geometry.ConstraintReference) (*HorizontalConstraint, error) {
	base, err := newSnapTo(TypeHorizontal, a, refA, nil, geometry.RefCore)
	if err != nil {
		return nil, err
	}
	return &HorizontalConstraint{base}, nil
}

// NewHorizontalPoints creates the two-geometry horizontal form between two
// point references.
func NewHorizontalPoints(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference) (*HorizontalConstraint, error) {
	base, err := newSnapTo(TypeHorizontal, a, refA, b, refB)
	if err != nil {
		return nil, err
	}
	return &HorizontalConstraint{base}, nil
}

// NewVertical creates the one-geometry vertical form on an edge.
func NewVertical(a geometry.Geometry, refA geometry.ConstraintReference) (*VerticalConstraint, error) {
	base, err := newSnapTo(TypeVertical, a, refA, nil, geometry.RefCore)
	if err != nil {
		return nil, err
	}
	return &VerticalConstraint{base}, nil
}

// NewVerticalPoints creates the two-geometry vertical form between two
// point references.
func NewVerticalPoints(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference) (*VerticalConstraint, error) {
	base, err := newSnapTo(TypeVertical, a, refA, b, refB)
	if err != nil {
		return nil, err
	}
	return &VerticalConstraint{base}, nil
}
