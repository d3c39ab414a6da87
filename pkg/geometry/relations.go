package geometry

import (
	"fmt"
	"math"

	"github.com/pancad/pancad/pkg/numeric"
)

// Spatial relation predicates answer how one element is located relative
// to another. They dispatch over point, line, line segment and plane
// pairs; constraint checks call them to report satisfaction. Tolerance
// and NaN handling follow the numeric options the caller passes.

// RelationError reports a spatial relation asked of a kind pair it is not
// defined for.
type RelationError struct {
	Op   string
	A, B Kind
}

func (e *RelationError) Error() string {
	return fmt.Sprintf("%s is not defined between %s and %s", e.Op, e.A, e.B)
}

// Coincident reports whether a lies on b. Points lie on points, lines,
// segments and planes; lines and segments lie on each other when they
// share the same infinite line, and on planes; planes coincide when they
// are the same plane.
func Coincident(a, b Geometry, opts ...numeric.Option) (bool, error) {
	if a.Dim() != b.Dim() {
		return false, &DimensionError{Op: "coincident", Want: a.Dim(), Got: b.Dim()}
	}
	switch ga := a.(type) {
	case *Point:
		switch gb := b.(type) {
		case *Point:
			return ga.Equals(gb, opts...), nil
		case *Line:
			return pointOnLine(ga, gb, opts), nil
		case *LineSegment:
			return pointOnLine(ga, gb.AsLine(), opts), nil
		case *Plane:
			return pointOnPlane(ga, gb, opts), nil
		}
	case *Line:
		switch gb := b.(type) {
		case *Point:
			return pointOnLine(gb, ga, opts), nil
		case *Line:
			return ga.Equals(gb, opts...), nil
		case *LineSegment:
			return ga.Equals(gb.AsLine(), opts...), nil
		case *Plane:
			return lineOnPlane(ga, gb, opts), nil
		}
	case *LineSegment:
		switch gb := b.(type) {
		case *Point:
			return pointOnLine(gb, ga.AsLine(), opts), nil
		case *Line:
			return ga.AsLine().Equals(gb, opts...), nil
		case *LineSegment:
			return ga.AsLine().Equals(gb.AsLine(), opts...), nil
		case *Plane:
			return lineOnPlane(ga.AsLine(), gb, opts), nil
		}
	case *Plane:
		switch gb := b.(type) {
		case *Point:
			return pointOnPlane(gb, ga, opts), nil
		case *Line:
			return lineOnPlane(gb, ga, opts), nil
		case *LineSegment:
			return lineOnPlane(gb.AsLine(), ga, opts), nil
		case *Plane:
			return sameAxis(ga.normal, gb.normal, opts) &&
				ga.refPoint.Equals(gb.refPoint, opts...), nil
		}
	}
	return false, &RelationError{Op: "coincident", A: a.Kind(), B: b.Kind()}
}

// Parallel reports whether two edges or planes are parallel. Opposed
// directions count as parallel.
func Parallel(a, b Geometry, opts ...numeric.Option) (bool, error) {
	if a.Dim() != b.Dim() {
		return false, &DimensionError{Op: "parallel", Want: a.Dim(), Got: b.Dim()}
	}
	la, aEdge := asInfiniteLine(a)
	lb, bEdge := asInfiniteLine(b)
	pa, aPlane := a.(*Plane)
	pb, bPlane := b.(*Plane)
	switch {
	case aEdge && bEdge:
		// Canonical directions make opposed edges compare equal.
		return numeric.VecClose(la.direction, lb.direction, opts...), nil
	case aEdge && bPlane:
		return numeric.IsZero(dot(la.direction, pb.normal), opts...), nil
	case aPlane && bEdge:
		return numeric.IsZero(dot(lb.direction, pa.normal), opts...), nil
	case aPlane && bPlane:
		return sameAxis(pa.normal, pb.normal, opts), nil
	}
	return false, &RelationError{Op: "parallel", A: a.Kind(), B: b.Kind()}
}

// Perpendicular reports whether two edges or planes intersect at a right
// angle. Skew 3D lines are never perpendicular.
func Perpendicular(a, b Geometry, opts ...numeric.Option) (bool, error) {
	if a.Dim() != b.Dim() {
		return false, &DimensionError{Op: "perpendicular", Want: a.Dim(), Got: b.Dim()}
	}
	la, aEdge := asInfiniteLine(a)
	lb, bEdge := asInfiniteLine(b)
	pa, aPlane := a.(*Plane)
	pb, bPlane := b.(*Plane)
	switch {
	case aEdge && bEdge:
		if skewLines(la, lb, opts) {
			return false, nil
		}
		return numeric.IsZero(dot(la.direction, lb.direction), opts...), nil
	case aEdge && bPlane:
		return sameAxis(la.direction, pb.normal, opts), nil
	case aPlane && bEdge:
		return sameAxis(lb.direction, pa.normal, opts), nil
	case aPlane && bPlane:
		return numeric.IsZero(dot(pa.normal, pb.normal), opts...), nil
	}
	return false, &RelationError{Op: "perpendicular", A: a.Kind(), B: b.Kind()}
}

// Skew reports whether two lines neither intersect nor run parallel. Only
// 3D lines can be skew; 2D lines never are.
func Skew(a, b Geometry, opts ...numeric.Option) (bool, error) {
	la, aEdge := asInfiniteLine(a)
	lb, bEdge := asInfiniteLine(b)
	if !aEdge || !bEdge {
		return false, &RelationError{Op: "skew", A: a.Kind(), B: b.Kind()}
	}
	if a.Dim() != b.Dim() {
		return false, &DimensionError{Op: "skew", Want: a.Dim(), Got: b.Dim()}
	}
	return skewLines(la, lb, opts), nil
}

// ---- angle between ----

// AngleOption adjusts how AngleBetween measures.
type AngleOption func(*angleOptions)

type angleOptions struct {
	supplement bool
	signed     bool
}

// Supplement measures the angle of the other pair of sectors, pi minus
// the direct angle.
func Supplement() AngleOption {
	return func(o *angleOptions) { o.supplement = true }
}

// Signed returns a negative angle when the turn from the first direction
// to the second is clockwise. 2D only; the sign comes from the second
// direction's component along the first direction rotated a quarter turn.
func Signed() AngleOption {
	return func(o *angleOptions) { o.signed = true }
}

// AngleBetween returns the angle between two edges or planes in radians.
// Skew 3D lines have no angle between them; ok is false then.
func AngleBetween(a, b Geometry, opts ...AngleOption) (angle float64, ok bool, err error) {
	var o angleOptions
	for _, opt := range opts {
		opt(&o)
	}
	if a.Dim() != b.Dim() {
		return 0, false, &DimensionError{Op: "angle between", Want: a.Dim(), Got: b.Dim()}
	}
	if o.signed && a.Dim() != 2 {
		return 0, false, &DimensionError{Op: "signed angle", Want: 2, Got: a.Dim()}
	}

	la, aEdge := asInfiniteLine(a)
	lb, bEdge := asInfiniteLine(b)
	pa, aPlane := a.(*Plane)
	pb, bPlane := b.(*Plane)
	switch {
	case aEdge && bEdge:
		if skewLines(la, lb, nil) {
			return 0, false, nil
		}
		return vectorAngle(edgeDirection(a), edgeDirection(b), o), true, nil
	case aEdge && bPlane:
		return linePlaneAngle(la, pb, o), true, nil
	case aPlane && bEdge:
		return linePlaneAngle(lb, pa, o), true, nil
	case aPlane && bPlane:
		// The dihedral angle, measured between the normals.
		return vectorAngle(pa.normal, pb.normal, o), true, nil
	}
	return 0, false, &RelationError{Op: "angle between", A: a.Kind(), B: b.Kind()}
}

// ---- dispatch helpers ----

// asInfiniteLine widens an edge to its infinite line.
func asInfiniteLine(g Geometry) (*Line, bool) {
	switch e := g.(type) {
	case *Line:
		return e, true
	case *LineSegment:
		return e.AsLine(), true
	}
	return nil, false
}

// edgeDirection returns the measuring direction of an edge: a segment
// points from start to end, a line uses its canonical direction.
func edgeDirection(g Geometry) []float64 {
	switch e := g.(type) {
	case *Line:
		return e.direction
	case *LineSegment:
		return e.Direction()
	}
	return nil
}

func pointOnLine(p *Point, l *Line, opts []numeric.Option) bool {
	// The reference point is perpendicular to the direction, so the
	// projection of p is ref + (p . d) d.
	t := dot(p.coords, l.direction)
	proj := make([]float64, len(l.direction))
	for i := range proj {
		proj[i] = l.refPoint.coords[i] + t*l.direction[i]
	}
	return numeric.VecClose(proj, p.coords, opts...)
}

func pointOnPlane(p *Point, pl *Plane, opts []numeric.Option) bool {
	return numeric.IsZero(dot(pl.normal, p.coords)+pl.D(), opts...)
}

func lineOnPlane(l *Line, pl *Plane, opts []numeric.Option) bool {
	return numeric.IsZero(dot(l.direction, pl.normal), opts...) &&
		pointOnPlane(l.refPoint, pl, opts)
}

// sameAxis reports whether two unit vectors span the same axis in either
// orientation.
func sameAxis(u, v []float64, opts []numeric.Option) bool {
	neg := make([]float64, len(v))
	for i := range v {
		neg[i] = -v[i]
	}
	return numeric.VecClose(u, v, opts...) || numeric.VecClose(u, neg, opts...)
}

func skewLines(a, b *Line, opts []numeric.Option) bool {
	if a.Dim() != 3 {
		return false
	}
	if numeric.VecClose(a.direction, b.direction, opts...) {
		return false
	}
	sep := make([]float64, 3)
	for i := range sep {
		sep[i] = a.refPoint.coords[i] - b.refPoint.coords[i]
	}
	return !numeric.IsZero(dot(sep, cross3(a.direction, b.direction)), opts...)
}

func cross3(u, v []float64) []float64 {
	return []float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

func vectorAngle(u, v []float64, o angleOptions) float64 {
	c := dot(u, v)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	angle := math.Acos(c)
	if o.supplement {
		angle = math.Pi - angle
	}
	if o.signed && u[0]*v[1]-u[1]*v[0] < 0 {
		angle = -angle
	}
	return angle
}

// linePlaneAngle measures between the line and its projection onto the
// plane.
func linePlaneAngle(l *Line, pl *Plane, o angleOptions) float64 {
	s := math.Abs(dot(l.direction, pl.normal))
	if s > 1 {
		s = 1
	}
	angle := math.Asin(s)
	if o.supplement {
		angle = math.Pi - angle
	}
	return angle
}
