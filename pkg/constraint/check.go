package constraint

import (
	"fmt"
	"math"

	"github.com/pancad/pancad/pkg/geometry"
	"github.com/pancad/pancad/pkg/numeric"
)

// Check methods report whether the constrained geometry currently
// satisfies the relationship. They only measure; they never move geometry
// to satisfy themselves. NaN coordinates compare equal by default so a
// partially placed element does not fail spuriously; callers can override
// that with numeric options.

func checkOpts(opts []numeric.Option) []numeric.Option {
	return append([]numeric.Option{numeric.WithNaNEqual(true)}, opts...)
}

// Check reports whether the two resolved references occupy the same
// location.
func (c *CoincidentConstraint) Check(opts ...numeric.Option) (bool, error) {
	return geometry.Coincident(c.resolved[0], c.resolved[1], checkOpts(opts)...)
}

// Check reports whether the two resolved edges or planes run parallel.
func (c *ParallelConstraint) Check(opts ...numeric.Option) (bool, error) {
	return geometry.Parallel(c.resolved[0], c.resolved[1], checkOpts(opts)...)
}

// Check reports whether the two resolved edges or planes meet at a right
// angle.
func (c *PerpendicularConstraint) Check(opts ...numeric.Option) (bool, error) {
	return geometry.Perpendicular(c.resolved[0], c.resolved[1], checkOpts(opts)...)
}

// Check reports whether the two elements have the same contextual size,
// segment length against segment length or radius against radius.
func (c *EqualConstraint) Check(opts ...numeric.Option) (bool, error) {
	a, err := contextualSize(c.resolved[0])
	if err != nil {
		return false, err
	}
	b, err := contextualSize(c.resolved[1])
	if err != nil {
		return false, err
	}
	return numeric.IsClose(a, b, checkOpts(opts)...), nil
}

func contextualSize(g geometry.Geometry) (float64, error) {
	switch e := g.(type) {
	case *geometry.LineSegment:
		return e.Length(), nil
	case *geometry.Circle:
		return e.Radius(), nil
	case *geometry.CircularArc:
		return e.Radius(), nil
	}
	return 0, &KindError{Constraint: TypeEqual, Kind: g.Kind(), Resolved: true}
}

// Check reports whether the curve and its partner currently touch at a
// single point. Pairs without a circle are not measurable yet.
func (c *TangentConstraint) Check(opts ...numeric.Option) (bool, error) {
	o := checkOpts(opts)
	if ca, ok := c.resolved[0].(*geometry.Circle); ok {
		return circleTangent(ca, c.resolved[1], o)
	}
	if cb, ok := c.resolved[1].(*geometry.Circle); ok {
		return circleTangent(cb, c.resolved[0], o)
	}
	return false, &geometry.CapabilityError{
		Capability: fmt.Sprintf("tangent check between %s and %s",
			c.resolved[0].Kind(), c.resolved[1].Kind()),
	}
}

func circleTangent(c *geometry.Circle, g geometry.Geometry, opts []numeric.Option) (bool, error) {
	switch e := g.(type) {
	case *geometry.Line:
		return numeric.IsClose(pointLineDistance(c.Center(), e), c.Radius(), opts...), nil
	case *geometry.LineSegment:
		return numeric.IsClose(pointLineDistance(c.Center(), e.AsLine()), c.Radius(), opts...), nil
	case *geometry.Circle:
		// Externally tangent at r1+r2, internally at |r1-r2|.
		d := pointDistance(c.Center(), e.Center())
		return numeric.IsClose(d, c.Radius()+e.Radius(), opts...) ||
			numeric.IsClose(d, math.Abs(c.Radius()-e.Radius()), opts...), nil
	}
	return false, &geometry.CapabilityError{
		Capability: fmt.Sprintf("tangent check between circle and %s", g.Kind()),
	}
}

// pointDistance returns the Euclidean distance between two points.
func pointDistance(a, b *geometry.Point) float64 {
	var sum float64
	for i := 0; i < a.Dim(); i++ {
		d := b.At(i) - a.At(i)
		sum += d * d
	}
	return math.Sqrt(sum)
}

// pointLineDistance returns the distance from a point to an infinite
// line. The line's reference point is its perpendicular foot from the
// origin and its direction is unit length, so the closest point on the
// line is ref + (p . d) d.
func pointLineDistance(p *geometry.Point, l *geometry.Line) float64 {
	dir := l.Direction()
	ref := l.ReferencePoint()
	var t float64
	for i := 0; i < p.Dim(); i++ {
		t += p.At(i) * dir[i]
	}
	var sum float64
	for i := 0; i < p.Dim(); i++ {
		d := p.At(i) - (ref.At(i) + t*dir[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Check reports whether the edge runs level, or the two points share a y
// coordinate.
func (c *HorizontalConstraint) Check(opts ...numeric.Option) (bool, error) {
	return snapToCheck(c.base, 1, checkOpts(opts))
}

// Check reports whether the edge runs upright, or the two points share an
// x coordinate.
func (c *VerticalConstraint) Check(opts ...numeric.Option) (bool, error) {
	return snapToCheck(c.base, 0, checkOpts(opts))
}

// snapToCheck verifies the blocked axis: an edge must not vary along it,
// two points must agree on it.
func snapToCheck(b *base, axis int, opts []numeric.Option) (bool, error) {
	if len(b.resolved) == 1 {
		dir := checkEdgeDirection(b.resolved[0])
		return numeric.IsZero(dir[axis], opts...), nil
	}
	pa := b.resolved[0].(*geometry.Point)
	pb := b.resolved[1].(*geometry.Point)
	return numeric.IsClose(pa.At(axis), pb.At(axis), opts...), nil
}

// checkEdgeDirection returns the measuring direction of a resolved edge:
// a segment points from start to end, a line uses its canonical
// direction.
func checkEdgeDirection(g geometry.Geometry) []float64 {
	switch e := g.(type) {
	case *geometry.Line:
		return e.Direction()
	case *geometry.LineSegment:
		return e.Direction()
	}
	return nil
}

// Measured returns the current angle between the two edges in degrees,
// read in the constraint's quadrant. The quadrant swaps and negates the
// measuring directions so that each of the four sectors between the
// edges reads out as a positive sweep.
func (c *AngleConstraint) Measured() (float64, error) {
	if c.resolved[0].Dim() != 2 {
		return 0, &geometry.DimensionError{
			Op: "angle measurement", Want: 2, Got: c.resolved[0].Dim(),
		}
	}
	u := checkEdgeDirection(c.resolved[0])
	v := checkEdgeDirection(c.resolved[1])
	if u == nil {
		return 0, &KindError{Constraint: TypeAngle, Kind: c.resolved[0].Kind(), Resolved: true}
	}
	if v == nil {
		return 0, &KindError{Constraint: TypeAngle, Kind: c.resolved[1].Kind(), Resolved: true}
	}
	switch c.quadrant {
	case 2:
		u, v = v, negate2(u)
	case 3:
		u = negate2(u)
	case 4:
		u, v = v, u
	}
	return signedDegrees(u, v), nil
}

// Check reports whether the measured angle matches the constraint value.
func (c *AngleConstraint) Check(opts ...numeric.Option) (bool, error) {
	measured, err := c.Measured()
	if err != nil {
		return false, err
	}
	return numeric.IsClose(measured, c.value, checkOpts(opts)...), nil
}

func negate2(u []float64) []float64 { return []float64{-u[0], -u[1]} }

// signedDegrees measures the counterclockwise turn from u to v, negative
// when the turn is clockwise.
func signedDegrees(u, v []float64) float64 {
	return math.Atan2(u[0]*v[1]-u[1]*v[0], u[0]*v[0]+u[1]*v[1]) * 180 / math.Pi
}
