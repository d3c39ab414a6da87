package geometry

import (
	"fmt"
	"math"

	"github.com/pancad/pancad/pkg/numeric"
)

// CircularArc is the portion of a circle swept between two endpoints. The
// center, start and end points are held by pointer and answer the center,
// start and end references. The start and end points must be equidistant
// from the center.
type CircularArc struct {
	uid    string
	center *Point
	start  *Point
	end    *Point
	// clockwise selects which of the two arcs between the endpoints is
	// meant, viewed in the sketch plane.
	clockwise bool
}

var _ Geometry = (*CircularArc)(nil)

// NewCircularArc creates an arc from its center and two endpoints. The arc
// takes ownership of the point pointers.
func NewCircularArc(center, start, end *Point, clockwise bool) (*CircularArc, error) {
	if center == nil || start == nil || end == nil {
		return nil, fmt.Errorf("circular arc: nil point")
	}
	if center.Dim() != start.Dim() || center.Dim() != end.Dim() {
		return nil, &DimensionError{Op: "circular arc", Want: center.Dim(), Got: start.Dim()}
	}
	if start.Equals(end) {
		return nil, fmt.Errorf("a circular arc cannot start and end at the"+
			" same location: %s", start)
	}
	rs := distanceBetween(center, start)
	re := distanceBetween(center, end)
	if !numeric.IsClose(rs, re) {
		return nil, fmt.Errorf("circular arc endpoints must be equidistant"+
			" from the center: %g vs %g", rs, re)
	}
	return &CircularArc{center: center, start: start, end: end, clockwise: clockwise}, nil
}

func distanceBetween(a, b *Point) float64 {
	d := make([]float64, a.Dim())
	for i := range d {
		d[i] = b.At(i) - a.At(i)
	}
	return vecLength(d)
}

func (a *CircularArc) UID() string {
	if a.uid == "" {
		a.SetUID(newUID())
	}
	return a.uid
}

// SetUID assigns the arc's uid and renames the center point to match.
func (a *CircularArc) SetUID(uid string) {
	a.uid = uid
	a.center.SetUID(fmt.Sprintf(CenterUIDFormat, uid))
}

func (a *CircularArc) Kind() Kind { return KindCircularArc }

func (a *CircularArc) Dim() int { return a.center.Dim() }

// Center returns the center point. The pointer is shared with the arc.
func (a *CircularArc) Center() *Point { return a.center }

// Start returns the start point. The pointer is shared with the arc.
func (a *CircularArc) Start() *Point { return a.start }

// End returns the end point. The pointer is shared with the arc.
func (a *CircularArc) End() *Point { return a.end }

func (a *CircularArc) Radius() float64 { return distanceBetween(a.center, a.start) }

func (a *CircularArc) Clockwise() bool { return a.clockwise }

// Angles returns the start and end azimuth angles of a 2D arc around its
// center, in radians.
func (a *CircularArc) Angles() (start, end float64, err error) {
	if a.Dim() != 2 {
		return 0, 0, &DimensionError{Op: "arc angles", Want: 2, Got: a.Dim()}
	}
	start = math.Atan2(a.start.Y()-a.center.Y(), a.start.X()-a.center.X())
	end = math.Atan2(a.end.Y()-a.center.Y(), a.end.X()-a.center.X())
	return start, end, nil
}

// Equals reports whether the arcs have the same center, endpoints and sweep
// direction within tolerance.
func (a *CircularArc) Equals(other *CircularArc, opts ...numeric.Option) bool {
	if other == nil {
		return false
	}
	return a.clockwise == other.clockwise &&
		a.center.Equals(other.center, opts...) &&
		a.start.Equals(other.start, opts...) &&
		a.end.Equals(other.end, opts...)
}

func (a *CircularArc) References() []ConstraintReference {
	return []ConstraintReference{RefCore, RefCenter, RefStart, RefEnd}
}

func (a *CircularArc) GetReference(ref ConstraintReference) (Geometry, error) {
	switch ref {
	case RefCore:
		return a, nil
	case RefCenter:
		return a.center, nil
	case RefStart:
		return a.start, nil
	case RefEnd:
		return a.end, nil
	default:
		return nil, &ReferenceError{Kind: KindCircularArc, Ref: ref}
	}
}

func (a *CircularArc) Update(other Geometry) error {
	if err := checkSameShape(a, other); err != nil {
		return err
	}
	o := other.(*CircularArc)
	if err := a.center.setCoords(o.center.coords); err != nil {
		return err
	}
	if err := a.start.setCoords(o.start.coords); err != nil {
		return err
	}
	if err := a.end.setCoords(o.end.coords); err != nil {
		return err
	}
	a.clockwise = o.clockwise
	return nil
}

func (a *CircularArc) String() string {
	return fmt.Sprintf("circular arc at %s from %s to %s", a.center, a.start, a.end)
}
