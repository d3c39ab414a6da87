package geometry

import (
	"fmt"

	"github.com/pancad/pancad/pkg/numeric"
)

// LineSegment is the finite portion of a line between two distinct points.
// The endpoints are held by pointer and answer the start and end
// references, so constraints on an endpoint survive updates to the segment.
type LineSegment struct {
	uid   string
	start *Point
	end   *Point
}

var _ Geometry = (*LineSegment)(nil)

// NewLineSegment creates a segment between two distinct points of the same
// dimension. The segment takes ownership of the point pointers.
func NewLineSegment(start, end *Point) (*LineSegment, error) {
	if start == nil || end == nil {
		return nil, fmt.Errorf("line segment: nil endpoint")
	}
	if start.Dim() != end.Dim() {
		return nil, &DimensionError{Op: "line segment", Want: start.Dim(), Got: end.Dim()}
	}
	if start.Equals(end) {
		return nil, fmt.Errorf(
			"a line segment cannot be defined by 2 points at the same location: %s",
			start)
	}
	return &LineSegment{start: start, end: end}, nil
}

// SegmentFromPointLengthAngle creates a 2D segment from a start point, a
// length and an azimuth angle in radians.
func SegmentFromPointLengthAngle(start *Point, length, phi float64) (*LineSegment, error) {
	if start == nil {
		return nil, fmt.Errorf("line segment: nil start")
	}
	if start.Dim() != 2 {
		return nil, &DimensionError{Op: "segment from angle", Want: 2, Got: start.Dim()}
	}
	dx, dy := polarToCartesian(length, phi)
	end := MustPoint(start.X()+dx, start.Y()+dy)
	return NewLineSegment(start, end)
}

func (s *LineSegment) UID() string {
	if s.uid == "" {
		s.uid = newUID()
	}
	return s.uid
}

func (s *LineSegment) SetUID(uid string) { s.uid = uid }

func (s *LineSegment) Kind() Kind { return KindLineSegment }

func (s *LineSegment) Dim() int { return s.start.Dim() }

// Start returns the start point. The pointer is shared with the segment.
func (s *LineSegment) Start() *Point { return s.start }

// End returns the end point. The pointer is shared with the segment.
func (s *LineSegment) End() *Point { return s.end }

// Length returns the distance between the endpoints.
func (s *LineSegment) Length() float64 {
	d := make([]float64, s.Dim())
	for i := range d {
		d[i] = s.end.At(i) - s.start.At(i)
	}
	return vecLength(d)
}

// Direction returns the unit vector from start to end.
func (s *LineSegment) Direction() []float64 {
	d := make([]float64, s.Dim())
	for i := range d {
		d[i] = s.end.At(i) - s.start.At(i)
	}
	u, _ := unitVector(d)
	return u
}

// Midpoint returns the point halfway between the endpoints.
func (s *LineSegment) Midpoint() *Point {
	c := make([]float64, s.Dim())
	for i := range c {
		c[i] = (s.start.At(i) + s.end.At(i)) / 2
	}
	p, _ := NewPoint(c...)
	return p
}

// AsLine returns the infinite line through the segment.
func (s *LineSegment) AsLine() *Line {
	l, _ := LineFromTwoPoints(s.start.Copy(), s.end.Copy())
	return l
}

// UpdatePoints moves both endpoints in place. The new locations must be
// distinct and match the segment's dimension.
func (s *LineSegment) UpdatePoints(start, end *Point) error {
	if start == nil || end == nil {
		return fmt.Errorf("line segment: nil endpoint")
	}
	if start.Equals(end) {
		return fmt.Errorf(
			"a line segment cannot be updated to 2 points at the same location: %s",
			start)
	}
	if err := s.start.setCoords(start.coords); err != nil {
		return err
	}
	return s.end.setCoords(end.coords)
}

// Equals reports whether the segments have the same endpoints within
// tolerance.
func (s *LineSegment) Equals(other *LineSegment, opts ...numeric.Option) bool {
	if other == nil {
		return false
	}
	return s.start.Equals(other.start, opts...) && s.end.Equals(other.end, opts...)
}

func (s *LineSegment) References() []ConstraintReference {
	return []ConstraintReference{RefCore, RefStart, RefEnd}
}

func (s *LineSegment) GetReference(ref ConstraintReference) (Geometry, error) {
	switch ref {
	case RefCore:
		return s, nil
	case RefStart:
		return s.start, nil
	case RefEnd:
		return s.end, nil
	default:
		return nil, &ReferenceError{Kind: KindLineSegment, Ref: ref}
	}
}

func (s *LineSegment) Update(other Geometry) error {
	if err := checkSameShape(s, other); err != nil {
		return err
	}
	o := other.(*LineSegment)
	return s.UpdatePoints(o.start, o.end)
}

func (s *LineSegment) String() string {
	return fmt.Sprintf("line segment %s to %s", s.start, s.end)
}
