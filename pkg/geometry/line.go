package geometry

import (
	"fmt"
	"math"

	"github.com/pancad/pancad/pkg/numeric"
)

// Line is an infinite line in 2D or 3D space. A line is uniquely identified
// by its canonical direction and the point on it closest to the origin, so
// two lines constructed from different points compare equal when they are
// geometrically the same line.
type Line struct {
	uid       string
	direction []float64
	refPoint  *Point
}

var _ Geometry = (*Line)(nil)

// NewLine creates a line through point with the given direction. The
// direction is normalized to its canonical form.
func NewLine(point *Point, direction []float64) (*Line, error) {
	if point == nil {
		return nil, fmt.Errorf("line: nil point")
	}
	if point.Dim() != len(direction) {
		return nil, &DimensionError{Op: "line", Want: point.Dim(), Got: len(direction)}
	}
	dir, err := uniqueDirection(direction)
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	return &Line{
		direction: dir,
		refPoint:  closestToOrigin(point, dir),
	}, nil
}

// LineFromTwoPoints creates the line through a and b. The points must be
// distinct and have the same dimension.
func LineFromTwoPoints(a, b *Point) (*Line, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("line: nil point")
	}
	if a.Dim() != b.Dim() {
		return nil, &DimensionError{Op: "line", Want: a.Dim(), Got: b.Dim()}
	}
	if a.Equals(b) {
		return nil, fmt.Errorf(
			"a line cannot be defined by 2 points at the same location: %s", a)
	}
	dir := make([]float64, a.Dim())
	for i := range dir {
		dir[i] = b.At(i) - a.At(i)
	}
	return NewLine(a, dir)
}

// LineFromSlopeIntercept creates the 2D line y = mx + b.
func LineFromSlopeIntercept(slope, intercept float64) (*Line, error) {
	a := MustPoint(0, intercept)
	b := MustPoint(1, slope+intercept)
	return LineFromTwoPoints(a, b)
}

// LineFromPointAndAngle creates a 2D line through point at azimuth phi
// radians.
func LineFromPointAndAngle(point *Point, phi float64) (*Line, error) {
	if point == nil {
		return nil, fmt.Errorf("line: nil point")
	}
	if point.Dim() != 2 {
		return nil, &DimensionError{Op: "line from angle", Want: 2, Got: point.Dim()}
	}
	x, y := polarToCartesian(1, phi)
	return NewLine(point, []float64{x, y})
}

// LineFromPointAndAngles creates a 3D line through point with azimuth phi
// and inclination theta, both in radians.
func LineFromPointAndAngles(point *Point, phi, theta float64) (*Line, error) {
	if point == nil {
		return nil, fmt.Errorf("line: nil point")
	}
	if point.Dim() != 3 {
		return nil, &DimensionError{Op: "line from angles", Want: 3, Got: point.Dim()}
	}
	x, y, z := sphericalToCartesian(1, phi, theta)
	return NewLine(point, []float64{x, y, z})
}

// LineFromXIntercept creates the 2D vertical line through (x, 0).
func LineFromXIntercept(x float64) *Line {
	l, _ := NewLine(MustPoint(x, 0), []float64{0, 1})
	return l
}

// LineFromYIntercept creates the 2D horizontal line through (0, y).
func LineFromYIntercept(y float64) *Line {
	l, _ := NewLine(MustPoint(0, y), []float64{1, 0})
	return l
}

// closestToOrigin projects the origin onto the line through p with unit
// direction d.
func closestToOrigin(p *Point, d []float64) *Point {
	t := dot(p.coords, d)
	c := make([]float64, len(d))
	for i := range c {
		c[i] = p.coords[i] - t*d[i]
	}
	pt, _ := NewPoint(c...)
	return pt
}

func (l *Line) UID() string {
	if l.uid == "" {
		l.uid = newUID()
	}
	return l.uid
}

func (l *Line) SetUID(uid string) { l.uid = uid }

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Dim() int { return len(l.direction) }

// Direction returns the canonical unit direction of the line.
func (l *Line) Direction() []float64 {
	d := make([]float64, len(l.direction))
	copy(d, l.direction)
	return d
}

// ReferencePoint returns a copy of the point on the line closest to the
// origin.
func (l *Line) ReferencePoint() *Point { return l.refPoint.Copy() }

// Phi returns the azimuth angle of the direction in radians.
func (l *Line) Phi() float64 {
	return math.Atan2(l.direction[1], l.direction[0])
}

// Slope returns m in y = mx + b for a 2D line. A vertical line has slope
// NaN; a 3D line is an error.
func (l *Line) Slope() (float64, error) {
	if len(l.direction) != 2 {
		return 0, &DimensionError{Op: "slope", Want: 2, Got: len(l.direction)}
	}
	if numeric.IsZero(l.direction[0]) {
		return math.NaN(), nil
	}
	return l.direction[1] / l.direction[0], nil
}

// Equals reports whether the lines have the same canonical direction and
// reference point within tolerance.
func (l *Line) Equals(other *Line, opts ...numeric.Option) bool {
	if other == nil {
		return false
	}
	return numeric.VecClose(l.direction, other.direction, opts...) &&
		l.refPoint.Equals(other.refPoint, opts...)
}

// IsParallelTo reports whether the canonical directions match.
func (l *Line) IsParallelTo(other *Line, opts ...numeric.Option) bool {
	return numeric.VecClose(l.direction, other.direction, opts...)
}

func (l *Line) References() []ConstraintReference {
	return []ConstraintReference{RefCore}
}

func (l *Line) GetReference(ref ConstraintReference) (Geometry, error) {
	if ref == RefCore {
		return l, nil
	}
	return nil, &ReferenceError{Kind: KindLine, Ref: ref}
}

func (l *Line) Update(other Geometry) error {
	if err := checkSameShape(l, other); err != nil {
		return err
	}
	o := other.(*Line)
	copy(l.direction, o.direction)
	return l.refPoint.setCoords(o.refPoint.coords)
}

// moveTo repositions the line through point keeping or replacing the
// direction. Used by owners that hold axis lines.
func (l *Line) moveTo(point *Point, direction []float64) error {
	if direction != nil {
		dir, err := uniqueDirection(direction)
		if err != nil {
			return err
		}
		copy(l.direction, dir)
	}
	return l.refPoint.setCoords(closestToOrigin(point, l.direction).coords)
}

func (l *Line) String() string {
	return fmt.Sprintf("line through %s with direction %v", l.refPoint, l.direction)
}
