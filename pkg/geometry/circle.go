package geometry

import (
	"fmt"

	"github.com/pancad/pancad/pkg/numeric"
)

// CenterUIDFormat is the uid given to the center point of a circle, arc or
// ellipse, derived from the owner's uid.
const CenterUIDFormat = "%s_center"

// Circle is a circle in 2D space or on an oriented plane in 3D space. A 3D
// circle requires two unit orientation vectors spanning its plane; a 2D
// circle must not carry orientation vectors.
type Circle struct {
	uid    string
	center *Point
	radius float64
	// xAxis and yAxis span the circle plane for 3D circles. Both are nil
	// for 2D circles.
	xAxis []float64
	yAxis []float64
}

var _ Geometry = (*Circle)(nil)

// NewCircle creates a 2D circle with the given center and radius.
func NewCircle(center *Point, radius float64) (*Circle, error) {
	if center == nil {
		return nil, fmt.Errorf("circle: nil center")
	}
	if center.Dim() != 2 {
		return nil, &DimensionError{Op: "circle", Want: 2, Got: center.Dim()}
	}
	if radius < 0 {
		return nil, fmt.Errorf("circle radius cannot be negative, got %g", radius)
	}
	return &Circle{center: center, radius: radius}, nil
}

// NewCircle3D creates a circle on the 3D plane spanned by two unit
// orientation vectors at the center point.
func NewCircle3D(center *Point, radius float64, xAxis, yAxis []float64) (*Circle, error) {
	if center == nil {
		return nil, fmt.Errorf("circle: nil center")
	}
	if center.Dim() != 3 {
		return nil, &DimensionError{Op: "3D circle", Want: 3, Got: center.Dim()}
	}
	if radius < 0 {
		return nil, fmt.Errorf("circle radius cannot be negative, got %g", radius)
	}
	if len(xAxis) != 3 || len(yAxis) != 3 {
		return nil, fmt.Errorf("3D circles require two 3D orientation vectors")
	}
	for _, axis := range [][]float64{xAxis, yAxis} {
		if !numeric.IsClose(vecLength(axis), 1) {
			return nil, fmt.Errorf(
				"3D circle orientation vectors must be unit vectors, got %v", axis)
		}
	}
	c := &Circle{center: center, radius: radius}
	c.xAxis = append([]float64(nil), xAxis...)
	c.yAxis = append([]float64(nil), yAxis...)
	return c, nil
}

func (c *Circle) UID() string {
	if c.uid == "" {
		c.SetUID(newUID())
	}
	return c.uid
}

// SetUID assigns the circle's uid and renames the center point to match.
func (c *Circle) SetUID(uid string) {
	c.uid = uid
	c.center.SetUID(fmt.Sprintf(CenterUIDFormat, uid))
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Dim() int { return c.center.Dim() }

// Center returns the center point. The pointer is shared with the circle.
func (c *Circle) Center() *Point { return c.center }

func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) Diameter() float64 { return 2 * c.radius }

// SetRadius assigns the radius. Negative radii are an error.
func (c *Circle) SetRadius(r float64) error {
	if r < 0 {
		return fmt.Errorf("circle radius cannot be negative, got %g", r)
	}
	c.radius = r
	return nil
}

// Orientation returns the plane-spanning vectors of a 3D circle, or nil
// for a 2D circle.
func (c *Circle) Orientation() (xAxis, yAxis []float64) {
	if c.xAxis == nil {
		return nil, nil
	}
	return append([]float64(nil), c.xAxis...), append([]float64(nil), c.yAxis...)
}

// Equals reports whether the circles have the same center, radius and
// orientation within tolerance.
func (c *Circle) Equals(other *Circle, opts ...numeric.Option) bool {
	if other == nil {
		return false
	}
	if !c.center.Equals(other.center, opts...) ||
		!numeric.IsClose(c.radius, other.radius, opts...) {
		return false
	}
	if c.xAxis == nil {
		return other.xAxis == nil
	}
	return numeric.VecClose(c.xAxis, other.xAxis, opts...) &&
		numeric.VecClose(c.yAxis, other.yAxis, opts...)
}

func (c *Circle) References() []ConstraintReference {
	return []ConstraintReference{RefCore, RefCenter}
}

func (c *Circle) GetReference(ref ConstraintReference) (Geometry, error) {
	switch ref {
	case RefCore:
		return c, nil
	case RefCenter:
		return c.center, nil
	default:
		return nil, &ReferenceError{Kind: KindCircle, Ref: ref}
	}
}

func (c *Circle) Update(other Geometry) error {
	if err := checkSameShape(c, other); err != nil {
		return err
	}
	o := other.(*Circle)
	if err := c.center.setCoords(o.center.coords); err != nil {
		return err
	}
	c.radius = o.radius
	if c.xAxis != nil && o.xAxis != nil {
		copy(c.xAxis, o.xAxis)
		copy(c.yAxis, o.yAxis)
	}
	return nil
}

func (c *Circle) String() string {
	return fmt.Sprintf("circle at %s with radius %g", c.center, c.radius)
}
