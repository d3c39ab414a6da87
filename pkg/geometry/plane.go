package geometry

import (
	"fmt"

	"github.com/pancad/pancad/pkg/numeric"
)

// Plane is an infinite plane in 3D space, stored as a unit normal and the
// point on the plane closest to the origin.
type Plane struct {
	uid      string
	normal   []float64
	refPoint *Point
}

var _ Geometry = (*Plane)(nil)

// NewPlane creates the plane through point with the given normal vector.
// A 2D point is lifted to z = 0.
func NewPlane(point *Point, normal []float64) (*Plane, error) {
	if point == nil {
		return nil, fmt.Errorf("plane: nil point")
	}
	n, err := liftTo3D(normal)
	if err != nil {
		return nil, err
	}
	unit, err := unitVector(n)
	if err != nil {
		return nil, fmt.Errorf("plane: %w", err)
	}
	p := &Plane{normal: unit}
	p.refPoint = planeClosestToOrigin(point, unit)
	return p, nil
}

// PlaneFromPointAndAngles creates a plane through a 3D point whose normal
// has azimuth phi and inclination theta, in radians.
func PlaneFromPointAndAngles(point *Point, phi, theta float64) (*Plane, error) {
	if point == nil {
		return nil, fmt.Errorf("plane: nil point")
	}
	if point.Dim() != 3 {
		return nil, &DimensionError{Op: "plane from angles", Want: 3, Got: point.Dim()}
	}
	x, y, z := sphericalToCartesian(1, phi, theta)
	return NewPlane(point, []float64{x, y, z})
}

// liftTo3D pads a 2D vector with z = 0.
func liftTo3D(v []float64) ([]float64, error) {
	switch len(v) {
	case 2:
		return []float64{v[0], v[1], 0}, nil
	case 3:
		return append([]float64(nil), v...), nil
	default:
		return nil, &DimensionError{Op: "plane", Want: 3, Got: len(v)}
	}
}

// planeClosestToOrigin returns the point closest to the origin on the plane
// through p with unit normal n.
func planeClosestToOrigin(p *Point, n []float64) *Point {
	pv, _ := liftTo3D(p.coords)
	t := dot(pv, n)
	return MustPoint(n[0]*t, n[1]*t, n[2]*t)
}

func (p *Plane) UID() string {
	if p.uid == "" {
		p.uid = newUID()
	}
	return p.uid
}

func (p *Plane) SetUID(uid string) { p.uid = uid }

func (p *Plane) Kind() Kind { return KindPlane }

// Dim returns 3. Planes are always 3D objects.
func (p *Plane) Dim() int { return 3 }

// Normal returns the unit normal vector of the plane.
func (p *Plane) Normal() []float64 {
	return append([]float64(nil), p.normal...)
}

// ReferencePoint returns a copy of the point on the plane closest to the
// origin.
func (p *Plane) ReferencePoint() *Point { return p.refPoint.Copy() }

// D returns the constant d of the point-normal form ax + by + cz + d = 0.
func (p *Plane) D() float64 {
	return -dot(p.refPoint.coords, p.normal)
}

// MoveToPoint repositions the plane to pass through point, replacing the
// normal when one is given.
func (p *Plane) MoveToPoint(point *Point, normal []float64) error {
	if point == nil {
		return fmt.Errorf("plane: nil point")
	}
	if normal != nil {
		n, err := liftTo3D(normal)
		if err != nil {
			return err
		}
		unit, err := unitVector(n)
		if err != nil {
			return fmt.Errorf("plane: %w", err)
		}
		copy(p.normal, unit)
	}
	return p.refPoint.setCoords(planeClosestToOrigin(point, p.normal).coords)
}

// Equals reports whether the planes have the same normal and reference
// point within tolerance.
func (p *Plane) Equals(other *Plane, opts ...numeric.Option) bool {
	if other == nil {
		return false
	}
	return numeric.VecClose(p.normal, other.normal, opts...) &&
		p.refPoint.Equals(other.refPoint, opts...)
}

func (p *Plane) References() []ConstraintReference {
	return []ConstraintReference{RefCore}
}

func (p *Plane) GetReference(ref ConstraintReference) (Geometry, error) {
	if ref == RefCore {
		return p, nil
	}
	return nil, &ReferenceError{Kind: KindPlane, Ref: ref}
}

func (p *Plane) Update(other Geometry) error {
	if err := checkSameShape(p, other); err != nil {
		return err
	}
	o := other.(*Plane)
	copy(p.normal, o.normal)
	return p.refPoint.setCoords(o.refPoint.coords)
}

func (p *Plane) String() string {
	return fmt.Sprintf("plane through %s with normal %v", p.refPoint, p.normal)
}
