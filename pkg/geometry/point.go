package geometry

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/pancad/pancad/pkg/numeric"
)

// Point is a location in 2D or 3D space.
type Point struct {
	uid    string
	coords []float64
}

var _ Geometry = (*Point)(nil)

// NewPoint creates a point from 2 or 3 cartesian coordinates.
func NewPoint(coords ...float64) (*Point, error) {
	if len(coords) != 2 && len(coords) != 3 {
		return nil, &DimensionError{Op: "point", Want: 3, Got: len(coords)}
	}
	c := make([]float64, len(coords))
	copy(c, coords)
	return &Point{coords: c}, nil
}

// MustPoint creates a point from 2 or 3 coordinates and panics on error.
// Intended for tests and literals with a known coordinate count.
func MustPoint(coords ...float64) *Point {
	p, err := NewPoint(coords...)
	if err != nil {
		panic(err)
	}
	return p
}

// PointFromPolar creates a 2D point from polar coordinates (r, phi), phi in
// radians.
func PointFromPolar(r, phi float64) *Point {
	x, y := polarToCartesian(r, phi)
	return &Point{coords: []float64{x, y}}
}

// PointFromSpherical creates a 3D point from spherical coordinates
// (r, phi, theta). Phi is the azimuth, theta the inclination, in radians.
func PointFromSpherical(r, phi, theta float64) *Point {
	x, y, z := sphericalToCartesian(r, phi, theta)
	return &Point{coords: []float64{x, y, z}}
}

func (p *Point) UID() string {
	if p.uid == "" {
		p.uid = newUID()
	}
	return p.uid
}

func (p *Point) SetUID(uid string) { p.uid = uid }

func (p *Point) Kind() Kind { return KindPoint }

func (p *Point) Dim() int { return len(p.coords) }

// Coords returns a copy of the cartesian coordinates.
func (p *Point) Coords() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)
	return c
}

// At returns the i-th cartesian coordinate.
func (p *Point) At(i int) float64 { return p.coords[i] }

func (p *Point) X() float64 { return p.coords[0] }

func (p *Point) Y() float64 { return p.coords[1] }

// Z returns the z coordinate. It is an error on a 2D point.
func (p *Point) Z() (float64, error) {
	if len(p.coords) != 3 {
		return 0, &DimensionError{Op: "point z", Want: 3, Got: len(p.coords)}
	}
	return p.coords[2], nil
}

// Polar returns the 2D point as (r, phi) with phi in radians.
func (p *Point) Polar() (r, phi float64, err error) {
	if len(p.coords) != 2 {
		return 0, 0, &DimensionError{Op: "polar", Want: 2, Got: len(p.coords)}
	}
	r, phi = cartesianToPolar(p.coords[0], p.coords[1])
	return r, phi, nil
}

// Spherical returns the 3D point as (r, phi, theta) in radians.
func (p *Point) Spherical() (r, phi, theta float64, err error) {
	if len(p.coords) != 3 {
		return 0, 0, 0, &DimensionError{Op: "spherical", Want: 3, Got: len(p.coords)}
	}
	r, phi, theta = cartesianToSpherical(p.coords[0], p.coords[1], p.coords[2])
	return r, phi, theta, nil
}

// V2 returns the point as an sdfx 2D vector.
func (p *Point) V2() v2.Vec { return v2.Vec{X: p.coords[0], Y: p.coords[1]} }

// V3 returns the point as an sdfx 3D vector. A 2D point gets z = 0.
func (p *Point) V3() v3.Vec {
	v := v3.Vec{X: p.coords[0], Y: p.coords[1]}
	if len(p.coords) == 3 {
		v.Z = p.coords[2]
	}
	return v
}

// Copy returns a point with the same coordinates and no uid.
func (p *Point) Copy() *Point {
	return &Point{coords: p.Coords()}
}

// Equals reports whether the points have the same dimension and coordinates
// within tolerance.
func (p *Point) Equals(other *Point, opts ...numeric.Option) bool {
	if other == nil {
		return false
	}
	return numeric.VecClose(p.coords, other.coords, opts...)
}

func (p *Point) References() []ConstraintReference {
	return []ConstraintReference{RefCore}
}

func (p *Point) GetReference(ref ConstraintReference) (Geometry, error) {
	if ref == RefCore {
		return p, nil
	}
	return nil, &ReferenceError{Kind: KindPoint, Ref: ref}
}

func (p *Point) Update(other Geometry) error {
	if err := checkSameShape(p, other); err != nil {
		return err
	}
	copy(p.coords, other.(*Point).coords)
	return nil
}

// setCoords overwrites the coordinates in place. Dimension must match.
func (p *Point) setCoords(coords []float64) error {
	if len(coords) != len(p.coords) {
		return &DimensionError{Op: "point", Want: len(p.coords), Got: len(coords)}
	}
	copy(p.coords, coords)
	return nil
}

func (p *Point) String() string {
	if len(p.coords) == 2 {
		return fmt.Sprintf("(%g, %g)", p.coords[0], p.coords[1])
	}
	return fmt.Sprintf("(%g, %g, %g)", p.coords[0], p.coords[1], p.coords[2])
}
