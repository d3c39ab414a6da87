package geometry

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/pancad/pancad/pkg/numeric"
)

// CoordinateSystem is a right-handed cartesian coordinate system in 2D or
// 3D space, defined by an origin point and Tait-Bryan rotation angles
// applied in z, y, x order. Axis lines and axis planes are held by pointer
// and answer the axis and plane references.
type CoordinateSystem struct {
	uid    string
	origin *Point
	x      []float64
	y      []float64
	z      []float64 // nil for 2D

	axisX, axisY, axisZ     *Line
	planeXY, planeXZ, planeYZ *Plane
}

var _ Geometry = (*CoordinateSystem)(nil)

// NewCoordinateSystem2D creates a 2D coordinate system at origin with its
// axes rotated counterclockwise by alpha radians.
func NewCoordinateSystem2D(origin *Point, alpha float64) (*CoordinateSystem, error) {
	if origin == nil {
		return nil, fmt.Errorf("coordinate system: nil origin")
	}
	if origin.Dim() != 2 {
		return nil, &DimensionError{Op: "2D coordinate system", Want: 2, Got: origin.Dim()}
	}
	xv := rotate2(v2.Vec{X: 1}, alpha)
	yv := rotate2(v2.Vec{Y: 1}, alpha)
	cs := &CoordinateSystem{
		origin: origin,
		x:      []float64{xv.X, xv.Y},
		y:      []float64{yv.X, yv.Y},
	}
	cs.rebuild()
	return cs, nil
}

// NewCoordinateSystem creates a 3D coordinate system at origin rotated by
// the Tait-Bryan angles alpha (around z), beta (around y) and gamma
// (around x), applied in that order. Only right-handed systems are
// supported.
func NewCoordinateSystem(origin *Point, alpha, beta, gamma float64) (*CoordinateSystem, error) {
	if origin == nil {
		return nil, fmt.Errorf("coordinate system: nil origin")
	}
	if origin.Dim() != 3 {
		return nil, &DimensionError{Op: "3D coordinate system", Want: 3, Got: origin.Dim()}
	}
	rot := func(v v3.Vec) v3.Vec {
		return rotateZ(rotateY(rotateX(v, gamma), beta), alpha)
	}
	xv := rot(v3.Vec{X: 1})
	yv := rot(v3.Vec{Y: 1})
	zv := rot(v3.Vec{Z: 1})
	cs := &CoordinateSystem{
		origin: origin,
		x:      []float64{xv.X, xv.Y, xv.Z},
		y:      []float64{yv.X, yv.Y, yv.Z},
		z:      []float64{zv.X, zv.Y, zv.Z},
	}
	cs.rebuild()
	return cs, nil
}

// NewLeftHandedCoordinateSystem always fails; left-handed systems are not
// implemented.
func NewLeftHandedCoordinateSystem(origin *Point, alpha, beta, gamma float64) (*CoordinateSystem, error) {
	return nil, &CapabilityError{Capability: "left-handed coordinate systems"}
}

// DefaultCoordinateSystem returns the identity 3D coordinate system at the
// origin. Part files use it as their root feature.
func DefaultCoordinateSystem() *CoordinateSystem {
	cs, _ := NewCoordinateSystem(MustPoint(0, 0, 0), 0, 0, 0)
	return cs
}

// rebuild creates or repositions the axis lines and planes in place.
func (cs *CoordinateSystem) rebuild() {
	if cs.axisX == nil {
		cs.axisX, _ = NewLine(cs.origin.Copy(), cs.x)
		cs.axisY, _ = NewLine(cs.origin.Copy(), cs.y)
		if cs.z != nil {
			cs.axisZ, _ = NewLine(cs.origin.Copy(), cs.z)
			cs.planeXY, _ = NewPlane(cs.origin.Copy(), cs.z)
			cs.planeXZ, _ = NewPlane(cs.origin.Copy(), cs.y)
			cs.planeYZ, _ = NewPlane(cs.origin.Copy(), cs.x)
		}
		return
	}
	cs.axisX.moveTo(cs.origin, cs.x)
	cs.axisY.moveTo(cs.origin, cs.y)
	if cs.z != nil {
		cs.axisZ.moveTo(cs.origin, cs.z)
		cs.planeXY.MoveToPoint(cs.origin, cs.z)
		cs.planeXZ.MoveToPoint(cs.origin, cs.y)
		cs.planeYZ.MoveToPoint(cs.origin, cs.x)
	}
}

func (cs *CoordinateSystem) UID() string {
	if cs.uid == "" {
		cs.uid = newUID()
	}
	return cs.uid
}

func (cs *CoordinateSystem) SetUID(uid string) { cs.uid = uid }

func (cs *CoordinateSystem) Kind() Kind { return KindCoordinateSystem }

func (cs *CoordinateSystem) Dim() int { return cs.origin.Dim() }

// Origin returns the origin point. The pointer is shared with the
// coordinate system.
func (cs *CoordinateSystem) Origin() *Point { return cs.origin }

// XVector returns the unit x-axis direction.
func (cs *CoordinateSystem) XVector() []float64 { return append([]float64(nil), cs.x...) }

// YVector returns the unit y-axis direction.
func (cs *CoordinateSystem) YVector() []float64 { return append([]float64(nil), cs.y...) }

// ZVector returns the unit z-axis direction, or nil for a 2D system.
func (cs *CoordinateSystem) ZVector() []float64 {
	if cs.z == nil {
		return nil
	}
	return append([]float64(nil), cs.z...)
}

// AxisVectors returns the axis directions in x, y(, z) order.
func (cs *CoordinateSystem) AxisVectors() [][]float64 {
	if cs.z == nil {
		return [][]float64{cs.XVector(), cs.YVector()}
	}
	return [][]float64{cs.XVector(), cs.YVector(), cs.ZVector()}
}

// Equals reports whether the coordinate systems have the same origin and
// axis directions within tolerance.
func (cs *CoordinateSystem) Equals(other *CoordinateSystem, opts ...numeric.Option) bool {
	if other == nil {
		return false
	}
	if !cs.origin.Equals(other.origin, opts...) ||
		!numeric.VecClose(cs.x, other.x, opts...) ||
		!numeric.VecClose(cs.y, other.y, opts...) {
		return false
	}
	if cs.z == nil {
		return other.z == nil
	}
	return numeric.VecClose(cs.z, other.z, opts...)
}

func (cs *CoordinateSystem) References() []ConstraintReference {
	if cs.z == nil {
		return []ConstraintReference{RefCore, RefOrigin, RefX, RefY}
	}
	return []ConstraintReference{
		RefCore, RefOrigin, RefX, RefY, RefZ, RefXY, RefXZ, RefYZ,
	}
}

func (cs *CoordinateSystem) GetReference(ref ConstraintReference) (Geometry, error) {
	switch ref {
	case RefCore:
		return cs, nil
	case RefOrigin:
		return cs.origin, nil
	case RefX:
		return cs.axisX, nil
	case RefY:
		return cs.axisY, nil
	}
	if cs.z != nil {
		switch ref {
		case RefZ:
			return cs.axisZ, nil
		case RefXY:
			return cs.planeXY, nil
		case RefXZ:
			return cs.planeXZ, nil
		case RefYZ:
			return cs.planeYZ, nil
		}
	}
	return nil, &ReferenceError{Kind: KindCoordinateSystem, Ref: ref}
}

func (cs *CoordinateSystem) Update(other Geometry) error {
	if err := checkSameShape(cs, other); err != nil {
		return err
	}
	o := other.(*CoordinateSystem)
	if err := cs.origin.setCoords(o.origin.coords); err != nil {
		return err
	}
	copy(cs.x, o.x)
	copy(cs.y, o.y)
	if cs.z != nil && o.z != nil {
		copy(cs.z, o.z)
	}
	cs.rebuild()
	return nil
}

func (cs *CoordinateSystem) String() string {
	return fmt.Sprintf("coordinate system at %s", cs.origin)
}
