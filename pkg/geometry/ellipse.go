package geometry

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/pancad/pancad/pkg/numeric"
)

// UID formats for the sub-elements of an ellipse.
const (
	MajorAxisUIDFormat  = "%s_major_axis"
	MinorAxisUIDFormat  = "%s_minor_axis"
	FocalPlusUIDFormat  = "%s_focal_plus"
	FocalMinusUIDFormat = "%s_focal_minus"
)

// Ellipse is an ellipse in 2D or 3D space. The semi-major axis is the
// initial longest semidiameter; it keeps naming the same axis even if later
// updates make it the shorter one. Axis lines, vertices and focal points
// are held by pointer and stay valid across updates.
type Ellipse struct {
	uid       string
	center    *Point
	semiMajor float64
	semiMinor float64
	// majorDir and minorDir are signed unit vectors, unlike the canonical
	// directions of the axis lines.
	majorDir []float64
	minorDir []float64

	majorLine  *Line
	minorLine  *Line
	focalPlus  *Point
	focalMinus *Point
	xMin, xMax *Point
	yMin, yMax *Point
}

var _ Geometry = (*Ellipse)(nil)

// NewEllipse creates a 2D ellipse. The minor direction is the major
// direction rotated a quarter turn counterclockwise.
func NewEllipse(center *Point, semiMajor, semiMinor float64, majorDirection []float64) (*Ellipse, error) {
	if center == nil {
		return nil, fmt.Errorf("ellipse: nil center")
	}
	if center.Dim() != 2 {
		return nil, &DimensionError{Op: "2D ellipse", Want: 2, Got: center.Dim()}
	}
	if len(majorDirection) != 2 {
		return nil, fmt.Errorf("2D ellipses take a 2D major direction, got %v",
			majorDirection)
	}
	major, err := unitVector(majorDirection)
	if err != nil {
		return nil, fmt.Errorf("ellipse: %w", err)
	}
	mv := rotate2(v2.Vec{X: major[0], Y: major[1]}, math.Pi/2)
	return newEllipse(center, semiMajor, semiMinor, major, []float64{mv.X, mv.Y})
}

// NewEllipse3D creates a 3D ellipse from explicit major and minor axis
// directions.
func NewEllipse3D(center *Point, semiMajor, semiMinor float64, majorDirection, minorDirection []float64) (*Ellipse, error) {
	if center == nil {
		return nil, fmt.Errorf("ellipse: nil center")
	}
	if center.Dim() != 3 {
		return nil, &DimensionError{Op: "3D ellipse", Want: 3, Got: center.Dim()}
	}
	if len(majorDirection) != 3 || len(minorDirection) != 3 {
		return nil, fmt.Errorf("3D ellipses require 3D major and minor directions")
	}
	major, err := unitVector(majorDirection)
	if err != nil {
		return nil, fmt.Errorf("ellipse: %w", err)
	}
	minor, err := unitVector(minorDirection)
	if err != nil {
		return nil, fmt.Errorf("ellipse: %w", err)
	}
	return newEllipse(center, semiMajor, semiMinor, major, minor)
}

// EllipseFromAngle creates a 2D ellipse with its major axis rotated from
// the positive horizontal axis by angle radians.
func EllipseFromAngle(center *Point, semiMajor, semiMinor, angle float64) (*Ellipse, error) {
	x, y := polarToCartesian(1, angle)
	return NewEllipse(center, semiMajor, semiMinor, []float64{x, y})
}

func newEllipse(center *Point, semiMajor, semiMinor float64, major, minor []float64) (*Ellipse, error) {
	if semiMajor <= 0 || semiMinor <= 0 {
		return nil, fmt.Errorf("ellipse semidiameters must be positive, got %g and %g",
			semiMajor, semiMinor)
	}
	e := &Ellipse{
		center:     center,
		semiMajor:  semiMajor,
		semiMinor:  semiMinor,
		majorDir:   major,
		minorDir:   minor,
		focalPlus:  center.Copy(),
		focalMinus: center.Copy(),
		xMin:       center.Copy(),
		xMax:       center.Copy(),
		yMin:       center.Copy(),
		yMax:       center.Copy(),
	}
	e.majorLine, _ = NewLine(center.Copy(), major)
	e.minorLine, _ = NewLine(center.Copy(), minor)
	e.recompute()
	return e, nil
}

// recompute repositions the derived sub-elements from the center, axis
// lengths and directions. Sub-element pointers are preserved.
func (e *Ellipse) recompute() {
	offset := func(dst *Point, dir []float64, dist float64) {
		c := make([]float64, e.center.Dim())
		for i := range c {
			c[i] = e.center.At(i) + dist*dir[i]
		}
		dst.setCoords(c)
	}
	a, b := e.semiMajor, e.semiMinor
	focal := math.Sqrt(math.Abs(a*a - b*b))
	offset(e.focalPlus, e.majorDir, focal)
	offset(e.focalMinus, e.majorDir, -focal)
	offset(e.xMax, e.majorDir, a)
	offset(e.xMin, e.majorDir, -a)
	offset(e.yMax, e.minorDir, b)
	offset(e.yMin, e.minorDir, -b)
	e.majorLine.moveTo(e.center, e.majorDir)
	e.minorLine.moveTo(e.center, e.minorDir)
}

func (e *Ellipse) UID() string {
	if e.uid == "" {
		e.SetUID(newUID())
	}
	return e.uid
}

// SetUID assigns the ellipse's uid and renames its sub-elements to match.
func (e *Ellipse) SetUID(uid string) {
	e.uid = uid
	e.center.SetUID(fmt.Sprintf(CenterUIDFormat, uid))
	e.majorLine.SetUID(fmt.Sprintf(MajorAxisUIDFormat, uid))
	e.minorLine.SetUID(fmt.Sprintf(MinorAxisUIDFormat, uid))
	e.focalPlus.SetUID(fmt.Sprintf(FocalPlusUIDFormat, uid))
	e.focalMinus.SetUID(fmt.Sprintf(FocalMinusUIDFormat, uid))
}

func (e *Ellipse) Kind() Kind { return KindEllipse }

func (e *Ellipse) Dim() int { return e.center.Dim() }

// Center returns the center point. The pointer is shared with the ellipse.
func (e *Ellipse) Center() *Point { return e.center }

func (e *Ellipse) SemiMajor() float64 { return e.semiMajor }

func (e *Ellipse) SemiMinor() float64 { return e.semiMinor }

// SetSemiAxes assigns both semidiameters and repositions the derived
// sub-elements.
func (e *Ellipse) SetSemiAxes(semiMajor, semiMinor float64) error {
	if semiMajor <= 0 || semiMinor <= 0 {
		return fmt.Errorf("ellipse semidiameters must be positive, got %g and %g",
			semiMajor, semiMinor)
	}
	e.semiMajor, e.semiMinor = semiMajor, semiMinor
	e.recompute()
	return nil
}

// MajorDirection returns the signed unit direction of the major axis.
func (e *Ellipse) MajorDirection() []float64 {
	return append([]float64(nil), e.majorDir...)
}

// MinorDirection returns the signed unit direction of the minor axis.
func (e *Ellipse) MinorDirection() []float64 {
	return append([]float64(nil), e.minorDir...)
}

// MajorAxisAngle returns the angle of a 2D ellipse's major axis from the
// positive horizontal axis in radians.
func (e *Ellipse) MajorAxisAngle() (float64, error) {
	if e.Dim() != 2 {
		return 0, &DimensionError{Op: "major axis angle", Want: 2, Got: e.Dim()}
	}
	return math.Atan2(e.majorDir[1], e.majorDir[0]), nil
}

// FocalPlus returns the focal point on the positive major axis. The
// pointer is shared with the ellipse.
func (e *Ellipse) FocalPlus() *Point { return e.focalPlus }

// FocalMinus returns the focal point on the negative major axis. The
// pointer is shared with the ellipse.
func (e *Ellipse) FocalMinus() *Point { return e.focalMinus }

// MajorAxisLine returns the line through the major axis. The pointer is
// shared with the ellipse.
func (e *Ellipse) MajorAxisLine() *Line { return e.majorLine }

// MinorAxisLine returns the line through the minor axis. The pointer is
// shared with the ellipse.
func (e *Ellipse) MinorAxisLine() *Line { return e.minorLine }

// Equals reports whether the ellipses have the same center, semidiameters
// and axis directions within tolerance.
func (e *Ellipse) Equals(other *Ellipse, opts ...numeric.Option) bool {
	if other == nil {
		return false
	}
	return e.center.Equals(other.center, opts...) &&
		numeric.IsClose(e.semiMajor, other.semiMajor, opts...) &&
		numeric.IsClose(e.semiMinor, other.semiMinor, opts...) &&
		numeric.VecClose(e.majorDir, other.majorDir, opts...) &&
		numeric.VecClose(e.minorDir, other.minorDir, opts...)
}

func (e *Ellipse) References() []ConstraintReference {
	return []ConstraintReference{
		RefCore, RefCenter, RefX, RefY,
		RefXMin, RefXMax, RefYMin, RefYMax,
		RefFocalPlus, RefFocalMinus,
	}
}

func (e *Ellipse) GetReference(ref ConstraintReference) (Geometry, error) {
	switch ref {
	case RefCore:
		return e, nil
	case RefCenter:
		return e.center, nil
	case RefX:
		return e.majorLine, nil
	case RefY:
		return e.minorLine, nil
	case RefXMin:
		return e.xMin, nil
	case RefXMax:
		return e.xMax, nil
	case RefYMin:
		return e.yMin, nil
	case RefYMax:
		return e.yMax, nil
	case RefFocalPlus:
		return e.focalPlus, nil
	case RefFocalMinus:
		return e.focalMinus, nil
	default:
		return nil, &ReferenceError{Kind: KindEllipse, Ref: ref}
	}
}

func (e *Ellipse) Update(other Geometry) error {
	if err := checkSameShape(e, other); err != nil {
		return err
	}
	o := other.(*Ellipse)
	if err := e.center.setCoords(o.center.coords); err != nil {
		return err
	}
	e.semiMajor, e.semiMinor = o.semiMajor, o.semiMinor
	copy(e.majorDir, o.majorDir)
	copy(e.minorDir, o.minorDir)
	e.recompute()
	return nil
}

func (e *Ellipse) String() string {
	return fmt.Sprintf("ellipse at %s with semidiameters %g and %g",
		e.center, e.semiMajor, e.semiMinor)
}
