package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/pancad/pancad/pkg/numeric"
)

func mustLine(t *testing.T, p *Point, dir []float64) *Line {
	t.Helper()
	l, err := NewLine(p, dir)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	return l
}

func mustSegment(t *testing.T, a, b *Point) *LineSegment {
	t.Helper()
	s, err := NewLineSegment(a, b)
	if err != nil {
		t.Fatalf("NewLineSegment: %v", err)
	}
	return s
}

func mustPlane(t *testing.T, p *Point, normal []float64) *Plane {
	t.Helper()
	pl, err := NewPlane(p, normal)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	return pl
}

func TestCoincidentPointLine(t *testing.T) {
	l := mustLine(t, MustPoint(0, 1), []float64{1, 1})
	on, err := Coincident(MustPoint(2, 3), l)
	if err != nil {
		t.Fatalf("Coincident: %v", err)
	}
	if !on {
		t.Errorf("(2, 3) should lie on y = x + 1")
	}
	off, err := Coincident(MustPoint(2, 4), l)
	if err != nil {
		t.Fatalf("Coincident: %v", err)
	}
	if off {
		t.Errorf("(2, 4) should not lie on y = x + 1")
	}
}

func TestCoincidentSegmentLine(t *testing.T) {
	seg := mustSegment(t, MustPoint(1, 2), MustPoint(3, 4))
	l := mustLine(t, MustPoint(0, 1), []float64{1, 1})
	on, err := Coincident(seg, l)
	if err != nil {
		t.Fatalf("Coincident: %v", err)
	}
	if !on {
		t.Errorf("segment on y = x + 1 should coincide with the line")
	}
}

func TestCoincidentPointPlane(t *testing.T) {
	pl := mustPlane(t, MustPoint(0, 0, 2), []float64{0, 0, 1})
	on, err := Coincident(MustPoint(5, -3, 2), pl)
	if err != nil {
		t.Fatalf("Coincident: %v", err)
	}
	if !on {
		t.Errorf("point at z = 2 should lie on the z = 2 plane")
	}
	off, err := Coincident(MustPoint(0, 0, 0), pl)
	if err != nil {
		t.Fatalf("Coincident: %v", err)
	}
	if off {
		t.Errorf("origin should not lie on the z = 2 plane")
	}
}

func TestCoincidentDimensionMismatch(t *testing.T) {
	pl := mustPlane(t, MustPoint(0, 0, 0), []float64{0, 0, 1})
	var dimErr *DimensionError
	if _, err := Coincident(MustPoint(1, 1), pl); err == nil {
		t.Fatalf("expected an error for a 2D point against a plane")
	} else if !errors.As(err, &dimErr) {
		t.Errorf("error = %v, want a dimension error", err)
	}
}

func TestCoincidentUnsupportedKind(t *testing.T) {
	c, err := NewCircle(MustPoint(0, 0), 1)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	var relErr *RelationError
	if _, err := Coincident(c, MustPoint(0, 0)); err == nil {
		t.Fatalf("expected an error for a circle operand")
	} else if !errors.As(err, &relErr) {
		t.Errorf("error = %v, want a relation error", err)
	}
}

func TestParallelSegments(t *testing.T) {
	a := mustSegment(t, MustPoint(0, 0), MustPoint(1, 1))
	b := mustSegment(t, MustPoint(5, 0), MustPoint(4, -1))
	// Opposed directions still run parallel.
	par, err := Parallel(a, b)
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if !par {
		t.Errorf("opposed collinear directions should be parallel")
	}
	c := mustSegment(t, MustPoint(0, 0), MustPoint(1, 0))
	par, err = Parallel(a, c)
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if par {
		t.Errorf("45 degree and horizontal segments are not parallel")
	}
}

func TestParallelLinePlane(t *testing.T) {
	l := mustLine(t, MustPoint(0, 0, 5), []float64{1, 0, 0})
	pl := mustPlane(t, MustPoint(0, 0, 0), []float64{0, 0, 1})
	par, err := Parallel(l, pl)
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if !par {
		t.Errorf("a line in a z plane should be parallel to the xy plane")
	}
}

func TestPerpendicularSegments(t *testing.T) {
	a := mustSegment(t, MustPoint(0, 0), MustPoint(1, 0))
	b := mustSegment(t, MustPoint(0, 0), MustPoint(0, 1))
	perp, err := Perpendicular(a, b)
	if err != nil {
		t.Fatalf("Perpendicular: %v", err)
	}
	if !perp {
		t.Errorf("the axes should be perpendicular")
	}
}

func TestPerpendicularPlanes(t *testing.T) {
	a := mustPlane(t, MustPoint(0, 0, 0), []float64{0, 0, 1})
	b := mustPlane(t, MustPoint(0, 0, 0), []float64{1, 0, 0})
	perp, err := Perpendicular(a, b)
	if err != nil {
		t.Fatalf("Perpendicular: %v", err)
	}
	if !perp {
		t.Errorf("the xy and yz planes should be perpendicular")
	}
}

func TestSkewLines(t *testing.T) {
	a := mustLine(t, MustPoint(0, 0, 0), []float64{1, 0, 0})
	b := mustLine(t, MustPoint(0, 1, 1), []float64{0, 1, 0})
	skew, err := Skew(a, b)
	if err != nil {
		t.Fatalf("Skew: %v", err)
	}
	if !skew {
		t.Errorf("offset non-parallel 3D lines should be skew")
	}

	crossing := mustLine(t, MustPoint(0, 0, 0), []float64{0, 1, 0})
	skew, err = Skew(a, crossing)
	if err != nil {
		t.Fatalf("Skew: %v", err)
	}
	if skew {
		t.Errorf("intersecting lines are not skew")
	}
}

func TestSkew2DNever(t *testing.T) {
	a := mustLine(t, MustPoint(0, 0), []float64{1, 0})
	b := mustLine(t, MustPoint(0, 1), []float64{0, 1})
	skew, err := Skew(a, b)
	if err != nil {
		t.Fatalf("Skew: %v", err)
	}
	if skew {
		t.Errorf("2D lines can never be skew")
	}
}

func TestAngleBetweenSegments(t *testing.T) {
	x := mustSegment(t, MustPoint(0, 0), MustPoint(1, 0))
	diag := mustSegment(t, MustPoint(0, 0), MustPoint(1, 1))
	angle, ok, err := AngleBetween(x, diag)
	if err != nil || !ok {
		t.Fatalf("AngleBetween: ok=%t err=%v", ok, err)
	}
	if !numeric.IsClose(angle, math.Pi/4) {
		t.Errorf("angle = %g, want pi/4", angle)
	}

	angle, ok, err = AngleBetween(x, diag, Supplement())
	if err != nil || !ok {
		t.Fatalf("AngleBetween: ok=%t err=%v", ok, err)
	}
	if !numeric.IsClose(angle, 3*math.Pi/4) {
		t.Errorf("supplement = %g, want 3pi/4", angle)
	}
}

func TestAngleBetweenSigned(t *testing.T) {
	x := mustSegment(t, MustPoint(0, 0), MustPoint(1, 0))
	down := mustSegment(t, MustPoint(0, 0), MustPoint(1, -1))
	angle, ok, err := AngleBetween(x, down, Signed())
	if err != nil || !ok {
		t.Fatalf("AngleBetween: ok=%t err=%v", ok, err)
	}
	if !numeric.IsClose(angle, -math.Pi/4) {
		t.Errorf("clockwise angle = %g, want -pi/4", angle)
	}
}

func TestAngleBetweenSignedRejects3D(t *testing.T) {
	a := mustLine(t, MustPoint(0, 0, 0), []float64{1, 0, 0})
	b := mustLine(t, MustPoint(0, 0, 0), []float64{0, 1, 0})
	var dimErr *DimensionError
	if _, _, err := AngleBetween(a, b, Signed()); err == nil {
		t.Fatalf("expected an error for a signed 3D angle")
	} else if !errors.As(err, &dimErr) {
		t.Errorf("error = %v, want a dimension error", err)
	}
}

func TestAngleBetweenSkewHasNoAngle(t *testing.T) {
	a := mustLine(t, MustPoint(0, 0, 0), []float64{1, 0, 0})
	b := mustLine(t, MustPoint(0, 1, 1), []float64{0, 1, 0})
	_, ok, err := AngleBetween(a, b)
	if err != nil {
		t.Fatalf("AngleBetween: %v", err)
	}
	if ok {
		t.Errorf("skew lines should report no angle")
	}
}

func TestAngleBetweenPlanes(t *testing.T) {
	a := mustPlane(t, MustPoint(0, 0, 0), []float64{0, 0, 1})
	b := mustPlane(t, MustPoint(0, 0, 0), []float64{0, 1, 1})
	angle, ok, err := AngleBetween(a, b)
	if err != nil || !ok {
		t.Fatalf("AngleBetween: ok=%t err=%v", ok, err)
	}
	if !numeric.IsClose(angle, math.Pi/4) {
		t.Errorf("dihedral angle = %g, want pi/4", angle)
	}
}

func TestCoincidentNaNControl(t *testing.T) {
	nan := math.NaN()
	a := MustPoint(nan, 1)
	b := MustPoint(nan, 1)
	same, err := Coincident(a, b, numeric.WithNaNEqual(true))
	if err != nil {
		t.Fatalf("Coincident: %v", err)
	}
	if !same {
		t.Errorf("NaN coordinates should match under WithNaNEqual")
	}
	same, err = Coincident(a, b)
	if err != nil {
		t.Fatalf("Coincident: %v", err)
	}
	if same {
		t.Errorf("NaN coordinates should differ by default")
	}
}
