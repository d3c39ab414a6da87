package constraint

import (
	"strings"
	"testing"

	"github.com/pancad/pancad/pkg/geometry"
)

func segment(t *testing.T, x1, y1, x2, y2 float64) *geometry.LineSegment {
	t.Helper()
	s, err := geometry.NewLineSegment(
		geometry.MustPoint(x1, y1), geometry.MustPoint(x2, y2))
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	return s
}

func circle(t *testing.T, x, y, r float64) *geometry.Circle {
	t.Helper()
	c, err := geometry.NewCircle(geometry.MustPoint(x, y), r)
	if err != nil {
		t.Fatalf("circle: %v", err)
	}
	return c
}

func TestCoincidentPointToPoint(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	b := segment(t, 1, 0, 1, 1)
	c, err := NewCoincident(a, geometry.RefEnd, b, geometry.RefStart)
	if err != nil {
		t.Fatalf("coincident: %v", err)
	}
	resolved := c.Resolved()
	if resolved[0] != geometry.Geometry(a.End()) {
		t.Error("first reference should resolve to a's end point")
	}
	if resolved[1] != geometry.Geometry(b.Start()) {
		t.Error("second reference should resolve to b's start point")
	}
}

func TestCoincidentSelfConstraint(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	_, err := NewCoincident(a, geometry.RefStart, a, geometry.RefStart)
	if err == nil {
		t.Fatal("expected self-constraint error")
	}
	if _, ok := err.(*SelfConstraintError); !ok {
		t.Errorf("expected *SelfConstraintError, got %T", err)
	}
}

func TestCoincidentEdgeToCircleForbidden(t *testing.T) {
	s := segment(t, 0, 0, 1, 0)
	c := circle(t, 0, 0, 1)
	// Both argument orders must fail.
	if _, err := NewCoincident(s, geometry.RefCore, c, geometry.RefCore); err == nil {
		t.Error("expected combination error for edge x circle")
	}
	if _, err := NewCoincident(c, geometry.RefCore, s, geometry.RefCore); err == nil {
		t.Error("expected combination error for circle x edge")
	}
}

func TestCoincidentDimensionMismatch(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	p3 := geometry.MustPoint(0, 0, 0)
	_, err := NewCoincident(a, geometry.RefStart, p3, geometry.RefCore)
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
	if _, ok := err.(*geometry.DimensionError); !ok {
		t.Errorf("expected *geometry.DimensionError, got %T", err)
	}
}

func TestEqualSegmentToCircleForbidden(t *testing.T) {
	s := segment(t, 0, 0, 1, 0)
	c := circle(t, 0, 0, 1)
	if _, err := NewEqual(s, geometry.RefCore, c, geometry.RefCore); err == nil {
		t.Fatal("expected combination error")
	}
	s2 := segment(t, 0, 1, 1, 1)
	if _, err := NewEqual(s, geometry.RefCore, s2, geometry.RefCore); err != nil {
		t.Errorf("segment to segment equal: %v", err)
	}
}

func TestParallelWithCoordinateSystemAxis(t *testing.T) {
	cs, err := geometry.NewCoordinateSystem2D(geometry.MustPoint(0, 0), 0)
	if err != nil {
		t.Fatalf("cs: %v", err)
	}
	s := segment(t, 0, 0, 1, 0)
	if _, err := NewParallel(cs, geometry.RefX, s, geometry.RefCore); err != nil {
		t.Fatalf("parallel to axis: %v", err)
	}
	// A point parent is not a legal parallel parent.
	if _, err := NewParallel(geometry.MustPoint(0, 0), geometry.RefCore,
		s, geometry.RefCore); err == nil {
		t.Error("expected kind error for point parent")
	}
}

func TestTangentEdgeToEdgeForbidden(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	b := segment(t, 0, 1, 1, 1)
	_, err := NewTangent(a, geometry.RefCore, b, geometry.RefCore)
	if err == nil {
		t.Fatal("expected combination error")
	}
	if !strings.Contains(err.Error(), "coincident") {
		t.Errorf("error should direct to coincident, got %q", err)
	}
	c := circle(t, 0, 1, 1)
	if _, err := NewTangent(a, geometry.RefCore, c, geometry.RefCore); err != nil {
		t.Errorf("edge to circle tangent: %v", err)
	}
}

func TestTangentPlaneToCurve(t *testing.T) {
	plane, err := geometry.NewPlane(geometry.MustPoint(0, 0, 0), []float64{0, 0, 1})
	if err != nil {
		t.Fatalf("plane: %v", err)
	}
	c, err := geometry.NewCircle3D(geometry.MustPoint(0, 0, 1), 1,
		[]float64{1, 0, 0}, []float64{0, 0, 1})
	if err != nil {
		t.Fatalf("circle: %v", err)
	}
	if _, err := NewTangent(plane, geometry.RefCore, c, geometry.RefCore); err != nil {
		t.Errorf("plane to circle tangent: %v", err)
	}

	// Plane against an edge-like partner is still rejected.
	plane2, err := geometry.NewPlane(geometry.MustPoint(0, 0, 5), []float64{0, 0, 1})
	if err != nil {
		t.Fatalf("plane: %v", err)
	}
	_, err = NewTangent(plane, geometry.RefCore, plane2, geometry.RefCore)
	if err == nil {
		t.Fatal("expected combination error for plane x plane")
	}
	if _, ok := err.(*CombinationError); !ok {
		t.Errorf("expected *CombinationError, got %T", err)
	}
}

func TestHorizontalForms(t *testing.T) {
	s := segment(t, 0, 0, 1, 1)
	if _, err := NewHorizontal(s, geometry.RefCore); err != nil {
		t.Fatalf("one-geometry form: %v", err)
	}
	// The one-geometry form rejects a point resolution.
	if _, err := NewHorizontal(s, geometry.RefStart); err == nil {
		t.Error("expected kind error for point in one-geometry form")
	}
	s2 := segment(t, 2, 2, 3, 3)
	if _, err := NewHorizontalPoints(s, geometry.RefStart, s2, geometry.RefEnd); err != nil {
		t.Fatalf("two-geometry form: %v", err)
	}
	// The two-geometry form rejects edges.
	if _, err := NewVerticalPoints(s, geometry.RefCore, s2, geometry.RefCore); err == nil {
		t.Error("expected kind error for edges in two-geometry form")
	}
}

func TestSnapToRejects3D(t *testing.T) {
	s, err := geometry.NewLineSegment(
		geometry.MustPoint(0, 0, 0), geometry.MustPoint(1, 0, 0))
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if _, err := NewHorizontal(s, geometry.RefCore); err == nil {
		t.Fatal("expected dimension error for 3D snap-to")
	}
}

func TestSnapToCheck(t *testing.T) {
	level := segment(t, 0, 0, 1, 0)
	h, err := NewHorizontal(level, geometry.RefCore)
	if err != nil {
		t.Fatalf("horizontal: %v", err)
	}
	if ok, err := h.Check(); err != nil || !ok {
		t.Errorf("level edge: ok=%t err=%v", ok, err)
	}
	tilted := segment(t, 0, 0, 1, 1)
	h, err = NewHorizontal(tilted, geometry.RefCore)
	if err != nil {
		t.Fatalf("horizontal: %v", err)
	}
	if ok, err := h.Check(); err != nil || ok {
		t.Errorf("tilted edge: ok=%t err=%v", ok, err)
	}
}

func TestRadiusValue(t *testing.T) {
	c := circle(t, 0, 0, 1)
	r, err := NewRadius(c, geometry.RefCore, 2.5, "mm")
	if err != nil {
		t.Fatalf("radius: %v", err)
	}
	if r.Value() != 2.5 || r.Unit() != "mm" {
		t.Errorf("got value %g unit %q", r.Value(), r.Unit())
	}
	if _, err := NewRadius(c, geometry.RefCore, -1, ""); err == nil {
		t.Error("expected value error for negative radius")
	}
	if err := r.SetValue(-2); err == nil {
		t.Error("expected value error for negative SetValue")
	}
}

func TestAngleQuadrantAndUnits(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	b := segment(t, 0, 0, 0, 1)
	c, err := NewAngle(a, geometry.RefCore, b, geometry.RefCore, 90, false, 1)
	if err != nil {
		t.Fatalf("angle: %v", err)
	}
	if c.Degrees() != 90 {
		t.Errorf("got %g degrees", c.Degrees())
	}
	if _, err := NewAngle(a, geometry.RefCore, b, geometry.RefCore, 90, false, 5); err == nil {
		t.Error("expected error for quadrant 5")
	}
}

func TestConstrainsSameTargetsIsIdentity(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	b := segment(t, 1, 0, 1, 1)
	// Same coordinates as a, but a distinct object.
	twin := segment(t, 0, 0, 1, 0)

	c1, _ := NewCoincident(a, geometry.RefEnd, b, geometry.RefStart)
	c2, _ := NewCoincident(a, geometry.RefEnd, b, geometry.RefStart)
	c3, _ := NewCoincident(twin, geometry.RefEnd, b, geometry.RefStart)

	if !ConstrainsSameTargets(c1, c2) {
		t.Error("constraints on the same pointers should match")
	}
	if ConstrainsSameTargets(c1, c3) {
		t.Error("value-equal geometry must not count as the same target")
	}
}

func TestMakeFactory(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	b := segment(t, 1, 0, 1, 1)
	c, err := Make(TypeCoincident, a, geometry.RefEnd, b, geometry.RefStart,
		Params{UID: "c1"})
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	if c.UID() != "c1" || c.Type() != TypeCoincident {
		t.Errorf("got uid %q type %s", c.UID(), c.Type())
	}
	if _, err := Make(TypeSymmetric, a, geometry.RefCore, b, geometry.RefCore,
		Params{}); err == nil {
		t.Error("expected capability error for symmetric")
	}
}
