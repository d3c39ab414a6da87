package constraint

import (
	"testing"

	"github.com/pancad/pancad/pkg/geometry"
)

func TestCoincidentCheck(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	b := segment(t, 1, 0, 1, 1)
	c, err := NewCoincident(a, geometry.RefEnd, b, geometry.RefStart)
	if err != nil {
		t.Fatalf("coincident: %v", err)
	}
	if ok, err := c.Check(); err != nil || !ok {
		t.Errorf("touching corners: ok=%t err=%v", ok, err)
	}

	apart := segment(t, 5, 5, 6, 5)
	c, err = NewCoincident(a, geometry.RefEnd, apart, geometry.RefStart)
	if err != nil {
		t.Fatalf("coincident: %v", err)
	}
	if ok, err := c.Check(); err != nil || ok {
		t.Errorf("separated corners: ok=%t err=%v", ok, err)
	}
}

func TestParallelPerpendicularCheck(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	b := segment(t, 0, 1, 1, 1)
	par, err := NewParallel(a, geometry.RefCore, b, geometry.RefCore)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if ok, err := par.Check(); err != nil || !ok {
		t.Errorf("level edges: ok=%t err=%v", ok, err)
	}

	up := segment(t, 0, 0, 0, 1)
	perp, err := NewPerpendicular(a, geometry.RefCore, up, geometry.RefCore)
	if err != nil {
		t.Fatalf("perpendicular: %v", err)
	}
	if ok, err := perp.Check(); err != nil || !ok {
		t.Errorf("axes: ok=%t err=%v", ok, err)
	}
	perp, err = NewPerpendicular(a, geometry.RefCore, b, geometry.RefCore)
	if err != nil {
		t.Fatalf("perpendicular: %v", err)
	}
	if ok, err := perp.Check(); err != nil || ok {
		t.Errorf("parallel edges as perpendicular: ok=%t err=%v", ok, err)
	}
}

func TestEqualCheck(t *testing.T) {
	a := segment(t, 0, 0, 1, 0)
	b := segment(t, 5, 5, 5, 6)
	eq, err := NewEqual(a, geometry.RefCore, b, geometry.RefCore)
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if ok, err := eq.Check(); err != nil || !ok {
		t.Errorf("unit segments: ok=%t err=%v", ok, err)
	}

	long := segment(t, 0, 0, 3, 0)
	eq, err = NewEqual(a, geometry.RefCore, long, geometry.RefCore)
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if ok, err := eq.Check(); err != nil || ok {
		t.Errorf("unequal lengths: ok=%t err=%v", ok, err)
	}

	c1 := circle(t, 0, 0, 2)
	c2 := circle(t, 9, 9, 2)
	eq, err = NewEqual(c1, geometry.RefCore, c2, geometry.RefCore)
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if ok, err := eq.Check(); err != nil || !ok {
		t.Errorf("equal radii: ok=%t err=%v", ok, err)
	}
}

func TestTangentCheck(t *testing.T) {
	// The x-axis edge touches a unit circle centered one above it.
	edge := segment(t, -2, 0, 2, 0)
	c := circle(t, 0, 1, 1)
	tan, err := NewTangent(edge, geometry.RefCore, c, geometry.RefCore)
	if err != nil {
		t.Fatalf("tangent: %v", err)
	}
	if ok, err := tan.Check(); err != nil || !ok {
		t.Errorf("touching edge: ok=%t err=%v", ok, err)
	}

	far := circle(t, 0, 5, 1)
	tan, err = NewTangent(edge, geometry.RefCore, far, geometry.RefCore)
	if err != nil {
		t.Fatalf("tangent: %v", err)
	}
	if ok, err := tan.Check(); err != nil || ok {
		t.Errorf("distant circle: ok=%t err=%v", ok, err)
	}

	// Externally touching circles.
	left := circle(t, 0, 0, 1)
	right := circle(t, 3, 0, 2)
	tan, err = NewTangent(left, geometry.RefCore, right, geometry.RefCore)
	if err != nil {
		t.Fatalf("tangent: %v", err)
	}
	if ok, err := tan.Check(); err != nil || !ok {
		t.Errorf("touching circles: ok=%t err=%v", ok, err)
	}
}

func TestSnapToPointsCheck(t *testing.T) {
	a := segment(t, 0, 0, 1, 3)
	b := segment(t, 5, 3, 6, 7)
	// a's end and b's start share y = 3.
	h, err := NewHorizontalPoints(a, geometry.RefEnd, b, geometry.RefStart)
	if err != nil {
		t.Fatalf("horizontal points: %v", err)
	}
	if ok, err := h.Check(); err != nil || !ok {
		t.Errorf("aligned points: ok=%t err=%v", ok, err)
	}
	v, err := NewVerticalPoints(a, geometry.RefEnd, b, geometry.RefStart)
	if err != nil {
		t.Fatalf("vertical points: %v", err)
	}
	if ok, err := v.Check(); err != nil || ok {
		t.Errorf("x-misaligned points: ok=%t err=%v", ok, err)
	}
}

func TestAngleMeasuredPerQuadrant(t *testing.T) {
	axis := segment(t, 0, 0, 1, 0)
	// One segment per quadrant, each 45 degrees off an axis direction.
	arms := map[int]*geometry.LineSegment{
		1: segment(t, 0, 0, 1, 1),
		2: segment(t, 0, 0, -1, 1),
		3: segment(t, 0, 0, -1, -1),
		4: segment(t, 0, 0, 1, -1),
	}
	for q, arm := range arms {
		c, err := NewAngle(axis, geometry.RefCore, arm, geometry.RefCore, 45, false, q)
		if err != nil {
			t.Fatalf("quadrant %d: %v", q, err)
		}
		measured, err := c.Measured()
		if err != nil {
			t.Fatalf("quadrant %d measure: %v", q, err)
		}
		if measured < 44.999 || measured > 45.001 {
			t.Errorf("quadrant %d measured %g, want 45", q, measured)
		}
		if ok, err := c.Check(); err != nil || !ok {
			t.Errorf("quadrant %d check: ok=%t err=%v", q, ok, err)
		}
	}
}

func TestAngleCheckMismatch(t *testing.T) {
	axis := segment(t, 0, 0, 1, 0)
	diag := segment(t, 0, 0, 1, 1)
	c, err := NewAngle(axis, geometry.RefCore, diag, geometry.RefCore, 30, false, 1)
	if err != nil {
		t.Fatalf("angle: %v", err)
	}
	if ok, err := c.Check(); err != nil || ok {
		t.Errorf("45 degree pair against 30: ok=%t err=%v", ok, err)
	}
}
