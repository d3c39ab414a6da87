package geometry

import (
	"math"
	"testing"

	"github.com/pancad/pancad/pkg/numeric"
)

func TestCoordinateSystem2DRotation(t *testing.T) {
	cs, err := NewCoordinateSystem2D(MustPoint(0, 0), math.Pi/2)
	if err != nil {
		t.Fatalf("cs: %v", err)
	}
	if !numeric.VecClose(cs.XVector(), []float64{0, 1}) {
		t.Errorf("x vector %v", cs.XVector())
	}
	if !numeric.VecClose(cs.YVector(), []float64{-1, 0}) {
		t.Errorf("y vector %v", cs.YVector())
	}
}

func TestCoordinateSystem3DIdentity(t *testing.T) {
	cs := DefaultCoordinateSystem()
	if !numeric.VecClose(cs.XVector(), []float64{1, 0, 0}) ||
		!numeric.VecClose(cs.YVector(), []float64{0, 1, 0}) ||
		!numeric.VecClose(cs.ZVector(), []float64{0, 0, 1}) {
		t.Errorf("axes %v", cs.AxisVectors())
	}
}

func TestCoordinateSystemTaitBryanOrder(t *testing.T) {
	// Rotation around z by 90 degrees maps x to y.
	cs, err := NewCoordinateSystem(MustPoint(0, 0, 0), math.Pi/2, 0, 0)
	if err != nil {
		t.Fatalf("cs: %v", err)
	}
	if !numeric.VecClose(cs.XVector(), []float64{0, 1, 0}) {
		t.Errorf("x vector %v", cs.XVector())
	}
}

func TestCoordinateSystemReferences(t *testing.T) {
	cs := DefaultCoordinateSystem()
	g, err := cs.GetReference(RefXY)
	if err != nil {
		t.Fatalf("xy plane: %v", err)
	}
	plane, ok := g.(*Plane)
	if !ok {
		t.Fatalf("expected *Plane, got %T", g)
	}
	if !numeric.VecClose(plane.Normal(), []float64{0, 0, 1}) {
		t.Errorf("xy normal %v", plane.Normal())
	}

	cs2, _ := NewCoordinateSystem2D(MustPoint(0, 0), 0)
	if _, err := cs2.GetReference(RefZ); err == nil {
		t.Error("expected reference error for z of a 2D system")
	}
}

func TestLeftHandedNotImplemented(t *testing.T) {
	_, err := NewLeftHandedCoordinateSystem(MustPoint(0, 0, 0), 0, 0, 0)
	if err == nil {
		t.Fatal("expected capability error")
	}
	if _, ok := err.(*CapabilityError); !ok {
		t.Errorf("expected *CapabilityError, got %T", err)
	}
}
