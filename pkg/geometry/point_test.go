package geometry

import (
	"math"
	"testing"

	"github.com/pancad/pancad/pkg/numeric"
)

func TestNewPointDimensions(t *testing.T) {
	if _, err := NewPoint(1, 2); err != nil {
		t.Fatalf("2D point: %v", err)
	}
	if _, err := NewPoint(1, 2, 3); err != nil {
		t.Fatalf("3D point: %v", err)
	}
	if _, err := NewPoint(1); err == nil {
		t.Error("expected error for 1D point")
	}
	if _, err := NewPoint(1, 2, 3, 4); err == nil {
		t.Error("expected error for 4D point")
	}
}

func TestPointUIDGenerated(t *testing.T) {
	p := MustPoint(0, 0)
	uid := p.UID()
	if uid == "" {
		t.Fatal("expected generated uid")
	}
	if p.UID() != uid {
		t.Error("uid changed between calls")
	}
}

func TestPointPolarRoundTrip(t *testing.T) {
	p := PointFromPolar(2, math.Pi/3)
	r, phi, err := p.Polar()
	if err != nil {
		t.Fatalf("polar: %v", err)
	}
	if !numeric.IsClose(r, 2) || !numeric.IsClose(phi, math.Pi/3) {
		t.Errorf("got r=%g phi=%g", r, phi)
	}
	if _, _, err := MustPoint(1, 2, 3).Polar(); err == nil {
		t.Error("expected error for polar of 3D point")
	}
}

func TestPointSphericalRoundTrip(t *testing.T) {
	p := PointFromSpherical(1, math.Pi/4, math.Pi/2)
	r, phi, theta, err := p.Spherical()
	if err != nil {
		t.Fatalf("spherical: %v", err)
	}
	if !numeric.IsClose(r, 1) || !numeric.IsClose(phi, math.Pi/4) ||
		!numeric.IsClose(theta, math.Pi/2) {
		t.Errorf("got r=%g phi=%g theta=%g", r, phi, theta)
	}
}

func TestPointUpdatePreservesUID(t *testing.T) {
	p := MustPoint(1, 1)
	p.SetUID("anchor")
	if err := p.Update(MustPoint(5, 6)); err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.UID() != "anchor" {
		t.Errorf("uid changed to %q", p.UID())
	}
	if p.X() != 5 || p.Y() != 6 {
		t.Errorf("coordinates not updated: %s", p)
	}
}

func TestPointUpdateDimensionMismatch(t *testing.T) {
	p := MustPoint(1, 1)
	err := p.Update(MustPoint(1, 1, 1))
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
	if _, ok := err.(*DimensionError); !ok {
		t.Errorf("expected *DimensionError, got %T", err)
	}
}

func TestPointGetReference(t *testing.T) {
	p := MustPoint(1, 2)
	g, err := p.GetReference(RefCore)
	if err != nil {
		t.Fatalf("core: %v", err)
	}
	if g != Geometry(p) {
		t.Error("core should resolve to the point itself")
	}
	if _, err := p.GetReference(RefStart); err == nil {
		t.Error("expected reference error for start")
	}
}
