package geometry

import (
	"fmt"
	"testing"
)

func TestCircleRejectsNegativeRadius(t *testing.T) {
	if _, err := NewCircle(MustPoint(0, 0), -1); err == nil {
		t.Fatal("expected error for negative radius")
	}
	c, _ := NewCircle(MustPoint(0, 0), 1)
	if err := c.SetRadius(-0.5); err == nil {
		t.Error("expected error for negative radius on SetRadius")
	}
}

func TestCircleCenterUIDFollowsCircle(t *testing.T) {
	c, _ := NewCircle(MustPoint(0, 0), 1)
	c.SetUID("c1")
	want := fmt.Sprintf(CenterUIDFormat, "c1")
	if c.Center().UID() != want {
		t.Errorf("center uid %q, want %q", c.Center().UID(), want)
	}
}

func TestCircle3DOrientationRequired(t *testing.T) {
	center := MustPoint(0, 0, 0)
	if _, err := NewCircle3D(center, 1, nil, nil); err == nil {
		t.Fatal("expected error for missing orientation vectors")
	}
	x := []float64{1, 0, 0}
	y := []float64{0, 1, 0}
	if _, err := NewCircle3D(MustPoint(0, 0, 0), 1, x, y); err != nil {
		t.Fatalf("3D circle: %v", err)
	}
	if _, err := NewCircle3D(MustPoint(0, 0, 0), 1, []float64{2, 0, 0}, y); err == nil {
		t.Error("expected error for non-unit orientation vector")
	}
}

func TestCircleUpdate(t *testing.T) {
	c, _ := NewCircle(MustPoint(0, 0), 1)
	c.SetUID("c1")
	center := c.Center()
	other, _ := NewCircle(MustPoint(3, 4), 2)
	if err := c.Update(other); err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.UID() != "c1" {
		t.Errorf("uid changed to %q", c.UID())
	}
	if c.Center() != center {
		t.Error("center pointer replaced by update")
	}
	if c.Radius() != 2 || center.X() != 3 {
		t.Errorf("values not updated: %s", c)
	}
}

func TestCircularArcEndpointsEquidistant(t *testing.T) {
	center := MustPoint(0, 0)
	if _, err := NewCircularArc(center, MustPoint(1, 0), MustPoint(0, 2), false); err == nil {
		t.Fatal("expected error for unequal radii")
	}
	a, err := NewCircularArc(MustPoint(0, 0), MustPoint(1, 0), MustPoint(0, 1), false)
	if err != nil {
		t.Fatalf("arc: %v", err)
	}
	if a.Radius() != 1 {
		t.Errorf("got radius %g", a.Radius())
	}
}
