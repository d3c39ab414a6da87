package feature

import (
	"testing"

	"github.com/pancad/pancad/pkg/constraint"
	"github.com/pancad/pancad/pkg/geometry"
)

func newSketchXY(t *testing.T) (*PartFile, *Sketch) {
	t.Helper()
	part := NewPartFile("test part")
	s, err := part.AddSketch(geometry.RefXY)
	if err != nil {
		t.Fatalf("add sketch: %v", err)
	}
	return part, s
}

func seg(t *testing.T, x1, y1, x2, y2 float64) *geometry.LineSegment {
	t.Helper()
	s, err := geometry.NewLineSegment(
		geometry.MustPoint(x1, y1), geometry.MustPoint(x2, y2))
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	return s
}

func TestPartFileHasOriginFeature(t *testing.T) {
	part := NewPartFile("p")
	if part.Len() != 1 {
		t.Fatalf("expected 1 feature, got %d", part.Len())
	}
	if part.At(0) != Feature(part.Origin()) {
		t.Error("feature zero should be the origin coordinate system")
	}
	if part.Origin().Context() == nil {
		t.Error("origin should have adopted the part as context")
	}
}

func TestAddFeatureRequiresDependencies(t *testing.T) {
	c := NewContainer()
	origin := NewCoordinateSystemFeature(geometry.DefaultCoordinateSystem())
	s, err := NewSketch(origin, geometry.RefXY)
	if err != nil {
		t.Fatalf("sketch: %v", err)
	}
	err = c.AddFeature(s)
	if err == nil {
		t.Fatal("expected missing dependency error")
	}
	if _, ok := err.(*MissingDependencyError); !ok {
		t.Errorf("expected *MissingDependencyError, got %T", err)
	}
	if err := c.AddFeature(origin); err != nil {
		t.Fatalf("add origin: %v", err)
	}
	if err := c.AddFeature(s); err != nil {
		t.Fatalf("add sketch after origin: %v", err)
	}
}

func TestAddFeatureKeepsExistingContext(t *testing.T) {
	c1 := NewContainer()
	c2 := NewContainer()
	origin := NewCoordinateSystemFeature(geometry.DefaultCoordinateSystem())
	if err := c1.AddFeature(origin); err != nil {
		t.Fatalf("add to c1: %v", err)
	}
	if err := c2.AddFeature(origin); err == nil {
		// Same uid in two containers is allowed; context must not move.
		if origin.Context() != c1 {
			t.Error("context should stay with the first container")
		}
	}
}

func TestSketchPlaneOptions(t *testing.T) {
	origin := NewCoordinateSystemFeature(geometry.DefaultCoordinateSystem())
	for _, ref := range PlaneOptions {
		if _, err := NewSketch(origin, ref); err != nil {
			t.Errorf("plane %s: %v", ref, err)
		}
	}
	if _, err := NewSketch(origin, geometry.RefZ); err == nil {
		t.Error("expected error for z-axis plane reference")
	}
}

func TestSketchRejects3DGeometry(t *testing.T) {
	_, s := newSketchXY(t)
	g, _ := geometry.NewLineSegment(
		geometry.MustPoint(0, 0, 0), geometry.MustPoint(1, 0, 0))
	if err := s.AddGeometry(g, false); err == nil {
		t.Fatal("expected dimension error")
	}
}

func TestSketchConstraintMembership(t *testing.T) {
	_, s := newSketchXY(t)
	a := seg(t, 0, 0, 1, 0)
	b := seg(t, 1, 0, 1, 1)
	outside := seg(t, 5, 5, 6, 6)
	if err := s.AddGeometry(a, false); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if err := s.AddGeometry(b, false); err != nil {
		t.Fatalf("add b: %v", err)
	}

	c, err := constraint.NewCoincident(a, geometry.RefEnd, b, geometry.RefStart)
	if err != nil {
		t.Fatalf("coincident: %v", err)
	}
	if err := s.AddConstraint(c); err != nil {
		t.Fatalf("add constraint: %v", err)
	}

	bad, err := constraint.NewCoincident(a, geometry.RefStart, outside, geometry.RefEnd)
	if err != nil {
		t.Fatalf("coincident: %v", err)
	}
	if err := s.AddConstraint(bad); err == nil {
		t.Error("expected membership error for outside geometry")
	}
}

func TestSketchSelfReference(t *testing.T) {
	_, s := newSketchXY(t)
	a := seg(t, 0, 0, 1, 0)
	if err := s.AddGeometry(a, false); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Distance from the sketch y-axis to a segment start point.
	c, err := constraint.NewHorizontalDistance(
		s, geometry.RefY, a, geometry.RefStart, 10, "mm")
	if err != nil {
		t.Fatalf("horizontal distance: %v", err)
	}
	if err := s.AddConstraint(c); err != nil {
		t.Fatalf("add constraint: %v", err)
	}
	i, err := s.IndexOf(s)
	if err != nil || i != -1 {
		t.Errorf("sketch self index = %d, %v", i, err)
	}
}

func TestSketchAddConstraintByIndex(t *testing.T) {
	_, s := newSketchXY(t)
	a := seg(t, 0, 0, 1, 0)
	b := seg(t, 1, 0, 1, 1)
	s.AddGeometry(a, false)
	s.AddGeometry(b, false)
	c, err := s.AddConstraintByIndex(constraint.TypeCoincident,
		0, geometry.RefEnd, 1, geometry.RefStart, constraint.Params{})
	if err != nil {
		t.Fatalf("by index: %v", err)
	}
	if len(s.Constraints()) != 1 || c.Type() != constraint.TypeCoincident {
		t.Error("constraint not recorded")
	}
	if _, err := s.AddConstraintByIndex(constraint.TypeCoincident,
		0, geometry.RefEnd, 7, geometry.RefStart, constraint.Params{}); err == nil {
		t.Error("expected error for out of range index")
	}
}

func TestSketchConstructionLists(t *testing.T) {
	_, s := newSketchXY(t)
	a := seg(t, 0, 0, 1, 0)
	guide := seg(t, 0, 0, 1, 1)
	s.AddGeometry(a, false)
	s.AddGeometry(guide, true)
	if n := len(s.ConstructionGeometry()); n != 1 {
		t.Errorf("construction count %d", n)
	}
	if n := len(s.NonConstructionGeometry()); n != 1 {
		t.Errorf("profile count %d", n)
	}
}

func TestExtrudeFromLengthTable(t *testing.T) {
	_, s := newSketchXY(t)
	cases := []struct {
		length, opposite   float64
		midplane, reversed bool
		want               LengthType
	}{
		{10, 0, true, false, Symmetric},
		{10, 0, false, false, Dimension},
		{10, 0, false, true, AntiDimension},
		{10, 5, false, false, TwoDimensions},
		{10, 5, false, true, AntiTwoDimensions},
	}
	for _, tc := range cases {
		e, err := ExtrudeFromLength(s, tc.length, tc.opposite, tc.midplane, tc.reversed)
		if err != nil {
			t.Fatalf("from length %+v: %v", tc, err)
		}
		if e.LengthType() != tc.want {
			t.Errorf("%+v: got %s, want %s", tc, e.LengthType(), tc.want)
		}
	}
}

func TestExtrudeRejectsBadLengths(t *testing.T) {
	_, s := newSketchXY(t)
	if _, err := NewExtrude(s, Dimension, 0, 0); err == nil {
		t.Error("expected error for zero length")
	}
	if _, err := NewExtrude(s, Dimension, 5, 3); err == nil {
		t.Error("expected error for opposite length on single-length type")
	}
	if _, err := ExtrudeFromLength(s, 5, 3, true, false); err == nil {
		t.Error("expected error for midplane with opposite length")
	}
	if _, err := ExtrudeUpToFeature(s, nil); err == nil {
		t.Error("expected capability error")
	}
}

func TestExtrudeDependencies(t *testing.T) {
	part, s := newSketchXY(t)
	e, err := NewExtrude(s, Dimension, 10, 0)
	if err != nil {
		t.Fatalf("extrude: %v", err)
	}
	deps := e.Dependencies()
	if len(deps) != 1 || deps[0] != Feature(s) {
		t.Errorf("deps %v", deps)
	}
	if err := part.AddFeature(e); err != nil {
		t.Fatalf("add extrude: %v", err)
	}
}

func TestFeatureByName(t *testing.T) {
	part, s := newSketchXY(t)
	s.SetName("base profile")

	found, err := part.FeatureByName("base profile")
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	if found != Feature(s) {
		t.Error("lookup should return the named sketch")
	}
	if found, err := part.FeatureByName("origin"); err != nil || found != Feature(part.Origin()) {
		t.Errorf("origin lookup: %v, %v", found, err)
	}

	_, err = part.FeatureByName("no such feature")
	if err == nil {
		t.Fatal("expected not found error")
	}
	nf, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nf.Name != "no such feature" {
		t.Errorf("error should carry the name, got %q", nf.Name)
	}
}

func TestFeatureByNameDescendsNestedContainers(t *testing.T) {
	outer := NewContainer()
	inner := NewContainer()
	inner.SetName("subassembly")
	deep := NewCoordinateSystemFeature(geometry.DefaultCoordinateSystem())
	deep.SetName("mount frame")
	if err := inner.AddFeature(deep); err != nil {
		t.Fatalf("add to inner: %v", err)
	}
	if err := outer.AddFeature(inner); err != nil {
		t.Fatalf("nest inner: %v", err)
	}
	if inner.Context() != outer {
		t.Error("nested container should adopt the outer context")
	}

	found, err := outer.FeatureByName("mount frame")
	if err != nil {
		t.Fatalf("nested lookup: %v", err)
	}
	if found != Feature(deep) {
		t.Error("lookup should descend into the nested container")
	}
	if found, err := outer.FeatureByName("subassembly"); err != nil || found != Feature(inner) {
		t.Errorf("container lookup: %v, %v", found, err)
	}
}

func TestValidateFindsProblems(t *testing.T) {
	part, s := newSketchXY(t)
	errs := Validate(&part.Container)
	// Empty sketch warns about a missing profile.
	found := false
	for _, e := range errs {
		if e.Severity == SeverityWarning && e.FeatureUID == s.UID() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected profile warning, got %v", errs)
	}
}
