package feature

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pancad/pancad/pkg/constraint"
	"github.com/pancad/pancad/pkg/geometry"
)

// PlaneOptions are the coordinate system planes a sketch may be placed on.
var PlaneOptions = []geometry.ConstraintReference{
	geometry.RefXY, geometry.RefXZ, geometry.RefYZ,
}

// Sketch is a 2D drawing placed on a plane of a parent coordinate system.
// It holds 2D geometry with parallel construction flags, constraints whose
// targets must live in the sketch, and 3D external references. The sketch
// itself answers origin and axis references through an internal 2D
// coordinate system, so it can participate in constraints as geometry.
type Sketch struct {
	uid     string
	name    string
	context *Container

	origin   *CoordinateSystemFeature
	planeRef geometry.ConstraintReference

	elements     []geometry.Geometry
	construction []bool
	constraints  []constraint.Constraint
	externals    []geometry.Geometry

	// sketchCS answers the sketch's own origin and axis references in
	// sketch coordinates.
	sketchCS *geometry.CoordinateSystem
}

var (
	_ Feature           = (*Sketch)(nil)
	_ geometry.Geometry = (*Sketch)(nil)
)

// NewSketch creates a sketch on the given plane of the parent coordinate
// system feature.
func NewSketch(origin *CoordinateSystemFeature, planeRef geometry.ConstraintReference) (*Sketch, error) {
	if origin == nil {
		return nil, fmt.Errorf("sketch: nil coordinate system feature")
	}
	valid := false
	for _, opt := range PlaneOptions {
		if planeRef == opt {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("sketch plane must be one of xy, xz, yz, got %q",
			planeRef)
	}
	if _, err := origin.GetReference(planeRef); err != nil {
		return nil, fmt.Errorf("sketch: %w", err)
	}
	sketchCS, err := geometry.NewCoordinateSystem2D(geometry.MustPoint(0, 0), 0)
	if err != nil {
		return nil, err
	}
	return &Sketch{origin: origin, planeRef: planeRef, sketchCS: sketchCS}, nil
}

// ---- feature ----

func (s *Sketch) UID() string {
	if s.uid == "" {
		s.uid = uuid.NewString()
	}
	return s.uid
}

func (s *Sketch) SetUID(uid string) { s.uid = uid }

func (s *Sketch) Name() string { return s.name }

func (s *Sketch) SetName(name string) { s.name = name }

func (s *Sketch) Dependencies() []Feature { return []Feature{s.origin} }

func (s *Sketch) Context() *Container { return s.context }

func (s *Sketch) adoptContext(c *Container) {
	if s.context == nil {
		s.context = c
	}
}

// CoordinateSystem returns the parent coordinate system feature.
func (s *Sketch) CoordinateSystem() *CoordinateSystemFeature { return s.origin }

// PlaneReference returns which parent plane the sketch is placed on.
func (s *Sketch) PlaneReference() geometry.ConstraintReference { return s.planeRef }

// Plane resolves the sketch's placement plane on the parent coordinate
// system.
func (s *Sketch) Plane() (*geometry.Plane, error) {
	g, err := s.origin.GetReference(s.planeRef)
	if err != nil {
		return nil, err
	}
	return g.(*geometry.Plane), nil
}

// ---- geometry management ----

// AddGeometry appends a 2D element to the sketch. Construction elements
// guide constraints without contributing to profiles.
func (s *Sketch) AddGeometry(g geometry.Geometry, construction bool) error {
	if g == nil {
		return fmt.Errorf("sketch: nil geometry")
	}
	if g.Dim() != 2 {
		return &geometry.DimensionError{Op: "sketch geometry", Want: 2, Got: g.Dim()}
	}
	for _, have := range s.elements {
		if have == g {
			return fmt.Errorf("sketch already contains element %q", g.UID())
		}
	}
	s.elements = append(s.elements, g)
	s.construction = append(s.construction, construction)
	return nil
}

// AddExternal appends a 3D element the sketch references from the
// surrounding model.
func (s *Sketch) AddExternal(g geometry.Geometry) error {
	if g == nil {
		return fmt.Errorf("sketch: nil external")
	}
	if g.Dim() != 3 {
		return &geometry.DimensionError{Op: "sketch external", Want: 3, Got: g.Dim()}
	}
	s.externals = append(s.externals, g)
	return nil
}

// Geometry returns the sketch elements in order.
func (s *Sketch) Geometry() []geometry.Geometry {
	return append([]geometry.Geometry(nil), s.elements...)
}

// Externals returns the external elements in order.
func (s *Sketch) Externals() []geometry.Geometry {
	return append([]geometry.Geometry(nil), s.externals...)
}

// IsConstruction reports whether the i-th element is construction
// geometry.
func (s *Sketch) IsConstruction(i int) bool { return s.construction[i] }

// ConstructionGeometry returns the construction elements in order.
func (s *Sketch) ConstructionGeometry() []geometry.Geometry {
	var out []geometry.Geometry
	for i, g := range s.elements {
		if s.construction[i] {
			out = append(out, g)
		}
	}
	return out
}

// NonConstructionGeometry returns the profile elements in order.
func (s *Sketch) NonConstructionGeometry() []geometry.Geometry {
	var out []geometry.Geometry
	for i, g := range s.elements {
		if !s.construction[i] {
			out = append(out, g)
		}
	}
	return out
}

// IndexOf returns the index of an element, -1 for the sketch itself, and
// an error when the element is not in the sketch.
func (s *Sketch) IndexOf(g geometry.Geometry) (int, error) {
	if g == geometry.Geometry(s) {
		return -1, nil
	}
	for i, have := range s.elements {
		if have == g {
			return i, nil
		}
	}
	return 0, &NotFoundError{Where: "sketch", UID: g.UID()}
}

// GeometryAt returns the i-th element.
func (s *Sketch) GeometryAt(i int) (geometry.Geometry, error) {
	if i < 0 || i >= len(s.elements) {
		return nil, fmt.Errorf("sketch has no element at index %d", i)
	}
	return s.elements[i], nil
}

// GeometryByUID returns the element with the given uid.
func (s *Sketch) GeometryByUID(uid string) (geometry.Geometry, error) {
	for _, g := range s.elements {
		if g.UID() == uid {
			return g, nil
		}
	}
	return nil, &NotFoundError{Where: "sketch", UID: uid}
}

// ---- constraints ----

// AddConstraint appends a constraint. Every parent element must be the
// sketch itself, a sketch element or an external.
func (s *Sketch) AddConstraint(c constraint.Constraint) error {
	if c == nil {
		return fmt.Errorf("sketch: nil constraint")
	}
	var missing []string
	for _, parent := range c.Geometry() {
		if !s.holds(parent) {
			missing = append(missing, parent.UID())
		}
	}
	if len(missing) > 0 {
		return &MissingDependencyError{Feature: c.UID(), Missing: missing}
	}
	s.constraints = append(s.constraints, c)
	return nil
}

// holds reports whether g is the sketch, one of its elements or one of its
// externals, by pointer identity.
func (s *Sketch) holds(g geometry.Geometry) bool {
	if g == geometry.Geometry(s) {
		return true
	}
	for _, have := range s.elements {
		if have == g {
			return true
		}
	}
	for _, have := range s.externals {
		if have == g {
			return true
		}
	}
	return false
}

// Constraints returns the constraints in order.
func (s *Sketch) Constraints() []constraint.Constraint {
	return append([]constraint.Constraint(nil), s.constraints...)
}

// AddConstraintByIndex creates and appends a constraint between elements
// addressed by sketch index, with -1 meaning the sketch itself. b may be
// skipped with index -2 for single-geometry constraint forms.
func (s *Sketch) AddConstraintByIndex(ctype constraint.Type,
	indexA int, refA geometry.ConstraintReference,
	indexB int, refB geometry.ConstraintReference,
	p constraint.Params) (constraint.Constraint, error) {
	a, err := s.geometryByConstraintIndex(indexA)
	if err != nil {
		return nil, err
	}
	var b geometry.Geometry
	if indexB != NoGeometry {
		b, err = s.geometryByConstraintIndex(indexB)
		if err != nil {
			return nil, err
		}
	}
	c, err := constraint.Make(ctype, a, refA, b, refB, p)
	if err != nil {
		return nil, err
	}
	if err := s.AddConstraint(c); err != nil {
		return nil, err
	}
	return c, nil
}

// NoGeometry marks an absent second element in AddConstraintByIndex.
const NoGeometry = -2

func (s *Sketch) geometryByConstraintIndex(i int) (geometry.Geometry, error) {
	if i == -1 {
		return s, nil
	}
	return s.GeometryAt(i)
}

// AddConstraintByUID creates and appends a constraint between elements
// addressed by uid. The sketch's own uid addresses the sketch itself; an
// empty uidB selects a single-geometry constraint form.
func (s *Sketch) AddConstraintByUID(ctype constraint.Type,
	uidA string, refA geometry.ConstraintReference,
	uidB string, refB geometry.ConstraintReference,
	p constraint.Params) (constraint.Constraint, error) {
	a, err := s.geometryByConstraintUID(uidA)
	if err != nil {
		return nil, err
	}
	var b geometry.Geometry
	if uidB != "" {
		b, err = s.geometryByConstraintUID(uidB)
		if err != nil {
			return nil, err
		}
	}
	c, err := constraint.Make(ctype, a, refA, b, refB, p)
	if err != nil {
		return nil, err
	}
	if err := s.AddConstraint(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Sketch) geometryByConstraintUID(uid string) (geometry.Geometry, error) {
	if uid == s.UID() {
		return s, nil
	}
	return s.GeometryByUID(uid)
}

// ---- geometry interface ----

func (s *Sketch) Kind() geometry.Kind { return geometry.KindSketch }

// Dim returns 2; sketch-level references resolve in sketch coordinates.
func (s *Sketch) Dim() int { return 2 }

func (s *Sketch) References() []geometry.ConstraintReference {
	return []geometry.ConstraintReference{
		geometry.RefCore, geometry.RefOrigin, geometry.RefX, geometry.RefY,
	}
}

// GetReference resolves the sketch's origin and axis references through
// its internal 2D coordinate system.
func (s *Sketch) GetReference(ref geometry.ConstraintReference) (geometry.Geometry, error) {
	switch ref {
	case geometry.RefCore:
		return s, nil
	case geometry.RefOrigin, geometry.RefX, geometry.RefY:
		return s.sketchCS.GetReference(ref)
	default:
		return nil, &geometry.ReferenceError{Kind: geometry.KindSketch, Ref: ref}
	}
}

// Update is not supported for sketches; edit the sketch's elements
// instead.
func (s *Sketch) Update(other geometry.Geometry) error {
	return &geometry.CapabilityError{Capability: "sketch update"}
}
