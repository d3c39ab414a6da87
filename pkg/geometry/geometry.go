package geometry

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies a geometric element type. The set of kinds is closed;
// dispatch over Kind values is expected to be exhaustive.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindLineSegment
	KindCircle
	KindCircularArc
	KindEllipse
	KindPlane
	KindCoordinateSystem
	KindSketch
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindLineSegment:
		return "line_segment"
	case KindCircle:
		return "circle"
	case KindCircularArc:
		return "circular_arc"
	case KindEllipse:
		return "ellipse"
	case KindPlane:
		return "plane"
	case KindCoordinateSystem:
		return "coordinate_system"
	case KindSketch:
		return "sketch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Geometry is the interface shared by all PanCAD geometric elements.
// Elements are identified by uid, compared by pointer identity inside
// constraints, and mutated in place through Update so references held by
// other objects stay valid.
type Geometry interface {
	// UID returns the unique id of the element, generating one if unset.
	UID() string
	// SetUID assigns the unique id of the element.
	SetUID(string)
	// Kind returns the closed kind tag of the element.
	Kind() Kind
	// Dim returns the number of spatial dimensions (2 or 3).
	Dim() int
	// References returns every ConstraintReference the element answers.
	References() []ConstraintReference
	// GetReference resolves a ConstraintReference to the sub-element it
	// addresses. RefCore resolves to the element itself.
	GetReference(ConstraintReference) (Geometry, error)
	// Update copies the values of other into the element in place. The uid
	// and all held sub-element pointers are preserved. The other element
	// must have the same kind and dimension.
	Update(other Geometry) error
}

// newUID returns a fresh uuid string for elements created without one.
func newUID() string {
	return uuid.NewString()
}

// ---- errors ----

// DimensionError reports a mismatch between expected and actual dimensions.
type DimensionError struct {
	Op   string
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch, want %dD, got %dD",
		e.Op, e.Want, e.Got)
}

// ReferenceError reports a ConstraintReference that an element kind does
// not define.
type ReferenceError struct {
	Kind Kind
	Ref  ConstraintReference
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s does not define reference %q", e.Kind, e.Ref)
}

// UpdateError reports an Update call with an element of the wrong kind.
type UpdateError struct {
	Want Kind
	Got  Kind
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("cannot update %s from %s", e.Want, e.Got)
}

// CapabilityError reports use of a capability PanCAD does not implement.
type CapabilityError struct {
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Capability)
}

// checkSameShape verifies other has the kind and dimension of want before
// an in-place update.
func checkSameShape(want Geometry, other Geometry) error {
	if other == nil {
		return fmt.Errorf("update %s: nil source", want.Kind())
	}
	if other.Kind() != want.Kind() {
		return &UpdateError{Want: want.Kind(), Got: other.Kind()}
	}
	if other.Dim() != want.Dim() {
		return &DimensionError{
			Op:   fmt.Sprintf("update %s", want.Kind()),
			Want: want.Dim(),
			Got:  other.Dim(),
		}
	}
	return nil
}
