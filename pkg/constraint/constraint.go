// Package constraint provides the PanCAD constraint model: geometric state
// constraints (coincident, parallel, ...), snap-to constraints (horizontal,
// vertical) and value constraints (distance, radius, angle, ...) between
// references into geometric elements.
//
// Constraints hold the parent elements and the sub-elements their
// references resolve to. Two constraints target the same geometry only when
// the resolved pointers are identical; value equality of coordinates never
// makes two elements the same target.
package constraint

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pancad/pancad/pkg/geometry"
)

// Type identifies a constraint kind. The set is closed.
type Type int

const (
	TypeAngle Type = iota
	TypeCoincident
	TypeCollinear
	TypeDistance
	TypeDistanceHorizontal
	TypeDistanceVertical
	TypeDistanceRadius
	TypeDistanceDiameter
	TypeEqual
	TypeHorizontal
	TypeParallel
	TypePerpendicular
	TypeSymmetric
	TypeTangent
	TypeVertical
)

func (t Type) String() string {
	switch t {
	case TypeAngle:
		return "angle"
	case TypeCoincident:
		return "coincident"
	case TypeCollinear:
		return "collinear"
	case TypeDistance:
		return "distance"
	case TypeDistanceHorizontal:
		return "horizontal_distance"
	case TypeDistanceVertical:
		return "vertical_distance"
	case TypeDistanceRadius:
		return "radius"
	case TypeDistanceDiameter:
		return "diameter"
	case TypeEqual:
		return "equal"
	case TypeHorizontal:
		return "horizontal"
	case TypeParallel:
		return "parallel"
	case TypePerpendicular:
		return "perpendicular"
	case TypeSymmetric:
		return "symmetric"
	case TypeTangent:
		return "tangent"
	case TypeVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Constraint is the interface shared by all PanCAD constraints.
type Constraint interface {
	// UID returns the unique id of the constraint, generating one if unset.
	UID() string
	// SetUID assigns the unique id.
	SetUID(string)
	// Type returns the closed type tag of the constraint.
	Type() Type
	// Geometry returns the parent elements the constraint was created with.
	Geometry() []geometry.Geometry
	// References returns the constraint references into the parents, in the
	// same order as Geometry.
	References() []geometry.ConstraintReference
	// Resolved returns the sub-elements the references resolve to, in the
	// same order as Geometry.
	Resolved() []geometry.Geometry
}

// ConstrainsSameTargets reports whether two constraints resolve to the same
// sub-element pointers in order. Identity, not value equality.
func ConstrainsSameTargets(a, b Constraint) bool {
	ra, rb := a.Resolved(), b.Resolved()
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if ra[i] != rb[i] {
			return false
		}
	}
	return true
}

// ---- common base ----

// base carries the fields shared by every constraint implementation.
type base struct {
	uid      string
	ctype    Type
	parents  []geometry.Geometry
	refs     []geometry.ConstraintReference
	resolved []geometry.Geometry
}

func (b *base) UID() string {
	if b.uid == "" {
		b.uid = uuid.NewString()
	}
	return b.uid
}

func (b *base) SetUID(uid string) { b.uid = uid }

func (b *base) Type() Type { return b.ctype }

func (b *base) Geometry() []geometry.Geometry {
	return append([]geometry.Geometry(nil), b.parents...)
}

func (b *base) References() []geometry.ConstraintReference {
	return append([]geometry.ConstraintReference(nil), b.refs...)
}

func (b *base) Resolved() []geometry.Geometry {
	return append([]geometry.Geometry(nil), b.resolved...)
}

// newBase resolves each (parent, reference) pair and runs the legality
// pipeline for the constraint type.
func newBase(ctype Type, parents []geometry.Geometry, refs []geometry.ConstraintReference) (*base, error) {
	if len(parents) != len(refs) {
		return nil, fmt.Errorf("%s: %d elements with %d references",
			ctype, len(parents), len(refs))
	}
	resolved := make([]geometry.Geometry, len(parents))
	for i, parent := range parents {
		if parent == nil {
			return nil, fmt.Errorf("%s: nil geometry", ctype)
		}
		sub, err := parent.GetReference(refs[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ctype, err)
		}
		resolved[i] = sub
	}
	b := &base{ctype: ctype, parents: parents, refs: refs, resolved: resolved}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// ---- errors ----

// KindError reports a constraint applied to an element kind it does not
// support, either directly or through what a reference resolved to.
type KindError struct {
	Constraint Type
	Kind       geometry.Kind
	Resolved   bool
}

func (e *KindError) Error() string {
	if e.Resolved {
		return fmt.Sprintf("%s cannot constrain a reference resolving to %s",
			e.Constraint, e.Kind)
	}
	return fmt.Sprintf("%s cannot constrain %s elements", e.Constraint, e.Kind)
}

// SelfConstraintError reports a constraint whose references resolve to the
// same element.
type SelfConstraintError struct {
	Constraint Type
	UID        string
}

func (e *SelfConstraintError) Error() string {
	return fmt.Sprintf("%s cannot constrain element %q to itself",
		e.Constraint, e.UID)
}

// CombinationError reports two resolved element kinds that the constraint
// type cannot combine.
type CombinationError struct {
	Constraint Type
	A, B       geometry.Kind
	Hint       string
}

func (e *CombinationError) Error() string {
	msg := fmt.Sprintf("%s cannot combine %s and %s", e.Constraint, e.A, e.B)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// ValueError reports an out-of-range constraint value.
type ValueError struct {
	Constraint Type
	Message    string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Constraint, e.Message)
}
