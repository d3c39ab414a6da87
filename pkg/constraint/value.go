package constraint

import (
	"fmt"
	"math"

	"github.com/pancad/pancad/pkg/geometry"
)

// Value constraints pair a geometric relationship with a dimension value
// and unit.

// valueBase carries the value and unit shared by all value constraints.
type valueBase struct {
	*base
	value float64
	unit  string
}

// Value returns the constraint's dimension value.
func (v *valueBase) Value() float64 { return v.value }

// Unit returns the unit the value is expressed in. Empty means the model
// unit.
func (v *valueBase) Unit() string { return v.unit }

// setNonNegative assigns a value that must not be negative.
func (v *valueBase) setNonNegative(value float64) error {
	if value < 0 {
		return &ValueError{
			Constraint: v.ctype,
			Message:    fmt.Sprintf("value cannot be negative, got %g", value),
		}
	}
	v.value = value
	return nil
}

// DistanceConstraint holds two references a set distance apart.
type DistanceConstraint struct{ valueBase }

// HorizontalDistanceConstraint holds two 2D references a set distance
// apart along the sketch x-axis.
type HorizontalDistanceConstraint struct{ valueBase }

// VerticalDistanceConstraint holds two 2D references a set distance apart
// along the sketch y-axis.
type VerticalDistanceConstraint struct{ valueBase }

// RadiusConstraint holds the radius of a circle or arc to a value.
type RadiusConstraint struct{ valueBase }

// DiameterConstraint holds the diameter of a circle or arc to a value.
type DiameterConstraint struct{ valueBase }

// AngleConstraint holds the angle between two edges to a value. The value
// is stored in degrees; the quadrant selects which of the four angle
// sectors between the edges is meant.
type AngleConstraint struct {
	valueBase
	quadrant int
}

var (
	_ Constraint = (*DistanceConstraint)(nil)
	_ Constraint = (*HorizontalDistanceConstraint)(nil)
	_ Constraint = (*VerticalDistanceConstraint)(nil)
	_ Constraint = (*RadiusConstraint)(nil)
	_ Constraint = (*DiameterConstraint)(nil)
	_ Constraint = (*AngleConstraint)(nil)
)

func newValuePair(ctype Type,
	a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference,
	value float64, unit string) (valueBase, error) {
	base, err := newPair(ctype, a, refA, b, refB)
	if err != nil {
		return valueBase{}, err
	}
	v := valueBase{base: base, unit: unit}
	if err := v.setNonNegative(value); err != nil {
		return valueBase{}, err
	}
	return v, nil
}

func newValueSingle(ctype Type,
	a geometry.Geometry, refA geometry.ConstraintReference,
	value float64, unit string) (valueBase, error) {
	base, err := newBase(ctype,
		[]geometry.Geometry{a},
		[]geometry.ConstraintReference{refA})
	if err != nil {
		return valueBase{}, err
	}
	v := valueBase{base: base, unit: unit}
	if err := v.setNonNegative(value); err != nil {
		return valueBase{}, err
	}
	return v, nil
}

// NewDistance creates a distance constraint between two references.
func NewDistance(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference,
	value float64, unit string) (*DistanceConstraint, error) {
	v, err := newValuePair(TypeDistance, a, refA, b, refB, value, unit)
	if err != nil {
		return nil, err
	}
	return &DistanceConstraint{v}, nil
}

// NewHorizontalDistance creates a horizontal distance constraint between
// two 2D references.
func NewHorizontalDistance(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference,
	value float64, unit string) (*HorizontalDistanceConstraint, error) {
	v, err := newValuePair(TypeDistanceHorizontal, a, refA, b, refB, value, unit)
	if err != nil {
		return nil, err
	}
	return &HorizontalDistanceConstraint{v}, nil
}

// NewVerticalDistance creates a vertical distance constraint between two
// 2D references.
func NewVerticalDistance(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference,
	value float64, unit string) (*VerticalDistanceConstraint, error) {
	v, err := newValuePair(TypeDistanceVertical, a, refA, b, refB, value, unit)
	if err != nil {
		return nil, err
	}
	return &VerticalDistanceConstraint{v}, nil
}

// NewRadius creates a radius constraint on a circle or arc reference.
func NewRadius(a geometry.Geometry, refA geometry.ConstraintReference,
	value float64, unit string) (*RadiusConstraint, error) {
	v, err := newValueSingle(TypeDistanceRadius, a, refA, value, unit)
	if err != nil {
		return nil, err
	}
	return &RadiusConstraint{v}, nil
}

// NewDiameter creates a diameter constraint on a circle or arc reference.
func NewDiameter(a geometry.Geometry, refA geometry.ConstraintReference,
	value float64, unit string) (*DiameterConstraint, error) {
	v, err := newValueSingle(TypeDistanceDiameter, a, refA, value, unit)
	if err != nil {
		return nil, err
	}
	return &DiameterConstraint{v}, nil
}

// SetValue assigns a new non-negative distance value.
func (c *DistanceConstraint) SetValue(value float64) error {
	return c.setNonNegative(value)
}

// SetValue assigns a new non-negative radius value.
func (c *RadiusConstraint) SetValue(value float64) error {
	return c.setNonNegative(value)
}

// SetValue assigns a new non-negative diameter value.
func (c *DiameterConstraint) SetValue(value float64) error {
	return c.setNonNegative(value)
}

// NewAngle creates an angle constraint between two edge references. The
// angle is given in degrees unless radians is true, and is stored in
// degrees. Quadrant must be 1 to 4.
func NewAngle(a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference,
	value float64, radians bool, quadrant int) (*AngleConstraint, error) {
	base, err := newPair(TypeAngle, a, refA, b, refB)
	if err != nil {
		return nil, err
	}
	if quadrant < 1 || quadrant > 4 {
		return nil, &ValueError{
			Constraint: TypeAngle,
			Message:    fmt.Sprintf("quadrant must be 1 to 4, got %d", quadrant),
		}
	}
	if radians {
		value = value * 180 / math.Pi
	}
	return &AngleConstraint{
		valueBase: valueBase{base: base, value: value},
		quadrant:  quadrant,
	}, nil
}

// Quadrant returns which of the four angle sectors the constraint holds.
func (c *AngleConstraint) Quadrant() int { return c.quadrant }

// Degrees returns the angle value in degrees.
func (c *AngleConstraint) Degrees() float64 { return c.value }

// Radians returns the angle value in radians.
func (c *AngleConstraint) Radians() float64 { return c.value * math.Pi / 180 }
