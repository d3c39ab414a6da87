package constraint

import (
	"fmt"

	"github.com/pancad/pancad/pkg/geometry"
)

// Params bundles the optional inputs of Make. Value constraints require
// Value (and Unit where lengths have one); angle constraints require
// Quadrant.
type Params struct {
	UID      string
	Value    float64
	Unit     string
	Quadrant int
	Radians  bool
}

// Make creates a constraint of the given type without calling each
// constructor individually. b may be nil for single-geometry forms of
// snap-to and for radius and diameter constraints.
func Make(ctype Type,
	a geometry.Geometry, refA geometry.ConstraintReference,
	b geometry.Geometry, refB geometry.ConstraintReference,
	p Params) (Constraint, error) {
	var c Constraint
	var err error
	switch ctype {
	case TypeAngle:
		c, err = NewAngle(a, refA, b, refB, p.Value, p.Radians, p.Quadrant)
	case TypeCoincident:
		c, err = NewCoincident(a, refA, b, refB)
	case TypeDistance:
		c, err = NewDistance(a, refA, b, refB, p.Value, p.Unit)
	case TypeDistanceDiameter:
		c, err = NewDiameter(a, refA, p.Value, p.Unit)
	case TypeDistanceHorizontal:
		c, err = NewHorizontalDistance(a, refA, b, refB, p.Value, p.Unit)
	case TypeDistanceRadius:
		c, err = NewRadius(a, refA, p.Value, p.Unit)
	case TypeDistanceVertical:
		c, err = NewVerticalDistance(a, refA, b, refB, p.Value, p.Unit)
	case TypeEqual:
		c, err = NewEqual(a, refA, b, refB)
	case TypeHorizontal:
		if b == nil {
			c, err = NewHorizontal(a, refA)
		} else {
			c, err = NewHorizontalPoints(a, refA, b, refB)
		}
	case TypeParallel:
		c, err = NewParallel(a, refA, b, refB)
	case TypePerpendicular:
		c, err = NewPerpendicular(a, refA, b, refB)
	case TypeSymmetric:
		return nil, &geometry.CapabilityError{Capability: "symmetric constraints"}
	case TypeTangent:
		c, err = NewTangent(a, refA, b, refB)
	case TypeVertical:
		if b == nil {
			c, err = NewVertical(a, refA)
		} else {
			c, err = NewVerticalPoints(a, refA, b, refB)
		}
	default:
		return nil, fmt.Errorf("constraint type %s not recognized", ctype)
	}
	if err != nil {
		return nil, err
	}
	if p.UID != "" {
		c.SetUID(p.UID)
	}
	return c, nil
}
