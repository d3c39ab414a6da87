package geometry

import "fmt"

// ConstraintReference addresses a portion of a geometric element for use in
// constraints. CORE always refers to the whole element; the remaining values
// are only valid for kinds that define them.
type ConstraintReference int

const (
	// RefCore refers to the entirety of an element.
	RefCore ConstraintReference = iota
	// RefStart refers to the start point of an element.
	RefStart
	// RefEnd refers to the end point of an element.
	RefEnd
	// RefCenter refers to the center point of an element.
	RefCenter
	// RefX refers to the x-axis of a coordinate system or the major axis
	// line of an ellipse.
	RefX
	// RefY refers to the y-axis of a coordinate system or the minor axis
	// line of an ellipse.
	RefY
	// RefZ refers to the z-axis of a coordinate system.
	RefZ
	// RefXY refers to the xy-plane of a coordinate system.
	RefXY
	// RefXZ refers to the xz-plane of a coordinate system.
	RefXZ
	// RefYZ refers to the yz-plane of a coordinate system.
	RefYZ
	// RefXMin refers to the minimum-x end of an ellipse major axis.
	RefXMin
	// RefXMax refers to the maximum-x end of an ellipse major axis.
	RefXMax
	// RefYMin refers to the minimum-y end of an ellipse minor axis.
	RefYMin
	// RefYMax refers to the maximum-y end of an ellipse minor axis.
	RefYMax
	// RefFocalPlus refers to the focal point on the positive major axis.
	RefFocalPlus
	// RefFocalMinus refers to the focal point on the negative major axis.
	RefFocalMinus
	// RefCS refers to the coordinate system of an element that carries one.
	RefCS
)

// Aliases for readability in context.
const (
	// RefOrigin is the origin point of a coordinate system.
	RefOrigin = RefCenter
	// RefMajorAxis is the major axis line of an ellipse.
	RefMajorAxis = RefX
	// RefMinorAxis is the minor axis line of an ellipse.
	RefMinorAxis = RefY
)

func (r ConstraintReference) String() string {
	switch r {
	case RefCore:
		return "core"
	case RefStart:
		return "start"
	case RefEnd:
		return "end"
	case RefCenter:
		return "center"
	case RefX:
		return "x"
	case RefY:
		return "y"
	case RefZ:
		return "z"
	case RefXY:
		return "xy"
	case RefXZ:
		return "xz"
	case RefYZ:
		return "yz"
	case RefXMin:
		return "x_min"
	case RefXMax:
		return "x_max"
	case RefYMin:
		return "y_min"
	case RefYMax:
		return "y_max"
	case RefFocalPlus:
		return "focal_plus"
	case RefFocalMinus:
		return "focal_minus"
	case RefCS:
		return "cs"
	default:
		return fmt.Sprintf("ConstraintReference(%d)", int(r))
	}
}

// hasReference reports whether ref is in refs.
func hasReference(refs []ConstraintReference, ref ConstraintReference) bool {
	for _, r := range refs {
		if r == ref {
			return true
		}
	}
	return false
}
