// Package freecad provides the bidirectional mapping between PanCAD parts
// and FreeCAD documents: enums for FreeCAD's naming scheme, identifier
// types for addressing elements inside a document, translation of
// geometry, constraints and features, and the uid map that ties both
// worlds together.
package freecad

import (
	"fmt"

	"github.com/pancad/pancad/pkg/feature"
	"github.com/pancad/pancad/pkg/geometry"
)

// EdgeSubPart is FreeCAD's numbering for the sub-parts of a sketch
// element referenced by a constraint.
type EdgeSubPart int

const (
	SubPartEdge   EdgeSubPart = 0
	SubPartStart  EdgeSubPart = 1
	SubPartEnd    EdgeSubPart = 2
	SubPartCenter EdgeSubPart = 3
)

func (e EdgeSubPart) String() string {
	switch e {
	case SubPartEdge:
		return "edge"
	case SubPartStart:
		return "start"
	case SubPartEnd:
		return "end"
	case SubPartCenter:
		return "center"
	default:
		return fmt.Sprintf("EdgeSubPart(%d)", int(e))
	}
}

// Reference converts the sub-part to a constraint reference on ordinary
// sketch geometry.
func (e EdgeSubPart) Reference() (geometry.ConstraintReference, error) {
	switch e {
	case SubPartEdge:
		return geometry.RefCore, nil
	case SubPartStart:
		return geometry.RefStart, nil
	case SubPartEnd:
		return geometry.RefEnd, nil
	case SubPartCenter:
		return geometry.RefCenter, nil
	default:
		return 0, fmt.Errorf("unknown edge sub-part %d", int(e))
	}
}

// SubPartFor converts a constraint reference on ordinary geometry to the
// FreeCAD sub-part numbering.
func SubPartFor(ref geometry.ConstraintReference) (EdgeSubPart, error) {
	switch ref {
	case geometry.RefCore:
		return SubPartEdge, nil
	case geometry.RefStart:
		return SubPartStart, nil
	case geometry.RefEnd:
		return SubPartEnd, nil
	case geometry.RefCenter:
		return SubPartCenter, nil
	default:
		return 0, fmt.Errorf("reference %q has no edge sub-part", ref)
	}
}

// SketchAxisReference converts a (sketch axis, sub-part) pair to the
// sketch-level constraint reference. FreeCAD addresses the sketch x-axis
// edge, the origin point on the x-axis, and the y-axis edge; everything
// else is unsupported.
func SketchAxisReference(axis geometry.ConstraintReference, sub EdgeSubPart) (geometry.ConstraintReference, error) {
	switch {
	case axis == geometry.RefX && sub == SubPartEdge:
		return geometry.RefX, nil
	case axis == geometry.RefX && sub == SubPartStart:
		return geometry.RefOrigin, nil
	case axis == geometry.RefY && sub == SubPartEdge:
		return geometry.RefY, nil
	default:
		return 0, fmt.Errorf("unsupported sketch reference: axis %q sub-part %q",
			axis, sub)
	}
}

// InternalAlignmentType numbers FreeCAD's InternalAlignment constraint
// variants for ellipse internal geometry.
type InternalAlignmentType int

const (
	EllipseMajorDiameter InternalAlignmentType = 1
	EllipseMinorDiameter InternalAlignmentType = 2
	EllipseFocus1        InternalAlignmentType = 3
	EllipseFocus2        InternalAlignmentType = 4
)

// Reference converts an internal alignment type and the sub-part of the
// aligned internal element to the ellipse constraint reference it stands
// for.
func (a InternalAlignmentType) Reference(sub EdgeSubPart) (geometry.ConstraintReference, error) {
	switch a {
	case EllipseMajorDiameter:
		switch sub {
		case SubPartEdge:
			return geometry.RefX, nil
		case SubPartStart:
			return geometry.RefXMax, nil
		case SubPartEnd:
			return geometry.RefXMin, nil
		}
	case EllipseMinorDiameter:
		switch sub {
		case SubPartEdge:
			return geometry.RefY, nil
		case SubPartStart:
			return geometry.RefYMax, nil
		case SubPartEnd:
			return geometry.RefYMin, nil
		}
	case EllipseFocus1:
		if sub == SubPartStart {
			return geometry.RefFocalPlus, nil
		}
		return 0, fmt.Errorf("unexpected sub-part for positive focal point: %q", sub)
	case EllipseFocus2:
		if sub == SubPartStart {
			return geometry.RefFocalMinus, nil
		}
		return 0, fmt.Errorf("unexpected sub-part for negative focal point: %q", sub)
	}
	return 0, fmt.Errorf("unsupported internal alignment %d with sub-part %q",
		int(a), sub)
}

// PadType names FreeCAD's pad length modes.
type PadType string

const (
	PadLength     PadType = "Length"
	PadUpToLast   PadType = "UpToLast"
	PadUpToFirst  PadType = "UpToFirst"
	PadUpToFace   PadType = "UpToFace"
	PadTwoLengths PadType = "TwoLengths"
	PadUpToShape  PadType = "UpToShape"
)

// LengthType converts a pad type with its midplane and reversed flags to
// the PanCAD extrude length type. Up-to pads are not implemented.
func (p PadType) LengthType(midplane, reversed bool) (feature.LengthType, error) {
	switch p {
	case PadLength:
		switch {
		case midplane:
			return feature.Symmetric, nil
		case reversed:
			return feature.AntiDimension, nil
		default:
			return feature.Dimension, nil
		}
	case PadTwoLengths:
		if reversed {
			return feature.AntiTwoDimensions, nil
		}
		return feature.TwoDimensions, nil
	case PadUpToLast, PadUpToFirst, PadUpToFace, PadUpToShape:
		return 0, &geometry.CapabilityError{
			Capability: fmt.Sprintf("%s pads", string(p)),
		}
	default:
		return 0, fmt.Errorf("unknown pad type %q", string(p))
	}
}

// PadTypeFor converts a PanCAD length type to the FreeCAD pad type and
// flags.
func PadTypeFor(lt feature.LengthType) (pad PadType, midplane, reversed bool, err error) {
	switch lt {
	case feature.Dimension:
		return PadLength, false, false, nil
	case feature.AntiDimension:
		return PadLength, false, true, nil
	case feature.Symmetric:
		return PadLength, true, false, nil
	case feature.TwoDimensions:
		return PadTwoLengths, false, false, nil
	case feature.AntiTwoDimensions:
		return PadTwoLengths, false, true, nil
	default:
		return "", false, false, fmt.Errorf("unknown length type %s", lt)
	}
}

// ObjectType names the FreeCAD document object classes PanCAD maps.
type ObjectType string

const (
	ObjectBody   ObjectType = "PartDesign::Body"
	ObjectSketch ObjectType = "Sketcher::SketchObject"
	ObjectPad    ObjectType = "PartDesign::Pad"
	ObjectOrigin ObjectType = "App::Origin"
)

// ConstraintType names FreeCAD's sketch constraint strings.
type ConstraintType string

const (
	FCAngle             ConstraintType = "Angle"
	FCCoincident        ConstraintType = "Coincident"
	FCDiameter          ConstraintType = "Diameter"
	FCDistance          ConstraintType = "Distance"
	FCDistanceX         ConstraintType = "DistanceX"
	FCDistanceY         ConstraintType = "DistanceY"
	FCEqual             ConstraintType = "Equal"
	FCHorizontal        ConstraintType = "Horizontal"
	FCInternalAlignment ConstraintType = "InternalAlignment"
	FCParallel          ConstraintType = "Parallel"
	FCPerpendicular     ConstraintType = "Perpendicular"
	FCPointOnObject     ConstraintType = "PointOnObject"
	FCRadius            ConstraintType = "Radius"
	FCTangent           ConstraintType = "Tangent"
	FCVertical          ConstraintType = "Vertical"
)

// ListName names the per-sketch lists constraint indices address.
type ListName string

const (
	ListConstraints ListName = "Constraints"
	ListExternals   ListName = "ExternalGeo"
	ListGeometry    ListName = "Geometry"
	// ListInternal stands for the internal alignment constraints that
	// define ellipse sub-geometry. Not a real FreeCAD list.
	ListInternal ListName = "InternalAlignment"
)

// GeomType names the FreeCAD geometry classes inside sketches.
type GeomType string

const (
	GeomPoint       GeomType = "Part::GeomPoint"
	GeomLineSegment GeomType = "Part::GeomLineSegment"
	GeomCircle      GeomType = "Part::GeomCircle"
	GeomArcOfCircle GeomType = "Part::GeomArcOfCircle"
	GeomEllipse     GeomType = "Part::GeomEllipse"
)
