package freecad

import "fmt"

// Document is a neutral in-memory description of a FreeCAD document:
// the ordered object list with the sketch, pad and origin payloads PanCAD
// reads and writes.
type Document struct {
	Name    string
	Objects []*Object
}

// Object is one entry of a FreeCAD document's object list.
type Object struct {
	ID   FeatureID
	Type ObjectType
	Name string

	Sketch *SketchObject
	Pad    *PadObject
	Body   *BodyObject
	Origin *OriginObject
}

// AddObject appends an object and assigns its ID from its position.
func (d *Document) AddObject(o *Object) FeatureID {
	o.ID = FeatureID(len(d.Objects))
	d.Objects = append(d.Objects, o)
	return o.ID
}

// ObjectByID returns the object with the given feature id.
func (d *Document) ObjectByID(id FeatureID) (*Object, error) {
	if int(id) < 0 || int(id) >= len(d.Objects) {
		return nil, fmt.Errorf("document has no object %d", int(id))
	}
	return d.Objects[id], nil
}

// SketchObject is the sketch payload: geometry, external geometry and
// constraints.
type SketchObject struct {
	// Support is the origin feature the sketch is attached to.
	Support FeatureID
	// MapMode names the attachment plane, e.g. "FlatFace" on XY.
	AttachmentPlane string

	Geometry    []GeoEntry
	ExternalGeo []GeoEntry
	Constraints []ConstraintEntry
}

// GeoEntry is one sketch geometry element in FreeCAD form. Which fields
// are meaningful depends on Type.
type GeoEntry struct {
	Type         GeomType
	Construction bool

	Start  []float64
	End    []float64
	Center []float64
	// Radius is the circle or arc radius.
	Radius float64
	// StartAngle and EndAngle bound an arc of circle, in radians.
	StartAngle float64
	EndAngle   float64
	// MajorRadius, MinorRadius and MajorAxis describe an ellipse.
	MajorRadius float64
	MinorRadius float64
	MajorAxis   []float64
}

// ConstraintEntry is one sketch constraint in FreeCAD form. Unused index
// slots hold NoInput.
type ConstraintEntry struct {
	Type ConstraintType
	Name string

	First     int
	FirstPos  EdgeSubPart
	Second    int
	SecondPos EdgeSubPart

	// Value carries the dimension of value constraints. Angles are stored
	// in radians, as FreeCAD does.
	Value float64

	// Alignment is set for InternalAlignment constraints.
	Alignment InternalAlignmentType

	// HasFirstPos and HasSecondPos distinguish a sub-part of 0 (edge)
	// from an absent input.
	HasSecond    bool
	HasFirstPos  bool
	HasSecondPos bool
}

// NoInput fills unused constraint index slots.
const NoInput = -2000

// PadObject is the pad payload.
type PadObject struct {
	Profile  FeatureID
	Type     PadType
	Length   float64
	Length2  float64
	Midplane bool
	Reversed bool
}

// BodyObject is the body payload: the ordered group of features it owns.
type BodyObject struct {
	Group []FeatureID
}

// OriginObject is the origin payload. OriginFeatures lists the six
// sub-features positionally: the x, y and z axes, then the xy, xz and yz
// planes. PanCAD relies on FreeCAD keeping this order stable.
type OriginObject struct {
	OriginFeatures [6]string
}

// DefaultOrigin returns an origin object with FreeCAD's conventional
// sub-feature names.
func DefaultOrigin() *OriginObject {
	return &OriginObject{OriginFeatures: [6]string{
		"X_Axis", "Y_Axis", "Z_Axis", "XY_Plane", "XZ_Plane", "YZ_Plane",
	}}
}
