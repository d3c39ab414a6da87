package freecad

import "fmt"

// Sketch axis and external geometry index conventions. FreeCAD addresses
// the sketch x-axis as geometry index -1, the y-axis as -2, and external
// geometry from -3 downward.
const (
	XAxisIndex = -1
	YAxisIndex = -2
	// externalBase is the first external geometry index.
	externalBase = -3
)

// ExternalIndexFor encodes a position in the ExternalGeo list as a
// negative constraint index.
func ExternalIndexFor(listPos int) int {
	return externalBase - listPos
}

// ExternalListPos decodes a negative constraint index into a position in
// the ExternalGeo list. Axis indices are not external geometry.
func ExternalListPos(index int) (int, error) {
	if index > externalBase {
		return 0, fmt.Errorf("index %d does not address external geometry", index)
	}
	return externalBase - index, nil
}

// ExternalID addresses an element inside a FreeCAD document. The set of
// identifier shapes is sealed.
type ExternalID interface {
	externalID()
	String() string
}

// FeatureID is the position of a document object in the document's object
// list.
type FeatureID int

func (FeatureID) externalID() {}

func (id FeatureID) String() string { return fmt.Sprintf("feature %d", int(id)) }

// SketchElementID addresses an entry of one of a sketch's lists.
type SketchElementID struct {
	Feature FeatureID
	List    ListName
	Index   int
}

func (SketchElementID) externalID() {}

func (id SketchElementID) String() string {
	return fmt.Sprintf("feature %d %s[%d]", int(id.Feature), id.List, id.Index)
}

// SketchSubGeometryID addresses a sub-part of a sketch geometry entry,
// such as the start point of a line segment.
type SketchSubGeometryID struct {
	SketchElementID
	SubPart EdgeSubPart
}

func (SketchSubGeometryID) externalID() {}

func (id SketchSubGeometryID) String() string {
	return fmt.Sprintf("%s %s", id.SketchElementID, id.SubPart)
}

// SubFeatureID addresses a sub-element of a document object by its
// position in the object's sub-feature list, such as an origin axis.
type SubFeatureID struct {
	Feature  FeatureID
	Position int
}

func (SubFeatureID) externalID() {}

func (id SubFeatureID) String() string {
	return fmt.Sprintf("feature %d sub-feature %d", int(id.Feature), id.Position)
}

var (
	_ ExternalID = FeatureID(0)
	_ ExternalID = SketchElementID{}
	_ ExternalID = SketchSubGeometryID{}
	_ ExternalID = SubFeatureID{}
)
