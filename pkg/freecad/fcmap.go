package freecad

import (
	"fmt"

	"github.com/pancad/pancad/pkg/geometry"
)

// Mapped pairs a PanCAD element with the constraint reference a FreeCAD
// identifier stands for on it.
type Mapped struct {
	// Element is the PanCAD object: a geometry element, a constraint or a
	// feature.
	Element any
	// Reference is which part of the element the id addresses.
	Reference geometry.ConstraintReference
}

// Map is the bidirectional registry between PanCAD uids and FreeCAD
// identifiers. The forward and inverse directions are separate maps
// populated together at insertion, so either lookup is a single map hit
// and the two can never drift apart.
type Map struct {
	toFreeCAD map[string]ExternalID
	toPanCAD  map[ExternalID]Mapped
	sketches  map[FeatureID]*sketchTables
}

// sketchTables tracks the per-sketch bookkeeping needed to translate
// constraint indices.
type sketchTables struct {
	// geometryUIDs holds the uid of each Geometry list entry, "" for
	// internal ellipse entries that have no standalone element.
	geometryUIDs []string
	// externalUIDs holds the uid of each ExternalGeo list entry.
	externalUIDs []string
	// constraintUIDs holds the uid of each Constraints list entry, "" for
	// internal alignment constraints.
	constraintUIDs []string
	// ellipseBases maps an ellipse uid to its Geometry list index. The
	// four internal entries follow at base+1 to base+4.
	ellipseBases map[string]int
}

// NewMap creates an empty bidirectional map.
func NewMap() *Map {
	return &Map{
		toFreeCAD: make(map[string]ExternalID),
		toPanCAD:  make(map[ExternalID]Mapped),
		sketches:  make(map[FeatureID]*sketchTables),
	}
}

// Register records a uid to identifier pairing in both directions.
func (m *Map) Register(uid string, id ExternalID, element any, ref geometry.ConstraintReference) error {
	if uid == "" {
		return fmt.Errorf("map: empty uid")
	}
	if have, ok := m.toFreeCAD[uid]; ok {
		return fmt.Errorf("map: uid %q already bound to %s", uid, have)
	}
	if have, ok := m.toPanCAD[id]; ok {
		return fmt.Errorf("map: id %s already bound to %v", id, have.Element)
	}
	m.toFreeCAD[uid] = id
	m.toPanCAD[id] = Mapped{Element: element, Reference: ref}
	return nil
}

// registerInverseOnly records an id to element pairing with no uid of its
// own, used for sub-parts like segment endpoints whose elements are
// addressed through their parent.
func (m *Map) registerInverseOnly(id ExternalID, element any, ref geometry.ConstraintReference) {
	m.toPanCAD[id] = Mapped{Element: element, Reference: ref}
}

// IDFor returns the FreeCAD identifier bound to a uid.
func (m *Map) IDFor(uid string) (ExternalID, error) {
	id, ok := m.toFreeCAD[uid]
	if !ok {
		return nil, fmt.Errorf("map: no identifier for uid %q", uid)
	}
	return id, nil
}

// ElementFor returns the PanCAD element and reference bound to an
// identifier.
func (m *Map) ElementFor(id ExternalID) (Mapped, error) {
	el, ok := m.toPanCAD[id]
	if !ok {
		return Mapped{}, fmt.Errorf("map: no element for %s", id)
	}
	return el, nil
}

// Contains reports whether the uid is registered.
func (m *Map) Contains(uid string) bool {
	_, ok := m.toFreeCAD[uid]
	return ok
}

// RegisterSketchGeometry records a geometry element at an index of a
// sketch's Geometry list, along with inverse entries for each of its
// addressable sub-parts.
func (m *Map) RegisterSketchGeometry(sketchID FeatureID, index int,
	g geometry.Geometry, ref geometry.ConstraintReference) error {
	id := SketchElementID{Feature: sketchID, List: ListGeometry, Index: index}
	t := m.sketchTable(sketchID)
	for len(t.geometryUIDs) <= index {
		t.geometryUIDs = append(t.geometryUIDs, "")
	}
	if g == nil {
		// Internal ellipse entry: occupies the slot, maps to nothing.
		return nil
	}
	t.geometryUIDs[index] = g.UID()
	if err := m.Register(g.UID(), id, g, ref); err != nil {
		return err
	}
	m.registerSubParts(id, g)
	return nil
}

// RegisterSketchExternal records an element of a sketch's ExternalGeo
// list.
func (m *Map) RegisterSketchExternal(sketchID FeatureID, listPos int, g geometry.Geometry) error {
	id := SketchElementID{Feature: sketchID, List: ListExternals, Index: listPos}
	t := m.sketchTable(sketchID)
	for len(t.externalUIDs) <= listPos {
		t.externalUIDs = append(t.externalUIDs, "")
	}
	t.externalUIDs[listPos] = g.UID()
	if err := m.Register(g.UID(), id, g, geometry.RefCore); err != nil {
		return err
	}
	m.registerSubParts(id, g)
	return nil
}

// RegisterSketchConstraint records a constraint at an index of a sketch's
// Constraints list. Internal alignment constraints pass a nil element and
// only occupy the slot.
func (m *Map) RegisterSketchConstraint(sketchID FeatureID, index int, uid string, element any) error {
	id := SketchElementID{Feature: sketchID, List: ListConstraints, Index: index}
	t := m.sketchTable(sketchID)
	for len(t.constraintUIDs) <= index {
		t.constraintUIDs = append(t.constraintUIDs, "")
	}
	if element == nil {
		return nil
	}
	t.constraintUIDs[index] = uid
	return m.Register(uid, id, element, geometry.RefCore)
}

// registerSubParts adds inverse-only entries for each sub-part of a
// sketch element that FreeCAD constraints can address.
func (m *Map) registerSubParts(id SketchElementID, g geometry.Geometry) {
	for _, ref := range g.References() {
		sub, err := SubPartFor(ref)
		if err != nil || sub == SubPartEdge {
			continue
		}
		resolved, err := g.GetReference(ref)
		if err != nil {
			continue
		}
		m.registerInverseOnly(
			SketchSubGeometryID{SketchElementID: id, SubPart: sub},
			resolved, ref)
	}
}

// ellipseInternalRefs lists what each internal entry slot after an
// ellipse stands for, in FreeCAD's exposeInternalGeometry order.
var ellipseInternalRefs = []geometry.ConstraintReference{
	geometry.RefX, geometry.RefY, geometry.RefFocalPlus, geometry.RefFocalMinus,
}

// RegisterEllipseInternal records the four internal geometry slots
// written after an ellipse at index base, so constraints addressing them
// resolve back to the ellipse.
func (m *Map) RegisterEllipseInternal(sketchID FeatureID, base int, el *geometry.Ellipse) {
	t := m.sketchTable(sketchID)
	if t.ellipseBases == nil {
		t.ellipseBases = make(map[string]int)
	}
	t.ellipseBases[el.UID()] = base
	for i, ref := range ellipseInternalRefs {
		index := base + 1 + i
		for len(t.geometryUIDs) <= index {
			t.geometryUIDs = append(t.geometryUIDs, "")
		}
		m.registerInverseOnly(SketchElementID{
			Feature: sketchID, List: ListGeometry, Index: index,
		}, el, ref)
	}
}

// EllipseBase returns the Geometry list index of an ellipse whose
// internal entries were registered.
func (m *Map) EllipseBase(sketchID FeatureID, uid string) (int, bool) {
	base, ok := m.sketchTable(sketchID).ellipseBases[uid]
	return base, ok
}

// GeometryIndexFor returns the Geometry list index of a sketch element
// uid.
func (m *Map) GeometryIndexFor(sketchID FeatureID, uid string) (int, error) {
	t := m.sketchTable(sketchID)
	for i, have := range t.geometryUIDs {
		if have != "" && have == uid {
			return i, nil
		}
	}
	for i, have := range t.externalUIDs {
		if have == uid {
			return ExternalIndexFor(i), nil
		}
	}
	return 0, fmt.Errorf("map: sketch %d has no geometry with uid %q",
		int(sketchID), uid)
}

// GeometryAtIndex resolves a constraint geometry index of a sketch to the
// mapped element. Negative indices address the sketch axes and external
// geometry.
func (m *Map) GeometryAtIndex(sketchID FeatureID, index int) (Mapped, error) {
	switch {
	case index >= 0:
		return m.ElementFor(SketchElementID{
			Feature: sketchID, List: ListGeometry, Index: index,
		})
	case index == XAxisIndex || index == YAxisIndex:
		return Mapped{}, fmt.Errorf("map: index %d is a sketch axis", index)
	default:
		pos, err := ExternalListPos(index)
		if err != nil {
			return Mapped{}, err
		}
		return m.ElementFor(SketchElementID{
			Feature: sketchID, List: ListExternals, Index: pos,
		})
	}
}

func (m *Map) sketchTable(sketchID FeatureID) *sketchTables {
	t, ok := m.sketches[sketchID]
	if !ok {
		t = &sketchTables{}
		m.sketches[sketchID] = t
	}
	return t
}
