package freecad

import (
	"fmt"

	"github.com/pancad/pancad/pkg/feature"
	"github.com/pancad/pancad/pkg/geometry"
)

// originPositionRefs lists what each origin sub-feature position stands
// for on a coordinate system: the three axes, then the three planes.
var originPositionRefs = []geometry.ConstraintReference{
	geometry.RefX, geometry.RefY, geometry.RefZ,
	geometry.RefXY, geometry.RefXZ, geometry.RefYZ,
}

// planeNames pairs sketch placement planes with FreeCAD's origin plane
// names.
var planeNames = map[geometry.ConstraintReference]string{
	geometry.RefXY: "XY_Plane",
	geometry.RefXZ: "XZ_Plane",
	geometry.RefYZ: "YZ_Plane",
}

func planeRefFor(name string) (geometry.ConstraintReference, error) {
	for ref, have := range planeNames {
		if have == name {
			return ref, nil
		}
	}
	return 0, fmt.Errorf("unknown attachment plane %q", name)
}

// PartToDocument converts a part file to a FreeCAD document: a body
// grouping an origin, one sketch object per sketch and one pad per
// extrude. The returned map ties every written element back to its
// PanCAD uid.
func PartToDocument(p *feature.PartFile) (*Document, *Map, error) {
	doc := &Document{Name: p.Metadata.Title}
	m := NewMap()

	body := &Object{Type: ObjectBody, Name: "Body", Body: &BodyObject{}}
	doc.AddObject(body)

	var originID FeatureID
	for _, f := range p.Features() {
		var obj *Object
		var err error
		switch ft := f.(type) {
		case *feature.CoordinateSystemFeature:
			obj, err = writeOrigin(m, doc, ft)
			if err == nil {
				originID = obj.ID
			}
		case *feature.Sketch:
			obj, err = writeSketch(m, doc, ft, originID)
		case *feature.Extrude:
			obj, err = writePad(m, doc, ft)
		default:
			err = fmt.Errorf("feature %q has no FreeCAD form", f.UID())
		}
		if err != nil {
			return nil, nil, err
		}
		body.Body.Group = append(body.Body.Group, obj.ID)
	}
	return doc, m, nil
}

func writeOrigin(m *Map, doc *Document, f *feature.CoordinateSystemFeature) (*Object, error) {
	obj := &Object{Type: ObjectOrigin, Name: f.UID(), Origin: DefaultOrigin()}
	id := doc.AddObject(obj)
	if err := m.Register(f.UID(), id, f, geometry.RefCore); err != nil {
		return nil, err
	}
	for pos, ref := range originPositionRefs {
		resolved, err := f.GetReference(ref)
		if err != nil {
			return nil, err
		}
		m.registerInverseOnly(SubFeatureID{Feature: id, Position: pos}, resolved, ref)
	}
	return obj, nil
}

func writeSketch(m *Map, doc *Document, sk *feature.Sketch, originID FeatureID) (*Object, error) {
	so := &SketchObject{
		Support:         originID,
		AttachmentPlane: planeNames[sk.PlaneReference()],
	}
	obj := &Object{Type: ObjectSketch, Name: sk.UID(), Sketch: so}
	id := doc.AddObject(obj)
	if err := m.Register(sk.UID(), id, sk, geometry.RefCore); err != nil {
		return nil, err
	}

	// Internal alignment constraints collected while writing geometry go
	// first in the constraint list, the way FreeCAD appends them when
	// exposing internal geometry.
	var alignments []ConstraintEntry

	for i, g := range sk.Geometry() {
		index := len(so.Geometry)
		entry, err := ToGeoEntry(g, sk.IsConstruction(i))
		if err != nil {
			return nil, err
		}
		so.Geometry = append(so.Geometry, entry)
		if err := m.RegisterSketchGeometry(id, index, g, geometry.RefCore); err != nil {
			return nil, err
		}
		el, ok := g.(*geometry.Ellipse)
		if !ok {
			continue
		}
		// An ellipse carries four internal entries, advancing the next
		// free index by five in total.
		m.RegisterEllipseInternal(id, index, el)
		so.Geometry = append(so.Geometry, ellipseInternalEntries(el)...)
		alignments = append(alignments, internalAlignmentConstraints(index)...)
	}

	for pos, g := range sk.Externals() {
		entry, err := ToGeoEntry(g, true)
		if err != nil {
			return nil, err
		}
		so.ExternalGeo = append(so.ExternalGeo, entry)
		if err := m.RegisterSketchExternal(id, pos, g); err != nil {
			return nil, err
		}
	}

	for _, entry := range alignments {
		ci := len(so.Constraints)
		so.Constraints = append(so.Constraints, entry)
		if err := m.RegisterSketchConstraint(id, ci, "", nil); err != nil {
			return nil, err
		}
	}
	for _, c := range sk.Constraints() {
		entry, err := ToConstraintEntry(m, id, c)
		if err != nil {
			return nil, err
		}
		ci := len(so.Constraints)
		so.Constraints = append(so.Constraints, entry)
		if err := m.RegisterSketchConstraint(id, ci, c.UID(), c); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func writePad(m *Map, doc *Document, ex *feature.Extrude) (*Object, error) {
	padType, midplane, reversed, err := PadTypeFor(ex.LengthType())
	if err != nil {
		return nil, err
	}
	profileID, err := m.IDFor(ex.Profile().UID())
	if err != nil {
		return nil, err
	}
	sketchID, ok := profileID.(FeatureID)
	if !ok {
		return nil, fmt.Errorf("extrude profile %q is not a document object",
			ex.Profile().UID())
	}
	obj := &Object{Type: ObjectPad, Name: ex.UID(), Pad: &PadObject{
		Profile:  sketchID,
		Type:     padType,
		Length:   ex.Length(),
		Length2:  ex.OppositeLength(),
		Midplane: midplane,
		Reversed: reversed,
	}}
	id := doc.AddObject(obj)
	if err := m.Register(ex.UID(), id, ex, geometry.RefCore); err != nil {
		return nil, err
	}
	return obj, nil
}

// DocumentToPart converts a FreeCAD document back to a part file. The
// document's object names carry PanCAD uids when PanCAD wrote it, so a
// round trip preserves identity.
func DocumentToPart(doc *Document) (*feature.PartFile, *Map, error) {
	p := feature.NewPartFile(doc.Name)
	m := NewMap()

	for _, obj := range doc.Objects {
		var err error
		switch obj.Type {
		case ObjectBody:
			// Grouping only; membership is implied by the part itself.
		case ObjectOrigin:
			err = readOrigin(m, p, obj)
		case ObjectSketch:
			err = readSketch(m, p, obj)
		case ObjectPad:
			err = readPad(m, p, obj)
		default:
			err = fmt.Errorf("unsupported FreeCAD object type %q", string(obj.Type))
		}
		if err != nil {
			return nil, nil, err
		}
	}
	return p, m, nil
}

func readOrigin(m *Map, p *feature.PartFile, obj *Object) error {
	origin := p.Origin()
	if obj.Name != "" {
		origin.SetUID(obj.Name)
	}
	if err := m.Register(origin.UID(), obj.ID, origin, geometry.RefCore); err != nil {
		return err
	}
	for pos, ref := range originPositionRefs {
		resolved, err := origin.GetReference(ref)
		if err != nil {
			return err
		}
		m.registerInverseOnly(SubFeatureID{Feature: obj.ID, Position: pos}, resolved, ref)
	}
	return nil
}

func readSketch(m *Map, p *feature.PartFile, obj *Object) error {
	so := obj.Sketch
	planeRef, err := planeRefFor(so.AttachmentPlane)
	if err != nil {
		return err
	}
	sk, err := p.AddSketch(planeRef)
	if err != nil {
		return err
	}
	if obj.Name != "" {
		sk.SetUID(obj.Name)
	}
	if err := m.Register(sk.UID(), obj.ID, sk, geometry.RefCore); err != nil {
		return err
	}

	// Entries bound by internal alignment constraints are derived ellipse
	// geometry and never become standalone elements.
	internal := make(map[int]bool)
	for _, ce := range so.Constraints {
		if ce.Type == FCInternalAlignment {
			internal[ce.First] = true
		}
	}

	for index, entry := range so.Geometry {
		if internal[index] {
			if err := m.RegisterSketchGeometry(obj.ID, index, nil, geometry.RefCore); err != nil {
				return err
			}
			continue
		}
		g, err := FromGeoEntry(entry)
		if err != nil {
			return err
		}
		if err := sk.AddGeometry(g, entry.Construction); err != nil {
			return err
		}
		if err := m.RegisterSketchGeometry(obj.ID, index, g, geometry.RefCore); err != nil {
			return err
		}
	}

	// Bind each internal entry back to its ellipse before decoding
	// constraints, so references to internal geometry resolve.
	for _, ce := range so.Constraints {
		if ce.Type != FCInternalAlignment {
			continue
		}
		mapped, err := m.GeometryAtIndex(obj.ID, ce.Second)
		if err != nil {
			return err
		}
		el, ok := mapped.Element.(*geometry.Ellipse)
		if !ok {
			return fmt.Errorf("internal alignment targets %T, not an ellipse", mapped.Element)
		}
		if _, have := m.EllipseBase(obj.ID, el.UID()); !have {
			m.RegisterEllipseInternal(obj.ID, ce.Second, el)
		}
	}

	for pos, entry := range so.ExternalGeo {
		g, err := FromGeoEntry(entry)
		if err != nil {
			return err
		}
		if err := sk.AddExternal(g); err != nil {
			return err
		}
		if err := m.RegisterSketchExternal(obj.ID, pos, g); err != nil {
			return err
		}
	}

	for ci, ce := range so.Constraints {
		if ce.Type == FCInternalAlignment {
			if err := m.RegisterSketchConstraint(obj.ID, ci, "", nil); err != nil {
				return err
			}
			continue
		}
		c, err := FromConstraintEntry(m, obj.ID, sk, ce)
		if err != nil {
			return err
		}
		if err := sk.AddConstraint(c); err != nil {
			return err
		}
		if err := m.RegisterSketchConstraint(obj.ID, ci, c.UID(), c); err != nil {
			return err
		}
	}
	return nil
}

func readPad(m *Map, p *feature.PartFile, obj *Object) error {
	pad := obj.Pad
	mapped, err := m.ElementFor(pad.Profile)
	if err != nil {
		return err
	}
	profile, ok := mapped.Element.(*feature.Sketch)
	if !ok {
		return fmt.Errorf("pad profile %s is %T, not a sketch", pad.Profile, mapped.Element)
	}
	lt, err := pad.Type.LengthType(pad.Midplane, pad.Reversed)
	if err != nil {
		return err
	}
	ex, err := feature.NewExtrude(profile, lt, pad.Length, pad.Length2)
	if err != nil {
		return err
	}
	if obj.Name != "" {
		ex.SetUID(obj.Name)
	}
	if err := p.AddFeature(ex); err != nil {
		return err
	}
	return m.Register(ex.UID(), obj.ID, ex, geometry.RefCore)
}
