package freecad

import (
	"fmt"

	"github.com/pancad/pancad/pkg/constraint"
	"github.com/pancad/pancad/pkg/feature"
	"github.com/pancad/pancad/pkg/geometry"
)

// MillimeterUnit is the length unit FreeCAD documents store values in.
const MillimeterUnit = "mm"

// constraintInput is one resolved (index, sub-part) slot of a FreeCAD
// constraint entry.
type constraintInput struct {
	index  int
	sub    EdgeSubPart
	hasPos bool
}

// encodeConstraintInput converts a constraint target, a parent element
// and the reference on it, to FreeCAD's index and sub-part form.
func encodeConstraintInput(m *Map, sketchID FeatureID,
	parent geometry.Geometry, ref geometry.ConstraintReference) (constraintInput, error) {
	if parent.Kind() == geometry.KindSketch {
		switch ref {
		case geometry.RefX:
			return constraintInput{index: XAxisIndex, sub: SubPartEdge}, nil
		case geometry.RefCenter:
			return constraintInput{index: XAxisIndex, sub: SubPartStart, hasPos: true}, nil
		case geometry.RefY:
			return constraintInput{index: YAxisIndex, sub: SubPartEdge}, nil
		default:
			return constraintInput{}, fmt.Errorf(
				"sketch reference %q has no FreeCAD form", ref)
		}
	}
	if el, ok := parent.(*geometry.Ellipse); ok {
		return encodeEllipseInput(m, sketchID, el, ref)
	}
	index, err := m.GeometryIndexFor(sketchID, parent.UID())
	if err != nil {
		return constraintInput{}, err
	}
	if parent.Kind() == geometry.KindPoint {
		// A GeomPoint's vertex is its start position.
		return constraintInput{index: index, sub: SubPartStart, hasPos: true}, nil
	}
	sub, err := SubPartFor(ref)
	if err != nil {
		return constraintInput{}, err
	}
	return constraintInput{index: index, sub: sub, hasPos: sub != SubPartEdge}, nil
}

// encodeEllipseInput addresses an ellipse reference through the ellipse
// entry itself or one of its internal geometry entries.
func encodeEllipseInput(m *Map, sketchID FeatureID,
	el *geometry.Ellipse, ref geometry.ConstraintReference) (constraintInput, error) {
	base, ok := m.EllipseBase(sketchID, el.UID())
	if !ok {
		return constraintInput{}, fmt.Errorf(
			"ellipse %q has no internal geometry registered", el.UID())
	}
	switch ref {
	case geometry.RefCore:
		return constraintInput{index: base, sub: SubPartEdge}, nil
	case geometry.RefCenter:
		return constraintInput{index: base, sub: SubPartCenter, hasPos: true}, nil
	case geometry.RefX:
		return constraintInput{index: base + 1, sub: SubPartEdge}, nil
	case geometry.RefXMax:
		return constraintInput{index: base + 1, sub: SubPartStart, hasPos: true}, nil
	case geometry.RefXMin:
		return constraintInput{index: base + 1, sub: SubPartEnd, hasPos: true}, nil
	case geometry.RefY:
		return constraintInput{index: base + 2, sub: SubPartEdge}, nil
	case geometry.RefYMax:
		return constraintInput{index: base + 2, sub: SubPartStart, hasPos: true}, nil
	case geometry.RefYMin:
		return constraintInput{index: base + 2, sub: SubPartEnd, hasPos: true}, nil
	case geometry.RefFocalPlus:
		return constraintInput{index: base + 3, sub: SubPartStart, hasPos: true}, nil
	case geometry.RefFocalMinus:
		return constraintInput{index: base + 4, sub: SubPartStart, hasPos: true}, nil
	default:
		return constraintInput{}, &geometry.ReferenceError{
			Kind: geometry.KindEllipse, Ref: ref,
		}
	}
}

// ToConstraintEntry converts a PanCAD constraint to its FreeCAD sketch
// constraint entry. The constraint's uid is carried in the entry name so
// reading the document back restores it.
func ToConstraintEntry(m *Map, sketchID FeatureID, c constraint.Constraint) (ConstraintEntry, error) {
	parents := c.Geometry()
	refs := c.References()
	inputs := make([]constraintInput, len(parents))
	for i, parent := range parents {
		in, err := encodeConstraintInput(m, sketchID, parent, refs[i])
		if err != nil {
			return ConstraintEntry{}, err
		}
		inputs[i] = in
	}

	entry := ConstraintEntry{
		Name:   c.UID(),
		First:  NoInput,
		Second: NoInput,
	}

	switch c.Type() {
	case constraint.TypeCoincident:
		resolved := c.Resolved()
		_, firstIsPoint := resolved[0].(*geometry.Point)
		_, secondIsPoint := resolved[1].(*geometry.Point)
		if firstIsPoint != secondIsPoint {
			// Point on an edge is a separate FreeCAD constraint type. The
			// point goes first, the edge is addressed without a sub-part.
			pt, edge := inputs[0], inputs[1]
			if secondIsPoint {
				pt, edge = inputs[1], inputs[0]
			}
			entry.Type = FCPointOnObject
			setFirst(&entry, pt)
			entry.Second = edge.index
			entry.HasSecond = true
			return entry, nil
		}
		entry.Type = FCCoincident
		setFirst(&entry, inputs[0])
		setSecond(&entry, inputs[1])
		return entry, nil

	case constraint.TypeEqual, constraint.TypeParallel,
		constraint.TypePerpendicular, constraint.TypeTangent:
		entry.Type = map[constraint.Type]ConstraintType{
			constraint.TypeEqual:         FCEqual,
			constraint.TypeParallel:      FCParallel,
			constraint.TypePerpendicular: FCPerpendicular,
			constraint.TypeTangent:       FCTangent,
		}[c.Type()]
		entry.First = inputs[0].index
		entry.Second = inputs[1].index
		entry.HasSecond = true
		return entry, nil

	case constraint.TypeHorizontal, constraint.TypeVertical:
		entry.Type = FCHorizontal
		if c.Type() == constraint.TypeVertical {
			entry.Type = FCVertical
		}
		if len(inputs) == 1 {
			entry.First = inputs[0].index
			return entry, nil
		}
		setFirst(&entry, inputs[0])
		setSecond(&entry, inputs[1])
		return entry, nil

	case constraint.TypeDistanceRadius, constraint.TypeDistanceDiameter:
		entry.Type = FCRadius
		if c.Type() == constraint.TypeDistanceDiameter {
			entry.Type = FCDiameter
		}
		entry.First = inputs[0].index
		entry.Value = constraintValue(c)
		return entry, nil

	case constraint.TypeDistance:
		entry.Type = FCDistance
		entry.Value = constraintValue(c)
		if len(inputs) == 1 {
			entry.First = inputs[0].index
			return entry, nil
		}
		if isSegmentCorePair(c) {
			// FreeCAD writes an edge to edge distance with three inputs:
			// the first edge's start vertex, then the second edge with no
			// sub-part.
			entry.First = inputs[0].index
			entry.FirstPos = SubPartStart
			entry.HasFirstPos = true
			entry.Second = inputs[1].index
			entry.HasSecond = true
			return entry, nil
		}
		setFirst(&entry, inputs[0])
		setSecond(&entry, inputs[1])
		return entry, nil

	case constraint.TypeDistanceHorizontal, constraint.TypeDistanceVertical:
		entry.Type = FCDistanceX
		if c.Type() == constraint.TypeDistanceVertical {
			entry.Type = FCDistanceY
		}
		entry.Value = constraintValue(c)
		setFirst(&entry, inputs[0])
		if len(inputs) > 1 {
			setSecond(&entry, inputs[1])
		}
		return entry, nil

	case constraint.TypeAngle:
		ac, ok := c.(*constraint.AngleConstraint)
		if !ok {
			return ConstraintEntry{}, fmt.Errorf("angle constraint has unexpected type %T", c)
		}
		entry.Type = FCAngle
		entry.Value = ac.Radians()
		entry.HasSecond = true
		entry.HasFirstPos = true
		entry.HasSecondPos = true
		switch ac.Quadrant() {
		case 1:
			entry.First, entry.FirstPos = inputs[0].index, SubPartStart
			entry.Second, entry.SecondPos = inputs[1].index, SubPartStart
		case 2:
			entry.First, entry.FirstPos = inputs[1].index, SubPartStart
			entry.Second, entry.SecondPos = inputs[0].index, SubPartEnd
		case 3:
			entry.First, entry.FirstPos = inputs[0].index, SubPartEnd
			entry.Second, entry.SecondPos = inputs[1].index, SubPartStart
		case 4:
			entry.First, entry.FirstPos = inputs[1].index, SubPartStart
			entry.Second, entry.SecondPos = inputs[0].index, SubPartStart
		default:
			return ConstraintEntry{}, fmt.Errorf("angle quadrant %d out of range", ac.Quadrant())
		}
		return entry, nil

	default:
		return ConstraintEntry{}, &geometry.CapabilityError{
			Capability: fmt.Sprintf("%s constraints in FreeCAD documents", c.Type()),
		}
	}
}

func setFirst(e *ConstraintEntry, in constraintInput) {
	e.First = in.index
	e.FirstPos = in.sub
	e.HasFirstPos = in.hasPos
}

func setSecond(e *ConstraintEntry, in constraintInput) {
	e.Second = in.index
	e.SecondPos = in.sub
	e.HasSecondPos = in.hasPos
	e.HasSecond = true
}

// constraintValue extracts the dimension of a value constraint.
func constraintValue(c constraint.Constraint) float64 {
	if v, ok := c.(interface{ Value() float64 }); ok {
		return v.Value()
	}
	return 0
}

// isSegmentCorePair reports whether both targets resolve to whole line
// segments.
func isSegmentCorePair(c constraint.Constraint) bool {
	resolved := c.Resolved()
	if len(resolved) != 2 {
		return false
	}
	for _, r := range resolved {
		if _, ok := r.(*geometry.LineSegment); !ok {
			return false
		}
	}
	return true
}

// decodeConstraintInput resolves one FreeCAD constraint slot to the
// parent element and the reference on it.
func decodeConstraintInput(m *Map, sketchID FeatureID, sk *feature.Sketch,
	index int, sub EdgeSubPart, hasPos bool) (geometry.Geometry, geometry.ConstraintReference, error) {
	if index == XAxisIndex || index == YAxisIndex {
		axis := geometry.RefX
		if index == YAxisIndex {
			axis = geometry.RefY
		}
		if !hasPos {
			sub = SubPartEdge
		}
		ref, err := SketchAxisReference(axis, sub)
		if err != nil {
			return nil, 0, err
		}
		return sk, ref, nil
	}
	mapped, err := m.GeometryAtIndex(sketchID, index)
	if err != nil {
		return nil, 0, err
	}
	parent, ok := mapped.Element.(geometry.Geometry)
	if !ok {
		return nil, 0, fmt.Errorf("index %d maps to %T, not geometry", index, mapped.Element)
	}
	if mapped.Reference != geometry.RefCore {
		// Internal ellipse entry: the sub-part picks the vertex of the
		// internal element, which stands for an ellipse reference.
		if !hasPos {
			sub = SubPartEdge
		}
		ref, err := internalEntryReference(mapped.Reference, sub)
		if err != nil {
			return nil, 0, err
		}
		return parent, ref, nil
	}
	if parent.Kind() == geometry.KindPoint {
		return parent, geometry.RefCore, nil
	}
	if !hasPos {
		return parent, geometry.RefCore, nil
	}
	ref, err := sub.Reference()
	if err != nil {
		return nil, 0, err
	}
	return parent, ref, nil
}

// internalEntryReference combines what an internal entry stands for with
// the addressed sub-part of it.
func internalEntryReference(entryRef geometry.ConstraintReference, sub EdgeSubPart) (geometry.ConstraintReference, error) {
	switch entryRef {
	case geometry.RefX:
		switch sub {
		case SubPartEdge:
			return geometry.RefX, nil
		case SubPartStart:
			return geometry.RefXMax, nil
		case SubPartEnd:
			return geometry.RefXMin, nil
		}
	case geometry.RefY:
		switch sub {
		case SubPartEdge:
			return geometry.RefY, nil
		case SubPartStart:
			return geometry.RefYMax, nil
		case SubPartEnd:
			return geometry.RefYMin, nil
		}
	case geometry.RefFocalPlus, geometry.RefFocalMinus:
		if sub == SubPartStart {
			return entryRef, nil
		}
	}
	return 0, fmt.Errorf("sub-part %q has no meaning on internal entry %q", sub, entryRef)
}

// FromConstraintEntry converts a FreeCAD sketch constraint entry back to
// a PanCAD constraint. InternalAlignment entries carry no constraint of
// their own and must be filtered out by the caller.
func FromConstraintEntry(m *Map, sketchID FeatureID, sk *feature.Sketch,
	e ConstraintEntry) (constraint.Constraint, error) {
	if e.Type == FCInternalAlignment {
		return nil, fmt.Errorf("internal alignment entries define ellipse geometry, not constraints")
	}

	p := constraint.Params{UID: e.Name}

	decode := func(index int, sub EdgeSubPart, hasPos bool) (geometry.Geometry, geometry.ConstraintReference, error) {
		return decodeConstraintInput(m, sketchID, sk, index, sub, hasPos)
	}

	switch e.Type {
	case FCCoincident:
		a, refA, err := decode(e.First, e.FirstPos, e.HasFirstPos)
		if err != nil {
			return nil, err
		}
		b, refB, err := decode(e.Second, e.SecondPos, e.HasSecondPos)
		if err != nil {
			return nil, err
		}
		return constraint.Make(constraint.TypeCoincident, a, refA, b, refB, p)

	case FCPointOnObject:
		a, refA, err := decode(e.First, e.FirstPos, e.HasFirstPos)
		if err != nil {
			return nil, err
		}
		b, refB, err := decode(e.Second, SubPartEdge, false)
		if err != nil {
			return nil, err
		}
		return constraint.Make(constraint.TypeCoincident, a, refA, b, refB, p)

	case FCEqual, FCParallel, FCPerpendicular, FCTangent:
		ctype := map[ConstraintType]constraint.Type{
			FCEqual:         constraint.TypeEqual,
			FCParallel:      constraint.TypeParallel,
			FCPerpendicular: constraint.TypePerpendicular,
			FCTangent:       constraint.TypeTangent,
		}[e.Type]
		a, refA, err := decode(e.First, SubPartEdge, false)
		if err != nil {
			return nil, err
		}
		b, refB, err := decode(e.Second, SubPartEdge, false)
		if err != nil {
			return nil, err
		}
		return constraint.Make(ctype, a, refA, b, refB, p)

	case FCHorizontal, FCVertical:
		ctype := constraint.TypeHorizontal
		if e.Type == FCVertical {
			ctype = constraint.TypeVertical
		}
		a, refA, err := decode(e.First, e.FirstPos, e.HasFirstPos)
		if err != nil {
			return nil, err
		}
		if !e.HasSecond {
			return constraint.Make(ctype, a, refA, nil, 0, p)
		}
		b, refB, err := decode(e.Second, e.SecondPos, e.HasSecondPos)
		if err != nil {
			return nil, err
		}
		return constraint.Make(ctype, a, refA, b, refB, p)

	case FCRadius, FCDiameter:
		ctype := constraint.TypeDistanceRadius
		if e.Type == FCDiameter {
			ctype = constraint.TypeDistanceDiameter
		}
		a, refA, err := decode(e.First, SubPartEdge, false)
		if err != nil {
			return nil, err
		}
		p.Value = e.Value
		p.Unit = MillimeterUnit
		return constraint.Make(ctype, a, refA, nil, 0, p)

	case FCDistance:
		p.Value = e.Value
		p.Unit = MillimeterUnit
		if !e.HasSecond {
			a, refA, err := decode(e.First, SubPartEdge, false)
			if err != nil {
				return nil, err
			}
			return constraint.Make(constraint.TypeDistance, a, refA, nil, 0, p)
		}
		if e.HasFirstPos && e.FirstPos == SubPartStart && !e.HasSecondPos &&
			isSegmentIndex(m, sketchID, e.First) && isSegmentIndex(m, sketchID, e.Second) {
			// Three-input edge to edge form written by FreeCAD: both sides
			// mean the whole segment.
			a, refA, err := decode(e.First, SubPartEdge, false)
			if err != nil {
				return nil, err
			}
			b, refB, err := decode(e.Second, SubPartEdge, false)
			if err != nil {
				return nil, err
			}
			return constraint.Make(constraint.TypeDistance, a, refA, b, refB, p)
		}
		a, refA, err := decode(e.First, e.FirstPos, e.HasFirstPos)
		if err != nil {
			return nil, err
		}
		b, refB, err := decode(e.Second, e.SecondPos, e.HasSecondPos)
		if err != nil {
			return nil, err
		}
		return constraint.Make(constraint.TypeDistance, a, refA, b, refB, p)

	case FCDistanceX, FCDistanceY:
		ctype := constraint.TypeDistanceHorizontal
		if e.Type == FCDistanceY {
			ctype = constraint.TypeDistanceVertical
		}
		p.Value = e.Value
		p.Unit = MillimeterUnit
		a, refA, err := decode(e.First, e.FirstPos, e.HasFirstPos)
		if err != nil {
			return nil, err
		}
		if !e.HasSecond {
			return constraint.Make(ctype, a, refA, nil, 0, p)
		}
		b, refB, err := decode(e.Second, e.SecondPos, e.HasSecondPos)
		if err != nil {
			return nil, err
		}
		return constraint.Make(ctype, a, refA, b, refB, p)

	case FCAngle:
		p.Value = e.Value
		p.Radians = true
		a, refA, err := decode(e.First, SubPartEdge, false)
		if err != nil {
			return nil, err
		}
		b, refB, err := decode(e.Second, SubPartEdge, false)
		if err != nil {
			return nil, err
		}
		switch {
		case e.FirstPos == SubPartStart && e.SecondPos == SubPartEnd:
			p.Quadrant = 2
			a, refA, b, refB = b, refB, a, refA
		case e.FirstPos == SubPartEnd && e.SecondPos == SubPartStart:
			p.Quadrant = 3
		default:
			// Start and start is written for the first and fourth
			// quadrants alike; the first is assumed when reading.
			p.Quadrant = 1
		}
		return constraint.Make(constraint.TypeAngle, a, refA, b, refB, p)

	default:
		return nil, fmt.Errorf("unsupported FreeCAD constraint type %q", string(e.Type))
	}
}

// isSegmentIndex reports whether a non-negative geometry index holds a
// line segment.
func isSegmentIndex(m *Map, sketchID FeatureID, index int) bool {
	if index < 0 {
		return false
	}
	mapped, err := m.GeometryAtIndex(sketchID, index)
	if err != nil {
		return false
	}
	_, ok := mapped.Element.(*geometry.LineSegment)
	return ok
}
