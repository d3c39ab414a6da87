package freecad

import (
	"fmt"
	"math"

	"github.com/pancad/pancad/pkg/geometry"
)

// ToGeoEntry converts a 2D sketch element to its FreeCAD geometry entry.
func ToGeoEntry(g geometry.Geometry, construction bool) (GeoEntry, error) {
	switch el := g.(type) {
	case *geometry.Point:
		return GeoEntry{
			Type:         GeomPoint,
			Construction: construction,
			Start:        el.Coords(),
		}, nil
	case *geometry.LineSegment:
		return GeoEntry{
			Type:         GeomLineSegment,
			Construction: construction,
			Start:        el.Start().Coords(),
			End:          el.End().Coords(),
		}, nil
	case *geometry.Circle:
		return GeoEntry{
			Type:         GeomCircle,
			Construction: construction,
			Center:       el.Center().Coords(),
			Radius:       el.Radius(),
		}, nil
	case *geometry.CircularArc:
		start, end, err := el.Angles()
		if err != nil {
			return GeoEntry{}, err
		}
		// FreeCAD arcs sweep counterclockwise from StartAngle to EndAngle.
		if el.Clockwise() {
			start, end = end, start
		}
		return GeoEntry{
			Type:         GeomArcOfCircle,
			Construction: construction,
			Center:       el.Center().Coords(),
			Radius:       el.Radius(),
			StartAngle:   start,
			EndAngle:     end,
		}, nil
	case *geometry.Ellipse:
		return GeoEntry{
			Type:         GeomEllipse,
			Construction: construction,
			Center:       el.Center().Coords(),
			MajorRadius:  el.SemiMajor(),
			MinorRadius:  el.SemiMinor(),
			MajorAxis:    el.MajorDirection(),
		}, nil
	default:
		return GeoEntry{}, fmt.Errorf("no FreeCAD form for %s elements", g.Kind())
	}
}

// FromGeoEntry converts a FreeCAD geometry entry back to a 2D sketch
// element.
func FromGeoEntry(e GeoEntry) (geometry.Geometry, error) {
	switch e.Type {
	case GeomPoint:
		return geometry.NewPoint(e.Start...)
	case GeomLineSegment:
		start, err := geometry.NewPoint(e.Start...)
		if err != nil {
			return nil, err
		}
		end, err := geometry.NewPoint(e.End...)
		if err != nil {
			return nil, err
		}
		return geometry.NewLineSegment(start, end)
	case GeomCircle:
		center, err := geometry.NewPoint(e.Center...)
		if err != nil {
			return nil, err
		}
		return geometry.NewCircle(center, e.Radius)
	case GeomArcOfCircle:
		center, err := geometry.NewPoint(e.Center...)
		if err != nil {
			return nil, err
		}
		start := geometry.MustPoint(
			center.X()+e.Radius*math.Cos(e.StartAngle),
			center.Y()+e.Radius*math.Sin(e.StartAngle),
		)
		end := geometry.MustPoint(
			center.X()+e.Radius*math.Cos(e.EndAngle),
			center.Y()+e.Radius*math.Sin(e.EndAngle),
		)
		return geometry.NewCircularArc(center, start, end, false)
	case GeomEllipse:
		center, err := geometry.NewPoint(e.Center...)
		if err != nil {
			return nil, err
		}
		return geometry.NewEllipse(center, e.MajorRadius, e.MinorRadius, e.MajorAxis)
	default:
		return nil, fmt.Errorf("unsupported FreeCAD geometry type %q", string(e.Type))
	}
}

// ellipseInternalEntries builds the internal geometry FreeCAD's
// exposeInternalGeometry creates for an ellipse: the major and minor axis
// lines and the two focus points, in that order.
func ellipseInternalEntries(el *geometry.Ellipse) []GeoEntry {
	center := el.Center()
	major := el.MajorDirection()
	minor := el.MinorDirection()
	a, b := el.SemiMajor(), el.SemiMinor()
	axisPoint := func(dir []float64, dist float64) []float64 {
		return []float64{center.X() + dist*dir[0], center.Y() + dist*dir[1]}
	}
	return []GeoEntry{
		{
			Type: GeomLineSegment, Construction: true,
			Start: axisPoint(major, -a), End: axisPoint(major, a),
		},
		{
			Type: GeomLineSegment, Construction: true,
			Start: axisPoint(minor, -b), End: axisPoint(minor, b),
		},
		{
			Type: GeomPoint, Construction: true,
			Start: el.FocalPlus().Coords(),
		},
		{
			Type: GeomPoint, Construction: true,
			Start: el.FocalMinus().Coords(),
		},
	}
}

// internalAlignmentConstraints builds the InternalAlignment constraints
// binding the internal entries at indices base+1 to base+4 to the ellipse
// at index base.
func internalAlignmentConstraints(base int) []ConstraintEntry {
	entries := make([]ConstraintEntry, 0, 4)
	alignments := []InternalAlignmentType{
		EllipseMajorDiameter, EllipseMinorDiameter, EllipseFocus1, EllipseFocus2,
	}
	for i, alignment := range alignments {
		sub := SubPartEdge
		if alignment == EllipseFocus1 || alignment == EllipseFocus2 {
			sub = SubPartStart
		}
		entries = append(entries, ConstraintEntry{
			Type:         FCInternalAlignment,
			Alignment:    alignment,
			First:        base + 1 + i,
			FirstPos:     sub,
			HasFirstPos:  sub != SubPartEdge,
			Second:       base,
			HasSecond:    true,
			SecondPos:    SubPartEdge,
			HasSecondPos: false,
		})
	}
	return entries
}
