// Package svg renders 2D sketches as SVG drawings. Sketch geometry
// crosses into this package as a flat list of records carrying only
// primitive numeric fields, so the renderer never touches constraints,
// features or the mapping layer.
package svg

import (
	"fmt"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/pancad/pancad/pkg/feature"
	"github.com/pancad/pancad/pkg/geometry"
)

// Geometry type tags of flat records.
const (
	TypeLine        = "line"
	TypeCircle      = "circle"
	TypeCircularArc = "circular_arc"
	TypePoint       = "point"
	TypeEllipse     = "ellipse"
)

// Record is one sketch element flattened to primitive fields. Which
// fields are meaningful depends on Type.
type Record struct {
	Type         string
	UID          string
	Construction bool

	// X1, Y1, X2, Y2 are line endpoints.
	X1, Y1, X2, Y2 float64
	// CX, CY and R describe circles and arcs.
	CX, CY, R float64
	// StartX, StartY, EndX, EndY are arc endpoints.
	StartX, StartY float64
	EndX, EndY     float64
	Clockwise      bool
	// RX, RY and Rotation describe an ellipse, with Rotation in radians.
	RX, RY, Rotation float64
	// X and Y locate a point.
	X, Y float64
}

// Records flattens the sketch's 2D elements in order.
func Records(sk *feature.Sketch) ([]Record, error) {
	elements := sk.Geometry()
	out := make([]Record, 0, len(elements))
	for i, g := range elements {
		r, err := recordFor(g)
		if err != nil {
			return nil, err
		}
		r.UID = g.UID()
		r.Construction = sk.IsConstruction(i)
		out = append(out, r)
	}
	return out, nil
}

func recordFor(g geometry.Geometry) (Record, error) {
	switch el := g.(type) {
	case *geometry.Point:
		return Record{Type: TypePoint, X: el.X(), Y: el.Y()}, nil
	case *geometry.LineSegment:
		return Record{
			Type: TypeLine,
			X1:   el.Start().X(), Y1: el.Start().Y(),
			X2: el.End().X(), Y2: el.End().Y(),
		}, nil
	case *geometry.Circle:
		return Record{
			Type: TypeCircle,
			CX:   el.Center().X(), CY: el.Center().Y(), R: el.Radius(),
		}, nil
	case *geometry.CircularArc:
		return Record{
			Type: TypeCircularArc,
			CX:   el.Center().X(), CY: el.Center().Y(), R: el.Radius(),
			StartX: el.Start().X(), StartY: el.Start().Y(),
			EndX: el.End().X(), EndY: el.End().Y(),
			Clockwise: el.Clockwise(),
		}, nil
	case *geometry.Ellipse:
		dir := el.MajorDirection()
		return Record{
			Type: TypeEllipse,
			CX:   el.Center().X(), CY: el.Center().Y(),
			RX: el.SemiMajor(), RY: el.SemiMinor(),
			Rotation: phiOf(dir),
		}, nil
	default:
		return Record{}, fmt.Errorf("svg: no record form for %s elements", g.Kind())
	}
}

// Options control the rendered drawing.
type Options struct {
	// Margin is added around the sketch bounds, in model units.
	Margin float64
	// Scale multiplies model units into SVG user units.
	Scale float64
	// StrokeWidth is the stroke width in SVG user units.
	StrokeWidth float64
	// IncludeConstruction renders construction geometry dashed instead of
	// omitting it.
	IncludeConstruction bool
}

// DefaultOptions returns the rendering defaults: a small margin, unit
// scale and dashed construction geometry included.
func DefaultOptions() Options {
	return Options{Margin: 5, Scale: 1, StrokeWidth: 0.5, IncludeConstruction: true}
}

const (
	profileStyle      = "fill:none;stroke:black"
	constructionStyle = "fill:none;stroke:gray;stroke-dasharray:4,2"
)

// WriteSketch renders the sketch's 2D geometry to w as a standalone SVG
// drawing. Model y points up; the drawing is flipped into SVG's y-down
// viewport.
func WriteSketch(w io.Writer, sk *feature.Sketch, opts Options) error {
	records, err := Records(sk)
	if err != nil {
		return err
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	minX, minY, maxX, maxY := bounds(records, opts.IncludeConstruction)
	minX -= opts.Margin
	minY -= opts.Margin
	maxX += opts.Margin
	maxY += opts.Margin
	width := (maxX - minX) * opts.Scale
	height := (maxY - minY) * opts.Scale

	canvas := svgo.New(w)
	canvas.Start(width, height)
	// Map model coordinates into the viewport: scale, then flip y.
	canvas.Gtransform(fmt.Sprintf("translate(%g,%g) scale(%g,%g)",
		-minX*opts.Scale, maxY*opts.Scale, opts.Scale, -opts.Scale))

	for _, r := range records {
		style := profileStyle
		if r.Construction {
			if !opts.IncludeConstruction {
				continue
			}
			style = constructionStyle
		}
		style += fmt.Sprintf(";stroke-width:%g", opts.StrokeWidth/opts.Scale)
		if err := drawRecord(canvas, r, style); err != nil {
			return err
		}
	}

	canvas.Gend()
	canvas.End()
	return nil
}

func drawRecord(canvas *svgo.SVG, r Record, style string) error {
	switch r.Type {
	case TypePoint:
		canvas.Circle(r.X, r.Y, 0.5, "fill:black;stroke:none")
	case TypeLine:
		canvas.Line(r.X1, r.Y1, r.X2, r.Y2, style)
	case TypeCircle:
		canvas.Circle(r.CX, r.CY, r.R, style)
	case TypeCircularArc:
		canvas.Path(ArcPath(r), style)
	case TypeEllipse:
		canvas.Gtransform(fmt.Sprintf("translate(%g,%g) rotate(%g)",
			r.CX, r.CY, r.Rotation*180/math.Pi))
		canvas.Ellipse(0, 0, r.RX, r.RY, style)
		canvas.Gend()
	default:
		return fmt.Errorf("svg: unknown record type %q", r.Type)
	}
	return nil
}
