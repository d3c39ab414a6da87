package svg

import (
	"fmt"
	"math"
)

// ArcPath builds the SVG path data for a circular arc record: a move to
// the start point followed by a single elliptical arc command.
func ArcPath(r Record) string {
	start := math.Atan2(r.StartY-r.CY, r.StartX-r.CX)
	end := math.Atan2(r.EndY-r.CY, r.EndX-r.CX)

	// Sweep extent in the drawing direction, normalized to (0, 2pi).
	var delta float64
	if r.Clockwise {
		delta = math.Mod(start-end+2*math.Pi, 2*math.Pi)
	} else {
		delta = math.Mod(end-start+2*math.Pi, 2*math.Pi)
	}

	largeArc := 0
	if delta > math.Pi {
		largeArc = 1
	}
	// Path data is written in model coordinates, where increasing angles
	// run counterclockwise.
	sweep := 1
	if r.Clockwise {
		sweep = 0
	}
	return fmt.Sprintf("M %g %g A %g %g 0 %d %d %g %g",
		r.StartX, r.StartY, r.R, r.R, largeArc, sweep, r.EndX, r.EndY)
}

// phiOf returns the azimuth angle of a 2D direction vector.
func phiOf(dir []float64) float64 {
	return math.Atan2(dir[1], dir[0])
}

// bounds computes the bounding box of the records, falling back to the
// unit box around the origin for empty sketches.
func bounds(records []Record, includeConstruction bool) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, r := range records {
		if r.Construction && !includeConstruction {
			continue
		}
		switch r.Type {
		case TypePoint:
			grow(r.X, r.Y)
		case TypeLine:
			grow(r.X1, r.Y1)
			grow(r.X2, r.Y2)
		case TypeCircle:
			grow(r.CX-r.R, r.CY-r.R)
			grow(r.CX+r.R, r.CY+r.R)
		case TypeCircularArc:
			// The full circle bounds the arc; exact arc bounds are not
			// worth the quadrant bookkeeping for a drawing margin.
			grow(r.CX-r.R, r.CY-r.R)
			grow(r.CX+r.R, r.CY+r.R)
		case TypeEllipse:
			m := math.Max(r.RX, r.RY)
			grow(r.CX-m, r.CY-m)
			grow(r.CX+m, r.CY+m)
		}
	}
	if minX > maxX {
		return -1, -1, 1, 1
	}
	return minX, minY, maxX, maxY
}
