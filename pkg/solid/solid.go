// Package solid turns part features into solid bodies using the sdfx
// geometry kernel. Sketch profiles become signed distance fields that are
// extruded, positioned on their sketch plane and tessellated to triangle
// meshes.
package solid

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/pancad/pancad/pkg/feature"
	"github.com/pancad/pancad/pkg/geometry"
	"github.com/pancad/pancad/pkg/numeric"
)

// arcFacets is the number of line segments an arc contributes to a
// profile polygon.
const arcFacets = 16

// ProfileError reports a sketch whose profile cannot form a solid.
type ProfileError struct {
	Sketch  string
	Message string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("sketch %q has no usable profile: %s", e.Sketch, e.Message)
}

// FromExtrude builds the solid body of an extrude feature. The profile
// must be a single closed loop of non-construction segments and arcs; a
// lone circle profile is also accepted.
func FromExtrude(ex *feature.Extrude) (sdf.SDF3, error) {
	profile, err := Profile(ex.Profile())
	if err != nil {
		return nil, err
	}
	body, err := extrudeProfile(profile, ex)
	if err != nil {
		return nil, err
	}
	return orientToPlane(body, ex.Profile().PlaneReference()), nil
}

// FromPart builds the union of all extrude features in a part.
func FromPart(p *feature.PartFile) (sdf.SDF3, error) {
	extrudes := p.Extrudes()
	if len(extrudes) == 0 {
		return nil, fmt.Errorf("part %q has no extrude features", p.Metadata.Title)
	}
	bodies := make([]sdf.SDF3, 0, len(extrudes))
	for _, ex := range extrudes {
		body, err := FromExtrude(ex)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	if len(bodies) == 1 {
		return bodies[0], nil
	}
	return sdf.Union3D(bodies...), nil
}

// Profile builds the 2D signed distance field of a sketch's profile
// geometry.
func Profile(sk *feature.Sketch) (sdf.SDF2, error) {
	elements := sk.NonConstructionGeometry()
	if len(elements) == 0 {
		return nil, &ProfileError{Sketch: sk.UID(), Message: "no profile geometry"}
	}

	// A single circle extrudes to a cylinder without any chaining.
	if len(elements) == 1 {
		if c, ok := elements[0].(*geometry.Circle); ok {
			s, err := sdf.Circle2D(c.Radius())
			if err != nil {
				return nil, err
			}
			m := sdf.Translate2d(v2.Vec{X: c.Center().X(), Y: c.Center().Y()})
			return sdf.Transform2D(s, m), nil
		}
	}

	points, err := chainLoop(sk, elements)
	if err != nil {
		return nil, err
	}
	return sdf.Polygon2D(points)
}

// edgePoints flattens one profile element into an ordered point run from
// its start to its end.
func edgePoints(g geometry.Geometry) ([]v2.Vec, error) {
	switch el := g.(type) {
	case *geometry.LineSegment:
		return []v2.Vec{
			{X: el.Start().X(), Y: el.Start().Y()},
			{X: el.End().X(), Y: el.End().Y()},
		}, nil
	case *geometry.CircularArc:
		start, end, err := el.Angles()
		if err != nil {
			return nil, err
		}
		var sweep float64
		if el.Clockwise() {
			sweep = -math.Mod(start-end+2*math.Pi, 2*math.Pi)
		} else {
			sweep = math.Mod(end-start+2*math.Pi, 2*math.Pi)
		}
		cx, cy := el.Center().X(), el.Center().Y()
		r := el.Radius()
		points := make([]v2.Vec, 0, arcFacets+1)
		for i := 0; i <= arcFacets; i++ {
			a := start + sweep*float64(i)/arcFacets
			points = append(points, v2.Vec{
				X: cx + r*math.Cos(a),
				Y: cy + r*math.Sin(a),
			})
		}
		return points, nil
	default:
		return nil, fmt.Errorf("%s elements cannot form a profile edge", g.Kind())
	}
}

func samePoint(a, b v2.Vec) bool {
	return numeric.IsClose(a.X, b.X) && numeric.IsClose(a.Y, b.Y)
}

func reversed(points []v2.Vec) []v2.Vec {
	out := make([]v2.Vec, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// chainLoop orders the profile edges into one closed loop and returns its
// polygon vertices.
func chainLoop(sk *feature.Sketch, elements []geometry.Geometry) ([]v2.Vec, error) {
	runs := make([][]v2.Vec, 0, len(elements))
	for _, g := range elements {
		run, err := edgePoints(g)
		if err != nil {
			return nil, &ProfileError{Sketch: sk.UID(), Message: err.Error()}
		}
		runs = append(runs, run)
	}

	loop := runs[0]
	used := make([]bool, len(runs))
	used[0] = true
	for remaining := len(runs) - 1; remaining > 0; remaining-- {
		tail := loop[len(loop)-1]
		found := false
		for i, run := range runs {
			if used[i] {
				continue
			}
			switch {
			case samePoint(run[0], tail):
				loop = append(loop, run[1:]...)
			case samePoint(run[len(run)-1], tail):
				rev := reversed(run)
				loop = append(loop, rev[1:]...)
			default:
				continue
			}
			used[i] = true
			found = true
			break
		}
		if !found {
			return nil, &ProfileError{
				Sketch:  sk.UID(),
				Message: fmt.Sprintf("open profile at (%g, %g)", tail.X, tail.Y),
			}
		}
	}

	if !samePoint(loop[0], loop[len(loop)-1]) {
		return nil, &ProfileError{Sketch: sk.UID(), Message: "profile loop does not close"}
	}
	return loop[:len(loop)-1], nil
}

// extrudeProfile sweeps the profile along z according to the extrude's
// length type. sdf.Extrude3D spreads the height symmetrically about z=0,
// so single-sided extrudes shift the body afterwards.
func extrudeProfile(profile sdf.SDF2, ex *feature.Extrude) (sdf.SDF3, error) {
	l, l2 := ex.Length(), ex.OppositeLength()
	switch ex.LengthType() {
	case feature.Dimension:
		return shiftZ(sdf.Extrude3D(profile, l), l/2), nil
	case feature.AntiDimension:
		return shiftZ(sdf.Extrude3D(profile, l), -l/2), nil
	case feature.Symmetric:
		return sdf.Extrude3D(profile, l), nil
	case feature.TwoDimensions:
		return shiftZ(sdf.Extrude3D(profile, l+l2), (l-l2)/2), nil
	case feature.AntiTwoDimensions:
		return shiftZ(sdf.Extrude3D(profile, l+l2), (l2-l)/2), nil
	default:
		return nil, fmt.Errorf("unknown length type %s", ex.LengthType())
	}
}

func shiftZ(s sdf.SDF3, dz float64) sdf.SDF3 {
	if dz == 0 {
		return s
	}
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: 0, Y: 0, Z: dz}))
}

// orientToPlane rotates an extruded body from the xy plane onto the
// sketch's placement plane.
func orientToPlane(s sdf.SDF3, plane geometry.ConstraintReference) sdf.SDF3 {
	switch plane {
	case geometry.RefXZ:
		// Sketch u stays on x, sketch v maps to z.
		return sdf.Transform3D(s, sdf.RotateX(math.Pi/2))
	case geometry.RefYZ:
		// Sketch u maps to y, sketch v maps to z.
		m := sdf.RotateZ(math.Pi / 2).Mul(sdf.RotateX(math.Pi / 2))
		return sdf.Transform3D(s, m)
	default:
		return s
	}
}
