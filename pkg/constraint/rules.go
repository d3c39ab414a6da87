package constraint

import "github.com/pancad/pancad/pkg/geometry"

// kindSet is a set of geometry kinds.
type kindSet map[geometry.Kind]bool

func kinds(ks ...geometry.Kind) kindSet {
	s := make(kindSet, len(ks))
	for _, k := range ks {
		s[k] = true
	}
	return s
}

// forbiddenPair marks two resolved kind sets a constraint type cannot
// combine. Pairs are symmetric; both orders are tried.
type forbiddenPair struct {
	a, b kindSet
	hint string
}

// ruleSet is the legality table for one constraint type.
type ruleSet struct {
	// parents are the element kinds the constraint may be created on.
	parents kindSet
	// resolved are the kinds a reference may resolve to.
	resolved kindSet
	// forbidden lists resolved kind combinations that are never legal.
	forbidden []forbiddenPair
	// dim2Only restricts the constraint to 2D elements.
	dim2Only bool
}

var (
	edgeKinds = kinds(geometry.KindLine, geometry.KindLineSegment)
	// edgeLikeKinds adds planes, which behave like edges for tangency.
	edgeLikeKinds = kinds(geometry.KindLine, geometry.KindLineSegment,
		geometry.KindPlane)
	circleKinds = kinds(geometry.KindCircle)
)

// rules maps each constraint type to its legality table. Snap-to
// constraints validate their own form and are absent here.
var rules = map[Type]ruleSet{
	TypeCoincident: {
		parents: kinds(geometry.KindCircle, geometry.KindCoordinateSystem,
			geometry.KindLine, geometry.KindLineSegment, geometry.KindPlane,
			geometry.KindPoint, geometry.KindSketch),
		resolved: kinds(geometry.KindCircle, geometry.KindLine,
			geometry.KindLineSegment, geometry.KindPlane, geometry.KindPoint),
		forbidden: []forbiddenPair{
			{a: edgeKinds, b: circleKinds},
		},
	},
	TypeEqual: {
		parents:  kinds(geometry.KindLineSegment, geometry.KindCircle),
		resolved: kinds(geometry.KindLineSegment, geometry.KindCircle),
		forbidden: []forbiddenPair{
			{a: kinds(geometry.KindLineSegment), b: circleKinds},
		},
	},
	TypeParallel: {
		parents: kinds(geometry.KindCoordinateSystem, geometry.KindLine,
			geometry.KindLineSegment, geometry.KindPlane, geometry.KindSketch),
		resolved: kinds(geometry.KindLine, geometry.KindLineSegment,
			geometry.KindPlane),
	},
	TypePerpendicular: {
		parents: kinds(geometry.KindCoordinateSystem, geometry.KindLine,
			geometry.KindLineSegment, geometry.KindPlane, geometry.KindSketch),
		resolved: kinds(geometry.KindLine, geometry.KindLineSegment,
			geometry.KindPlane),
	},
	TypeTangent: {
		parents: kinds(geometry.KindCircle, geometry.KindCircularArc,
			geometry.KindCoordinateSystem, geometry.KindEllipse,
			geometry.KindLine, geometry.KindLineSegment, geometry.KindPlane,
			geometry.KindSketch),
		resolved: kinds(geometry.KindCircle, geometry.KindCircularArc,
			geometry.KindEllipse, geometry.KindLine, geometry.KindLineSegment,
			geometry.KindPlane),
		forbidden: []forbiddenPair{
			{a: edgeLikeKinds, b: edgeLikeKinds,
				hint: "use a coincident constraint for edge to edge contact"},
		},
	},
	TypeDistance: {
		parents: kinds(geometry.KindPoint, geometry.KindLine,
			geometry.KindLineSegment, geometry.KindCoordinateSystem,
			geometry.KindPlane, geometry.KindSketch),
		resolved: kinds(geometry.KindPoint, geometry.KindLine,
			geometry.KindLineSegment, geometry.KindPlane),
	},
	TypeDistanceHorizontal: {
		parents: kinds(geometry.KindPoint, geometry.KindLine,
			geometry.KindLineSegment, geometry.KindCoordinateSystem,
			geometry.KindSketch),
		resolved: kinds(geometry.KindPoint, geometry.KindLine,
			geometry.KindLineSegment),
		dim2Only: true,
	},
	TypeDistanceVertical: {
		parents: kinds(geometry.KindPoint, geometry.KindLine,
			geometry.KindLineSegment, geometry.KindCoordinateSystem,
			geometry.KindSketch),
		resolved: kinds(geometry.KindPoint, geometry.KindLine,
			geometry.KindLineSegment),
		dim2Only: true,
	},
	TypeDistanceRadius: {
		parents:  kinds(geometry.KindCircle, geometry.KindCircularArc),
		resolved: kinds(geometry.KindCircle, geometry.KindCircularArc),
	},
	TypeDistanceDiameter: {
		parents:  kinds(geometry.KindCircle, geometry.KindCircularArc),
		resolved: kinds(geometry.KindCircle, geometry.KindCircularArc),
	},
	TypeAngle: {
		parents: kinds(geometry.KindLine, geometry.KindLineSegment,
			geometry.KindCoordinateSystem, geometry.KindSketch),
		resolved: kinds(geometry.KindLine, geometry.KindLineSegment),
	},
}

// validate runs the ordered legality pipeline: dimension match, parent
// kind, self-constraint identity, resolved kind, then pairwise
// combinations. The first failure wins.
func (b *base) validate() error {
	r, ok := rules[b.ctype]
	if !ok {
		return nil
	}

	dim := b.parents[0].Dim()
	for _, p := range b.parents[1:] {
		if p.Dim() != dim {
			return &geometry.DimensionError{
				Op: b.ctype.String(), Want: dim, Got: p.Dim(),
			}
		}
	}
	if r.dim2Only && dim != 2 {
		return &geometry.DimensionError{Op: b.ctype.String(), Want: 2, Got: dim}
	}

	for _, p := range b.parents {
		if !r.parents[p.Kind()] {
			return &KindError{Constraint: b.ctype, Kind: p.Kind()}
		}
	}

	for i := 0; i < len(b.resolved); i++ {
		for j := i + 1; j < len(b.resolved); j++ {
			if b.resolved[i] == b.resolved[j] {
				return &SelfConstraintError{
					Constraint: b.ctype, UID: b.resolved[i].UID(),
				}
			}
		}
	}

	for _, g := range b.resolved {
		if !r.resolved[g.Kind()] {
			return &KindError{Constraint: b.ctype, Kind: g.Kind(), Resolved: true}
		}
	}

	for i := 0; i < len(b.resolved); i++ {
		for j := i + 1; j < len(b.resolved); j++ {
			ka, kb := b.resolved[i].Kind(), b.resolved[j].Kind()
			for _, f := range r.forbidden {
				if (f.a[ka] && f.b[kb]) || (f.a[kb] && f.b[ka]) {
					return &CombinationError{
						Constraint: b.ctype, A: ka, B: kb, Hint: f.hint,
					}
				}
			}
		}
	}
	return nil
}
