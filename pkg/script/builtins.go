package script

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/pancad/pancad/pkg/constraint"
	"github.com/pancad/pancad/pkg/feature"
	"github.com/pancad/pancad/pkg/geometry"
)

// ---- source preprocessing ----

// kwPrefix marks keyword names after preprocessing.
const kwPrefix = "__kw_"

// preprocessSource transforms PanCAD Lisp source before handing it to
// zygomys:
//
//  1. :keyword becomes the string literal "__kw_keyword", so keywords need
//     no global symbol registration.
//  2. kebab-case identifiers become underscore form; zygomys reads a bare
//     hyphen as subtraction.
//  3. ; line comments become // comments, which is what zygomys expects.
//
// String literal boundaries and comments are respected throughout.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == ':' && i+1 < len(b) {
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---- sexp wrappers ----

type sexpPart struct {
	part *feature.PartFile
}

func (p *sexpPart) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(part %q)", p.part.Metadata.Title)
}
func (p *sexpPart) Type() *zygo.RegisteredType { return nil }

type sexpSketch struct {
	sketch *feature.Sketch
}

func (s *sexpSketch) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(sketch %q)", s.sketch.UID())
}
func (s *sexpSketch) Type() *zygo.RegisteredType { return nil }

type sexpGeom struct {
	g geometry.Geometry
}

func (g *sexpGeom) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s %q)", g.g.Kind(), g.g.UID())
}
func (g *sexpGeom) Type() *zygo.RegisteredType { return nil }

// sexpTarget pairs an element with the reference a constraint addresses
// on it.
type sexpTarget struct {
	g   geometry.Geometry
	ref geometry.ConstraintReference
}

func (t *sexpTarget) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(ref %q %s)", t.g.UID(), t.ref)
}
func (t *sexpTarget) Type() *zygo.RegisteredType { return nil }

type sexpConstraint struct {
	c constraint.Constraint
}

func (c *sexpConstraint) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s %q)", c.c.Type(), c.c.UID())
}
func (c *sexpConstraint) Type() *zygo.RegisteredType { return nil }

type sexpExtrude struct {
	extrude *feature.Extrude
}

func (e *sexpExtrude) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(extrude %q)", e.extrude.UID())
}
func (e *sexpExtrude) Type() *zygo.RegisteredType { return nil }

// ---- argument parsing ----

// kwArgs holds a parsed mixed positional and keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// parseArgs separates keyword pairs from positional arguments. A keyword
// at the end of the list becomes a flag with a nil value.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		if name, ok := isKW(args[i]); ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toBool(s zygo.Sexp) (bool, error) {
	if v, ok := s.(*zygo.SexpBool); ok {
		return v.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString accepts a preprocessed keyword or a plain string.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// referenceNames maps DSL reference keywords to constraint references.
var referenceNames = map[string]geometry.ConstraintReference{
	"core":   geometry.RefCore,
	"start":  geometry.RefStart,
	"end":    geometry.RefEnd,
	"center": geometry.RefCenter,
	"origin": geometry.RefOrigin,
	"x":      geometry.RefX,
	"y":      geometry.RefY,
}

func toReference(s zygo.Sexp) (geometry.ConstraintReference, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, err
	}
	ref, ok := referenceNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown reference %q", name)
	}
	return ref, nil
}

// planeNames maps DSL plane keywords to coordinate system planes.
var planeNames = map[string]geometry.ConstraintReference{
	"xy": geometry.RefXY,
	"xz": geometry.RefXZ,
	"yz": geometry.RefYZ,
}

// toTarget resolves a constraint target: a bare element means its core, a
// (ref ...) pair selects a sub-part, a sketch means the sketch itself.
func toTarget(s zygo.Sexp) (geometry.Geometry, geometry.ConstraintReference, error) {
	switch v := s.(type) {
	case *sexpGeom:
		return v.g, geometry.RefCore, nil
	case *sexpTarget:
		return v.g, v.ref, nil
	case *sexpSketch:
		return v.sketch, geometry.RefCore, nil
	}
	return nil, 0, fmt.Errorf("expected geometry or reference, got %T (%s)",
		s, s.SexpString(nil))
}

// ---- builder ----

// builder accumulates the part a script defines. Geometry and constraint
// builtins target the most recent sketch.
type builder struct {
	part   *feature.PartFile
	sketch *feature.Sketch
}

func (b *builder) requirePart(op string) error {
	if b.part == nil {
		return fmt.Errorf("%s: no part defined; call (part \"name\") first", op)
	}
	return nil
}

func (b *builder) requireSketch(op string) error {
	if err := b.requirePart(op); err != nil {
		return err
	}
	if b.sketch == nil {
		return fmt.Errorf("%s: no open sketch; call (sketch :plane :xy) first", op)
	}
	return nil
}

func (b *builder) addGeometry(op string, g geometry.Geometry, pa kwArgs) (zygo.Sexp, error) {
	if err := b.requireSketch(op); err != nil {
		return zygo.SexpNull, err
	}
	construction := false
	if v, ok := pa.kw["construction"]; ok {
		c, err := toBool(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: construction: %w", op, err)
		}
		construction = c
	}
	if err := b.sketch.AddGeometry(g, construction); err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", op, err)
	}
	return &sexpGeom{g: g}, nil
}

// ---- builtin registration ----

// registerBuiltins installs the PanCAD DSL into a zygomys environment.
// Source must be preprocessed with preprocessSource first so :keyword
// tokens arrive as recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, b *builder) {

	// (part "bracket")
	env.AddFunction("part", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("part requires a name argument")
		}
		title, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("part: name: %w", err)
		}
		if b.part != nil {
			return zygo.SexpNull, fmt.Errorf("part: a script defines exactly one part")
		}
		b.part = feature.NewPartFile(title)
		return &sexpPart{part: b.part}, nil
	})

	// (sketch :plane :xy)
	env.AddFunction("sketch", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := b.requirePart("sketch"); err != nil {
			return zygo.SexpNull, err
		}
		pa := parseArgs(args)
		planeRef := geometry.RefXY
		if v, ok := pa.kw["plane"]; ok {
			kw, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sketch: plane: %w", err)
			}
			ref, ok := planeNames[kw]
			if !ok {
				return zygo.SexpNull, fmt.Errorf("sketch: unknown plane %q", kw)
			}
			planeRef = ref
		}
		sk, err := b.part.AddSketch(planeRef)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sketch: %w", err)
		}
		b.sketch = sk
		return &sexpSketch{sketch: sk}, nil
	})

	// (point 1 2)
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("point requires x and y, got %d arguments",
				len(pa.positional))
		}
		coords := make([]float64, 2)
		for i, arg := range pa.positional {
			f, err := toFloat64(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("point: %w", err)
			}
			coords[i] = f
		}
		p, err := geometry.NewPoint(coords...)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: %w", err)
		}
		return b.addGeometry("point", p, pa)
	})

	// (line-segment 0 0 1 0)
	env.AddFunction("line_segment", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 4 {
			return zygo.SexpNull, fmt.Errorf(
				"line-segment requires x1 y1 x2 y2, got %d arguments", len(pa.positional))
		}
		var coords [4]float64
		for i, arg := range pa.positional {
			f, err := toFloat64(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("line-segment: %w", err)
			}
			coords[i] = f
		}
		seg, err := geometry.NewLineSegment(
			geometry.MustPoint(coords[0], coords[1]),
			geometry.MustPoint(coords[2], coords[3]))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line-segment: %w", err)
		}
		return b.addGeometry("line-segment", seg, pa)
	})

	// (circle 5 5 2)
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 3 {
			return zygo.SexpNull, fmt.Errorf("circle requires cx cy r, got %d arguments",
				len(pa.positional))
		}
		var coords [3]float64
		for i, arg := range pa.positional {
			f, err := toFloat64(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: %w", err)
			}
			coords[i] = f
		}
		c, err := geometry.NewCircle(
			geometry.MustPoint(coords[0], coords[1]), coords[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		return b.addGeometry("circle", c, pa)
	})

	// (arc cx cy sx sy ex ey :clockwise false)
	env.AddFunction("arc", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 6 {
			return zygo.SexpNull, fmt.Errorf(
				"arc requires cx cy sx sy ex ey, got %d arguments", len(pa.positional))
		}
		var coords [6]float64
		for i, arg := range pa.positional {
			f, err := toFloat64(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("arc: %w", err)
			}
			coords[i] = f
		}
		clockwise := false
		if v, ok := pa.kw["clockwise"]; ok {
			cw, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("arc: clockwise: %w", err)
			}
			clockwise = cw
		}
		a, err := geometry.NewCircularArc(
			geometry.MustPoint(coords[0], coords[1]),
			geometry.MustPoint(coords[2], coords[3]),
			geometry.MustPoint(coords[4], coords[5]),
			clockwise)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("arc: %w", err)
		}
		return b.addGeometry("arc", a, pa)
	})

	// (ellipse 0 0 :major 2 :minor 1 :direction-x 1 :direction-y 0)
	env.AddFunction("ellipse", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("ellipse requires cx cy, got %d arguments",
				len(pa.positional))
		}
		cx, err := toFloat64(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ellipse: %w", err)
		}
		cy, err := toFloat64(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ellipse: %w", err)
		}
		major, minor := 1.0, 0.5
		dir := []float64{1, 0}
		if v, ok := pa.kw["major"]; ok {
			if major, err = toFloat64(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("ellipse: major: %w", err)
			}
		}
		if v, ok := pa.kw["minor"]; ok {
			if minor, err = toFloat64(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("ellipse: minor: %w", err)
			}
		}
		if v, ok := pa.kw["direction-x"]; ok {
			if dir[0], err = toFloat64(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("ellipse: direction-x: %w", err)
			}
		}
		if v, ok := pa.kw["direction-y"]; ok {
			if dir[1], err = toFloat64(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("ellipse: direction-y: %w", err)
			}
		}
		el, err := geometry.NewEllipse(geometry.MustPoint(cx, cy), major, minor, dir)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ellipse: %w", err)
		}
		return b.addGeometry("ellipse", el, pa)
	})

	// (ref seg :start), (ref sk :x)
	env.AddFunction("ref", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("ref requires an element and a reference keyword")
		}
		g, _, err := toTarget(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ref: %w", err)
		}
		ref, err := toReference(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ref: %w", err)
		}
		return &sexpTarget{g: g, ref: ref}, nil
	})

	// Pair constraints: (coincident (ref a :end) (ref b :start)) and the
	// like. Single-target forms omit the second argument.
	type constraintSpec struct {
		fname  string
		ctype  constraint.Type
		takesB bool
	}
	specs := []constraintSpec{
		{"coincident", constraint.TypeCoincident, true},
		{"equal", constraint.TypeEqual, true},
		{"parallel", constraint.TypeParallel, true},
		{"perpendicular", constraint.TypePerpendicular, true},
		{"tangent", constraint.TypeTangent, true},
		{"horizontal", constraint.TypeHorizontal, true},
		{"vertical", constraint.TypeVertical, true},
		{"distance", constraint.TypeDistance, true},
		{"horizontal_distance", constraint.TypeDistanceHorizontal, true},
		{"vertical_distance", constraint.TypeDistanceVertical, true},
		{"radius", constraint.TypeDistanceRadius, false},
		{"diameter", constraint.TypeDistanceDiameter, false},
		{"angle", constraint.TypeAngle, true},
	}
	for _, spec := range specs {
		spec := spec
		env.AddFunction(spec.fname, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if err := b.requireSketch(spec.fname); err != nil {
				return zygo.SexpNull, err
			}
			pa := parseArgs(args)
			if len(pa.positional) < 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires at least one target", spec.fname)
			}
			a, refA, err := toTarget(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", spec.fname, err)
			}
			var gb geometry.Geometry
			var refB geometry.ConstraintReference
			if spec.takesB && len(pa.positional) > 1 {
				gb, refB, err = toTarget(pa.positional[1])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: %w", spec.fname, err)
				}
			}

			p := constraint.Params{Quadrant: 1}
			if v, ok := pa.kw["value"]; ok {
				if p.Value, err = toFloat64(v); err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: value: %w", spec.fname, err)
				}
			}
			if v, ok := pa.kw["unit"]; ok {
				if p.Unit, err = toString(v); err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: unit: %w", spec.fname, err)
				}
			}
			if v, ok := pa.kw["quadrant"]; ok {
				if p.Quadrant, err = toInt(v); err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: quadrant: %w", spec.fname, err)
				}
			}
			if v, ok := pa.kw["radians"]; ok {
				if p.Radians, err = toBool(v); err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: radians: %w", spec.fname, err)
				}
			}

			c, err := constraint.Make(spec.ctype, a, refA, gb, refB, p)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", spec.fname, err)
			}
			if err := b.sketch.AddConstraint(c); err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", spec.fname, err)
			}
			return &sexpConstraint{c: c}, nil
		})
	}

	// (extrude :length 1 :opposite 0 :midplane false :reversed false)
	env.AddFunction("extrude", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := b.requireSketch("extrude"); err != nil {
			return zygo.SexpNull, err
		}
		pa := parseArgs(args)
		length := 0.0
		opposite := 0.0
		midplane := false
		reversed := false
		var err error
		if v, ok := pa.kw["length"]; ok {
			if length, err = toFloat64(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("extrude: length: %w", err)
			}
		}
		if v, ok := pa.kw["opposite"]; ok {
			if opposite, err = toFloat64(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("extrude: opposite: %w", err)
			}
		}
		if v, ok := pa.kw["midplane"]; ok {
			if midplane, err = toBool(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("extrude: midplane: %w", err)
			}
		}
		if v, ok := pa.kw["reversed"]; ok {
			if reversed, err = toBool(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("extrude: reversed: %w", err)
			}
		}
		ex, err := feature.ExtrudeFromLength(b.sketch, length, opposite, midplane, reversed)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("extrude: %w", err)
		}
		if err := b.part.AddFeature(ex); err != nil {
			return zygo.SexpNull, fmt.Errorf("extrude: %w", err)
		}
		return &sexpExtrude{extrude: ex}, nil
	})
}
