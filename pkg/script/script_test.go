package script

import (
	"strings"
	"testing"

	"github.com/pancad/pancad/pkg/constraint"
	"github.com/pancad/pancad/pkg/feature"
	"github.com/pancad/pancad/pkg/geometry"
)

func TestPreprocessKeywords(t *testing.T) {
	got := preprocessSource("(sketch :plane :xy)")
	want := `(sketch "__kw_plane" "__kw_xy")`
	if got != want {
		t.Errorf("preprocess = %q, want %q", got, want)
	}
}

func TestPreprocessKebabCase(t *testing.T) {
	got := preprocessSource("(line-segment 0 0 1 0)")
	want := "(line_segment 0 0 1 0)"
	if got != want {
		t.Errorf("preprocess = %q, want %q", got, want)
	}
}

func TestPreprocessLeavesSubtraction(t *testing.T) {
	got := preprocessSource("(circle 0 0 (- 5 2))")
	if got != "(circle 0 0 (- 5 2))" {
		t.Errorf("preprocess mangled subtraction: %q", got)
	}
}

func TestPreprocessStringsUntouched(t *testing.T) {
	source := `(part "my-part :plane")`
	if got := preprocessSource(source); got != source {
		t.Errorf("preprocess rewrote string contents: %q", got)
	}
}

func TestPreprocessComments(t *testing.T) {
	got := preprocessSource(";; top-level comment\n(part \"p\")")
	if !strings.HasPrefix(got, "// top-level comment\n") {
		t.Errorf("comment not converted: %q", got)
	}
}

func TestEvaluateEmptySource(t *testing.T) {
	e := NewEngine()
	p, evalErrs, err := e.Evaluate("   \n  ")
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if p != nil {
		t.Errorf("empty source produced a part")
	}
	if len(evalErrs) != 1 {
		t.Fatalf("got %d eval errors, want 1", len(evalErrs))
	}
}

func TestEvaluateUnknownFunction(t *testing.T) {
	e := NewEngine()
	p, evalErrs, err := e.Evaluate(`(part "p") (bevel 3)`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if p != nil {
		t.Errorf("broken source produced a part")
	}
	if len(evalErrs) == 0 {
		t.Fatalf("expected eval errors")
	}
}

const unitSquareSource = `
(part "unit-square")
(def sk (sketch :plane :xy))
(def bottom (line-segment 0 0 1 0))
(def right (line-segment 1 0 1 1))
(def top (line-segment 1 1 0 1))
(def left (line-segment 0 1 0 0))
(coincident (ref bottom :end) (ref right :start))
(coincident (ref right :end) (ref top :start))
(coincident (ref top :end) (ref left :start))
(coincident (ref left :end) (ref bottom :start))
(coincident (ref bottom :start) (ref sk :origin))
(horizontal bottom)
(vertical left)
(distance (ref bottom :start) (ref bottom :end) :value 1 :unit "mm")
(extrude :length 1)
`

func TestEvaluateUnitSquare(t *testing.T) {
	e := NewEngine()
	p, evalErrs, err := e.Evaluate(unitSquareSource)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if p == nil {
		t.Fatalf("no part produced")
	}
	if p.Metadata.Title != "unit-square" {
		t.Errorf("part title = %q", p.Metadata.Title)
	}
	// Origin, sketch, extrude.
	if p.Len() != 3 {
		t.Fatalf("part has %d features, want 3", p.Len())
	}
	sketches := p.Sketches()
	if len(sketches) != 1 {
		t.Fatalf("part has %d sketches", len(sketches))
	}
	sk := sketches[0]
	if got := len(sk.Geometry()); got != 4 {
		t.Errorf("sketch has %d elements, want 4", got)
	}
	if got := len(sk.Constraints()); got != 8 {
		t.Errorf("sketch has %d constraints, want 8", got)
	}
	var horizontals int
	for _, c := range sk.Constraints() {
		if c.Type() == constraint.TypeHorizontal {
			horizontals++
		}
	}
	if horizontals != 1 {
		t.Errorf("got %d horizontal constraints, want 1", horizontals)
	}
	extrudes := p.Extrudes()
	if len(extrudes) != 1 {
		t.Fatalf("part has %d extrudes", len(extrudes))
	}
	if extrudes[0].LengthType() != feature.Dimension || extrudes[0].Length() != 1 {
		t.Errorf("extrude = %s length %g",
			extrudes[0].LengthType(), extrudes[0].Length())
	}
}

func TestEvaluateConstructionGeometry(t *testing.T) {
	e := NewEngine()
	source := `
(part "guide")
(sketch :plane :xy)
(line-segment 0 0 1 1 :construction true)
(circle 0 0 2)
`
	p, evalErrs, err := e.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	sk := p.Sketches()[0]
	if got := len(sk.ConstructionGeometry()); got != 1 {
		t.Errorf("sketch has %d construction elements, want 1", got)
	}
	if got := len(sk.NonConstructionGeometry()); got != 1 {
		t.Errorf("sketch has %d profile elements, want 1", got)
	}
}

func TestEvaluateRejectsIllegalConstraint(t *testing.T) {
	e := NewEngine()
	source := `
(part "bad")
(sketch :plane :xy)
(def seg (line-segment 0 0 1 0))
(def c (circle 5 5 2))
(coincident seg c)
`
	p, evalErrs, err := e.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if p != nil {
		t.Errorf("illegal constraint still produced a part")
	}
	if len(evalErrs) == 0 {
		t.Fatalf("expected eval errors for an edge to circle coincidence")
	}
}

func TestEvaluateIsolatedBetweenRuns(t *testing.T) {
	e := NewEngine()
	source := `(part "p") (sketch :plane :xz) (circle 0 0 1)`
	for i := 0; i < 2; i++ {
		p, evalErrs, err := e.Evaluate(source)
		if err != nil || len(evalErrs) > 0 {
			t.Fatalf("run %d: %v %v", i, err, evalErrs)
		}
		if p.Len() != 2 {
			t.Fatalf("run %d: part has %d features", i, p.Len())
		}
		if p.Sketches()[0].PlaneReference() != geometry.RefXZ {
			t.Errorf("run %d: sketch plane %q", i, p.Sketches()[0].PlaneReference())
		}
	}
}
