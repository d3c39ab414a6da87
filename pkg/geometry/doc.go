// Package geometry provides CAD-program-neutral geometric primitives for
// PanCAD: points, lines, line segments, circles, circular arcs, ellipses,
// planes and coordinate systems, in 2D and 3D.
//
// Every primitive implements the Geometry interface. Primitives are held by
// pointer and mutated in place through Update, which preserves the uid and
// any references other objects hold. Sub-elements (endpoints, centers, axis
// lines) are addressed through ConstraintReference values and resolved with
// GetReference.
package geometry
