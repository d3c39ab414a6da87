package feature

import (
	"fmt"

	"github.com/pancad/pancad/pkg/geometry"
)

// Severity classifies a validation finding.
type Severity int

const (
	// SeverityError marks findings that make the part invalid.
	SeverityError Severity = iota
	// SeverityWarning marks findings worth surfacing but not fatal.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// ValidationError describes a single finding from Validate.
type ValidationError struct {
	FeatureUID string
	Message    string
	Severity   Severity
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] feature %s: %s", e.Severity, e.FeatureUID, e.Message)
}

// Validate runs all validation passes over a container and collects the
// findings. An empty result means the part is valid.
func Validate(c *Container) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateDependencyOrder(c)...)
	errs = append(errs, validateSketches(c)...)
	errs = append(errs, validateExtrudes(c)...)
	return errs
}

// validateDependencyOrder checks that every feature's dependencies appear
// earlier in the feature list.
func validateDependencyOrder(c *Container) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, c.Len())
	for _, f := range c.features {
		for _, dep := range f.Dependencies() {
			if !seen[dep.UID()] {
				errs = append(errs, ValidationError{
					FeatureUID: f.UID(),
					Message: fmt.Sprintf("dependency %q does not precede the feature",
						dep.UID()),
					Severity: SeverityError,
				})
			}
		}
		seen[f.UID()] = true
	}
	return errs
}

// validateSketches checks sketch contents: geometry must be 2D, externals
// 3D, and constraint targets must live in the sketch.
func validateSketches(c *Container) []ValidationError {
	var errs []ValidationError
	for _, s := range c.Sketches() {
		for i, g := range s.elements {
			if g.Dim() != 2 {
				errs = append(errs, ValidationError{
					FeatureUID: s.UID(),
					Message:    fmt.Sprintf("element %d is not 2D", i),
					Severity:   SeverityError,
				})
			}
		}
		for i, g := range s.externals {
			if g.Dim() != 3 {
				errs = append(errs, ValidationError{
					FeatureUID: s.UID(),
					Message:    fmt.Sprintf("external %d is not 3D", i),
					Severity:   SeverityError,
				})
			}
		}
		for _, con := range s.constraints {
			for _, parent := range con.Geometry() {
				if !s.holds(parent) {
					errs = append(errs, ValidationError{
						FeatureUID: s.UID(),
						Message: fmt.Sprintf("constraint %q targets element %q"+
							" outside the sketch", con.UID(), parent.UID()),
						Severity: SeverityError,
					})
				}
			}
		}
		if len(s.NonConstructionGeometry()) == 0 {
			errs = append(errs, ValidationError{
				FeatureUID: s.UID(),
				Message:    "sketch has no profile geometry",
				Severity:   SeverityWarning,
			})
		}
	}
	return errs
}

// validateExtrudes checks extrude lengths and profile membership.
func validateExtrudes(c *Container) []ValidationError {
	var errs []ValidationError
	for _, e := range c.Extrudes() {
		if e.length <= 0 {
			errs = append(errs, ValidationError{
				FeatureUID: e.UID(),
				Message:    fmt.Sprintf("length %g is not positive", e.length),
				Severity:   SeverityError,
			})
		}
		if e.Midplane() && e.oppositeLength != 0 {
			errs = append(errs, ValidationError{
				FeatureUID: e.UID(),
				Message:    "midplane extrude carries an opposite length",
				Severity:   SeverityError,
			})
		}
		if !c.Contains(e.profile.UID()) {
			errs = append(errs, ValidationError{
				FeatureUID: e.UID(),
				Message:    fmt.Sprintf("profile %q is not in the container", e.profile.UID()),
				Severity:   SeverityError,
			})
		}
	}
	return errs
}

// UnconstrainedGeometry returns the sketch elements no constraint
// touches. Callers can surface these as warnings.
func UnconstrainedGeometry(s *Sketch) []geometry.Geometry {
	used := make(map[geometry.Geometry]bool)
	for _, con := range s.constraints {
		for _, parent := range con.Geometry() {
			used[parent] = true
		}
	}
	var out []geometry.Geometry
	for _, g := range s.elements {
		if !used[g] {
			out = append(out, g)
		}
	}
	return out
}
