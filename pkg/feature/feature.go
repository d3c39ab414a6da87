// Package feature provides the PanCAD feature model: sketches, extrusions
// and the containers that order them into part files. Features declare
// their dependencies; a container only accepts a feature once everything
// it depends on is already present.
package feature

import (
	"fmt"
	"strings"

	"github.com/pancad/pancad/pkg/geometry"
)

// Feature is a node in a part's ordered feature list. The interface is
// sealed; all feature kinds live in this package.
type Feature interface {
	// UID returns the unique id of the feature, generating one if unset.
	UID() string
	// SetUID assigns the unique id.
	SetUID(string)
	// Name returns the display name. Empty means unnamed.
	Name() string
	// SetName assigns the display name.
	SetName(string)
	// Dependencies returns the features this feature requires, in order.
	Dependencies() []Feature
	// Context returns the container the feature belongs to, or nil.
	Context() *Container

	adoptContext(*Container)
}

// CoordinateSystemFeature places a coordinate system in a feature list.
// Part files use one as their root feature so sketches can depend on it.
type CoordinateSystemFeature struct {
	*geometry.CoordinateSystem
	name    string
	context *Container
}

var _ Feature = (*CoordinateSystemFeature)(nil)

// NewCoordinateSystemFeature wraps a coordinate system as a feature.
func NewCoordinateSystemFeature(cs *geometry.CoordinateSystem) *CoordinateSystemFeature {
	return &CoordinateSystemFeature{CoordinateSystem: cs}
}

func (f *CoordinateSystemFeature) Name() string { return f.name }

func (f *CoordinateSystemFeature) SetName(name string) { f.name = name }

func (f *CoordinateSystemFeature) Dependencies() []Feature { return nil }

func (f *CoordinateSystemFeature) Context() *Container { return f.context }

func (f *CoordinateSystemFeature) adoptContext(c *Container) {
	if f.context == nil {
		f.context = c
	}
}

// ---- errors ----

// MissingDependencyError reports features required but absent from a
// container.
type MissingDependencyError struct {
	Feature string
	Missing []string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("feature %q depends on features not in the container: %s",
		e.Feature, strings.Join(e.Missing, ", "))
}

// NotFoundError reports a uid or name lookup that matched nothing.
type NotFoundError struct {
	Where string
	UID   string
	Name  string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s has no feature named %q", e.Where, e.Name)
	}
	return fmt.Sprintf("%s has no element with uid %q", e.Where, e.UID)
}
