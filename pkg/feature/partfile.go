package feature

import (
	"time"

	"github.com/pancad/pancad/pkg/geometry"
)

// Metadata carries the Dublin Core style descriptive fields of a part
// file.
type Metadata struct {
	Title      string    `yaml:"title"`
	Creator    string    `yaml:"creator"`
	Identifier string    `yaml:"identifier"`
	Created    time.Time `yaml:"created"`
	Modified   time.Time `yaml:"modified"`
}

// PartFile is a feature container describing a single part. Every part
// starts with a default coordinate system as feature zero, so the first
// sketch always has a placement to depend on.
type PartFile struct {
	Container
	Metadata Metadata

	origin *CoordinateSystemFeature
}

// NewPartFile creates a part with the default coordinate system installed
// as its first feature.
func NewPartFile(title string) *PartFile {
	p := &PartFile{
		Metadata: Metadata{Title: title, Created: time.Now()},
	}
	p.Container.byUID = make(map[string]Feature)
	p.origin = NewCoordinateSystemFeature(geometry.DefaultCoordinateSystem())
	p.origin.SetName("origin")
	p.AddFeature(p.origin)
	return p
}

// Origin returns the part's root coordinate system feature.
func (p *PartFile) Origin() *CoordinateSystemFeature { return p.origin }

// AddSketch creates a sketch on the given plane of the part origin and
// adds it to the part.
func (p *PartFile) AddSketch(planeRef geometry.ConstraintReference) (*Sketch, error) {
	s, err := NewSketch(p.origin, planeRef)
	if err != nil {
		return nil, err
	}
	if err := p.AddFeature(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Touch updates the modification timestamp.
func (p *PartFile) Touch() {
	p.Metadata.Modified = time.Now()
}
