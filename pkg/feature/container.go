package feature

import (
	"fmt"

	"github.com/google/uuid"
)

// Container is an ordered collection of features with a uid registry.
// Features can only be added after all of their dependencies, so the list
// order is always a valid build order. A container is itself a feature,
// so containers nest.
type Container struct {
	uid      string
	name     string
	context  *Container
	features []Feature
	byUID    map[string]Feature
}

var _ Feature = (*Container)(nil)

// NewContainer creates an empty feature container.
func NewContainer() *Container {
	return &Container{byUID: make(map[string]Feature)}
}

func (c *Container) UID() string {
	if c.uid == "" {
		c.uid = uuid.NewString()
	}
	return c.uid
}

func (c *Container) SetUID(uid string) { c.uid = uid }

func (c *Container) Name() string { return c.name }

func (c *Container) SetName(name string) { c.name = name }

func (c *Container) Dependencies() []Feature { return nil }

func (c *Container) Context() *Container { return c.context }

func (c *Container) adoptContext(parent *Container) {
	if c.context == nil {
		c.context = parent
	}
}

// AddFeature appends a feature. Every dependency must already be in the
// container, matched by uid. The container adopts the feature's context
// only when the feature has none yet.
func (c *Container) AddFeature(f Feature) error {
	if f == nil {
		return fmt.Errorf("container: nil feature")
	}
	if c.byUID == nil {
		c.byUID = make(map[string]Feature)
	}
	uid := f.UID()
	if _, ok := c.byUID[uid]; ok {
		return fmt.Errorf("container already has a feature with uid %q", uid)
	}
	var missing []string
	for _, dep := range f.Dependencies() {
		if _, ok := c.byUID[dep.UID()]; !ok {
			missing = append(missing, dep.UID())
		}
	}
	if len(missing) > 0 {
		return &MissingDependencyError{Feature: uid, Missing: missing}
	}
	c.features = append(c.features, f)
	c.byUID[uid] = f
	f.adoptContext(c)
	return nil
}

// Features returns the features in insertion order.
func (c *Container) Features() []Feature {
	return append([]Feature(nil), c.features...)
}

// Len returns the number of features.
func (c *Container) Len() int { return len(c.features) }

// At returns the i-th feature.
func (c *Container) At(i int) Feature { return c.features[i] }

// Contains reports whether a feature with the given uid is present.
func (c *Container) Contains(uid string) bool {
	_, ok := c.byUID[uid]
	return ok
}

// FeatureByUID returns the feature with the given uid.
func (c *Container) FeatureByUID(uid string) (Feature, error) {
	f, ok := c.byUID[uid]
	if !ok {
		return nil, &NotFoundError{Where: "container", UID: uid}
	}
	return f, nil
}

// FeatureByName returns the first feature whose display name matches,
// scanning in insertion order and descending into nested containers as
// they are encountered.
func (c *Container) FeatureByName(name string) (Feature, error) {
	if name != "" {
		for _, f := range c.features {
			if f.Name() == name {
				return f, nil
			}
			nested, ok := f.(interface {
				FeatureByName(string) (Feature, error)
			})
			if !ok {
				continue
			}
			if found, err := nested.FeatureByName(name); err == nil {
				return found, nil
			}
		}
	}
	return nil, &NotFoundError{Where: "container", Name: name}
}

// Sketches returns the sketch features in order.
func (c *Container) Sketches() []*Sketch {
	var out []*Sketch
	for _, f := range c.features {
		if s, ok := f.(*Sketch); ok {
			out = append(out, s)
		}
	}
	return out
}

// Extrudes returns the extrude features in order.
func (c *Container) Extrudes() []*Extrude {
	var out []*Extrude
	for _, f := range c.features {
		if e, ok := f.(*Extrude); ok {
			out = append(out, e)
		}
	}
	return out
}
