package feature

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pancad/pancad/pkg/geometry"
)

// LengthType selects how an extrude's lengths are applied relative to the
// profile plane.
type LengthType int

const (
	// Dimension extrudes a single length along the profile normal.
	Dimension LengthType = iota
	// AntiDimension extrudes a single length against the profile normal.
	AntiDimension
	// Symmetric extrudes half the length to each side of the profile.
	Symmetric
	// TwoDimensions extrudes one length along and one against the normal.
	TwoDimensions
	// AntiTwoDimensions swaps the two lengths of TwoDimensions.
	AntiTwoDimensions
)

func (t LengthType) String() string {
	switch t {
	case Dimension:
		return "dimension"
	case AntiDimension:
		return "anti_dimension"
	case Symmetric:
		return "symmetric"
	case TwoDimensions:
		return "two_dimensions"
	case AntiTwoDimensions:
		return "anti_two_dimensions"
	default:
		return fmt.Sprintf("LengthType(%d)", int(t))
	}
}

// Extrude sweeps a sketch profile along its plane normal into a solid.
type Extrude struct {
	uid     string
	name    string
	context *Container

	profile    *Sketch
	lengthType LengthType
	length     float64
	// oppositeLength is only meaningful for the two-length types.
	oppositeLength float64
	// endFeature bounds an up-to-feature extrude when set.
	endFeature Feature
}

var _ Feature = (*Extrude)(nil)

// NewExtrude creates an extrude of the profile with an explicit length
// type. Lengths must be positive.
func NewExtrude(profile *Sketch, lengthType LengthType, length, oppositeLength float64) (*Extrude, error) {
	if profile == nil {
		return nil, fmt.Errorf("extrude: nil profile")
	}
	if length <= 0 {
		return nil, fmt.Errorf("extrude length must be positive, got %g", length)
	}
	twoLength := lengthType == TwoDimensions || lengthType == AntiTwoDimensions
	if twoLength && oppositeLength <= 0 {
		return nil, fmt.Errorf("extrude opposite length must be positive, got %g",
			oppositeLength)
	}
	if !twoLength && oppositeLength != 0 {
		return nil, fmt.Errorf("%s extrudes cannot take an opposite length",
			lengthType)
	}
	return &Extrude{
		profile:        profile,
		lengthType:     lengthType,
		length:         length,
		oppositeLength: oppositeLength,
	}, nil
}

// ExtrudeFromLength creates an extrude from the midplane, reversed and
// opposite-length flags the way interactive CAD programs describe pads.
// Midplane extrudes cannot take an opposite length.
func ExtrudeFromLength(profile *Sketch, length, oppositeLength float64,
	midplane, reversed bool) (*Extrude, error) {
	if midplane && oppositeLength != 0 {
		return nil, fmt.Errorf("midplane extrudes cannot take an opposite length")
	}
	var lt LengthType
	switch {
	case midplane:
		lt = Symmetric
	case oppositeLength == 0 && reversed:
		lt = AntiDimension
	case oppositeLength == 0:
		lt = Dimension
	case reversed:
		lt = AntiTwoDimensions
	default:
		lt = TwoDimensions
	}
	return NewExtrude(profile, lt, length, oppositeLength)
}

// ExtrudeUpToFeature always fails; extrudes bounded by another face or
// body are not implemented.
func ExtrudeUpToFeature(profile *Sketch, end Feature) (*Extrude, error) {
	return nil, &geometry.CapabilityError{Capability: "up-to-feature extrudes"}
}

func (e *Extrude) UID() string {
	if e.uid == "" {
		e.uid = uuid.NewString()
	}
	return e.uid
}

func (e *Extrude) SetUID(uid string) { e.uid = uid }

func (e *Extrude) Name() string { return e.name }

func (e *Extrude) SetName(name string) { e.name = name }

// Dependencies returns the profile sketch and, when set, the bounding end
// feature.
func (e *Extrude) Dependencies() []Feature {
	deps := []Feature{e.profile}
	if e.endFeature != nil {
		deps = append(deps, e.endFeature)
	}
	return deps
}

func (e *Extrude) Context() *Container { return e.context }

func (e *Extrude) adoptContext(c *Container) {
	if e.context == nil {
		e.context = c
	}
}

// Profile returns the sketch being extruded.
func (e *Extrude) Profile() *Sketch { return e.profile }

func (e *Extrude) LengthType() LengthType { return e.lengthType }

func (e *Extrude) Length() float64 { return e.length }

// OppositeLength returns the second length of a two-length extrude, or 0.
func (e *Extrude) OppositeLength() float64 { return e.oppositeLength }

// Midplane reports whether the extrude is symmetric about the profile.
func (e *Extrude) Midplane() bool { return e.lengthType == Symmetric }

// Reversed reports whether the extrude runs against the profile normal.
func (e *Extrude) Reversed() bool {
	return e.lengthType == AntiDimension || e.lengthType == AntiTwoDimensions
}
