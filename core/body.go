package core

import (
	"fmt"
	"time"
)

// Ephemeris is a body's translational ephemeris: state as a function of
// time, expressed in a declared reference frame.
type Ephemeris interface {
	StateAt(t time.Time) (State, error)
	ReferenceFrameOrigin() string
	ReferenceFrameOrientation() string
}

// RotationalEphemeris is a body's rotational ephemeris: the rotation from a
// declared base orientation frame to the body-fixed target frame as a
// function of time.
type RotationalEphemeris interface {
	RotationToTargetFrame(t time.Time) RotationMatrix
	BaseFrameOrientation() string
	TargetFrameOrientation() string
}

// GravityField exposes the gravitational parameter of a body.
type GravityField interface {
	GravitationalParameter() float64
}

// Atmosphere returns local density as a function of altitude above the
// body's reference surface.
type Atmosphere interface {
	DensityAt(altitude float64) float64
}

// ShapeModel exposes the average radius of a body.
type ShapeModel interface {
	AverageRadius() float64
}

// AerodynamicCoefficients is a constant or state-dependent aerodynamic
// coefficient set.
type AerodynamicCoefficients interface {
	ReferenceArea() float64
	DragCoefficient() float64
}

// RadiationPressureInterface models radiation pressure on a body from one
// named source body.
type RadiationPressureInterface interface {
	SourceName() string
	ReferenceArea() float64
	PressureCoefficient() float64
	OccultingBodies() []string
}

// GravityFieldVariation is one time-variation of a body's gravity field.
type GravityFieldVariation interface {
	DeformingBodies() []string
}

// BaseState is the double-precision base-state source attached to bodies by
// the frame enforcement pass.
type BaseState = BaseStateSource[float64, time.Time]

// BodyMap is the named collection of bodies making up the environment. The
// map exclusively owns its bodies; all cross-body references go through name
// lookups on this map.
type BodyMap map[string]*Body

// Names returns the body names in lexicographic order.
func (m BodyMap) Names() []string {
	return sortedKeys(m)
}

// Body is one entity of the simulation environment. It is created once
// during setup, mutated once when the frame enforcement pass attaches a
// base-frame translation, and read-only afterwards.
type Body struct {
	name string

	ephemeris           Ephemeris
	rotationModel       RotationalEphemeris
	gravityField        GravityField
	atmosphere          Atmosphere
	shape               ShapeModel
	aeroCoefficients    AerodynamicCoefficients
	radiationInterfaces map[string]RadiationPressureInterface
	gravityVariations   []GravityFieldVariation

	// baseFrameState translates this body's ephemeris origin to the global
	// origin. Nil when the ephemeris is already expressed in the global
	// frame. Written only by EnforceGlobalFrame.
	baseFrameState *BaseState
}

// NewBody creates an empty named body.
func NewBody(name string) *Body {
	return &Body{name: name}
}

// Name returns the body's name.
func (b *Body) Name() string { return b.name }

// Ephemeris returns the body's translational ephemeris, nil if absent.
func (b *Body) Ephemeris() Ephemeris { return b.ephemeris }

// RotationModel returns the body's rotational ephemeris, nil if absent.
func (b *Body) RotationModel() RotationalEphemeris { return b.rotationModel }

// GravityField returns the body's gravity field model, nil if absent.
func (b *Body) GravityField() GravityField { return b.gravityField }

// Atmosphere returns the body's atmosphere model, nil if absent.
func (b *Body) Atmosphere() Atmosphere { return b.atmosphere }

// Shape returns the body's shape model, nil if absent.
func (b *Body) Shape() ShapeModel { return b.shape }

// AerodynamicCoefficients returns the body's aerodynamic coefficient set,
// nil if absent.
func (b *Body) AerodynamicCoefficients() AerodynamicCoefficients { return b.aeroCoefficients }

// RadiationPressureInterface returns the interface towards the named source
// body, nil if absent.
func (b *Body) RadiationPressureInterface(source string) RadiationPressureInterface {
	return b.radiationInterfaces[source]
}

// GravityFieldVariations returns the body's gravity field variations in
// application order.
func (b *Body) GravityFieldVariations() []GravityFieldVariation { return b.gravityVariations }

// BaseFrameState returns the translation from the body's ephemeris origin to
// the global origin, nil when no translation is needed.
func (b *Body) BaseFrameState() *BaseState { return b.baseFrameState }

// SetBaseFrameState attaches the origin translation. Called once by
// EnforceGlobalFrame; later calls replace the previous translation.
func (b *Body) SetBaseFrameState(s *BaseState) { b.baseFrameState = s }

// StateInBaseFrame evaluates the body's state in the global base frame at
// time t: the ephemeris state plus, when attached, the base-frame state of
// the ephemeris origin. Origins chain lazily because the attached source
// queries the origin body's own StateInBaseFrame at call time.
func (b *Body) StateInBaseFrame(t time.Time) (State, error) {
	if b.ephemeris == nil {
		return State{}, fmt.Errorf("body %q has no ephemeris", b.name)
	}
	local, err := b.ephemeris.StateAt(t)
	if err != nil {
		return State{}, fmt.Errorf("ephemeris of body %q: %w", b.name, err)
	}
	return translateToBase(local, b.baseFrameState, t)
}
