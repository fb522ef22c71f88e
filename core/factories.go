package core

import (
	"context"

	"github.com/signalsfoundry/astro-environment/internal/logging"
	"github.com/signalsfoundry/astro-environment/model"
)

// Model domains, used to name the failing factory in setup errors and
// metrics labels.
const (
	DomainEphemeris             = "ephemeris"
	DomainGravityField          = "gravity_field"
	DomainAtmosphere            = "atmosphere"
	DomainRotationModel         = "rotation_model"
	DomainShape                 = "shape"
	DomainAeroCoefficients      = "aerodynamic_coefficients"
	DomainRadiationPressure     = "radiation_pressure"
	DomainGravityFieldVariation = "gravity_field_variation"
)

// The per-domain factories are the external collaborators of body
// construction: given settings plus the already-built dependency bodies,
// each produces a model or fails. CreateBodies guarantees that every body a
// factory's settings reference as frame origin is present in bodies when the
// factory runs.

type EphemerisFactory interface {
	CreateEphemeris(body string, s *model.EphemerisSettings, bodies BodyMap) (Ephemeris, error)
}

type GravityFieldFactory interface {
	CreateGravityField(body string, s *model.GravityFieldSettings, bodies BodyMap) (GravityField, error)
}

type AtmosphereFactory interface {
	CreateAtmosphere(body string, s *model.AtmosphereSettings, bodies BodyMap) (Atmosphere, error)
}

type RotationModelFactory interface {
	CreateRotationModel(body string, s *model.RotationModelSettings, bodies BodyMap) (RotationalEphemeris, error)
}

type ShapeFactory interface {
	CreateShape(body string, s *model.ShapeSettings, bodies BodyMap) (ShapeModel, error)
}

type AerodynamicCoefficientFactory interface {
	CreateAerodynamicCoefficients(body string, s *model.AerodynamicCoefficientSettings, bodies BodyMap) (AerodynamicCoefficients, error)
}

type RadiationPressureFactory interface {
	CreateRadiationPressureInterface(body, source string, s *model.RadiationPressureSettings, bodies BodyMap) (RadiationPressureInterface, error)
}

type GravityFieldVariationFactory interface {
	CreateGravityFieldVariation(body string, s *model.GravityFieldVariationSettings, bodies BodyMap) (GravityFieldVariation, error)
}

// Factories bundles the per-domain model factories consumed by
// CreateBodies. A nil factory for a domain that appears in some body's
// settings fails construction of that body.
type Factories struct {
	Ephemeris               EphemerisFactory
	GravityField            GravityFieldFactory
	Atmosphere              AtmosphereFactory
	RotationModel           RotationModelFactory
	Shape                   ShapeFactory
	AerodynamicCoefficients AerodynamicCoefficientFactory
	RadiationPressure       RadiationPressureFactory
	GravityFieldVariation   GravityFieldVariationFactory
}

// SetupObserver receives callbacks during environment setup. Implementations
// must not mutate bodies; the observability package provides a
// Prometheus-backed implementation.
type SetupObserver interface {
	BodyConstructed(name string)
	SubModelFailed(name, domain string)
	AdapterAttached(body, origin string)
}

type noopObserver struct{}

func (noopObserver) BodyConstructed(string)         {}
func (noopObserver) SubModelFailed(string, string)  {}
func (noopObserver) AdapterAttached(string, string) {}

// Option configures a setup call.
type Option func(*setupOptions)

type setupOptions struct {
	ctx context.Context
	log logging.Logger
	obs SetupObserver
}

// WithLogger routes setup progress through a structured logger.
func WithLogger(l logging.Logger) Option {
	return func(o *setupOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithObserver registers a setup observer.
func WithObserver(obs SetupObserver) Option {
	return func(o *setupOptions) {
		if obs != nil {
			o.obs = obs
		}
	}
}

// WithContext sets the context used for log records. Setup itself never
// blocks and is not cancellable.
func WithContext(ctx context.Context) Option {
	return func(o *setupOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func applyOptions(opts []Option) setupOptions {
	o := setupOptions{
		ctx: context.Background(),
		log: logging.Noop(),
		obs: noopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
