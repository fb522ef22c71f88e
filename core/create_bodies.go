package core

import (
	"errors"
	"fmt"

	"github.com/signalsfoundry/astro-environment/internal/logging"
	"github.com/signalsfoundry/astro-environment/model"
)

var errNoFactory = errors.New("no factory configured for domain")

// CreateBodies builds the environment's body map from per-body settings.
// Bodies are constructed in dependency order, so when a body's factories
// run, every managed body its settings reference as frame origin is already
// present in the map they receive.
//
// The first factory failure aborts the whole call: no partially populated
// body map is ever returned.
func CreateBodies(settingsByName map[string]*model.BodySettings, factories *Factories, opts ...Option) (BodyMap, error) {
	o := applyOptions(opts)
	if factories == nil {
		factories = &Factories{}
	}

	order, err := ResolveCreationOrder(settingsByName)
	if err != nil {
		return nil, err
	}

	bodies := make(BodyMap, len(order))
	for _, entry := range order {
		body, err := buildBody(entry.Name, entry.Settings, factories, bodies, &o)
		if err != nil {
			return nil, err
		}
		bodies[entry.Name] = body
		o.obs.BodyConstructed(entry.Name)
		o.log.Debug(o.ctx, "body constructed", logging.String("body", entry.Name))
	}
	return bodies, nil
}

// buildBody runs the per-domain factories for one body, in a fixed domain
// order. bodies holds every previously constructed body.
func buildBody(name string, s *model.BodySettings, f *Factories, bodies BodyMap, o *setupOptions) (*Body, error) {
	body := NewBody(name)
	if s == nil {
		return body, nil
	}

	if s.Ephemeris != nil {
		if f.Ephemeris == nil {
			return nil, subModelError(name, DomainEphemeris, errNoFactory, o)
		}
		eph, err := f.Ephemeris.CreateEphemeris(name, s.Ephemeris, bodies)
		if err != nil {
			return nil, subModelError(name, DomainEphemeris, err, o)
		}
		body.ephemeris = eph
	}

	if s.GravityField != nil {
		if f.GravityField == nil {
			return nil, subModelError(name, DomainGravityField, errNoFactory, o)
		}
		gf, err := f.GravityField.CreateGravityField(name, s.GravityField, bodies)
		if err != nil {
			return nil, subModelError(name, DomainGravityField, err, o)
		}
		body.gravityField = gf
	}

	if s.Atmosphere != nil {
		if f.Atmosphere == nil {
			return nil, subModelError(name, DomainAtmosphere, errNoFactory, o)
		}
		atm, err := f.Atmosphere.CreateAtmosphere(name, s.Atmosphere, bodies)
		if err != nil {
			return nil, subModelError(name, DomainAtmosphere, err, o)
		}
		body.atmosphere = atm
	}

	if s.RotationModel != nil {
		if f.RotationModel == nil {
			return nil, subModelError(name, DomainRotationModel, errNoFactory, o)
		}
		rot, err := f.RotationModel.CreateRotationModel(name, s.RotationModel, bodies)
		if err != nil {
			return nil, subModelError(name, DomainRotationModel, err, o)
		}
		body.rotationModel = rot
	}

	if s.Shape != nil {
		if f.Shape == nil {
			return nil, subModelError(name, DomainShape, errNoFactory, o)
		}
		shape, err := f.Shape.CreateShape(name, s.Shape, bodies)
		if err != nil {
			return nil, subModelError(name, DomainShape, err, o)
		}
		body.shape = shape
	}

	if s.AerodynamicCoefficients != nil {
		if f.AerodynamicCoefficients == nil {
			return nil, subModelError(name, DomainAeroCoefficients, errNoFactory, o)
		}
		aero, err := f.AerodynamicCoefficients.CreateAerodynamicCoefficients(name, s.AerodynamicCoefficients, bodies)
		if err != nil {
			return nil, subModelError(name, DomainAeroCoefficients, err, o)
		}
		body.aeroCoefficients = aero
	}

	if len(s.RadiationPressure) > 0 {
		if f.RadiationPressure == nil {
			return nil, subModelError(name, DomainRadiationPressure, errNoFactory, o)
		}
		body.radiationInterfaces = make(map[string]RadiationPressureInterface, len(s.RadiationPressure))
		for _, source := range sortedKeys(s.RadiationPressure) {
			rp, err := f.RadiationPressure.CreateRadiationPressureInterface(name, source, s.RadiationPressure[source], bodies)
			if err != nil {
				return nil, subModelError(name, DomainRadiationPressure, err, o)
			}
			body.radiationInterfaces[source] = rp
		}
	}

	if len(s.GravityFieldVariations) > 0 {
		if f.GravityFieldVariation == nil {
			return nil, subModelError(name, DomainGravityFieldVariation, errNoFactory, o)
		}
		body.gravityVariations = make([]GravityFieldVariation, 0, len(s.GravityFieldVariations))
		for _, vs := range s.GravityFieldVariations {
			v, err := f.GravityFieldVariation.CreateGravityFieldVariation(name, vs, bodies)
			if err != nil {
				return nil, subModelError(name, DomainGravityFieldVariation, err, o)
			}
			body.gravityVariations = append(body.gravityVariations, v)
		}
	}

	return body, nil
}

func subModelError(body, domain string, cause error, o *setupOptions) error {
	o.obs.SubModelFailed(body, domain)
	o.log.Error(o.ctx, "sub-model creation failed",
		logging.String("body", body),
		logging.String("domain", domain),
		logging.String("error", cause.Error()),
	)
	return fmt.Errorf("%w: %s model of body %q: %w", ErrSubModelCreation, domain, body, cause)
}
