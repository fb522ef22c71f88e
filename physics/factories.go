package physics

import (
	"fmt"

	"github.com/signalsfoundry/astro-environment/core"
	"github.com/signalsfoundry/astro-environment/model"
)

// DefaultFactories wires the model implementations of this package into a
// factory set for core.CreateBodies.
func DefaultFactories() *core.Factories {
	return &core.Factories{
		Ephemeris:               ephemerisFactory{},
		GravityField:            gravityFieldFactory{},
		Atmosphere:              atmosphereFactory{},
		RotationModel:           rotationModelFactory{},
		Shape:                   shapeFactory{},
		AerodynamicCoefficients: aeroCoefficientFactory{},
		RadiationPressure:       radiationPressureFactory{},
		GravityFieldVariation:   gravityVariationFactory{},
	}
}

type ephemerisFactory struct{}

func (ephemerisFactory) CreateEphemeris(body string, s *model.EphemerisSettings, bodies core.BodyMap) (core.Ephemeris, error) {
	switch s.Kind {
	case model.EphemerisConstant:
		return NewConstantEphemeris(core.State(s.ConstantState), s.FrameOrigin, s.FrameOrientation), nil

	case model.EphemerisKeplerian:
		if s.Elements == nil {
			return nil, fmt.Errorf("keplerian ephemeris needs orbital elements")
		}
		elements := *s.Elements
		if elements.GravitationalParameter == 0 {
			// Fall back to the gravity field of the frame origin body,
			// which the creation order guarantees to exist already.
			mu, err := originGravitationalParameter(s.FrameOrigin, bodies)
			if err != nil {
				return nil, err
			}
			elements.GravitationalParameter = mu
		}
		return NewKeplerianEphemeris(elements, s.FrameOrigin, s.FrameOrientation)

	case model.EphemerisSGP4:
		return NewSGP4EphemerisFromTLE(s.TLELine1, s.TLELine2, s.FrameOrigin, s.FrameOrientation)

	case model.EphemerisCustom:
		return NewCustomEphemeris(s.StateFunc, s.FrameOrigin, s.FrameOrientation)

	default:
		return nil, fmt.Errorf("unknown ephemeris kind %q", s.Kind)
	}
}

func originGravitationalParameter(origin string, bodies core.BodyMap) (float64, error) {
	originBody, ok := bodies[origin]
	if !ok {
		return 0, fmt.Errorf("frame origin body %q not available for gravitational parameter lookup", origin)
	}
	gf := originBody.GravityField()
	if gf == nil {
		return 0, fmt.Errorf("frame origin body %q has no gravity field to take the gravitational parameter from", origin)
	}
	return gf.GravitationalParameter(), nil
}

type gravityFieldFactory struct{}

func (gravityFieldFactory) CreateGravityField(body string, s *model.GravityFieldSettings, _ core.BodyMap) (core.GravityField, error) {
	if s.GravitationalParameter <= 0 {
		return nil, fmt.Errorf("gravity field needs a positive gravitational parameter, got %v", s.GravitationalParameter)
	}
	switch s.Kind {
	case model.GravityPointMass:
		return NewCentralGravityField(s.GravitationalParameter), nil
	case model.GravityPointMassJ2:
		if s.ReferenceRadius <= 0 {
			return nil, fmt.Errorf("J2 gravity field needs a positive reference radius, got %v", s.ReferenceRadius)
		}
		return NewCentralGravityFieldJ2(s.GravitationalParameter, s.J2, s.ReferenceRadius), nil
	default:
		return nil, fmt.Errorf("unknown gravity field kind %q", s.Kind)
	}
}

type atmosphereFactory struct{}

func (atmosphereFactory) CreateAtmosphere(body string, s *model.AtmosphereSettings, _ core.BodyMap) (core.Atmosphere, error) {
	switch s.Kind {
	case model.AtmosphereExponential:
		if s.ScaleHeight <= 0 {
			return nil, fmt.Errorf("exponential atmosphere needs a positive scale height, got %v", s.ScaleHeight)
		}
		return NewExponentialAtmosphere(s.SurfaceDensity, s.ScaleHeight, s.ConstantTemperature), nil
	default:
		return nil, fmt.Errorf("unknown atmosphere kind %q", s.Kind)
	}
}

type rotationModelFactory struct{}

func (rotationModelFactory) CreateRotationModel(body string, s *model.RotationModelSettings, _ core.BodyMap) (core.RotationalEphemeris, error) {
	switch s.Kind {
	case model.RotationSimple:
		return NewSimpleRotationModel(s.BaseFrameOrientation, s.TargetFrameOrientation, s.RotationRate, s.InitialAngle, s.Epoch), nil
	default:
		return nil, fmt.Errorf("unknown rotation model kind %q", s.Kind)
	}
}

type shapeFactory struct{}

func (shapeFactory) CreateShape(body string, s *model.ShapeSettings, _ core.BodyMap) (core.ShapeModel, error) {
	if s.Radius <= 0 {
		return nil, fmt.Errorf("shape model needs a positive radius, got %v", s.Radius)
	}
	switch s.Kind {
	case model.ShapeSpherical:
		return NewSphericalShape(s.Radius), nil
	case model.ShapeOblate:
		return NewOblateSpheroidShape(s.Radius, s.Flattening), nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", s.Kind)
	}
}

type aeroCoefficientFactory struct{}

func (aeroCoefficientFactory) CreateAerodynamicCoefficients(body string, s *model.AerodynamicCoefficientSettings, _ core.BodyMap) (core.AerodynamicCoefficients, error) {
	if s.ReferenceArea <= 0 {
		return nil, fmt.Errorf("aerodynamic coefficients need a positive reference area, got %v", s.ReferenceArea)
	}
	return NewConstantAerodynamicCoefficients(s.ReferenceArea, s.DragCoefficient, s.LiftCoefficient), nil
}

type radiationPressureFactory struct{}

func (radiationPressureFactory) CreateRadiationPressureInterface(body, source string, s *model.RadiationPressureSettings, _ core.BodyMap) (core.RadiationPressureInterface, error) {
	switch s.Kind {
	case model.RadiationCannonball:
		if s.ReferenceArea <= 0 {
			return nil, fmt.Errorf("cannonball radiation pressure needs a positive reference area, got %v", s.ReferenceArea)
		}
		return NewCannonballRadiationPressure(source, s.ReferenceArea, s.RadiationPressureCoefficient, s.OccultingBodies), nil
	default:
		return nil, fmt.Errorf("unknown radiation pressure kind %q", s.Kind)
	}
}

type gravityVariationFactory struct{}

func (gravityVariationFactory) CreateGravityFieldVariation(body string, s *model.GravityFieldVariationSettings, _ core.BodyMap) (core.GravityFieldVariation, error) {
	switch s.Kind {
	case model.GravityVariationBasicTidal:
		if len(s.DeformingBodies) == 0 {
			return nil, fmt.Errorf("tidal gravity field variation needs at least one deforming body")
		}
		return NewBasicTidalVariation(s.DeformingBodies, s.LoveNumber, s.ReferenceRadius), nil
	default:
		return nil, fmt.Errorf("unknown gravity field variation kind %q", s.Kind)
	}
}
