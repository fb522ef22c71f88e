package physics

import "math"

// ExponentialAtmosphere is an isothermal atmosphere whose density decays
// exponentially with altitude.
type ExponentialAtmosphere struct {
	surfaceDensity float64 // kg/m^3
	scaleHeight    float64 // m
	temperature    float64 // K
}

// NewExponentialAtmosphere constructs an exponential atmosphere.
func NewExponentialAtmosphere(surfaceDensity, scaleHeight, temperature float64) *ExponentialAtmosphere {
	return &ExponentialAtmosphere{
		surfaceDensity: surfaceDensity,
		scaleHeight:    scaleHeight,
		temperature:    temperature,
	}
}

// DensityAt returns the density at the given altitude above the reference
// surface in kg/m^3.
func (a *ExponentialAtmosphere) DensityAt(altitude float64) float64 {
	return a.surfaceDensity * math.Exp(-altitude/a.scaleHeight)
}

// Temperature returns the constant atmosphere temperature in kelvin.
func (a *ExponentialAtmosphere) Temperature() float64 { return a.temperature }

// SphericalShape models the body as a sphere.
type SphericalShape struct {
	radius float64 // m
}

// NewSphericalShape constructs a spherical shape model.
func NewSphericalShape(radius float64) *SphericalShape {
	return &SphericalShape{radius: radius}
}

func (s *SphericalShape) AverageRadius() float64 { return s.radius }

// OblateSpheroidShape models the body as an oblate spheroid.
type OblateSpheroidShape struct {
	equatorialRadius float64 // m
	flattening       float64
}

// NewOblateSpheroidShape constructs an oblate spheroid shape model.
func NewOblateSpheroidShape(equatorialRadius, flattening float64) *OblateSpheroidShape {
	return &OblateSpheroidShape{equatorialRadius: equatorialRadius, flattening: flattening}
}

// AverageRadius returns the mean radius of the spheroid.
func (s *OblateSpheroidShape) AverageRadius() float64 {
	return s.equatorialRadius * (1 - s.flattening/3)
}

func (s *OblateSpheroidShape) EquatorialRadius() float64 { return s.equatorialRadius }
func (s *OblateSpheroidShape) Flattening() float64       { return s.flattening }

// ConstantAerodynamicCoefficients is a fixed drag/lift coefficient set.
type ConstantAerodynamicCoefficients struct {
	referenceArea   float64 // m^2
	dragCoefficient float64
	liftCoefficient float64
}

// NewConstantAerodynamicCoefficients constructs a constant coefficient set.
func NewConstantAerodynamicCoefficients(referenceArea, drag, lift float64) *ConstantAerodynamicCoefficients {
	return &ConstantAerodynamicCoefficients{
		referenceArea:   referenceArea,
		dragCoefficient: drag,
		liftCoefficient: lift,
	}
}

func (c *ConstantAerodynamicCoefficients) ReferenceArea() float64   { return c.referenceArea }
func (c *ConstantAerodynamicCoefficients) DragCoefficient() float64 { return c.dragCoefficient }
func (c *ConstantAerodynamicCoefficients) LiftCoefficient() float64 { return c.liftCoefficient }

// CannonballRadiationPressure treats the body as a sphere of constant
// reflectivity towards one radiating source. Occulting bodies are kept by
// name and resolved when the interface is evaluated.
type CannonballRadiationPressure struct {
	sourceName          string
	referenceArea       float64 // m^2
	pressureCoefficient float64
	occultingBodies     []string
}

// NewCannonballRadiationPressure constructs a cannonball interface.
func NewCannonballRadiationPressure(sourceName string, referenceArea, coefficient float64, occultingBodies []string) *CannonballRadiationPressure {
	bodies := make([]string, len(occultingBodies))
	copy(bodies, occultingBodies)
	return &CannonballRadiationPressure{
		sourceName:          sourceName,
		referenceArea:       referenceArea,
		pressureCoefficient: coefficient,
		occultingBodies:     bodies,
	}
}

func (r *CannonballRadiationPressure) SourceName() string           { return r.sourceName }
func (r *CannonballRadiationPressure) ReferenceArea() float64       { return r.referenceArea }
func (r *CannonballRadiationPressure) PressureCoefficient() float64 { return r.pressureCoefficient }
func (r *CannonballRadiationPressure) OccultingBodies() []string    { return r.occultingBodies }
