package model

// AtmosphereKind selects the atmosphere model for a body.
type AtmosphereKind string

const (
	AtmosphereExponential AtmosphereKind = "exponential"
)

// AtmosphereSettings describes a body's atmosphere model.
type AtmosphereSettings struct {
	Kind AtmosphereKind

	SurfaceDensity      float64 // kg/m^3 at zero altitude
	ScaleHeight         float64 // m
	ConstantTemperature float64 // K
}

// GravityFieldKind selects the gravity field model for a body.
type GravityFieldKind string

const (
	GravityPointMass   GravityFieldKind = "point_mass"
	GravityPointMassJ2 GravityFieldKind = "point_mass_j2"
)

// GravityFieldSettings describes a body's gravity field model.
type GravityFieldSettings struct {
	Kind GravityFieldKind

	GravitationalParameter float64 // m^3/s^2
	J2                     float64 // unnormalised zonal coefficient, GravityPointMassJ2 only
	ReferenceRadius        float64 // m, GravityPointMassJ2 only
}

// ShapeKind selects the shape model for a body.
type ShapeKind string

const (
	ShapeSpherical ShapeKind = "spherical"
	ShapeOblate    ShapeKind = "oblate_spheroid"
)

// ShapeSettings describes a body's shape model.
type ShapeSettings struct {
	Kind ShapeKind

	Radius     float64 // mean radius (spherical) or equatorial radius (oblate), m
	Flattening float64 // oblate only
}

// AerodynamicCoefficientSettings describes a constant aerodynamic
// coefficient set.
type AerodynamicCoefficientSettings struct {
	ReferenceArea   float64 // m^2
	DragCoefficient float64
	LiftCoefficient float64
}

// RadiationPressureKind selects the radiation pressure interface model.
type RadiationPressureKind string

const (
	RadiationCannonball RadiationPressureKind = "cannonball"
)

// RadiationPressureSettings describes a radiation pressure interface between
// a body and one radiating source. Occulting bodies are referenced by name
// and looked up when the interface is evaluated, never captured at creation
// time, so they place no constraint on body creation order.
type RadiationPressureSettings struct {
	Kind RadiationPressureKind

	ReferenceArea                float64 // m^2
	RadiationPressureCoefficient float64
	OccultingBodies              []string
}

// GravityFieldVariationKind selects a gravity field variation model.
type GravityFieldVariationKind string

const (
	GravityVariationBasicTidal GravityFieldVariationKind = "basic_tidal"
)

// GravityFieldVariationSettings describes one time-variation of a body's
// gravity field.
type GravityFieldVariationSettings struct {
	Kind GravityFieldVariationKind

	DeformingBodies []string
	LoveNumber      float64
	ReferenceRadius float64 // m
}
