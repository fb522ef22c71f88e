package model

// BodySettings aggregates the model settings for a single body in the
// simulation environment. Every field is optional; a body only gets the
// models whose settings are present. The per-domain factories turn these
// descriptors into runtime models.
//
// Body names are the keys of the settings map handed to the setup layer and
// must be unique there; a settings object never names its own body as a
// frame origin.
type BodySettings struct {
	Atmosphere              *AtmosphereSettings
	Ephemeris               *EphemerisSettings
	GravityField            *GravityFieldSettings
	RotationModel           *RotationModelSettings
	Shape                   *ShapeSettings
	AerodynamicCoefficients *AerodynamicCoefficientSettings

	// RadiationPressure maps the name of the radiating source body to the
	// interface settings for that source.
	RadiationPressure map[string]*RadiationPressureSettings

	// GravityFieldVariations lists time-variations of the gravity field in
	// application order.
	GravityFieldVariations []*GravityFieldVariationSettings
}
