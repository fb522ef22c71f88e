package model

import "time"

// EphemerisKind selects the translational ephemeris model for a body.
type EphemerisKind string

const (
	EphemerisConstant  EphemerisKind = "constant"
	EphemerisKeplerian EphemerisKind = "keplerian"
	EphemerisSGP4      EphemerisKind = "sgp4"
	EphemerisCustom    EphemerisKind = "custom"
)

// EphemerisSettings describes a body's translational ephemeris and the
// reference frame it is expressed in. FrameOrigin may name another body in
// the same settings set, in which case that body must be created first and
// the frame enforcement pass will attach a translation to the global origin.
type EphemerisSettings struct {
	Kind             EphemerisKind
	FrameOrigin      string
	FrameOrientation string

	// ConstantState is used by EphemerisConstant: a fixed position/velocity
	// in metres and metres per second.
	ConstantState [6]float64

	// Elements is used by EphemerisKeplerian.
	Elements *KeplerianElements

	// TLELine1 and TLELine2 are used by EphemerisSGP4.
	TLELine1 string
	TLELine2 string

	// StateFunc is used by EphemerisCustom. It must be set by code, not
	// configuration.
	StateFunc func(t time.Time) ([6]float64, error)
}

// KeplerianElements holds classical orbital elements at a reference epoch.
// Distances in metres, angles in radians.
type KeplerianElements struct {
	SemiMajorAxis            float64
	Eccentricity             float64
	Inclination              float64
	ArgumentOfPeriapsis      float64
	LongitudeOfAscendingNode float64
	TrueAnomalyAtEpoch       float64
	Epoch                    time.Time

	// GravitationalParameter of the central body in m^3/s^2. When zero, the
	// ephemeris factory looks it up from the gravity field of the frame
	// origin body.
	GravitationalParameter float64
}

// RotationModelKind selects the rotational ephemeris model for a body.
type RotationModelKind string

const (
	// RotationSimple is a uniform rotation about the body's z axis.
	RotationSimple RotationModelKind = "simple"
)

// RotationModelSettings describes a body's rotational ephemeris: the
// orientation frame the rotation is defined with respect to, the body-fixed
// target frame, and the spin state. BaseFrameOrigin optionally names the
// body whose frame the model was derived in; when it names a managed body,
// that body is created first.
type RotationModelSettings struct {
	Kind                   RotationModelKind
	BaseFrameOrigin        string
	BaseFrameOrientation   string
	TargetFrameOrientation string

	RotationRate float64 // rad/s about the z axis
	InitialAngle float64 // rad at Epoch
	Epoch        time.Time
}
