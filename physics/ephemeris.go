// Package physics provides concrete implementations of the environment
// model interfaces and the default per-domain factories that build them
// from settings.
package physics

import (
	"fmt"
	"math"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/astro-environment/core"
	"github.com/signalsfoundry/astro-environment/model"
)

// ConstantEphemeris keeps a body at a fixed state in its frame. Used for
// frame roots like a barycentre pinned at the origin.
type ConstantEphemeris struct {
	state            core.State
	frameOrigin      string
	frameOrientation string
}

// NewConstantEphemeris constructs a fixed-state ephemeris.
func NewConstantEphemeris(state core.State, frameOrigin, frameOrientation string) *ConstantEphemeris {
	return &ConstantEphemeris{state: state, frameOrigin: frameOrigin, frameOrientation: frameOrientation}
}

func (e *ConstantEphemeris) StateAt(time.Time) (core.State, error) { return e.state, nil }
func (e *ConstantEphemeris) ReferenceFrameOrigin() string          { return e.frameOrigin }
func (e *ConstantEphemeris) ReferenceFrameOrientation() string     { return e.frameOrientation }

// KeplerianEphemeris propagates unperturbed two-body motion from classical
// elements at a reference epoch.
type KeplerianEphemeris struct {
	elements         model.KeplerianElements
	frameOrigin      string
	frameOrientation string
}

// NewKeplerianEphemeris constructs a two-body ephemeris. The elements must
// carry a non-zero gravitational parameter.
func NewKeplerianEphemeris(elements model.KeplerianElements, frameOrigin, frameOrientation string) (*KeplerianEphemeris, error) {
	if elements.GravitationalParameter <= 0 {
		return nil, fmt.Errorf("keplerian ephemeris needs a positive gravitational parameter, got %v", elements.GravitationalParameter)
	}
	if elements.SemiMajorAxis <= 0 {
		return nil, fmt.Errorf("keplerian ephemeris needs a positive semi-major axis, got %v", elements.SemiMajorAxis)
	}
	if elements.Eccentricity < 0 || elements.Eccentricity >= 1 {
		return nil, fmt.Errorf("keplerian ephemeris supports elliptic orbits only, eccentricity %v", elements.Eccentricity)
	}
	return &KeplerianEphemeris{elements: elements, frameOrigin: frameOrigin, frameOrientation: frameOrientation}, nil
}

func (e *KeplerianEphemeris) ReferenceFrameOrigin() string      { return e.frameOrigin }
func (e *KeplerianEphemeris) ReferenceFrameOrientation() string { return e.frameOrientation }

// StateAt advances the mean anomaly from the reference epoch, solves Kepler's
// equation, and rotates the perifocal state into the ephemeris frame.
func (e *KeplerianEphemeris) StateAt(t time.Time) (core.State, error) {
	el := e.elements
	mu := el.GravitationalParameter
	a := el.SemiMajorAxis
	ecc := el.Eccentricity

	// Mean anomaly at epoch from the true anomaly.
	e0 := eccentricFromTrue(el.TrueAnomalyAtEpoch, ecc)
	m0 := e0 - ecc*math.Sin(e0)

	n := math.Sqrt(mu / (a * a * a))
	m := m0 + n*t.Sub(el.Epoch).Seconds()

	ea, err := solveKepler(m, ecc)
	if err != nil {
		return core.State{}, err
	}

	// Perifocal position and velocity.
	cosE := math.Cos(ea)
	sinE := math.Sin(ea)
	r := a * (1 - ecc*cosE)
	b := a * math.Sqrt(1-ecc*ecc)

	px := a * (cosE - ecc)
	py := b * sinE
	pvx := -math.Sqrt(mu*a) / r * sinE
	pvy := math.Sqrt(mu*a) * math.Sqrt(1-ecc*ecc) / r * cosE

	rot := perifocalToFrame(el.ArgumentOfPeriapsis, el.Inclination, el.LongitudeOfAscendingNode)

	var out core.State
	out[0] = rot[0][0]*px + rot[0][1]*py
	out[1] = rot[1][0]*px + rot[1][1]*py
	out[2] = rot[2][0]*px + rot[2][1]*py
	out[3] = rot[0][0]*pvx + rot[0][1]*pvy
	out[4] = rot[1][0]*pvx + rot[1][1]*pvy
	out[5] = rot[2][0]*pvx + rot[2][1]*pvy
	return out, nil
}

// eccentricFromTrue converts true anomaly to eccentric anomaly.
func eccentricFromTrue(nu, ecc float64) float64 {
	return math.Atan2(math.Sqrt(1-ecc*ecc)*math.Sin(nu), ecc+math.Cos(nu))
}

// solveKepler finds E with E - e sin E = M by Newton iteration.
func solveKepler(m, ecc float64) (float64, error) {
	ea := m
	if ecc > 0.8 {
		ea = math.Pi
	}
	for i := 0; i < 50; i++ {
		f := ea - ecc*math.Sin(ea) - m
		ea -= f / (1 - ecc*math.Cos(ea))
		if math.Abs(f) < 1e-12 {
			return ea, nil
		}
	}
	return 0, fmt.Errorf("kepler equation did not converge for M=%v, e=%v", m, ecc)
}

// perifocalToFrame is the 3-1-3 rotation taking perifocal coordinates into
// the ephemeris frame: R3(-raan) R1(-inc) R3(-argPeri).
func perifocalToFrame(argPeri, inc, raan float64) core.RotationMatrix {
	cw, sw := math.Cos(argPeri), math.Sin(argPeri)
	ci, si := math.Cos(inc), math.Sin(inc)
	co, so := math.Cos(raan), math.Sin(raan)

	return core.RotationMatrix{
		{co*cw - so*sw*ci, -co*sw - so*cw*ci, so * si},
		{so*cw + co*sw*ci, -so*sw + co*cw*ci, -co * si},
		{sw * si, cw * si, ci},
	}
}

// SGP4Ephemeris propagates an Earth-orbiting vehicle from a TLE. States come
// out in the TEME inertial frame in metres; go-satellite works in
// kilometres.
type SGP4Ephemeris struct {
	sat              satellite.Satellite
	frameOrigin      string
	frameOrientation string
}

// NewSGP4EphemerisFromTLE parses the TLE and initialises the propagator.
func NewSGP4EphemerisFromTLE(line1, line2, frameOrigin, frameOrientation string) (*SGP4Ephemeris, error) {
	if line1 == "" || line2 == "" {
		return nil, fmt.Errorf("sgp4 ephemeris needs both TLE lines")
	}
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	return &SGP4Ephemeris{sat: sat, frameOrigin: frameOrigin, frameOrientation: frameOrientation}, nil
}

func (e *SGP4Ephemeris) ReferenceFrameOrigin() string      { return e.frameOrigin }
func (e *SGP4Ephemeris) ReferenceFrameOrientation() string { return e.frameOrientation }

func (e *SGP4Ephemeris) StateAt(t time.Time) (core.State, error) {
	t = t.UTC()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	pos, vel := satellite.Propagate(e.sat, year, int(month), day, hour, min, sec)

	const kmToM = 1000.0
	return core.State{
		pos.X * kmToM, pos.Y * kmToM, pos.Z * kmToM,
		vel.X * kmToM, vel.Y * kmToM, vel.Z * kmToM,
	}, nil
}

// CustomEphemeris wraps a caller-supplied state function.
type CustomEphemeris struct {
	stateAt          func(t time.Time) ([6]float64, error)
	frameOrigin      string
	frameOrientation string
}

// NewCustomEphemeris wraps fn as an ephemeris in the given frame.
func NewCustomEphemeris(fn func(t time.Time) ([6]float64, error), frameOrigin, frameOrientation string) (*CustomEphemeris, error) {
	if fn == nil {
		return nil, fmt.Errorf("custom ephemeris needs a state function")
	}
	return &CustomEphemeris{stateAt: fn, frameOrigin: frameOrigin, frameOrientation: frameOrientation}, nil
}

func (e *CustomEphemeris) ReferenceFrameOrigin() string      { return e.frameOrigin }
func (e *CustomEphemeris) ReferenceFrameOrientation() string { return e.frameOrientation }

func (e *CustomEphemeris) StateAt(t time.Time) (core.State, error) {
	st, err := e.stateAt(t)
	if err != nil {
		return core.State{}, err
	}
	return core.State(st), nil
}
