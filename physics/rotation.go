package physics

import (
	"math"
	"time"

	"github.com/signalsfoundry/astro-environment/core"
)

// SimpleRotationModel spins the body uniformly about its z axis, from a base
// orientation frame to the body-fixed target frame.
type SimpleRotationModel struct {
	baseOrientation   string
	targetOrientation string

	rotationRate float64 // rad/s
	initialAngle float64 // rad at epoch
	epoch        time.Time
}

// NewSimpleRotationModel constructs a uniform z-axis rotation.
func NewSimpleRotationModel(baseOrientation, targetOrientation string, rate, initialAngle float64, epoch time.Time) *SimpleRotationModel {
	return &SimpleRotationModel{
		baseOrientation:   baseOrientation,
		targetOrientation: targetOrientation,
		rotationRate:      rate,
		initialAngle:      initialAngle,
		epoch:             epoch,
	}
}

func (m *SimpleRotationModel) BaseFrameOrientation() string   { return m.baseOrientation }
func (m *SimpleRotationModel) TargetFrameOrientation() string { return m.targetOrientation }

// AngleAt returns the rotation angle about the z axis at time t, wrapped to
// [0, 2π).
func (m *SimpleRotationModel) AngleAt(t time.Time) float64 {
	angle := math.Mod(m.initialAngle+m.rotationRate*t.Sub(m.epoch).Seconds(), 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// RotationToTargetFrame returns the base-to-body-fixed rotation at time t.
func (m *SimpleRotationModel) RotationToTargetFrame(t time.Time) core.RotationMatrix {
	angle := m.AngleAt(t)
	c, s := math.Cos(angle), math.Sin(angle)
	return core.RotationMatrix{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}
