package core

// Scalar is the set of floating point representations a state vector can be
// expressed in.
type Scalar interface {
	~float32 | ~float64
}

// Vector6 is a translational state: position x, y, z in metres followed by
// velocity vx, vy, vz in metres per second.
type Vector6[S Scalar] [6]S

// Add returns the component-wise sum v + other.
func (v Vector6[S]) Add(other Vector6[S]) Vector6[S] {
	var out Vector6[S]
	for i := range v {
		out[i] = v[i] + other[i]
	}
	return out
}

// Sub returns the component-wise difference v - other.
func (v Vector6[S]) Sub(other Vector6[S]) Vector6[S] {
	var out Vector6[S]
	for i := range v {
		out[i] = v[i] - other[i]
	}
	return out
}

// Position returns the first three components.
func (v Vector6[S]) Position() [3]S {
	return [3]S{v[0], v[1], v[2]}
}

// Velocity returns the last three components.
func (v Vector6[S]) Velocity() [3]S {
	return [3]S{v[3], v[4], v[5]}
}

// State is the default double-precision instantiation used throughout the
// environment setup path.
type State = Vector6[float64]

// StateFunc returns a state at time t, or an error when the underlying model
// cannot be evaluated there.
type StateFunc[S Scalar, T any] func(t T) (Vector6[S], error)

// BaseStateSource is a named, time-parameterized state function giving a
// body's state in the global base frame. It holds a lookup relation to the
// origin body, not ownership: the function is expected to query the origin's
// live state accessor so that frame chains compose at call time.
type BaseStateSource[S Scalar, T any] struct {
	originName string
	stateAt    StateFunc[S, T]
}

// NewBaseStateSource binds a base-state source to the named frame origin.
func NewBaseStateSource[S Scalar, T any](originName string, stateAt StateFunc[S, T]) *BaseStateSource[S, T] {
	return &BaseStateSource[S, T]{originName: originName, stateAt: stateAt}
}

// OriginName reports the frame origin this source translates from.
func (b *BaseStateSource[S, T]) OriginName() string { return b.originName }

// StateAt evaluates the origin body's state in the base frame at time t.
func (b *BaseStateSource[S, T]) StateAt(t T) (Vector6[S], error) {
	return b.stateAt(t)
}

// translateToBase shifts a state expressed relative to an ephemeris origin
// into the base frame by adding the origin's own base-frame state. A nil
// source means the ephemeris origin already is the base origin.
func translateToBase[S Scalar, T any](local Vector6[S], source *BaseStateSource[S, T], t T) (Vector6[S], error) {
	if source == nil {
		return local, nil
	}
	origin, err := source.StateAt(t)
	if err != nil {
		return Vector6[S]{}, err
	}
	return local.Add(origin), nil
}

// RotationMatrix is a 3x3 direction cosine matrix, row major.
type RotationMatrix [3][3]float64
