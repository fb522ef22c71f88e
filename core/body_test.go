package core

import (
	"errors"
	"testing"
	"time"
)

// stubEphemeris is a minimal fixed-state ephemeris for setup tests.
type stubEphemeris struct {
	origin      string
	orientation string
	state       State
	err         error
}

func (s *stubEphemeris) StateAt(time.Time) (State, error) {
	if s.err != nil {
		return State{}, s.err
	}
	return s.state, nil
}

func (s *stubEphemeris) ReferenceFrameOrigin() string      { return s.origin }
func (s *stubEphemeris) ReferenceFrameOrientation() string { return s.orientation }

// stubRotation is a minimal rotational ephemeris for setup tests.
type stubRotation struct {
	base   string
	target string
}

func (s *stubRotation) RotationToTargetFrame(time.Time) RotationMatrix {
	return RotationMatrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (s *stubRotation) BaseFrameOrientation() string   { return s.base }
func (s *stubRotation) TargetFrameOrientation() string { return s.target }

func bodyWithEphemeris(name string, eph Ephemeris) *Body {
	b := NewBody(name)
	b.ephemeris = eph
	return b
}

func TestBodyStateInBaseFrame_NoEphemeris(t *testing.T) {
	b := NewBody("Probe")
	if _, err := b.StateInBaseFrame(time.Now()); err == nil {
		t.Fatalf("expected error for body without ephemeris")
	}
}

func TestBodyStateInBaseFrame_AddsOriginTranslation(t *testing.T) {
	local := State{1, 2, 3, 4, 5, 6}
	origin := State{10, 20, 30, 0, 0, 0}

	b := bodyWithEphemeris("Moon", &stubEphemeris{origin: "Earth", orientation: "ECLIPJ2000", state: local})
	b.SetBaseFrameState(NewBaseStateSource("Earth", func(time.Time) (State, error) {
		return origin, nil
	}))

	got, err := b.StateInBaseFrame(time.Now())
	if err != nil {
		t.Fatalf("StateInBaseFrame: %v", err)
	}
	if want := local.Add(origin); got != want {
		t.Fatalf("StateInBaseFrame = %v, want %v", got, want)
	}
}

func TestBodyStateInBaseFrame_PropagatesEphemerisError(t *testing.T) {
	boom := errors.New("no data for epoch")
	b := bodyWithEphemeris("Moon", &stubEphemeris{state: State{}, err: boom})

	if _, err := b.StateInBaseFrame(time.Now()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped ephemeris error, got %v", err)
	}
}

// The translation logic is generic over scalar and time representations; a
// float32/float64-time instantiation must behave like the default one.
func TestTranslateToBase_GenericInstantiation(t *testing.T) {
	local := Vector6[float32]{1, 1, 1, 0, 0, 0}
	source := NewBaseStateSource[float32, float64]("Earth", func(float64) (Vector6[float32], error) {
		return Vector6[float32]{2, 2, 2, 1, 1, 1}, nil
	})

	got, err := translateToBase(local, source, 0.0)
	if err != nil {
		t.Fatalf("translateToBase: %v", err)
	}
	if want := (Vector6[float32]{3, 3, 3, 1, 1, 1}); got != want {
		t.Fatalf("translateToBase = %v, want %v", got, want)
	}

	unchanged, err := translateToBase(local, nil, 0.0)
	if err != nil {
		t.Fatalf("translateToBase nil source: %v", err)
	}
	if unchanged != local {
		t.Fatalf("nil source should leave the state unchanged, got %v", unchanged)
	}
}

func TestVector6Accessors(t *testing.T) {
	v := State{1, 2, 3, 4, 5, 6}
	if got := v.Position(); got != [3]float64{1, 2, 3} {
		t.Fatalf("Position = %v", got)
	}
	if got := v.Velocity(); got != [3]float64{4, 5, 6} {
		t.Fatalf("Velocity = %v", got)
	}
	if got := v.Sub(State{1, 1, 1, 1, 1, 1}); got != (State{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("Sub = %v", got)
	}
}
