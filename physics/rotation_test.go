package physics

import (
	"math"
	"testing"
	"time"
)

func TestSimpleRotationModel_AngleAdvances(t *testing.T) {
	epoch := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	rate := 2 * math.Pi / 86400 // one revolution per day
	m := NewSimpleRotationModel("ECLIPJ2000", "Earth_Fixed", rate, 0.5, epoch)

	if got := m.AngleAt(epoch); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("angle at epoch = %v, want 0.5", got)
	}

	quarter := epoch.Add(6 * time.Hour)
	if got, want := m.AngleAt(quarter), 0.5+math.Pi/2; math.Abs(got-want) > 1e-9 {
		t.Fatalf("angle after quarter day = %v, want %v", got, want)
	}

	// A negative rate wraps into [0, 2π).
	retro := NewSimpleRotationModel("ECLIPJ2000", "Venus_Fixed", -rate, 0, epoch)
	if got := retro.AngleAt(epoch.Add(6 * time.Hour)); got < 0 || got >= 2*math.Pi {
		t.Fatalf("angle out of range: %v", got)
	}
}

func TestSimpleRotationModel_MatrixIsOrthonormal(t *testing.T) {
	epoch := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewSimpleRotationModel("ECLIPJ2000", "Earth_Fixed", 7.2921159e-5, 0.3, epoch)

	rot := m.RotationToTargetFrame(epoch.Add(90 * time.Minute))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dot := 0.0
			for k := 0; k < 3; k++ {
				dot += rot[i][k] * rot[j][k]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(dot-want) > 1e-12 {
				t.Fatalf("row %d · row %d = %v, want %v", i, j, dot, want)
			}
		}
	}
}

func TestSimpleRotationModel_Frames(t *testing.T) {
	m := NewSimpleRotationModel("ECLIPJ2000", "Earth_Fixed", 0, 0, time.Now())
	if m.BaseFrameOrientation() != "ECLIPJ2000" || m.TargetFrameOrientation() != "Earth_Fixed" {
		t.Fatalf("frames = %q/%q", m.BaseFrameOrientation(), m.TargetFrameOrientation())
	}
}
