package core

import (
	"strings"
	"testing"
	"time"

	"github.com/signalsfoundry/astro-environment/model"
)

const scenarioJSON = `{
  "global_frame": {"origin": "SSB", "orientation": "ECLIPJ2000"},
  "bodies": {
    "Sun": {
      "ephemeris": {
        "kind": "constant",
        "frame_origin": "SSB",
        "frame_orientation": "ECLIPJ2000",
        "constant_state": [0, 0, 0, 0, 0, 0]
      },
      "gravity_field": {"kind": "point_mass", "gravitational_parameter": 1.32712440018e20}
    },
    "Earth": {
      "ephemeris": {
        "kind": "keplerian",
        "frame_origin": "Sun",
        "frame_orientation": "ECLIPJ2000",
        "elements": {
          "semi_major_axis": 1.49598023e11,
          "eccentricity": 0.0167,
          "epoch": "2000-01-01T12:00:00Z"
        }
      },
      "rotation_model": {
        "kind": "simple",
        "base_frame_orientation": "ECLIPJ2000",
        "target_frame_orientation": "Earth_Fixed",
        "rotation_rate": 7.2921159e-5
      },
      "atmosphere": {"kind": "exponential", "surface_density": 1.225, "scale_height": 7200},
      "shape": {"kind": "oblate_spheroid", "radius": 6.378137e6, "flattening": 0.003352},
      "radiation_pressure": {
        "Sun": {"kind": "cannonball", "reference_area": 10, "radiation_pressure_coefficient": 1.2, "occulting_bodies": ["Moon"]}
      },
      "gravity_field_variations": [
        {"kind": "basic_tidal", "deforming_bodies": ["Moon"], "love_number": 0.301, "reference_radius": 6.378137e6}
      ]
    }
  }
}`

func TestLoadEnvironmentScenario(t *testing.T) {
	scenario, err := LoadEnvironmentScenario(strings.NewReader(scenarioJSON))
	if err != nil {
		t.Fatalf("LoadEnvironmentScenario: %v", err)
	}

	if scenario.GlobalFrameOrigin != "SSB" || scenario.GlobalFrameOrientation != "ECLIPJ2000" {
		t.Fatalf("global frame = %q/%q", scenario.GlobalFrameOrigin, scenario.GlobalFrameOrientation)
	}
	if len(scenario.BodyNames) != 2 || scenario.BodyNames[0] != "Earth" || scenario.BodyNames[1] != "Sun" {
		t.Fatalf("BodyNames = %v", scenario.BodyNames)
	}

	earth := scenario.Settings["Earth"]
	if earth == nil || earth.Ephemeris == nil {
		t.Fatalf("Earth settings incomplete: %#v", earth)
	}
	if earth.Ephemeris.Kind != model.EphemerisKeplerian || earth.Ephemeris.FrameOrigin != "Sun" {
		t.Fatalf("Earth ephemeris = %#v", earth.Ephemeris)
	}
	wantEpoch := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if !earth.Ephemeris.Elements.Epoch.Equal(wantEpoch) {
		t.Fatalf("Earth epoch = %v, want %v", earth.Ephemeris.Elements.Epoch, wantEpoch)
	}
	if earth.RotationModel == nil || earth.RotationModel.TargetFrameOrientation != "Earth_Fixed" {
		t.Fatalf("Earth rotation model = %#v", earth.RotationModel)
	}
	// Empty rotation epoch defaults to J2000.
	if !earth.RotationModel.Epoch.Equal(wantEpoch) {
		t.Fatalf("default rotation epoch = %v, want J2000", earth.RotationModel.Epoch)
	}
	if rp := earth.RadiationPressure["Sun"]; rp == nil || rp.Kind != model.RadiationCannonball || len(rp.OccultingBodies) != 1 {
		t.Fatalf("Earth radiation pressure = %#v", rp)
	}
	if len(earth.GravityFieldVariations) != 1 || earth.GravityFieldVariations[0].LoveNumber != 0.301 {
		t.Fatalf("Earth gravity variations = %#v", earth.GravityFieldVariations)
	}

	sun := scenario.Settings["Sun"]
	if sun.Ephemeris.Kind != model.EphemerisConstant || sun.Ephemeris.ConstantState != [6]float64{} {
		t.Fatalf("Sun ephemeris = %#v", sun.Ephemeris)
	}
}

func TestLoadEnvironmentScenario_BadConstantState(t *testing.T) {
	bad := `{"bodies": {"Sun": {"ephemeris": {"kind": "constant", "constant_state": [1, 2, 3]}}}}`
	if _, err := LoadEnvironmentScenario(strings.NewReader(bad)); err == nil {
		t.Fatalf("expected error for 3-component constant_state")
	}
}

func TestLoadEnvironmentScenario_BadEpoch(t *testing.T) {
	bad := `{"bodies": {"Earth": {"rotation_model": {"kind": "simple", "epoch": "yesterday"}}}}`
	_, err := LoadEnvironmentScenario(strings.NewReader(bad))
	if err == nil || !strings.Contains(err.Error(), "epoch") {
		t.Fatalf("expected epoch parse error, got %v", err)
	}
}

func TestLoadEnvironmentScenario_BadJSON(t *testing.T) {
	if _, err := LoadEnvironmentScenario(strings.NewReader("{")); err == nil {
		t.Fatalf("expected decode error")
	}
}
