package core

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/signalsfoundry/astro-environment/model"
)

// EnvironmentScenario is what was loaded from a JSON environment file: the
// global frame plus the per-body settings, ready for CreateBodies and
// EnforceGlobalFrame. BodyNames is handy for logging from main().
type EnvironmentScenario struct {
	GlobalFrameOrigin      string
	GlobalFrameOrientation string
	BodyNames              []string
	Settings               map[string]*model.BodySettings
}

type environmentJSON struct {
	GlobalFrame globalFrameJSON             `json:"global_frame"`
	Bodies      map[string]bodySettingsJSON `json:"bodies"`
}

type globalFrameJSON struct {
	Origin      string `json:"origin"`
	Orientation string `json:"orientation"`
}

type bodySettingsJSON struct {
	Ephemeris               *ephemerisJSON                   `json:"ephemeris"`
	RotationModel           *rotationModelJSON               `json:"rotation_model"`
	GravityField            *gravityFieldJSON                `json:"gravity_field"`
	Atmosphere              *atmosphereJSON                  `json:"atmosphere"`
	Shape                   *shapeJSON                       `json:"shape"`
	AerodynamicCoefficients *aeroCoefficientsJSON            `json:"aerodynamic_coefficients"`
	RadiationPressure       map[string]radiationPressureJSON `json:"radiation_pressure"`
	GravityFieldVariations  []gravityVariationJSON           `json:"gravity_field_variations"`
}

type ephemerisJSON struct {
	Kind             string             `json:"kind"`
	FrameOrigin      string             `json:"frame_origin"`
	FrameOrientation string             `json:"frame_orientation"`
	ConstantState    []float64          `json:"constant_state"`
	Elements         *keplerElementsJSON `json:"elements"`
	TLELine1         string             `json:"tle_line1"`
	TLELine2         string             `json:"tle_line2"`
}

type keplerElementsJSON struct {
	SemiMajorAxis            float64 `json:"semi_major_axis"`
	Eccentricity             float64 `json:"eccentricity"`
	Inclination              float64 `json:"inclination"`
	ArgumentOfPeriapsis      float64 `json:"argument_of_periapsis"`
	LongitudeOfAscendingNode float64 `json:"longitude_of_ascending_node"`
	TrueAnomalyAtEpoch       float64 `json:"true_anomaly_at_epoch"`
	Epoch                    string  `json:"epoch"` // RFC 3339
	GravitationalParameter   float64 `json:"gravitational_parameter"`
}

type rotationModelJSON struct {
	Kind                   string  `json:"kind"`
	BaseFrameOrigin        string  `json:"base_frame_origin"`
	BaseFrameOrientation   string  `json:"base_frame_orientation"`
	TargetFrameOrientation string  `json:"target_frame_orientation"`
	RotationRate           float64 `json:"rotation_rate"`
	InitialAngle           float64 `json:"initial_angle"`
	Epoch                  string  `json:"epoch"` // RFC 3339
}

type gravityFieldJSON struct {
	Kind                   string  `json:"kind"`
	GravitationalParameter float64 `json:"gravitational_parameter"`
	J2                     float64 `json:"j2"`
	ReferenceRadius        float64 `json:"reference_radius"`
}

type atmosphereJSON struct {
	Kind                string  `json:"kind"`
	SurfaceDensity      float64 `json:"surface_density"`
	ScaleHeight         float64 `json:"scale_height"`
	ConstantTemperature float64 `json:"constant_temperature"`
}

type shapeJSON struct {
	Kind       string  `json:"kind"`
	Radius     float64 `json:"radius"`
	Flattening float64 `json:"flattening"`
}

type aeroCoefficientsJSON struct {
	ReferenceArea   float64 `json:"reference_area"`
	DragCoefficient float64 `json:"drag_coefficient"`
	LiftCoefficient float64 `json:"lift_coefficient"`
}

type radiationPressureJSON struct {
	Kind                         string   `json:"kind"`
	ReferenceArea                float64  `json:"reference_area"`
	RadiationPressureCoefficient float64  `json:"radiation_pressure_coefficient"`
	OccultingBodies              []string `json:"occulting_bodies"`
}

type gravityVariationJSON struct {
	Kind            string   `json:"kind"`
	DeformingBodies []string `json:"deforming_bodies"`
	LoveNumber      float64  `json:"love_number"`
	ReferenceRadius float64  `json:"reference_radius"`
}

// LoadEnvironmentScenario reads a JSON environment description from r and
// maps it onto model.BodySettings.
//
// It fails only on JSON / structural errors (bad kinds, bad epochs). Frame
// consistency is deliberately not checked here; that is what
// EnforceGlobalFrame is for after the bodies exist.
func LoadEnvironmentScenario(r io.Reader) (*EnvironmentScenario, error) {
	var payload environmentJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadEnvironmentScenario: decode failed: %w", err)
	}

	result := &EnvironmentScenario{
		GlobalFrameOrigin:      payload.GlobalFrame.Origin,
		GlobalFrameOrientation: payload.GlobalFrame.Orientation,
		Settings:               make(map[string]*model.BodySettings, len(payload.Bodies)),
	}

	for name, js := range payload.Bodies {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("LoadEnvironmentScenario: body with empty name")
		}
		settings, err := bodySettingsFromJSON(name, js)
		if err != nil {
			return nil, err
		}
		result.Settings[name] = settings
	}
	result.BodyNames = sortedKeys(result.Settings)

	return result, nil
}

func bodySettingsFromJSON(name string, js bodySettingsJSON) (*model.BodySettings, error) {
	s := &model.BodySettings{}

	if js.Ephemeris != nil {
		eph := &model.EphemerisSettings{
			Kind:             model.EphemerisKind(js.Ephemeris.Kind),
			FrameOrigin:      js.Ephemeris.FrameOrigin,
			FrameOrientation: js.Ephemeris.FrameOrientation,
			TLELine1:         js.Ephemeris.TLELine1,
			TLELine2:         js.Ephemeris.TLELine2,
		}
		if len(js.Ephemeris.ConstantState) > 0 {
			if len(js.Ephemeris.ConstantState) != 6 {
				return nil, fmt.Errorf("LoadEnvironmentScenario: body %q: constant_state needs 6 components, got %d",
					name, len(js.Ephemeris.ConstantState))
			}
			copy(eph.ConstantState[:], js.Ephemeris.ConstantState)
		}
		if js.Ephemeris.Elements != nil {
			epoch, err := parseEpoch(name, js.Ephemeris.Elements.Epoch)
			if err != nil {
				return nil, err
			}
			eph.Elements = &model.KeplerianElements{
				SemiMajorAxis:            js.Ephemeris.Elements.SemiMajorAxis,
				Eccentricity:             js.Ephemeris.Elements.Eccentricity,
				Inclination:              js.Ephemeris.Elements.Inclination,
				ArgumentOfPeriapsis:      js.Ephemeris.Elements.ArgumentOfPeriapsis,
				LongitudeOfAscendingNode: js.Ephemeris.Elements.LongitudeOfAscendingNode,
				TrueAnomalyAtEpoch:       js.Ephemeris.Elements.TrueAnomalyAtEpoch,
				Epoch:                    epoch,
				GravitationalParameter:   js.Ephemeris.Elements.GravitationalParameter,
			}
		}
		s.Ephemeris = eph
	}

	if js.RotationModel != nil {
		epoch, err := parseEpoch(name, js.RotationModel.Epoch)
		if err != nil {
			return nil, err
		}
		s.RotationModel = &model.RotationModelSettings{
			Kind:                   model.RotationModelKind(js.RotationModel.Kind),
			BaseFrameOrigin:        js.RotationModel.BaseFrameOrigin,
			BaseFrameOrientation:   js.RotationModel.BaseFrameOrientation,
			TargetFrameOrientation: js.RotationModel.TargetFrameOrientation,
			RotationRate:           js.RotationModel.RotationRate,
			InitialAngle:           js.RotationModel.InitialAngle,
			Epoch:                  epoch,
		}
	}

	if js.GravityField != nil {
		s.GravityField = &model.GravityFieldSettings{
			Kind:                   model.GravityFieldKind(js.GravityField.Kind),
			GravitationalParameter: js.GravityField.GravitationalParameter,
			J2:                     js.GravityField.J2,
			ReferenceRadius:        js.GravityField.ReferenceRadius,
		}
	}

	if js.Atmosphere != nil {
		s.Atmosphere = &model.AtmosphereSettings{
			Kind:                model.AtmosphereKind(js.Atmosphere.Kind),
			SurfaceDensity:      js.Atmosphere.SurfaceDensity,
			ScaleHeight:         js.Atmosphere.ScaleHeight,
			ConstantTemperature: js.Atmosphere.ConstantTemperature,
		}
	}

	if js.Shape != nil {
		s.Shape = &model.ShapeSettings{
			Kind:       model.ShapeKind(js.Shape.Kind),
			Radius:     js.Shape.Radius,
			Flattening: js.Shape.Flattening,
		}
	}

	if js.AerodynamicCoefficients != nil {
		s.AerodynamicCoefficients = &model.AerodynamicCoefficientSettings{
			ReferenceArea:   js.AerodynamicCoefficients.ReferenceArea,
			DragCoefficient: js.AerodynamicCoefficients.DragCoefficient,
			LiftCoefficient: js.AerodynamicCoefficients.LiftCoefficient,
		}
	}

	if len(js.RadiationPressure) > 0 {
		s.RadiationPressure = make(map[string]*model.RadiationPressureSettings, len(js.RadiationPressure))
		for source, rp := range js.RadiationPressure {
			if strings.TrimSpace(source) == "" {
				return nil, fmt.Errorf("LoadEnvironmentScenario: body %q: radiation pressure source with empty name", name)
			}
			s.RadiationPressure[source] = &model.RadiationPressureSettings{
				Kind:                         model.RadiationPressureKind(rp.Kind),
				ReferenceArea:                rp.ReferenceArea,
				RadiationPressureCoefficient: rp.RadiationPressureCoefficient,
				OccultingBodies:              rp.OccultingBodies,
			}
		}
	}

	for _, gv := range js.GravityFieldVariations {
		s.GravityFieldVariations = append(s.GravityFieldVariations, &model.GravityFieldVariationSettings{
			Kind:            model.GravityFieldVariationKind(gv.Kind),
			DeformingBodies: gv.DeformingBodies,
			LoveNumber:      gv.LoveNumber,
			ReferenceRadius: gv.ReferenceRadius,
		})
	}

	return s, nil
}

// parseEpoch maps the JSON epoch string to a time.Time. Empty epochs default
// to J2000 (2000-01-01T12:00:00Z), the usual reference for orbital elements.
func parseEpoch(body, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("LoadEnvironmentScenario: body %q: bad epoch %q: %w", body, raw, err)
	}
	return t.UTC(), nil
}
