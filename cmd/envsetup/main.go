// Command envsetup builds a simulation environment from body settings,
// reconciles every body against the global reference frame, and samples the
// resulting base-frame states over a time range.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/signalsfoundry/astro-environment/core"
	"github.com/signalsfoundry/astro-environment/internal/logging"
	"github.com/signalsfoundry/astro-environment/internal/observability"
	"github.com/signalsfoundry/astro-environment/model"
	"github.com/signalsfoundry/astro-environment/physics"
)

func main() {
	scenarioPath := flag.String("scenario", "", "JSON environment scenario; empty uses the built-in Sun/Earth/Moon/ISS set")
	globalOrigin := flag.String("global-origin", "SSB", "global frame origin")
	globalOrientation := flag.String("global-orientation", "ECLIPJ2000", "global frame orientation")
	start := flag.String("start", "2021-10-02T00:00:00Z", "sampling start (RFC 3339)")
	duration := flag.Duration("duration", time.Hour, "sampling window")
	step := flag.Duration("step", 10*time.Minute, "sampling step")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address (empty disables)")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx, log := logging.WithRunLogger(context.Background(), log)

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	collector, err := observability.NewEnvironmentCollector(nil)
	if err != nil {
		log.Error(ctx, "metrics init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", collector.Handler())
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Warn(ctx, "metrics server stopped", logging.String("error", err.Error()))
			}
		}()
		log.Info(ctx, "serving metrics", logging.String("addr", *metricsAddr))
	}

	startTime, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		log.Error(ctx, "bad -start", logging.String("error", err.Error()))
		os.Exit(1)
	}

	settings := builtinEnvironment()
	if *scenarioPath != "" {
		f, err := os.Open(*scenarioPath)
		if err != nil {
			log.Error(ctx, "open scenario failed", logging.String("error", err.Error()))
			os.Exit(1)
		}
		scenario, err := core.LoadEnvironmentScenario(f)
		f.Close()
		if err != nil {
			log.Error(ctx, "load scenario failed", logging.String("error", err.Error()))
			os.Exit(1)
		}
		settings = scenario.Settings
		if scenario.GlobalFrameOrigin != "" {
			*globalOrigin = scenario.GlobalFrameOrigin
		}
		if scenario.GlobalFrameOrientation != "" {
			*globalOrientation = scenario.GlobalFrameOrientation
		}
		log.Info(ctx, "scenario loaded",
			logging.String("path", *scenarioPath),
			logging.Int("bodies", len(scenario.BodyNames)),
		)
	}

	tracer := otel.Tracer("envsetup")
	setupStart := time.Now()

	ctx, span := tracer.Start(ctx, "environment.setup")
	bodies, err := core.CreateBodies(settings, physics.DefaultFactories(),
		core.WithContext(ctx),
		core.WithLogger(log),
		core.WithObserver(collector),
	)
	if err != nil {
		span.End()
		log.Error(ctx, "body construction failed", logging.String("error", err.Error()))
		os.Exit(1)
	}

	if err := core.EnforceGlobalFrame(bodies, *globalOrigin, *globalOrientation,
		core.WithContext(ctx),
		core.WithLogger(log),
		core.WithObserver(collector),
	); err != nil {
		span.End()
		log.Error(ctx, "global frame enforcement failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	span.End()

	collector.ObserveSetupDuration(time.Since(setupStart))
	collector.SetBodyCount(len(bodies))
	log.Info(ctx, "environment ready",
		logging.Int("bodies", len(bodies)),
		logging.String("global_origin", *globalOrigin),
		logging.String("global_orientation", *globalOrientation),
	)

	sampleStates(ctx, log, bodies, startTime, *duration, *step)
}

// sampleStates prints every body's base-frame position over the window.
func sampleStates(ctx context.Context, log logging.Logger, bodies core.BodyMap, start time.Time, window, step time.Duration) {
	if step <= 0 {
		step = 10 * time.Minute
	}
	end := start.Add(window)
	for t := start; !t.After(end); t = t.Add(step) {
		for _, name := range bodies.Names() {
			body := bodies[name]
			if body.Ephemeris() == nil {
				continue
			}
			state, err := body.StateInBaseFrame(t)
			if err != nil {
				log.Warn(ctx, "state evaluation failed",
					logging.String("body", name),
					logging.String("error", err.Error()),
				)
				continue
			}
			pos := state.Position()
			log.Info(ctx, "state",
				logging.String("body", name),
				logging.String("t", t.Format(time.RFC3339)),
				logging.String("r_km", fmt.Sprintf("[%.1f %.1f %.1f]", pos[0]/1e3, pos[1]/1e3, pos[2]/1e3)),
			)
		}
	}
}

// builtinEnvironment is a small Sun/Earth/Moon/ISS configuration used when
// no scenario file is given. Ephemeris origins deliberately differ from the
// global origin so the frame enforcement pass has translations to attach.
func builtinEnvironment() map[string]*model.BodySettings {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	// ISS sample TLE, same vintage as the default sampling start.
	tle1 := "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990"
	tle2 := "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760"

	return map[string]*model.BodySettings{
		"Sun": {
			Ephemeris: &model.EphemerisSettings{
				Kind:             model.EphemerisConstant,
				FrameOrigin:      "SSB",
				FrameOrientation: "ECLIPJ2000",
			},
			GravityField: &model.GravityFieldSettings{
				Kind:                   model.GravityPointMass,
				GravitationalParameter: 1.32712440018e20,
			},
			Shape: &model.ShapeSettings{Kind: model.ShapeSpherical, Radius: 6.957e8},
		},
		"Earth": {
			Ephemeris: &model.EphemerisSettings{
				Kind:             model.EphemerisKeplerian,
				FrameOrigin:      "Sun",
				FrameOrientation: "ECLIPJ2000",
				Elements: &model.KeplerianElements{
					SemiMajorAxis:            1.49598023e11,
					Eccentricity:             0.0167086,
					Inclination:              0,
					ArgumentOfPeriapsis:      1.9933,
					LongitudeOfAscendingNode: 3.0525,
					TrueAnomalyAtEpoch:       6.2398,
					Epoch:                    j2000,
					// GravitationalParameter left zero: taken from the Sun's
					// gravity field during construction.
				},
			},
			GravityField: &model.GravityFieldSettings{
				Kind:                   model.GravityPointMassJ2,
				GravitationalParameter: 3.986004418e14,
				J2:                     1.08262668e-3,
				ReferenceRadius:        6.378137e6,
			},
			Atmosphere: &model.AtmosphereSettings{
				Kind:                model.AtmosphereExponential,
				SurfaceDensity:      1.225,
				ScaleHeight:         7200,
				ConstantTemperature: 240,
			},
			Shape: &model.ShapeSettings{
				Kind:       model.ShapeOblate,
				Radius:     6.378137e6,
				Flattening: 1 / 298.257223563,
			},
			RotationModel: &model.RotationModelSettings{
				Kind:                   model.RotationSimple,
				BaseFrameOrientation:   "ECLIPJ2000",
				TargetFrameOrientation: "Earth_Fixed",
				RotationRate:           7.2921159e-5,
				Epoch:                  j2000,
			},
			GravityFieldVariations: []*model.GravityFieldVariationSettings{
				{
					Kind:            model.GravityVariationBasicTidal,
					DeformingBodies: []string{"Moon"},
					LoveNumber:      0.301,
					ReferenceRadius: 6.378137e6,
				},
			},
		},
		"Moon": {
			Ephemeris: &model.EphemerisSettings{
				Kind:             model.EphemerisKeplerian,
				FrameOrigin:      "Earth",
				FrameOrientation: "ECLIPJ2000",
				Elements: &model.KeplerianElements{
					SemiMajorAxis:            3.84748e8,
					Eccentricity:             0.0549,
					Inclination:              5.145 * math.Pi / 180,
					ArgumentOfPeriapsis:      5.5528,
					LongitudeOfAscendingNode: 2.1831,
					TrueAnomalyAtEpoch:       0.2345,
					Epoch:                    j2000,
				},
			},
			GravityField: &model.GravityFieldSettings{
				Kind:                   model.GravityPointMass,
				GravitationalParameter: 4.9048695e12,
			},
			Shape: &model.ShapeSettings{Kind: model.ShapeSpherical, Radius: 1.7374e6},
		},
		"ISS": {
			Ephemeris: &model.EphemerisSettings{
				Kind:             model.EphemerisSGP4,
				FrameOrigin:      "Earth",
				FrameOrientation: "ECLIPJ2000",
				TLELine1:         tle1,
				TLELine2:         tle2,
			},
			AerodynamicCoefficients: &model.AerodynamicCoefficientSettings{
				ReferenceArea:   400,
				DragCoefficient: 2.2,
			},
			RadiationPressure: map[string]*model.RadiationPressureSettings{
				"Sun": {
					Kind:                         model.RadiationCannonball,
					ReferenceArea:                400,
					RadiationPressureCoefficient: 1.3,
					OccultingBodies:              []string{"Earth"},
				},
			},
		},
	}
}
