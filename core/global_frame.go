package core

import (
	"fmt"

	"github.com/signalsfoundry/astro-environment/internal/logging"
)

// EnforceGlobalFrame validates every body's declared reference frame against
// the global origin and orientation, and attaches base-frame translations
// where the origin differs but names another managed body.
//
// For a body with an ephemeris whose origin differs from globalOrigin, the
// origin must be a key of bodies; the attached translation queries that
// origin body's live StateInBaseFrame at call time, so chains of origins
// resolve correctly no matter in which order translations were attached.
// Orientation differences have no defined correction and always fail, for
// ephemerides and for rotation model base frames alike.
//
// Bodies are processed in name order and the first failure aborts the call.
// Bodies are mutated in place; there is no other result than pass or fail.
func EnforceGlobalFrame(bodies BodyMap, globalOrigin, globalOrientation string, opts ...Option) error {
	o := applyOptions(opts)

	for _, name := range bodies.Names() {
		body := bodies[name]

		if eph := body.Ephemeris(); eph != nil {
			origin := eph.ReferenceFrameOrigin()
			if origin != globalOrigin {
				originBody, ok := bodies[origin]
				if !ok {
					return fmt.Errorf("%w: body %q has ephemeris origin %q, which is neither the global origin %q nor a managed body",
						ErrMissingFrameOrigin, name, origin, globalOrigin)
				}
				body.SetBaseFrameState(NewBaseStateSource(origin, originBody.StateInBaseFrame))
				o.obs.AdapterAttached(name, origin)
				o.log.Debug(o.ctx, "base frame translation attached",
					logging.String("body", name),
					logging.String("origin", origin),
				)
			}

			if orientation := eph.ReferenceFrameOrientation(); orientation != globalOrientation {
				return fmt.Errorf("%w: ephemeris of body %q is oriented in %q, global orientation is %q",
					ErrFrameOrientationMismatch, name, orientation, globalOrientation)
			}
		}

		if rot := body.RotationModel(); rot != nil {
			if base := rot.BaseFrameOrientation(); base != globalOrientation {
				return fmt.Errorf("%w: rotation model of body %q has base orientation %q, global orientation is %q",
					ErrFrameOrientationMismatch, name, base, globalOrientation)
			}
		}
	}
	return nil
}
