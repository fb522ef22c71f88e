package core

import "errors"

// Setup errors. Every one of these is fatal to the whole setup call: no
// partially populated environment is ever returned, and none of them is a
// transient condition worth retrying. They point at mistakes in the authored
// body settings.
var (
	// ErrCycleDetected reports an unresolvable creation ordering among
	// managed bodies.
	ErrCycleDetected = errors.New("cyclic frame origin dependency")

	// ErrSubModelCreation reports a per-domain model factory failure. The
	// wrapped error names the body, the model domain, and the cause.
	ErrSubModelCreation = errors.New("sub-model creation failed")

	// ErrMissingFrameOrigin reports an ephemeris origin that is neither the
	// global origin nor a managed body, so no translation can be made.
	ErrMissingFrameOrigin = errors.New("frame origin not available")

	// ErrFrameOrientationMismatch reports a declared orientation that
	// differs from the global orientation. There is no defined correction
	// for orientation mismatches.
	ErrFrameOrientationMismatch = errors.New("frame orientation mismatch")
)
