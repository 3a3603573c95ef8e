package graphical

import "errors"

// ErrNotTwoVariables indicates a problem whose variable count is not 2;
// corner-point enumeration in the plane is undefined for it. The CLI/UI
// contract makes the caller enforce this before invocation, but the
// engine still refuses loudly rather than computing nonsense.
var ErrNotTwoVariables = errors.New("graphical: exactly 2 decision variables required")

// Default numeric policy for the graphical engine.
const (
	// DefaultEps is the base tolerance for parallel-line detection,
	// vertex feasibility and vertex deduplication. Comparisons scale it
	// by the magnitudes involved to stay meaningful on large coefficients.
	DefaultEps = 1e-9

	// DefaultRayScale is the base distance the unboundedness probe
	// travels along a boundary ray. The engine multiplies it by the
	// largest vertex magnitude, so the probe always clears the feasible
	// region regardless of its diameter.
	DefaultRayScale = 1e6
)

// Options configures a graphical solve.
//
// Eps      — base zero tolerance (≥ 0).
// RayScale — base probe distance for unboundedness detection (> 0),
// scaled by the largest vertex magnitude at solve time.
type Options struct {
	Eps      float64
	RayScale float64
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithEps sets the base tolerance; panics on negative or NaN values.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if !(eps >= 0) {
			panic("graphical: WithEps: eps must be non-negative")
		}
		o.Eps = eps
	}
}

// WithRayScale sets the unboundedness probe distance; panics unless > 0.
func WithRayScale(r float64) Option {
	return func(o *Options) {
		if !(r > 0) {
			panic("graphical: WithRayScale: scale must be positive")
		}
		o.RayScale = r
	}
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps, RayScale: DefaultRayScale}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
