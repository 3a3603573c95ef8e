package simplex

import "errors"

// Sentinel errors returned by the simplex engine.
var (
	// ErrNeedsBigM indicates that a ≥ or = constraint survives RHS-sign
	// normalization, so no feasible all-slack basis exists. The caller
	// must route such problems to the bigm package.
	ErrNeedsBigM = errors.New("simplex: problem needs the Big-M method (≥ or = constraint present)")

	// ErrBadTableau indicates an inconsistent tableau shape passed to
	// NewTableau (row widths, label count, or basis length mismatch).
	ErrBadTableau = errors.New("simplex: inconsistent tableau shape")

	// ErrBadPivot indicates a pivot on an element within the zero
	// tolerance; it signals a programmer error in pivot selection.
	ErrBadPivot = errors.New("simplex: pivot element is zero within tolerance")

	// ErrFreeVariables indicates a problem without the non-negativity
	// restriction; the tableau engines require x ≥ 0 to read variable
	// values off the basis.
	ErrFreeVariables = errors.New("simplex: decision variables must be non-negative")
)

// Default numeric policy. Tolerances are explicit Options fields so that
// two solves with the same inputs and options are bit-for-bit identical.
const (
	// DefaultEps is the zero tolerance for objective-row tests, ratio
	// tests and pivot elements.
	DefaultEps = 1e-9

	// defaultIterFactor scales the automatic iteration bound:
	// maxIter = defaultIterFactor × (rows + columns). Generous on
	// purpose; the valve exists for degenerate cycling inputs only.
	defaultIterFactor = 25
)

// Options configures a simplex solve.
//
// Eps     — zero tolerance for all numeric comparisons (must be ≥ 0).
// MaxIter — pivot-iteration safety valve; 0 selects the automatic bound
// proportional to the tableau size.
type Options struct {
	Eps     float64
	MaxIter int
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithEps sets the zero tolerance. Panics on negative or NaN values
// (programmer error, mirrors the option policy used across the module).
func WithEps(eps float64) Option {
	return func(o *Options) {
		if !(eps >= 0) {
			panic("simplex: WithEps: eps must be non-negative")
		}
		o.Eps = eps
	}
}

// WithMaxIter sets the iteration safety valve. Zero restores the
// automatic bound; negative values panic.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("simplex: WithMaxIter: bound must be non-negative")
		}
		o.MaxIter = n
	}
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps, MaxIter: 0}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
