package bigm

// Default numeric policy for the Big-M engine.
const (
	// DefaultEps is the zero tolerance for pivot selection and the
	// positive-artificial infeasibility test.
	DefaultEps = 1e-9

	// DefaultMFactor scales the penalty: M = MFactor × max(1, max|c_j|).
	// Large enough to dominate any honest coefficient, far from overflow.
	DefaultMFactor = 1e4
)

// Options configures a Big-M solve.
//
// Eps     — zero tolerance for all numeric comparisons (≥ 0).
// MaxIter — pivot-iteration safety valve; 0 selects the automatic bound.
// MFactor — penalty scale factor (> 1).
type Options struct {
	Eps     float64
	MaxIter int
	MFactor float64
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithEps sets the zero tolerance; panics on negative or NaN values.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if !(eps >= 0) {
			panic("bigm: WithEps: eps must be non-negative")
		}
		o.Eps = eps
	}
}

// WithMaxIter sets the iteration safety valve; 0 restores the automatic
// bound, negative values panic.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("bigm: WithMaxIter: bound must be non-negative")
		}
		o.MaxIter = n
	}
}

// WithMFactor sets the penalty scale factor; values ≤ 1 cannot dominate
// the objective and panic.
func WithMFactor(f float64) Option {
	return func(o *Options) {
		if !(f > 1) {
			panic("bigm: WithMFactor: factor must exceed 1")
		}
		o.MFactor = f
	}
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps, MaxIter: 0, MFactor: DefaultMFactor}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
