package lp

import "fmt"

// Status classifies the terminal outcome of a solve.
type Status int

const (
	// StatusOptimal — a finite optimum was found; Variables and
	// ObjectiveValue are populated.
	StatusOptimal Status = iota

	// StatusUnbounded — the objective improves without limit; Message
	// names the unbounded direction.
	StatusUnbounded

	// StatusInfeasible — no point satisfies every constraint.
	StatusInfeasible

	// StatusError — the solve was aborted (iteration-limit safety valve);
	// Message carries the cause.
	StatusError
)

// String returns the lowercase status name used in traces and the CLI.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	case StatusInfeasible:
		return "infeasible"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the single value an engine returns. It owns its Steps; the
// caller may hold it indefinitely without keeping the engine alive.
//
// Variables and ObjectiveValue are meaningful only when Status is
// StatusOptimal; Message is set for unbounded/infeasible/error outcomes.
type Result struct {
	Status         Status
	Variables      map[string]float64
	ObjectiveValue float64
	Steps          []Step
	Message        string
}
