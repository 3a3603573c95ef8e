package lp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Direction selects whether the objective is maximized or minimized.
type Direction int

const (
	// Maximize seeks the largest objective value over the feasible region.
	Maximize Direction = iota

	// Minimize seeks the smallest objective value over the feasible region.
	Minimize
)

// String returns the human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Maximize:
		return "Maximize"
	case Minimize:
		return "Minimize"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Relation is the comparison operator of a constraint row.
type Relation int

const (
	// LE is a ≤ constraint.
	LE Relation = iota

	// GE is a ≥ constraint.
	GE

	// EQ is an equality constraint.
	EQ
)

// String returns the relation symbol as it appears in traces.
func (r Relation) String() string {
	switch r {
	case LE:
		return "≤"
	case GE:
		return "≥"
	case EQ:
		return "="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Constraint is one row of the constraint system:
//
//	Coeffs·x  Rel  RHS
//
// Coeffs must have exactly as many entries as the problem's objective.
// RHS may carry any sign; engines normalize it before building a basis.
type Constraint struct {
	Coeffs []float64
	Rel    Relation
	RHS    float64
}

// Problem is the canonical LP instance shared by all engines.
//
// A Problem is a value: New deep-copies its inputs and validates them once,
// and callers must treat the result as immutable. Constraint order is
// significant only for trace readability, never for semantics.
type Problem struct {
	Direction   Direction
	Objective   []float64
	Constraints []Constraint

	// NonNegative, when true, bounds every decision variable below by zero.
	NonNegative bool
}

// New validates raw coefficients and assembles an immutable Problem.
//
// Contracts:
//   - len(objective) ≥ 1, len(constraints) ≥ 1.
//   - Every constraint row has len(objective) coefficients.
//   - All coefficients and RHS values are finite.
//
// Errors: ErrEmptyObjective, ErrNoConstraints, ErrDimensionMismatch,
// ErrNonFiniteCoefficient, ErrBadDirection, ErrBadRelation.
//
// Complexity: O(m·n) for m constraints over n variables.
func New(dir Direction, objective []float64, constraints []Constraint, nonNegative bool) (Problem, error) {
	p := Problem{
		Direction:   dir,
		Objective:   append([]float64(nil), objective...),
		Constraints: make([]Constraint, len(constraints)),
		NonNegative: nonNegative,
	}

	var i int
	for i = range constraints {
		p.Constraints[i] = Constraint{
			Coeffs: append([]float64(nil), constraints[i].Coeffs...),
			Rel:    constraints[i].Rel,
			RHS:    constraints[i].RHS,
		}
	}

	if err := p.Validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// Validate re-checks the structural invariants established by New.
// Engines call it before touching coefficients so that a hand-built
// Problem literal fails as loudly as a malformed New call.
//
// Complexity: O(m·n).
func (p Problem) Validate() error {
	if p.Direction != Maximize && p.Direction != Minimize {
		return ErrBadDirection
	}
	if len(p.Objective) == 0 {
		return ErrEmptyObjective
	}
	if len(p.Constraints) == 0 {
		return ErrNoConstraints
	}

	var j int
	for j = range p.Objective {
		if !isFinite(p.Objective[j]) {
			return ErrNonFiniteCoefficient
		}
	}

	var (
		i int
		c Constraint
	)
	for i = range p.Constraints {
		c = p.Constraints[i]
		if c.Rel != LE && c.Rel != GE && c.Rel != EQ {
			return ErrBadRelation
		}
		if len(c.Coeffs) != len(p.Objective) {
			return ErrDimensionMismatch
		}
		if !isFinite(c.RHS) {
			return ErrNonFiniteCoefficient
		}
		for j = range c.Coeffs {
			if !isFinite(c.Coeffs[j]) {
				return ErrNonFiniteCoefficient
			}
		}
	}

	return nil
}

// NumVariables returns the number of decision variables.
func (p Problem) NumVariables() int { return len(p.Objective) }

// NumConstraints returns the number of constraint rows.
func (p Problem) NumConstraints() int { return len(p.Constraints) }

// Eval computes the objective value at the point x.
// len(x) must equal NumVariables; the caller guarantees the dimension.
func (p Problem) Eval(x []float64) float64 {
	return floats.Dot(p.Objective, x)
}

// VarName returns the canonical decision-variable name for column j
// (zero-based): x1, x2, …  Slack, surplus and artificial variables get
// their names from the engines that introduce them.
func VarName(j int) string { return fmt.Sprintf("x%d", j+1) }

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
