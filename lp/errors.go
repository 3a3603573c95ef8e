package lp

import "errors"

// Sentinel validation errors returned by New and Problem.Validate.
// Engines surface these unchanged; tests match them via errors.Is.
var (
	// ErrEmptyObjective indicates an objective with zero coefficients.
	ErrEmptyObjective = errors.New("lp: objective must have at least one coefficient")

	// ErrNoConstraints indicates a problem without any constraint rows.
	ErrNoConstraints = errors.New("lp: at least one constraint is required")

	// ErrDimensionMismatch indicates a constraint whose coefficient row
	// length differs from the objective length.
	ErrDimensionMismatch = errors.New("lp: constraint dimension mismatch")

	// ErrNonFiniteCoefficient indicates a NaN or ±Inf objective coefficient,
	// constraint coefficient, or right-hand side.
	ErrNonFiniteCoefficient = errors.New("lp: coefficients and RHS must be finite")

	// ErrBadDirection indicates a Direction outside {Maximize, Minimize}.
	ErrBadDirection = errors.New("lp: unknown optimization direction")

	// ErrBadRelation indicates a Relation outside {LE, GE, EQ}.
	ErrBadRelation = errors.New("lp: unknown constraint relation")
)
