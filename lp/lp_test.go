package lp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/lp"
)

// validProblem is the shared fixture: maximize 3x₁+2x₂ under two ≤ rows.
func validProblem(t *testing.T) lp.Problem {
	t.Helper()
	p, err := lp.New(lp.Maximize,
		[]float64{3, 2},
		[]lp.Constraint{
			{Coeffs: []float64{2, 1}, Rel: lp.LE, RHS: 100},
			{Coeffs: []float64{1, 2}, Rel: lp.LE, RHS: 80},
		},
		true,
	)
	require.NoError(t, err)

	return p
}

// TestNew_Valid verifies a well-formed problem constructs and reports its
// shape correctly.
func TestNew_Valid(t *testing.T) {
	p := validProblem(t)
	assert.Equal(t, 2, p.NumVariables())
	assert.Equal(t, 2, p.NumConstraints())
	assert.True(t, p.NonNegative)
}

// TestNew_EmptyObjective ensures a zero-length objective is rejected.
func TestNew_EmptyObjective(t *testing.T) {
	_, err := lp.New(lp.Maximize, nil,
		[]lp.Constraint{{Coeffs: nil, Rel: lp.LE, RHS: 1}}, true)
	assert.ErrorIs(t, err, lp.ErrEmptyObjective)
}

// TestNew_NoConstraints ensures at least one constraint is required.
func TestNew_NoConstraints(t *testing.T) {
	_, err := lp.New(lp.Maximize, []float64{1}, nil, true)
	assert.ErrorIs(t, err, lp.ErrNoConstraints)
}

// TestNew_DimensionMismatch ensures constraint rows must match the
// objective length.
func TestNew_DimensionMismatch(t *testing.T) {
	_, err := lp.New(lp.Maximize, []float64{1, 2},
		[]lp.Constraint{{Coeffs: []float64{1}, Rel: lp.LE, RHS: 1}}, true)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
}

// TestNew_NonFinite ensures NaN/Inf coefficients and RHS are rejected.
func TestNew_NonFinite(t *testing.T) {
	_, err := lp.New(lp.Maximize, []float64{math.NaN()},
		[]lp.Constraint{{Coeffs: []float64{1}, Rel: lp.LE, RHS: 1}}, true)
	assert.ErrorIs(t, err, lp.ErrNonFiniteCoefficient, "NaN objective")

	_, err = lp.New(lp.Maximize, []float64{1},
		[]lp.Constraint{{Coeffs: []float64{1}, Rel: lp.LE, RHS: math.Inf(1)}}, true)
	assert.ErrorIs(t, err, lp.ErrNonFiniteCoefficient, "Inf RHS")
}

// TestNew_BadEnums ensures out-of-range Direction and Relation values are
// rejected rather than silently defaulted.
func TestNew_BadEnums(t *testing.T) {
	_, err := lp.New(lp.Direction(42), []float64{1},
		[]lp.Constraint{{Coeffs: []float64{1}, Rel: lp.LE, RHS: 1}}, true)
	assert.ErrorIs(t, err, lp.ErrBadDirection)

	_, err = lp.New(lp.Minimize, []float64{1},
		[]lp.Constraint{{Coeffs: []float64{1}, Rel: lp.Relation(7), RHS: 1}}, true)
	assert.ErrorIs(t, err, lp.ErrBadRelation)
}

// TestNew_CopiesInputs verifies the constructed Problem does not alias
// caller buffers: mutating the originals must not change the Problem.
func TestNew_CopiesInputs(t *testing.T) {
	obj := []float64{3, 2}
	row := []float64{2, 1}
	p, err := lp.New(lp.Maximize, obj,
		[]lp.Constraint{{Coeffs: row, Rel: lp.LE, RHS: 100}}, true)
	require.NoError(t, err)

	obj[0] = -99
	row[1] = -99
	assert.Equal(t, 3.0, p.Objective[0], "objective must be copied")
	assert.Equal(t, 1.0, p.Constraints[0].Coeffs[1], "constraint row must be copied")
}

// TestEval computes the objective by substitution.
func TestEval(t *testing.T) {
	p := validProblem(t)
	assert.InDelta(t, 160.0, p.Eval([]float64{40, 20}), 1e-12)
}

// TestVarName checks the canonical 1-based naming.
func TestVarName(t *testing.T) {
	assert.Equal(t, "x1", lp.VarName(0))
	assert.Equal(t, "x10", lp.VarName(9))
}

// TestTrace_OrderAndOwnership verifies steps come back in insertion order
// and that recorded snapshots are independent values.
func TestTrace_OrderAndOwnership(t *testing.T) {
	var tr lp.Trace
	tr.Add(lp.Step{Title: "first"})
	tr.Record("second", "with table", &lp.Snapshot{
		Columns: []string{"x1", "RHS"},
		Basis:   []string{"s1", "Z"},
		Rows:    [][]float64{{1, 2}, {0, 0}},
	})

	require.Equal(t, 2, tr.Len())
	steps := tr.Steps()
	assert.Equal(t, "first", steps[0].Title)
	assert.Equal(t, "second", steps[1].Title)
	assert.Nil(t, steps[0].Table)
	require.NotNil(t, steps[1].Table)
	assert.Equal(t, 2.0, steps[1].Table.Rows[0][1])
}

// TestStatus_String covers the trace-facing status names.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "optimal", lp.StatusOptimal.String())
	assert.Equal(t, "unbounded", lp.StatusUnbounded.String())
	assert.Equal(t, "infeasible", lp.StatusInfeasible.String())
	assert.Equal(t, "error", lp.StatusError.String())
}
