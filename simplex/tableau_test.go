package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

// demoGrid is the initial tableau of: maximize 3x₁+2x₂,
// 2x₁+x₂ ≤ 100, x₁+2x₂ ≤ 80, x ≥ 0.
func demoGrid() [][]float64 {
	return [][]float64{
		{2, 1, 1, 0, 100},
		{1, 2, 0, 1, 80},
		{-3, -2, 0, 0, 0},
	}
}

func demoTableau(t *testing.T) *simplex.Tableau {
	t.Helper()
	tab, err := simplex.NewTableau(demoGrid(),
		[]string{"x1", "x2", "s1", "s2"}, []int{2, 3}, 1e-9)
	require.NoError(t, err)

	return tab
}

// TestNewTableau_BadShapes rejects inconsistent grids, labels and bases.
func TestNewTableau_BadShapes(t *testing.T) {
	cols := []string{"x1", "x2", "s1", "s2"}

	_, err := simplex.NewTableau([][]float64{{1, 2}}, cols, nil, 1e-9)
	assert.ErrorIs(t, err, simplex.ErrBadTableau, "no constraint rows")

	_, err = simplex.NewTableau([][]float64{{1, 2}, {0, 0}}, cols, []int{0}, 1e-9)
	assert.ErrorIs(t, err, simplex.ErrBadTableau, "row width != len(cols)+1")

	_, err = simplex.NewTableau(demoGrid(), cols, []int{2}, 1e-9)
	assert.ErrorIs(t, err, simplex.ErrBadTableau, "basis length != rows")

	_, err = simplex.NewTableau(demoGrid(), cols, []int{2, 9}, 1e-9)
	assert.ErrorIs(t, err, simplex.ErrBadTableau, "basis entry out of range")
}

// TestTableau_SelectionRules walks the known first iteration of the demo
// problem: x1 enters (most negative -3), row 0 leaves (ratio 50 < 80).
func TestTableau_SelectionRules(t *testing.T) {
	tab := demoTableau(t)

	col := tab.Entering()
	require.Equal(t, 0, col, "x1 has the most negative reduced cost")

	row := tab.Leaving(col)
	require.Equal(t, 0, row, "min ratio 100/2=50 beats 80/1=80")

	require.NoError(t, tab.Pivot(row, col))
	assert.Equal(t, 0, tab.BasisColumn(0), "x1 becomes basic in row 0")
	assert.InDelta(t, 50.0, tab.RHS(0), 1e-12)
	assert.InDelta(t, 30.0, tab.RHS(1), 1e-12)
	assert.InDelta(t, 50.0, tab.ValueOf(0), 1e-12)
	assert.InDelta(t, 0.0, tab.ValueOf(1), 1e-12, "x2 still non-basic")
}

// TestTableau_PivotOnZero rejects a pivot on an element inside the zero
// tolerance.
func TestTableau_PivotOnZero(t *testing.T) {
	tab := demoTableau(t)
	// grid[1][2] is exactly 0.
	assert.ErrorIs(t, tab.Pivot(1, 2), simplex.ErrBadPivot)
}

// TestTableau_SnapshotFrozen ensures recorded snapshots never alias live
// tableau memory: pivoting after Snapshot must not change it.
func TestTableau_SnapshotFrozen(t *testing.T) {
	tab := demoTableau(t)
	snap := tab.Snapshot()

	require.NoError(t, tab.Pivot(0, 0))

	assert.Equal(t, 2.0, snap.Rows[0][0], "snapshot keeps pre-pivot entries")
	assert.Equal(t, "s1", snap.Basis[0], "snapshot keeps pre-pivot basis")
	assert.Equal(t, "RHS", snap.Columns[len(snap.Columns)-1])
	assert.Equal(t, "Z", snap.Basis[len(snap.Basis)-1])
}

// TestTableau_RunToOptimality drives the demo problem to its optimum in
// exactly two pivots and checks the final basic values.
func TestTableau_RunToOptimality(t *testing.T) {
	tab := demoTableau(t)
	var tr lp.Trace

	outcome, ubCol := tab.Run(&tr, 0)
	require.Equal(t, simplex.OutcomeOptimal, outcome)
	assert.Equal(t, -1, ubCol)
	assert.Equal(t, 2, tr.Len(), "one recorded step per pivot")

	assert.InDelta(t, 40.0, tab.ValueOf(0), 1e-9, "x1*")
	assert.InDelta(t, 20.0, tab.ValueOf(1), 1e-9, "x2*")
}

// TestTableau_RunIterLimit trips the safety valve after one pivot.
func TestTableau_RunIterLimit(t *testing.T) {
	tab := demoTableau(t)
	var tr lp.Trace

	outcome, _ := tab.Run(&tr, 1)
	assert.Equal(t, simplex.OutcomeIterLimit, outcome)
	assert.Equal(t, 1, tr.Len())
}
