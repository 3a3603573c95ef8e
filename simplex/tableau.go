package simplex

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/lp"
)

// Tableau is the mutable working state of a tableau-form simplex solve.
//
// Layout: one row per basic variable plus the objective row (last), one
// column per variable plus the RHS column (last). The objective row is
// maximize-normalized: entries are reduced costs, and the solve is optimal
// once none of them is negative.
//
// Invariant (re-established by every Pivot): the column of each basic
// variable is a unit vector: 1 in its own row, 0 elsewhere.
type Tableau struct {
	data  *mat.Dense // (rows+1) × (width+1) grid, Z row and RHS column last
	cols  []string   // variable column labels, len == width
	basis []int      // basis[i] = column currently basic in row i, len == rows
	eps   float64
}

// Outcome is the terminal state of the pivot loop.
type Outcome int

const (
	// OutcomeOptimal — no objective-row entry is negative.
	OutcomeOptimal Outcome = iota

	// OutcomeUnbounded — an improving column has no positive entry.
	OutcomeUnbounded

	// OutcomeIterLimit — the iteration safety valve tripped.
	OutcomeIterLimit
)

// NewTableau assembles a Tableau from a fully built numeric grid.
//
// Contracts:
//   - grid has m+1 rows (objective row last), each of len(cols)+1 entries
//     (RHS last), m ≥ 1.
//   - len(basis) == m and every basis entry indexes a column.
//   - eps ≥ 0.
//
// The grid is copied; callers may reuse their buffers.
func NewTableau(grid [][]float64, cols []string, basis []int, eps float64) (*Tableau, error) {
	m := len(grid) - 1
	width := len(cols)
	if m < 1 || width < 1 || len(basis) != m || eps < 0 {
		return nil, ErrBadTableau
	}

	data := mat.NewDense(m+1, width+1, nil)
	var i, j int
	for i = range grid {
		if len(grid[i]) != width+1 {
			return nil, ErrBadTableau
		}
		for j = range grid[i] {
			data.Set(i, j, grid[i][j])
		}
	}
	for i = range basis {
		if basis[i] < 0 || basis[i] >= width {
			return nil, ErrBadTableau
		}
	}

	t := &Tableau{
		data:  data,
		cols:  append([]string(nil), cols...),
		basis: append([]int(nil), basis...),
		eps:   eps,
	}

	return t, nil
}

// Rows returns the number of constraint rows (objective row excluded).
func (t *Tableau) Rows() int { r, _ := t.data.Dims(); return r - 1 }

// Width returns the number of variable columns (RHS column excluded).
func (t *Tableau) Width() int { _, c := t.data.Dims(); return c - 1 }

// Label returns the label of variable column j.
func (t *Tableau) Label(j int) string { return t.cols[j] }

// BasisColumn returns the column currently basic in row i.
func (t *Tableau) BasisColumn(i int) int { return t.basis[i] }

// RHS returns the right-hand side of constraint row i, the current value
// of the variable basic in that row.
func (t *Tableau) RHS(i int) float64 { return t.data.At(i, t.Width()) }

// ValueOf returns the current value of variable column j: its row's RHS
// when basic, zero otherwise.
func (t *Tableau) ValueOf(j int) float64 {
	for i := range t.basis {
		if t.basis[i] == j {
			return t.RHS(i)
		}
	}

	return 0
}

// Entering selects the entering column: the most negative objective-row
// coefficient below -eps, lowest index on ties. Returns -1 when the
// tableau is optimal.
func (t *Tableau) Entering() int {
	var (
		z    = t.Rows() // objective row index
		best = -1
		min  float64
		v    float64
	)
	for j := 0; j < t.Width(); j++ {
		v = t.data.At(z, j)
		if v < -t.eps && (best == -1 || v < min) {
			best, min = j, v
		}
	}

	return best
}

// Leaving runs the ratio test for entering column col: among rows with a
// strictly positive entry it selects the one minimizing RHS/entry, lowest
// row index on ties. Returns -1 when no entry is positive (unbounded).
func (t *Tableau) Leaving(col int) int {
	var (
		best  = -1
		min   float64
		entry float64
		ratio float64
	)
	for i := 0; i < t.Rows(); i++ {
		entry = t.data.At(i, col)
		if entry <= t.eps {
			continue
		}
		ratio = t.RHS(i) / entry
		if best == -1 || ratio < min {
			best, min = i, ratio
		}
	}

	return best
}

// Pivot makes column col basic in row row: the pivot row is scaled by the
// pivot element, then col is eliminated from every other row including the
// objective row. Returns ErrBadPivot when the pivot element sits inside
// the zero tolerance.
//
// Complexity: O(rows × width).
func (t *Tableau) Pivot(row, col int) error {
	pivot := t.data.At(row, col)
	if pivot <= t.eps && pivot >= -t.eps {
		return ErrBadPivot
	}

	var (
		width = t.Width()
		i, j  int
		f     float64
	)

	// Normalize the pivot row.
	for j = 0; j <= width; j++ {
		t.data.Set(row, j, t.data.At(row, j)/pivot)
	}
	t.data.Set(row, col, 1) // exact unit entry, no residual rounding

	// Eliminate col from every other row, Z row included.
	for i = 0; i <= t.Rows(); i++ {
		if i == row {
			continue
		}
		f = t.data.At(i, col)
		if f == 0 {
			continue
		}
		for j = 0; j <= width; j++ {
			t.data.Set(i, j, t.data.At(i, j)-f*t.data.At(row, j))
		}
		t.data.Set(i, col, 0)
	}

	t.basis[row] = col

	return nil
}

// Snapshot deep-copies the current grid with its labels. The returned
// value never aliases tableau memory, so recorded steps stay frozen while
// the solve keeps pivoting.
func (t *Tableau) Snapshot() *lp.Snapshot {
	var (
		m     = t.Rows()
		width = t.Width()
		snap  = &lp.Snapshot{
			Columns: make([]string, width+1),
			Basis:   make([]string, m+1),
			Rows:    make([][]float64, m+1),
		}
		i, j int
	)
	copy(snap.Columns, t.cols)
	snap.Columns[width] = "RHS"

	for i = 0; i <= m; i++ {
		snap.Rows[i] = make([]float64, width+1)
		for j = 0; j <= width; j++ {
			snap.Rows[i][j] = t.data.At(i, j)
		}
		if i < m {
			snap.Basis[i] = t.cols[t.basis[i]]
		}
	}
	snap.Basis[m] = "Z"

	return snap
}

// Run drives the shared pivot loop, recording one step per pivot into tr.
// It returns the outcome and, for OutcomeUnbounded, the entering column
// whose direction is unbounded (-1 otherwise).
//
// maxIter ≤ 0 selects the automatic bound proportional to the tableau size.
func (t *Tableau) Run(tr *lp.Trace, maxIter int) (Outcome, int) {
	if maxIter <= 0 {
		maxIter = defaultIterFactor * (t.Rows() + t.Width())
	}

	var (
		iter     int
		col, row int
	)
	for iter = 0; iter < maxIter; iter++ {
		col = t.Entering()
		if col < 0 {
			return OutcomeOptimal, -1
		}
		row = t.Leaving(col)
		if row < 0 {
			return OutcomeUnbounded, col
		}

		var (
			entering = t.cols[col]
			leaving  = t.cols[t.basis[row]]
			reduced  = t.data.At(t.Rows(), col)
			ratio    = t.RHS(row) / t.data.At(row, col)
		)
		if err := t.Pivot(row, col); err != nil {
			// Leaving guarantees a positive pivot element; reaching this
			// branch means the selection rules are broken.
			panic(err)
		}

		tr.Record(
			fmt.Sprintf("Pivot %d: enter %s, leave %s", iter+1, entering, leaving),
			fmt.Sprintf(
				"%s has the most negative objective-row coefficient (%.4g), so it enters the basis. "+
					"The minimum ratio %.4g occurs in the %s row, so %s leaves the basis.",
				entering, reduced, ratio, leaving, leaving),
			t.Snapshot(),
		)
	}

	return OutcomeIterLimit, -1
}
