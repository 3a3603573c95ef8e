package simplex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linprog/lp"
)

// Solve runs the standard simplex method on p and returns the result with
// its full step trace.
//
// Contracts:
//   - p passes lp.Problem.Validate.
//   - After RHS-sign normalization every constraint is ≤; otherwise
//     ErrNeedsBigM is returned and the caller must route to bigm.Solve.
//
// Unbounded and iteration-limit outcomes are reported through
// Result.Status, never as errors: they are legitimate terminal outcomes.
//
// Complexity: O(maxIter · m·(n+m)) for m constraints over n variables.
func Solve(p lp.Problem, opts ...Option) (lp.Result, error) {
	if err := p.Validate(); err != nil {
		return lp.Result{}, err
	}
	if !p.NonNegative {
		return lp.Result{}, ErrFreeVariables
	}
	o := gatherOptions(opts)

	cons, flipped := NormalizeRHS(p.Constraints)
	for i := range cons {
		if cons[i].Rel != lp.LE {
			return lp.Result{}, ErrNeedsBigM
		}
	}

	var (
		n   = p.NumVariables()
		m   = len(cons)
		obj = InternalObjective(p.Direction, p.Objective)
		tr  = &lp.Trace{}
	)

	t, err := NewTableau(initialGrid(cons, obj), standardColumns(n, m), slackBasis(n, m), o.Eps)
	if err != nil {
		return lp.Result{}, err
	}

	tr.Add(lp.Step{
		Title:       "Standard Form",
		Explanation: standardFormExplanation(p, m, flipped),
	})
	tr.Record("Initial Tableau",
		"All slack variables are basic; every decision variable starts at zero. "+
			"The Z row holds the negated objective coefficients.",
		t.Snapshot())

	outcome, ubCol := t.Run(tr, o.MaxIter)

	return Interpret(p, t, tr, outcome, ubCol), nil
}

// Interpret converts a finished pivot loop into the caller-facing Result:
// it classifies the outcome, reads decision variables off the RHS column
// (columns 0..n-1 of the tableau must be the decision variables) and
// evaluates the original objective by substitution.
//
// The bigm package reuses it after its artificial-variable feasibility
// check; augmentation columns beyond the decision block are ignored here.
func Interpret(p lp.Problem, t *Tableau, tr *lp.Trace, outcome Outcome, ubCol int) lp.Result {
	switch outcome {
	case OutcomeUnbounded:
		msg := fmt.Sprintf("the objective can be improved without limit along %s", t.Label(ubCol))
		tr.Add(lp.Step{
			Title: "Unbounded Problem",
			Explanation: fmt.Sprintf(
				"Column %s improves the objective but has no positive entry, so the ratio test "+
					"admits no leaving variable: the feasible region is open in that direction.",
				t.Label(ubCol)),
		})

		return lp.Result{Status: lp.StatusUnbounded, Steps: tr.Steps(), Message: msg}

	case OutcomeIterLimit:
		return lp.Result{
			Status:  lp.StatusError,
			Steps:   tr.Steps(),
			Message: "iteration limit exceeded (degenerate pivoting suspected)",
		}
	}

	// Optimal: read decision variables off the RHS column and evaluate the
	// original objective by substitution.
	var (
		n    = p.NumVariables()
		x    = make([]float64, n)
		vars = make(map[string]float64, n)
		j    int
	)
	for j = 0; j < n; j++ {
		x[j] = t.ValueOf(j)
		vars[lp.VarName(j)] = x[j]
	}
	z := p.Eval(x)

	tr.Add(lp.Step{
		Title: "Optimal Solution",
		Explanation: fmt.Sprintf(
			"No negative coefficient remains in the Z row, so the current basis is optimal. "+
				"Reading the RHS column: %s; objective value Z = %.4f.",
			formatAssignment(x), z),
	})

	return lp.Result{
		Status:         lp.StatusOptimal,
		Variables:      vars,
		ObjectiveValue: z,
		Steps:          tr.Steps(),
	}
}

// initialGrid builds the (m+1)×(n+m+1) numeric grid: constraint rows with
// the slack identity appended, then the Z row with negated objective
// coefficients and zero RHS.
func initialGrid(cons []lp.Constraint, obj []float64) [][]float64 {
	var (
		n     = len(obj)
		m     = len(cons)
		width = n + m
		grid  = make([][]float64, m+1)
		i, j  int
	)
	for i = 0; i < m; i++ {
		grid[i] = make([]float64, width+1)
		copy(grid[i], cons[i].Coeffs)
		grid[i][n+i] = 1
		grid[i][width] = cons[i].RHS
	}

	grid[m] = make([]float64, width+1)
	for j = 0; j < n; j++ {
		grid[m][j] = -obj[j]
	}

	return grid
}

// standardColumns labels the decision and slack columns: x1..xn, s1..sm.
func standardColumns(n, m int) []string {
	cols := make([]string, n+m)
	for j := 0; j < n; j++ {
		cols[j] = lp.VarName(j)
	}
	for i := 0; i < m; i++ {
		cols[n+i] = fmt.Sprintf("s%d", i+1)
	}

	return cols
}

// slackBasis marks every slack column basic in its own row.
func slackBasis(n, m int) []int {
	basis := make([]int, m)
	for i := range basis {
		basis[i] = n + i
	}

	return basis
}

func standardFormExplanation(p lp.Problem, m int, flipped []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Each of the %d constraints receives one slack variable, turning it into an equality.", m)
	if len(flipped) > 0 {
		fmt.Fprintf(&b, " Rows %s had a negative right-hand side and were multiplied by −1 first.",
			joinInts(flipped))
	}
	if p.Direction == lp.Minimize {
		b.WriteString(" The objective is minimized, so the engine maximizes its negation internally" +
			" and reports the value by substitution into the original coefficients.")
	}

	return b.String()
}

func formatAssignment(x []float64) string {
	parts := make([]string, len(x))
	for j := range x {
		parts[j] = fmt.Sprintf("%s = %.4f", lp.VarName(j), x[j])
	}

	return strings.Join(parts, ", ")
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, v := range xs {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, ", ")
}
