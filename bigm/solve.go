package bigm

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

// Solve runs the Big-M method on p and returns the result with its full
// step trace. Any mix of ≤, ≥ and = constraints is accepted.
//
// The pivot loop, step recording and optimal-basis readout are the ones
// exported by the simplex package; this engine contributes the
// artificial-variable augmentation and the infeasibility interpretation.
//
// Complexity: O(maxIter · m·w) with tableau width w ≤ n + 2m.
func Solve(p lp.Problem, opts ...Option) (lp.Result, error) {
	if err := p.Validate(); err != nil {
		return lp.Result{}, err
	}
	if !p.NonNegative {
		return lp.Result{}, simplex.ErrFreeVariables
	}
	o := gatherOptions(opts)

	cons, flipped := simplex.NormalizeRHS(p.Constraints)

	var (
		obj = simplex.InternalObjective(p.Direction, p.Objective)
		aug = augment(cons, obj, o.MFactor)
		tr  = &lp.Trace{}
	)

	t, err := simplex.NewTableau(aug.grid, aug.cols, aug.basis, o.Eps)
	if err != nil {
		return lp.Result{}, err
	}

	tr.Add(lp.Step{
		Title:       "Augmented Standard Form",
		Explanation: aug.explanation(p, flipped),
	})
	tr.Record("Initial Big-M Tableau",
		"Slack and artificial variables form the starting basis. The Z row carries the penalty "+
			"M for every artificial column and has been purged of M terms on the artificial basic "+
			"rows so all basic reduced costs start at zero.",
		t.Snapshot())

	outcome, ubCol := t.Run(tr, o.MaxIter)

	// The extra Big-M check: an artificial variable stuck in the basis
	// with a positive value proves the original constraints are
	// contradictory. This covers the unbounded outcome too: an open
	// direction found while an artificial is still positive belongs to
	// the augmented system, not to the (empty) original region.
	if outcome == simplex.OutcomeOptimal || outcome == simplex.OutcomeUnbounded {
		if col, val := positiveArtificial(t, aug.artStart, o.Eps); col >= 0 {
			tr.Add(lp.Step{
				Title: "Infeasible Problem",
				Explanation: fmt.Sprintf(
					"Artificial variable %s remains basic with value %.4g. "+
						"Artificials exist only to fabricate a starting basis, so no point "+
						"satisfies all original constraints simultaneously.",
					t.Label(col), val),
			})

			return lp.Result{
				Status:  lp.StatusInfeasible,
				Steps:   tr.Steps(),
				Message: fmt.Sprintf("no feasible solution: artificial variable %s remains positive", t.Label(col)),
			}, nil
		}
	}

	return simplex.Interpret(p, t, tr, outcome, ubCol), nil
}

// positiveArtificial scans the basis for an artificial column (index ≥
// artStart) whose row RHS exceeds eps. Returns (-1, 0) when none exists.
func positiveArtificial(t *simplex.Tableau, artStart int, eps float64) (int, float64) {
	var (
		i   int
		col int
		val float64
	)
	for i = 0; i < t.Rows(); i++ {
		col = t.BasisColumn(i)
		if col >= artStart {
			val = t.RHS(i)
			if val > eps {
				return col, val
			}
		}
	}

	return -1, 0
}

// augmentation is the assembled Big-M tableau input plus bookkeeping for
// the trace and the infeasibility check.
type augmentation struct {
	grid     [][]float64
	cols     []string
	basis    []int
	artStart int // first artificial column index
	nSlack   int
	nSurplus int
	nArt     int
	m        float64 // the penalty value actually used
}

// augment builds the augmented grid: decision columns, slack block,
// surplus block, artificial block, RHS. Slacks and artificials are basic;
// the Z row is maximize-normalized with penalty M on artificials and then
// purged of M terms on the artificial basic rows.
func augment(cons []lp.Constraint, obj []float64, mFactor float64) augmentation {
	var (
		n = len(obj)
		m = len(cons)
		i int
	)

	var a augmentation
	for i = range cons {
		switch cons[i].Rel {
		case lp.LE:
			a.nSlack++
		case lp.GE:
			a.nSurplus++
			a.nArt++
		case lp.EQ:
			a.nArt++
		}
	}

	var (
		slackStart   = n
		surplusStart = slackStart + a.nSlack
		artStart     = surplusStart + a.nSurplus
		width        = artStart + a.nArt
	)
	a.artStart = artStart
	a.m = bigMValue(obj, mFactor)

	a.cols = make([]string, width)
	for i = 0; i < n; i++ {
		a.cols[i] = lp.VarName(i)
	}
	for i = 0; i < a.nSlack; i++ {
		a.cols[slackStart+i] = fmt.Sprintf("s%d", i+1)
	}
	for i = 0; i < a.nSurplus; i++ {
		a.cols[surplusStart+i] = fmt.Sprintf("e%d", i+1)
	}
	for i = 0; i < a.nArt; i++ {
		a.cols[artStart+i] = fmt.Sprintf("a%d", i+1)
	}

	a.grid = make([][]float64, m+1)
	a.basis = make([]int, m)

	var (
		slack, surplus, art int
		row                 []float64
	)
	for i = range cons {
		row = make([]float64, width+1)
		copy(row, cons[i].Coeffs)
		row[width] = cons[i].RHS

		switch cons[i].Rel {
		case lp.LE:
			row[slackStart+slack] = 1
			a.basis[i] = slackStart + slack
			slack++
		case lp.GE:
			row[surplusStart+surplus] = -1
			row[artStart+art] = 1
			a.basis[i] = artStart + art
			surplus++
			art++
		case lp.EQ:
			row[artStart+art] = 1
			a.basis[i] = artStart + art
			art++
		}
		a.grid[i] = row
	}

	// Z row: negated objective, penalty on artificial columns.
	z := make([]float64, width+1)
	for i = 0; i < n; i++ {
		z[i] = -obj[i]
	}
	for i = 0; i < a.nArt; i++ {
		z[artStart+i] = a.m
	}

	// Purge M from the artificial basic rows so their reduced costs are
	// zero before the first pivot: Z ← Z − M·row for every artificial row.
	var j int
	for i = range cons {
		if a.basis[i] < artStart {
			continue
		}
		for j = 0; j <= width; j++ {
			z[j] -= a.m * a.grid[i][j]
		}
		z[a.basis[i]] = 0
	}
	a.grid[m] = z

	return a
}

// bigMValue scales the penalty from the largest objective magnitude.
func bigMValue(obj []float64, factor float64) float64 {
	max := 1.0
	for _, c := range obj {
		if v := math.Abs(c); v > max {
			max = v
		}
	}

	return factor * max
}

func (a augmentation) explanation(p lp.Problem, flipped []int) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Augmentation adds %d slack, %d surplus and %d artificial variables. "+
			"Artificials are penalized with M = %.4g so the optimizer drives them out of the basis.",
		a.nSlack, a.nSurplus, a.nArt, a.m)
	if len(flipped) > 0 {
		parts := make([]string, len(flipped))
		for i, v := range flipped {
			parts[i] = fmt.Sprintf("%d", v)
		}
		fmt.Fprintf(&b, " Rows %s had a negative right-hand side and were multiplied by −1 first.",
			strings.Join(parts, ", "))
	}
	if p.Direction == lp.Minimize {
		b.WriteString(" The objective is minimized, so the engine maximizes its negation internally.")
	}

	return b.String()
}
