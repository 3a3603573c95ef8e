package simplex

import "github.com/katalvlaran/linprog/lp"

// NormalizeRHS returns a deep copy of cons in which every row with a
// negative right-hand side has been multiplied by −1, flipping ≤ into ≥
// and vice versa (equalities keep their relation). The second return
// value lists the 1-based indices of the flipped rows for the trace.
//
// Restoring RHS ≥ 0 is the first standardization pass of both the plain
// simplex and the Big-M engine; it keeps the initial basis (slacks or
// artificials) feasible by construction.
//
// Complexity: O(m·n).
func NormalizeRHS(cons []lp.Constraint) ([]lp.Constraint, []int) {
	var (
		out     = make([]lp.Constraint, len(cons))
		flipped []int
		i, j    int
	)
	for i = range cons {
		out[i] = lp.Constraint{
			Coeffs: append([]float64(nil), cons[i].Coeffs...),
			Rel:    cons[i].Rel,
			RHS:    cons[i].RHS,
		}
		if out[i].RHS >= 0 {
			continue
		}

		for j = range out[i].Coeffs {
			out[i].Coeffs[j] = -out[i].Coeffs[j]
		}
		out[i].RHS = -out[i].RHS
		switch out[i].Rel {
		case lp.LE:
			out[i].Rel = lp.GE
		case lp.GE:
			out[i].Rel = lp.LE
		case lp.EQ:
			// Equalities are sign-symmetric.
		}
		flipped = append(flipped, i+1)
	}

	return out, flipped
}

// InternalObjective returns the maximize-normalized objective: a copy of
// obj, negated when dir is Minimize. Engines solve the maximize form and
// report the objective by substitution into the original coefficients, so
// no re-negation of the optimum is needed at readout time.
func InternalObjective(dir lp.Direction, obj []float64) []float64 {
	out := append([]float64(nil), obj...)
	if dir == lp.Minimize {
		for j := range out {
			out[j] = -out[j]
		}
	}

	return out
}
