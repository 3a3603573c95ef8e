// Package lp defines the shared problem model, step trace and result types
// for the linprog solving engines.
//
// 🚀 What lives here?
//
//	The canonical representation every engine consumes:
//	  • Problem    — direction, objective, constraints, sign restriction
//	  • Constraint — coefficient row, relation (≤ / ≥ / =), right-hand side
//	  • Step/Trace — append-only record of the algebraic work performed
//	  • Result     — final status, variable assignment, objective value
//
// ✨ Design rules:
//
//   - Problem is validated once by New and never mutated afterwards;
//     engines copy what they need into their own working state.
//   - Steps are snapshots, not live references: a recorded tableau never
//     changes when the engine keeps pivoting.
//   - Unbounded and infeasible are first-class Result statuses, not errors.
//     Sentinel errors cover malformed input only.
//
// ⚙️ Usage:
//
//	p, err := lp.New(lp.Maximize,
//	    []float64{3, 2},
//	    []lp.Constraint{
//	        {Coeffs: []float64{2, 1}, Rel: lp.LE, RHS: 100},
//	        {Coeffs: []float64{1, 2}, Rel: lp.LE, RHS: 80},
//	    },
//	    true, // x ≥ 0
//	)
//	if err != nil {
//	    // one of the lp.Err* sentinels
//	}
//
// The engines live in sibling packages: simplex, bigm, graphical.
package lp
