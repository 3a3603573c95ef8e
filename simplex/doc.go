// Package simplex implements the standard (primal, tableau-form) Simplex
// method for linear programs whose constraints reduce to ≤ rows with
// non-negative right-hand sides.
//
// 🚀 Algorithm Outline:
//
//  1. Standardize: flip the sign of any row with a negative RHS (the
//     relation flips with it), then convert every ≤ row to an equality by
//     adding one slack variable. If a ≥ or = row survives this pass there
//     is no feasible all-slack starting basis; the caller must route the
//     problem to the bigm package instead (ErrNeedsBigM).
//  2. Build the initial tableau: negated objective coefficients in the
//     Z row (minimize is handled by negating the objective internally),
//     slack columns forming the identity, slacks basic.
//  3. Iterate: entering column = most negative Z-row coefficient (lowest
//     index on ties), leaving row = minimum RHS/entry ratio over strictly
//     positive entries (lowest index on ties), then pivot, restoring the
//     unit-vector invariant on every basic column.
//  4. Terminate: optimal when no Z-row coefficient is negative; unbounded
//     when the entering column has no positive entry; error when the
//     iteration safety valve trips on a degenerate/cycling instance.
//
// Every tableau the loop touches is recorded as an lp.Step snapshot, so a
// presentation layer can replay the solve exactly.
//
// The Tableau type and its pivot primitives are exported: the bigm package
// reuses them verbatim after its artificial-variable augmentation.
//
// ⚙️ Usage:
//
//	res, err := simplex.Solve(p)              // defaults
//	res, err := simplex.Solve(p,
//	    simplex.WithEps(1e-12),               // pivot-zero tolerance
//	    simplex.WithMaxIter(500),             // explicit safety valve
//	)
//
// Complexity: O(maxIter · m·w) where m = constraint rows and w = tableau
// width; each pivot is one O(m·w) elimination pass.
package simplex
