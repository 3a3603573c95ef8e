// Package bigm solves linear programs with any mix of ≤, ≥ and =
// constraints using the Big-M method.
//
// 🚀 Algorithm Outline:
//
//  1. Normalize right-hand sides (rows with negative RHS flip sign and
//     relation), exactly as the plain simplex does.
//  2. Augment: each ≤ row gains a slack (+1); each ≥ row gains a surplus
//     (−1) and an artificial (+1); each = row gains an artificial only.
//     Slacks and artificials form the starting basis, which is feasible
//     by construction.
//  3. Penalize: artificial variables enter the maximize-normalized
//     objective with coefficient −M, where M is a finite penalty scaled
//     from the largest objective magnitude (M = factor × max(1, max|c|),
//     factor 1e4 by default). The Z row is then purged of M terms on the
//     artificial basic rows so the tableau starts consistent.
//  4. Iterate with the shared simplex pivot loop (same entering/leaving
//     rules, same step recording).
//  5. Interpret: if an artificial variable is still basic with a strictly
//     positive value at optimality, the original problem is infeasible;
//     otherwise decision variables are read out exactly as in simplex,
//     ignoring the augmentation columns.
//
// ⚙️ Usage:
//
//	res, err := bigm.Solve(p)
//	res, err := bigm.Solve(p, bigm.WithMFactor(1e6), bigm.WithEps(1e-12))
//
// The penalty is a sufficiently large finite constant rather than a
// symbolic M: large enough to dominate every honest objective coefficient,
// small enough to stay far from float64 overflow.
package bigm
