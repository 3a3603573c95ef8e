// Package graphical solves 2-variable linear programs by corner-point
// enumeration, producing the geometric data a renderer needs to draw the
// feasible region.
//
// 🚀 Algorithm Outline:
//
//  1. Draw each constraint as its boundary line (the inequality turned
//     into an equality); non-negativity adds the two axis lines.
//  2. Intersect every pair of lines with a 2×2 solve; parallel pairs
//     (vanishing determinant) are skipped.
//  3. Keep the intersections satisfying every constraint within a small
//     tolerance: the vertices of the feasible region.
//  4. No surviving vertex ⇒ infeasible. An improving direction along
//     which far probe points stay feasible ⇒ unbounded.
//  5. Otherwise evaluate the objective at every vertex; the best one wins,
//     ties broken by insertion order for reproducible traces.
//
// Every evaluated vertex gets its own lp.Step, and the final step carries
// an lp.Geometry (lines + vertices) for plotting; the engine computes,
// the presentation layer draws.
//
// ⚙️ Usage:
//
//	res, err := graphical.Solve(p)    // p must have exactly 2 variables
//	if errors.Is(err, graphical.ErrNotTwoVariables) { … }
//
// Complexity: O(L²·m) for L boundary lines over m constraints, trivial at
// the 2-variable scale this engine is restricted to.
package graphical
