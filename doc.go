// Package linprog is a teaching-oriented linear programming toolkit:
// solve small LPs with the classic tableau methods and get back every
// intermediate step, ready to display.
//
// 🚀 What is linprog?
//
//	A library of deterministic LP engines that narrate their own work:
//		• Problem model: validated objective, constraints & non-negativity
//		• Simplex: tableau method for ≤ systems with non-negative RHS
//		• Big-M: slack/surplus/artificial augmentation for ≥ and = rows
//		• Graphical: corner-point enumeration for 2-variable problems
//		• Step traces: titled, explained snapshots after every pivot
//
// ✨ Why choose linprog?
//
//   - Classroom-friendly – every result carries the full solution path
//   - Deterministic – fixed tie-breaks, same trace on every run
//   - Explicit numerics – tolerances live in options, never hidden
//   - Small surface – one Solve function per engine, one shared Result
//
// Everything is organized under focused subpackages:
//
//	lp/        — Problem, Constraint, Result, Step & Trace types
//	simplex/   — standard-form tableau engine (Dantzig pivoting)
//	bigm/      — artificial-variable augmentation on top of simplex
//	graphical/ — 2-variable corner-point enumeration with geometry
//	parse/     — textual input ("3, 2", "2, 1 <= 100") & pretty printing
//	catalog/   — embedded worked sample problems with expected outcomes
//	cmd/lpsolve — terminal front-end for solving and browsing samples
//
// Quick example:
//
//	p, _ := lp.New(lp.Maximize, []float64{3, 2}, []lp.Constraint{
//		{Coeffs: []float64{2, 1}, Rel: lp.LE, RHS: 100},
//		{Coeffs: []float64{1, 2}, Rel: lp.LE, RHS: 80},
//	}, true)
//	res, _ := simplex.Solve(p)
//	// res.Status == lp.StatusOptimal, res.ObjectiveValue == 160,
//	// res.Steps holds the narrated pivot-by-pivot trace.
//
//	go get github.com/katalvlaran/linprog
package linprog
