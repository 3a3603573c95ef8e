// Command lpsolve is the terminal front-end for the linprog engines.
//
// It collects a problem from flags, routes it to the right engine and
// prints the step-by-step trace followed by the final outcome.
//
// Usage:
//
//	lpsolve solve --obj "3, 2" --constraint "2, 1 <= 100" --constraint "1, 2 <= 80"
//	lpsolve solve --min --method bigm --obj "2, 3" \
//	    --constraint "1, 2 >= 8" --constraint "3, 1 >= 12"
//	lpsolve examples
//	lpsolve examples --run diet-problem
//
// Method routing follows the engines' preconditions: "auto" picks bigm
// when any ≥ or = constraint is present and plain simplex otherwise;
// "graphical" is rejected unless the problem has exactly two variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linprog/bigm"
	"github.com/katalvlaran/linprog/catalog"
	"github.com/katalvlaran/linprog/graphical"
	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/parse"
	"github.com/katalvlaran/linprog/simplex"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lpsolve:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lpsolve",
		Short:         "Solve linear programming problems with step-by-step traces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newExamplesCmd())

	return root
}

func newSolveCmd() *cobra.Command {
	var (
		minimize    bool
		objective   string
		constraints []string
		method      string
		noTrace     bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem given on the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := lp.Maximize
			if minimize {
				dir = lp.Minimize
			}

			rows := make([]parse.ConstraintInput, len(constraints))
			for i, line := range constraints {
				row, err := parse.SplitConstraint(line)
				if err != nil {
					return err
				}
				rows[i] = row
			}

			p, err := parse.Problem(dir, objective, rows, true)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), parse.Format(p))

			res, err := route(p, method)
			if err != nil {
				return err
			}
			renderResult(cmd.OutOrStdout(), res, !noTrace)

			return nil
		},
	}

	cmd.Flags().BoolVar(&minimize, "min", false, "minimize the objective (default is maximize)")
	cmd.Flags().StringVar(&objective, "obj", "", "objective coefficients, e.g. \"3, 2\"")
	cmd.Flags().StringArrayVar(&constraints, "constraint", nil,
		"constraint line, e.g. \"2, 1 <= 100\" (repeatable)")
	cmd.Flags().StringVar(&method, "method", "auto", "auto|simplex|bigm|graphical")
	cmd.Flags().BoolVar(&noTrace, "no-trace", false, "print only the final outcome")
	_ = cmd.MarkFlagRequired("obj")
	_ = cmd.MarkFlagRequired("constraint")

	return cmd
}

func newExamplesCmd() *cobra.Command {
	var run string

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List the built-in sample problems, or solve one with --run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if run == "" {
				return listExamples(cmd)
			}

			sample, err := catalog.Get(run)
			if err != nil {
				return err
			}
			p, err := sample.Problem()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s — %s\n\n", sample.Title, sample.Description)
			fmt.Fprintln(cmd.OutOrStdout(), parse.Format(p))

			res, err := route(p, sample.Method)
			if err != nil {
				return err
			}
			renderResult(cmd.OutOrStdout(), res, true)

			return nil
		},
	}
	cmd.Flags().StringVar(&run, "run", "", "solve the named sample problem")

	return cmd
}

func listExamples(cmd *cobra.Command) error {
	samples, err := catalog.Problems()
	if err != nil {
		return err
	}
	for _, s := range samples {
		fmt.Fprintf(cmd.OutOrStdout(), "%-22s %-22s method=%-9s expected=%s\n",
			s.Name, s.Title, s.Method, s.Expected.Status)
	}

	return nil
}

// route enforces the engine preconditions: graphical needs two
// variables, ≥/= constraints go to Big-M, and "auto" picks the cheapest
// applicable engine.
func route(p lp.Problem, method string) (lp.Result, error) {
	switch method {
	case "simplex":
		return simplex.Solve(p)
	case "bigm":
		return bigm.Solve(p)
	case "graphical":
		if p.NumVariables() != 2 {
			return lp.Result{}, graphical.ErrNotTwoVariables
		}

		return graphical.Solve(p)
	case "", "auto":
		if needsBigM(p) {
			return bigm.Solve(p)
		}

		return simplex.Solve(p)
	default:
		return lp.Result{}, fmt.Errorf("unknown method %q (want auto, simplex, bigm or graphical)", method)
	}
}

func needsBigM(p lp.Problem) bool {
	cons, _ := simplex.NormalizeRHS(p.Constraints)
	for i := range cons {
		if cons[i].Rel != lp.LE {
			return true
		}
	}

	return false
}
