package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/katalvlaran/linprog/lp"
)

// renderResult prints the trace (optionally) and the final outcome in the
// order a reader works through them: steps first, verdict last.
func renderResult(w io.Writer, res lp.Result, withTrace bool) {
	if withTrace {
		for i, step := range res.Steps {
			fmt.Fprintf(w, "Step %d: %s\n", i+1, step.Title)
			fmt.Fprintf(w, "  %s\n", step.Explanation)
			if step.Table != nil {
				renderSnapshot(w, step.Table)
			}
			if step.Geometry != nil {
				renderGeometry(w, step.Geometry)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "Status: %s\n", res.Status)
	switch res.Status {
	case lp.StatusOptimal:
		names := make([]string, 0, len(res.Variables))
		for name := range res.Variables {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s = %.4f\n", name, res.Variables[name])
		}
		fmt.Fprintf(w, "  Z = %.4f\n", res.ObjectiveValue)
	default:
		fmt.Fprintf(w, "  %s\n", res.Message)
	}
}

// renderSnapshot prints a tableau with aligned columns.
func renderSnapshot(w io.Writer, snap *lp.Snapshot) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "\tbasis")
	for _, col := range snap.Columns {
		fmt.Fprintf(tw, "\t%s", col)
	}
	fmt.Fprintln(tw, "\t")

	for i, row := range snap.Rows {
		fmt.Fprintf(tw, "\t%s", snap.Basis[i])
		for _, v := range row {
			fmt.Fprintf(tw, "\t%.3f", v)
		}
		fmt.Fprintln(tw, "\t")
	}
	_ = tw.Flush()
}

// renderGeometry prints plotted lines and vertices; an actual plot is the
// presentation layer's job, this is the textual stand-in.
func renderGeometry(w io.Writer, geo *lp.Geometry) {
	for _, line := range geo.Lines {
		fmt.Fprintf(w, "    line: %s\n", line.Label)
	}
	for _, v := range geo.Vertices {
		fmt.Fprintf(w, "    vertex: (%.4g, %.4g)  Z = %.4f\n", v.X, v.Y, v.Objective)
	}
}
