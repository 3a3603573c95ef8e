package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linprog/lp"
)

// Format renders a problem in the canonical notation the original tool
// displays: objective line, "Subject to:" block, optional non-negativity
// line. Decision variables are typeset with subscripts (x₁, x₂, …).
func Format(p lp.Problem) string {
	var b strings.Builder
	b.WriteString(p.Direction.String())
	b.WriteString(" Z = ")
	b.WriteString(linearExpr(p.Objective))
	b.WriteString("\nSubject to:\n")

	for i := range p.Constraints {
		c := p.Constraints[i]
		b.WriteString("  ")
		b.WriteString(linearExpr(c.Coeffs))
		b.WriteString(" ")
		b.WriteString(c.Rel.String())
		b.WriteString(" ")
		b.WriteString(num(c.RHS))
		b.WriteString("\n")
	}

	if p.NonNegative {
		names := make([]string, p.NumVariables())
		for j := range names {
			names[j] = varName(j)
		}
		b.WriteString("  ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(" ≥ 0\n")
	}

	return b.String()
}

// linearExpr renders "3x₁ + 2x₂ - x₃", skipping zero terms.
func linearExpr(coeffs []float64) string {
	var b strings.Builder
	written := 0
	for j, c := range coeffs {
		if c == 0 {
			continue
		}
		if written == 0 {
			if c < 0 {
				b.WriteString("-")
			}
		} else if c < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		if a := math.Abs(c); a != 1 {
			b.WriteString(num(a))
		}
		b.WriteString(varName(j))
		written++
	}
	if written == 0 {
		return "0"
	}

	return b.String()
}

// varName is the pretty, subscripted sibling of lp.VarName.
func varName(j int) string { return "x" + subscript(j+1) }

var subscriptDigits = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

func subscript(n int) string {
	digits := strconv.Itoa(n)
	var b strings.Builder
	for _, d := range digits {
		b.WriteRune(subscriptDigits[d-'0'])
	}

	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
