package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/linprog/lp"
)

// ConstraintInput is one raw constraint row as entered by a user.
type ConstraintInput struct {
	Coeffs string  // comma-separated coefficients, e.g. "2, 1"
	Rel    string  // "<=", "≤", ">=", "≥", "=" or "=="
	RHS    float64 // right-hand side
}

// Problem parses raw textual input into a validated lp.Problem.
//
// Every error carries the position of the offending field ("constraint 2:
// ..."); lp's sentinel errors from the final validation remain matchable
// through errors.Is.
func Problem(dir lp.Direction, objective string, constraints []ConstraintInput, nonNegative bool) (lp.Problem, error) {
	obj, err := Coefficients(objective)
	if err != nil {
		return lp.Problem{}, errors.Wrap(err, "objective")
	}

	var (
		rows = make([]lp.Constraint, len(constraints))
		rel  lp.Relation
		cs   []float64
		i    int
	)
	for i = range constraints {
		cs, err = Coefficients(constraints[i].Coeffs)
		if err != nil {
			return lp.Problem{}, errors.Wrapf(err, "constraint %d", i+1)
		}
		rel, err = Relation(constraints[i].Rel)
		if err != nil {
			return lp.Problem{}, errors.Wrapf(err, "constraint %d", i+1)
		}
		if len(cs) != len(obj) {
			return lp.Problem{}, errors.Wrapf(lp.ErrDimensionMismatch,
				"constraint %d has %d coefficients, expected %d", i+1, len(cs), len(obj))
		}
		rows[i] = lp.Constraint{Coeffs: cs, Rel: rel, RHS: constraints[i].RHS}
	}

	p, err := lp.New(dir, obj, rows, nonNegative)
	if err != nil {
		return lp.Problem{}, errors.Wrap(err, "parse")
	}

	return p, nil
}

// Coefficients parses a comma-separated list of numbers. Trailing commas
// are tolerated; an interior blank item ("3,,2") is an error, so a row
// with a doubled comma fails loudly instead of shifting every coefficient
// after it. An empty list is an error.
func Coefficients(s string) ([]float64, error) {
	items := strings.Split(s, ",")
	for len(items) > 0 && strings.TrimSpace(items[len(items)-1]) == "" {
		items = items[:len(items)-1]
	}

	var (
		out  []float64
		item string
		v    float64
		err  error
	)
	for _, item = range items {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, errors.Errorf("missing coefficient in %q", s)
		}
		v, err = strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", item)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(lp.ErrNonFiniteCoefficient, "%q", item)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty coefficient list")
	}

	return out, nil
}

// Relation maps a relation token to its lp.Relation. Both ASCII and the
// typographic symbols the original tool displays are accepted.
func Relation(s string) (lp.Relation, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤", "=<":
		return lp.LE, nil
	case ">=", "≥", "=>":
		return lp.GE, nil
	case "=", "==":
		return lp.EQ, nil
	default:
		return 0, errors.Wrapf(lp.ErrBadRelation, "%q", s)
	}
}

// SplitConstraint parses a one-line constraint like "2, 1 <= 100" into
// its raw fields. The relation token separates coefficients from the RHS.
func SplitConstraint(line string) (ConstraintInput, error) {
	for _, tok := range []string{"<=", "=<", "≤", ">=", "=>", "≥", "==", "="} {
		idx := strings.Index(line, tok)
		if idx < 0 {
			continue
		}
		rhsText := strings.TrimSpace(line[idx+len(tok):])
		rhs, err := strconv.ParseFloat(rhsText, 64)
		if err != nil {
			return ConstraintInput{}, errors.Errorf("invalid right-hand side %q", rhsText)
		}

		return ConstraintInput{
			Coeffs: strings.TrimSpace(line[:idx]),
			Rel:    tok,
			RHS:    rhs,
		}, nil
	}

	return ConstraintInput{}, errors.Errorf("no relation symbol in %q", line)
}
