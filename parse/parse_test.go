package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/parse"
)

// TestCoefficients covers the accepted comma-separated forms.
func TestCoefficients(t *testing.T) {
	got, err := parse.Coefficients("3, 2")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, got)

	got, err = parse.Coefficients(" -1.5,0 , 2e3, ")
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, 0, 2000}, got, "trailing comma is tolerated")

	_, err = parse.Coefficients("3, two")
	assert.ErrorContains(t, err, `invalid number "two"`)

	_, err = parse.Coefficients("3,,2")
	assert.ErrorContains(t, err, "missing coefficient",
		"an interior blank must not shift the remaining coefficients")

	_, err = parse.Coefficients(",3")
	assert.ErrorContains(t, err, "missing coefficient")

	_, err = parse.Coefficients("  ,  ")
	assert.ErrorContains(t, err, "empty coefficient list")

	_, err = parse.Coefficients("1, Inf")
	assert.ErrorIs(t, err, lp.ErrNonFiniteCoefficient)
}

// TestRelation accepts ASCII and typographic relation tokens.
func TestRelation(t *testing.T) {
	cases := map[string]lp.Relation{
		"<=": lp.LE, "=<": lp.LE, "≤": lp.LE,
		">=": lp.GE, "=>": lp.GE, " ≥ ": lp.GE,
		"=": lp.EQ, "==": lp.EQ,
	}
	for tok, want := range cases {
		got, err := parse.Relation(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, want, got, tok)
	}

	_, err := parse.Relation("<")
	assert.ErrorIs(t, err, lp.ErrBadRelation)
}

// TestSplitConstraint splits one-line constraints on the relation token.
func TestSplitConstraint(t *testing.T) {
	in, err := parse.SplitConstraint("2, 1 <= 100")
	require.NoError(t, err)
	assert.Equal(t, parse.ConstraintInput{Coeffs: "2, 1", Rel: "<=", RHS: 100}, in)

	in, err = parse.SplitConstraint("1,2>=8")
	require.NoError(t, err)
	assert.Equal(t, parse.ConstraintInput{Coeffs: "1,2", Rel: ">=", RHS: 8}, in)

	in, err = parse.SplitConstraint("1, 1 = 10")
	require.NoError(t, err)
	assert.Equal(t, lpRel(t, in.Rel), lp.EQ)
	assert.Equal(t, 10.0, in.RHS)

	_, err = parse.SplitConstraint("2, 1 100")
	assert.ErrorContains(t, err, "no relation symbol")

	_, err = parse.SplitConstraint("2, 1 <= ten")
	assert.ErrorContains(t, err, "invalid right-hand side")
}

func lpRel(t *testing.T, tok string) lp.Relation {
	t.Helper()
	rel, err := parse.Relation(tok)
	require.NoError(t, err)

	return rel
}

// TestProblem assembles a full problem from raw text and validates it.
func TestProblem(t *testing.T) {
	p, err := parse.Problem(lp.Maximize, "3, 2", []parse.ConstraintInput{
		{Coeffs: "2, 1", Rel: "<=", RHS: 100},
		{Coeffs: "1, 2", Rel: "≤", RHS: 80},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, 2, p.NumVariables())
	assert.Equal(t, lp.LE, p.Constraints[1].Rel)
	assert.InDelta(t, 160.0, p.Eval([]float64{40, 20}), 1e-12)
}

// TestProblem_Errors keeps lp sentinels matchable and positions the
// failing constraint in the message.
func TestProblem_Errors(t *testing.T) {
	_, err := parse.Problem(lp.Maximize, "3, 2", []parse.ConstraintInput{
		{Coeffs: "2, 1", Rel: "<=", RHS: 100},
		{Coeffs: "1", Rel: "<=", RHS: 80},
	}, true)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
	assert.ErrorContains(t, err, "constraint 2")

	_, err = parse.Problem(lp.Maximize, "3, 2", []parse.ConstraintInput{
		{Coeffs: "2, 1", Rel: "<>", RHS: 100},
	}, true)
	assert.ErrorIs(t, err, lp.ErrBadRelation)
	assert.ErrorContains(t, err, "constraint 1")

	_, err = parse.Problem(lp.Maximize, "oops", nil, true)
	assert.ErrorContains(t, err, "objective")
}

// TestFormat renders the canonical subscripted notation.
func TestFormat(t *testing.T) {
	p, err := lp.New(lp.Maximize, []float64{3, 2}, []lp.Constraint{
		{Coeffs: []float64{2, 1}, Rel: lp.LE, RHS: 100},
		{Coeffs: []float64{1, 2}, Rel: lp.LE, RHS: 80},
	}, true)
	require.NoError(t, err)

	want := "Maximize Z = 3x₁ + 2x₂\n" +
		"Subject to:\n" +
		"  2x₁ + x₂ ≤ 100\n" +
		"  x₁ + 2x₂ ≤ 80\n" +
		"  x₁, x₂ ≥ 0\n"
	assert.Equal(t, want, parse.Format(p))
}

// TestFormat_SignsAndZeros drops zero terms and renders leading minus.
func TestFormat_SignsAndZeros(t *testing.T) {
	p, err := lp.New(lp.Minimize, []float64{-1, 0, 2.5}, []lp.Constraint{
		{Coeffs: []float64{0, 0, 0}, Rel: lp.GE, RHS: 0},
	}, false)
	require.NoError(t, err)

	want := "Minimize Z = -x₁ + 2.5x₃\n" +
		"Subject to:\n" +
		"  0 ≥ 0\n"
	assert.Equal(t, want, parse.Format(p))
}
