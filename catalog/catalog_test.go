package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/bigm"
	"github.com/katalvlaran/linprog/catalog"
	"github.com/katalvlaran/linprog/graphical"
	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

// TestProblems_StableListing decodes the embedded catalog and checks the
// listing order and required metadata.
func TestProblems_StableListing(t *testing.T) {
	samples, err := catalog.Problems()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(samples), 6)

	assert.Equal(t, "production-planning", samples[0].Name)
	assert.Equal(t, "diet-problem", samples[2].Name)

	for _, s := range samples {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Method, s.Name)
		assert.NotEmpty(t, s.Expected.Status, s.Name)
	}
}

// TestGet resolves samples by name and rejects unknown ones.
func TestGet(t *testing.T) {
	s, err := catalog.Get("diet-problem")
	require.NoError(t, err)
	assert.Equal(t, "bigm", s.Method)

	_, err = catalog.Get("no-such-sample")
	assert.ErrorIs(t, err, catalog.ErrUnknownSample)
}

// TestSample_Problem parses a sample into a validated problem.
func TestSample_Problem(t *testing.T) {
	s, err := catalog.Get("production-planning")
	require.NoError(t, err)

	p, err := s.Problem()
	require.NoError(t, err)
	assert.Equal(t, lp.Maximize, p.Direction)
	assert.Equal(t, 2, p.NumVariables())
	assert.Equal(t, lp.LE, p.Constraints[0].Rel)
}

// TestSample_Problem_BadDirection surfaces lp.ErrBadDirection for a
// hand-built sample with an unknown direction word.
func TestSample_Problem_BadDirection(t *testing.T) {
	s := catalog.Sample{Name: "broken", Direction: "sideways", Objective: "1"}
	_, err := s.Problem()
	assert.ErrorIs(t, err, lp.ErrBadDirection)
}

// TestCatalog_Replay solves every sample with its recommended method and
// checks the documented outcome. This is the catalog's own regression
// suite: a sample whose expectation drifts from the solvers fails here.
func TestCatalog_Replay(t *testing.T) {
	samples, err := catalog.Problems()
	require.NoError(t, err)

	for _, s := range samples {
		t.Run(s.Name, func(t *testing.T) {
			p, err := s.Problem()
			require.NoError(t, err)

			res := solveWith(t, s.Method, p)
			require.Equal(t, s.Expected.Status, res.Status.String())

			if res.Status != lp.StatusOptimal {
				return
			}
			assert.InDelta(t, s.Expected.Objective, res.ObjectiveValue, 1e-6)
			for name, want := range s.Expected.Variables {
				assert.InDelta(t, want, res.Variables[name], 1e-6, name)
			}
		})
	}
}

// solveWith dispatches on the sample's recommended method name.
func solveWith(t *testing.T, method string, p lp.Problem) lp.Result {
	t.Helper()

	var (
		res lp.Result
		err error
	)
	switch method {
	case "simplex":
		res, err = simplex.Solve(p)
	case "bigm":
		res, err = bigm.Solve(p)
	case "graphical":
		res, err = graphical.Solve(p)
	default:
		t.Fatalf("unknown method %q", method)
	}
	require.NoError(t, err)

	return res
}
