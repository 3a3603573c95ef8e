package graphical

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/lp"
)

// Solve enumerates the feasible corner points of a 2-variable problem and
// picks the one optimizing the objective.
//
// Contracts:
//   - p passes lp.Problem.Validate and has exactly two decision variables
//     (ErrNotTwoVariables otherwise).
//
// Infeasible and unbounded regions are reported through Result.Status.
func Solve(p lp.Problem, opts ...Option) (lp.Result, error) {
	if err := p.Validate(); err != nil {
		return lp.Result{}, err
	}
	if p.NumVariables() != 2 {
		return lp.Result{}, ErrNotTwoVariables
	}
	o := gatherOptions(opts)

	var (
		tr    = &lp.Trace{}
		lines = boundaryLines(p)
	)
	tr.Add(lp.Step{
		Title: "Constraint Boundaries",
		Explanation: fmt.Sprintf(
			"Each of the %d constraints is drawn as its boundary line%s. "+
				"Corner points of the feasible region can only occur where two boundaries cross.",
			p.NumConstraints(), axisNote(p)),
		Geometry: &lp.Geometry{Lines: append([]lp.Line(nil), lines...)},
	})

	vertices := feasibleVertices(p, lines, o.Eps)
	if len(vertices) == 0 {
		tr.Add(lp.Step{
			Title: "Infeasible Problem",
			Explanation: "No pairwise boundary intersection satisfies every constraint: " +
				"the feasible region is empty.",
			Geometry: &lp.Geometry{Lines: append([]lp.Line(nil), lines...)},
		})

		return lp.Result{
			Status:  lp.StatusInfeasible,
			Steps:   tr.Steps(),
			Message: "no corner point satisfies all constraints simultaneously",
		}, nil
	}

	if dir, ok := unboundedDirection(p, vertices, o); ok {
		tr.Add(lp.Step{
			Title: "Unbounded Region",
			Explanation: fmt.Sprintf(
				"Probe points far along the ray with direction (%.4g, %.4g) stay feasible while the "+
					"objective keeps improving, so no corner point is optimal.",
				dir[0], dir[1]),
			Geometry: &lp.Geometry{Lines: append([]lp.Line(nil), lines...)},
		})

		return lp.Result{
			Status:  lp.StatusUnbounded,
			Steps:   tr.Steps(),
			Message: fmt.Sprintf("objective improves without limit along direction (%.4g, %.4g)", dir[0], dir[1]),
		}, nil
	}

	// Evaluate every vertex; first-best wins so insertion order breaks
	// ties deterministically.
	var (
		geo  = &lp.Geometry{Lines: append([]lp.Line(nil), lines...)}
		best = 0
		bz   float64
		z    float64
		i    int
	)
	for i = range vertices {
		z = p.Eval(vertices[i][:])
		geo.Vertices = append(geo.Vertices, lp.Vertex{X: vertices[i][0], Y: vertices[i][1], Objective: z})

		tr.Add(lp.Step{
			Title: fmt.Sprintf("Evaluate Corner (%.4g, %.4g)", vertices[i][0], vertices[i][1]),
			Explanation: fmt.Sprintf("Substituting the corner point gives Z = %s = %.4f.",
				substitution(p.Objective, vertices[i]), z),
		})

		if i == 0 || better(p.Direction, z, bz, o.Eps) {
			best, bz = i, z
		}
	}

	tr.Add(lp.Step{
		Title: "Optimal Corner Point",
		Explanation: fmt.Sprintf(
			"Of the %d feasible corner points, (%.4g, %.4g) %s the objective with Z = %.4f.",
			len(vertices), vertices[best][0], vertices[best][1], verbFor(p.Direction), bz),
		Geometry: geo,
	})

	return lp.Result{
		Status: lp.StatusOptimal,
		Variables: map[string]float64{
			lp.VarName(0): vertices[best][0],
			lp.VarName(1): vertices[best][1],
		},
		ObjectiveValue: bz,
		Steps:          tr.Steps(),
	}, nil
}

// boundaryLines converts each constraint to its boundary line and, when
// non-negativity is on, appends the two axis lines.
func boundaryLines(p lp.Problem) []lp.Line {
	lines := make([]lp.Line, 0, len(p.Constraints)+2)
	for i := range p.Constraints {
		c := p.Constraints[i]
		lines = append(lines, lp.Line{
			Label:  lineLabel(c.Coeffs[0], c.Coeffs[1], c.RHS),
			Coeffs: [2]float64{c.Coeffs[0], c.Coeffs[1]},
			RHS:    c.RHS,
		})
	}
	if p.NonNegative {
		lines = append(lines,
			lp.Line{Label: "x1 = 0", Coeffs: [2]float64{1, 0}, RHS: 0},
			lp.Line{Label: "x2 = 0", Coeffs: [2]float64{0, 1}, RHS: 0},
		)
	}

	return lines
}

// feasibleVertices intersects every pair of boundary lines and keeps the
// points satisfying all constraints, deduplicated within tolerance.
// Insertion order (pair order of the double loop) is the tie-break order
// downstream, so it must stay deterministic.
func feasibleVertices(p lp.Problem, lines []lp.Line, eps float64) [][2]float64 {
	var (
		vertices [][2]float64
		a        *mat.Dense
		b        *mat.VecDense
		x        mat.VecDense
		pt       [2]float64
		i, j     int
	)
	for i = 0; i < len(lines); i++ {
		for j = i + 1; j < len(lines); j++ {
			a = mat.NewDense(2, 2, []float64{
				lines[i].Coeffs[0], lines[i].Coeffs[1],
				lines[j].Coeffs[0], lines[j].Coeffs[1],
			})
			// Parallel (or coincident) lines have no unique intersection.
			if math.Abs(mat.Det(a)) <= eps {
				continue
			}
			b = mat.NewVecDense(2, []float64{lines[i].RHS, lines[j].RHS})
			if err := x.SolveVec(a, b); err != nil {
				continue
			}
			pt = [2]float64{x.AtVec(0), x.AtVec(1)}
			if !feasible(p, pt, eps) || containsPoint(vertices, pt, eps) {
				continue
			}
			vertices = append(vertices, pt)
		}
	}

	return vertices
}

// feasible reports whether pt satisfies every constraint (and
// non-negativity) within a magnitude-scaled tolerance.
func feasible(p lp.Problem, pt [2]float64, eps float64) bool {
	var (
		lhs float64
		tol float64
	)
	for i := range p.Constraints {
		c := p.Constraints[i]
		lhs = floats.Dot(c.Coeffs, pt[:])
		tol = eps * (1 + math.Abs(lhs) + math.Abs(c.RHS))
		switch c.Rel {
		case lp.LE:
			if lhs > c.RHS+tol {
				return false
			}
		case lp.GE:
			if lhs < c.RHS-tol {
				return false
			}
		case lp.EQ:
			if math.Abs(lhs-c.RHS) > tol {
				return false
			}
		}
	}
	if p.NonNegative {
		tol = eps * (1 + math.Abs(pt[0]) + math.Abs(pt[1]))
		if pt[0] < -tol || pt[1] < -tol {
			return false
		}
	}

	return true
}

// containsPoint reports whether pt coincides with an already kept vertex
// within tolerance.
func containsPoint(vertices [][2]float64, pt [2]float64, eps float64) bool {
	var tol float64
	for i := range vertices {
		tol = eps * (1 + math.Abs(pt[0]) + math.Abs(pt[1])) * 1e3
		if math.Abs(vertices[i][0]-pt[0]) <= tol && math.Abs(vertices[i][1]-pt[1]) <= tol {
			return true
		}
	}

	return false
}

// unboundedDirection probes far points along candidate boundary rays. A
// direction whose far probe stays feasible while improving the objective
// certifies an unbounded problem; candidates are the boundary-line
// directions (both orientations), the axes and the objective gradient.
// The probe distance is RayScale multiplied by the largest vertex
// magnitude, so a wide but closed region never outgrows the probe.
func unboundedDirection(p lp.Problem, vertices [][2]float64, o Options) ([2]float64, bool) {
	reach := o.RayScale
	for i := range vertices {
		if m := math.Max(math.Abs(vertices[i][0]), math.Abs(vertices[i][1])); reach < o.RayScale*(1+m) {
			reach = o.RayScale * (1 + m)
		}
	}

	var dirs [][2]float64
	for i := range p.Constraints {
		c := p.Constraints[i]
		dirs = append(dirs,
			[2]float64{-c.Coeffs[1], c.Coeffs[0]},
			[2]float64{c.Coeffs[1], -c.Coeffs[0]},
		)
	}
	dirs = append(dirs,
		[2]float64{1, 0}, [2]float64{0, 1},
		[2]float64{p.Objective[0], p.Objective[1]},
		[2]float64{-p.Objective[0], -p.Objective[1]},
	)

	var (
		norm  float64
		d     [2]float64
		probe [2]float64
		v     [2]float64
		i, k  int
	)
	for k = range dirs {
		norm = math.Hypot(dirs[k][0], dirs[k][1])
		if norm <= o.Eps {
			continue
		}
		d = [2]float64{dirs[k][0] / norm, dirs[k][1] / norm}

		for i = range vertices {
			v = vertices[i]
			probe = [2]float64{v[0] + reach*d[0], v[1] + reach*d[1]}
			if !feasible(p, probe, o.Eps) {
				continue
			}
			if better(p.Direction, p.Eval(probe[:]), p.Eval(v[:]), o.Eps) {
				return d, true
			}
		}
	}

	return [2]float64{}, false
}

// better reports whether z strictly improves on best for the direction,
// beyond tolerance. Strictness keeps the first-best tie-break stable.
func better(dir lp.Direction, z, best, eps float64) bool {
	tol := eps * (1 + math.Abs(z) + math.Abs(best))
	if dir == lp.Maximize {
		return z > best+tol
	}

	return z < best-tol
}

func verbFor(dir lp.Direction) string {
	if dir == lp.Maximize {
		return "maximizes"
	}

	return "minimizes"
}

func axisNote(p lp.Problem) string {
	if p.NonNegative {
		return ", plus the two axis lines for x ≥ 0"
	}

	return ""
}

// lineLabel renders a boundary like "2x1 + x2 = 100".
func lineLabel(a, b, rhs float64) string {
	var parts []string
	if a != 0 {
		parts = append(parts, coefTerm(a, "x1"))
	}
	if b != 0 {
		term := coefTerm(b, "x2")
		if len(parts) > 0 && b > 0 {
			term = "+ " + term
		}
		parts = append(parts, term)
	}
	if len(parts) == 0 {
		parts = append(parts, "0")
	}

	return fmt.Sprintf("%s = %.4g", strings.Join(parts, " "), rhs)
}

func coefTerm(c float64, name string) string {
	switch c {
	case 1:
		return name
	case -1:
		return "-" + name
	default:
		return fmt.Sprintf("%.4g%s", c, name)
	}
}

// substitution renders "3·40 + 2·20" for the step explanation.
func substitution(obj []float64, pt [2]float64) string {
	return fmt.Sprintf("%.4g·%.4g + %.4g·%.4g", obj[0], pt[0], obj[1], pt[1])
}
