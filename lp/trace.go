package lp

// Snapshot is a frozen copy of an engine's tableau at one trace step.
//
// Rows holds the full numeric grid including the objective row (last) and
// the RHS column (last). Columns labels every column, RHS included; Basis
// labels every row: the variable currently basic in that row, with the
// objective row labelled "Z". A Snapshot never aliases live engine memory.
type Snapshot struct {
	Columns []string
	Basis   []string
	Rows    [][]float64
}

// Line is one plotted constraint boundary for the graphical engine:
// Coeffs[0]·x₁ + Coeffs[1]·x₂ = RHS.
type Line struct {
	Label  string
	Coeffs [2]float64
	RHS    float64
}

// Vertex is a feasible corner point with its objective value.
type Vertex struct {
	X, Y      float64
	Objective float64
}

// Geometry carries the plotted lines and feasible vertices of a graphical
// solve; the presentation layer draws it, the engine never renders.
type Geometry struct {
	Lines    []Line
	Vertices []Vertex
}

// Step is one entry of the solution trace. Table and Geometry are optional
// and mutually independent; Steps are append-only and never mutated after
// being recorded.
type Step struct {
	Title       string
	Explanation string
	Table       *Snapshot
	Geometry    *Geometry
}

// Trace accumulates Steps while an engine runs. The zero value is ready
// to use; ownership of the recorded sequence transfers to the Result.
type Trace struct {
	steps []Step
}

// Add appends one step to the trace.
func (t *Trace) Add(s Step) { t.steps = append(t.steps, s) }

// Record is shorthand for Add with a tableau snapshot.
func (t *Trace) Record(title, explanation string, table *Snapshot) {
	t.Add(Step{Title: title, Explanation: explanation, Table: table})
}

// Steps returns the recorded sequence in insertion order.
func (t *Trace) Steps() []Step { return t.steps }

// Len returns the number of recorded steps.
func (t *Trace) Len() int { return len(t.steps) }
