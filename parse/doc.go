// Package parse turns user-entered text into a validated lp.Problem and
// renders problems back into canonical mathematical notation.
//
// It is the text boundary of the module: coefficient lists arrive as
// comma-separated strings ("3, 2"), relations as symbols ("<=", "≥", "="),
// and every malformed field is reported with its position so a front-end
// can point at the offending input. The solving engines never see raw
// text, only the lp.Problem this package builds.
//
// ⚙️ Usage:
//
//	p, err := parse.Problem(lp.Maximize, "3, 2", []parse.ConstraintInput{
//	    {Coeffs: "2, 1", Rel: "<=", RHS: 100},
//	    {Coeffs: "1, 2", Rel: "<=", RHS: 80},
//	}, true)
//
//	fmt.Println(parse.Format(p))
//	// Maximize Z = 3x₁ + 2x₂
//	// Subject to:
//	//   2x₁ + x₂ ≤ 100
//	//   x₁ + 2x₂ ≤ 80
//	//   x₁, x₂ ≥ 0
package parse
