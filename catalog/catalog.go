// Package catalog ships a small library of worked sample problems,
// embedded as YAML, for demos, documentation and the CLI's examples
// command. Each sample records the recommended solving method and the
// expected outcome so tests can replay the whole catalog.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/parse"
)

//go:embed problems.yaml
var problemsYAML []byte

// ErrUnknownSample indicates a Get call with a name not in the catalog.
var ErrUnknownSample = errors.New("catalog: unknown sample problem")

// Expected is the documented outcome of a sample problem.
type Expected struct {
	Status    string             `yaml:"status"`
	Objective float64            `yaml:"objective"`
	Variables map[string]float64 `yaml:"variables"`
}

// Sample is one catalog entry: a raw textual problem (parsed on demand
// via the parse package) plus its pedagogical metadata.
type Sample struct {
	Name        string                  `yaml:"name"`
	Title       string                  `yaml:"title"`
	Description string                  `yaml:"description"`
	Direction   string                  `yaml:"direction"`
	Objective   string                  `yaml:"objective"`
	Constraints []parse.ConstraintInput `yaml:"constraints"`
	NonNegative bool                    `yaml:"non_negative"`
	Method      string                  `yaml:"method"`
	Expected    Expected                `yaml:"expected"`
}

type catalogFile struct {
	Problems []Sample `yaml:"problems"`
}

// Problems decodes the embedded catalog. The slice order matches the
// YAML file, so listings are stable.
func Problems() ([]Sample, error) {
	var f catalogFile
	if err := yaml.Unmarshal(problemsYAML, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode embedded problems: %w", err)
	}

	return f.Problems, nil
}

// Get returns the sample named name, or ErrUnknownSample.
func Get(name string) (Sample, error) {
	samples, err := Problems()
	if err != nil {
		return Sample{}, err
	}
	for i := range samples {
		if samples[i].Name == name {
			return samples[i], nil
		}
	}

	return Sample{}, fmt.Errorf("%w: %q", ErrUnknownSample, name)
}

// Problem parses the sample into a validated lp.Problem.
func (s Sample) Problem() (lp.Problem, error) {
	var dir lp.Direction
	switch s.Direction {
	case "maximize":
		dir = lp.Maximize
	case "minimize":
		dir = lp.Minimize
	default:
		return lp.Problem{}, fmt.Errorf("catalog: sample %q: %w", s.Name, lp.ErrBadDirection)
	}

	return parse.Problem(dir, s.Objective, s.Constraints, s.NonNegative)
}
