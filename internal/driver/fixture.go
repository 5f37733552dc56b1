package driver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is a `.pie.yaml` session script: lists of top-level operations
// run against one Session, used by `pie -load FILE`.
type Fixture struct {
	Claims  []ClaimOp  `yaml:"claims"`
	Defines []DefineOp `yaml:"defines"`
	Checks  []string   `yaml:"checks"`
	Sames   []SameOp   `yaml:"sames"`
}

type ClaimOp struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type DefineOp struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

type SameOp struct {
	Type string `yaml:"type"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
}

// LoadFixture reads and parses a `.pie.yaml` file's contents.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

// Run executes every operation in f against s, stopping at the first
// error: all claims first, then all defines, then all checks, then all
// sames, each list in file order.
func (f *Fixture) Run(s *Session) ([]Result, error) {
	for _, c := range f.Claims {
		if err := s.Claim(c.Name, c.Type); err != nil {
			return nil, fmt.Errorf("claim %s: %w", c.Name, err)
		}
	}
	for _, d := range f.Defines {
		if err := s.Define(d.Name, d.Expr); err != nil {
			return nil, fmt.Errorf("define %s: %w", d.Name, err)
		}
	}
	var results []Result
	for _, c := range f.Checks {
		r, err := s.Check(c)
		if err != nil {
			return results, fmt.Errorf("check %q: %w", c, err)
		}
		results = append(results, r)
	}
	for _, sm := range f.Sames {
		if err := s.Same(sm.Type, sm.A, sm.B); err != nil {
			return results, fmt.Errorf("same %s %s %s: %w", sm.Type, sm.A, sm.B, err)
		}
	}
	return results, nil
}
