package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/fsbench-sim/fsbench-sim/vars"
	"github.com/fsbench-sim/fsbench-sim/vars/providers"
	"github.com/fsbench-sim/fsbench-sim/vars/randdist"
)

// Profile is the YAML description of a model's variables: global
// assignments, random variable definitions, and the attribute references to
// resolve. It is a thin driver input, not the benchmark workload language.
type Profile struct {
	Script     string         `yaml:"script,omitempty"`
	Rate       uint64         `yaml:"rate,omitempty"`
	Globals    []GlobalDef    `yaml:"globals"`
	Randoms    []RandomDef    `yaml:"randoms"`
	Attributes []AttributeDef `yaml:"attributes"`
}

// GlobalDef assigns one facet of a global variable.
type GlobalDef struct {
	Name   string  `yaml:"name"`
	Bool   *bool   `yaml:"bool,omitempty"`
	Int    *uint64 `yaml:"int,omitempty"`
	String *string `yaml:"string,omitempty"`
}

// RandomDef defines a random variable and its distribution parameters.
type RandomDef struct {
	Name   string       `yaml:"name"`
	Type   string       `yaml:"type"`
	Seed   uint64       `yaml:"seed,omitempty"`
	Min    uint64       `yaml:"min,omitempty"`
	Mean   uint64       `yaml:"mean,omitempty"`
	Shape  uint64       `yaml:"shape,omitempty"`
	Round  uint64       `yaml:"round,omitempty"`
	Source string       `yaml:"source,omitempty"`
	Table  []SegmentDef `yaml:"table,omitempty"`
}

// SegmentDef is one row of a tabular distribution.
type SegmentDef struct {
	Weight float64 `yaml:"weight"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// AttributeDef binds an attribute name to a $variable reference.
type AttributeDef struct {
	Name string `yaml:"name"`
	Ref  string `yaml:"ref"`
}

// LoadProfile reads and parses a variable profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Apply populates a Context from the profile: wires the standard providers,
// assigns globals, and defines random variables.
func (p *Profile) Apply(c *vars.Context) error {
	providers.Wire(c, providers.NewStats(), providers.NewEventGen(p.Rate), p.Script)

	for _, g := range p.Globals {
		name := "$" + g.Name
		switch {
		case g.Bool != nil:
			if err := c.AssignBool(name, *g.Bool); err != nil {
				return err
			}
		case g.Int != nil:
			if err := c.AssignInt(name, *g.Int); err != nil {
				return err
			}
		case g.String != nil:
			if err := c.AssignString(name, *g.String); err != nil {
				return err
			}
		default:
			return fmt.Errorf("global %q sets no value", g.Name)
		}
	}

	for _, r := range p.Randoms {
		v, err := c.DefineRandom("$" + r.Name)
		if err != nil {
			return err
		}
		dist, ok := v.Distribution().(*randdist.Dist)
		if !ok {
			return fmt.Errorf("random %q: unexpected distribution implementation", r.Name)
		}
		switch r.Type {
		case "uniform":
			dist.SetUniform()
		case "gamma":
			dist.SetGamma()
		case "tabular":
			segments := make([]randdist.Segment, len(r.Table))
			for i, s := range r.Table {
				segments[i] = randdist.Segment{Weight: s.Weight, Min: s.Min, Max: s.Max}
			}
			dist.SetTable(segments)
		default:
			return fmt.Errorf("random %q: unknown distribution type %q", r.Name, r.Type)
		}
		if r.Source == "urandom" {
			dist.UseURandom()
		}
		dist.SetParam(vars.ParamSeed, vars.IntLiteral(r.Seed))
		dist.SetParam(vars.ParamMin, vars.IntLiteral(r.Min))
		dist.SetParam(vars.ParamMean, vars.IntLiteral(r.Mean))
		dist.SetParam(vars.ParamShape, vars.IntLiteral(r.Shape))
		dist.SetParam(vars.ParamRound, vars.IntLiteral(r.Round))

		logrus.Debugf("defined random variable $%s (%s)", r.Name, r.Type)
	}

	return nil
}
