package vars

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fsbench-sim/fsbench-sim/vars/arena"
)

// Config sizes the shared region backing one Context. Zero fields take the
// defaults below.
type Config struct {
	// MaxVariables bounds the total number of Variables across all three
	// registries.
	MaxVariables int
	// MaxStringBytes bounds the interned-string budget.
	MaxStringBytes int
}

const (
	defaultMaxVariables   = 4096
	defaultMaxStringBytes = 256 * 1024
)

// SpecialProviders supplies the external lookups behind {internal} special
// variables. Each provider fills facets on the passed Variable and reports
// whether it resolved. Unset providers simply fail resolution for their name.
type SpecialProviders struct {
	// Stats receives the name remainder after the "stats." prefix.
	Stats  func(v *Variable, name string) bool
	Rate   func(v *Variable) bool
	Date   func(v *Variable) bool
	Script func(v *Variable) bool
	Host   func(v *Variable) bool
}

// Context owns the variable system state for one benchmark run: the three
// registries and the arena they allocate from. Every operation of the
// package is a method on a Context; there is no process-wide instance.
//
// A Context performs no locking. The execution engine serializes model
// construction (assignments, definitions, reference building) against the
// execution phase; during execution, workers only read, and random sampling
// safety is the distribution implementation's contract.
type Context struct {
	table    *arena.Table[Variable]
	strings  *arena.Interner
	globals  []*Variable // append at tail, includes Random-scoped
	specials []*Variable // append at tail, lazily created
	locals   []*Variable // newest first (head insertion)

	// Providers backs {internal} special-variable resolution.
	Providers SpecialProviders
	// LookupEnv backs (environment) special-variable resolution.
	// Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// NewDistribution overrides the package-level NewDistributionFunc for
	// this Context when non-nil.
	NewDistribution func() Distribution
}

// NewContext creates a Context with its own arena.
func NewContext(cfg Config) *Context {
	if cfg.MaxVariables <= 0 {
		cfg.MaxVariables = defaultMaxVariables
	}
	if cfg.MaxStringBytes <= 0 {
		cfg.MaxStringBytes = defaultMaxStringBytes
	}
	return &Context{
		table:     arena.NewTable[Variable](cfg.MaxVariables),
		strings:   arena.NewInterner(cfg.MaxStringBytes),
		LookupEnv: os.LookupEnv,
	}
}

// StringLiteral returns a static string descriptor, interning the text in
// the Context's arena.
func (c *Context) StringLiteral(s string) (*AVD, error) {
	interned, err := c.strings.Intern(s)
	if err != nil {
		logrus.Errorf("out of memory for strings: %v", err)
		return nil, err
	}
	return &AVD{kind: avdStrVal, strVal: interned}, nil
}

func (c *Context) newDistribution() (Distribution, error) {
	factory := c.NewDistribution
	if factory == nil {
		factory = NewDistributionFunc
	}
	if factory == nil {
		return nil, ErrNoDistribution
	}
	return factory(), nil
}
