package vars

import (
	"github.com/sirupsen/logrus"
)

// ParamKind names one distribution parameter or structural field, both for
// configuration and for textual queries.
type ParamKind int

const (
	// ParamSeed seeds the distribution's entropy source.
	ParamSeed ParamKind = iota
	// ParamMin is the lower bound of generated values.
	ParamMin
	// ParamMean is the target mean of generated values.
	ParamMean
	// ParamShape is the gamma shape parameter, scaled by 1000.
	ParamShape
	// ParamRound quantizes samples to the nearest multiple when nonzero.
	ParamRound
	// ParamFamily is query-only: the distribution family name.
	ParamFamily
	// ParamSource is query-only: the entropy source name.
	ParamSource
)

// Distribution is the contract a random distribution implementation fulfils
// toward the variable system. Sampling happens on every read of a RandomRef
// descriptor; each read is one simulated event, so re-sampling is the
// correctness contract, not an incidental cost. Sampling must be safe for
// concurrent invocation by many workers (the implementation's contract).
//
// Numeric parameters are held as AVDs so they themselves resolve with
// delayed binding.
type Distribution interface {
	SampleInt() uint64
	SampleDouble() float64
	// Family returns "uniform", "gamma" or "tabular", or "" before the
	// distribution has been given a type.
	Family() string
	// Source names the entropy source ("prng" or "urandom").
	Source() string
	// Param returns the descriptor holding one numeric parameter; nil when
	// never configured. Query-only kinds return nil.
	Param(ParamKind) *AVD
	// SetParam replaces one numeric parameter. Query-only kinds are ignored.
	SetParam(ParamKind, *AVD)
}

// NewDistributionFunc constructs the distribution attached to each newly
// defined random variable. The vars/randdist sub-package sets it from an
// init() function; tests may substitute their own.
var NewDistributionFunc func() Distribution

// DefineRandom declares a fresh Random-scoped variable and attaches a newly
// constructed distribution. Random variables must be freshly declared: a
// name already in use, in any registry this entry point searches, is an
// error.
func (c *Context) DefineRandom(name string) (*Variable, error) {
	name = stripSigil(name)
	if c.find(name) != nil {
		logrus.Errorf("variable name %s already in use", name)
		return nil, ErrRedefined
	}
	v, err := c.alloc(name, ScopeRandom)
	if err != nil {
		logrus.Errorf("failed to alloc random variable %s: %v", name, err)
		return nil, err
	}
	dist, err := c.newDistribution()
	if err != nil {
		logrus.Errorf("failed to alloc random distribution object for %s: %v", name, err)
		return nil, err
	}
	v.dist = dist
	return v, nil
}

// LookupRandom finds an existing variable and requires it to be a fully
// formed random variable (Random-scoped with a distribution attached). Used
// when later configuration statements mutate distribution parameters rather
// than redefine the variable.
func (c *Context) LookupRandom(name string) (*Variable, error) {
	stripped := stripSigil(name)
	v := c.find(stripped)
	if v == nil {
		logrus.Errorf("failed to locate random variable $%s", stripped)
		return nil, ErrNotFound
	}
	if v.scope != ScopeRandom || v.dist == nil {
		logrus.Errorf("found variable $%s not random", stripped)
		return nil, ErrNotRandom
	}
	return v, nil
}
