// Package randdist implements the random distributions that back
// Random-scoped variables: uniform, gamma, and tabular. A distribution is
// created untyped when the variable is defined; later configuration
// statements pick the family, supply parameters (held as descriptors so they
// themselves bind late), and optionally switch the entropy source.
//
// Sampling is safe for concurrent invocation by many workers, which is this
// package's contract toward the variable system.
package randdist

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fsbench-sim/fsbench-sim/vars"
)

// Distribution family names as reported through Family().
const (
	FamilyUniform = "uniform"
	FamilyGamma   = "gamma"
	FamilyTabular = "tabular"
)

// Entropy source names as reported through Source().
const (
	SourcePRNG    = "prng"
	SourceURandom = "urandom"
)

const numericParams = 5 // seed, min, mean, shape, round

// Segment is one row of a tabular distribution: values drawn uniformly from
// [Min, Max] with relative probability Weight.
type Segment struct {
	Weight float64
	Min    float64
	Max    float64
}

// Dist is a random distribution owned by one Random-scoped variable.
type Dist struct {
	mu     sync.Mutex
	family string
	source string
	params [numericParams]*vars.AVD
	table  []Segment

	src *exprand.Rand
}

// New creates an untyped distribution drawing from a seeded PRNG. Family()
// reports "" until a Set* method picks the family.
func New() *Dist {
	return &Dist{source: SourcePRNG}
}

// SetUniform types the distribution as uniform over [min, 2*mean-min].
func (d *Dist) SetUniform() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.family = FamilyUniform
}

// SetGamma types the distribution as gamma with the configured mean and
// shape (shape parameter scaled by 1000, so 1500 means 1.5), offset by min.
func (d *Dist) SetGamma() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.family = FamilyGamma
}

// SetTable types the distribution as tabular over the given segments.
func (d *Dist) SetTable(segments []Segment) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.family = FamilyTabular
	d.table = segments
}

// UseURandom switches seeding to system entropy; the next sample reseeds.
func (d *Dist) UseURandom() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.source = SourceURandom
	d.src = nil
}

// Family reports the distribution family, or "" while untyped.
func (d *Dist) Family() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.family
}

// Source reports the entropy source name.
func (d *Dist) Source() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.source
}

// Param returns the descriptor holding one numeric parameter; nil when never
// configured (nil descriptors read as zero).
func (d *Dist) Param(p vars.ParamKind) *vars.AVD {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(p) >= numericParams {
		return nil
	}
	return d.params[p]
}

// SetParam replaces one numeric parameter. A new seed takes effect on the
// next sample. Query-only kinds are ignored.
func (d *Dist) SetParam(p vars.ParamKind, avd *vars.AVD) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(p) >= numericParams {
		return
	}
	d.params[p] = avd
	if p == vars.ParamSeed {
		d.src = nil
	}
}

// SampleInt draws one sample truncated to an unsigned integer.
func (d *Dist) SampleInt() uint64 {
	return uint64(d.SampleDouble())
}

// SampleDouble draws one sample. Every call is an independent draw; nothing
// is cached between reads.
func (d *Dist) SampleDouble() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.src == nil {
		d.src = exprand.New(exprand.NewSource(d.seedLocked()))
	}

	min := d.params[vars.ParamMin].Double()
	mean := d.params[vars.ParamMean].Double()

	var val float64
	switch d.family {
	case FamilyUniform:
		lo, hi := min, 2*mean-min
		if hi < lo {
			hi = lo
		}
		val = lo + d.src.Float64()*(hi-lo)

	case FamilyGamma:
		shape := d.params[vars.ParamShape].Double() / 1000.0
		if shape <= 0 {
			shape = 1.5
		}
		if mean <= min {
			val = min
			break
		}
		g := distuv.Gamma{Alpha: shape, Beta: shape / (mean - min), Src: d.src}
		val = min + g.Rand()

	case FamilyTabular:
		val = d.sampleTableLocked()

	default:
		logrus.Errorf("sample from untyped random distribution")
		return 0.0
	}

	if round := d.params[vars.ParamRound].Int(); round > 0 {
		val = math.Round(val/float64(round)) * float64(round)
	}
	if val < 0 {
		val = 0
	}
	return val
}

func (d *Dist) sampleTableLocked() float64 {
	var total float64
	for _, seg := range d.table {
		total += seg.Weight
	}
	if total <= 0 {
		return 0.0
	}
	r := d.src.Float64() * total
	for _, seg := range d.table {
		if r < seg.Weight {
			return seg.Min + d.src.Float64()*(seg.Max-seg.Min)
		}
		r -= seg.Weight
	}
	last := d.table[len(d.table)-1]
	return last.Max
}

// seedLocked resolves the seed for the configured entropy source: the seed
// parameter for the deterministic PRNG, or 64 bits of system entropy.
func (d *Dist) seedLocked() uint64 {
	if d.source == SourceURandom {
		var buf [8]byte
		if _, err := crand.Read(buf[:]); err == nil {
			return binary.LittleEndian.Uint64(buf[:])
		}
		logrus.Warnf("urandom seed unavailable, falling back to seed parameter")
	}
	return d.params[vars.ParamSeed].Int()
}
