// Package providers implements the telemetry lookups behind {internal}
// special variables: running statistics, the event-rate generator, and the
// date, script and host identity of the run.
package providers

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsbench-sim/fsbench-sim/vars"
)

// dateLayout renders {date} compactly for embedding in file and report
// names.
const dateLayout = "060102_150405"

// Stats is a registry of named run counters queried through {stats.<name>}.
type Stats struct {
	counters map[string]uint64
}

// NewStats creates an empty counter registry.
func NewStats() *Stats {
	return &Stats{counters: make(map[string]uint64)}
}

// Add increments a counter, creating it at zero first.
func (s *Stats) Add(name string, delta uint64) {
	s.counters[name] += delta
}

// Set overwrites a counter.
func (s *Stats) Set(name string, val uint64) {
	s.counters[name] = val
}

// Lookup reports a counter's current value.
func (s *Stats) Lookup(name string) (uint64, bool) {
	v, ok := s.counters[name]
	return v, ok
}

// EventGen is the event-rate generator cell queried through {rate}.
type EventGen struct {
	rate uint64
}

// NewEventGen creates a generator with the given events-per-second target.
func NewEventGen(rate uint64) *EventGen {
	return &EventGen{rate: rate}
}

// SetRate replaces the events-per-second target.
func (e *EventGen) SetRate(rate uint64) { e.rate = rate }

// Rate returns the events-per-second target.
func (e *EventGen) Rate() uint64 { return e.rate }

// Wire installs the standard providers on a Context: st behind {stats.*},
// eg behind {rate}, the wall clock behind {date}, scriptPath's base name
// behind {script}, and os.Hostname behind {hostname}. Providers are
// re-invoked on every lookup, so the values stay live.
func Wire(c *vars.Context, st *Stats, eg *EventGen, scriptPath string) {
	c.Providers = vars.SpecialProviders{
		Stats: func(v *vars.Variable, name string) bool {
			if st == nil {
				return false
			}
			val, ok := st.Lookup(name)
			if !ok {
				return false
			}
			v.SetInt(val)
			return true
		},
		Rate: func(v *vars.Variable) bool {
			if eg == nil {
				return false
			}
			v.SetInt(eg.Rate())
			return true
		},
		Date: func(v *vars.Variable) bool {
			v.SetString(time.Now().Format(dateLayout))
			return true
		},
		Script: func(v *vars.Variable) bool {
			if scriptPath == "" {
				return false
			}
			v.SetString(filepath.Base(scriptPath))
			return true
		},
		Host: func(v *vars.Variable) bool {
			host, err := os.Hostname()
			if err != nil {
				return false
			}
			v.SetString(host)
			return true
		},
	}
}
