package vars

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Reserved {internal} provider names. The stats namespace matches by prefix;
// the remainder is passed through to the stats provider.
const (
	statsVarPrefix = "stats."
	rateVarName    = "rate"
	dateVarName    = "date"
	scriptVarName  = "script"
	hostVarName    = "hostname"
)

// findSpecial resolves a name with reserved bracket syntax: {stats.*},
// {rate}, {date}, {script}, {hostname} dispatch to providers, (NAME) looks
// up the process environment. The name is expected already sigil-stripped.
//
// Whatever the outcome, the name is memoized in the special registry on
// first sight, so repeated references reuse the same Variable object. An
// entry left unresolved is a legitimate zero-valued placeholder if a later
// lookup succeeds (for example once a provider is wired).
func (c *Context) findSpecial(name string) (*Variable, error) {
	var v *Variable
	for _, s := range c.specials {
		if s.name == name {
			v = s
			break
		}
	}
	if v == nil {
		var err error
		v, err = c.alloc(name, ScopeSpecial)
		if err != nil {
			return nil, err
		}
	}

	if strings.HasPrefix(name, "{") {
		if resolved := c.findInternal(v); resolved != nil {
			return resolved, nil
		}
		logrus.Errorf("cannot find internal variable %s", name)
		return nil, ErrNotFound
	}

	if strings.HasPrefix(name, "(") {
		if resolved := c.findEnvironment(v); resolved != nil {
			return resolved, nil
		}
		logrus.Errorf("cannot find environment variable %s", name)
		return nil, ErrNotFound
	}

	// Any other bracketing is not a special variable.
	return nil, nil
}

// findInternal dispatches a {name} special variable to its provider. The
// providers are re-invoked on every lookup so live telemetry (statistics,
// event rate, date) stays current; the memoized Variable is what they fill.
func (c *Context) findInternal(v *Variable) *Variable {
	name := v.name[1:]
	if !strings.HasSuffix(name, "}") {
		return nil
	}
	name = strings.TrimSuffix(name, "}")

	p := c.Providers
	switch {
	case strings.HasPrefix(name, statsVarPrefix):
		if p.Stats != nil && p.Stats(v, strings.TrimPrefix(name, statsVarPrefix)) {
			return v
		}
	case name == rateVarName:
		if p.Rate != nil && p.Rate(v) {
			return v
		}
	case name == dateVarName:
		if p.Date != nil && p.Date(v) {
			return v
		}
	case name == scriptVarName:
		if p.Script != nil && p.Script(v) {
			return v
		}
	case name == hostVarName:
		if p.Host != nil && p.Host(v) {
			return v
		}
	}
	return nil
}

// findEnvironment resolves a (NAME) special variable from the process
// environment. The retrieved text is cached in the string facet on first
// success; later lookups return the cached Variable without re-querying,
// even if the real environment has changed since.
func (c *Context) findEnvironment(v *Variable) *Variable {
	if v.HasString() {
		return v
	}
	name := v.name[1:]
	if !strings.HasSuffix(name, ")") {
		return nil
	}
	name = strings.TrimSuffix(name, ")")

	val, ok := c.LookupEnv(name)
	if !ok {
		return nil
	}
	interned, err := c.strings.Intern(val)
	if err != nil {
		logrus.Errorf("out of memory for strings: %v", err)
		return nil
	}
	v.SetString(interned)
	return v
}
