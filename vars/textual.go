package vars

import (
	"strconv"
)

// String renders the Variable for diagnostics and reporting. Priority:
// Random-scoped Variables report their distribution family regardless of
// facets; otherwise a set, non-empty string facet wins, then the boolean
// facet, then the integer facet; with nothing set the literal text
// "No default" is returned.
func (v *Variable) String() string {
	if v.scope == ScopeRandom {
		if v.dist != nil {
			if family := v.dist.Family(); family != "" {
				return family + " random var"
			}
		}
		return "uninitialized random var"
	}

	if v.strSet && v.strVal != "" {
		return v.strVal
	}
	if v.boolSet {
		if v.boolVal {
			return "true"
		}
		return "false"
	}
	if v.intSet {
		return strconv.FormatUint(v.intVal, 10)
	}
	return "No default"
}

// ToString resolves a sigiled name through the normal and special registries
// and renders the result. ok is false when the name has no binding.
func (c *Context) ToString(name string) (string, bool) {
	stripped := stripSigil(name)
	v := c.find(stripped)
	if v == nil {
		v, _ = c.findSpecial(stripped)
	}
	if v == nil {
		return "", false
	}
	return v.String(), true
}

// RandomParamString answers structural and numeric queries about a random
// variable: the distribution family or entropy source name for the
// query-only kinds, otherwise one numeric parameter read through the integer
// descriptor reader and rendered as decimal text. For a name that is not a
// fully formed random variable it falls back to plain ToString rendering.
func (c *Context) RandomParamString(name string, param ParamKind) (string, bool) {
	v := c.find(stripSigil(name))
	if v == nil || v.scope != ScopeRandom || v.dist == nil {
		return c.ToString(name)
	}

	switch param {
	case ParamFamily:
		if family := v.dist.Family(); family != "" {
			return family, true
		}
		return "uninitialized", true
	case ParamSource:
		return v.dist.Source(), true
	case ParamSeed, ParamMin, ParamMean, ParamShape, ParamRound:
		return strconv.FormatUint(v.dist.Param(param).Int(), 10), true
	default:
		return "", false
	}
}
