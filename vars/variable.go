package vars

// ScopeClass classifies a Variable and fixes which registry it lives in.
// It never changes after allocation.
type ScopeClass int

const (
	// ScopeGlobal holds workload-wide named values, declaration order preserved.
	ScopeGlobal ScopeClass = iota
	// ScopeSpecial holds lazily-resolved {internal} and (environment) names.
	ScopeSpecial
	// ScopeLocal holds per-component values with innermost-wins shadowing.
	ScopeLocal
	// ScopeRandom marks a global-registry Variable that owns a distribution.
	ScopeRandom
)

func (s ScopeClass) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeSpecial:
		return "special"
	case ScopeLocal:
		return "local"
	case ScopeRandom:
		return "random"
	default:
		return "illegal scope"
	}
}

// Variable is a named storage cell shared by all workers of a run. Its four
// value facets are independently settable and carry their own is-set flag;
// setting one facet never clears another, so a Variable may accumulate
// several set facets over its lifetime. Readers apply a fixed priority
// rather than assuming single-typedness.
type Variable struct {
	name  string
	scope ScopeClass

	boolSet bool
	boolVal bool

	intSet bool
	intVal uint64

	dblSet bool
	dblVal float64

	strSet bool
	strVal string

	// Present only on ScopeRandom Variables; assigned once at definition.
	dist Distribution
}

// Name returns the Variable's interned name, without sigil.
func (v *Variable) Name() string { return v.name }

// Scope returns the Variable's fixed scope class.
func (v *Variable) Scope() ScopeClass { return v.scope }

// Distribution returns the attached random distribution, or nil for
// non-random Variables.
func (v *Variable) Distribution() Distribution { return v.dist }

// SetBool sets the boolean facet and marks it set.
func (v *Variable) SetBool(b bool) {
	v.boolVal = b
	v.boolSet = true
}

// SetInt sets the integer facet and marks it set.
func (v *Variable) SetInt(i uint64) {
	v.intVal = i
	v.intSet = true
}

// SetDouble sets the double facet and marks it set.
func (v *Variable) SetDouble(d float64) {
	v.dblVal = d
	v.dblSet = true
}

// SetString sets the string facet and marks it set. The caller supplies
// interned text where arena accounting matters.
func (v *Variable) SetString(s string) {
	v.strVal = s
	v.strSet = true
}

// HasBool reports whether the boolean facet has been set.
func (v *Variable) HasBool() bool { return v.boolSet }

// HasInt reports whether the integer facet has been set.
func (v *Variable) HasInt() bool { return v.intSet }

// HasDouble reports whether the double facet has been set.
func (v *Variable) HasDouble() bool { return v.dblSet }

// HasString reports whether the string facet has been set.
func (v *Variable) HasString() bool { return v.strSet }

// Bool returns the boolean facet's current value, set or not.
func (v *Variable) Bool() bool { return v.boolVal }

// Int returns the integer facet's current value, set or not.
func (v *Variable) Int() uint64 { return v.intVal }

// Double returns the double facet's current value, set or not.
func (v *Variable) Double() float64 { return v.dblVal }

// Str returns the string facet's current value, set or not.
func (v *Variable) Str() string { return v.strVal }

func (v *Variable) anySet() bool {
	return v.boolSet || v.intSet || v.dblSet || v.strSet || v.dist != nil
}
