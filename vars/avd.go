package vars

import (
	"github.com/sirupsen/logrus"
)

// avdKind discriminates the variants of an AVD. It is chosen at construction
// and never changes.
type avdKind int

const (
	avdInvalid avdKind = iota
	avdBoolVal
	avdIntVal
	avdStrVal
	avdBoolRef
	avdIntRef
	avdStrRef
	avdDblRef
	avdRandom
)

// AVD is an attribute value descriptor: the handle the workload model holds
// for one configurable attribute. Literal descriptors carry their value
// directly, avoiding a Variable allocation for static attributes. Reference
// descriptors alias one facet of a Variable and observe its current value on
// every read. Random descriptors draw a fresh sample from the referenced
// distribution on every read.
type AVD struct {
	kind avdKind

	boolVal bool
	intVal  uint64
	strVal  string

	// Referenced Variable for the *Ref kinds.
	v *Variable
	// Referenced distribution for avdRandom.
	dist Distribution
}

// BoolLiteral returns a static boolean descriptor.
func BoolLiteral(b bool) *AVD {
	return &AVD{kind: avdBoolVal, boolVal: b}
}

// IntLiteral returns a static integer descriptor.
func IntLiteral(i uint64) *AVD {
	return &AVD{kind: avdIntVal, intVal: i}
}

func (a *AVD) kindString() string {
	if a == nil {
		return "absent"
	}
	switch a.kind {
	case avdInvalid:
		return "uninitialized"
	case avdBoolVal:
		return "boolean value"
	case avdIntVal:
		return "integer value"
	case avdStrVal:
		return "string value"
	case avdBoolRef:
		return "boolean variable reference"
	case avdIntRef:
		return "integer variable reference"
	case avdStrRef:
		return "string variable reference"
	case avdDblRef:
		return "double variable reference"
	case avdRandom:
		return "random distribution reference"
	default:
		return "illegal"
	}
}

// Int resolves the descriptor as an unsigned integer. Literal and referenced
// integers return their value, random descriptors draw a fresh sample, and
// an absent descriptor is the normal no-attribute default of 0. Any other
// kind is a type mismatch: logged, and 0 returned.
func (a *AVD) Int() uint64 {
	if a == nil {
		return 0
	}
	switch a.kind {
	case avdIntVal:
		return a.intVal
	case avdIntRef:
		return a.v.Int()
	case avdRandom:
		if a.dist != nil {
			return a.dist.SampleInt()
		}
		return 0
	default:
		logrus.Errorf("attempt to get integer from %s avd", a.kindString())
		return 0
	}
}

// Double resolves the descriptor as a float, widening integer literals and
// references. Random descriptors draw a fresh sample. Absent descriptors
// default to 0; other kinds are a logged type mismatch returning 0.
func (a *AVD) Double() float64 {
	if a == nil {
		return 0.0
	}
	switch a.kind {
	case avdIntVal:
		return float64(a.intVal)
	case avdIntRef:
		return float64(a.v.Int())
	case avdDblRef:
		return a.v.Double()
	case avdRandom:
		if a.dist != nil {
			return a.dist.SampleDouble()
		}
		return 0.0
	default:
		logrus.Errorf("attempt to get floating point from %s avd", a.kindString())
		return 0.0
	}
}

// Bool resolves the descriptor as a boolean. Integer literals and references
// are truthy when nonzero. Absent descriptors default to false; other kinds
// are a logged type mismatch returning false.
func (a *AVD) Bool() bool {
	if a == nil {
		return false
	}
	switch a.kind {
	case avdBoolVal:
		return a.boolVal
	case avdBoolRef:
		return a.v.Bool()
	case avdIntVal:
		return a.intVal != 0
	case avdIntRef:
		return a.v.Int() != 0
	default:
		logrus.Errorf("attempt to get boolean from %s avd", a.kindString())
		return false
	}
}

// Str resolves the descriptor as text. Only string literals and string
// references qualify; there is no numeric-to-string coercion on this path.
// Absent descriptors report ok=false without logging; other kinds are a
// logged type mismatch reporting ok=false.
func (a *AVD) Str() (string, bool) {
	if a == nil {
		return "", false
	}
	switch a.kind {
	case avdStrVal:
		return a.strVal, true
	case avdStrRef:
		return a.v.Str(), a.v.HasString()
	default:
		logrus.Errorf("attempt to get string from %s avd", a.kindString())
		return "", false
	}
}

// avdForVariable wraps a Variable in a reference descriptor. The variant is
// fixed here from what the Variable holds at reference time: the distribution
// for Random-scoped Variables, otherwise the highest-priority set facet
// (boolean, integer, string, double). A Variable with nothing set yet aliases
// its integer facet, so reads yield the natural zero default until a set
// statement fills it.
func avdForVariable(v *Variable) *AVD {
	if v.scope == ScopeRandom && v.dist != nil {
		return &AVD{kind: avdRandom, dist: v.dist}
	}
	switch {
	case v.boolSet:
		return &AVD{kind: avdBoolRef, v: v}
	case v.intSet:
		return &AVD{kind: avdIntRef, v: v}
	case v.strSet:
		return &AVD{kind: avdStrRef, v: v}
	case v.dblSet:
		return &AVD{kind: avdDblRef, v: v}
	default:
		return &AVD{kind: avdIntRef, v: v}
	}
}
