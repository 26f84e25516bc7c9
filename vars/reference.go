package vars

import (
	"github.com/sirupsen/logrus"
)

// Reference turns a textual $name attribute reference into a descriptor
// while the workload model is being built. Resolution order: local/global
// lookup, then special resolution for reserved bracket syntax, then
// allocation of a fresh zero-valued global. Exhausting all three (only
// possible when the arena itself is exhausted) is fatal for the model: a
// FatalReferenceError is returned and the model-construction driver is
// expected to terminate the run.
func (c *Context) Reference(name string) (*AVD, error) {
	stripped := stripSigil(name)

	v := c.find(stripped)
	if v == nil {
		v, _ = c.findSpecial(stripped)
	}

	var allocErr error
	if v == nil {
		v, allocErr = c.alloc(stripped, ScopeGlobal)
	}
	if v == nil {
		logrus.Errorf("invalid variable $%s", stripped)
		return nil, &FatalReferenceError{Name: stripped, Err: allocErr}
	}

	return avdForVariable(v), nil
}
