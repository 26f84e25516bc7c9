package vars

import (
	"github.com/sirupsen/logrus"
)

// AssignBool sets the boolean facet of the named global variable, allocating
// it on first assignment. Random-scoped targets are rejected.
func (c *Context) AssignBool(name string, b bool) error {
	v, err := c.findOrAlloc(name)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return err
	}
	if v.scope == ScopeRandom {
		logrus.Errorf("cannot assign boolean to random variable %s", name)
		return ErrRandomTarget
	}
	v.SetBool(b)
	return nil
}

// AssignInt sets the integer facet of the named global variable, allocating
// it on first assignment. Random-scoped targets are rejected.
func (c *Context) AssignInt(name string, i uint64) error {
	v, err := c.findOrAlloc(name)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return err
	}
	if v.scope == ScopeRandom {
		logrus.Errorf("cannot assign integer to random variable %s", name)
		return ErrRandomTarget
	}
	v.SetInt(i)
	logrus.Debugf("assign integer %s=%d", name, i)
	return nil
}

// AssignString sets the string facet of the named global variable, interning
// the text, allocating the variable on first assignment. Random-scoped
// targets are rejected.
func (c *Context) AssignString(name, s string) error {
	v, err := c.findOrAlloc(name)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return err
	}
	if v.scope == ScopeRandom {
		logrus.Errorf("cannot assign string to random variable %s", name)
		return ErrRandomTarget
	}
	interned, err := c.strings.Intern(s)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return err
	}
	v.SetString(interned)
	return nil
}

// Copy copies every set facet of src into dst, in facet order (boolean,
// integer, double, string). The string facet gets a fresh arena interning;
// failure there is a hard error for the copy. dst's name and scope are left
// untouched.
func (c *Context) Copy(dst, src *Variable) error {
	if src.HasBool() {
		dst.SetBool(src.Bool())
	}
	if src.HasInt() {
		dst.SetInt(src.Int())
	}
	if src.HasDouble() {
		dst.SetDouble(src.Double())
	}
	if src.HasString() {
		interned, err := c.strings.Intern(src.Str())
		if err != nil {
			logrus.Errorf("cannot assign string for variable %s: %v", dst.name, err)
			return err
		}
		dst.SetString(interned)
	}
	return nil
}

// AllocLocal allocates a fresh zero-valued local variable. Unlike the other
// entry points the sigil is optional here; one is stripped when present.
func (c *Context) AllocLocal(name string) (*Variable, error) {
	if len(name) > 0 && name[0] == '$' {
		name = name[1:]
	}
	return c.alloc(name, ScopeLocal)
}

// AssignLocalBool allocates a local variable and sets its boolean facet.
func (c *Context) AssignLocalBool(name string, b bool) (*Variable, error) {
	v, err := c.AllocLocal(name)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return nil, err
	}
	v.SetBool(b)
	return v, nil
}

// AssignLocalInt allocates a local variable and sets its integer facet.
func (c *Context) AssignLocalInt(name string, i uint64) (*Variable, error) {
	v, err := c.AllocLocal(name)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return nil, err
	}
	v.SetInt(i)
	return v, nil
}

// AssignLocalDouble allocates a local variable and sets its double facet.
func (c *Context) AssignLocalDouble(name string, d float64) (*Variable, error) {
	v, err := c.AllocLocal(name)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return nil, err
	}
	v.SetDouble(d)
	return v, nil
}

// AssignLocalString allocates a local variable and sets its string facet.
func (c *Context) AssignLocalString(name, s string) (*Variable, error) {
	v, err := c.AllocLocal(name)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return nil, err
	}
	interned, err := c.strings.Intern(s)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return nil, err
	}
	v.SetString(interned)
	return v, nil
}

// AssignLocalVar allocates a local variable and copies every set facet from
// the named source variable into it.
func (c *Context) AssignLocalVar(name, srcName string) (*Variable, error) {
	src := c.find(stripSigil(srcName))
	if src == nil {
		logrus.Errorf("cannot find source variable %s", stripSigil(srcName))
		return nil, ErrNotFound
	}
	dst, err := c.AllocLocal(name)
	if err != nil {
		logrus.Errorf("cannot assign variable %s: %v", name, err)
		return nil, err
	}
	if err := c.Copy(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
