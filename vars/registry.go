package vars

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// stripSigil drops the single leading reference marker ($) that every public
// name parameter carries. Callers of the package own well-formedness; an
// empty name maps to the empty variable name.
func stripSigil(name string) string {
	if name == "" {
		return ""
	}
	return name[1:]
}

// find searches the local registry first, newest entry wins (innermost
// shadow), then the global registry in declaration order. The special
// registry has its own entry point and is not consulted here.
func (c *Context) find(name string) *Variable {
	for i := len(c.locals) - 1; i >= 0; i-- {
		if c.locals[i].name == name {
			return c.locals[i]
		}
	}
	for _, v := range c.globals {
		if v.name == name {
			return v
		}
	}
	return nil
}

// findIn searches one specific list, newest entry first. Used for restricted
// scans such as a prototype component's local list.
func findIn(list []*Variable, name string) *Variable {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].name == name {
			return list[i]
		}
	}
	return nil
}

// alloc creates a zero-valued Variable with the given (already stripped)
// name and links it into the registry its scope dictates: global and random
// Variables append at the tail of the global list, special Variables at the
// tail of the special list, and locals insert at the head of the local list
// so the newest same-named entry shadows older ones.
func (c *Context) alloc(name string, scope ScopeClass) (*Variable, error) {
	v, err := c.table.Alloc()
	if err != nil {
		logrus.Errorf("out of memory for variables: %v", err)
		return nil, err
	}
	interned, err := c.strings.Intern(name)
	if err != nil {
		logrus.Errorf("out of memory for strings: %v", err)
		return nil, err
	}
	v.name = interned
	v.scope = scope

	switch scope {
	case ScopeGlobal, ScopeRandom:
		c.globals = append(c.globals, v)
	case ScopeSpecial:
		c.specials = append(c.specials, v)
	case ScopeLocal:
		c.locals = append(c.locals, v)
	default:
		return nil, fmt.Errorf("illegal scope class %d", scope)
	}
	return v, nil
}

// findOrAlloc resolves a sigiled reference name to an existing local or
// global Variable, allocating a fresh global one when the name is unbound.
func (c *Context) findOrAlloc(name string) (*Variable, error) {
	name = stripSigil(name)
	if v := c.find(name); v != nil {
		return v, nil
	}
	return c.alloc(name, ScopeGlobal)
}

// Globals returns the global registry in declaration order. Random-scoped
// Variables are included.
func (c *Context) Globals() []*Variable { return c.globals }

// Locals returns the local registry, oldest first.
func (c *Context) Locals() []*Variable { return c.locals }
