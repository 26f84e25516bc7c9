package vars

// PropagateDefaults gives a newly instantiated component's local variable
// its default from the prototype it was instantiated from. If the prototype
// owns a same-named local variable and newLocal has no facet set yet, every
// set facet of the prototype variable is copied in. A local that was
// explicitly configured for this instance is left untouched; explicit
// configuration always wins over inherited defaults. No same-named prototype
// entry just leaves newLocal at its zero default.
func (c *Context) PropagateDefaults(newLocal *Variable, protoLocals []*Variable) {
	proto := findIn(protoLocals, newLocal.name)
	if proto == nil {
		return
	}
	if newLocal.anySet() {
		return
	}
	_ = c.Copy(newLocal, proto)
}
