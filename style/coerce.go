package style

import "strings"

// ValueStore resolves named values from an external defaults or theme
// table. Stores are read-only from the perspective of this module.
//
// What an unresolvable name yields is the store's decision; the Coercer
// passes results and errors through verbatim.
type ValueStore interface {
	Resolve(name string) (Value, error)
}

// Coercer orchestrates the two resolution paths for raw style tokens:
// indirect references, "$name", resolve against Store, every other token
// goes through Literals. Both fields may be nil; without a store,
// references coerce into lazy Ref values, without a literal parser the
// Literals default applies.
type Coercer struct {
	Store    ValueStore
	Literals LiteralParser
}

// Coerce converts a raw style token into a typed value, with key as the
// type hint.
func (c Coercer) Coerce(key string, raw string) (Value, error) {
	if name, ok := strings.CutPrefix(raw, "$"); ok {
		if c.Store == nil {
			tracer().Debugf("no value store, '%s' continues as reference", raw)
			return Ref(name), nil
		}
		return c.Store.Resolve(name)
	}
	lit := c.Literals
	if lit == nil {
		lit = Literals{}
	}
	return lit.ParseValue(key, raw)
}

// Defaults is a map-backed ValueStore. Unresolved names yield the null
// value, matching the verbatim-use semantics of indirect references.
type Defaults map[string]Value

// Resolve is part of the ValueStore interface.
func (d Defaults) Resolve(name string) (Value, error) {
	return d[name], nil
}
