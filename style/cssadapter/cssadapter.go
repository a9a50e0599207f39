/*
Package cssadapter converts CSS declaration lists, as understood by the
douceur CSS parser, into style mappings.

The core style syntax of package styling is deliberately flat. Clients
which already hold real CSS — inline style attributes, declaration blocks
cut out of a stylesheet — can run it through douceur and feed the result
into the styling protocol via this adapter. Selectors and cascading stay
out of scope.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssadapter

import (
	"github.com/aymerick/douceur/parser"

	"github.com/npillmayer/styling"
	"github.com/npillmayer/styling/style"
)

// Declarations parses a list of CSS declarations, "key1: value1; …", with
// the douceur CSS parser and coerces the declared values into a style
// mapping. Input free of any declarations yields a nil mapping.
// Importance markers ("!important") are dropped; without cascading they
// carry no meaning.
func Declarations(text string, coerce styling.CoerceFunc) (*styling.Mapping, error) {
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, err
	}
	var m *styling.Mapping
	for _, d := range decls {
		v, err := coerceValue(coerce, d.Property, d.Value)
		if err != nil {
			return nil, err
		}
		if m == nil {
			m = styling.NewMapping()
		}
		m.Set(d.Property, v)
	}
	return m, nil
}

func coerceValue(coerce styling.CoerceFunc, key, raw string) (style.Value, error) {
	if coerce == nil {
		return style.Str(raw), nil
	}
	return coerce(key, raw)
}
