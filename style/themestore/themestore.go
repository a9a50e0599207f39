/*
Package themestore loads named-value stores from TOML theme tables.

A theme file is a TOML document; nested tables flatten into dotted value
names, so

	accentColor = "#3574f0"

	[Button]
	background = "$accentColor"
	margin     = "2,14,2,14"

provides "accentColor" and "Button.background" and "Button.margin".
String values run through a literal parser, keyed by the last segment of
the name; numbers and booleans map directly. The resulting Store serves
as the value store behind "$name" references in styles.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package themestore

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/npillmayer/styling/style"
)

// Store is a style.ValueStore backed by a TOML theme table. Stores are
// immutable once loaded.
type Store struct {
	values map[string]style.Value
}

// Load reads a TOML theme table. String values are coerced with lit; a
// nil lit falls back to the default literal parser. References between
// theme values ("$name") are kept lazy and resolve on access.
func Load(r io.Reader, lit style.LiteralParser) (*Store, error) {
	var raw map[string]interface{}
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	if lit == nil {
		lit = style.Literals{}
	}
	s := &Store{values: make(map[string]style.Value)}
	if err := s.flatten("", raw, lit); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads a TOML theme table from a file. See Load.
func LoadFile(path string, lit style.LiteralParser) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, lit)
}

func (s *Store) flatten(prefix string, table map[string]interface{}, lit style.LiteralParser) error {
	for key, entry := range table {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		switch x := entry.(type) {
		case map[string]interface{}:
			if err := s.flatten(name, x, lit); err != nil {
				return err
			}
		case string:
			if ref, ok := strings.CutPrefix(x, "$"); ok {
				s.values[name] = style.Ref(ref)
				continue
			}
			v, err := lit.ParseValue(lastSegment(name), x)
			if err != nil {
				return fmt.Errorf("theme value '%s': %w", name, err)
			}
			s.values[name] = v
		case bool:
			s.values[name] = style.Bool(x)
		case int64:
			s.values[name] = style.Int(int(x))
		case float64:
			s.values[name] = style.Float(x)
		default:
			s.values[name] = style.Opaque(x)
		}
	}
	return nil
}

func lastSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Size returns the number of values in the store.
func (s *Store) Size() int {
	return len(s.values)
}

// Resolve is part of the style.ValueStore interface. Reference values
// resolve transitively within the store; unresolvable names yield the
// null value. Reference cycles flag an error.
func (s *Store) Resolve(name string) (style.Value, error) {
	v := s.values[name]
	for hops := 0; ; hops++ {
		ref, ok := v.RefName()
		if !ok {
			return v, nil
		}
		if hops > len(s.values) {
			return style.Null(), fmt.Errorf("reference cycle resolving theme value '%s'", name)
		}
		v = s.values[ref]
	}
}
