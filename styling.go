/*
Package styling implements a small styling-directive interpreter.

Styles are given in a compact CSS-like syntax

	background: #3574f0; margin: 2,4,2,4; focusWidth: 1; font: bold 12pt Inter

or as an already-constructed Mapping of typed values. A Styler parses the
text into an ordered mapping, coercing each raw token into a typed value
(see package style), and applies the mapping to a mutable target through a
caller-supplied apply function. The previous value of every applied key is
collected, so that a style can later be reverted exactly.

The apply function is the sole mutation point. Package styleable provides
apply functions backed by explicit slot registries for arbitrary target
types; any other function with the right signature will do.

Styling a target is a synchronous, single-threaded protocol. Callers must
make sure that no two styling operations touch the same target at the same
time; this package provides no locking.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styling

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styling/style"
)

// tracer traces to 'styling.core'.
func tracer() tracing.Trace {
	return tracing.Select("styling.core")
}

// CoerceFunc converts a raw value token into a typed style value. The
// statement's key is passed along as a type hint.
type CoerceFunc func(key string, raw string) (style.Value, error)

// ApplyFunc applies one style value to a target. It returns the value that
// was active for the key before the call, enabling a later revert.
type ApplyFunc func(key string, value style.Value) (style.Value, error)

// Styler parses and applies styles. The zero value is usable and will wrap
// raw value tokens into string values without further coercion.
type Styler struct {
	coerce CoerceFunc
}

// NewStyler creates a Styler which coerces raw value tokens with the given
// function. A nil argument falls back to wrapping tokens as string values.
func NewStyler(coerce CoerceFunc) Styler {
	return Styler{coerce: coerce}
}

func (s Styler) coerceToken(key, raw string) (style.Value, error) {
	if s.coerce == nil {
		return style.Str(raw), nil
	}
	return s.coerce(key, raw)
}

// ParseAndApply applies a style to a target, after reverting a previously
// applied one.
//
// oldValues is the mapping returned by the previous call for the same
// target, or nil. It is replayed through apply first, unconditionally, so
// that dropping a style (sty == nil) restores the target's prior state.
//
// sty may be a style string in CSS syntax, a *Mapping, or nil. A nil style,
// a string of only whitespace, or an empty mapping yield a nil result.
// Styles of any other type are ignored.
//
// Every remaining entry is handed to apply in insertion order and the
// values returned by apply are collected into a fresh mapping, which holds
// exactly the keys of the applied style. An error from apply aborts the
// remaining entries; already applied entries stay applied.
func (s Styler) ParseAndApply(oldValues *Mapping, sty interface{}, apply ApplyFunc) (*Mapping, error) {
	if oldValues != nil {
		for _, kv := range oldValues.Entries() {
			if _, err := apply(kv.Key, kv.Value); err != nil {
				return nil, err
			}
		}
	}
	switch st := sty.(type) {
	case nil:
		return nil, nil
	case string:
		m, err := s.Parse(st)
		if err != nil {
			return nil, err
		}
		return applyMapping(m, apply)
	case *Mapping:
		return applyMapping(st, apply)
	}
	tracer().Infof("style of unsupported type %T ignored", sty)
	return nil, nil
}

func applyMapping(m *Mapping, apply ApplyFunc) (*Mapping, error) {
	if m.Size() == 0 {
		return nil, nil
	}
	oldValues := NewMapping()
	for _, kv := range m.Entries() {
		prev, err := apply(kv.Key, kv.Value)
		if err != nil {
			return nil, err
		}
		oldValues.Set(kv.Key, prev)
	}
	return oldValues, nil
}
