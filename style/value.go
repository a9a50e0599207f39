package style

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// valueKind is an enum type for the kinds a Value may take.
type valueKind uint8

const (
	nullKind valueKind = iota
	boolKind
	intKind
	floatKind
	stringKind
	colorKind
	dimenKind
	percentKind
	insetsKind
	fontKind
	refKind
	opaqueKind
)

/*
type Value
	= Null
	| Bool b | Int n | Float x | Str s
	| Color c | Dimen d | Percentage p
	| InsetsOf ins | FontOf fnt
	| Ref name
	| Opaque x
*/

// Value is a typed style value. The zero value is Null.
type Value struct {
	kind valueKind
	b    bool
	i    int
	f    float64
	s    string // strings and reference names
	c    color.Color
	d    dimen.DU
	pct  percent.Percent
	ins  Insets
	fnt  Font
	x    interface{}
}

// Null creates the empty style value.
func Null() Value {
	return Value{}
}

// Bool creates a boolean style value.
func Bool(b bool) Value {
	return Value{kind: boolKind, b: b}
}

// Int creates an integral style value.
func Int(n int) Value {
	return Value{kind: intKind, i: n}
}

// Float creates a floating-point style value.
func Float(x float64) Value {
	return Value{kind: floatKind, f: x}
}

// Str creates a string style value.
func Str(s string) Value {
	return Value{kind: stringKind, s: s}
}

// Color creates a color style value.
func Color(c color.Color) Value {
	return Value{kind: colorKind, c: c}
}

// Dimen creates a style value with a fixed dimension of d.
func Dimen(d dimen.DU) Value {
	return Value{kind: dimenKind, d: d}
}

// Percentage creates a %-relative style value.
func Percentage(p percent.Percent) Value {
	return Value{kind: percentKind, pct: p}
}

// InsetsOf creates an insets style value.
func InsetsOf(ins Insets) Value {
	return Value{kind: insetsKind, ins: ins}
}

// FontOf creates a font style value.
func FontOf(fnt Font) Value {
	return Value{kind: fontKind, fnt: fnt}
}

// Ref creates an unresolved reference to a named value in an external
// store. Coercion produces Ref values for "$name" tokens when no store is
// configured.
func Ref(name string) Value {
	return Value{kind: refKind, s: name}
}

// Opaque wraps an arbitrary external value. Opaque values pass through
// parsing and application untouched.
func Opaque(x interface{}) Value {
	return Value{kind: opaqueKind, x: x}
}

// IsNull denotes if a value is the empty style value.
func (v Value) IsNull() bool {
	return v.kind == nullKind
}

// AsBool returns the boolean payload, if v is of boolean kind.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == boolKind
}

// AsInt returns the integer payload, if v is of integral kind.
func (v Value) AsInt() (int, bool) {
	return v.i, v.kind == intKind
}

// AsFloat returns a numeric payload as float64. Integral values promote.
func (v Value) AsFloat() (float64, bool) {
	if v.kind == intKind {
		return float64(v.i), true
	}
	return v.f, v.kind == floatKind
}

// AsString returns the string payload, if v is of string kind.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == stringKind
}

// AsColor returns the color payload, if v is of color kind.
func (v Value) AsColor() (color.Color, bool) {
	return v.c, v.kind == colorKind
}

// AsDimen returns the dimension payload, if v is of dimension kind.
func (v Value) AsDimen() (dimen.DU, bool) {
	return v.d, v.kind == dimenKind
}

// AsPercentage returns the percentage payload, if v is of percent kind.
func (v Value) AsPercentage() (percent.Percent, bool) {
	return v.pct, v.kind == percentKind
}

// AsInsets returns the insets payload, if v is of insets kind.
func (v Value) AsInsets() (Insets, bool) {
	return v.ins, v.kind == insetsKind
}

// AsFont returns the font payload, if v is of font kind.
func (v Value) AsFont() (Font, bool) {
	return v.fnt, v.kind == fontKind
}

// RefName returns the name of an unresolved reference value.
func (v Value) RefName() (string, bool) {
	return v.s, v.kind == refKind
}

// AsOpaque returns the wrapped payload of an opaque value.
func (v Value) AsOpaque() (interface{}, bool) {
	return v.x, v.kind == opaqueKind
}

// String renders a value in its textual style syntax. For every kind
// except opaque values the output coerces back into an equal value.
func (v Value) String() string {
	switch v.kind {
	case nullKind:
		return "null"
	case boolKind:
		return strconv.FormatBool(v.b)
	case intKind:
		return strconv.Itoa(v.i)
	case floatKind:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case stringKind:
		return v.s
	case colorKind:
		return ColorString(v.c)
	case dimenKind:
		return dimenString(v.d)
	case percentKind:
		return v.pct.String()
	case insetsKind:
		return v.ins.String()
	case fontKind:
		return v.fnt.String()
	case refKind:
		return "$" + v.s
	}
	return fmt.Sprintf("%v", v.x)
}

// --- Expression matching ---------------------------------------------------

// Patterns is a pattern table for matching on the kind of a value, in the
// manner of a case expression. Int and Float values both select Number.
type Patterns[T any] struct {
	Null    T
	Bool    T
	Number  T
	Str     T
	Color   T
	Dimen   T
	Percent T
	Insets  T
	Font    T
	Ref     T
	Opaque  T
	Default T
}

// Pattern starts a match on v.
func Pattern[T any](v Value) *MatchExpr[T] {
	return &MatchExpr[T]{v: v}
}

// MatchExpr is a match in progress; see Pattern.
type MatchExpr[T any] struct {
	v Value
}

// OneOf selects the pattern for the kind of the matched value. Patterns
// not set explicitly select their zero value, except Default, which is
// reserved for kinds without a pattern of their own.
func (m *MatchExpr[T]) OneOf(patterns Patterns[T]) T {
	switch m.v.kind {
	case nullKind:
		return patterns.Null
	case boolKind:
		return patterns.Bool
	case intKind, floatKind:
		return patterns.Number
	case stringKind:
		return patterns.Str
	case colorKind:
		return patterns.Color
	case dimenKind:
		return patterns.Dimen
	case percentKind:
		return patterns.Percent
	case insetsKind:
		return patterns.Insets
	case fontKind:
		return patterns.Font
	case refKind:
		return patterns.Ref
	case opaqueKind:
		return patterns.Opaque
	}
	return patterns.Default
}

// Const is a convenience helper to use an expression as a pattern value.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}

// KeyValue is a container for one style directive.
type KeyValue struct {
	Key   string
	Value Value
}
