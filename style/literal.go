package style

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/percent"
)

// LiteralParser converts a raw literal token into a typed value. The key
// of the style statement is passed along as a type hint.
//
// Literal parsing is a pluggable strategy: clients with their own value
// syntax supply their own implementation to a Coercer.
type LiteralParser interface {
	ParseValue(key string, raw string) (Value, error)
}

// Literals is the default LiteralParser.
//
// Inference is key-driven first: keys ending in "ground" or containing
// "color" parse as colors, keys ending in "insets", "margin" or "padding"
// as insets, keys ending in "font" as fonts. For all other keys the value
// decides: "null", booleans, "#"-prefixed colors, 4-tuples of integers,
// "%"-suffixed percentages, unit-suffixed dimensions, then plain integers
// and floats. Everything else stays a string.
type Literals struct{}

// ParseValue is part of the LiteralParser interface.
func (Literals) ParseValue(key string, raw string) (Value, error) {
	if raw == "null" {
		return Null(), nil
	}
	switch {
	case isColorKey(key):
		return parseInto(raw, ParseColor, Color)
	case isInsetsKey(key):
		return parseInto(raw, ParseInsets, InsetsOf)
	case isFontKey(key):
		return parseInto(raw, ParseFont, FontOf)
	}
	switch raw {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}
	if strings.HasPrefix(raw, "#") {
		return parseInto(raw, ParseColor, Color)
	}
	if strings.Count(raw, ",") == 3 {
		if ins, err := ParseInsets(raw); err == nil {
			return InsetsOf(ins), nil
		}
	}
	if num, ok := strings.CutSuffix(raw, "%"); ok {
		if x, err := strconv.ParseFloat(num, 64); err == nil {
			return Percentage(percent.FromInt(int(math.Round(x)))), nil
		}
	}
	if hasDimenSuffix(raw) {
		if d, err := ParseDimen(raw); err == nil {
			return Dimen(d), nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return Int(n), nil
	}
	if x, err := strconv.ParseFloat(raw, 64); err == nil {
		return Float(x), nil
	}
	return Str(raw), nil
}

func parseInto[T any](raw string, parse func(string) (T, error), wrap func(T) Value) (Value, error) {
	x, err := parse(raw)
	if err != nil {
		return Null(), err
	}
	return wrap(x), nil
}

func isColorKey(key string) bool {
	k := strings.ToLower(key)
	return strings.HasSuffix(k, "ground") || strings.Contains(k, "color")
}

func isInsetsKey(key string) bool {
	k := strings.ToLower(key)
	return strings.HasSuffix(k, "insets") || strings.HasSuffix(k, "margin") ||
		strings.HasSuffix(k, "padding")
}

func isFontKey(key string) bool {
	return strings.HasSuffix(strings.ToLower(key), "font")
}

func hasDimenSuffix(raw string) bool {
	for unit := range dimenUnits {
		if strings.HasSuffix(raw, unit) {
			return true
		}
	}
	return false
}
