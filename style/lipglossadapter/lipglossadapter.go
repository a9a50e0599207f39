/*
Package lipglossadapter applies style mappings to lipgloss terminal
styles.

lipgloss styles are immutable values, so applying a mapping produces a
new style rather than mutating a target in place. The adapter still
speaks the protocol of package styling: ApplyFunc-shaped application per
key, with the previous value returned for reverting.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lipglossadapter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/npillmayer/styling"
	"github.com/npillmayer/styling/style"
)

// Apply applies every entry of a style mapping to a lipgloss style, in
// insertion order. Keys without a lipgloss equivalent fail with an
// UnknownStyleError, values of an unusable kind with an
// InvalidAssignmentError; in both cases the style built so far is
// returned alongside the error.
func Apply(base lipgloss.Style, m *styling.Mapping) (lipgloss.Style, error) {
	for _, kv := range m.Entries() {
		s, err := applyEntry(base, kv.Key, kv.Value)
		if err != nil {
			return base, err
		}
		base = s
	}
	return base, nil
}

// Applier adapts a lipgloss style to the apply-function interface of
// styling.ParseAndApply. The evolving style is written through sty;
// previous values are reported per key, reverting works as usual.
func Applier(sty *lipgloss.Style) styling.ApplyFunc {
	return func(key string, v style.Value) (style.Value, error) {
		old, err := readEntry(*sty, key)
		if err != nil {
			return style.Null(), err
		}
		s, err := applyEntry(*sty, key, v)
		if err != nil {
			return style.Null(), err
		}
		*sty = s
		return old, nil
	}
}

func applyEntry(s lipgloss.Style, key string, v style.Value) (lipgloss.Style, error) {
	switch key {
	case "foreground":
		if v.IsNull() { // reverting to "no color set"
			return s.UnsetForeground(), nil
		}
		c, err := termColor(key, v)
		if err != nil {
			return s, err
		}
		return s.Foreground(c), nil
	case "background":
		if v.IsNull() {
			return s.UnsetBackground(), nil
		}
		c, err := termColor(key, v)
		if err != nil {
			return s, err
		}
		return s.Background(c), nil
	case "bold":
		b, err := boolArg(key, v)
		return s.Bold(b), err
	case "italic":
		b, err := boolArg(key, v)
		return s.Italic(b), err
	case "underline":
		b, err := boolArg(key, v)
		return s.Underline(b), err
	case "faint":
		b, err := boolArg(key, v)
		return s.Faint(b), err
	case "reverse":
		b, err := boolArg(key, v)
		return s.Reverse(b), err
	case "width":
		n, err := intArg(key, v)
		return s.Width(n), err
	case "height":
		n, err := intArg(key, v)
		return s.Height(n), err
	case "padding":
		ins, err := insetsArg(key, v)
		return s.Padding(ins.Top, ins.Right, ins.Bottom, ins.Left), err
	case "margin":
		ins, err := insetsArg(key, v)
		return s.Margin(ins.Top, ins.Right, ins.Bottom, ins.Left), err
	}
	return s, &styling.UnknownStyleError{Key: key}
}

// readEntry reports the current value for a key, for collection as an
// old value.
func readEntry(s lipgloss.Style, key string) (style.Value, error) {
	switch key {
	case "foreground":
		return colorValue(s.GetForeground()), nil
	case "background":
		return colorValue(s.GetBackground()), nil
	case "bold":
		return style.Bool(s.GetBold()), nil
	case "italic":
		return style.Bool(s.GetItalic()), nil
	case "underline":
		return style.Bool(s.GetUnderline()), nil
	case "faint":
		return style.Bool(s.GetFaint()), nil
	case "reverse":
		return style.Bool(s.GetReverse()), nil
	case "width":
		return style.Int(s.GetWidth()), nil
	case "height":
		return style.Int(s.GetHeight()), nil
	case "padding":
		t, r, b, l := s.GetPadding()
		return style.InsetsOf(style.Insets{Top: t, Left: l, Bottom: b, Right: r}), nil
	case "margin":
		t, r, b, l := s.GetMargin()
		return style.InsetsOf(style.Insets{Top: t, Left: l, Bottom: b, Right: r}), nil
	}
	return style.Null(), &styling.UnknownStyleError{Key: key}
}

// termColor converts a style value into a lipgloss color. Colors render
// as hex strings; string values pass through, which covers ANSI palette
// indices ("212") and adaptive color names lipgloss understands.
func termColor(key string, v style.Value) (lipgloss.TerminalColor, error) {
	if c, ok := v.AsColor(); ok {
		return lipgloss.Color(style.ColorString(c)), nil
	}
	if s, ok := v.AsString(); ok {
		return lipgloss.Color(s), nil
	}
	return nil, &styling.InvalidAssignmentError{Key: key, Reason: "color value expected"}
}

func colorValue(c lipgloss.TerminalColor) style.Value {
	if c == (lipgloss.NoColor{}) {
		return style.Null()
	}
	return style.Str(fmt.Sprintf("%v", c))
}

func boolArg(key string, v style.Value) (bool, error) {
	b, ok := v.AsBool()
	if !ok {
		return false, &styling.InvalidAssignmentError{Key: key, Reason: "boolean value expected"}
	}
	return b, nil
}

func intArg(key string, v style.Value) (int, error) {
	n, ok := v.AsInt()
	if !ok {
		return 0, &styling.InvalidAssignmentError{Key: key, Reason: "integer value expected"}
	}
	return n, nil
}

func insetsArg(key string, v style.Value) (style.Insets, error) {
	if ins, ok := v.AsInsets(); ok {
		return ins, nil
	}
	if n, ok := v.AsInt(); ok {
		return style.Insets{Top: n, Left: n, Bottom: n, Right: n}, nil
	}
	return style.Insets{}, &styling.InvalidAssignmentError{Key: key, Reason: "insets or integer value expected"}
}
