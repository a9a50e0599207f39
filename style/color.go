package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors holds the colors we accept by name. This is deliberately a
// small table, not the full X11 palette; styles wanting more use hex
// notation or a theme reference.
var namedColors = map[string]color.NRGBA{
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0xff, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0, 0xff},
	"cyan":        {0, 0xff, 0xff, 0xff},
	"magenta":     {0xff, 0, 0xff, 0xff},
	"orange":      {0xff, 0xa5, 0, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"transparent": {0, 0, 0, 0},
}

// ParseColor parses a color literal: "#rgb", "#rrggbb", "#rrggbbaa" or one
// of a small set of color names.
func ParseColor(s string) (color.Color, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(hex)
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color '%s'", s)
}

func parseHexColor(hex string) (color.Color, error) {
	var c color.NRGBA
	c.A = 0xff
	grab := func(sub string) (uint8, error) {
		n, err := strconv.ParseUint(sub, 16, 8)
		return uint8(n), err
	}
	var err error
	switch len(hex) {
	case 3:
		if c.R, err = grab(hex[0:1] + hex[0:1]); err == nil {
			if c.G, err = grab(hex[1:2] + hex[1:2]); err == nil {
				c.B, err = grab(hex[2:3] + hex[2:3])
			}
		}
	case 8:
		c.A, err = grab(hex[6:8])
		fallthrough
	case 6:
		if err == nil {
			if c.R, err = grab(hex[0:2]); err == nil {
				if c.G, err = grab(hex[2:4]); err == nil {
					c.B, err = grab(hex[4:6])
				}
			}
		}
	default:
		err = fmt.Errorf("hex color needs 3, 6 or 8 digits, has %d", len(hex))
	}
	if err != nil {
		return nil, fmt.Errorf("not a valid color: '#%s'", hex)
	}
	return c, nil
}

// ColorString renders a color in hex notation, "#rrggbb", with an alpha
// suffix for translucent colors.
func ColorString(c color.Color) string {
	if c == nil {
		return "null"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
