package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Insets is a spacing value for the four sides of a rectangular area, in
// device independent pixels. Its textual form is "top,left,bottom,right".
type Insets struct {
	Top, Left, Bottom, Right int
}

func (ins Insets) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", ins.Top, ins.Left, ins.Bottom, ins.Right)
}

// ParseInsets parses an insets literal of the form "top,left,bottom,right".
func ParseInsets(s string) (Insets, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return Insets{}, fmt.Errorf("insets need 4 values, have %d: '%s'", len(fields), s)
	}
	var n [4]int
	for i, f := range fields {
		var err error
		if n[i], err = strconv.Atoi(strings.TrimSpace(f)); err != nil {
			return Insets{}, fmt.Errorf("not a valid insets value: '%s'", s)
		}
	}
	return Insets{Top: n[0], Left: n[1], Bottom: n[2], Right: n[3]}, nil
}

// Font is a font request: a family name plus size and the usual two style
// flags. Its textual form is "[bold] [italic] <size> <family>", e.g.
// "bold 12pt Inter".
type Font struct {
	Family string
	Size   dimen.DU
	Bold   bool
	Italic bool
}

func (fnt Font) String() string {
	var b strings.Builder
	if fnt.Bold {
		b.WriteString("bold ")
	}
	if fnt.Italic {
		b.WriteString("italic ")
	}
	b.WriteString(dimenString(fnt.Size))
	if fnt.Family != "" {
		b.WriteString(" ")
		b.WriteString(fnt.Family)
	}
	return b.String()
}

// ParseFont parses a font literal. Leading "bold" and "italic" flags are
// optional, then a size ("12pt", "10", plain numbers are points), then the
// remainder is the family name, which may contain spaces.
func ParseFont(s string) (Font, error) {
	fields := strings.Fields(s)
	fnt := Font{}
	i := 0
	for ; i < len(fields); i++ {
		switch strings.ToLower(fields[i]) {
		case "bold":
			fnt.Bold = true
			continue
		case "italic":
			fnt.Italic = true
			continue
		}
		break
	}
	if i >= len(fields) {
		return Font{}, fmt.Errorf("font needs a size: '%s'", s)
	}
	size, err := ParseDimen(fields[i])
	if err != nil {
		return Font{}, fmt.Errorf("not a valid font size: '%s'", fields[i])
	}
	fnt.Size = size
	fnt.Family = strings.Join(fields[i+1:], " ")
	return fnt, nil
}

// --- Dimensions ------------------------------------------------------------

// Dimension units, as factors relative to a point. The reference pixel is
// the CSS one: 1px = 0.75pt.
var dimenUnits = map[string]float64{
	"pt": 1,
	"px": 0.75,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 7.2 / 2.54,
}

// ParseDimen parses a dimension literal: a number followed by one of the
// units pt, px, in, cm or mm. A bare number is taken to be points.
func ParseDimen(s string) (dimen.DU, error) {
	num, factor := s, 1.0
	for unit, f := range dimenUnits {
		if n, ok := strings.CutSuffix(s, unit); ok {
			num, factor = strings.TrimSpace(n), f
			break
		}
	}
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid dimension: '%s'", s)
	}
	return dimen.DU(math.Round(x * factor * float64(dimen.PT))), nil
}

// dimenString renders a dimension in points.
func dimenString(d dimen.DU) string {
	if d%dimen.PT == 0 {
		return fmt.Sprintf("%dpt", d/dimen.PT)
	}
	return strconv.FormatFloat(float64(d)/float64(dimen.PT), 'g', -1, 64) + "pt"
}
