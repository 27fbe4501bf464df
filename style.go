package scatterplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/scatterplot/internal/logging"
)

// String2Float parses s as a float (a trailing % divides by 100) and
// clamps it to [low, high]. Unparsable input yields the midpoint.
func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logging.Get(logging.ModulePlot).Warnf("Cannot parse style %q as float: %s", s, err)
		return (low + high) / 2
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha sets alpha to a in color c. A translucent c is made opaque
// first.
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*float64(0xff) + 0.5)
	return n
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDeltaPoint
	CrossPoint
	PlusPoint
)

var pointShapeNames = map[string]PointShape{
	"blank":        BlankPoint,
	"circle":       CirclePoint,
	"square":       SquarePoint,
	"delta":        DeltaPoint,
	"nabla":        NablaPoint,
	"solid-circle": SolidCirclePoint,
	"solid-square": SolidSquarePoint,
	"solid-delta":  SolidDeltaPoint,
	"cross":        CrossPoint,
	"plus":         PlusPoint,
}

// String2PointShape parses a shape name or number.
func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(PlusPoint) + 1))
	}
	if shape, ok := pointShapeNames[s]; ok {
		return shape
	}
	return BlankPoint
}

// Glyph returns the gonum glyph drawing shape. BlankPoint yields nil.
func (s PointShape) Glyph() draw.GlyphDrawer {
	switch s {
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case NablaPoint, SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case SolidCirclePoint:
		return draw.CircleGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	}
	return nil
}

// String2PointSize parses a point radius in points. Garbage yields 3.
func String2PointSize(s string) vg.Length {
	f, err := strconv.ParseFloat(s, 64)
	if err == nil && f >= 0 {
		return vg.Points(f)
	}
	return vg.Points(3)
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern for lt. Solid and blank lines have none.
func (lt LineType) Dashes() []vg.Length {
	p := vg.Points
	switch lt {
	case DashedLine:
		return []vg.Length{p(4), p(4)}
	case DottedLine:
		return []vg.Length{p(1), p(3)}
	case DotDashLine:
		return []vg.Length{p(1), p(3), p(4), p(3)}
	case LongdashLine:
		return []vg.Length{p(8), p(4)}
	case TwodashLine:
		return []vg.Length{p(6), p(2), p(2), p(2)}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":       {0xff, 0x00, 0x00, 0xff},
	"green":     {0x00, 0xff, 0x00, 0xff},
	"blue":      {0x00, 0x00, 0xff, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
	"yellow":    {0xff, 0xff, 0x00, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"gray20":    {0x33, 0x33, 0x33, 0xff},
	"gray40":    {0x66, 0x66, 0x66, 0xff},
	"gray":      {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":    {0x99, 0x99, 0x99, 0xff},
	"gray80":    {0xcc, 0xcc, 0xcc, 0xff},
	"gray90":    {0xe5, 0xe5, 0xe5, 0xff},
	"black":     {0x00, 0x00, 0x00, 0xff},
	"steelblue": {0x1f, 0x77, 0xb4, 0xff},
	"orange":    {0xff, 0x7f, 0x0e, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a builtin color name.
// Unknown colors come out as a translucent pink to stand out.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
