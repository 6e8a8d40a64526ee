package icon

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// Default palette of the weather icon.
var (
	SkyBlue    = color.NRGBA{R: 79, G: 195, B: 247, A: 255}  // #4FC3F7
	SunYellow  = color.NRGBA{R: 255, G: 213, B: 79, A: 255}  // #FFD54F
	CloudWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255} // #FFFFFF
)

// Style holds the paints used to render an icon. Nil colors fall back to the
// default palette.
type Style struct {
	Background color.Color
	// BackgroundEnd turns the background into a diagonal gradient running
	// from Background (top-left) to BackgroundEnd (bottom-right).
	BackgroundEnd color.Color
	Sun           color.Color
	Cloud         color.Color
	Antialias     bool
}

// DefaultStyle returns the solid light blue, yellow and white palette
// rendered without antialiasing.
func DefaultStyle() Style {
	return Style{
		Background: SkyBlue,
		Sun:        SunYellow,
		Cloud:      CloudWhite,
	}
}

func (s Style) withDefaults() Style {
	if s.Background == nil {
		s.Background = SkyBlue
	}
	if s.Sun == nil {
		s.Sun = SunYellow
	}
	if s.Cloud == nil {
		s.Cloud = CloudWhite
	}
	return s
}

func (s Style) backgroundPaint(size int) image.Image {
	if s.BackgroundEnd == nil {
		return image.NewUniform(s.Background)
	}
	return newDiagonalGradient(s.Background, s.BackgroundEnd, size)
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// diagonalGradient is an unbounded image whose color varies linearly with
// x+y across a size×size square.
type diagonalGradient struct {
	from, to color.NRGBA
	span     float64
}

func newDiagonalGradient(from, to color.Color, size int) *diagonalGradient {
	span := float64(2 * (size - 1))
	if span <= 0 {
		span = 1
	}
	return &diagonalGradient{
		from: color.NRGBAModel.Convert(from).(color.NRGBA),
		to:   color.NRGBAModel.Convert(to).(color.NRGBA),
		span: span,
	}
}

func (g *diagonalGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *diagonalGradient) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

func (g *diagonalGradient) At(x, y int) color.Color {
	t := float64(x+y) / g.span
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.NRGBA{
		R: lerp(g.from.R, g.to.R),
		G: lerp(g.from.G, g.to.G),
		B: lerp(g.from.B, g.to.B),
		A: lerp(g.from.A, g.to.A),
	}
}
