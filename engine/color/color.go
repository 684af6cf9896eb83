// Package color holds the byte-intensity RGB color handed to a rendering
// backend, e.g. as the clear color of a scene.
package color

import (
	"fmt"
	imgcolor "image/color"
	m "math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/spaghettifunk/vengine/engine/math"
)

// Color is an opaque RGB color with 0-255 channels.
type Color struct {
	R, G, B uint8
}

var _ imgcolor.Color = Color{}

func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

func Black() Color { return Color{0, 0, 0} }
func Gray() Color { return Color{127, 127, 127} }
func White() Color { return Color{255, 255, 255} }
func Red() Color { return Color{255, 0, 0} }
func Green() Color { return Color{0, 255, 0} }
func Blue() Color { return Color{0, 0, 255} }
func Yellow() Color { return Color{255, 255, 0} }
func Magenta() Color { return Color{255, 0, 255} }
func Purple() Color { return Color{127, 0, 127} }

// Random returns a color whose channels are uniform in [0, 255].
func Random() Color {
	return Color{
		uint8(math.RandomInRange(0, 255)),
		uint8(math.RandomInRange(0, 255)),
		uint8(math.RandomInRange(0, 255)),
	}
}

// Lerp interpolates every channel between start and end. t is not clamped;
// results are rounded and saturated to [0, 255].
func Lerp(start, end Color, t float64) Color {
	return Color{
		channel(math.Lerp(float64(start.R), float64(end.R), t)),
		channel(math.Lerp(float64(start.G), float64(end.G), t)),
		channel(math.Lerp(float64(start.B), float64(end.B), t)),
	}
}

// FromArray builds a color from up to three channel values. Missing
// channels are 0.
func FromArray(values []float64) Color {
	var c [3]float64
	copy(c[:], values)
	return Color{channel(c[0]), channel(c[1]), channel(c[2])}
}

// FromHexString parses "#RRGGBB". Any other input yields black.
func FromHexString(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return Black()
	}
	return c
}

// ParseHex parses "#RRGGBB" (either case) and reports malformed input.
func ParseHex(hex string) (Color, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return Black(), fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	var out [3]uint8
	for i := range out {
		v, err := strconv.ParseUint(hex[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return Black(), fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		out[i] = uint8(v)
	}
	return Color{out[0], out[1], out[2]}, nil
}

// FromName looks a color up in the SVG 1.1 named color palette
// ("cornflowerblue", "tomato", ...). The lookup ignores case.
func FromName(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Black(), false
	}
	return Color{c.R, c.G, c.B}, true
}

// FromImageColor converts any image/color value, dropping alpha.
func FromImageColor(c imgcolor.Color) Color {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return Color{n.R, n.G, n.B}
}

func (c Color) Clone() Color {
	return c
}

func (c *Color) Copy(other Color) {
	*c = other
}

func (c Color) Equals(other Color) bool {
	return c == other
}

func (c *Color) Set(r, g, b uint8) {
	c.R = r
	c.G = g
	c.B = b
}

func (c *Color) SetAll(value uint8) {
	c.R = value
	c.G = value
	c.B = value
}

func (c Color) AsArray() []uint8 {
	return []uint8{c.R, c.G, c.B}
}

// AsHexString returns the color as uppercase "#RRGGBB".
func (c Color) AsHexString() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Normalized returns the channels divided by 255, the form graphics APIs
// expect for a clear color.
func (c Color) Normalized() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// RGBA implements image/color.Color. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

func (c Color) String() string {
	return fmt.Sprintf("{r: %d, g: %d, b: %d}", c.R, c.G, c.B)
}

func channel(v float64) uint8 {
	if m.IsNaN(v) {
		return 0
	}
	return uint8(math.Clamp(m.Floor(v+0.5), 0, 255))
}
