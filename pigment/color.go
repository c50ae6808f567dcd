package pigment

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrArity is returned when a component slice is not 3 (RGB) or 4 (RGBA)
// elements long.
var ErrArity = errors.New("pigment: color needs 3 or 4 components")

// Color is an 8-bit sRGB color with optional straight (non-premultiplied)
// alpha. When HasAlpha is false, A is ignored and the color is opaque.
type Color struct {
	R, G, B  uint8
	A        uint8
	HasAlpha bool
}

// RGB returns an opaque color without an alpha channel.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA returns a color carrying alpha a.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// ColorFromBytes builds a Color from 3 or 4 components.
func ColorFromBytes(c []uint8) (Color, error) {
	switch len(c) {
	case 3:
		return RGB(c[0], c[1], c[2]), nil
	case 4:
		return RGBA(c[0], c[1], c[2], c[3]), nil
	}
	return Color{}, fmt.Errorf("%w: got %d", ErrArity, len(c))
}

// FromPacked unpacks a 0xAARRGGBB value. The result always has alpha.
func FromPacked(argb uint32) Color {
	return RGBA(uint8(argb>>16), uint8(argb>>8), uint8(argb), uint8(argb>>24))
}

// FromColor converts any color.Color to a Color with alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// Alpha returns the alpha of c, 255 when it has none.
func (c Color) Alpha() uint8 {
	if !c.HasAlpha {
		return 255
	}
	return c.A
}

// Packed returns c as 0xAARRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.Alpha())<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Bytes returns the components of c, 3 or 4 depending on HasAlpha.
func (c Color) Bytes() []uint8 {
	if c.HasAlpha {
		return []uint8{c.R, c.G, c.B, c.A}
	}
	return []uint8{c.R, c.G, c.B}
}

// NRGBA returns c as a standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.Alpha()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex returns c as #rrggbb, or #rrggbbaa when it carries alpha.
func (c Color) Hex() string {
	if c.HasAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Float returns c with components scaled to [0, 1].
func (c Color) Float() FloatColor {
	return FloatColor{
		R:        float32(c.R) / 255,
		G:        float32(c.G) / 255,
		B:        float32(c.B) / 255,
		A:        float32(c.A) / 255,
		HasAlpha: c.HasAlpha,
	}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Latent returns c in pigment space.
func (c Color) Latent() Latent {
	return RGBToLatent(c.R, c.G, c.B)
}

// FloatColor is a color with float components, nominally in [0, 1], either
// sRGB encoded or linear light depending on how it is used. Alpha is
// optional as for Color.
type FloatColor struct {
	R, G, B  float32
	A        float32
	HasAlpha bool
}

// FloatRGB returns a float color without alpha.
func FloatRGB(r, g, b float32) FloatColor {
	return FloatColor{R: r, G: g, B: b}
}

// FloatRGBA returns a float color carrying alpha a.
func FloatRGBA(r, g, b, a float32) FloatColor {
	return FloatColor{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// FloatColorFromSlice builds a FloatColor from 3 or 4 components.
func FloatColorFromSlice(c []float32) (FloatColor, error) {
	switch len(c) {
	case 3:
		return FloatRGB(c[0], c[1], c[2]), nil
	case 4:
		return FloatRGBA(c[0], c[1], c[2], c[3]), nil
	}
	return FloatColor{}, fmt.Errorf("%w: got %d", ErrArity, len(c))
}

// Alpha returns the alpha of c, 1 when it has none.
func (c FloatColor) Alpha() float32 {
	if !c.HasAlpha {
		return 1
	}
	return c.A
}

// Slice returns the components of c, 3 or 4 depending on HasAlpha.
func (c FloatColor) Slice() []float32 {
	if c.HasAlpha {
		return []float32{c.R, c.G, c.B, c.A}
	}
	return []float32{c.R, c.G, c.B}
}

// Color quantizes an sRGB encoded c to 8 bits per component.
func (c FloatColor) Color() Color {
	return Color{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A), HasAlpha: c.HasAlpha}
}
