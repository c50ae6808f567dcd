package pigment

import "github.com/chewxy/math32"

// LatentSize is the number of components in a Latent.
const LatentSize = 7

// Latent is a color in pigment space: four concentrations that sum to one,
// followed by the red, green and blue residuals left over after the
// polynomial model predicts the color of those concentrations.
type Latent [LatentSize]float32

// Concentrations returns the four pigment concentrations.
func (z Latent) Concentrations() [4]float32 {
	return [4]float32{z[0], z[1], z[2], z[3]}
}

// Residual returns the RGB correction carried by z.
func (z Latent) Residual() [3]float32 {
	return [3]float32{z[4], z[5], z[6]}
}

// FloatRGBToLatent converts an sRGB encoded color with components in
// [0, 1] to pigment space. Components outside the range are clamped.
func (l *LUT) FloatRGBToLatent(r, g, b float32) Latent {
	r = clamp01(r)
	g = clamp01(g)
	b = clamp01(b)

	x := r * 63
	y := g * 63
	z := b * 63

	ix := int(math32.Floor(x))
	iy := int(math32.Floor(y))
	iz := int(math32.Floor(z))

	tx := x - float32(ix)
	ty := y - float32(iy)
	tz := z - float32(iz)

	xyz := (ix + iy*GridSize + iz*GridSize*GridSize) & 0x3FFFF

	var c0, c1, c2 float32
	sample := func(w float32, off int) {
		i := xyz + off
		c0 += float32(w * float32(l.data[i+plane0]))
		c1 += float32(w * float32(l.data[i+plane1]))
		c2 += float32(w * float32(l.data[i+plane2]))
	}

	const dy, dz = GridSize, GridSize * GridSize
	sample(float32(float32((1-tx)*(1-ty))*(1-tz)), 0)
	sample(float32(float32(tx*(1-ty))*(1-tz)), 1)
	sample(float32(float32((1-tx)*ty)*(1-tz)), dy)
	sample(float32(float32(tx*ty)*(1-tz)), dy+1)
	sample(float32(float32((1-tx)*(1-ty))*tz), dz)
	sample(float32(float32(tx*(1-ty))*tz), dz+1)
	sample(float32(float32((1-tx)*ty)*tz), dz+dy)
	sample(float32(float32(tx*ty)*tz), dz+dy+1)

	c0 /= 255
	c1 /= 255
	c2 /= 255

	// the fourth concentration is whatever remains; quantization may push
	// it slightly below zero
	c3 := 1 - (c0 + c1 + c2)

	rmix, gmix, bmix := evalPolynomial(c0, c1, c2, c3)

	return Latent{c0, c1, c2, c3, r - rmix, g - gmix, b - bmix}
}

// FloatRGBToLatent converts an sRGB encoded color with components in
// [0, 1] to pigment space using the embedded table.
func FloatRGBToLatent(r, g, b float32) Latent {
	return MustDefaultLUT().FloatRGBToLatent(r, g, b)
}

// RGBToLatent converts an 8-bit sRGB color to pigment space.
func RGBToLatent(r, g, b uint8) Latent {
	return FloatRGBToLatent(float32(r)/255, float32(g)/255, float32(b)/255)
}

// PackedToLatent converts the RGB part of a packed 0xAARRGGBB color to
// pigment space. Alpha is ignored.
func PackedToLatent(argb uint32) Latent {
	return RGBToLatent(uint8(argb>>16), uint8(argb>>8), uint8(argb))
}

// LinearFloatRGBToLatent converts a linear light color with components in
// [0, 1] to pigment space.
func LinearFloatRGBToLatent(r, g, b float32) Latent {
	return FloatRGBToLatent(LinearToSRGB(r), LinearToSRGB(g), LinearToSRGB(b))
}

// LatentToFloatRGB converts z back to an sRGB encoded color with
// components clamped to [0, 1].
func LatentToFloatRGB(z Latent) (r, g, b float32) {
	r, g, b = evalPolynomial(z[0], z[1], z[2], z[3])
	return clamp01(r + z[4]), clamp01(g + z[5]), clamp01(b + z[6])
}

// LatentToRGB converts z back to an 8-bit sRGB color.
func LatentToRGB(z Latent) (r, g, b uint8) {
	fr, fg, fb := LatentToFloatRGB(z)
	return to8(fr), to8(fg), to8(fb)
}

// LatentToPacked converts z back to an opaque packed 0xAARRGGBB color.
func LatentToPacked(z Latent) uint32 {
	r, g, b := LatentToRGB(z)
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// LatentToLinearFloatRGB converts z back to a linear light color.
func LatentToLinearFloatRGB(z Latent) (r, g, b float32) {
	r, g, b = LatentToFloatRGB(z)
	return SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b)
}
