package pigment

import (
	"image/color"

	"github.com/chewxy/math32"
)

// LerpLatent interpolates each component of a and b independently. The
// concentrations are not renormalized.
func LerpLatent(a, b Latent, t float32) Latent {
	var z Latent
	for i := range z {
		z[i] = float32((1-t)*a[i]) + float32(t*b[i])
	}
	return z
}

// Lerp mixes a and b like paint: t = 0 gives a, t = 1 gives b. t is not
// clamped, so values outside [0, 1] extrapolate.
//
// The result carries alpha when either input does; a side without alpha
// counts as opaque. Alpha is interpolated linearly, apart from the pigments.
func Lerp(a, b Color, t float32) Color {
	z := LerpLatent(a.Latent(), b.Latent(), t)
	r, g, bl := LatentToRGB(z)
	mix := RGB(r, g, bl)
	if a.HasAlpha || b.HasAlpha {
		mix.A = lerpAlpha8(a.Alpha(), b.Alpha(), t)
		mix.HasAlpha = true
	}
	return mix
}

// LerpPacked mixes two packed 0xAARRGGBB colors. Alpha is always
// interpolated.
func LerpPacked(a, b uint32, t float32) uint32 {
	z := LerpLatent(PackedToLatent(a), PackedToLatent(b), t)
	alpha := lerpAlpha8(uint8(a>>24), uint8(b>>24), t)
	return uint32(alpha)<<24 | LatentToPacked(z)&0xFFFFFF
}

// LerpFloat mixes two sRGB encoded float colors.
func LerpFloat(a, b FloatColor, t float32) FloatColor {
	z := LerpLatent(FloatRGBToLatent(a.R, a.G, a.B), FloatRGBToLatent(b.R, b.G, b.B), t)
	var mix FloatColor
	mix.R, mix.G, mix.B = LatentToFloatRGB(z)
	return withFloatAlpha(mix, a, b, t)
}

// LerpLinearFloat mixes two linear light float colors. The mix itself
// happens on the sRGB encoded values.
func LerpLinearFloat(a, b FloatColor, t float32) FloatColor {
	z := LerpLatent(LinearFloatRGBToLatent(a.R, a.G, a.B), LinearFloatRGBToLatent(b.R, b.G, b.B), t)
	var mix FloatColor
	mix.R, mix.G, mix.B = LatentToLinearFloatRGB(z)
	return withFloatAlpha(mix, a, b, t)
}

// LerpColor mixes two standard library colors. Premultiplied inputs are
// converted to straight alpha first.
func LerpColor(a, b color.Color, t float32) color.NRGBA {
	return Lerp(FromColor(a), FromColor(b), t).NRGBA()
}

func lerpAlpha8(a, b uint8, t float32) uint8 {
	v := math32.Round((1-t)*float32(a) + t*float32(b))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func withFloatAlpha(mix, a, b FloatColor, t float32) FloatColor {
	if a.HasAlpha || b.HasAlpha {
		mix.A = (1-t)*a.Alpha() + t*b.Alpha()
		mix.HasAlpha = true
	}
	return mix
}
