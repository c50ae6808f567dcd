// Package pigment mixes colors the way paints mix.
//
// Colors are mapped into a latent pigment space, interpolated there and
// mapped back, so blue and yellow make green instead of gray:
//
//	mix := pigment.Lerp(pigment.RGB(0, 33, 133), pigment.RGB(252, 211, 0), 0.5)
//
// More than two colors are mixed by weighting their latent vectors with
// weights that sum to one:
//
//	z1 := pigment.RGBToLatent(r1, g1, b1)
//	z2 := pigment.RGBToLatent(r2, g2, b2)
//	z3 := pigment.RGBToLatent(r3, g3, b3)
//
//	var z pigment.Latent
//	for i := range z {
//		z[i] = 0.3*z1[i] + 0.6*z2[i] + 0.1*z3[i]
//	}
//	r, g, b := pigment.LatentToRGB(z)
//
// The mapping is driven by a lookup table embedded in the package and
// decoded on first use. If it cannot be decoded the conversion functions
// panic with an error wrapping ErrCorruptLUT; call DefaultLUT at startup to
// get the error instead.
package pigment
