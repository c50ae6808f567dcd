package pigment

import "github.com/chewxy/math32"

// SRGBToLinear converts an sRGB encoded component in [0, 1] to linear light.
func SRGBToLinear(x float32) float32 {
	if x >= 0.04045 {
		return math32.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

// LinearToSRGB converts a linear light component in [0, 1] to sRGB encoding.
func LinearToSRGB(x float32) float32 {
	if x >= 0.0031308 {
		return 1.055*math32.Pow(x, 1/2.4) - 0.055
	}
	return 12.92 * x
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// to8 scales a [0, 1] component to a byte, rounding half away from zero.
func to8(x float32) uint8 {
	return uint8(math32.Round(clamp01(x) * 255))
}
