package palette

import (
	"image/color"
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

var (
	// for RGB-to-Lab conversion
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// RGBToLab converts a color to CIE Lab (D50).
func RGBToLab(c color.Color) chromath.Lab {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	rgb := chromath.RGB{float64(n.R), float64(n.G), float64(n.B)}
	return lab2Xyz.Invert(rgb2Xyz.Convert(rgb))
}

// Distance returns the CIEDE2000 difference between two colors. Alpha is
// ignored.
func Distance(a, b color.Color) float64 {
	return deltae.CIE2000(RGBToLab(a), RGBToLab(b), klch)
}

// Hue returns the Lab hue angle of c in degrees, in [0, 360).
func Hue(c color.Color) float64 {
	lab := RGBToLab(c)
	h := math.Atan2(lab[2], lab[1]) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// Chroma returns the Lab chroma of c.
func Chroma(c color.Color) float64 {
	lab := RGBToLab(c)
	return math.Hypot(lab[1], lab[2])
}

// Nearest returns the index of the candidate closest to c, or -1 when
// there are no candidates.
func Nearest(c color.Color, candidates []color.Color) int {
	best, bestDist := -1, math.Inf(1)
	for i, cand := range candidates {
		if d := Distance(c, cand); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
