package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sort"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/pigmix/pigment"
)

// ErrNoVariation is returned when an image has fewer distinct colors than
// requested.
var ErrNoVariation = errors.New("image does not have enough color variation")

// ColorCount is a color and the number of pixels it covers.
type ColorCount struct {
	Color pigment.Color
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int      { return len(ccl) }
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Packed() < ccl[j].Color.Packed()
}

// Colors returns just the colors of the list, in order.
func (ccl ColorCountList) Colors() []pigment.Color {
	cs := make([]pigment.Color, len(ccl))
	for i, cc := range ccl {
		cs[i] = cc.Color
	}
	return cs
}

// GetColors returns a map of an image's opaque colors
// and the number of times each color occurs
func GetColors(img image.Image) map[pigment.Color]int {
	return sampleColors(img, 1)
}

func sampleColors(img image.Image, stride int) map[pigment.Color]int {
	m := make(map[pigment.Color]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += stride {
		for y := b.Min.Y; y < b.Max.Y; y += stride {
			c := pigment.FromColor(img.At(x, y))
			if c.A == 0 {
				continue
			}
			c.A, c.HasAlpha = 0, false
			m[c]++
		}
	}

	return m
}

// RankColors sorts colors by the number of pixels they cover, most first.
// Ties keep a stable order by color value.
func RankColors(m map[pigment.Color]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}

// Dominant quantizes img down to num colors and returns them ranked by
// coverage.
func Dominant(img image.Image, num int) (ColorCountList, error) {
	b := img.Bounds()
	stride := 1
	if b.Dx()*b.Dy() > 1<<20 {
		stride = 5
	}
	if n := len(sampleColors(img, stride)); n < num {
		return nil, fmt.Errorf("%w: found %d of %d colors", ErrNoVariation, n, num)
	}

	o := image.NewNRGBA(b)
	colorquant.NoDither.Quantize(img, o, num, false, true)

	m := sampleColors(o, stride)
	if len(m) < num {
		return nil, fmt.Errorf("%w: found %d of %d colors", ErrNoVariation, len(m), num)
	}

	pigment.Logger().Debug("quantized image", "colors", num, "bounds", b)
	return RankColors(m), nil
}
