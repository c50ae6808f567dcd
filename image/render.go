package image

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/mmuldo/pigmix/pigment"
)

// Gradient renders a horizontal pigment mix from a to b. With steps > 1 the
// image is split into that many flat bands; otherwise every column gets
// its own mixing ratio.
func Gradient(a, b pigment.Color, steps, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	za, zb := a.Latent(), b.Latent()

	for x := 0; x < w; x++ {
		var t float32
		switch {
		case steps > 1:
			band := x * steps / w
			t = float32(band) / float32(steps-1)
		case w > 1:
			t = float32(x) / float32(w-1)
		}
		r, g, bl := pigment.LatentToRGB(pigment.LerpLatent(za, zb, t))
		c := color.NRGBA{r, g, bl, 255}
		for y := 0; y < h; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Swatches lays colors out as size x size squares, cols per row.
func Swatches(colors []color.Color, size, cols int) *image.NRGBA {
	if cols < 1 {
		cols = 1
	}
	rows := (len(colors) + cols - 1) / cols
	w := size * cols
	if len(colors) < cols {
		w = size * len(colors)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, size*rows))

	for i, c := range colors {
		x := (i % cols) * size
		y := (i / cols) * size
		draw.Draw(img, image.Rect(x, y, x+size, y+size), &image.Uniform{c}, image.Point{}, draw.Src)
	}
	return img
}

// Blend mixes two images pixel by pixel like paint. The result covers the
// intersection of their bounds, translated to the origin.
func Blend(a, b image.Image, t float32) *image.NRGBA {
	ab, bb := a.Bounds(), b.Bounds()
	w := min(ab.Dx(), bb.Dx())
	h := min(ab.Dy(), bb.Dy())
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ca := a.At(ab.Min.X+x, ab.Min.Y+y)
			cb := b.At(bb.Min.X+x, bb.Min.Y+y)
			img.SetNRGBA(x, y, pigment.LerpColor(ca, cb, t))
		}
	}
	return img
}
