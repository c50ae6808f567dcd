package pigment

import "image"

// TextureSize is the edge length of the image returned by Texture.
const TextureSize = 512

// Texture lays the table out as a 512x512 image for GPU sampling: an 8x8
// grid of 64x64 tiles, one tile per blue level, with red along x and green
// along y inside a tile. The three concentration planes go to the R, G and
// B channels; alpha is opaque.
func (l *LUT) Texture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	for b := 0; b < GridSize; b++ {
		for g := 0; g < GridSize; g++ {
			for r := 0; r < GridSize; r++ {
				x := (b%8)*GridSize + r
				y := (b/8)*GridSize + g
				i := img.PixOffset(x, y)
				img.Pix[i+0] = l.At(0, r, g, b)
				img.Pix[i+1] = l.At(1, r, g, b)
				img.Pix[i+2] = l.At(2, r, g, b)
				img.Pix[i+3] = 255
			}
		}
	}
	return img
}
