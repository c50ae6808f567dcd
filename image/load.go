package image

import (
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
)

// Load loads an image for use given a file path
func Load(path string) (image.Image, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, e
	}

	return i, nil
}

// Save writes img to path as a PNG.
func Save(path string, img image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}

	if e = png.Encode(f, img); e != nil {
		f.Close()
		return e
	}
	return f.Close()
}
