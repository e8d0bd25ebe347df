package effects

import (
	"image"

	"github.com/disintegration/imaging"
)

// Pixelate mosaics the image into size x size blocks by downscaling with a
// box filter and blowing the result back up without interpolation.
func Pixelate(size int) Effect {
	return &pixelate{size: size}
}

type pixelate struct {
	size int
}

func (e *pixelate) Name() string {
	return "pixelate"
}

func (e *pixelate) Apply(img image.Image) image.Image {
	if e.size <= 1 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}

	bw := (w + e.size - 1) / e.size
	bh := (h + e.size - 1) / e.size

	small := imaging.Resize(img, bw, bh, imaging.Box)
	return imaging.Resize(small, w, h, imaging.NearestNeighbor)
}
