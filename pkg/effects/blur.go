package effects

import (
	"image"

	"github.com/disintegration/imaging"
)

// Blur is the classic lock-screen effect: a gaussian blur that keeps the
// desktop recognizable without exposing its content.
func Blur(sigma float64) Effect {
	return &blur{sigma: sigma}
}

type blur struct {
	sigma float64
}

func (e *blur) Name() string {
	return "blur"
}

func (e *blur) Apply(img image.Image) image.Image {
	if e.sigma <= 0 {
		return img
	}
	return imaging.Blur(img, e.sigma)
}
