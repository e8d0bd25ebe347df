package effects

import (
	"image"

	"github.com/disintegration/imaging"
)

func Grayscale() Effect {
	return grayscale{}
}

type grayscale struct{}

func (grayscale) Name() string {
	return "grayscale"
}

func (grayscale) Apply(img image.Image) image.Image {
	return imaging.Grayscale(img)
}
