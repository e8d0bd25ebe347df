// Package effects holds the visual effects applied to the captured screen
// before it is used as the lock-screen background.
package effects

import "image"

type Effect interface {
	Name() string
	Apply(img image.Image) image.Image
}

// Apply runs a chain of effects in order.
func Apply(img image.Image, effs ...Effect) image.Image {
	for _, eff := range effs {
		img = eff.Apply(img)
	}
	return img
}
