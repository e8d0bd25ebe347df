package surface

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

// Surface is the canonical render target: packed 32-bit XRGB pixels in host
// byte order, 8 bits per channel, top byte unused. It implements the
// draw.Image interface so the paint stage and the stdlib can draw into it.
type Surface struct {
	// Pix holds the pixels as host-order 32-bit words. The pixel at (x, y)
	// starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*4].
	Pix []byte
	// Stride is the distance in bytes between vertically adjacent pixels.
	Stride int
	// Rect is the surface's bounds.
	Rect image.Rectangle
}

// New creates a zeroed (black) surface of the given size.
func New(width, height int) *Surface {
	return &Surface{
		Pix:    make([]byte, width*height*4),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// XRGB is a canonical pixel value: 0x00RRGGBB, always opaque.
type XRGB uint32

func (c XRGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>16) & 0xFF
	g = uint32(c>>8) & 0xFF
	b = uint32(c) & 0xFF
	return r | r<<8, g | g<<8, b | b<<8, 0xFFFF
}

type xrgbModel struct{}

func (xrgbModel) Convert(c color.Color) color.Color {
	if c1, ok := c.(XRGB); ok {
		return c1
	}
	r, g, b, _ := c.RGBA()
	return XRGB(r>>8<<16 | g>>8<<8 | b>>8)
}

// Model is the color model of a Surface.
var Model color.Model = xrgbModel{}

// Bounds implements the image.Image (and draw.Image) interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.Rect
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (s *Surface) ColorModel() color.Model {
	return Model
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (s *Surface) PixOffset(x, y int) int {
	return (y-s.Rect.Min.Y)*s.Stride + (x-s.Rect.Min.X)*4
}

// At implements the image.Image (and draw.Image) interface.
func (s *Surface) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(s.Rect)) {
		return XRGB(0)
	}
	i := s.PixOffset(x, y)
	return XRGB(binary.NativeEndian.Uint32(s.Pix[i:i+4]) & 0x00FFFFFF)
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(s.Rect)) {
		return
	}
	i := s.PixOffset(x, y)
	binary.NativeEndian.PutUint32(s.Pix[i:i+4], uint32(Model.Convert(c).(XRGB)))
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c color.Color) {
	word := uint32(Model.Convert(c).(XRGB))
	var cell [4]byte
	binary.NativeEndian.PutUint32(cell[:], word)

	w := s.Rect.Dx()
	for y := 0; y < s.Rect.Dy(); y++ {
		row := s.Pix[y*s.Stride:]
		for x := 0; x < w; x++ {
			copy(row[x*4:], cell[:])
		}
	}
}

// FromImage copies an arbitrary image into a fresh surface, converting
// colors through the canonical model. Alpha is composited against black.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := New(b.Dx(), b.Dy())
	draw.Draw(s, s.Rect, img, b.Min, draw.Src)
	return s
}

var _ draw.Image = (*Surface)(nil)
