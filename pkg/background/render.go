package background

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func NewRenderer(logger *zap.Logger, opts ...Option) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Renderer{
		color:  color.NRGBA{A: 0xFF}, // black
		logger: logger,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Renderer paints a background image onto a destination surface under one of
// the display modes, with a global alpha.
type Renderer struct {
	color  color.Color
	logger *zap.Logger
}

type Option func(r *Renderer)

// WithColor sets the color used by solid_color mode.
func WithColor(c color.Color) Option {
	return func(r *Renderer) {
		r.color = c
	}
}

// Render paints img onto dst according to mode. alpha is a global opacity
// in [0, 1]; out-of-range values are clamped. A nil img is only valid for
// solid_color mode.
func (r *Renderer) Render(dst draw.Image, img image.Image, mode Mode, alpha float64) error {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	r.logger.With(zap.Stringer("mode", mode), zap.Float64("alpha", alpha)).Debug("painting background")

	switch mode {
	case ModeSolidColor:
		r.paint(dst, image.NewUniform(r.color), dst.Bounds().Min, alpha)
		return nil
	case ModeInvalid:
		return errors.New("cannot render invalid background mode")
	}

	if img == nil {
		return errors.New("no background image to render")
	}

	b := dst.Bounds()
	bw, bh := b.Dx(), b.Dy()
	if bw == 0 || bh == 0 || img.Bounds().Empty() {
		return nil
	}

	var src image.Image
	at := b.Min

	switch mode {
	case ModeStretch:
		src = imaging.Resize(img, bw, bh, imaging.Lanczos)
	case ModeFill:
		src = imaging.Fill(img, bw, bh, imaging.Center, imaging.Lanczos)
	case ModeFit:
		src = imaging.Fit(img, bw, bh, imaging.Lanczos)
		at = at.Add(image.Pt((bw-src.Bounds().Dx())/2, (bh-src.Bounds().Dy())/2))
	case ModeCenter:
		// Unscaled, aligned to integer pixel boundaries so odd-sized images
		// keep their clarity.
		src = img
		at = at.Add(image.Pt((bw-img.Bounds().Dx())/2, (bh-img.Bounds().Dy())/2))
	case ModeTile:
		r.tile(dst, img, alpha)
		return nil
	}

	r.paint(dst, src, at, alpha)
	return nil
}

func (r *Renderer) tile(dst draw.Image, img image.Image, alpha float64) {
	b := dst.Bounds()
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

	for y := b.Min.Y; y < b.Max.Y; y += ih {
		for x := b.Min.X; x < b.Max.X; x += iw {
			r.paint(dst, img, image.Pt(x, y), alpha)
		}
	}
}

// paint draws src with its top-left corner at the destination point at,
// clipped to dst and blended with the global alpha.
func (r *Renderer) paint(dst draw.Image, src image.Image, at image.Point, alpha float64) {
	rect := image.Rectangle{Min: at, Max: at.Add(src.Bounds().Size())}
	if _, isUniform := src.(*image.Uniform); isUniform {
		rect = dst.Bounds()
	}

	if alpha >= 1 {
		draw.Draw(dst, rect, src, src.Bounds().Min, draw.Over)
		return
	}

	mask := image.NewUniform(color.Alpha16{A: uint16(alpha * 0xFFFF)})
	draw.DrawMask(dst, rect, src, src.Bounds().Min, mask, image.Point{}, draw.Over)
}
