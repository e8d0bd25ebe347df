package background

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Xenfo/swaylock-effects-improved/pkg/surface"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

var (
	red  = color.NRGBA{R: 0xFF, A: 0xFF}
	blue = color.NRGBA{B: 0xFF, A: 0xFF}
)

func TestRenderSolidColor(t *testing.T) {
	r := NewRenderer(nil, WithColor(red))
	dst := surface.New(4, 4)

	require.NoError(t, r.Render(dst, nil, ModeSolidColor, 1))

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, surface.XRGB(0xFF0000), dst.At(x, y))
		}
	}
}

func TestRenderInvalidMode(t *testing.T) {
	r := NewRenderer(nil)
	dst := surface.New(2, 2)
	require.Error(t, r.Render(dst, solid(2, 2, red), ModeInvalid, 1))
	require.Error(t, r.Render(dst, nil, ModeStretch, 1))
}

func TestRenderStretchCoversEverything(t *testing.T) {
	r := NewRenderer(nil)
	dst := surface.New(8, 6)
	require.NoError(t, r.Render(dst, solid(2, 2, blue), ModeStretch, 1))

	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			require.Equal(t, surface.XRGB(0x0000FF), dst.At(x, y))
		}
	}
}

func TestRenderFillCoversEverything(t *testing.T) {
	r := NewRenderer(nil)
	dst := surface.New(8, 4)
	// Aspect-fill from a tall image must still cover the wide target.
	require.NoError(t, r.Render(dst, solid(2, 6, blue), ModeFill, 1))

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			require.Equal(t, surface.XRGB(0x0000FF), dst.At(x, y))
		}
	}
}

func TestRenderFitLeavesBars(t *testing.T) {
	r := NewRenderer(nil)
	dst := surface.New(8, 4)
	// A square image fit into a 2:1 target leaves side bars.
	require.NoError(t, r.Render(dst, solid(4, 4, blue), ModeFit, 1))

	// Side bars untouched, fitted area painted.
	require.Equal(t, surface.XRGB(0), dst.At(0, 1))
	require.Equal(t, surface.XRGB(0), dst.At(7, 1))
	require.Equal(t, surface.XRGB(0x0000FF), dst.At(4, 1))
}

func TestRenderCenterPlacement(t *testing.T) {
	r := NewRenderer(nil)
	dst := surface.New(6, 6)
	require.NoError(t, r.Render(dst, solid(2, 2, red), ModeCenter, 1))

	require.Equal(t, surface.XRGB(0xFF0000), dst.At(2, 2))
	require.Equal(t, surface.XRGB(0xFF0000), dst.At(3, 3))
	require.Equal(t, surface.XRGB(0), dst.At(1, 1))
	require.Equal(t, surface.XRGB(0), dst.At(4, 4))
}

func TestRenderCenterLargerThanTarget(t *testing.T) {
	r := NewRenderer(nil)
	dst := surface.New(2, 2)
	// Oversized image centered on a small target: fully covered, no panic.
	require.NoError(t, r.Render(dst, solid(6, 6, blue), ModeCenter, 1))
	require.Equal(t, surface.XRGB(0x0000FF), dst.At(0, 0))
	require.Equal(t, surface.XRGB(0x0000FF), dst.At(1, 1))
}

func TestRenderTileRepeats(t *testing.T) {
	r := NewRenderer(nil)
	dst := surface.New(5, 5)
	require.NoError(t, r.Render(dst, solid(2, 2, red), ModeTile, 1))

	// Every pixel covered, including the partial tiles at the edges.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			require.Equal(t, surface.XRGB(0xFF0000), dst.At(x, y))
		}
	}
}

func TestRenderAlphaBlends(t *testing.T) {
	r := NewRenderer(nil)
	dst := surface.New(2, 2)
	dst.Fill(surface.XRGB(0)) // black base

	require.NoError(t, r.Render(dst, solid(2, 2, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}), ModeStretch, 0.5))

	got := dst.At(0, 0).(surface.XRGB)
	rr := uint8(got >> 16)
	// White at half alpha over black lands near mid gray.
	require.InDelta(t, 0x80, int(rr), 2)
}

func TestRenderAlphaClamped(t *testing.T) {
	r := NewRenderer(nil)
	dst := surface.New(1, 1)
	require.NoError(t, r.Render(dst, solid(1, 1, blue), ModeStretch, 7))
	require.Equal(t, surface.XRGB(0x0000FF), dst.At(0, 0))
}
