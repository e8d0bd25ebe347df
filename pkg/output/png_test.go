package output

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/Xenfo/swaylock-effects-improved/pkg/surface"
)

func TestPNGPresentWritesFrame(t *testing.T) {
	fs := afero.NewMemMapFs()
	out := NewPNG(fs, nil)

	frame := surface.New(3, 2)
	frame.Fill(surface.XRGB(0x336699))

	require.NoError(t, out.Startup())
	require.NoError(t, out.Present(frame))
	require.NotEmpty(t, out.Last())

	bs, err := afero.ReadFile(fs, out.Last())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(bs))
	require.NoError(t, err)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	require.EqualValues(t, 0x33, r>>8)
	require.EqualValues(t, 0x66, g>>8)
	require.EqualValues(t, 0x99, b>>8)
	require.NoError(t, out.Shutdown())
}

func TestPNGPresentDistinctNames(t *testing.T) {
	fs := afero.NewMemMapFs()
	out := NewPNG(fs, nil)

	frame := surface.New(1, 1)
	require.NoError(t, out.Present(frame))
	first := out.Last()
	require.NoError(t, out.Present(frame))
	require.NotEqual(t, first, out.Last())
}

func TestMockerCountsFrames(t *testing.T) {
	m := Mock(nil).(*Mocker)
	require.NoError(t, m.Startup())
	require.NoError(t, m.Present(surface.New(2, 2)))
	require.NoError(t, m.Present(surface.New(2, 2)))
	require.Equal(t, 2, m.Frames())
	require.NoError(t, m.Shutdown())
}
