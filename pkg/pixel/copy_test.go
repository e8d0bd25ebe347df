package pixel

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

var allTransforms = []Transform{
	TransformNormal,
	Transform90,
	Transform180,
	Transform270,
	TransformFlipped,
	TransformFlipped90,
	TransformFlipped180,
	TransformFlipped270,
}

// refSrcCoord is the documented coordinate mapping, written out once more as
// an independent oracle for the loop bodies in CopyTransformed.
func refSrcCoord(tr Transform, destX, destY, dstW, dstH int) (srcX, srcY int) {
	switch tr {
	case TransformNormal:
		return destX, destY
	case Transform90:
		return destY, dstW - destX - 1
	case Transform180:
		return dstW - destX - 1, dstH - destY - 1
	case Transform270:
		return dstH - destY - 1, destX
	case TransformFlipped:
		return dstW - destX - 1, destY
	case TransformFlipped90:
		return destY, destX
	case TransformFlipped180:
		return destX, dstH - destY - 1
	case TransformFlipped270:
		return dstH - destY - 1, dstW - destX - 1
	}
	panic("unknown transform")
}

// newNumberedBuffer fills every 4-byte cell with its pixel index so any
// misplaced cell is identifiable.
func newNumberedBuffer(w, h, stride int) []byte {
	buf := make([]byte, h*stride)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			binary.LittleEndian.PutUint32(buf[y*stride+x*4:], uint32(y*w+x+1))
		}
	}
	return buf
}

func TestCopyTransformedMatchesCoordinateMap(t *testing.T) {
	const srcW, srcH = 5, 3
	srcStride := srcW*4 + 8 // padded rows
	src := newNumberedBuffer(srcW, srcH, srcStride)

	for _, tr := range allTransforms {
		t.Run(tr.String(), func(t *testing.T) {
			dstW, dstH := srcW, srcH
			if tr.Swapped() {
				dstW, dstH = srcH, srcW
			}
			dstStride := dstW*4 + 4

			dst := make([]byte, dstH*dstStride)
			CopyTransformed(dst, src, dstStride, srcStride, dstW, dstH, tr)

			for destY := 0; destY < dstH; destY++ {
				for destX := 0; destX < dstW; destX++ {
					srcX, srcY := refSrcCoord(tr, destX, destY, dstW, dstH)
					want := binary.LittleEndian.Uint32(src[srcY*srcStride+srcX*4:])
					got := binary.LittleEndian.Uint32(dst[destY*dstStride+destX*4:])
					require.Equalf(t, want, got,
						"dest (%d,%d) should hold src (%d,%d)", destX, destY, srcX, srcY)
				}
			}
		})
	}
}

func TestCopyTransformedRoundTrip(t *testing.T) {
	const srcW, srcH = 7, 4
	src := newNumberedBuffer(srcW, srcH, srcW*4)

	for _, tr := range allTransforms {
		t.Run(tr.String(), func(t *testing.T) {
			dstW, dstH := srcW, srcH
			if tr.Swapped() {
				dstW, dstH = srcH, srcW
			}

			mid := make([]byte, dstH*dstW*4)
			CopyTransformed(mid, src, dstW*4, srcW*4, dstW, dstH, tr)

			inv := tr.Inverse()
			require.Equal(t, tr.Swapped(), inv.Swapped())

			back := make([]byte, srcH*srcW*4)
			CopyTransformed(back, mid, srcW*4, dstW*4, srcW, srcH, inv)

			require.Equal(t, src, back)
		})
	}
}

// The row-copy fast paths must be indistinguishable from the per-pixel map.
func TestCopyTransformedFastPaths(t *testing.T) {
	const w, h = 6, 5
	srcStride := w*4 + 12
	src := newNumberedBuffer(w, h, srcStride)

	for _, tr := range []Transform{TransformNormal, TransformFlipped180} {
		t.Run(tr.String(), func(t *testing.T) {
			fast := make([]byte, h*w*4)
			CopyTransformed(fast, src, w*4, srcStride, w, h, tr)

			for destY := 0; destY < h; destY++ {
				for destX := 0; destX < w; destX++ {
					srcX, srcY := refSrcCoord(tr, destX, destY, w, h)
					want := binary.LittleEndian.Uint32(src[srcY*srcStride+srcX*4:])
					got := binary.LittleEndian.Uint32(fast[destY*w*4+destX*4:])
					require.Equal(t, want, got)
				}
			}
		})
	}
}

func TestCopyTransformedEqualStrides(t *testing.T) {
	// Equal strides hit the single whole-buffer copy.
	const w, h = 4, 4
	src := newNumberedBuffer(w, h, w*4)
	dst := make([]byte, h*w*4)
	CopyTransformed(dst, src, w*4, w*4, w, h, TransformNormal)
	require.Equal(t, src, dst)
}

func TestCopyTransformedZeroSize(t *testing.T) {
	// Must not iterate or panic on empty buffers.
	CopyTransformed(nil, nil, 0, 0, 0, 0, Transform90)
	CopyTransformed(nil, nil, 16, 16, 0, 4, Transform180)
	CopyTransformed(nil, nil, 16, 16, 4, 0, TransformNormal)
}

func TestTransformSwapped(t *testing.T) {
	swapped := map[Transform]bool{
		TransformNormal:     false,
		Transform90:         true,
		Transform180:        false,
		Transform270:        true,
		TransformFlipped:    false,
		TransformFlipped90:  true,
		TransformFlipped180: false,
		TransformFlipped270: true,
	}
	for tr, want := range swapped {
		require.Equal(t, want, tr.Swapped(), tr.String())
	}
}
