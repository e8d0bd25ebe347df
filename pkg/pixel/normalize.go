package pixel

import (
	"encoding/binary"

	"go.uber.org/zap"
)

// The canonical encoding is packed 32-bit XRGB in host byte order, with the
// unused top byte cleared: the layout cairo calls RGB24 and what the rest of
// this module paints into. The kernels below rewrite a buffer that already
// has destination geometry so that every 4-byte cell holds a canonical word.

// Normalize rewrites buf in place from the given wire format into the
// canonical encoding. buf must hold h rows of stride bytes with at least w
// 4-byte cells each (3-byte formats occupy the low 3*w bytes of every row
// and are widened in place). Unknown formats degrade to the xrgb8888 path
// with a logged error rather than failing: the image stays usable, only the
// colors may be off.
func Normalize(buf []byte, w, h, stride int, format Format, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch format {
	case XBGR8888, ABGR8888:
		xrgb32FromXBGR32LE(buf, w, h, stride)
	case XRGB2101010, ARGB2101010:
		xrgb32FromXRGB2101010LE(buf, w, h, stride)
	case XBGR2101010, ABGR2101010:
		xrgb32FromXBGR2101010LE(buf, w, h, stride)
	case RGBX1010102, RGBA1010102:
		xrgb32FromRGBX1010102LE(buf, w, h, stride)
	case BGRX1010102, BGRA1010102:
		xrgb32FromBGRX1010102LE(buf, w, h, stride)
	case BGR888, RGB888:
		xrgb32FromBGR888LE(buf, w, h, stride)
		if format == RGB888 {
			xrgb32SwapRB(buf, w, h, stride)
		}
	case XRGB8888, ARGB8888:
		xrgb32FromXRGB32LE(buf, w, h, stride)
	default:
		logger.With(zap.Stringer("format", format)).
			Error("unknown pixel format, assuming xrgb8888, colors may look wrong")
		xrgb32FromXRGB32LE(buf, w, h, stride)
	}
}

// putXRGB stores a canonical word in host byte order.
func putXRGB(pix []byte, v uint32) {
	binary.NativeEndian.PutUint32(pix, v)
}

// xrgb32FromXRGB32LE handles the canonical-compatible pair: on little-endian
// hosts the wire bytes already are the canonical word, so only big-endian
// hosts rewrite anything (beyond clearing the unused byte).
func xrgb32FromXRGB32LE(buf []byte, w, h, stride int) {
	if !hostBigEndian {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix := buf[y*stride+x*4:]
			putXRGB(pix, uint32(pix[2])<<16|uint32(pix[1])<<8|uint32(pix[0]))
		}
	}
}

// xrgb32FromXBGR32LE swaps the red and blue byte offsets of the 8-bit pair.
func xrgb32FromXBGR32LE(buf []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix := buf[y*stride+x*4:]
			putXRGB(pix, uint32(pix[0])<<16|uint32(pix[1])<<8|uint32(pix[2]))
		}
	}
}

// The 10-bit kernels keep the top 8 bits of each channel: shift the channel
// into place and mask, dropping the 2 low bits (truncation, not rounding).

func xrgb32FromXRGB2101010LE(buf []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix := buf[y*stride+x*4:]
			color := binary.LittleEndian.Uint32(pix)
			putXRGB(pix, ((color>>22)&0xFF)<<16|((color>>12)&0xFF)<<8|((color>>2)&0xFF))
		}
	}
}

func xrgb32FromXBGR2101010LE(buf []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix := buf[y*stride+x*4:]
			color := binary.LittleEndian.Uint32(pix)
			putXRGB(pix, ((color>>2)&0xFF)<<16|((color>>12)&0xFF)<<8|((color>>22)&0xFF))
		}
	}
}

func xrgb32FromRGBX1010102LE(buf []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix := buf[y*stride+x*4:]
			color := binary.LittleEndian.Uint32(pix)
			putXRGB(pix, ((color>>24)&0xFF)<<16|((color>>14)&0xFF)<<8|((color>>4)&0xFF))
		}
	}
}

func xrgb32FromBGRX1010102LE(buf []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix := buf[y*stride+x*4:]
			color := binary.LittleEndian.Uint32(pix)
			putXRGB(pix, ((color>>4)&0xFF)<<16|((color>>14)&0xFF)<<8|((color>>24)&0xFF))
		}
	}
}

// xrgb32FromBGR888LE widens 3-byte cells into 4-byte cells within the same
// row. Source and destination overlap, so columns MUST run back to front:
// by the time a 4-byte cell lands on top of not-yet-read source bytes, those
// bytes belong to pixels already written. Forward iteration corrupts the row
// silently.
func xrgb32FromBGR888LE(buf []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		row := buf[y*stride:]
		for x := w - 1; x >= 0; x-- {
			// bgr888 is [23:0] B:G:R little endian, so the low byte is red.
			r, g, b := row[x*3], row[x*3+1], row[x*3+2]
			putXRGB(row[x*4:], uint32(r)<<16|uint32(g)<<8|uint32(b))
		}
	}
}

// xrgb32SwapRB exchanges red and blue in already-canonical words. Together
// with the bgr888 widening kernel this implements the rgb888 wire format.
func xrgb32SwapRB(buf []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix := buf[y*stride+x*4:]
			color := binary.NativeEndian.Uint32(pix)
			putXRGB(pix, (color&0xFF)<<16|(color&0xFF00)|((color>>16)&0xFF))
		}
	}
}
