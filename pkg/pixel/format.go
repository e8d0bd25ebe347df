package pixel

import "fmt"

// Format identifies the channel order, channel widths and byte order of one
// pixel as delivered by the compositor. The values are wl_shm format codes:
// ARGB8888 and XRGB8888 are 0 and 1, everything else is the DRM fourcc.
// Multi-byte pixels are little endian on the wire regardless of host.
type Format uint32

const (
	ARGB8888 Format = 0
	XRGB8888 Format = 1

	XBGR8888 Format = 'X' | 'B'<<8 | '2'<<16 | '4'<<24
	ABGR8888 Format = 'A' | 'B'<<8 | '2'<<16 | '4'<<24

	XRGB2101010 Format = 'X' | 'R'<<8 | '3'<<16 | '0'<<24
	ARGB2101010 Format = 'A' | 'R'<<8 | '3'<<16 | '0'<<24
	XBGR2101010 Format = 'X' | 'B'<<8 | '3'<<16 | '0'<<24
	ABGR2101010 Format = 'A' | 'B'<<8 | '3'<<16 | '0'<<24

	RGBX1010102 Format = 'R' | 'X'<<8 | '3'<<16 | '0'<<24
	RGBA1010102 Format = 'R' | 'A'<<8 | '3'<<16 | '0'<<24
	BGRX1010102 Format = 'B' | 'X'<<8 | '3'<<16 | '0'<<24
	BGRA1010102 Format = 'B' | 'A'<<8 | '3'<<16 | '0'<<24

	RGB888 Format = 'R' | 'G'<<8 | '2'<<16 | '4'<<24
	BGR888 Format = 'B' | 'G'<<8 | '2'<<16 | '4'<<24
)

var formatNames = map[Format]string{
	ARGB8888:    "argb8888",
	XRGB8888:    "xrgb8888",
	XBGR8888:    "xbgr8888",
	ABGR8888:    "abgr8888",
	XRGB2101010: "xrgb2101010",
	ARGB2101010: "argb2101010",
	XBGR2101010: "xbgr2101010",
	ABGR2101010: "abgr2101010",
	RGBX1010102: "rgbx1010102",
	RGBA1010102: "rgba1010102",
	BGRX1010102: "bgrx1010102",
	BGRA1010102: "bgra1010102",
	RGB888:      "rgb888",
	BGR888:      "bgr888",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%#08x)", uint32(f))
}

// WireBytes returns the bytes one pixel occupies on the wire.
func (f Format) WireBytes() int {
	if f == RGB888 || f == BGR888 {
		return 3
	}
	return 4
}
